// This file is part of PicoComputer.
//
// PicoComputer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PicoComputer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PicoComputer.  If not, see <https://www.gnu.org/licenses/>.

// Package controller is the control surface for a PicoComputer emulation. It
// owns a hardware.Machine and a rewind.Rewind and coordinates them so that
// every step is recorded in the history and can be undone.
//
// All public functions are safe to call from any goroutine. Operations are
// serialised so that a front end can Pause() or StepBack() while Run() is
// ticking in another goroutine. A step is never interrupted: a pause is
// honoured before the next step.
//
// Observers are notified after the controller has released its lock, so an
// observer may call back into the controller.
package controller
