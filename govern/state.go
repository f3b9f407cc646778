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

package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// EmulatorStart is the default state and should never be entered once the
// emulator has begun.
//
// Initialising is used while a program is being loaded.
//
// Paused and Halted can have meaningful sub-states.
const (
	EmulatorStart State = iota
	Initialising
	Paused
	Stepping
	Rewinding
	Running
	Halted
	Ending
)

func (s State) String() string {
	switch s {
	case EmulatorStart:
		return "EmulatorStart"
	case Initialising:
		return "Initialising"
	case Paused:
		return "Paused"
	case Stepping:
		return "Stepping"
	case Rewinding:
		return "Rewinding"
	case Running:
		return "Running"
	case Halted:
		return "Halted"
	case Ending:
		return "Ending"
	}

	return ""
}

// SubState allows more detail for some states. Normal indicates that there
// is not more information to impart about the state.
type SubState int

// List of possible sub states.
const (
	Normal SubState = iota

	// paused with no history to step back through
	PausedAtStart

	// paused because the IN instruction has no input to read
	PausedForInput

	// halted by a HALT instruction or by reaching the end of the program
	HaltedByProgram

	// halted because an instruction could not be executed
	HaltedByFault
)

func (s SubState) String() string {
	switch s {
	case PausedAtStart:
		return "Paused at start"
	case PausedForInput:
		return "Waiting for input"
	case HaltedByProgram:
		return "Program ended"
	case HaltedByFault:
		return "Fault"
	}
	return ""
}

// StateIntegrity checks whether the combination of state, sub-state makes
// sense.
//
// Rules:
//
//  1. Normal can coexist with any state
//
//  2. PausedAtStart and PausedForInput can only be paired with the Paused
//     state
//
//  3. HaltedByProgram and HaltedByFault can only be paired with the Halted
//     state
func StateIntegrity(state State, subState SubState) bool {
	if subState == Normal {
		return true
	}
	switch state {
	case Paused:
		if subState == PausedAtStart || subState == PausedForInput {
			return true
		}
	case Halted:
		if subState == HaltedByProgram || subState == HaltedByFault {
			return true
		}
	}
	return false
}
