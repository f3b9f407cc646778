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

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/picocomputer/controller"
	"github.com/jetsetilly/picocomputer/curated"
)

// Result of a performance check.
type Result struct {
	Instructions uint64
	Elapsed      time.Duration

	// why the program stopped before the duration expired. StopCancelled if
	// the duration did expire
	Reason controller.StopReason
}

// PerSecond returns the number of instructions executed per second.
func (r Result) PerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Instructions) / r.Elapsed.Seconds()
}

func (r Result) String() string {
	return fmt.Sprintf("%.0f instructions per second (%d instructions in %.2f seconds)",
		r.PerSecond(), r.Instructions, r.Elapsed.Seconds())
}

// Check the performance of the emulator with the program already loaded into
// the controller. The program is run as quickly as possible until the duration
// has elapsed or until the program stops. The result is written to output.
func Check(ctx context.Context, output io.Writer, profile Profile, ctrl *controller.Controller, duration time.Duration) (Result, error) {
	if duration <= 0 {
		return Result{}, curated.Errorf("performance: duration must be positive (%v)", duration)
	}

	var res Result

	runner := func() error {
		ctx, cancel := context.WithTimeout(ctx, duration)
		defer cancel()

		start := ctrl.Cycles()
		t := time.Now()

		reason, err := ctrl.RunUnpaced(ctx, 0)

		res.Elapsed = time.Since(t)
		res.Instructions = ctrl.Cycles() - start
		res.Reason = reason

		if reason == controller.StopCancelled {
			return nil
		}
		return err
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil {
		return res, curated.Errorf("performance: %v", err)
	}

	fmt.Fprintln(output, res)
	if res.Reason != controller.StopCancelled {
		fmt.Fprintf(output, "program stopped early: %s\n", res.Reason)
	}

	return res, nil
}
