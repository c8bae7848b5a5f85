// This file is part of ratecounter.
//
// ratecounter is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ratecounter is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ratecounter.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/ratecounter/counter"
	"github.com/jetsetilly/ratecounter/modalflag"
	"github.com/jetsetilly/ratecounter/performance"
	"github.com/jetsetilly/ratecounter/version"
)

const additionalHelp = `RUN mode (the default) updates a rate counter from a paced loop and reports
the measured rate at regular intervals. PERFORMANCE mode measures the accuracy
of a counter over a fixed duration. VERSION mode prints the version of the
program.`

func main() {
	// the interrupt signal cancels the context. a mode should return as soon
	// as possible after that
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	exitVal := launch(ctx, os.Args[1:], os.Stdout)

	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. Returns the value
// to use with os.Exit().
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "PERFORMANCE", "VERSION")
	md.AdditionalHelp(additionalHelp)

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, output)

	case "PERFORMANCE":
		err = perform(md, output)

	case "VERSION":
		fmt.Fprintln(output, version.Get())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

func strategyList() string {
	s := make([]string, len(counter.Strategies))
	for i, st := range counter.Strategies {
		s[i] = string(st)
	}
	return strings.Join(s, ", ")
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	strategy := md.AddString("strategy", string(counter.Strategies[0]), fmt.Sprintf("counter strategy: %s", strategyList()))
	window := md.AddInt("window", defaultWindow, "number of intervals the rate is calculated over")
	hz := md.AddFloat64("hz", defaultHz, "target rate of the loop (zero for uncapped)")
	duration := md.AddDuration("duration", defaultPerformanceDuration, "measurement duration")
	leadtime := md.AddDuration("leadtime", defaultLeadtime, "time allowed for the rate to settle before measurement")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")
	log := md.AddBool("log", false, "echo log to output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	setEcho(*log, output)

	st, err := counter.ParseStrategy(*strategy)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	return performance.Check(output, performance.Options{
		Strategy:   st,
		WindowSize: *window,
		Hz:         *hz,
		Duration:   *duration,
		Leadtime:   *leadtime,
		Profile:    prf,
	})
}
