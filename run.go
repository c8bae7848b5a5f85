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
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jetsetilly/ratecounter/counter"
	"github.com/jetsetilly/ratecounter/display"
	"github.com/jetsetilly/ratecounter/easyterm"
	"github.com/jetsetilly/ratecounter/export"
	"github.com/jetsetilly/ratecounter/logger"
	"github.com/jetsetilly/ratecounter/modalflag"
	"github.com/jetsetilly/ratecounter/performance/limiter"
	"github.com/jetsetilly/ratecounter/prefs"
	"github.com/jetsetilly/ratecounter/statsview"
)

const runHelp = `Keys (when output is a terminal):
  q    quit
  s    switch counter strategy

Preferences can be set with the -prefs flag. For example:
  -prefs "counter.window::30; limiter.hz::59.94; counter.strategy::FIXED"`

// switch to the next strategy in the list of strategies.
func nextStrategy(st counter.Strategy) counter.Strategy {
	for i, v := range counter.Strategies {
		if v == st {
			return counter.Strategies[(i+1)%len(counter.Strategies)]
		}
	}
	return counter.Strategies[0]
}

func run(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp(runHelp)

	strategy := md.AddString("strategy", string(counter.Strategies[0]), fmt.Sprintf("counter strategy: %s", strategyList()))
	window := md.AddInt("window", defaultWindow, "number of intervals the rate is calculated over")
	hz := md.AddFloat64("hz", defaultHz, "rate of the update loop")
	every := md.AddDuration("every", time.Second, "how often the rate is reported")
	duration := md.AddDuration("duration", 0, "run duration (zero to run until interrupted)")
	cmdline := md.AddString("prefs", "", "preferences in the form key::value; key::value")
	config := md.AddString("config", "", "path to preferences file (default in resource path)")
	save := md.AddBool("save", false, "save settings to preferences file")
	log := md.AddBool("log", false, "echo log to output")
	metrics := md.AddString("metrics", "", "address to serve prometheus metrics from (eg. localhost:9090)")
	stats := md.AddBool("statsview", false, "launch statsview server")
	memvizFile := md.AddString("memviz", "", "write memory graph of the counter to file on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *every <= 0 {
		return fmt.Errorf("report interval must be positive (%v)", *every)
	}

	setEcho(*log, output)

	// command line preferences are taken when settings are created
	prefs.PushCommandLineStack(*cmdline)
	s, err := newSettings(*config)
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "settings", "unused preferences: %s", unused)
	}
	if err != nil {
		return err
	}

	// flags given explicitly take priority over preferences
	var flagErr error
	md.Visit(func(flag string) {
		switch flag {
		case "strategy":
			flagErr = errors.Join(flagErr, s.Strategy.Set(*strategy))
		case "window":
			flagErr = errors.Join(flagErr, s.Window.Set(*window))
		case "hz":
			flagErr = errors.Join(flagErr, s.Hz.Set(*hz))
		}
	})
	if flagErr != nil {
		return flagErr
	}

	if *save {
		if err := s.save(); err != nil {
			return err
		}
	}

	st := s.strategy()
	c, err := counter.New(st, s.Window.Get().(int), nil)
	if err != nil {
		return err
	}

	lmtr, err := limiter.NewLimiter(s.Hz.Get().(float64))
	if err != nil {
		return err
	}
	defer lmtr.Stop()

	var exp *export.Exporter
	if *metrics != "" {
		reg := prometheus.NewRegistry()
		exp, err = export.NewExporter("ratecounter", reg)
		if err != nil {
			return err
		}

		ln, err := net.Listen("tcp", *metrics)
		if err != nil {
			return err
		}

		mux := http.NewServeMux()
		mux.Handle("/metrics", export.Handler(reg))
		srv := &http.Server{Handler: mux, ReadHeaderTimeout: time.Second}
		go func() {
			err := srv.Serve(ln)
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Log(logger.Allow, "metrics", err)
			}
		}()
		defer srv.Close()

		logger.Logf(logger.Allow, "metrics", "serving from http://%s/metrics", ln.Addr())
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		stop := statsview.Launch(output, "")
		defer stop()
	}

	// status line is redrawn in place if output is a terminal
	var term *easyterm.Terminal
	var keys <-chan byte
	if f, ok := output.(*os.File); ok {
		term, err = easyterm.NewTerminal(os.Stdin, f)
		if err != nil {
			logger.Log(logger.Allow, "run", err)
			term = nil
		} else {
			defer term.CleanUp()
			if err := term.CBreakMode(); err != nil {
				return err
			}
			keys = term.ReadKeys()
		}
	}

	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	report := time.NewTicker(*every)
	defer report.Stop()

	logger.Logf(logger.Allow, "run", "%s counter (window %d) at %s", st, c.Cycles(), display.Hz(s.Hz.Get().(float64)))

	done := false
	for !done {
		select {
		case <-ctx.Done():
			done = true

		case <-report.C:
			status := fmt.Sprintf("Updating at %s", display.Hz(c.Rate()))
			if term != nil {
				term.StatusLine(fmt.Sprintf("%s  %s %s", status, st, display.Summary(c)))
			} else {
				fmt.Fprintln(output, status)
			}
			if exp != nil {
				exp.Publish(c)
			}

		case k, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}
			switch k {
			case 'q', 'Q':
				done = true
			case 's', 'S':
				st = nextStrategy(st)
				c, err = counter.New(st, s.Window.Get().(int), nil)
				if err != nil {
					return err
				}
				logger.Logf(logger.Allow, "run", "switched to %s counter", st)
			}

		default:
			lmtr.Wait()
			c.Update()
		}
	}

	if term != nil {
		term.Print("\n")
	}
	fmt.Fprintf(output, "%s counter: %s\n", st, display.Summary(c))

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		memviz.Map(f, c)
		if err := f.Close(); err != nil {
			return err
		}
		logger.Logf(logger.Allow, "run", "memory graph written to %s", *memvizFile)
	}

	return nil
}
