// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command kmap minimizes 4 variable Boolean functions.
//
// Usage:
//
//	kmap [flags] [grid ...]
//
// Each grid is a minterm list like "m(0, 2) + d(8, 10)" or a 16 symbol truth
// table like "1010 0000 x0x0 0000". If no grid is given on the command line,
// grids are read from standard input, one per line. Empty lines and lines
// starting with # are skipped.
//
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/db47h/kmap"
	"github.com/db47h/kmap/internal/config"
	"github.com/db47h/kmap/netlist"
	"github.com/pkg/errors"
)

func main() {
	logger := log.New(os.Stderr, "kmap: ", 0)
	if err := run(os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		if err == flag.ErrHelp {
			os.Exit(2)
		}
		logger.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	fs := flag.NewFlagSet("kmap", flag.ContinueOnError)
	fs.SetOutput(logger.Writer())
	var (
		configPath = fs.String("config", "", "load configuration from JSON `file`")
		exact      = fs.Bool("exact", false, "find an expression with the smallest number of terms")
		jsonOut    = fs.Bool("json", false, "print results as JSON, one object per line")
		verify     = fs.Bool("verify", false, "verify results")
		gates      = fs.Bool("gates", false, "print the gate netlist of each result")
		showMap    = fs.Bool("map", false, "print the Karnaugh map of each grid")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := &config.Config{}
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	// command line flags override the configuration file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "exact":
			if *exact {
				cfg.SetStrategy(config.StrategyExact)
			} else {
				cfg.SetStrategy(config.StrategyGreedy)
			}
		case "json":
			if *jsonOut {
				cfg.SetFormat(config.FormatJSON)
			} else {
				cfg.SetFormat(config.FormatText)
			}
		case "verify":
			cfg.SetVerify(*verify)
		case "gates":
			cfg.SetGates(*gates)
		case "map":
			cfg.SetMap(*showMap)
		}
	})

	p := &printer{cfg: cfg, w: stdout}
	if fs.NArg() > 0 {
		for _, arg := range fs.Args() {
			if err := p.process(arg); err != nil {
				return err
			}
		}
		return nil
	}

	var (
		s      = bufio.NewScanner(stdin)
		line   int
		failed int
	)
	for s.Scan() {
		line++
		in := strings.TrimSpace(s.Text())
		if in == "" || strings.HasPrefix(in, "#") {
			continue
		}
		if err := p.process(in); err != nil {
			logger.Printf("line %d: %v", line, err)
			failed++
		}
	}
	if err := s.Err(); err != nil {
		return errors.Wrap(err, "failed to read input")
	}
	if failed > 0 {
		return errors.Errorf("%d invalid grid(s)", failed)
	}
	return nil
}

type printer struct {
	cfg *config.Config
	w   io.Writer
}

func (p *printer) minimize(g kmap.Grid) (kmap.Result, error) {
	if p.cfg.GetStrategy() == config.StrategyExact {
		return kmap.MinimizeExact(g)
	}
	return kmap.Minimize(g), nil
}

func (p *printer) process(in string) error {
	g, err := kmap.ParseGrid(in)
	if err != nil {
		return err
	}
	r, err := p.minimize(g)
	if err != nil {
		return err
	}
	if p.cfg.GetVerify() {
		if err = kmap.Verify(g, r); err != nil {
			return errors.Wrapf(err, "verification failed for %s", g.Notation())
		}
	}

	if p.cfg.GetFormat() == config.FormatJSON {
		return json.NewEncoder(p.w).Encode(r)
	}

	var b strings.Builder
	if p.cfg.GetMap() {
		b.WriteString(g.String())
	}
	fmt.Fprintf(&b, "%s = %s\n", g.Notation(), r.Equation)
	for _, t := range r.Terms {
		fmt.Fprintf(&b, "\t%s\t%v\n", t.Literals, t.CellIndices)
	}
	if p.cfg.GetGates() {
		b.WriteString(netlist.Build(r).String())
	}
	_, err = io.WriteString(p.w, b.String())
	return err
}
