package main

import (
	"flag"
	"fmt"
	"strconv"
)

// flagSet wraps flag.FlagSet to add uint64 support, the same shim the
// teacher's cmd/eth2030/flags.go uses since the standard flag package has
// no native uint64 constructor.
type flagSet struct {
	*flag.FlagSet
}

func newCustomFlagSet(name string) *flagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return &flagSet{FlagSet: fs}
}

func (fs *flagSet) Uint64Var(p *uint64, name string, value uint64, usage string) {
	fs.FlagSet.Var(&uint64Value{p: p}, name, usage)
	*p = value
}

type uint64Value struct {
	p *uint64
}

func (v *uint64Value) String() string {
	if v.p == nil {
		return "0"
	}
	return strconv.FormatUint(*v.p, 10)
}

func (v *uint64Value) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid uint64 value %q", s)
	}
	*v.p = n
	return nil
}

// runConfig is what the default (non-subcommand) flag set resolves to.
type runConfig struct {
	Program     string
	Debug       bool
	MaxSteps    uint64
	MetricsAddr string
}

func parseRunFlags(args []string) (cfg runConfig, exit bool, code int) {
	fs := newCustomFlagSet("ewasmvm")
	fs.StringVar(&cfg.Program, "program", "", "path to a YAML program manifest")
	fs.BoolVar(&cfg.Debug, "debug", false, "enable step-by-step structured logging")
	fs.Uint64Var(&cfg.MaxSteps, "max-steps", 0, "abort after this many executed instructions (0 = unbounded)")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address")

	if err := fs.Parse(args); err != nil {
		return cfg, true, 2
	}
	if cfg.Program == "" {
		fmt.Fprintln(fs.Output(), "missing required flag -program")
		fs.Usage()
		return cfg, true, 2
	}
	return cfg, false, 0
}
