// Command ewasmvm runs a standalone bytecode program against an in-process
// mock host, the same role the teacher's cmd/eth2030 binary plays for a
// full node, scaled down to a single interpreter run.
//
// Usage:
//
//	ewasmvm -program path/to/program.yaml [-debug] [-max-steps N] [-metrics-addr :9400]
//	ewasmvm disasm path/to/program.yaml
package main

import (
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"

	"github.com/eth2030/ewasm-evm/internal/guest"
	"github.com/eth2030/ewasm-evm/internal/hei/mock"
	"github.com/eth2030/ewasm-evm/internal/vm"
	ewasmlog "github.com/eth2030/ewasm-evm/log"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// cliMetrics is registered against the default registry once per process,
// so run can be called more than once without a duplicate registration.
var (
	metricsOnce sync.Once
	cliMetrics  *vm.Metrics
)

// run is the actual entry point, returning an exit code. Accepts CLI
// arguments (without the program name) so it can be tested in isolation.
func run(args []string) int {
	if len(args) > 0 && args[0] == "disasm" {
		return runDisasm(args[1:])
	}

	cfg, exit, code := parseRunFlags(args)
	if exit {
		return code
	}

	logger := ewasmlog.Default().Module("ewasmvm")

	manifest, err := loadManifest(cfg.Program)
	if err != nil {
		logger.Error("failed to load program manifest", "error", err)
		return 1
	}

	bytecode, err := manifest.bytecodeBytes()
	if err != nil {
		logger.Error("failed to decode bytecode", "error", err)
		return 1
	}

	seed, err := manifest.storageSeed()
	if err != nil {
		logger.Error("failed to decode storage seed", "error", err)
		return 1
	}

	host := mock.New(manifest.Name)
	for k, v := range seed {
		host.SetStorage(k, v)
	}

	metricsOnce.Do(func() { cliMetrics = vm.NewMetrics(prometheus.DefaultRegisterer) })
	metrics := cliMetrics
	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, logger)
	}

	logger.Info("running program",
		"name", manifest.Name,
		"bytes", len(bytecode),
		"debug", cfg.Debug,
		"maxSteps", cfg.MaxSteps,
	)

	vmCfg := vm.Config{
		Debug:    cfg.Debug,
		Tracer:   metrics.Tracer(),
		MaxSteps: int(cfg.MaxSteps),
	}

	rs := vm.NewRunState(bytecode, host)
	execErr := vm.Execute(rs, vmCfg)
	metrics.RecordOutcome(execErr)

	if execErr != nil {
		logger.Error("execution faulted", "error", execErr)
		return 1
	}

	switch {
	case host.Reverted:
		logger.Warn("program reverted", "data", fmt.Sprintf("0x%x", host.RevertedWith))
		return 1
	case host.Finished:
		logger.Info("program finished", "data", fmt.Sprintf("0x%x", host.FinishedWith))
		return 0
	default:
		logger.Info("program ran off the end of its code")
		return 0
	}
}

func serveMetrics(addr string, logger *ewasmlog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server stopped", "error", err)
	}
}

// runDisasm drives the humanizeBytecode diagnostic entry point from the
// command line, built on urfave/cli/v2 rather than the hand-rolled flagSet
// since it is a one-off subcommand with a single positional argument rather
// than a flag surface worth a custom Value type.
func runDisasm(args []string) int {
	app := &cli.App{
		Name:      "disasm",
		Usage:     "disassemble a program manifest's bytecode into mnemonics",
		ArgsUsage: "<manifest.yaml>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one manifest path argument", 2)
			}
			manifest, err := loadManifest(c.Args().Get(0))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			bytecode, err := manifest.bytecodeBytes()
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			out, err := guest.HumanizeBytecode(bytecode)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			fmt.Println(out)
			return nil
		},
	}
	if err := app.Run(append([]string{"disasm"}, args...)); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			fmt.Fprintln(os.Stderr, exitErr.Error())
			return exitErr.ExitCode()
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
