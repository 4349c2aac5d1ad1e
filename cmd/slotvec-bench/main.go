// Package main provides slotvec-bench, a tool that times the slotvec
// workloads outside of `go test` and can capture profiles while doing so.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pkg/profile"
	flag "github.com/spf13/pflag"

	"github.com/edwinsyarief/slotvec/internal/workload"
)

// Config holds all benchmark configuration.
type Config struct {
	Workloads  []string
	Sizes      []int
	Iters      int
	Seed       uint64
	Check      bool
	Profile    string
	ProfileDir string
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	err = run(cfg, logger)
	if err != nil {
		logger.Error("benchmark failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func parseFlags(args []string) (Config, error) {
	cfg := Config{}
	fs := flag.NewFlagSet("slotvec-bench", flag.ContinueOnError)

	workloads := fs.StringSlice("workload", workload.Names(), "Workloads to run")
	sizes := fs.String("sizes", "10000,20000,50000", "Comma-separated element counts")
	fs.IntVarP(&cfg.Iters, "iters", "n", 1000, "Iterations per workload and size")
	fs.Uint64Var(&cfg.Seed, "seed", 1, "Seed for randomized workloads")
	fs.BoolVar(&cfg.Check, "check", false, "Verify vector invariants after each run")
	fs.StringVar(&cfg.Profile, "profile", "none", "Profile to capture: cpu, mem or none")
	fs.StringVar(&cfg.ProfileDir, "profile-dir", ".", "Directory for profile output")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, "Usage: slotvec-bench [flags]\n\n")
		fmt.Fprint(os.Stderr, "Times slotvec iteration and churn workloads.\n\n")
		fmt.Fprint(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nWorkloads: %s\n", strings.Join(workload.Names(), ", "))
	}

	err := fs.Parse(args)
	if err != nil {
		return Config{}, err
	}

	for _, name := range *workloads {
		if _, ok := workload.Named[name]; !ok {
			return Config{}, errors.Newf("unknown workload %q", name)
		}
		cfg.Workloads = append(cfg.Workloads, name)
	}

	for sizeStr := range strings.SplitSeq(*sizes, ",") {
		sizeStr = strings.TrimSpace(sizeStr)
		if sizeStr == "" {
			continue
		}
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size < 0 {
			return Config{}, errors.Newf("invalid size %q", sizeStr)
		}
		cfg.Sizes = append(cfg.Sizes, size)
	}
	if len(cfg.Sizes) == 0 {
		return Config{}, errors.New("no sizes given")
	}
	if cfg.Iters <= 0 {
		return Config{}, errors.Newf("iters must be positive, got %d", cfg.Iters)
	}

	switch cfg.Profile {
	case "cpu", "mem", "none":
	default:
		return Config{}, errors.Newf("unknown profile %q", cfg.Profile)
	}

	return cfg, nil
}

func run(cfg Config, logger *slog.Logger) error {
	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.ProfileDir), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(cfg.ProfileDir), profile.Quiet).Stop()
	}

	check := func(workload.Checker) error { return nil }
	if cfg.Check {
		check = func(c workload.Checker) error { return c.CheckInvariants() }
	}

	for _, name := range cfg.Workloads {
		runner := workload.Named[name]
		for _, size := range cfg.Sizes {
			start := time.Now()
			result, err := runner(size, cfg.Iters, cfg.Seed, check)
			elapsed := time.Since(start)
			if err != nil {
				return errors.Wrapf(err, "workload %s size %d", name, size)
			}

			ops := float64(size) * float64(cfg.Iters)
			nsPerOp := float64(elapsed.Nanoseconds()) / max(ops, 1)
			logger.Info("workload done",
				slog.String("workload", name),
				slog.Int("size", size),
				slog.Int("iters", cfg.Iters),
				slog.Duration("elapsed", elapsed),
				slog.Float64("ns_per_elem", nsPerOp),
				slog.Float64("elems_per_sec", ops/elapsed.Seconds()),
				slog.Float64("result", result),
			)
		}
	}

	return nil
}
