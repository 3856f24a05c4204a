// Package app holds the command-line plumbing shared by the dial binaries.
package app

import (
	"fmt"
	"io"

	log "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/common/promlog"
	"github.com/prometheus/common/promlog/flag"
	"github.com/prometheus/common/version"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/paulcager/dial_counter/internal/dial"
	"github.com/paulcager/dial_counter/internal/metrics"
	"github.com/paulcager/dial_counter/internal/rotation"
	"github.com/paulcager/dial_counter/internal/solver"
)

type options struct {
	input    string
	min      int
	max      int
	pos      int
	policy   string
	textfile string
}

// Run parses args, solves the puzzle with the given default policy and
// prints the answer to stdout. Logs go to stderr. It returns the process
// exit code and never exits itself, including for --help and --version.
func Run(name string, policy solver.Policy, args []string, stdout, stderr io.Writer) int {
	var opts options

	exitCode := -1
	a := kingpin.New(name, "Counts how often a dial's pointer reaches zero.")
	a.Version(version.Print(name))
	a.HelpFlag.Short('h')
	a.UsageWriter(stdout)
	a.ErrorWriter(stderr)
	a.Terminate(func(code int) {
		if exitCode < 0 {
			exitCode = code
		}
	})

	a.Flag("input", "File of rotation commands, one per line (e.g. L68, R48).").
		Default("input.txt").Envar("DIAL_INPUT").StringVar(&opts.input)
	a.Flag("dial.min", "Lowest number on the dial.").
		Default("0").Envar("DIAL_MIN").IntVar(&opts.min)
	a.Flag("dial.max", "Highest number on the dial.").
		Default("99").Envar("DIAL_MAX").IntVar(&opts.max)
	a.Flag("dial.pos", "Number the pointer starts at.").
		Default("50").Envar("DIAL_POS").IntVar(&opts.pos)
	a.Flag("policy", "What to count: landings on zero, or every crossing of zero.").
		Default(policy.String()).EnumVar(&opts.policy, solver.PolicyNames()...)
	a.Flag("metrics.textfile", "Write run metrics to this file in Prometheus text format.").
		StringVar(&opts.textfile)

	promlogConfig := &promlog.Config{}
	flag.AddFlags(a, promlogConfig)

	_, err := a.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 2
	}

	logger := newLogger(stderr, promlogConfig)
	answer, err := run(logger, opts)
	if err != nil {
		level.Error(logger).Log("msg", "Run failed", "err", err)
		return 1
	}

	fmt.Fprintf(stdout, "Answer: %d\n", answer)
	return 0
}

func run(logger log.Logger, opts options) (int, error) {
	policy, err := solver.ParsePolicy(opts.policy)
	if err != nil {
		return 0, err
	}

	rotations, err := rotation.Load(opts.input)
	if err != nil {
		return 0, fmt.Errorf("loading %s: %w", opts.input, err)
	}
	level.Debug(logger).Log("msg", "Loaded rotations", "file", opts.input, "count", len(rotations),
		"rotations", prettyValue{rotations})

	d, err := dial.New(dial.Config{Min: opts.min, Max: opts.max, Pos: &opts.pos})
	if err != nil {
		return 0, err
	}

	s, err := solver.New(d, rotations, policy)
	if err != nil {
		return 0, err
	}
	s.Solve()
	answer, err := s.Answer()
	if err != nil {
		return 0, err
	}

	stats := s.Stats()
	level.Info(logger).Log("msg", "Solved", "policy", policy, "answer", answer,
		"rotations", stats.Rotations, "clicks", stats.Clicks, "final_pos", stats.Position)

	if opts.textfile != "" {
		if err := metrics.WriteTextfile(opts.textfile, metrics.NewCollector(policy, stats, answer)); err != nil {
			return 0, fmt.Errorf("writing metrics to %s: %w", opts.textfile, err)
		}
		level.Debug(logger).Log("msg", "Wrote metrics", "file", opts.textfile)
	}

	return answer, nil
}
