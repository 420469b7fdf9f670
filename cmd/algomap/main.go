// SPDX-License-Identifier: MIT

// Command algomap walks an algorithm-selection chart and samples the
// decorative proximity network drawn behind it.
//
//	algomap [-chart file.yaml] [-answers yes,no,...] [-seed n] [-threshold t] [-dump] [-snapshot] [-v]
//
// Without -chart the built-in machine-learning cheat sheet is used.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/katalvlaran/algomap/flowchart"
	"github.com/katalvlaran/algomap/internal/prettylog"
	"github.com/katalvlaran/algomap/scene"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	chart     string
	answers   string
	seed      int64
	threshold float64
	dump      bool
	snapshot  bool
	verbose   bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("algomap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.chart, "chart", "", "YAML chart document (default: built-in cheat sheet)")
	fs.StringVar(&o.answers, "answers", "", "comma-separated yes/no answers to replay")
	fs.Int64Var(&o.seed, "seed", time.Now().UnixNano(), "scene random seed")
	fs.Float64Var(&o.threshold, "threshold", scene.DefaultThreshold, "scene edge threshold")
	fs.BoolVar(&o.dump, "dump", false, "write the chart as YAML and exit")
	fs.BoolVar(&o.snapshot, "snapshot", false, "print the final session snapshot as JSON")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	err := fs.Parse(args)
	return o, err
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(prettylog.NewPrettyHandler(stderr, prettylog.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{Level: level},
	}))

	chart, err := loadChart(o.chart)
	if err != nil {
		log.Error("load chart", slog.String("path", o.chart), slog.String("error", err.Error()))
		return 1
	}
	log.Debug("chart loaded", slog.Int("nodes", chart.Len()), slog.String("start", chart.StartID()))

	if o.dump {
		if err = flowchart.Encode(stdout, chart); err != nil {
			log.Error("dump chart", slog.String("error", err.Error()))
			return 1
		}
		return 0
	}

	answers, err := flowchart.ParseAnswers(o.answers)
	if err != nil {
		log.Error("parse answers", slog.String("error", err.Error()))
		return 1
	}

	s, err := replay(chart, answers, log)
	printTrail(stdout, s)
	if err != nil {
		log.Error("replay", slog.String("session", s.ID().String()), slog.String("error", err.Error()))
		return 1
	}
	if o.snapshot {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err = enc.Encode(s.Snapshot()); err != nil {
			log.Error("snapshot", slog.String("error", err.Error()))
			return 1
		}
	}

	sc, err := scene.Build(scene.WithSeed(o.seed), scene.WithThreshold(o.threshold))
	if err != nil {
		log.Error("build scene", slog.String("error", err.Error()))
		return 1
	}
	log.Info("scene built",
		slog.Int64("seed", o.seed),
		slog.Int("particles", len(sc.Particles)),
		slog.Int("nodes", len(sc.Nodes)),
		slog.Int("edges", len(sc.Edges)),
		slog.Int("components", len(sc.Components())),
	)
	return 0
}

func loadChart(path string) (*flowchart.Chart, error) {
	if path == "" {
		return flowchart.CheatSheet(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return flowchart.Decode(f, flowchart.WithAcyclic(), flowchart.WithReachable())
}

// replay opens a session, leaves Start through its next link when answers
// are given, and applies the answers in order. The session is returned even
// on error so the partial trail can be shown.
func replay(c *flowchart.Chart, answers []flowchart.Answer, log *slog.Logger) (*flowchart.Session, error) {
	s := c.NewSession()
	if len(answers) == 0 {
		return s, nil
	}
	if _, err := s.Advance(); err != nil {
		return s, err
	}
	for i, a := range answers {
		from := s.Current()
		to, err := s.Answer(a)
		if err != nil {
			return s, fmt.Errorf("answer %d: %w", i, err)
		}
		log.Debug("step", slog.String("from", from), slog.String("answer", a.String()), slog.String("to", to))
	}
	return s, nil
}

func printTrail(w io.Writer, s *flowchart.Session) {
	c := s.Chart()
	labels := make([]string, 0, s.Len())
	for _, id := range s.Trail() {
		n, _ := c.Lookup(id)
		labels = append(labels, label(n))
	}
	fmt.Fprintln(w, strings.Join(labels, color.HiBlackString(" → ")))

	n := s.CurrentNode()
	if !n.Kind().Outcome() {
		fmt.Fprintf(w, "%s %s\n", color.YellowString("at:"), label(n))
		return
	}
	fmt.Fprintf(w, "%s %s\n", color.GreenString("outcome:"), label(n))
	if d := n.Description(); d != "" {
		fmt.Fprintln(w, "  "+d)
	}
}

func label(n flowchart.Node) string {
	var txt string
	switch n.Kind() {
	case flowchart.Start:
		txt = color.New(color.Bold).Sprint(n.Label())
	case flowchart.Decision:
		txt = color.New(color.FgCyan).Sprint(n.Label())
	case flowchart.Category:
		txt = color.New(color.FgGreen).Sprint(n.Label())
	default:
		txt = color.New(color.FgRed).Sprint(n.Label())
	}
	if s := n.LabelSecondary(); s != "" {
		txt += " (" + s + ")"
	}
	return txt
}
