// Command toptreebench times an incremental minimum spanning forest run
// against two independent oracles, on a DIMACS-style edge-stream file.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/toptree/dimacs"
	"github.com/katalvlaran/toptree/msf"
	"github.com/katalvlaran/toptree/oracle"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	app := &cli.App{
		Name:      "toptreebench",
		Usage:     "benchmark the top-tree MSF loop against two oracles",
		ArgsUsage: "<edge-stream-file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "method",
				Value: "all",
				Usage: "which implementation(s) to run: all, toptree, kruskal, naive",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, log)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context, log *slog.Logger) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("missing required argument: <edge-stream-file>", 1)
	}
	method := c.String("method")

	log.Info("parsing edge stream", "path", path)
	edges, err := dimacs.ParseFile(path)
	if err != nil {
		return fmt.Errorf("toptreebench: %w", err)
	}
	log.Info("parsed edge stream", "edges", len(edges))

	if method == "all" || method == "toptree" {
		start := time.Now()
		f := msf.NewForest()
		for _, e := range edges {
			f.Process(e.U, e.V, e.Weight)
		}
		elapsed := time.Since(start)
		log.Info("top-tree MSF", "total_weight", f.TotalWeight(), "elapsed", elapsed)
		fmt.Printf("toptree:  total=%d elapsed=%s\n", f.TotalWeight(), elapsed)
	}

	if method == "all" || method == "kruskal" {
		start := time.Now()
		_, total, err := oracle.Kruskal(edges)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("toptreebench: kruskal: %w", err)
		}
		log.Info("offline kruskal", "total_weight", total, "elapsed", elapsed)
		fmt.Printf("kruskal:  total=%d elapsed=%s\n", total, elapsed)
	}

	if method == "all" || method == "naive" {
		start := time.Now()
		n := oracle.NewNaive()
		for _, e := range edges {
			n.Process(e.U, e.V, e.Weight)
		}
		elapsed := time.Since(start)
		log.Info("naive dynamic MST", "total_weight", n.TotalWeight(), "elapsed", elapsed)
		fmt.Printf("naive:    total=%d elapsed=%s\n", n.TotalWeight(), elapsed)
	}

	return nil
}
