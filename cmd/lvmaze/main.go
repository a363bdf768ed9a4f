// Command lvmaze generates a maze, drives one search over it headlessly and
// prints the final board.
//
//	lvmaze -rows 8 -cols 16 -bias 0.4 -mode dfs
//	lvmaze -config lvmaze.yaml -mode manual -moves right,down,down
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/game"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/mst"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "lvmaze:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("lvmaze", flag.ContinueOnError)
	var (
		path     = fs.String("config", "", "YAML config file")
		envFile  = fs.String("env", ".env", "dotenv file with LVMAZE_* overrides")
		rows     = fs.Int("rows", 0, "grid rows")
		cols     = fs.Int("cols", 0, "grid columns")
		bias     = fs.Float64("bias", 0, "corridor bias in [-1, 1]; positive favors vertical passages")
		seed     = fs.Int64("seed", 0, "random seed, 0 for clock")
		mode     = fs.String("mode", "", "manual, bfs or dfs")
		moves    = fs.String("moves", "", "comma separated directions for manual mode")
		maxTicks = fs.Int("ticks", 0, "tick limit for automatic searches, 0 for none")
		method   = fs.String("method", "", "spanning tree method: kruskal or prim")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*path, config.WithEnvFile(*envFile))
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = *rows
		case "cols":
			cfg.Cols = *cols
		case "bias":
			cfg.Bias = *bias
		case "seed":
			cfg.Seed = *seed
		case "mode":
			cfg.Mode = strings.ToLower(*mode)
		case "moves":
			cfg.Moves = strings.Split(*moves, ",")
		case "ticks":
			cfg.MaxTicks = *maxTicks
		case "method":
			cfg.Method = strings.ToLower(*method)
		}
	})
	if err = cfg.Validate(); err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, _ := cfg.Level()
	log.SetLevel(level)

	s, err := game.NewSession(cfg.Rows, cfg.Cols, cfg.Bias,
		game.WithLogger(log),
		game.WithShowVisited(cfg.ShowVisited),
		game.WithMazeOptions(maze.WithSeed(cfg.Seed), maze.WithMethod(mst.Method(cfg.Method))),
	)
	if err != nil {
		return err
	}

	ticks, err := drive(s, cfg)
	if err != nil {
		return err
	}

	v := s.View()
	fmt.Fprint(stdout, s.Render())
	fmt.Fprintf(stdout, "mode=%s solved=%t ticks=%s visited=%s route=%s wrong_moves=%s walls=%s\n",
		v.Mode, v.Complete,
		humanize.Comma(int64(ticks)),
		humanize.Comma(int64(len(s.Traverser().Processed()))),
		humanize.Comma(int64(len(v.Solution))),
		humanize.Comma(int64(v.WrongMoves)),
		humanize.Comma(int64(s.Maze().Walls())),
	)
	return nil
}

// drive runs the configured search and returns the number of ticks or moves
// it consumed.
func drive(s *game.Session, cfg config.Config) (int, error) {
	switch cfg.Mode {
	case config.ModeBreadth:
		if err := s.HandleKey(game.KeyBreadth); err != nil {
			return 0, err
		}
	case config.ModeDepth:
		if err := s.HandleKey(game.KeyDepth); err != nil {
			return 0, err
		}
	case config.ModeManual:
		n := 0
		for _, m := range cfg.Moves {
			if s.Traverser().Complete() {
				break
			}
			if m = strings.TrimSpace(m); m == "" {
				continue
			}
			if err := s.HandleKey(strings.ToLower(m)); err != nil {
				return n, err
			}
			n++
		}
		return n, nil
	}

	n := 0
	for !s.Traverser().Complete() && (cfg.MaxTicks == 0 || n < cfg.MaxTicks) {
		if err := s.Tick(); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
