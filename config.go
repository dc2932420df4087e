package main // import "github.com/tonobo/battlesnake-search"

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"
)

var (
	DefaultDepth       = 3
	DefaultMoveTimeout = 500 * time.Millisecond
	DefaultLatency     = 150 * time.Millisecond
	MinComputeTime     = 50 * time.Millisecond
)

type Config struct {
	Listen     string
	Strategy   string
	Depth      int
	Timeout    time.Duration
	Latency    time.Duration
	AvoidHeads bool
	NoPruning  bool
	LogDir     string
	Debug      bool
	Move       bool
}

// ParseConfig reads flags from args. A non-empty port overrides the
// port of -listen.
func ParseConfig(args []string, port string, output io.Writer) (Config, error) {
	var cfg Config
	fs := flag.NewFlagSet("battlesnake", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Listen, "listen", ":8080", "HTTP listen address")
	fs.StringVar(&cfg.Strategy, "strategy", StrategyMinimax, "move strategy: astar or minimax")
	fs.IntVar(&cfg.Depth, "depth", DefaultDepth, "minimax search depth in plies")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultMoveTimeout, "move timeout when the game does not set one")
	fs.DurationVar(&cfg.Latency, "latency", DefaultLatency, "time reserved for network latency")
	fs.BoolVar(&cfg.AvoidHeads, "avoid-heads", false, "avoid cells larger opponents can reach next turn")
	fs.BoolVar(&cfg.NoPruning, "no-pruning", false, "disable alpha-beta pruning")
	fs.StringVar(&cfg.LogDir, "log-dir", "", "directory for per-game logs")
	fs.BoolVar(&cfg.Debug, "debug", false, "debug logging")
	fs.BoolVar(&cfg.Move, "move", false, "read one move request from stdin and print the move")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if port != "" {
		cfg.Listen = ":" + port
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Strategy != StrategyAStar && c.Strategy != StrategyMinimax {
		return fmt.Errorf("unknown strategy %q", c.Strategy)
	}
	if c.Depth < 0 {
		return errors.New("depth must not be negative")
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	return nil
}

// ComputeTime is the search budget for a game with the given timeout in
// milliseconds; zero means the configured default.
func (c Config) ComputeTime(gameTimeout int) time.Duration {
	timeout := c.Timeout
	if gameTimeout > 0 {
		timeout = time.Duration(gameTimeout) * time.Millisecond
	}
	compute := timeout - c.Latency
	if compute < MinComputeTime {
		compute = MinComputeTime
	}
	return compute
}
