package main // import "github.com/tonobo/battlesnake-search"

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log/level"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := ParseConfig(args, os.Getenv("PORT"), stderr)
	if err != nil {
		return err
	}
	logger := NewLogger(stderr, cfg.Debug)
	strategy, err := NewStrategy(cfg, logger)
	if err != nil {
		return err
	}

	if cfg.Move {
		return moveOnce(stdin, stdout, strategy)
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	server := NewServer(cfg, logger, strategy)
	_ = level.Info(logger).Log("msg", "listening", "addr", cfg.Listen, "strategy", strategy.Name(), "depth", cfg.Depth)
	return server.Router().Run(cfg.Listen)
}

// moveOnce decodes a single move request, prints the board and the move.
func moveOnce(stdin io.Reader, stdout io.Writer, strategy Strategy) error {
	var state GameState
	if err := json.NewDecoder(stdin).Decode(&state); err != nil {
		return fmt.Errorf("decode move request: %w", err)
	}
	PrintGrid(stdout, state)
	fmt.Fprintln(stdout, strategy.Move(state))
	return nil
}
