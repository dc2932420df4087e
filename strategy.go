package main // import "github.com/tonobo/battlesnake-search"

import (
	"context"
	"fmt"

	"github.com/go-kit/log"
)

const (
	StrategyAStar   = "astar"
	StrategyMinimax = "minimax"
)

// Strategy picks one move per turn from a snapshot.
type Strategy interface {
	Name() string
	Move(state GameState) Direction
}

func NewStrategy(cfg Config, logger log.Logger) (Strategy, error) {
	switch cfg.Strategy {
	case StrategyAStar:
		return PathfindingStrategy{Logger: logger}, nil
	case StrategyMinimax:
		return MinimaxStrategy{
			Depth:      cfg.Depth,
			Pruning:    !cfg.NoPruning,
			AvoidHeads: cfg.AvoidHeads,
			Logger:     logger,
		}, nil
	}
	return nil, fmt.Errorf("unknown strategy %q", cfg.Strategy)
}

// SelectMove runs the strategy until ctx is done. The search itself is
// not interruptible, so on timeout its result is abandoned and
// FallbackMove is returned instead.
func SelectMove(ctx context.Context, strategy Strategy, state GameState, avoidHeads bool) (Direction, bool) {
	// The search gets its own copy so an abandoned run never races the caller.
	snapshot := state.Clone()
	done := make(chan Direction, 1)
	go func() {
		done <- strategy.Move(snapshot)
	}()
	select {
	case move := <-done:
		return move, true
	case <-ctx.Done():
		return FallbackMove(state, avoidHeads), false
	}
}

// FallbackMove is the first safe move, or DefaultMove. With avoidHeads
// it prefers moves away from larger opponent heads.
func FallbackMove(state GameState, avoidHeads bool) Direction {
	moves := SafeMoves(state)
	if avoidHeads {
		moves = AvoidHeadCollisions(state, moves)
	}
	if len(moves) == 0 {
		return DefaultMove
	}
	return moves[0]
}
