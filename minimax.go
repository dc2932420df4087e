package main // import "github.com/tonobo/battlesnake-search"

import (
	"math"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Searcher runs a depth-bounded minimax over our own moves. Maximizing
// plies pick our best continuation, minimizing plies the worst one,
// standing in for an opponent forcing us into it.
type Searcher struct {
	// Pruning enables alpha-beta cutoffs. The root value is the same
	// either way, only Nodes changes.
	Pruning bool
	// AvoidHeads applies AvoidHeadCollisions to the root moves.
	AvoidHeads bool
	// Nodes counts states visited by the last Decide call.
	Nodes int
}

func NewSearcher() *Searcher {
	return &Searcher{Pruning: true}
}

// Decide searches maxDepth plies from state, starting with us to move.
// It returns the root value and the move reaching it, NoMove when there
// is no legal move or maxDepth is zero.
func (s *Searcher) Decide(state GameState, maxDepth int) (float64, Direction) {
	s.Nodes = 0
	return s.search(state, maxDepth, math.Inf(-1), math.Inf(1), true, true)
}

func (s *Searcher) search(state GameState, depth int, alpha, beta float64, maximizing, root bool) (float64, Direction) {
	s.Nodes++
	if depth <= 0 || state.You.Dead() {
		return Evaluate(state), NoMove
	}
	moves := SafeMoves(state)
	if root && s.AvoidHeads {
		moves = AvoidHeadCollisions(state, moves)
	}
	if len(moves) == 0 {
		return Evaluate(state), NoMove
	}

	best := NoMove
	if maximizing {
		value := math.Inf(-1)
		for _, d := range moves {
			v, _ := s.search(ApplyMove(state, d), depth-1, alpha, beta, false, false)
			if v > value {
				value, best = v, d
			}
			if !s.Pruning {
				continue
			}
			alpha = math.Max(alpha, value)
			if alpha >= beta {
				break
			}
		}
		return value, best
	}

	value := math.Inf(1)
	for _, d := range moves {
		v, _ := s.search(ApplyMove(state, d), depth-1, alpha, beta, true, false)
		if v < value {
			value, best = v, d
		}
		if !s.Pruning {
			continue
		}
		beta = math.Min(beta, value)
		if beta <= alpha {
			break
		}
	}
	return value, best
}

type MinimaxStrategy struct {
	Depth      int
	Pruning    bool
	AvoidHeads bool
	Logger     log.Logger
}

func (s MinimaxStrategy) Name() string {
	return StrategyMinimax
}

func (s MinimaxStrategy) Move(state GameState) Direction {
	searcher := &Searcher{Pruning: s.Pruning, AvoidHeads: s.AvoidHeads}
	value, move := searcher.Decide(state, s.Depth)
	if s.Logger != nil {
		_ = level.Debug(s.Logger).Log("msg", "minimax", "depth", s.Depth, "value", value, "move", move, "nodes", searcher.Nodes)
	}
	if move == NoMove {
		return DefaultMove
	}
	return move
}

// SelectMoveViaMinimax searches depth plies with pruning and returns the
// best root move, or DefaultMove when there is none.
func SelectMoveViaMinimax(state GameState, depth int) Direction {
	return MinimaxStrategy{Depth: depth, Pruning: true}.Move(state)
}
