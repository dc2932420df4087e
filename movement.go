package main // import "github.com/tonobo/battlesnake-search"

import "github.com/joonazan/vec2"

type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"

	// NoMove is returned by searches that found no legal move.
	NoMove Direction = ""

	DefaultMove = Down
)

var (
	// Directions is the enumeration order of legal moves. Searches
	// break ties in favour of the earlier entry.
	Directions = []Direction{Up, Down, Left, Right}

	// pathDirections is the neighbor expansion order of the pathfinder.
	pathDirections = []Direction{Up, Down, Right, Left}

	// DirectionVectors holds the vector to subtract from a position to
	// step in a direction.
	DirectionVectors = map[Direction]vec2.Vector{
		Left:  {X: 1, Y: 0},
		Up:    {X: 0, Y: -1},
		Right: {X: -1, Y: 0},
		Down:  {X: 0, Y: 1},
	}
)

// DirectionTo returns the direction of the single step from -> to, or
// NoMove if the points are not adjacent.
func DirectionTo(from, to Point) Direction {
	dx, dy := to.X-from.X, to.Y-from.Y
	switch {
	case dx == 1 && dy == 0:
		return Right
	case dx == -1 && dy == 0:
		return Left
	case dx == 0 && dy == 1:
		return Up
	case dx == 0 && dy == -1:
		return Down
	}
	return NoMove
}

// SafeMoves lists, in Directions order, the moves that keep our head on
// the board and off our own body. The whole body counts, tail included.
func SafeMoves(state GameState) []Direction {
	moves := make([]Direction, 0, len(Directions))
	if len(state.You.Body) == 0 {
		return moves
	}
	head := state.You.Head()
	for _, d := range Directions {
		next := head.Add(d)
		if !IsValid(state.Board.Width, state.Board.Height, next.X, next.Y) {
			continue
		}
		if state.You.Occupies(next) {
			continue
		}
		moves = append(moves, d)
	}
	return moves
}

// AvoidHeadCollisions drops moves whose destination an opponent head of
// at least our length could also enter next turn. If nothing would be
// left the moves are returned unchanged.
func AvoidHeadCollisions(state GameState, moves []Direction) []Direction {
	if len(state.You.Body) == 0 {
		return moves
	}
	threatened := map[Point]struct{}{}
	for _, snake := range state.OtherSnakes() {
		if len(snake.Body) == 0 || len(snake.Body) < len(state.You.Body) {
			continue
		}
		for _, d := range Directions {
			threatened[snake.Head().Add(d)] = struct{}{}
		}
	}
	if len(threatened) == 0 {
		return moves
	}
	head := state.You.Head()
	kept := make([]Direction, 0, len(moves))
	for _, d := range moves {
		if _, found := threatened[head.Add(d)]; found {
			continue
		}
		kept = append(kept, d)
	}
	if len(kept) == 0 {
		return moves
	}
	return kept
}

// ApplyMove returns the state after our snake steps once in direction d.
// Only You changes: the body keeps its length, health is untouched and
// the board, our own entry in Board.Snakes included, stays as it was.
// The input state is not modified and shares no memory with the result.
func ApplyMove(state GameState, d Direction) GameState {
	next := state.Clone()
	if len(next.You.Body) == 0 {
		return next
	}
	body := make([]Point, len(next.You.Body))
	body[0] = next.You.Head().Add(d)
	copy(body[1:], next.You.Body[:len(next.You.Body)-1])
	next.You.Body = body
	return next
}
