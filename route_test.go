package main

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireWalkable(t *testing.T, state GameState, path []Point) {
	t.Helper()
	seen := map[Point]bool{}
	for i, p := range path {
		require.True(t, IsValid(state.Board.Width, state.Board.Height, p.X, p.Y), "off board %v", p)
		require.False(t, seen[p], "revisits %v", p)
		seen[p] = true
		if i == 0 {
			continue
		}
		require.Equal(t, 1, Manhattan(path[i-1], p), "gap between %v and %v", path[i-1], p)
		require.False(t, IsBlocked(state.Board.Snakes, p.X, p.Y), "blocked %v", p)
	}
}

func TestFindPathEmptyBoard(t *testing.T) {
	state := newState(5, 5, newSnake("you", 100, pt(0, 0)))
	path, ok := FindPath(state, pt(0, 0), pt(4, 4))
	require.True(t, ok)
	require.Len(t, path, 9)
	require.Equal(t, pt(0, 0), path[0])
	require.Equal(t, pt(4, 4), path[8])
	requireWalkable(t, state, path)
}

func TestFindPathSourceIsGoal(t *testing.T) {
	state := newState(5, 5, newSnake("you", 100, pt(2, 2)))
	path, ok := FindPath(state, pt(2, 2), pt(2, 2))
	require.False(t, ok)
	require.Nil(t, path)
}

func TestFindPathBlockedGoal(t *testing.T) {
	state := newState(5, 5, newSnake("you", 100, pt(0, 0)), newSnake("other", 100, pt(3, 3), pt(3, 4)))
	_, ok := FindPath(state, pt(0, 0), pt(3, 3))
	require.False(t, ok)
}

func TestFindPathEnclosedGoal(t *testing.T) {
	state := newState(5, 5, newSnake("you", 100, pt(4, 4), pt(4, 3), pt(4, 2)), ring())
	require.False(t, IsBlocked(state.Board.Snakes, 1, 1))
	_, ok := FindPath(state, pt(4, 4), pt(1, 1))
	require.False(t, ok)
}

func TestFindPathOffBoardGoal(t *testing.T) {
	state := newState(5, 5, newSnake("you", 100, pt(0, 0)))
	_, ok := FindPath(state, pt(0, 0), pt(5, 5))
	require.False(t, ok)
}

func TestFindPathThroughTail(t *testing.T) {
	wall := newSnake("wall", 100, pt(2, 0), pt(2, 1), pt(2, 2), pt(2, 3), pt(2, 4))
	state := newState(5, 5, newSnake("you", 100, pt(0, 0)), wall)
	path, ok := FindPath(state, pt(0, 0), pt(4, 0))
	require.True(t, ok)
	require.Len(t, path, 13)
	require.Contains(t, path, pt(2, 4))
	requireWalkable(t, state, path)
}

func TestFindPathToTail(t *testing.T) {
	state := newState(3, 1, newSnake("you", 100, pt(0, 0)), newSnake("other", 100, pt(2, 0)))
	path, ok := FindPath(state, pt(0, 0), pt(2, 0))
	require.True(t, ok)
	require.Equal(t, []Point{pt(0, 0), pt(1, 0), pt(2, 0)}, path)
}

func TestFindPathIsShortest(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		state := randomState(newRand(seed))
		head := state.You.Head()
		for _, food := range state.Board.Food {
			path, ok := FindPath(state, head, food)
			want := bfsDistance(state, head, food)
			if want < 0 {
				require.False(t, ok, "seed %d", seed)
				continue
			}
			require.True(t, ok, "seed %d", seed)
			require.Equal(t, want, len(path)-1, "seed %d", seed)
			requireWalkable(t, state, path)
		}
	}
}

// bfsDistance is the unweighted step count over the same obstacle model,
// or -1 when the goal cannot be reached.
func bfsDistance(state GameState, source, goal Point) int {
	if source == goal || IsBlocked(state.Board.Snakes, goal.X, goal.Y) {
		return -1
	}
	dist := map[Point]int{source: 0}
	queue := []Point{source}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			n := p.Add(d)
			if _, seen := dist[n]; seen {
				continue
			}
			if !IsValid(state.Board.Width, state.Board.Height, n.X, n.Y) || IsBlocked(state.Board.Snakes, n.X, n.Y) {
				continue
			}
			dist[n] = dist[p] + 1
			if n == goal {
				return dist[n]
			}
			queue = append(queue, n)
		}
	}
	return -1
}

func TestRoutesOrdering(t *testing.T) {
	routes := Routes{
		{ID: 0, Unresolved: true},
		{ID: 1, Path: make([]Point, 5)},
		{ID: 2, Path: make([]Point, 3)},
		{ID: 3, Path: make([]Point, 3)},
	}
	sort.Stable(routes)
	ids := []int{}
	for _, r := range routes {
		ids = append(ids, r.ID)
	}
	require.Equal(t, []int{2, 3, 1, 0}, ids)
	require.Equal(t, 2, routes[0].StepCount())
	require.Equal(t, NoMove, routes[3].Direction())
}

func TestPathfindingPicksShortestFood(t *testing.T) {
	state := newState(5, 5, newSnake("you", 100, pt(0, 0)))
	state.Board.Food = []Point{pt(4, 4), pt(0, 2)}
	require.Equal(t, Up, SelectMoveViaPathfinding(state))
}

func TestPathfindingFirstFoodWinsTies(t *testing.T) {
	state := newState(5, 5, newSnake("you", 100, pt(0, 0)))
	state.Board.Food = []Point{pt(2, 0), pt(0, 2)}
	require.Equal(t, Right, SelectMoveViaPathfinding(state))

	state.Board.Food = []Point{pt(0, 2), pt(2, 0)}
	require.Equal(t, Up, SelectMoveViaPathfinding(state))
}

func TestPathfindingFallback(t *testing.T) {
	state := newState(5, 5, newSnake("you", 100, pt(0, 0)))
	require.Equal(t, DefaultMove, SelectMoveViaPathfinding(state))

	state = newState(5, 5, newSnake("you", 100, pt(4, 4), pt(4, 3), pt(4, 2)), ring())
	state.Board.Food = []Point{pt(1, 1)}
	require.Equal(t, DefaultMove, SelectMoveViaPathfinding(state))
}

func TestPathfindingEndToEnd(t *testing.T) {
	you := newSnake("you", 100, pt(0, 0), pt(0, 0), pt(0, 0))
	state := newState(11, 11, you)
	state.Board.Food = []Point{pt(10, 10)}

	move := SelectMoveViaPathfinding(state)
	require.Contains(t, []Direction{Right, Up}, move)
	for i := 0; i < 5; i++ {
		require.Equal(t, move, SelectMoveViaPathfinding(state))
	}
}
