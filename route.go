package main // import "github.com/tonobo/battlesnake-search"

import (
	"container/heap"
	"sort"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type searchNode struct {
	f, g, h int
	parent  Point
	opened  bool
}

type frontierItem struct {
	f     int
	seq   int
	point Point
}

// frontier is a min-heap on f. Equal f values pop in insertion order.
type frontier []frontierItem

func (q frontier) Len() int { return len(q) }
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}
func (q frontier) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *frontier) Push(x interface{}) { *q = append(*q, x.(frontierItem)) }
func (q *frontier) Pop() interface{} {
	old := *q
	item := old[len(old)-1]
	*q = old[:len(old)-1]
	return item
}

// FindPath runs A* from source to goal over cells not blocked by any
// snake (tails are free, see IsBlocked). The path holds both endpoints.
// ok is false when goal is blocked, equals source, or cannot be reached.
func FindPath(state GameState, source, goal Point) (path []Point, ok bool) {
	width, height := state.Board.Width, state.Board.Height
	snakes := state.Board.Snakes
	if IsBlocked(snakes, goal.X, goal.Y) {
		return nil, false
	}
	if source == goal {
		return nil, false
	}
	if !IsValid(width, height, source.X, source.Y) {
		return nil, false
	}

	index := func(p Point) int { return p.Y*width + p.X }
	nodes := make([]searchNode, width*height)
	closed := make([]bool, width*height)

	nodes[index(source)] = searchNode{parent: source, opened: true}
	open := &frontier{}
	seq := 0
	heap.Push(open, frontierItem{f: 0, seq: seq, point: source})

	for open.Len() > 0 {
		current := heap.Pop(open).(frontierItem).point
		if closed[index(current)] {
			continue
		}
		closed[index(current)] = true

		for _, d := range pathDirections {
			next := current.Add(d)
			if !IsValid(width, height, next.X, next.Y) {
				continue
			}
			if IsBlocked(snakes, next.X, next.Y) || closed[index(next)] {
				continue
			}
			if next == goal {
				nodes[index(next)].parent = current
				return tracePath(nodes, index, source, goal), true
			}
			g := nodes[index(current)].g + 1
			h := Manhattan(next, goal)
			node := &nodes[index(next)]
			if !node.opened || node.f > g+h {
				*node = searchNode{f: g + h, g: g, h: h, parent: current, opened: true}
				seq++
				heap.Push(open, frontierItem{f: g + h, seq: seq, point: next})
			}
		}
	}
	return nil, false
}

func tracePath(nodes []searchNode, index func(Point) int, source, goal Point) []Point {
	path := []Point{goal}
	for p := goal; p != source; {
		p = nodes[index(p)].parent
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type Route struct {
	ID         int
	From       Point
	To         Point
	Path       []Point
	Unresolved bool
}

type Routes []*Route

// Resolved routes sort before unresolved ones, shorter paths first.
func (p Routes) Len() int { return len(p) }
func (p Routes) Less(i, j int) bool {
	if p[i].Unresolved != p[j].Unresolved {
		return !p[i].Unresolved
	}
	return len(p[i].Path) < len(p[j].Path)
}
func (p Routes) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

func (r *Route) Resolve(state GameState) {
	path, ok := FindPath(state, r.From, r.To)
	r.Path = path
	r.Unresolved = !ok
}

func (r *Route) StepCount() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Direction is the first step of the route.
func (r *Route) Direction() Direction {
	if r.Unresolved || len(r.Path) < 2 {
		return NoMove
	}
	return DirectionTo(r.Path[0], r.Path[1])
}

func (r *Route) Print(logger log.Logger) {
	_ = level.Debug(logger).Log(
		"msg", "route",
		"id", r.ID,
		"to", r.To,
		"distance", r.From.Vec().Minus(r.To.Vec()).Length(),
		"steps", r.StepCount(),
		"step", r.Direction(),
		"unresolved", r.Unresolved,
	)
}

// FoodRoutes resolves one route from our head to every food, in the
// order the food is listed.
func FoodRoutes(state GameState) Routes {
	routes := make(Routes, len(state.Board.Food))
	for i, food := range state.Board.Food {
		route := &Route{ID: i, From: state.You.Head(), To: food}
		route.Resolve(state)
		routes[i] = route
	}
	return routes
}

// PathfindingStrategy heads for the closest reachable food by path length.
type PathfindingStrategy struct {
	Logger log.Logger
}

func (s PathfindingStrategy) Name() string {
	return StrategyAStar
}

func (s PathfindingStrategy) Move(state GameState) Direction {
	logger := s.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if len(state.You.Body) == 0 {
		return DefaultMove
	}
	routes := FoodRoutes(state)
	for _, route := range routes {
		route.Print(logger)
	}
	sort.Stable(routes)
	if len(routes) == 0 || routes[0].Unresolved {
		_ = level.Debug(logger).Log("msg", "no food reachable, using default", "move", DefaultMove)
		return DefaultMove
	}
	return routes[0].Direction()
}

// SelectMoveViaPathfinding returns the first step of the shortest path
// to any food, or DefaultMove when no food can be reached.
func SelectMoveViaPathfinding(state GameState) Direction {
	return PathfindingStrategy{}.Move(state)
}
