package main // import "github.com/tonobo/battlesnake-search"

import (
	"fmt"
	"io"
	"strings"
)

var SnakeIDList = []string{"a", "b", "c", "d", "e", "g", "h", "j", "k"}

type Board struct {
	Height int     `json:"height"`
	Width  int     `json:"width"`
	Food   []Point `json:"food"`
	Snakes []Snake `json:"snakes"`
}

type Game struct {
	ID      string `json:"id"`
	Timeout int    `json:"timeout"`
}

// GameState is the snapshot handed over once per turn. You is also
// listed in Board.Snakes under the same ID.
type GameState struct {
	Game  Game  `json:"game"`
	Turn  int   `json:"turn"`
	Board Board `json:"board"`
	You   Snake `json:"you"`
}

func (b Board) Clone() Board {
	out := Board{Height: b.Height, Width: b.Width}
	if b.Food != nil {
		out.Food = make([]Point, len(b.Food))
		copy(out.Food, b.Food)
	}
	if b.Snakes != nil {
		out.Snakes = make([]Snake, len(b.Snakes))
		for i, snake := range b.Snakes {
			out.Snakes[i] = snake.Clone()
		}
	}
	return out
}

// Clone returns a deep copy sharing no slices with s.
func (s GameState) Clone() GameState {
	return GameState{
		Game:  s.Game,
		Turn:  s.Turn,
		Board: s.Board.Clone(),
		You:   s.You.Clone(),
	}
}

// OtherSnakes returns every snake on the board except You.
func (s GameState) OtherSnakes() []Snake {
	others := make([]Snake, 0, len(s.Board.Snakes))
	for _, snake := range s.Board.Snakes {
		if snake.ID == s.You.ID {
			continue
		}
		others = append(others, snake)
	}
	return others
}

// ReachableArea counts the empty cells reachable from origin through
// 4-connected moves. Every body segment listed on the board, tails
// included, is a wall. The origin itself is not counted.
func ReachableArea(state GameState, origin Point) int {
	width, height := state.Board.Width, state.Board.Height
	visited := make([]bool, width*height)
	mark := func(p Point) {
		if IsValid(width, height, p.X, p.Y) {
			visited[p.Y*width+p.X] = true
		}
	}
	for _, snake := range state.Board.Snakes {
		for _, segment := range snake.Body {
			mark(segment)
		}
	}
	mark(origin)

	area := 0
	queue := []Point{origin}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			next := current.Add(d)
			if !IsValid(width, height, next.X, next.Y) || visited[next.Y*width+next.X] {
				continue
			}
			visited[next.Y*width+next.X] = true
			area++
			queue = append(queue, next)
		}
	}
	return area
}

// PrintGrid renders the board top row first. Food is F, our snake is M
// (head) and m, other snakes use a letter per snake, upper case for heads.
func PrintGrid(w io.Writer, state GameState) {
	width, height := state.Board.Width, state.Board.Height
	grid := make([][]string, height)
	for y := range grid {
		grid[y] = make([]string, width)
		for x := range grid[y] {
			grid[y][x] = "-"
		}
	}
	set := func(p Point, c string) {
		if IsValid(width, height, p.X, p.Y) {
			grid[p.Y][p.X] = c
		}
	}
	for _, food := range state.Board.Food {
		set(food, "F")
	}
	other := 0
	for _, snake := range state.Board.Snakes {
		body, head := "m", "M"
		if snake.ID != state.You.ID {
			body = SnakeIDList[other%len(SnakeIDList)]
			head = strings.ToUpper(body)
			other++
		}
		for i := len(snake.Body) - 1; i >= 0; i-- {
			if i == 0 {
				set(snake.Body[i], head)
			} else {
				set(snake.Body[i], body)
			}
		}
	}
	for y := height - 1; y >= 0; y-- {
		fmt.Fprint(w, strings.Join(grid[y], ""), "\n")
	}
	fmt.Fprint(w, "\n")
}
