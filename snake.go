package main // import "github.com/tonobo/battlesnake-search"

type Snake struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Health int     `json:"health"`
	Body   []Point `json:"body"`
}

func (s Snake) Head() Point {
	return s.Body[0]
}

func (s Snake) Dead() bool {
	return s.Health == 0
}

func (s Snake) Clone() Snake {
	out := s
	if s.Body != nil {
		out.Body = make([]Point, len(s.Body))
		copy(out.Body, s.Body)
	}
	return out
}

// Occupies reports whether p is any segment of the snake, tail included.
func (s Snake) Occupies(p Point) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}

// IsBlocked reports whether (x,y) is covered by a body segment of any of
// the snakes. Each snake's tail is skipped since it moves off the cell
// before anything can step onto it.
func IsBlocked(snakes []Snake, x, y int) bool {
	p := Point{X: x, Y: y}
	for _, snake := range snakes {
		if len(snake.Body) == 0 {
			continue
		}
		for _, b := range snake.Body[:len(snake.Body)-1] {
			if b == p {
				return true
			}
		}
	}
	return false
}
