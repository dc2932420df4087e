package main // import "github.com/tonobo/battlesnake-search"

import (
	"fmt"

	"github.com/joonazan/vec2"
)

// Point is a board coordinate. (0,0) is the bottom-left cell, y grows up.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func (p Point) Vec() vec2.Vector {
	return vec2.Vector{X: float64(p.X), Y: float64(p.Y)}
}

// Add returns the neighbor of p in direction d.
func (p Point) Add(d Direction) Point {
	v := p.Vec().Minus(DirectionVectors[d])
	return Point{X: int(v.X), Y: int(v.Y)}
}

// IsValid reports whether (x,y) lies on a width x height board.
func IsValid(width, height, x, y int) bool {
	return x >= 0 && x < width && y >= 0 && y < height
}

func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
