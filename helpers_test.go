package main

import "math/rand"

func pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func newSnake(id string, health int, body ...Point) Snake {
	return Snake{ID: id, Name: id, Health: health, Body: body}
}

// newState puts you first in the board's snake list, followed by others.
func newState(width, height int, you Snake, others ...Snake) GameState {
	return GameState{
		Game: Game{ID: "game-1"},
		Board: Board{
			Width:  width,
			Height: height,
			Snakes: append([]Snake{you.Clone()}, others...),
		},
		You: you,
	}
}

// randomBody walks from a random free cell, never stepping onto used cells.
func randomBody(r *rand.Rand, width, height, length int, used map[Point]bool) []Point {
	var head Point
	for tries := 0; ; tries++ {
		head = pt(r.Intn(width), r.Intn(height))
		if !used[head] || tries > 100 {
			break
		}
	}
	body := []Point{head}
	used[head] = true
	for len(body) < length {
		last := body[len(body)-1]
		var options []Point
		for _, d := range Directions {
			next := last.Add(d)
			if IsValid(width, height, next.X, next.Y) && !used[next] {
				options = append(options, next)
			}
		}
		if len(options) == 0 {
			break
		}
		next := options[r.Intn(len(options))]
		used[next] = true
		body = append(body, next)
	}
	return body
}

func randomState(r *rand.Rand) GameState {
	width, height := 4+r.Intn(4), 4+r.Intn(4)
	used := map[Point]bool{}
	you := newSnake("you", 1+r.Intn(100), randomBody(r, width, height, 1+r.Intn(5), used)...)
	other := newSnake("other", 1+r.Intn(100), randomBody(r, width, height, 1+r.Intn(5), used)...)
	state := newState(width, height, you, other)
	for i := r.Intn(3); i > 0; i-- {
		food := pt(r.Intn(width), r.Intn(height))
		if !used[food] {
			state.Board.Food = append(state.Board.Food, food)
		}
	}
	return state
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
