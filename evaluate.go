package main // import "github.com/tonobo/battlesnake-search"

const (
	FoodHealthLimit     = 50
	SnakeHealthHungry   = 25
	SnakeHealthCritical = 15

	// EnemyHeadRange is the head distance under which opponents cost points.
	EnemyHeadRange = 10
)

// Evaluate scores a position for our snake, higher is better. It sums
// health, length, area reachable from our head, a penalty per nearby
// opponent head and, when hungry, a bonus for being close to food.
func Evaluate(state GameState) float64 {
	you := state.You
	if len(you.Body) == 0 {
		return float64(you.Health) / 100.0
	}
	head := you.Head()

	score := float64(you.Health)/100.0 + float64(len(you.Body))
	score += float64(ReachableArea(state, head)) / 10.0

	for _, snake := range state.OtherSnakes() {
		if len(snake.Body) == 0 {
			continue
		}
		distance := Manhattan(head, snake.Head())
		if distance < EnemyHeadRange {
			score -= float64(EnemyHeadRange-distance) / 10.0
		}
	}

	return score + foodBonus(state)
}

func foodBonus(state GameState) float64 {
	health := state.You.Health
	if health >= FoodHealthLimit || len(state.Board.Food) == 0 {
		return 0
	}
	head := state.You.Head()
	closest := -1
	for _, food := range state.Board.Food {
		if d := Manhattan(head, food); closest < 0 || d < closest {
			closest = d
		}
	}

	weight := 10.0
	switch {
	case health < SnakeHealthCritical:
		weight = 20.0
	case health < SnakeHealthHungry:
		weight = 15.0
	}
	return weight / float64(closest+1)
}
