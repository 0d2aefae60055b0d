package formula

import (
	"fmt"

	"github.com/KirkDiggler/dnd-dice-bot/internal/dice"
	dnderr "github.com/KirkDiggler/dnd-dice-bot/internal/errors"
)

// DiceGroup is a request to roll Count dice of Faces sides together.
// Results are drawn at most once and cached for the lifetime of the group.
type DiceGroup struct {
	Count int
	Faces int

	results []int
	rolled  bool
}

// NewDiceGroup creates an unrolled dice group
func NewDiceGroup(count, faces int) *DiceGroup {
	return &DiceGroup{
		Count: count,
		Faces: faces,
	}
}

func (g *DiceGroup) String() string {
	return fmt.Sprintf("%dd%d", g.Count, g.Faces)
}

// Degenerate reports whether the group is made of one-sided dice
func (g *DiceGroup) Degenerate() bool {
	return g.Faces == 1
}

// Rolled reports whether results have been drawn
func (g *DiceGroup) Rolled() bool {
	return g.rolled
}

// Results draws the group's values on first call and returns the cached values afterwards.
// One-sided dice never reach the roller: each of them is a 1.
func (g *DiceGroup) Results(roller dice.Roller) ([]int, error) {
	if g.rolled {
		return g.results, nil
	}

	switch {
	case g.Count == 0:
		g.results = []int{}
	case g.Degenerate():
		g.results = make([]int, g.Count)
		for i := range g.results {
			g.results[i] = 1
		}
	default:
		if roller == nil {
			return nil, dnderr.InvalidArgument("roller is required")
		}

		result, err := roller.Roll(g.Count, g.Faces, 0)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to roll %s", g)
		}
		if len(result.Rolls) != g.Count {
			return nil, dnderr.Internalf("roller returned %d values for %s", len(result.Rolls), g)
		}
		for _, v := range result.Rolls {
			if v < 1 || v > g.Faces {
				return nil, dnderr.Internalf("roller returned %d for %s", v, g)
			}
		}
		g.results = result.Rolls
	}

	g.rolled = true
	return g.results, nil
}

// Sum is the total of the drawn values, zero before the group is rolled
func (g *DiceGroup) Sum() int {
	total := 0
	for _, v := range g.results {
		total += v
	}
	return total
}

// HasValue reports whether any drawn value equals v
func (g *DiceGroup) HasValue(v int) bool {
	for _, r := range g.results {
		if r == v {
			return true
		}
	}
	return false
}
