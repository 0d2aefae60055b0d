package dice

import (
	"fmt"
	"strconv"
	"strings"

	dnderr "github.com/KirkDiggler/dnd-dice-bot/internal/errors"
)

// RollResult contains detailed information about a dice roll
type RollResult struct {
	Total    int   // Sum of all dice plus bonus
	Rolls    []int // Individual die results, in draw order
	Bonus    int   // Bonus applied
	Count    int   // Number of dice rolled
	Sides    int   // Number of sides on each die
	RawTotal int   // Sum of all dice without the bonus
}

func (r *RollResult) String() string {
	values := make([]string, len(r.Rolls))
	for i, v := range r.Rolls {
		values[i] = strconv.Itoa(v)
	}

	notation := fmt.Sprintf("%dd%d", r.Count, r.Sides)
	if r.Bonus != 0 {
		notation += fmt.Sprintf("%+d", r.Bonus)
	}
	return fmt.Sprintf("%s [%s] = %d", notation, strings.Join(values, ","), r.Total)
}

// NewRollResult builds a result from already drawn values
func NewRollResult(sides, bonus int, rolls []int) *RollResult {
	raw := 0
	for _, v := range rolls {
		raw += v
	}

	return &RollResult{
		Total:    raw + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    len(rolls),
		Sides:    sides,
		RawTotal: raw,
	}
}

// validate rejects requests no die could satisfy
func validate(count, sides int) error {
	if count < 0 {
		return dnderr.InvalidArgumentf("invalid dice count %d", count).
			WithMeta("count", count)
	}

	if sides < 1 {
		return dnderr.InvalidArgumentf("invalid dice size %d", sides).
			WithMeta("sides", sides)
	}

	return nil
}
