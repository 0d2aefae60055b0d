package dice

import (
	tkdice "github.com/KirkDiggler/rpg-toolkit/dice"

	dnderr "github.com/KirkDiggler/dnd-dice-bot/internal/errors"
)

// randomRoller implements Roller on top of the rpg-toolkit roller.
// The toolkit default is crypto backed and safe for concurrent use.
type randomRoller struct {
	source tkdice.Roller
}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return NewRandomRollerWithSource(tkdice.DefaultRoller)
}

// NewRandomRollerWithSource creates a roller drawing from the given toolkit roller
func NewRandomRollerWithSource(source tkdice.Roller) Roller {
	if source == nil {
		source = tkdice.DefaultRoller
	}

	return &randomRoller{
		source: source,
	}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if err := validate(count, sides); err != nil {
		return nil, err
	}

	if count == 0 {
		return NewRollResult(sides, bonus, []int{}), nil
	}

	rolls, err := r.source.RollN(count, sides)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to roll %dd%d", count, sides)
	}

	if len(rolls) != count {
		return nil, dnderr.Internalf("expected %d rolls for %dd%d, got %d", count, count, sides, len(rolls))
	}

	for _, roll := range rolls {
		if roll < 1 || roll > sides {
			return nil, dnderr.Internalf("roll %d out of range for d%d", roll, sides)
		}
	}

	return NewRollResult(sides, bonus, rolls), nil
}
