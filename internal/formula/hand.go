package formula

import (
	"errors"
	"fmt"
	"strings"

	dnderr "github.com/KirkDiggler/dnd-dice-bot/internal/errors"
)

// ErrInvalidFormula is returned when a formula holds no recognizable dice token
var ErrInvalidFormula = errors.New("no dice found in formula")

// sign is the arithmetic sign applied to the next numeric token
type sign int

const (
	positive sign = 1
	negative sign = -1
)

// Hand is a parsed, not yet rolled formula
type Hand struct {
	// Dice in formula order; this order is also the log order
	Dice []*DiceGroup

	// Attributes in formula order, resolved once at parse time
	Attributes []AttributeReference

	// Modifiers with their sign already applied
	Modifiers []int

	// Description is the trailing free-text word, if any
	Description string
}

// Parse classifies every token of formula and assembles a Hand, resolving
// attribute references through resolver. A nil resolver leaves every
// reference unresolved. Formulas without dice return ErrInvalidFormula.
func Parse(formula string, resolver AttributeResolver) (*Hand, error) {
	hand := &Hand{}
	current := positive

	for _, tok := range Tokenize(formula) {
		switch tok.Kind {
		case KindDice:
			hand.Dice = append(hand.Dice, NewDiceGroup(tok.Count, tok.Faces))
		case KindModifier:
			hand.Modifiers = append(hand.Modifiers, int(current)*tok.Value)
			current = positive
		case KindAliasRef:
			hand.Attributes = append(hand.Attributes, resolveAlias(resolver, tok.Name))
		case KindNameRef:
			hand.Attributes = append(hand.Attributes, resolveName(resolver, tok.Name))
		case KindDescription:
			hand.Description = tok.Name
		case KindSign:
			current = sign(tok.Value)
		}
	}

	if len(hand.Dice) == 0 {
		return nil, dnderr.WrapWithCode(ErrInvalidFormula, dnderr.CodeValidation, "invalid formula").
			WithMeta("formula", formula)
	}

	return hand, nil
}

// HasExtras reports whether anything besides dice contributes to the total
func (h *Hand) HasExtras() bool {
	return len(h.Modifiers) > 0 || len(h.Attributes) > 0
}

// ModifierTotal is the sum of the signed numeric modifiers
func (h *Hand) ModifierTotal() int {
	total := 0
	for _, m := range h.Modifiers {
		total += m
	}
	return total
}

// String renders the hand in canonical notation, e.g. "2d6 1d20 + Dexterity - 2"
func (h *Hand) String() string {
	parts := make([]string, 0, len(h.Dice))
	for _, g := range h.Dice {
		parts = append(parts, g.String())
	}

	var b strings.Builder
	b.WriteString(strings.Join(parts, " "))
	for _, a := range h.Attributes {
		fmt.Fprintf(&b, " + %s", a.Label)
	}
	for _, m := range h.Modifiers {
		if m < 0 {
			fmt.Fprintf(&b, " - %d", -m)
		} else {
			fmt.Fprintf(&b, " + %d", m)
		}
	}
	return b.String()
}
