package formula

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dnd-dice-bot/internal/dice"
)

const (
	diceEmoji  = "🎲"
	critEmoji  = "⚡"
	attrEmoji  = "🔸"
	plusEmoji  = "➕"
	minusEmoji = "➖"

	surpriseLine = "**Wow.** You've rolled d1. Result is **1**, what an *astonishing* surprise!"
)

// Evaluation is a rolled hand: the final number and how it was reached
type Evaluation struct {
	Result int
	Log    string
}

// Evaluate rolls every dice group of hand in formula order and renders the log.
// Groups that were already rolled keep their values, so evaluating a hand twice
// yields the same result and log.
func Evaluate(hand *Hand, roller dice.Roller) (*Evaluation, error) {
	lines := make([]string, 0, len(hand.Dice)+len(hand.Attributes)+len(hand.Modifiers))
	total := 0
	numbered := len(hand.Dice) > 1
	extras := hand.HasExtras()

	for i, group := range hand.Dice {
		results, err := group.Results(roller)
		if err != nil {
			return nil, err
		}
		total += group.Sum()
		lines = append(lines, renderGroup(i+1, group, results, numbered, extras))
	}

	for _, attr := range hand.Attributes {
		total += attr.Value()
		lines = append(lines, renderAttribute(attr))
	}

	for _, m := range hand.Modifiers {
		total += m
		lines = append(lines, renderModifier(m))
	}

	return &Evaluation{
		Result: total,
		Log:    strings.Join(lines, "\n"),
	}, nil
}

func renderGroup(ordinal int, group *DiceGroup, results []int, numbered, extras bool) string {
	var b strings.Builder
	if numbered {
		fmt.Fprintf(&b, "%s **%d:** *rolling %s:*", diceEmoji, ordinal, group)
	} else {
		fmt.Fprintf(&b, "%s --->", diceEmoji)
	}

	if group.Degenerate() {
		b.WriteString(" " + surpriseLine)
		if group.Count != 1 {
			fmt.Fprintf(&b, " (x%d = **%d**)", group.Count, group.Sum())
		}
		return b.String()
	}

	switch {
	case len(results) == 0:
		b.WriteString(" nothing to roll = **0**")
		return b.String()
	case len(results) > 1 || extras:
		values := make([]string, len(results))
		for i, v := range results {
			values[i] = strconv.Itoa(v)
		}
		fmt.Fprintf(&b, " %s = **%d**", strings.Join(values, " + "), group.Sum())
	default:
		// trailing space keeps the lone value delimited for marking
		fmt.Fprintf(&b, " %d ", results[0])
	}

	line := b.String()
	if group.HasValue(group.Faces) {
		line = markFirst(line, group.Faces, critEmoji+"**%d!**")
	}
	if group.Faces >= 6 && group.HasValue(1) {
		line = markFirst(line, 1, "**%d...**")
	}
	return strings.TrimRight(line, " ")
}

// markFirst emphasizes the first space-delimited occurrence of value in line,
// unless that emphasis is already present.
func markFirst(line string, value int, format string) string {
	marked := fmt.Sprintf(format, value)
	if strings.Contains(line, marked) {
		return line
	}

	plain := " " + strconv.Itoa(value) + " "
	return strings.Replace(line, plain, " "+marked+" ", 1)
}

func renderAttribute(attr AttributeReference) string {
	if !attr.Resolved() {
		return fmt.Sprintf("%s %s: *no modifier*", attrEmoji, attr.Label)
	}
	return fmt.Sprintf("%s %s: **%+d**", attrEmoji, attr.Label, *attr.Modifier)
}

func renderModifier(m int) string {
	if m < 0 {
		return fmt.Sprintf("%s Modifier: **- %d**", minusEmoji, -m)
	}
	return fmt.Sprintf("%s Modifier: **+ %d**", plusEmoji, m)
}
