package discord

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/KirkDiggler/dnd-dice-bot/internal/entities"
	dnderr "github.com/KirkDiggler/dnd-dice-bot/internal/errors"
	"github.com/KirkDiggler/dnd-dice-bot/internal/formula"
	"github.com/KirkDiggler/dnd-dice-bot/internal/services/roll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRoll(t *testing.T) {
	out := &roll.RollOutput{Outcome: &formula.Outcome{
		Notation:    "1d20 + 3",
		Result:      23,
		Log:         "🎲 ---> ⚡**20!** = **20**\n➕ Modifier: **+ 3**",
		Description: "Attack",
		DisplayName: "Tall",
	}}

	want := "@Tall rolled ***1d20 + 3*** **----> Attack**:\n" +
		"🎲 ---> ⚡**20!** = **20**\n➕ Modifier: **+ 3**\n" +
		"📋 **Result:** **23**"
	assert.Equal(t, want, RenderRoll(out))
}

func TestRenderRoll_NoDescription(t *testing.T) {
	out := &roll.RollOutput{Outcome: &formula.Outcome{
		Notation: "1d6", Result: 4, Log: "🎲 ---> 4", DisplayName: "Tall",
	}}

	assert.True(t, strings.HasPrefix(RenderRoll(out), "@Tall rolled ***1d6***:\n"))
}

func TestRenderRoll_TruncatesLongLogs(t *testing.T) {
	lines := make([]string, 300)
	for i := range lines {
		lines[i] = "➕ Modifier: **+ 100**"
	}
	out := &roll.RollOutput{Outcome: &formula.Outcome{
		Notation: "1d6", Result: 30000, Log: strings.Join(lines, "\n"), DisplayName: "Tall",
	}}

	rendered := RenderRoll(out)
	assert.LessOrEqual(t, len(rendered), messageLimit)
	assert.Contains(t, rendered, truncatedMarker)
	assert.True(t, strings.HasSuffix(rendered, "📋 **Result:** **30000**"))
}

func TestRenderRoll_LongFormulaStaysUnderLimit(t *testing.T) {
	notation := strings.TrimSpace(strings.Repeat("1d20 ", 600))
	lines := make([]string, 600)
	for i := range lines {
		lines[i] = fmt.Sprintf("**%d:** *rolling 1d20:* 7 = **7**", i+1)
	}
	out := &roll.RollOutput{Outcome: &formula.Outcome{
		Notation:    notation,
		Result:      4200,
		Log:         strings.Join(lines, "\n"),
		Description: "Attack",
		DisplayName: strings.Repeat("Д", 200),
	}}

	rendered := RenderRoll(out)
	assert.LessOrEqual(t, len(rendered), messageLimit)
	assert.True(t, utf8.ValidString(rendered))
	assert.Contains(t, rendered, "…***")
	assert.Contains(t, rendered, "**1:** *rolling 1d20:*")
	assert.True(t, strings.HasSuffix(rendered, "📋 **Result:** **4200**"))
}

func TestTruncateLog_CutsOversizedFirstLine(t *testing.T) {
	values := make([]string, 999)
	for i := range values {
		values[i] = "999"
	}
	log := "🎲 ---> " + strings.Join(values, " + ") + " = **998001**"

	got := truncateLog(log, 500)
	assert.LessOrEqual(t, len(got), 500)
	assert.True(t, strings.HasPrefix(got, "🎲 ---> 999 + 999"))
	assert.True(t, strings.HasSuffix(got, "…"+truncatedMarker))
}

func TestCutRunes_KeepsRunesWhole(t *testing.T) {
	got := cutRunes("a"+strings.Repeat("д", 60), 40)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "a"+strings.Repeat("д", 39)+"…", got)
	assert.Equal(t, "2d6", cutRunes("2d6", 40))
}

func TestRenderInvalidFormula(t *testing.T) {
	assert.Equal(t,
		"🛑 **Sorry, this format is not acceptable.**\n*Check the example:* **2d100 + 2**",
		RenderInvalidFormula("  "))
	assert.Equal(t,
		"🛑 **Sorry, this format `abc` is not acceptable.**\n*Check the example:* **2d100 + 2**",
		RenderInvalidFormula("`abc`"))

	long := RenderInvalidFormula(strings.Repeat("x", 150))
	assert.Contains(t, long, strings.Repeat("x", 100)+"…`")

	cyrillic := RenderInvalidFormula("a" + strings.Repeat("д", 120))
	assert.True(t, utf8.ValidString(cyrillic))
	assert.Contains(t, cyrillic, "a"+strings.Repeat("д", 99)+"…`")
}

func TestRenderError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   string
		wantOK bool
	}{
		{
			name:   "not found keeps innermost message",
			err:    dnderr.Wrap(dnderr.NotFoundf("you have no characters yet"), "failed to switch character"),
			want:   "❌ you have no characters yet",
			wantOK: true,
		},
		{
			name:   "already exists",
			err:    dnderr.AlreadyExistsf("character 'Tall' already exists"),
			want:   "❌ character 'Tall' already exists",
			wantOK: true,
		},
		{
			name: "unavailable",
			err:  dnderr.New(dnderr.CodeUnavailable, "redis down"),
			want: "❌ The dice are stuck, try again in a moment.",
		},
		{
			name: "internal",
			err:  dnderr.Internalf("boom"),
			want: "❌ Something went wrong, try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := RenderError(tt.err)
			assert.Equal(t, tt.want, msg)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestRenderCharacters(t *testing.T) {
	tall := &entities.Character{Name: "Tall", Active: true}
	tall.SetAttribute(entities.NewAttribute("Dexterity", "DEX", 15))
	tall.SaveThrow(&entities.Throw{Name: "Stealth", Formula: "d20 + $DEX"})

	embed := RenderCharacters([]*entities.Character{{Name: "Short"}, tall})

	require.Len(t, embed.Fields, 2)
	assert.Equal(t, colorActive, embed.Color)
	assert.Equal(t, "Short", embed.Fields[0].Name)
	assert.Equal(t, "*no attributes or throws yet*", embed.Fields[0].Value)
	assert.Equal(t, "✅ Tall", embed.Fields[1].Name)
	assert.Equal(t, "🔸 Dexterity: 15 (+2) `&Dexterity / $DEX`\n🎯 Stealth: `d20 + $DEX`", embed.Fields[1].Value)
}
