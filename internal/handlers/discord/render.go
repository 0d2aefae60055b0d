package discord

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/dnd-dice-bot/internal/entities"
	dnderr "github.com/KirkDiggler/dnd-dice-bot/internal/errors"
	"github.com/KirkDiggler/dnd-dice-bot/internal/formula"
	"github.com/KirkDiggler/dnd-dice-bot/internal/services/roll"
	"github.com/bwmarrin/discordgo"
)

// Discord limits on message content and embed field values
const (
	messageLimit = 2000
	fieldLimit   = 1024
)

// Limits on user-controlled text echoed in replies, in runes
const (
	maxNotationRunes = 300
	maxNameRunes     = 64
	maxEchoRunes     = 100
)

const (
	resultEmoji = "📋"
	stopEmoji   = "🛑"
	errorEmoji  = "❌"

	truncatedMarker = "\n*…log truncated…*"

	colorActive = 0x2ecc71
	colorIdle   = 0x3498db
)

// RenderRoll formats an evaluated roll as a chat reply
func RenderRoll(out *roll.RollOutput) string {
	outcome := out.Outcome

	header := fmt.Sprintf("@%s rolled ***%s***",
		cutRunes(outcome.DisplayName, maxNameRunes), cutRunes(outcome.Notation, maxNotationRunes))
	if outcome.Description != "" {
		header += fmt.Sprintf(" **----> %s**", cutRunes(outcome.Description, maxNameRunes))
	}
	header += ":"

	footer := fmt.Sprintf("%s **Result:** **%d**", resultEmoji, outcome.Result)

	budget := messageLimit - len(header) - len(footer) - 2
	return header + "\n" + truncateLog(outcome.Log, budget) + "\n" + footer
}

// truncateLog drops whole trailing lines until log fits in budget bytes. A
// first line that is too long on its own is cut instead.
func truncateLog(log string, budget int) string {
	if len(log) <= budget {
		return log
	}
	if budget <= len(truncatedMarker) {
		return ""
	}

	lines := strings.Split(log, "\n")
	var b strings.Builder
	for _, line := range lines {
		if b.Len()+len(line)+1+len(truncatedMarker) > budget {
			if b.Len() == 0 {
				b.WriteString(cutBytes(line, budget-len(truncatedMarker)-len("…")))
				b.WriteString("…")
			}
			break
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)
	}
	return b.String() + truncatedMarker
}

// cutBytes returns the longest prefix of s within max bytes that does not
// split a rune
func cutBytes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	end := 0
	for end < len(s) {
		_, size := utf8.DecodeRuneInString(s[end:])
		if end+size > max {
			break
		}
		end += size
	}
	return s[:end]
}

// cutRunes keeps the first max runes of s, marking a cut with an ellipsis
func cutRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	end := 0
	for n := 0; n < max; n++ {
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	return s[:end] + "…"
}

// RenderInvalidFormula is the reply for input without dice. The formula is
// echoed back when the user typed one.
func RenderInvalidFormula(input string) string {
	input = strings.TrimSpace(strings.ReplaceAll(input, "`", ""))
	if input == "" {
		return stopEmoji + " **Sorry, this format is not acceptable.**\n*Check the example:* **2d100 + 2**"
	}

	input = cutRunes(input, maxEchoRunes)
	return fmt.Sprintf("%s **Sorry, this format `%s` is not acceptable.**\n*Check the example:* **2d100 + 2**",
		stopEmoji, input)
}

// RenderError turns a service error into a message for the user. ok is false
// for failures the user cannot fix.
func RenderError(err error) (message string, ok bool) {
	switch dnderr.GetCode(err) {
	case dnderr.CodeNotFound, dnderr.CodeInvalidArgument, dnderr.CodeAlreadyExists, dnderr.CodeValidation:
		return fmt.Sprintf("%s %s", errorEmoji, userMessage(err)), true
	case dnderr.CodeUnavailable:
		return errorEmoji + " The dice are stuck, try again in a moment.", false
	default:
		return errorEmoji + " Something went wrong, try again later.", false
	}
}

// userMessage returns the message of the innermost coded error
func userMessage(err error) string {
	msg := err.Error()
	for cur := err; cur != nil; {
		var coded *dnderr.Error
		if !errors.As(cur, &coded) {
			break
		}
		msg = coded.Message
		cur = coded.Cause
	}
	return msg
}

// RenderCharacters builds the embed listing a user's characters
func RenderCharacters(chars []*entities.Character) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "📚 Your Characters",
		Description: fmt.Sprintf("You have %d character(s):", len(chars)),
		Color:       colorIdle,
		Fields:      make([]*discordgo.MessageEmbedField, 0, len(chars)),
	}

	for _, char := range chars {
		name := char.Name
		if char.Active {
			name = "✅ " + name
			embed.Color = colorActive
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  name,
			Value: truncateLog(characterSummary(char), fieldLimit),
		})
	}
	return embed
}

func characterSummary(char *entities.Character) string {
	var lines []string
	for _, attr := range char.Attributes {
		ref := "&" + attr.Name
		if attr.Alias != "" {
			ref += " / $" + attr.Alias
		}
		mod := "no modifier"
		if attr.Modifier != nil {
			mod = fmt.Sprintf("%+d", *attr.Modifier)
		}
		lines = append(lines, fmt.Sprintf("🔸 %s: %d (%s) `%s`", attr.Name, attr.Value, mod, ref))
	}
	for _, t := range char.Throws {
		lines = append(lines, fmt.Sprintf("🎯 %s: `%s`", t.Name, t.Formula))
	}
	if len(lines) == 0 {
		return "*no attributes or throws yet*"
	}
	return strings.Join(lines, "\n")
}

// isInvalidFormula reports whether err means the input held no dice
func isInvalidFormula(err error) bool {
	return errors.Is(err, formula.ErrInvalidFormula)
}
