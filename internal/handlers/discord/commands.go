package discord

import (
	"fmt"

	"github.com/KirkDiggler/dnd-dice-bot/internal/clients/dnd5e"
	"github.com/bwmarrin/discordgo"
)

// shortcutFaces are the die sizes that get their own /rollN command
var shortcutFaces = []int{20, 12, 10, 8, 6, 4}

// srdClasses back the /hitdie choices when the class list was not fetched
var srdClasses = []string{
	"barbarian", "bard", "cleric", "druid", "fighter", "monk",
	"paladin", "ranger", "rogue", "sorcerer", "warlock", "wizard",
}

// Discord accepts at most 25 choices per option
const maxChoices = 25

// maxFormulaLength bounds free-text formula options
const maxFormulaLength = 300

const helpText = "🎲 **Dice bot**\n" +
	"`/roll 2d20 + d6 + &Dexterity - 2 Stealth` rolls any formula:\n" +
	"• dice: `2d6`, `d20`, `3д8`\n" +
	"• numbers after `+` or `-` are modifiers\n" +
	"• `$DEX` and `&Dexterity` add your active character's modifiers\n" +
	"• a last word like `Stealth` describes the roll\n" +
	"`/roll20` … `/roll4` roll one die plus anything you add.\n" +
	"`/char create`, `/char attr`, `/char throw` and `/throw` keep your character's numbers handy."

func minValue(v float64) *float64 {
	return &v
}

func commands(classes []*dnd5e.Class) []*discordgo.ApplicationCommand {
	cmds := []*discordgo.ApplicationCommand{
		{
			Name:        "roll",
			Description: "Roll a dice formula, e.g. 2d20 + 3 Attack",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "formula",
					Description: "Dice, modifiers, attribute references and a description",
					Required:    true,
					MaxLength:   maxFormulaLength,
				},
			},
		},
		{
			Name:        "throw",
			Description: "Roll a formula saved on your active character",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Name of the saved throw",
					Required:    true,
				},
			},
		},
		{
			Name:        "hitdie",
			Description: "Roll the hit die of a class",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "class",
					Description: "Class to roll for",
					Required:    true,
					Choices:     classChoices(classes),
				},
			},
		},
		{
			Name:        "char",
			Description: "Manage the characters you roll as",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "create",
					Description: "Create a character",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Character name",
							Required:    true,
						},
					},
				},
				{
					Name:        "use",
					Description: "Switch the character you roll as",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Character name",
							Required:    true,
						},
					},
				},
				{
					Name:        "list",
					Description: "List your characters",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "attr",
					Description: "Set an attribute of your active character",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Attribute name, referenced as &name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "value",
							Description: "Score; the modifier is derived from it",
							Required:    true,
							MinValue:    minValue(1),
							MaxValue:    30,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "alias",
							Description: "Short alias, referenced as $alias",
						},
					},
				},
				{
					Name:        "throw",
					Description: "Save a formula on your active character",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Throw name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "formula",
							Description: "Formula to save",
							Required:    true,
							MaxLength:   maxFormulaLength,
						},
					},
				},
			},
		},
		{
			Name:        "dice-help",
			Description: "How to write dice formulas",
		},
	}

	for _, faces := range shortcutFaces {
		cmds = append(cmds, &discordgo.ApplicationCommand{
			Name:        shortcutName(faces),
			Description: fmt.Sprintf("Roll a d%d", faces),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "extra",
					Description: "Anything to add, e.g. + 5 Attack",
					MaxLength:   maxFormulaLength,
				},
			},
		})
	}

	return cmds
}

func shortcutName(faces int) string {
	return fmt.Sprintf("roll%d", faces)
}

func classChoices(classes []*dnd5e.Class) []*discordgo.ApplicationCommandOptionChoice {
	if len(classes) == 0 {
		choices := make([]*discordgo.ApplicationCommandOptionChoice, len(srdClasses))
		for i, key := range srdClasses {
			choices[i] = &discordgo.ApplicationCommandOptionChoice{Name: key, Value: key}
		}
		return choices
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(classes))
	for _, class := range classes {
		if len(choices) == maxChoices {
			break
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: class.Name, Value: class.Key})
	}
	return choices
}
