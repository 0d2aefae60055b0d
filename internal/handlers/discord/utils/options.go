package utils

import "github.com/bwmarrin/discordgo"

// GetCommandOption finds an option by name, descending through the subcommand
// group and subcommand the interaction was invoked with.
func GetCommandOption(i *discordgo.InteractionCreate, name string) *discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options

	for len(options) > 0 {
		for _, opt := range options {
			if opt.Name == name && !isSubcommand(opt) {
				return opt
			}
		}

		if !isSubcommand(options[0]) {
			break
		}
		options = options[0].Options
	}

	return nil
}

// Subcommand returns the name of the invoked subcommand, empty for plain commands
func Subcommand(i *discordgo.InteractionCreate) string {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 || !isSubcommand(options[0]) {
		return ""
	}
	if options[0].Type == discordgo.ApplicationCommandOptionSubCommandGroup && len(options[0].Options) > 0 {
		return options[0].Options[0].Name
	}
	return options[0].Name
}

// GetStringOption returns a string option value, empty when absent
func GetStringOption(i *discordgo.InteractionCreate, name string) string {
	opt := GetCommandOption(i, name)
	if opt == nil || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}
	return opt.StringValue()
}

// GetIntOption returns an integer option value and whether it was supplied
func GetIntOption(i *discordgo.InteractionCreate, name string) (int64, bool) {
	opt := GetCommandOption(i, name)
	if opt == nil || opt.Type != discordgo.ApplicationCommandOptionInteger {
		return 0, false
	}
	return opt.IntValue(), true
}

func isSubcommand(opt *discordgo.ApplicationCommandInteractionDataOption) bool {
	return opt.Type == discordgo.ApplicationCommandOptionSubCommand ||
		opt.Type == discordgo.ApplicationCommandOptionSubCommandGroup
}
