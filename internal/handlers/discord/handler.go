package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/dnd-dice-bot/internal/clients/dnd5e"
	dnderr "github.com/KirkDiggler/dnd-dice-bot/internal/errors"
	"github.com/KirkDiggler/dnd-dice-bot/internal/handlers/discord/utils"
	"github.com/KirkDiggler/dnd-dice-bot/internal/services"
	characterService "github.com/KirkDiggler/dnd-dice-bot/internal/services/character"
	rollService "github.com/KirkDiggler/dnd-dice-bot/internal/services/roll"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// commandTimeout bounds the work done for one interaction. Discord drops
// responses that arrive after three seconds.
const commandTimeout = 2500 * time.Millisecond

// Handler handles Discord interactions
type Handler struct {
	rollService      rollService.Service
	characterService characterService.Service
	classes          []*dnd5e.Class
	logger           *zap.Logger
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider // Required
	Classes         []*dnd5e.Class     // Choices for /hitdie, the SRD list when empty
	Logger          *zap.Logger
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil || cfg.ServiceProvider == nil {
		panic("service provider is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		rollService:      cfg.ServiceProvider.RollService,
		characterService: cfg.ServiceProvider.CharacterService,
		classes:          cfg.Classes,
		logger:           logger.Named("discord"),
	}
}

// Commands returns the slash commands the handler serves
func (h *Handler) Commands() []*discordgo.ApplicationCommand {
	return commands(h.classes)
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range h.Commands() {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd); err != nil {
			return dnderr.Wrapf(err, "failed to create command %s", cmd.Name)
		}
		h.logger.Debug("registered command", zap.String("command", cmd.Name), zap.String("guild_id", guildID))
	}
	return nil
}

// HandleInteraction handles Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	resp := h.Respond(ctx, i)
	if err := s.InteractionRespond(i.Interaction, resp); err != nil {
		h.logger.Error("failed to respond to interaction",
			zap.String("command", i.ApplicationCommandData().Name),
			zap.Error(err))
	}
}

// Respond builds the reply for an application command interaction
func (h *Handler) Respond(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	data := i.ApplicationCommandData()
	user := interactionUser(i)
	if user == nil {
		return ephemeral(errorEmoji + " Could not tell who sent this command.")
	}

	switch data.Name {
	case "roll":
		return h.roll(ctx, user, utils.GetStringOption(i, "formula"))
	case "throw":
		out, err := h.rollService.RollThrow(ctx, &rollService.RollThrowInput{
			UserID:      user.ID,
			DisplayName: user.DisplayName,
			Name:        utils.GetStringOption(i, "name"),
		})
		return h.rollReply(out, err, "")
	case "hitdie":
		out, err := h.rollService.RollHitDie(ctx, &rollService.RollHitDieInput{
			UserID:      user.ID,
			DisplayName: user.DisplayName,
			ClassKey:    utils.GetStringOption(i, "class"),
		})
		return h.rollReply(out, err, "")
	case "char":
		return h.character(ctx, user, i)
	case "dice-help":
		return ephemeral(helpText)
	}

	if faces, ok := shortcutFacesOf(data.Name); ok {
		return h.roll(ctx, user, rollService.Shortcut(faces, utils.GetStringOption(i, "extra")))
	}

	h.logger.Warn("unknown command", zap.String("command", data.Name))
	return ephemeral(errorEmoji + " Unknown command.")
}

func (h *Handler) roll(ctx context.Context, user *chatUser, raw string) *discordgo.InteractionResponse {
	out, err := h.rollService.Roll(ctx, &rollService.RollInput{
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		Formula:     raw,
	})
	return h.rollReply(out, err, raw)
}

// rollReply renders a roll publicly and failures privately
func (h *Handler) rollReply(out *rollService.RollOutput, err error, raw string) *discordgo.InteractionResponse {
	if err != nil {
		if isInvalidFormula(err) {
			return ephemeral(RenderInvalidFormula(raw))
		}
		return h.errorReply(err)
	}
	return message(RenderRoll(out))
}

func (h *Handler) character(ctx context.Context, user *chatUser, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	switch sub := utils.Subcommand(i); sub {
	case "create":
		char, err := h.characterService.Create(ctx, &characterService.CreateInput{
			OwnerID: user.ID,
			Name:    utils.GetStringOption(i, "name"),
		})
		if err != nil {
			return h.errorReply(err)
		}
		msg := fmt.Sprintf("✨ Created **%s**.", char.Name)
		if char.Active {
			msg += " You are now rolling as them."
		} else {
			msg += fmt.Sprintf(" Use `/char use name:%s` to roll as them.", char.Name)
		}
		return ephemeral(msg)

	case "use":
		char, err := h.characterService.SetActive(ctx, &characterService.SetActiveInput{
			OwnerID: user.ID,
			Name:    utils.GetStringOption(i, "name"),
		})
		if err != nil {
			return h.errorReply(err)
		}
		return ephemeral(fmt.Sprintf("🎭 You are now rolling as **%s**.", char.Name))

	case "list":
		chars, err := h.characterService.List(ctx, user.ID)
		if err != nil {
			return h.errorReply(err)
		}
		if len(chars) == 0 {
			return ephemeral("📚 You have no characters yet. Use `/char create` to make one.")
		}
		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds: []*discordgo.MessageEmbed{RenderCharacters(chars)},
				Flags:  discordgo.MessageFlagsEphemeral,
			},
		}

	case "attr":
		value, _ := utils.GetIntOption(i, "value")
		input := &characterService.SetAttributeInput{
			OwnerID: user.ID,
			Name:    utils.GetStringOption(i, "name"),
			Alias:   utils.GetStringOption(i, "alias"),
			Value:   int(value),
		}
		char, err := h.characterService.SetAttribute(ctx, input)
		if err != nil {
			return h.errorReply(err)
		}
		attr := char.Attribute(input.Name)
		if attr == nil || attr.Modifier == nil {
			return ephemeral(fmt.Sprintf("🔸 **%s** of %s set to %d.", input.Name, char.Name, input.Value))
		}
		return ephemeral(fmt.Sprintf("🔸 **%s** of %s set to %d (%+d).", attr.Name, char.Name, attr.Value, *attr.Modifier))

	case "throw":
		input := &characterService.SaveThrowInput{
			OwnerID: user.ID,
			Name:    utils.GetStringOption(i, "name"),
			Formula: utils.GetStringOption(i, "formula"),
		}
		char, err := h.characterService.SaveThrow(ctx, input)
		if err != nil {
			if isInvalidFormula(err) {
				return ephemeral(RenderInvalidFormula(input.Formula))
			}
			return h.errorReply(err)
		}
		return ephemeral(fmt.Sprintf("🎯 Saved **%s** on %s. Roll it with `/throw name:%s`.",
			strings.TrimSpace(input.Name), char.Name, strings.TrimSpace(input.Name)))

	default:
		h.logger.Warn("unknown char subcommand", zap.String("subcommand", sub))
		return ephemeral(errorEmoji + " Unknown subcommand.")
	}
}

func (h *Handler) errorReply(err error) *discordgo.InteractionResponse {
	msg, ok := RenderError(err)
	if !ok {
		h.logger.Error("command failed", zap.Error(err), zap.String("code", string(dnderr.GetCode(err))))
	}
	return ephemeral(msg)
}

// chatUser is the sender of an interaction
type chatUser struct {
	ID          string
	DisplayName string
}

// interactionUser reads the sender from a guild member or, in DMs, the user
func interactionUser(i *discordgo.InteractionCreate) *chatUser {
	if i.Member != nil && i.Member.User != nil {
		name := i.Member.Nick
		if name == "" {
			name = userLabel(i.Member.User)
		}
		return &chatUser{ID: i.Member.User.ID, DisplayName: name}
	}
	if i.User != nil {
		return &chatUser{ID: i.User.ID, DisplayName: userLabel(i.User)}
	}
	return nil
}

func userLabel(u *discordgo.User) string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

// shortcutFacesOf parses the die size out of a /rollN command name
func shortcutFacesOf(name string) (int, bool) {
	rest, found := strings.CutPrefix(name, "roll")
	if !found {
		return 0, false
	}
	faces, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	for _, f := range shortcutFaces {
		if f == faces {
			return faces, true
		}
	}
	return 0, false
}

func message(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	}
}

func ephemeral(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}
