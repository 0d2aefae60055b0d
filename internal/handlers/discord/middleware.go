package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// InteractionFunc is the discordgo callback for interaction events
type InteractionFunc func(*discordgo.Session, *discordgo.InteractionCreate)

// RecoverMiddleware wraps handler functions to recover from panics
func RecoverMiddleware(logger *zap.Logger, handlerName string, handler InteractionFunc) InteractionFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic in interaction handler",
					zap.String("handler", handlerName),
					zap.Any("panic", r),
					zap.Stack("stack"))

				respondWithError(logger, s, i, "Something went wrong, try again later.")
			}
		}()

		handler(s, i)
	}
}

// respondWithError attempts to send an error message to the user
func respondWithError(logger *zap.Logger, s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	content := fmt.Sprintf("%s %s", errorEmoji, message)

	// The panic may have happened before or after the first response
	responses := []func() error{
		func() error {
			return s.InteractionRespond(i.Interaction, ephemeral(content))
		},
		func() error {
			_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
				Content: &content,
			})
			return err
		},
		func() error {
			_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
				Content: content,
				Flags:   discordgo.MessageFlagsEphemeral,
			})
			return err
		},
	}

	for _, respond := range responses {
		if err := respond(); err == nil {
			return
		}
	}

	logger.Warn("failed to send error response to user", zap.String("message", message))
}
