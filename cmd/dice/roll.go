package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-dice-bot/internal/config"
	"github.com/KirkDiggler/dnd-dice-bot/internal/dice"
	"github.com/KirkDiggler/dnd-dice-bot/internal/formula"
	"github.com/KirkDiggler/dnd-dice-bot/internal/observability"
)

type rollOptions struct {
	times   int
	name    string
	verbose bool
}

func newRollCmd() *cobra.Command {
	opts := &rollOptions{}

	cmd := &cobra.Command{
		Use:     "roll [formula...]",
		Short:   "Roll a formula and print the log",
		Example: `  dice roll 2d6 + 3 Attack
  dice roll --times 4 4d6`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoll(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.times, "times", "n", 1, "number of times to roll the formula")
	cmd.Flags().StringVar(&opts.name, "as", "you", "name shown in the roll header")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every die drawn")

	return cmd
}

func runRoll(cmd *cobra.Command, raw string, opts *rollOptions) error {
	if opts.times < 1 {
		return fmt.Errorf("--times must be at least 1, got %d", opts.times)
	}

	roller := dice.NewRandomRoller()
	if opts.verbose {
		logger, err := observability.NewLogger(config.LoggingConfig{Level: "debug", Format: "console"})
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		roller = dice.NewLoggedRoller(roller, logger)
	}

	out := cmd.OutOrStdout()
	for n := 0; n < opts.times; n++ {
		session := formula.NewSession(&formula.SessionConfig{
			Formula:  raw,
			Identity: formula.Identity{DisplayName: opts.name},
			Roller:   roller,
		})

		outcome, err := session.Roll()
		if err != nil {
			return err
		}

		if n > 0 {
			fmt.Fprintln(out)
		}
		header := fmt.Sprintf("@%s rolled %s", outcome.DisplayName, outcome.Notation)
		if outcome.Description != "" {
			header += " ----> " + outcome.Description
		}
		fmt.Fprintln(out, header+":")
		fmt.Fprintln(out, outcome.Log)
		fmt.Fprintf(out, "Result: %d\n", outcome.Result)
	}
	return nil
}
