package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-dice-bot/internal/formula"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [formula...]",
		Short: "Show how a formula is tokenized without rolling it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := strings.Join(args, " ")
			out := cmd.OutOrStdout()

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TOKEN\tKIND")
			for _, tok := range formula.Tokenize(raw) {
				fmt.Fprintf(w, "%s\t%s\n", tok.Raw, tok.Kind)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			hand, err := formula.Parse(raw, nil)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nnotation: %s\n", hand.String())
			if hand.Description != "" {
				fmt.Fprintf(out, "description: %s\n", hand.Description)
			}
			return nil
		},
	}
}
