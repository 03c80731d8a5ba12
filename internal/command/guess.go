package command

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"newsdigest/internal/pipeline"
)

func newGuessCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "guess <title>",
		Short: "Guess content categories for a title by keyword matching",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")

			keywords, err := d.keywords.All(cmd.Context())
			if err != nil {
				return fmt.Errorf("load keywords: %w", err)
			}

			matches := pipeline.GuessCategories(title, keywords)

			out, err := json.MarshalIndent(matches, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
