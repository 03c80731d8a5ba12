package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"newsdigest/internal/service"
)

func newUpdateKeywordsCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "update-keywords",
		Short: "Recompute every record's keyword tags against the current keyword table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewRetagService(d.records, d.keywords, d.logger)
			changed, err := svc.Run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "re-tagged %d records\n", changed)
			return nil
		},
	}
}
