package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"newsdigest/internal/service"
)

func newDumpForMLCommand(d *deps) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "dump-for-ml <output-path>",
		Short: "Export records as JSON for ML tooling",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create %s: %w", args[0], err)
			}
			defer out.Close()

			svc := service.NewExportService(d.records, d.keywords, d.logger)
			count, err := svc.Dump(cmd.Context(), out, all)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d records to %s\n", count, args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "export every record, not just IN_DIGEST ones")

	return cmd
}
