package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"newsdigest/internal/service"
)

func newLoadSourcesCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "load-sources <catalog.yaml>",
		Short: "Upsert sources and keywords from a YAML catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			svc := service.NewLoaderService(d.sources, d.keywords, d.projects, d.logger)
			sources, keywords, err := svc.Load(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "loaded %d sources, %d keywords\n", sources, keywords)
			return nil
		},
	}
}
