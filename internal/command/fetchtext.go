package command

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"newsdigest/internal/domain"
)

func newFetchTextCommand(d *deps) *cobra.Command {
	var (
		recordID   int64
		random     bool
		sourceName string
		save       bool
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "fetch-text",
		Short: "Fetch the full body text for one record",
		Long: `Fetch the full body text for one record: either --id for a specific
record, or --random for a random record without text from a source with
text fetching enabled. The text is saved on the record with --save,
written to a file with --output, or printed to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (recordID != 0) == random {
				return errors.New("exactly one of --id and --random is required")
			}
			if save && outputPath != "" {
				return errors.New("--save and --output are mutually exclusive")
			}
			if sourceName != "" && !random {
				return errors.New("--source only makes sense with --random")
			}

			svc := d.textFetchService()

			var (
				record *domain.DigestRecord
				text   string
				err    error
			)
			if random {
				record, text, err = svc.FetchRandom(cmd.Context(), sourceName)
			} else {
				record, text, err = svc.FetchByID(cmd.Context(), recordID)
			}
			if errors.Is(err, domain.ErrNothingToDo) {
				d.logger.Info("no records without text, nothing to do")
				return nil
			}
			if err != nil {
				return err
			}

			switch {
			case save:
				return svc.Save(cmd.Context(), record.ID, text)
			case outputPath != "":
				if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", outputPath, err)
				}
				d.logger.Info("wrote record text", "record_id", record.ID, "path", outputPath)
				return nil
			default:
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}
		},
	}

	cmd.Flags().Int64Var(&recordID, "id", 0, "record id to fetch")
	cmd.Flags().BoolVar(&random, "random", false, "pick a random record without text")
	cmd.Flags().StringVar(&sourceName, "source", "", "narrow --random to one source")
	cmd.Flags().BoolVar(&save, "save", false, "persist the text on the record")
	cmd.Flags().StringVar(&outputPath, "output", "", "write the text to a file")

	return cmd
}
