package cli

import (
	"fmt"

	"github.com/canteiro-app/canteiro/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <export.json>",
		Short: "Import activities and requisitions from a backend export",
		Long: "Import a JSON export with \"atividades\" and \"requisicoes\" arrays.\n" +
			"Rows with a known id replace the earlier import of the same row.\n" +
			"Activities without a module go to the active module.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d activities and %d requisitions", result.ActivityCount, result.RequisitionCount)
			if result.Updated > 0 {
				fmt.Fprintf(out, " (%d updated)", result.Updated)
			}
			fmt.Fprintln(out)
			for _, w := range result.Warnings {
				fmt.Fprintln(out, formatter.StyleYellow.Render("  WARNING: "+w))
			}
			return nil
		},
	}
}
