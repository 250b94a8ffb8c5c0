package cli

import (
	"fmt"

	"github.com/canteiro-app/canteiro/internal/app"
	"github.com/canteiro-app/canteiro/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "report",
		Aliases: []string{"relatorio"},
		Short:   "Period reports",
	}

	cmd.AddCommand(
		newReportActivitiesCmd(app),
		newReportRequirementsCmd(app),
	)

	return cmd
}

func newReportActivitiesCmd(a *App) *cobra.Command {
	var (
		req       = app.NewReportRequest()
		moduleRaw string
		all       bool
		summary   bool
	)

	cmd := &cobra.Command{
		Use:   "activities",
		Short: "Status, hours and budget summary for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := moduleScope(a, moduleRaw, all)
			if err != nil {
				return err
			}
			now := a.now()
			req.Now = &now
			req.Module = module
			req.IncludeActivities = !summary

			report, err := a.Reports.ActivityReport(cmd.Context(), req)
			if err != nil {
				return err
			}
			report.Activities = inLocation(report.Activities, a.location())
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatActivityReport(report, a.Currency))
			return nil
		},
	}

	addWindowFlags(cmd.Flags(), &req.Window, a.location)
	cmd.Flags().StringVar(&moduleRaw, "module", "", "Module to report on (default: active module)")
	cmd.Flags().BoolVar(&all, "all", false, "Report on every module")
	cmd.Flags().BoolVar(&summary, "summary", false, "Omit the activity table")

	return cmd
}

func newReportRequirementsCmd(a *App) *cobra.Command {
	req := app.NewReportRequest()

	cmd := &cobra.Command{
		Use:     "requirements",
		Aliases: []string{"mrp"},
		Short:   "Consolidate requisitions into purchase requirements",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			req.Now = &now

			report, err := a.Reports.Requirements(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRequirements(report, now))
			return nil
		},
	}

	addWindowFlags(cmd.Flags(), &req.Window, a.location)

	return cmd
}
