package cli

import (
	"fmt"
	"time"

	"github.com/canteiro-app/canteiro/internal/cli/formatter"
	"github.com/canteiro-app/canteiro/internal/domain"
	"github.com/canteiro-app/canteiro/internal/service"
	"github.com/spf13/cobra"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activity",
		Aliases: []string{"atividade"},
		Short:   "Inspect and update imported activities",
	}

	cmd.AddCommand(
		newActivityListCmd(app),
		newActivitySetStatusCmd(app),
		newActivityRemoveCmd(app),
	)

	return cmd
}

// moduleScope resolves the --module/--all pair into a filter value. The
// active module is the default scope.
func moduleScope(app *App, raw string, all bool) (domain.AppModule, error) {
	switch {
	case all:
		return "", nil
	case raw != "":
		return domain.ParseAppModule(raw)
	case app.State != nil:
		return app.State.ActiveModule(), nil
	default:
		return "", nil
	}
}

func newActivityListCmd(app *App) *cobra.Command {
	var (
		q         service.ActivityQuery
		moduleRaw string
		statusRaw string
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activities of the active module",
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := moduleScope(app, moduleRaw, all)
			if err != nil {
				return err
			}
			q.Module = module
			if statusRaw != "" {
				q.Status = domain.NormalizeStatus(statusRaw)
			}

			activities, err := app.Activities.List(cmd.Context(), q)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatActivityTable(inLocation(activities, app.location()), app.Currency))
			return nil
		},
	}

	addWindowFlags(cmd.Flags(), &q.Window, app.location)
	cmd.Flags().StringVar(&moduleRaw, "module", "", "Module to list (default: active module)")
	cmd.Flags().BoolVar(&all, "all", false, "List every module")
	cmd.Flags().StringVar(&statusRaw, "status", "", "Only activities whose status normalizes to this one")
	cmd.Flags().StringVar(&q.Search, "search", "", "Match title, stage or responsible ignoring accents")

	return cmd
}

func newActivitySetStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Record a new backend status for an activity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Activities.UpdateStatus(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s → %s\n", a.Title, formatter.StatusPill(a.Status))
			return nil
		},
	}
}

func newActivityRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Activities.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed activity %s\n", args[0])
			return nil
		},
	}
}

// inLocation shows creation days on the same calendar the window flags use.
func inLocation(activities []domain.Activity, loc *time.Location) []domain.Activity {
	out := make([]domain.Activity, len(activities))
	for i, a := range activities {
		if a.CreatedAt != nil {
			t := a.CreatedAt.In(loc)
			a.CreatedAt = &t
		}
		out[i] = a
	}
	return out
}
