package cli

import (
	"errors"
	"fmt"

	"github.com/canteiro-app/canteiro/internal/cli/formatter"
	"github.com/canteiro-app/canteiro/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newModuleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "module",
		Aliases: []string{"modulo"},
		Short:   "Show or change the active module",
	}

	cmd.AddCommand(
		newModuleShowCmd(app),
		newModuleUseCmd(app),
		newModuleListCmd(app),
	)

	return cmd
}

func newModuleShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the active module",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.State == nil {
				return errors.New("application state is not available")
			}
			m := app.State.ActiveModule()
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", formatter.ModuleBadge(m), m)
			return nil
		},
	}
}

func newModuleListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			var active domain.AppModule
			if app.State != nil {
				active = app.State.ActiveModule()
			}
			rows := make([][]string, 0, len(domain.AllModules()))
			for _, m := range domain.AllModules() {
				marker := ""
				if m == active {
					marker = formatter.StyleGreen.Render("●")
				}
				rows = append(rows, []string{marker, string(m), m.Label()})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"", "MODULE", "NAME"}, rows))
			return nil
		},
	}
}

func newModuleUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use [module]",
		Short: "Select the active module",
		Long:  "Select the active module. Without an argument an interactive picker is shown.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.State == nil {
				return errors.New("application state is not available")
			}

			var (
				m   domain.AppModule
				err error
			)
			switch {
			case len(args) == 1:
				m, err = domain.ParseAppModule(args[0])
			case app.interactive():
				m, err = app.pickModule(app.State.ActiveModule())
			default:
				return errors.New("module name is required when not running in a terminal")
			}
			if err != nil {
				return err
			}

			if err := app.State.SetActiveModule(cmd.Context(), m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active module: %s\n", formatter.ModuleBadge(m))
			return nil
		},
	}
}

func (a *App) pickModule(current domain.AppModule) (domain.AppModule, error) {
	if a.PickModule != nil {
		return a.PickModule(current)
	}
	return huhPickModule(current)
}

func huhPickModule(current domain.AppModule) (domain.AppModule, error) {
	options := make([]huh.Option[domain.AppModule], 0, len(domain.AllModules()))
	for _, m := range domain.AllModules() {
		options = append(options, huh.NewOption(m.Label(), m))
	}

	choice := current
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.AppModule]().
				Title("Módulo ativo").
				Options(options...).
				Value(&choice),
		),
	).WithTheme(canteiroHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("selecting module: %w", err)
	}
	return choice, nil
}

func canteiroHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
