package cli

import (
	"time"

	"github.com/canteiro-app/canteiro/internal/app"
	"github.com/canteiro-app/canteiro/internal/domain"
	"github.com/canteiro-app/canteiro/internal/service"
	"github.com/canteiro-app/canteiro/internal/textfmt"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Import     service.ImportService
	Activities service.ActivityService
	Reports    service.ReportService
	State      *app.AppState

	Currency textfmt.Currency
	// Location interprets --from/--to days; nil means time.Local.
	Location *time.Location
	// Now is the report clock; nil means time.Now.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal. nil means false.
	IsInteractive func() bool
	// PickModule asks the user for a module. nil uses a huh select.
	PickModule func(current domain.AppModule) (domain.AppModule, error)
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) location() *time.Location {
	if a.Location != nil {
		return a.Location
	}
	return time.Local
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "canteiro" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "canteiro",
		Short:         "Construction back-office reports from backend exports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newImportCmd(app),
		newActivityCmd(app),
		newReportCmd(app),
		newModuleCmd(app),
		newStatusCmd(),
		newHoursCmd(),
		newFmtCmd(app),
	)

	return root
}
