package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/canteiro-app/canteiro/internal/cli/formatter"
	"github.com/canteiro-app/canteiro/internal/domain"
	"github.com/canteiro-app/canteiro/internal/hours"
	"github.com/canteiro-app/canteiro/internal/textfmt"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Backend status helpers",
	}
	cmd.AddCommand(newStatusNormalizeCmd(), newStatusAliasesCmd())
	return cmd
}

func newStatusNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <raw>...",
		Short: "Show the canonical status for each raw status",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(args))
			for _, raw := range args {
				known := formatter.Dim("no (default)")
				if domain.IsKnownStatus(raw) {
					known = "yes"
				}
				rows = append(rows, []string{strconv.Quote(raw), formatter.StatusPill(domain.NormalizeStatus(raw)), known})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"RAW", "STATUS", "KNOWN"}, rows))
			return nil
		},
	}
}

func newStatusAliasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aliases",
		Short: "List every accepted spelling per canonical status",
		RunE: func(cmd *cobra.Command, args []string) error {
			byStatus := make(map[domain.CanonicalStatus][]string)
			for alias, st := range domain.StatusAliases() {
				byStatus[st] = append(byStatus[st], alias)
			}
			out := cmd.OutOrStdout()
			for _, st := range domain.AllStatuses() {
				aliases := byStatus[st]
				sort.Strings(aliases)
				fmt.Fprintf(out, "%s\n  %s\n", formatter.StatusPill(st), formatter.Dim(strings.Join(aliases, ", ")))
			}
			return nil
		},
	}
}

func newHoursCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hours <value>",
		Short: `Parse a duration such as "8h30", "2h" or "1,5" into hours`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := hours.ParseTimeToHours(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", strconv.FormatFloat(h, 'f', -1, 64), hours.FormatHours(h))
			return nil
		},
	}
}

func newFmtCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "pt-BR formatting helpers",
	}
	cmd.AddCommand(
		newFmtCurrencyCmd(app),
		newFmtPercentCmd(),
		newFmtParseCurrencyCmd(),
		newFmtTitleCmd(),
		newFmtNormalizeCmd(),
	)
	return cmd
}

func newFmtCurrencyCmd(app *App) *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "currency <amount>",
		Short: "Format an amount as pt-BR currency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			cur := app.Currency
			if code != "" {
				if cur, err = textfmt.ParseCurrencyCode(code); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), textfmt.FormatCurrency(v, cur))
			return nil
		},
	}
	cmd.Flags().StringVar(&code, "currency", "", "BRL or USD (default: configured currency)")
	return cmd
}

func newFmtPercentCmd() *cobra.Command {
	var decimals int

	cmd := &cobra.Command{
		Use:   "percent <value>",
		Short: "Format a percentage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), textfmt.FormatPercentage(v, decimals))
			return nil
		},
	}
	cmd.Flags().IntVar(&decimals, "decimals", 1, "Decimal places")
	return cmd
}

func newFmtParseCurrencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-currency <text>",
		Short: `Read an amount such as "R$ 1.234,56"`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(textfmt.ParseCurrency(args[0]), 'f', -1, 64))
			return nil
		},
	}
}

func newFmtTitleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "title <text>...",
		Short: "Title-case a material or activity name, keeping acronyms",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), textfmt.ToTitleCase(strings.Join(args, " ")))
			return nil
		},
	}
}

func newFmtNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <text>...",
		Short: "Lower-case and strip accents, as used for searching",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), textfmt.NormalizeText(strings.Join(args, " ")))
			return nil
		},
	}
}
