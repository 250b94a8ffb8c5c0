package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/canteiro-app/canteiro/internal/app"
	"github.com/canteiro-app/canteiro/internal/domain"
	"github.com/canteiro-app/canteiro/internal/hours"
	"github.com/canteiro-app/canteiro/internal/textfmt"
)

const shareBarWidth = 10

// FormatActivityReport renders the period dashboard: per-status totals,
// the marker counts, hours and budget, then the activity table.
func FormatActivityReport(r *app.ActivityReport, cur textfmt.Currency) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		Dim("Módulo:"), ModuleBadge(r.Module),
		Dim("Período:"), StyleFg.Render(FormatWindow(r.Window)),
	))
	b.WriteString(Dim("Gerado em "+r.GeneratedAt.Format(DayLayout+" 15:04")) + "\n\n")

	headers := []string{"STATUS", "QTD", "%", ""}
	rows := make([][]string, 0, len(domain.AllStatuses()))
	for _, st := range domain.AllStatuses() {
		n := r.ByStatus[st]
		rows = append(rows, []string{
			StatusPill(st),
			strconv.Itoa(n),
			textfmt.FormatPercentage(share(n, r.Considered), 1),
			StatusStyle(st).Render(RenderShare(n, r.Considered, shareBarWidth)),
		})
	}
	b.WriteString(RenderTableAligned(headers, rows, []int{1, 2}))
	b.WriteString("\n")

	c := r.Counts
	b.WriteString(fmt.Sprintf("%s %d · %s %d · %s %d · %s %d\n",
		Dim("Planejadas"), c.Planned,
		Dim("Em execução"), c.InProgress,
		Dim("Concluídas"), c.Completed,
		Dim("Paralizadas"), c.Stalled,
	))
	b.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		Dim("Horas:"), Bold(hours.FormatHours(r.TotalHours)),
		Dim("Orçamento:"), Bold(textfmt.FormatCurrency(r.Budget, cur)),
	))
	b.WriteString(Dim(fmt.Sprintf("%d atividades no período, %d fora dele ou sem data", r.Considered, r.Excluded)))

	if len(r.Activities) > 0 {
		b.WriteString("\n\n")
		b.WriteString(FormatActivityTable(r.Activities, cur))
	}

	return RenderBox("Relatório de atividades", b.String())
}

// FormatActivityTable lists activities with their normalized status.
func FormatActivityTable(activities []domain.Activity, cur textfmt.Currency) string {
	if len(activities) == 0 {
		return Dim("Nenhuma atividade encontrada.")
	}
	headers := []string{"ID", "TÍTULO", "ETAPA", "STATUS", "HORAS", "VALOR", "CRIADA"}
	rows := make([][]string, 0, len(activities))
	for _, a := range activities {
		id := a.ExternalID
		if id == "" {
			id = a.ID
		}
		rows = append(rows, []string{
			TruncID(id),
			Bold(textfmt.ToTitleCase(a.Title)),
			StyleFg.Render(a.Stage),
			StatusPill(a.Status),
			hours.FormatHours(a.Hours),
			textfmt.FormatCurrency(a.Budget, cur),
			FormatDay(a.CreatedAt),
		})
	}
	return RenderTableAligned(headers, rows, []int{4, 5})
}

// FormatRequirements renders consolidated purchase requirements.
func FormatRequirements(r *app.RequirementsReport, now time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", Dim("Período:"), StyleFg.Render(FormatWindow(r.Window))))

	if len(r.Requirements) == 0 {
		b.WriteString(Dim("Nenhuma requisição no período."))
		return RenderBox("Necessidades de compra", b.String())
	}

	headers := []string{"MATERIAL", "QTD", "UN", "NECESSÁRIO EM", "LINHAS"}
	rows := make([][]string, 0, len(r.Requirements))
	for _, req := range r.Requirements {
		rows = append(rows, []string{
			Bold(req.Material),
			textfmt.FormatQuantity(req.Quantity),
			req.Unit,
			NeedDateStyled(req.NeedDate, now),
			strconv.Itoa(req.Lines),
		})
	}
	b.WriteString(RenderTableAligned(headers, rows, []int{1, 4}))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d materiais a partir de %d requisições", len(r.Requirements), r.Lines)))
	return RenderBox("Necessidades de compra", b.String())
}

func share(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
