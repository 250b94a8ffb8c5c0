package domain

import (
	"fmt"
	"strings"
)

// statusAliasGroups is the source of truth for NormalizeStatus. Each raw
// spelling the backend has been seen to send belongs to exactly one group.
// Matching is exact: "planejado" and "Planejado" are separate entries.
var statusAliasGroups = []struct {
	status  CanonicalStatus
	aliases []string
}{
	{StatusPlanned, []string{
		"Planejado", "Planejada", "Planejados", "Planejadas",
		"planejado", "planejada", "PLANEJADO", "PLANEJADA",
		"Planejamento", "Não iniciado", "Não iniciada", "Nao iniciado", "Nao iniciada",
		"A iniciar", "Aberto", "Aberta",
	}},
	{StatusPending, []string{
		"Pendente", "Pendentes", "pendente", "pendentes", "PENDENTE",
		"Aguardando", "Aguardando aprovação", "Aguardando aprovacao",
		"Em aprovação", "Em aprovacao",
	}},
	{StatusInProgress, []string{
		"Em andamento", "Em Andamento", "em andamento", "EM ANDAMENTO",
		"Em execução", "Em Execução", "em execução", "EM EXECUÇÃO",
		"Em execucao", "Em Execucao", "em execucao",
		"Andamento", "Iniciado", "Iniciada", "Em progresso", "Executando",
	}},
	{StatusCompleted, []string{
		"Concluída", "Concluida", "Concluído", "Concluido",
		"Concluídas", "Concluidas", "Concluídos", "Concluidos",
		"concluída", "concluida", "concluído", "concluido",
		"CONCLUÍDA", "CONCLUIDA", "CONCLUÍDO", "CONCLUIDO",
		"Finalizada", "Finalizado", "Finalizadas", "Finalizados", "Entregue", "Fechado", "Fechada",
	}},
	{StatusStalled, []string{
		"Paralizada", "Paralizado", "Paralizadas", "Paralizados",
		"Paralisada", "Paralisado", "Paralisadas", "Paralisados",
		"paralizada", "paralisada", "paralizado", "paralisado",
		"PARALIZADA", "PARALISADA",
		"Suspensa", "Suspenso", "Interrompida", "Interrompido", "Bloqueada", "Bloqueado",
	}},
}

var statusAliases = buildStatusAliases()

func buildStatusAliases() map[string]CanonicalStatus {
	m := make(map[string]CanonicalStatus)
	for _, g := range statusAliasGroups {
		if !g.status.Valid() {
			panic(fmt.Sprintf("status alias group for non-canonical status %q", g.status))
		}
		for _, a := range g.aliases {
			if prev, dup := m[a]; dup {
				panic(fmt.Sprintf("status alias %q mapped to both %q and %q", a, prev, g.status))
			}
			m[a] = g.status
		}
	}
	return m
}

// NormalizeStatus maps a raw backend status onto a canonical status.
// Unknown or empty input resolves to StatusPlanned.
func NormalizeStatus(raw string) CanonicalStatus {
	if status, ok := statusAliases[raw]; ok {
		return status
	}
	return StatusPlanned
}

// IsKnownStatus reports whether raw is an alias in the table.
func IsKnownStatus(raw string) bool {
	_, ok := statusAliases[raw]
	return ok
}

// StatusAliases returns a copy of the alias table.
func StatusAliases() map[string]CanonicalStatus {
	out := make(map[string]CanonicalStatus, len(statusAliases))
	for k, v := range statusAliases {
		out[k] = v
	}
	return out
}

// UnspecifiedStatus stands in for a missing status when counting.
const UnspecifiedStatus = "Não especificado"

// Substring markers used by CountByStatus, in priority order.
const (
	markerPlanned    = "planejada"
	markerInProgress = "execução"
	markerCompleted  = "concluída"
	markerStalled    = "paralizada"
)

// StatusCounts aggregates activities per reporting bucket.
type StatusCounts struct {
	Planned    int `json:"planejadas"`
	InProgress int `json:"emExecucao"`
	Completed  int `json:"concluidas"`
	Stalled    int `json:"paralizadas"`
}

// Total is the number of records that matched any bucket.
func (c StatusCounts) Total() int {
	return c.Planned + c.InProgress + c.Completed + c.Stalled
}

// CountByStatus classifies each record by case-insensitive substring match
// on its raw status text. The first matching marker wins and records that
// match none are not counted. It does not consult the alias table.
func CountByStatus[T any](records []T, statusOf func(T) string) StatusCounts {
	var c StatusCounts
	for _, r := range records {
		raw := statusOf(r)
		if raw == "" {
			raw = UnspecifiedStatus
		}
		s := strings.ToLower(raw)
		switch {
		case strings.Contains(s, markerPlanned):
			c.Planned++
		case strings.Contains(s, markerInProgress):
			c.InProgress++
		case strings.Contains(s, markerCompleted):
			c.Completed++
		case strings.Contains(s, markerStalled):
			c.Stalled++
		}
	}
	return c
}

// CountActivityStatuses runs CountByStatus over the raw status of each activity.
func CountActivityStatuses(activities []Activity) StatusCounts {
	return CountByStatus(activities, func(a Activity) string { return a.RawStatus })
}
