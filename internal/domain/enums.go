package domain

import (
	"fmt"

	"github.com/canteiro-app/canteiro/internal/textfmt"
)

// CanonicalStatus is the closed set of lifecycle states an activity is
// reported in.
type CanonicalStatus string

const (
	StatusPlanned    CanonicalStatus = "Planejado"
	StatusPending    CanonicalStatus = "Pendente"
	StatusInProgress CanonicalStatus = "Em andamento"
	StatusCompleted  CanonicalStatus = "Concluída"
	StatusStalled    CanonicalStatus = "Paralizada"
)

// AllStatuses lists every canonical status in display order.
func AllStatuses() []CanonicalStatus {
	return []CanonicalStatus{
		StatusPlanned,
		StatusPending,
		StatusInProgress,
		StatusCompleted,
		StatusStalled,
	}
}

// Valid reports whether s is one of the five canonical statuses.
func (s CanonicalStatus) Valid() bool {
	switch s {
	case StatusPlanned, StatusPending, StatusInProgress, StatusCompleted, StatusStalled:
		return true
	default:
		return false
	}
}

// AppModule identifies one of the back-office areas a user can work in.
type AppModule string

const (
	ModuleTasks      AppModule = "tarefas"
	ModuleActivities AppModule = "atividades"
	ModuleSuppliers  AppModule = "fornecedores"
	ModuleBudgets    AppModule = "orcamentos"
	ModuleLogistics  AppModule = "logistica"
	ModuleReports    AppModule = "relatorios"
)

// DefaultAppModule is selected when no preference has been stored yet.
const DefaultAppModule = ModuleActivities

// AllModules lists the application modules in menu order.
func AllModules() []AppModule {
	return []AppModule{
		ModuleTasks,
		ModuleActivities,
		ModuleSuppliers,
		ModuleBudgets,
		ModuleLogistics,
		ModuleReports,
	}
}

// Valid reports whether m is a known module.
func (m AppModule) Valid() bool {
	switch m {
	case ModuleTasks, ModuleActivities, ModuleSuppliers, ModuleBudgets, ModuleLogistics, ModuleReports:
		return true
	default:
		return false
	}
}

// Label returns the pt-BR menu label of the module.
func (m AppModule) Label() string {
	switch m {
	case ModuleTasks:
		return "Tarefas"
	case ModuleActivities:
		return "Atividades"
	case ModuleSuppliers:
		return "Fornecedores"
	case ModuleBudgets:
		return "Orçamentos"
	case ModuleLogistics:
		return "Logística"
	case ModuleReports:
		return "Relatórios"
	default:
		return string(m)
	}
}

// ParseAppModule accepts a module name regardless of case or accents
// ("Orçamentos", "LOGISTICA").
func ParseAppModule(s string) (AppModule, error) {
	key := textfmt.NormalizeText(s)
	for _, m := range AllModules() {
		if key == string(m) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown module %q", s)
}
