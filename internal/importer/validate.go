package importer

import (
	"fmt"
	"strings"

	"github.com/canteiro-app/canteiro/internal/domain"
)

// ValidateExport checks the export for errors before conversion and returns
// all of them. Malformed statuses, timestamps, hours and values are not
// errors: they degrade to defaults during conversion.
func ValidateExport(schema *ExportSchema) []error {
	var errs []error
	errs = append(errs, validateActivities(schema.Activities)...)
	errs = append(errs, validateRequisitions(schema.Requisitions)...)
	return errs
}

func validateActivities(items []ActivityExport) []error {
	var errs []error
	seen := make(map[string]int)
	for i, a := range items {
		prefix := fmt.Sprintf("atividades[%d]", i)
		if strings.TrimSpace(a.Title) == "" {
			errs = append(errs, fmt.Errorf("%s.titulo is required", prefix))
		}
		if a.Module != "" {
			if _, err := domain.ParseAppModule(a.Module); err != nil {
				errs = append(errs, fmt.Errorf("%s.modulo: %w", prefix, err))
			}
		}
		if a.ID != "" {
			if first, dup := seen[a.ID]; dup {
				errs = append(errs, fmt.Errorf("%s.id %q duplicates atividades[%d]", prefix, a.ID, first))
			} else {
				seen[a.ID] = i
			}
		}
	}
	return errs
}

func validateRequisitions(items []RequisitionExport) []error {
	var errs []error
	for i, r := range items {
		prefix := fmt.Sprintf("requisicoes[%d]", i)
		if strings.TrimSpace(r.Material) == "" {
			errs = append(errs, fmt.Errorf("%s.material is required", prefix))
		}
		if strings.TrimSpace(r.Unit) == "" {
			errs = append(errs, fmt.Errorf("%s.unidade is required", prefix))
		}
		if q := quantityValue(r.Quantity); q < 0 {
			errs = append(errs, fmt.Errorf("%s.quantidade must not be negative (got %v)", prefix, q))
		}
	}
	return errs
}
