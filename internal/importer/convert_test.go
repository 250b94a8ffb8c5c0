package importer

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/canteiro-app/canteiro/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `{
  "atividades": [
    {"id": "A1", "titulo": "Concretagem laje", "etapa": "Estrutura", "status": "Em execução",
     "createdAt": "2024-01-15T10:00:00Z", "horas": "8h30", "valor": "R$ 1.234,56"},
    {"id": "A2", "titulo": "Reboco", "status": "Concluída", "createdAt": "2024-01-01",
     "horas": 4, "valor": 980.5, "modulo": "Orçamentos"},
    {"titulo": "Sem data", "status": "xyz", "createdAt": "ontem", "horas": "abc"}
  ],
  "requisicoes": [
    {"id": "R1", "material": "cimento cp-ii", "unidade": "sc", "quantidade": 40, "dataNecessidade": "2024-02-01"},
    {"material": "areia", "unidade": "m3", "quantidade": "2,5", "dataNecessidade": "amanhã"}
  ]
}`

var convertNow = time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)

func TestConvert_Activities(t *testing.T) {
	schema, err := ParseExport([]byte(sampleExport))
	require.NoError(t, err)
	require.Empty(t, ValidateExport(schema))

	out := Convert(schema, ConvertOptions{Module: domain.ModuleActivities, Now: convertNow})
	require.Len(t, out.Activities, 3)

	first := out.Activities[0]
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "A1", first.ExternalID)
	assert.Equal(t, "Em execução", first.RawStatus)
	assert.Equal(t, domain.StatusInProgress, first.Status)
	assert.InDelta(t, 8.5, first.Hours, 1e-9)
	assert.InDelta(t, 1234.56, first.Budget, 1e-9)
	assert.Equal(t, domain.ModuleActivities, first.Module)
	require.NotNil(t, first.CreatedAt)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), *first.CreatedAt)
	assert.Equal(t, convertNow, first.UpdatedAt)

	second := out.Activities[1]
	assert.Equal(t, domain.StatusCompleted, second.Status)
	assert.InDelta(t, 4.0, second.Hours, 1e-9)
	assert.InDelta(t, 980.5, second.Budget, 1e-9)
	assert.Equal(t, domain.ModuleBudgets, second.Module)

	third := out.Activities[2]
	assert.Equal(t, domain.StatusPlanned, third.Status)
	assert.Nil(t, third.CreatedAt)
	assert.Zero(t, third.Hours)
}

func TestConvert_Requisitions(t *testing.T) {
	schema, err := ParseExport([]byte(sampleExport))
	require.NoError(t, err)

	out := Convert(schema, ConvertOptions{Now: convertNow})
	require.Len(t, out.Requisitions, 2)

	assert.Equal(t, 40.0, out.Requisitions[0].Quantity)
	require.NotNil(t, out.Requisitions[0].NeedDate)
	assert.InDelta(t, 2.5, out.Requisitions[1].Quantity, 1e-9)
	assert.Nil(t, out.Requisitions[1].NeedDate)
}

func TestConvert_Warnings(t *testing.T) {
	schema, err := ParseExport([]byte(sampleExport))
	require.NoError(t, err)

	out := Convert(schema, ConvertOptions{Now: convertNow})
	require.Len(t, out.Warnings, 3)
	assert.Contains(t, out.Warnings[0], `unknown status "xyz"`)
	assert.Contains(t, out.Warnings[1], `unreadable createdAt "ontem"`)
	assert.Contains(t, out.Warnings[2], `unreadable dataNecessidade "amanhã"`)
}

func TestConvert_ZonelessTimestampsUseLocation(t *testing.T) {
	sp, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	schema, err := ParseExport([]byte(sampleExport))
	require.NoError(t, err)

	out := Convert(schema, ConvertOptions{Now: convertNow, Location: sp})

	require.NotNil(t, out.Activities[1].CreatedAt)
	assert.True(t, time.Date(2024, 1, 1, 0, 0, 0, 0, sp).Equal(*out.Activities[1].CreatedAt))
	require.NotNil(t, out.Requisitions[0].NeedDate)
	assert.True(t, time.Date(2024, 2, 1, 0, 0, 0, 0, sp).Equal(*out.Requisitions[0].NeedDate))
	// A1 carries its own zone.
	assert.True(t, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC).Equal(*out.Activities[0].CreatedAt))
}

func TestConvert_InvalidModuleOptionFallsBack(t *testing.T) {
	schema := &ExportSchema{Activities: []ActivityExport{{Title: "Forma"}}}
	out := Convert(schema, ConvertOptions{Module: "bogus", Now: convertNow})
	require.Len(t, out.Activities, 1)
	assert.Equal(t, domain.DefaultAppModule, out.Activities[0].Module)
}

func TestParseExport_RejectsMalformedJSON(t *testing.T) {
	_, err := ParseExport([]byte(`{"atividades": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing export file")
}
