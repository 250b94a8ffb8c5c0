package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// ExportSchema is the JSON document the back-office API produces when a
// site exports its activities and requisitions.
type ExportSchema struct {
	Activities   []ActivityExport    `json:"atividades"`
	Requisitions []RequisitionExport `json:"requisicoes,omitempty"`
}

// ActivityExport is one activity as sent by the backend. Hours and value
// arrive either as numbers or as typed text ("8h30", "R$ 1.234,56").
type ActivityExport struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"titulo"`
	Stage       string `json:"etapa,omitempty"`
	Responsible string `json:"responsavel,omitempty"`
	Module      string `json:"modulo,omitempty"`
	Status      string `json:"status,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	Hours       any    `json:"horas,omitempty"`
	Value       any    `json:"valor,omitempty"`
}

// RequisitionExport is one material request line.
type RequisitionExport struct {
	ID       string `json:"id,omitempty"`
	Material string `json:"material"`
	Unit     string `json:"unidade"`
	Quantity any    `json:"quantidade"`
	NeedDate string `json:"dataNecessidade,omitempty"`
	Supplier string `json:"fornecedor,omitempty"`
}

// ParseExport decodes an export document. Numbers are kept as json.Number
// so that "horas": 8 and "horas": "8" go through the same parser.
func ParseExport(data []byte) (*ExportSchema, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var schema ExportSchema
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing export file: %w", err)
	}
	return &schema, nil
}

// LoadExport reads and parses an export JSON file.
func LoadExport(path string) (*ExportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseExport(data)
}
