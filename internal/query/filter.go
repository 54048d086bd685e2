// Package query translates list/export filter parameters into a normalized
// form shared by the patients list and the spreadsheet export.
package query

import (
	"net/url"
	"strings"

	"abrec/internal/format"
)

// PerPage is the fixed page size of the patients and users lists.
const PerPage = 15

var indicatorColumns = map[string]string{
	"diabetic":     "is_diabetic",
	"hypertensive": "is_hypertensive",
	"renal":        "has_kidney_problem",
	"obesity":      "is_obese",
}

// IndicatorColumn maps a health-indicator filter key to its patients column.
// ok is false for unknown keys, which are ignored by the filter.
func IndicatorColumn(key string) (column string, ok bool) {
	column, ok = indicatorColumns[key]
	return column, ok
}

// PatientFilter is the normalized filter contract of GET /patients and
// GET /patients/export. Selected indicators combine with OR semantics; empty
// fields impose no constraint. A non-empty filter round-trips into the list
// response so the caller can rebuild the query string.
type PatientFilter struct {
	Name             string   `json:"name,omitempty"`
	CPF              string   `json:"cpf,omitempty"`
	HealthIndicators []string `json:"health_indicators,omitempty"`
}

// ParsePatientFilter extracts and trims the filter parameters. The canonical
// contract is the multi-select health_indicators list; a legacy single-select
// status parameter is folded into the same list with identical semantics.
func ParsePatientFilter(values url.Values) PatientFilter {
	filter := PatientFilter{
		Name: strings.TrimSpace(values.Get("name")),
		CPF:  strings.TrimSpace(values.Get("cpf")),
	}

	raw := values["health_indicators[]"]
	if len(raw) == 0 {
		raw = values["health_indicators"]
	}
	if status := strings.TrimSpace(values.Get("status")); status != "" {
		raw = append(raw, status)
	}
	for _, v := range raw {
		if v = strings.TrimSpace(v); v != "" {
			filter.HealthIndicators = append(filter.HealthIndicators, v)
		}
	}
	return filter
}

// CPFDigits returns the digits-only form of the CPF filter value.
func (f PatientFilter) CPFDigits() string {
	return format.Digits(f.CPF)
}

// IndicatorColumns resolves the selected indicator keys to patient columns,
// silently dropping unknown keys.
func (f PatientFilter) IndicatorColumns() []string {
	columns := make([]string, 0, len(f.HealthIndicators))
	for _, key := range f.HealthIndicators {
		if column, ok := IndicatorColumn(key); ok {
			columns = append(columns, column)
		}
	}
	return columns
}

// IsEmpty reports whether the filter imposes no constraint at all.
func (f PatientFilter) IsEmpty() bool {
	return f.Name == "" && f.CPFDigits() == "" && len(f.IndicatorColumns()) == 0
}
