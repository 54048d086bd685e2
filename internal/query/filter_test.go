package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePatientFilter(t *testing.T) {
	tests := []struct {
		name     string
		values   url.Values
		expected PatientFilter
	}{
		{
			name:     "empty query",
			values:   url.Values{},
			expected: PatientFilter{},
		},
		{
			name:     "name and cpf are trimmed",
			values:   url.Values{"name": {"  Silva  "}, "cpf": {" 123.456 "}},
			expected: PatientFilter{Name: "Silva", CPF: "123.456"},
		},
		{
			name:   "multi select indicators",
			values: url.Values{"health_indicators[]": {"diabetic", "hypertensive"}},
			expected: PatientFilter{
				HealthIndicators: []string{"diabetic", "hypertensive"},
			},
		},
		{
			name:   "bare key variant also accepted",
			values: url.Values{"health_indicators": {"renal"}},
			expected: PatientFilter{
				HealthIndicators: []string{"renal"},
			},
		},
		{
			name:   "legacy status folds into the indicator list",
			values: url.Values{"status": {"obesity"}},
			expected: PatientFilter{
				HealthIndicators: []string{"obesity"},
			},
		},
		{
			name:     "blank indicator values are dropped",
			values:   url.Values{"health_indicators[]": {"  ", "", "diabetic"}},
			expected: PatientFilter{HealthIndicators: []string{"diabetic"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePatientFilter(tt.values))
		})
	}
}

func TestIndicatorColumns(t *testing.T) {
	filter := PatientFilter{
		HealthIndicators: []string{"diabetic", "hypertensive", "renal", "obesity", "bogus"},
	}

	// Unknown keys are silently ignored
	assert.Equal(t,
		[]string{"is_diabetic", "is_hypertensive", "has_kidney_problem", "is_obese"},
		filter.IndicatorColumns(),
	)
}

func TestCPFDigits(t *testing.T) {
	filter := PatientFilter{CPF: "123.456.789-01"}
	assert.Equal(t, "12345678901", filter.CPFDigits())

	filter = PatientFilter{CPF: "abc"}
	assert.Equal(t, "", filter.CPFDigits())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, PatientFilter{}.IsEmpty())
	// A filter that only carries unknown keys imposes no constraint
	assert.True(t, PatientFilter{HealthIndicators: []string{"bogus"}}.IsEmpty())
	assert.False(t, PatientFilter{Name: "Silva"}.IsEmpty())
	assert.False(t, PatientFilter{CPF: "12"}.IsEmpty())
}
