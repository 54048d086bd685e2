package validation

import (
	"testing"
	"time"

	"abrec/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCPFChecker struct {
	taken map[string]uint // cpf -> owning patient id
}

func (s *stubCPFChecker) CPFExists(cpf string, excludeID uint) (bool, error) {
	owner, ok := s.taken[cpf]
	if !ok {
		return false, nil
	}
	return owner != excludeID, nil
}

var testNow = time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)

func validPatientForm() PatientForm {
	return PatientForm{
		Name:         "João da Silva",
		CPF:          "12345678901",
		DateOfBirth:  "1990-05-15",
		Gender:       models.GenderMale,
		Address:      "Rua das Flores, 123",
		Neighborhood: "Centro",
		City:         "São Paulo",
	}
}

func TestValidatePatientAccepted(t *testing.T) {
	form := validPatientForm()
	errs, err := ValidatePatient(&form, &stubCPFChecker{}, 0, testNow)

	require.NoError(t, err)
	assert.Empty(t, errs)

	var patient models.Patient
	form.Apply(&patient)
	assert.Equal(t, "João da Silva", patient.Name)
	assert.Equal(t, "12345678901", patient.CPF)
	assert.Equal(t, time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC), patient.DateOfBirth)
	// Booleans default false when absent
	assert.False(t, patient.IsDiabetic)
	assert.False(t, patient.IsHypertensive)
	assert.False(t, patient.HasKidneyProblem)
	assert.False(t, patient.HasFamilyDRC)
	assert.False(t, patient.IsObese)
	assert.False(t, patient.HasBackEyeExam)
}

func TestValidatePatientNormalizesCPF(t *testing.T) {
	form := validPatientForm()
	form.CPF = "123.456.789-01"

	errs, err := ValidatePatient(&form, &stubCPFChecker{}, 0, testNow)

	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, "12345678901", form.CPF)
}

func TestValidatePatientReportsAllFieldsTogether(t *testing.T) {
	form := PatientForm{}
	errs, err := ValidatePatient(&form, &stubCPFChecker{}, 0, testNow)

	require.NoError(t, err)
	assert.Equal(t, "O campo nome é obrigatório.", errs["name"])
	assert.Equal(t, "O campo CPF é obrigatório.", errs["cpf"])
	assert.Equal(t, "O campo data de nascimento é obrigatório.", errs["date_of_birth"])
	assert.Equal(t, "O campo sexo é obrigatório.", errs["gender"])
	assert.Equal(t, "O campo endereço é obrigatório.", errs["address"])
	assert.Equal(t, "O campo bairro é obrigatório.", errs["neighborhood"])
	assert.Equal(t, "O campo cidade é obrigatório.", errs["city"])
}

func TestValidatePatientCPFRules(t *testing.T) {
	t.Run("wrong length", func(t *testing.T) {
		form := validPatientForm()
		form.CPF = "123"
		errs, err := ValidatePatient(&form, &stubCPFChecker{}, 0, testNow)
		require.NoError(t, err)
		assert.Equal(t, "O CPF deve conter 11 dígitos (com ou sem formatação).", errs["cpf"])
	})

	t.Run("duplicate rejected", func(t *testing.T) {
		form := validPatientForm()
		checker := &stubCPFChecker{taken: map[string]uint{"12345678901": 9}}
		errs, err := ValidatePatient(&form, checker, 0, testNow)
		require.NoError(t, err)
		assert.Equal(t, "Este CPF já está cadastrado.", errs["cpf"])
	})

	t.Run("own cpf unchanged on update succeeds", func(t *testing.T) {
		form := validPatientForm()
		checker := &stubCPFChecker{taken: map[string]uint{"12345678901": 9}}
		errs, err := ValidatePatient(&form, checker, 9, testNow)
		require.NoError(t, err)
		assert.Empty(t, errs)
	})
}

func TestValidatePatientDateOfBirthBoundaries(t *testing.T) {
	tests := []struct {
		name        string
		dateOfBirth string
		wantMessage string
	}{
		{"today is rejected", "2026-08-31", "A data de nascimento deve ser anterior a hoje."},
		{"tomorrow is rejected", "2026-09-01", "A data de nascimento deve ser anterior a hoje."},
		{"yesterday is accepted", "2026-08-30", ""},
		{"exactly 150 years ago is rejected", "1876-08-31", "A data de nascimento deve ser válida."},
		{"150 years and a day ago is rejected", "1876-08-30", "A data de nascimento deve ser válida."},
		{"one day inside the 150 year window is accepted", "1876-09-01", ""},
		{"not a date", "15/05/1990", "A data de nascimento deve ser uma data válida."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validPatientForm()
			form.DateOfBirth = tt.dateOfBirth
			errs, err := ValidatePatient(&form, &stubCPFChecker{}, 0, testNow)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMessage, errs["date_of_birth"])
		})
	}
}

func TestValidatePatientOptionalFieldRanges(t *testing.T) {
	floatPtr := func(v float64) *float64 { return &v }
	intPtr := func(v int) *int { return &v }
	strPtr := func(v string) *string { return &v }

	tests := []struct {
		name    string
		mutate  func(*PatientForm)
		field   string
		message string
	}{
		{"weight above limit", func(f *PatientForm) { f.Weight = floatPtr(1000) }, "weight", "O peso não pode ser maior que 999,99 kg."},
		{"weight negative", func(f *PatientForm) { f.Weight = floatPtr(-1) }, "weight", "O peso deve ser maior que zero."},
		{"weight at limit is fine", func(f *PatientForm) { f.Weight = floatPtr(999.99) }, "weight", ""},
		{"height zero", func(f *PatientForm) { f.Height = intPtr(0) }, "height", "A altura deve ser maior que zero."},
		{"height above limit", func(f *PatientForm) { f.Height = intPtr(301) }, "height", "A altura não pode ser maior que 300 cm."},
		{"height at limit is fine", func(f *PatientForm) { f.Height = intPtr(300) }, "height", ""},
		{"blood pressure format", func(f *PatientForm) { f.BloodPressure = strPtr("12-8") }, "blood_pressure", "A pressão arterial deve estar no formato 12/8."},
		{"blood pressure valid", func(f *PatientForm) { f.BloodPressure = strPtr("120/80") }, "blood_pressure", ""},
		{"blood glucose negative", func(f *PatientForm) { f.BloodGlucose = intPtr(-1) }, "blood_glucose", "A glicemia não pode ser negativa."},
		{"blood glucose above limit", func(f *PatientForm) { f.BloodGlucose = intPtr(1000) }, "blood_glucose", "A glicemia não pode ser maior que 999."},
		{"creatinine too long", func(f *PatientForm) { f.Creatinine = strPtr("12345678901") }, "creatinine", "A creatinina não pode ter mais de 10 caracteres."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validPatientForm()
			tt.mutate(&form)
			errs, err := ValidatePatient(&form, &stubCPFChecker{}, 0, testNow)
			require.NoError(t, err)
			assert.Equal(t, tt.message, errs[tt.field])
		})
	}
}

func TestValidatePatientBlankOptionalsAreDropped(t *testing.T) {
	blank := "   "
	form := validPatientForm()
	form.BloodPressure = &blank
	form.Creatinine = &blank

	errs, err := ValidatePatient(&form, &stubCPFChecker{}, 0, testNow)

	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Nil(t, form.BloodPressure)
	assert.Nil(t, form.Creatinine)
}

func TestValidatePatientGender(t *testing.T) {
	form := validPatientForm()
	form.Gender = "other"

	errs, err := ValidatePatient(&form, &stubCPFChecker{}, 0, testNow)

	require.NoError(t, err)
	assert.Equal(t, "O sexo deve ser masculino ou feminino.", errs["gender"])
}
