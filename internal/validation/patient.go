package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"abrec/internal/format"
	"abrec/internal/models"
)

var (
	cpfPattern           = regexp.MustCompile(`^\d{11}$`)
	bloodPressurePattern = regexp.MustCompile(`^\d{1,3}/\d{1,3}$`)
)

// CPFChecker answers whether a digits-only CPF already belongs to another
// patient. excludeID skips the record being edited (0 on create).
type CPFChecker interface {
	CPFExists(cpf string, excludeID uint) (bool, error)
}

// PatientForm is a patient registration or edit submission. Optional health
// fields are pointers so absence and zero can be told apart; the condition
// flags default to false when omitted.
type PatientForm struct {
	Name         string `json:"name" form:"name"`
	CPF          string `json:"cpf" form:"cpf"`
	DateOfBirth  string `json:"date_of_birth" form:"date_of_birth"`
	Gender       string `json:"gender" form:"gender"`
	Address      string `json:"address" form:"address"`
	Neighborhood string `json:"neighborhood" form:"neighborhood"`
	City         string `json:"city" form:"city"`

	Weight        *float64 `json:"weight" form:"weight"`
	Height        *int     `json:"height" form:"height"`
	BloodPressure *string  `json:"blood_pressure" form:"blood_pressure"`
	BloodGlucose  *int     `json:"blood_glucose" form:"blood_glucose"`
	Creatinine    *string  `json:"creatinine" form:"creatinine"`

	IsDiabetic       bool `json:"is_diabetic" form:"is_diabetic"`
	IsHypertensive   bool `json:"is_hypertensive" form:"is_hypertensive"`
	HasKidneyProblem bool `json:"has_kidney_problem" form:"has_kidney_problem"`
	HasFamilyDRC     bool `json:"has_family_drc" form:"has_family_drc"`
	IsObese          bool `json:"is_obese" form:"is_obese"`
	HasBackEyeExam   bool `json:"has_back_eye_exam" form:"has_back_eye_exam"`
}

// ValidatePatient normalizes the form in place (trimmed strings, CPF reduced
// to digits, blank optionals dropped) and returns every failing field. The
// second return carries store errors from the uniqueness lookup only.
// excludeID is the id of the patient being edited, 0 on create.
func ValidatePatient(form *PatientForm, checker CPFChecker, excludeID uint, now time.Time) (Errors, error) {
	form.normalize()
	errs := Errors{}

	if form.Name == "" {
		errs.Add("name", "O campo nome é obrigatório.")
	} else if utf8.RuneCountInString(form.Name) > 255 {
		errs.Add("name", "O nome não pode ter mais de 255 caracteres.")
	}

	switch {
	case form.CPF == "":
		errs.Add("cpf", "O campo CPF é obrigatório.")
	case !cpfPattern.MatchString(form.CPF):
		errs.Add("cpf", "O CPF deve conter 11 dígitos (com ou sem formatação).")
	default:
		taken, err := checker.CPFExists(form.CPF, excludeID)
		if err != nil {
			return nil, err
		}
		if taken {
			errs.Add("cpf", "Este CPF já está cadastrado.")
		}
	}

	if form.DateOfBirth == "" {
		errs.Add("date_of_birth", "O campo data de nascimento é obrigatório.")
	} else if dob, err := time.Parse("2006-01-02", form.DateOfBirth); err != nil {
		errs.Add("date_of_birth", "A data de nascimento deve ser uma data válida.")
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		oldest := today.AddDate(-150, 0, 0)
		if !dob.Before(today) {
			errs.Add("date_of_birth", "A data de nascimento deve ser anterior a hoje.")
		} else if !dob.After(oldest) {
			errs.Add("date_of_birth", "A data de nascimento deve ser válida.")
		}
	}

	if form.Gender == "" {
		errs.Add("gender", "O campo sexo é obrigatório.")
	} else if form.Gender != models.GenderMale && form.Gender != models.GenderFemale {
		errs.Add("gender", "O sexo deve ser masculino ou feminino.")
	}

	if form.Address == "" {
		errs.Add("address", "O campo endereço é obrigatório.")
	} else if utf8.RuneCountInString(form.Address) > 255 {
		errs.Add("address", "O endereço não pode ter mais de 255 caracteres.")
	}

	if form.Neighborhood == "" {
		errs.Add("neighborhood", "O campo bairro é obrigatório.")
	} else if utf8.RuneCountInString(form.Neighborhood) > 100 {
		errs.Add("neighborhood", "O bairro não pode ter mais de 100 caracteres.")
	}

	if form.City == "" {
		errs.Add("city", "O campo cidade é obrigatório.")
	} else if utf8.RuneCountInString(form.City) > 100 {
		errs.Add("city", "A cidade não pode ter mais de 100 caracteres.")
	}

	if form.Weight != nil {
		if *form.Weight < 0 {
			errs.Add("weight", "O peso deve ser maior que zero.")
		} else if *form.Weight > 999.99 {
			errs.Add("weight", "O peso não pode ser maior que 999,99 kg.")
		}
	}

	if form.Height != nil {
		if *form.Height < 1 {
			errs.Add("height", "A altura deve ser maior que zero.")
		} else if *form.Height > 300 {
			errs.Add("height", "A altura não pode ser maior que 300 cm.")
		}
	}

	if form.BloodPressure != nil && !bloodPressurePattern.MatchString(*form.BloodPressure) {
		errs.Add("blood_pressure", "A pressão arterial deve estar no formato 12/8.")
	}

	if form.BloodGlucose != nil {
		if *form.BloodGlucose < 0 {
			errs.Add("blood_glucose", "A glicemia não pode ser negativa.")
		} else if *form.BloodGlucose > 999 {
			errs.Add("blood_glucose", "A glicemia não pode ser maior que 999.")
		}
	}

	if form.Creatinine != nil && utf8.RuneCountInString(*form.Creatinine) > 10 {
		errs.Add("creatinine", "A creatinina não pode ter mais de 10 caracteres.")
	}

	return errs, nil
}

// Apply copies the validated, normalized form onto a patient record.
func (f *PatientForm) Apply(p *models.Patient) {
	p.Name = f.Name
	p.CPF = f.CPF
	if dob, err := time.Parse("2006-01-02", f.DateOfBirth); err == nil {
		p.DateOfBirth = dob
	}
	p.Gender = f.Gender
	p.Address = f.Address
	p.Neighborhood = f.Neighborhood
	p.City = f.City
	p.Weight = f.Weight
	p.Height = f.Height
	p.BloodPressure = f.BloodPressure
	p.BloodGlucose = f.BloodGlucose
	p.Creatinine = f.Creatinine
	p.IsDiabetic = f.IsDiabetic
	p.IsHypertensive = f.IsHypertensive
	p.HasKidneyProblem = f.HasKidneyProblem
	p.HasFamilyDRC = f.HasFamilyDRC
	p.IsObese = f.IsObese
	p.HasBackEyeExam = f.HasBackEyeExam
}

func (f *PatientForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Gender = strings.TrimSpace(f.Gender)
	f.Address = strings.TrimSpace(f.Address)
	f.Neighborhood = strings.TrimSpace(f.Neighborhood)
	f.City = strings.TrimSpace(f.City)
	f.DateOfBirth = strings.TrimSpace(f.DateOfBirth)
	if cpf := strings.TrimSpace(f.CPF); cpf != "" {
		if digits := format.Digits(cpf); digits != "" {
			f.CPF = digits
		} else {
			f.CPF = cpf
		}
	} else {
		f.CPF = ""
	}
	f.BloodPressure = trimOptional(f.BloodPressure)
	f.Creatinine = trimOptional(f.Creatinine)
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
