package format

import (
	"strconv"

	"abrec/internal/models"
)

// UserListItem is the display projection of one users-list row.
type UserListItem struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func UserForList(u *models.User) UserListItem {
	role := u.RoleName()
	if role == "" {
		role = "-"
	}
	return UserListItem{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  role,
	}
}

// PatientFormData is the edit-form projection: CPF formatted, date in ISO
// form and optional fields flattened to strings so the form can render empty
// inputs for missing values.
type PatientFormData struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	CPF              string `json:"cpf"`
	DateOfBirth      string `json:"date_of_birth"`
	Gender           string `json:"gender"`
	Address          string `json:"address"`
	Neighborhood     string `json:"neighborhood"`
	City             string `json:"city"`
	Weight           string `json:"weight"`
	Height           string `json:"height"`
	BloodPressure    string `json:"blood_pressure"`
	BloodGlucose     string `json:"blood_glucose"`
	Creatinine       string `json:"creatinine"`
	IsDiabetic       bool   `json:"is_diabetic"`
	IsHypertensive   bool   `json:"is_hypertensive"`
	HasKidneyProblem bool   `json:"has_kidney_problem"`
	HasFamilyDRC     bool   `json:"has_family_drc"`
	IsObese          bool   `json:"is_obese"`
	HasBackEyeExam   bool   `json:"has_back_eye_exam"`
}

func PatientForEdit(p *models.Patient) PatientFormData {
	data := PatientFormData{
		ID:               p.ID,
		Name:             p.Name,
		CPF:              CPF(p.CPF),
		DateOfBirth:      p.DateOfBirth.Format("2006-01-02"),
		Gender:           p.Gender,
		Address:          p.Address,
		Neighborhood:     p.Neighborhood,
		City:             p.City,
		IsDiabetic:       p.IsDiabetic,
		IsHypertensive:   p.IsHypertensive,
		HasKidneyProblem: p.HasKidneyProblem,
		HasFamilyDRC:     p.HasFamilyDRC,
		IsObese:          p.IsObese,
		HasBackEyeExam:   p.HasBackEyeExam,
	}
	if p.Weight != nil {
		data.Weight = strconv.FormatFloat(*p.Weight, 'f', 2, 64)
	}
	if p.Height != nil {
		data.Height = strconv.Itoa(*p.Height)
	}
	if p.BloodPressure != nil {
		data.BloodPressure = *p.BloodPressure
	}
	if p.BloodGlucose != nil {
		data.BloodGlucose = strconv.Itoa(*p.BloodGlucose)
	}
	if p.Creatinine != nil {
		data.Creatinine = *p.Creatinine
	}
	return data
}
