package models

import "time"

// Gender values accepted for a patient.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Patient is a clinical record. CPF is stored digits-only (11 chars) and is
// unique across all patients. Optional health fields are nullable; the six
// condition flags default to false.
type Patient struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	CPF          string    `gorm:"column:cpf;size:11;uniqueIndex;not null" json:"cpf"`
	DateOfBirth  time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender       string    `gorm:"size:10;not null" json:"gender"`
	Address      string    `gorm:"size:255;not null" json:"address"`
	Neighborhood string    `gorm:"size:100;not null" json:"neighborhood"`
	City         string    `gorm:"size:100;not null" json:"city"`

	Weight        *float64 `gorm:"type:decimal(5,2)" json:"weight"`
	Height        *int     `json:"height"`
	BloodPressure *string  `gorm:"size:10" json:"blood_pressure"`
	BloodGlucose  *int     `json:"blood_glucose"`
	Creatinine    *string  `gorm:"size:10" json:"creatinine"`

	IsDiabetic       bool `gorm:"default:false" json:"is_diabetic"`
	IsHypertensive   bool `gorm:"default:false" json:"is_hypertensive"`
	HasKidneyProblem bool `gorm:"default:false" json:"has_kidney_problem"`
	HasFamilyDRC     bool `gorm:"default:false" json:"has_family_drc"`
	IsObese          bool `gorm:"default:false" json:"is_obese"`
	HasBackEyeExam   bool `gorm:"default:false" json:"has_back_eye_exam"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
