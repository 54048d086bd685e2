package format

import (
	"strings"
	"time"

	"abrec/internal/models"
)

const dateLayoutBR = "02/01/2006"

// Badge is one health-indicator chip shown on the patients list.
type Badge struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// PatientListItem is the display projection of one patients-list row.
type PatientListItem struct {
	ID               uint    `json:"id"`
	Name             string  `json:"name"`
	Initials         string  `json:"initials"`
	CPF              string  `json:"cpf"`
	DateOfBirth      string  `json:"date_of_birth"`
	Age              int     `json:"age"`
	City             string  `json:"city"`
	HealthIndicators []Badge `json:"health_indicators"`
}

// PatientForList derives the list projection for one patient. Age is whole
// years from date of birth to now.
func PatientForList(p *models.Patient, now time.Time) PatientListItem {
	return PatientListItem{
		ID:               p.ID,
		Name:             p.Name,
		Initials:         Initials(p.Name),
		CPF:              CPF(p.CPF),
		DateOfBirth:      p.DateOfBirth.Format(dateLayoutBR),
		Age:              Age(p.DateOfBirth, now),
		City:             p.City,
		HealthIndicators: HealthBadges(p),
	}
}

// Initials takes the uppercase first letters of the first and last name when
// the name has two or more words, otherwise the first two characters.
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) >= 2 {
		first := []rune(words[0])
		last := []rune(words[len(words)-1])
		return strings.ToUpper(string(first[0]) + string(last[0]))
	}
	if len(words) == 0 {
		return ""
	}
	runes := []rune(words[0])
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

// Age computes completed years between dob and now.
func Age(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() ||
		(now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// HealthBadges emits one badge per active indicator, in a fixed order. When
// no indicator is set, a single gray "none" badge is returned.
func HealthBadges(p *models.Patient) []Badge {
	badges := []Badge{}
	if p.IsDiabetic {
		badges = append(badges, Badge{Key: "diabetic", Label: "Diabético", Color: "blue"})
	}
	if p.IsHypertensive {
		badges = append(badges, Badge{Key: "hypertensive", Label: "Hipertenso", Color: "red"})
	}
	if p.HasKidneyProblem {
		badges = append(badges, Badge{Key: "renal", Label: "Problema Renal", Color: "orange"})
	}
	if p.IsObese {
		badges = append(badges, Badge{Key: "obesity", Label: "Obesidade", Color: "green"})
	}
	if len(badges) == 0 {
		badges = append(badges, Badge{Key: "none", Label: "Nenhum indicador", Color: "gray"})
	}
	return badges
}
