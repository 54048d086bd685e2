// Package export turns a filtered patient set into a spreadsheet. It is a
// pure function over the patient slice so it can be tested away from HTTP.
package export

import (
	"io"
	"time"

	"abrec/internal/format"
	"abrec/internal/models"

	"github.com/xuri/excelize/v2"
)

// ContentType is the xlsx MIME type sent with the download.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const sheetName = "Pacientes"

var headings = []interface{}{
	"ID",
	"Nome",
	"CPF",
	"Data de Nascimento",
	"Sexo",
	"Endereço",
	"Bairro",
	"Cidade",
	"Peso (kg)",
	"Altura (cm)",
	"Pressão Arterial",
	"Glicemia (mg/dL)",
	"Creatinina",
	"Diabético",
	"Hipertenso",
	"Problema Renal",
	"D.R.C na Família",
	"Obesidade",
	"Exame Fundo de Olho",
}

// Filename encodes the generation timestamp: pacientes-YYYY-MM-DD-HHMMSS.xlsx.
func Filename(t time.Time) string {
	return "pacientes-" + t.Format("2006-01-02-150405") + ".xlsx"
}

// WritePatients streams one sheet with the fixed header row and one row per
// patient, in the order the slice came in (name ascending from the query).
func WritePatients(w io.Writer, patients []models.Patient) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), sheetName)

	if err := f.SetSheetRow(sheetName, "A1", &headings); err != nil {
		return err
	}

	for i := range patients {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := patientRow(&patients[i])
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func patientRow(p *models.Patient) []interface{} {
	gender := "Feminino"
	if p.Gender == models.GenderMale {
		gender = "Masculino"
	}

	return []interface{}{
		p.ID,
		p.Name,
		format.CPF(p.CPF),
		p.DateOfBirth.Format("02/01/2006"),
		gender,
		p.Address,
		p.Neighborhood,
		p.City,
		optionalFloat(p.Weight),
		optionalInt(p.Height),
		optionalString(p.BloodPressure),
		optionalInt(p.BloodGlucose),
		optionalString(p.Creatinine),
		simNao(p.IsDiabetic),
		simNao(p.IsHypertensive),
		simNao(p.HasKidneyProblem),
		simNao(p.HasFamilyDRC),
		simNao(p.IsObese),
		simNao(p.HasBackEyeExam),
	}
}

func simNao(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

func optionalFloat(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func optionalInt(v *int) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func optionalString(v *string) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
