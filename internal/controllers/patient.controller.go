package controllers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"time"

	"abrec/internal/export"
	"abrec/internal/format"
	"abrec/internal/models"
	"abrec/internal/query"
	"abrec/internal/repository"
	"abrec/internal/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PatientController struct {
	repo repository.PatientRepository
}

func NewPatientController(repo repository.PatientRepository) *PatientController {
	return &PatientController{repo: repo}
}

// Index godoc
// @Summary List patients
// @Description Paginated patients list with name, CPF and health-indicator filters
// @Tags patients
// @Produce json
// @Param name query string false "Name substring"
// @Param cpf query string false "CPF substring (digits or formatted)"
// @Param health_indicators[] query []string false "Indicator keys (diabetic, hypertensive, renal, obesity), OR semantics"
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} map[string]interface{} "Patients retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to list patients"
// @Router /patients [get]
func (pc *PatientController) Index(c *gin.Context) {
	filter := query.ParsePatientFilter(c.Request.URL.Query())

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	patients, total, err := pc.repo.FindPage(filter, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to list patients",
			"error":   err.Error(),
		})
		return
	}

	now := time.Now()
	items := make([]format.PatientListItem, 0, len(patients))
	for i := range patients {
		items = append(items, format.PatientForList(&patients[i], now))
	}

	lastPage := (total + query.PerPage - 1) / query.PerPage
	if lastPage < 1 {
		lastPage = 1
	}

	response := gin.H{
		"status":  "success",
		"message": "Patients retrieved successfully",
		"data": gin.H{
			"data":         items,
			"total":        total,
			"per_page":     query.PerPage,
			"current_page": page,
			"last_page":    lastPage,
		},
	}
	// Echo the filter back only when it constrains something
	if !filter.IsEmpty() {
		response["filters"] = filter
	}
	c.JSON(http.StatusOK, response)
}

// Create godoc
// @Summary Patient registration form data
// @Tags patients
// @Produce json
// @Success 200 {object} map[string]interface{} "Form data"
// @Router /patients/create [get]
func (pc *PatientController) Create(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Patient form data",
		"data": gin.H{
			"patient": format.PatientFormData{},
			"genders": []string{models.GenderMale, models.GenderFemale},
		},
	})
}

// Store godoc
// @Summary Register a patient
// @Description Validates the whole submission; on any failure nothing is written
// @Tags patients
// @Accept json
// @Produce json
// @Param patient body validation.PatientForm true "Patient data"
// @Success 201 {object} map[string]interface{} "Paciente cadastrado com sucesso."
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 422 {object} map[string]interface{} "Field validation errors"
// @Router /patients [post]
func (pc *PatientController) Store(c *gin.Context) {
	var form validation.PatientForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	errs, err := validation.ValidatePatient(&form, pc.repo, 0, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to validate patient",
			"error":   err.Error(),
		})
		return
	}
	if errs.Any() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "Os dados fornecidos são inválidos.",
			"errors":  errs,
		})
		return
	}

	var patient models.Patient
	form.Apply(&patient)

	if err := pc.repo.Create(&patient); err != nil {
		// A concurrent insert can still trip the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"status":  "error",
				"message": "Os dados fornecidos são inválidos.",
				"errors":  validation.Errors{"cpf": "Este CPF já está cadastrado."},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create patient",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Paciente cadastrado com sucesso.",
		"data":    patient,
	})
}

// Edit godoc
// @Summary Patient edit form data
// @Tags patients
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} map[string]interface{} "Form data"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Router /patients/{id}/edit [get]
func (pc *PatientController) Edit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid patient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	patient, err := pc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Patient not found",
			"error":   "No patient exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Patient retrieved successfully",
		"data": gin.H{
			"patient": format.PatientForEdit(patient),
			"genders": []string{models.GenderMale, models.GenderFemale},
		},
	})
}

// Update godoc
// @Summary Update a patient
// @Description CPF uniqueness is re-checked excluding the patient being edited
// @Tags patients
// @Accept json
// @Produce json
// @Param id path int true "Patient ID"
// @Param patient body validation.PatientForm true "Patient data"
// @Success 200 {object} map[string]interface{} "Paciente atualizado com sucesso."
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Failure 422 {object} map[string]interface{} "Field validation errors"
// @Router /patients/{id} [put]
func (pc *PatientController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid patient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	patient, err := pc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Patient not found",
			"error":   "No patient exists with the provided ID",
		})
		return
	}

	var form validation.PatientForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	errs, err := validation.ValidatePatient(&form, pc.repo, patient.ID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to validate patient",
			"error":   err.Error(),
		})
		return
	}
	if errs.Any() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "Os dados fornecidos são inválidos.",
			"errors":  errs,
		})
		return
	}

	form.Apply(patient)

	if err := pc.repo.Update(patient); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"status":  "error",
				"message": "Os dados fornecidos são inválidos.",
				"errors":  validation.Errors{"cpf": "Este CPF já está cadastrado."},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update patient",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Paciente atualizado com sucesso.",
		"data":    patient,
	})
}

// Destroy godoc
// @Summary Delete a patient
// @Description Hard delete, no undo
// @Tags patients
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} map[string]interface{} "Paciente excluído com sucesso."
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Router /patients/{id} [delete]
func (pc *PatientController) Destroy(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid patient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := pc.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Patient not found",
				"error":   "No patient exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete patient",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Paciente excluído com sucesso.",
		"data":    nil,
	})
}

// Export godoc
// @Summary Export patients to a spreadsheet
// @Description Same filter contract as the list; admin only
// @Tags patients
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param name query string false "Name substring"
// @Param cpf query string false "CPF substring (digits or formatted)"
// @Param health_indicators[] query []string false "Indicator keys, OR semantics"
// @Success 200 {file} file "pacientes-YYYY-MM-DD-HHMMSS.xlsx"
// @Failure 403 {object} map[string]interface{} "Acesso negado."
// @Failure 500 {object} map[string]interface{} "Failed to export patients"
// @Router /patients/export [get]
func (pc *PatientController) Export(c *gin.Context) {
	filter := query.ParsePatientFilter(c.Request.URL.Query())

	patients, err := pc.repo.FindAllFiltered(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to export patients",
			"error":   err.Error(),
		})
		return
	}

	var buf bytes.Buffer
	if err := export.WritePatients(&buf, patients); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to generate spreadsheet",
			"error":   err.Error(),
		})
		return
	}

	filename := export.Filename(time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
