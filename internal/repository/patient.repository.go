package repository

import (
	"abrec/internal/models"
	"abrec/internal/query"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(patient *models.Patient) error
	FindByID(id uint) (*models.Patient, error)
	Update(patient *models.Patient) error
	Delete(id uint) error
	FindPage(filter query.PatientFilter, page int) ([]models.Patient, int64, error)
	FindAllFiltered(filter query.PatientFilter) ([]models.Patient, error)
	CPFExists(cpf string, excludeID uint) (bool, error)
}

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db}
}

func (r *patientRepository) Create(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

func (r *patientRepository) FindByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.First(&patient, id).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(patient *models.Patient) error {
	return r.db.Save(patient).Error
}

func (r *patientRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Patient{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindPage returns one page of the filtered list plus the total match count.
// Ordering is name ascending with id as tie-break so pagination stays
// deterministic. Pages are 1-based and 15 rows long.
func (r *patientRepository) FindPage(filter query.PatientFilter, page int) ([]models.Patient, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := r.filtered(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var patients []models.Patient
	err := r.filtered(filter).
		Order("name ASC, id ASC").
		Limit(query.PerPage).
		Offset((page - 1) * query.PerPage).
		Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

// FindAllFiltered returns every matching patient in export order.
func (r *patientRepository) FindAllFiltered(filter query.PatientFilter) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.filtered(filter).
		Order("name ASC, id ASC").
		Find(&patients).Error
	return patients, err
}

// CPFExists reports whether another patient already holds the digits-only
// CPF. excludeID skips the record being edited.
func (r *patientRepository) CPFExists(cpf string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.Model(&models.Patient{}).Where("cpf = ?", cpf)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// filtered applies the list/export filter. Name and CPF are substring
// matches (CPF over its digits-only form); selected health indicators
// combine with OR. Indicator columns come from a fixed map, never from
// request input.
func (r *patientRepository) filtered(filter query.PatientFilter) *gorm.DB {
	q := r.db.Model(&models.Patient{})

	if filter.Name != "" {
		q = q.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if digits := filter.CPFDigits(); digits != "" {
		q = q.Where("cpf LIKE ?", "%"+digits+"%")
	}
	if columns := filter.IndicatorColumns(); len(columns) > 0 {
		or := r.db.Where(columns[0]+" = ?", true)
		for _, column := range columns[1:] {
			or = or.Or(column+" = ?", true)
		}
		q = q.Where(or)
	}
	return q
}
