package controllers_test

import (
	"abrec/internal/models"
	"abrec/internal/query"

	"github.com/stretchr/testify/mock"
)

// Shared MockPatientRepository
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(patient *models.Patient) error {
	args := m.Called(patient)
	return args.Error(0)
}

func (m *MockPatientRepository) FindByID(id uint) (*models.Patient, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) Update(patient *models.Patient) error {
	args := m.Called(patient)
	return args.Error(0)
}

func (m *MockPatientRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPatientRepository) FindPage(filter query.PatientFilter, page int) ([]models.Patient, int64, error) {
	args := m.Called(filter, page)
	return args.Get(0).([]models.Patient), args.Get(1).(int64), args.Error(2)
}

func (m *MockPatientRepository) FindAllFiltered(filter query.PatientFilter) ([]models.Patient, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) CPFExists(cpf string, excludeID uint) (bool, error) {
	args := m.Called(cpf, excludeID)
	return args.Bool(0), args.Error(1)
}

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User, roleName string) error {
	args := m.Called(user, roleName)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindPage(page int) ([]models.User, int64, error) {
	args := m.Called(page)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) SyncRole(user *models.User, roleName string) error {
	args := m.Called(user, roleName)
	return args.Error(0)
}

func (m *MockUserRepository) EmailExists(email string, excludeID uint) (bool, error) {
	args := m.Called(email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) RoleExists(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AllRoles() ([]models.Role, error) {
	args := m.Called()
	return args.Get(0).([]models.Role), args.Error(1)
}
