package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"abrec/internal/models"
	"abrec/internal/query"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	rolesCacheKey        = "roles:" + models.GuardWeb
	rolesCacheExpiration = 30 * time.Minute
)

type UserRepository interface {
	Create(user *models.User, roleName string) error
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindPage(page int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uint) error
	SyncRole(user *models.User, roleName string) error
	EmailExists(email string, excludeID uint) (bool, error)
	RoleExists(name string) (bool, error)
	AllRoles() ([]models.Role, error)
}

type userRepository struct {
	db    *gorm.DB
	redis *redis.Client
	ctx   context.Context
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db:    db,
		redis: nil,
		ctx:   context.Background(),
	}
}

// NewCachedUserRepository caches the immutable role reference rows in Redis.
func NewCachedUserRepository(db *gorm.DB, redisClient *redis.Client) UserRepository {
	return &userRepository{
		db:    db,
		redis: redisClient,
		ctx:   context.Background(),
	}
}

// Create stores the user and assigns its single role in one transaction.
func (r *userRepository) Create(user *models.User, roleName string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		var role models.Role
		err := tx.Where("name = ? AND guard_name = ?", roleName, models.GuardWeb).
			First(&role).Error
		if err != nil {
			return err
		}
		return tx.Model(user).Association("Roles").Replace(&role)
	})
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Roles").First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Roles").Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindPage returns one page of users ordered by name, roles preloaded.
func (r *userRepository) FindPage(page int) ([]models.User, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := r.db.Preload("Roles").
		Order("name ASC, id ASC").
		Limit(query.PerPage).
		Offset((page - 1) * query.PerPage).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&user).Association("Roles").Clear(); err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

// SyncRole replaces any prior role memberships with exactly one role.
func (r *userRepository) SyncRole(user *models.User, roleName string) error {
	var role models.Role
	err := r.db.Where("name = ? AND guard_name = ?", roleName, models.GuardWeb).
		First(&role).Error
	if err != nil {
		return err
	}
	return r.db.Model(user).Association("Roles").Replace(&role)
}

// EmailExists reports whether another user already holds the email.
// excludeID skips the user being edited.
func (r *userRepository) EmailExists(email string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.Model(&models.User{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) RoleExists(name string) (bool, error) {
	roles, err := r.AllRoles()
	if err != nil {
		return false, err
	}
	for _, role := range roles {
		if role.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// AllRoles returns the guard's roles ordered by name. Roles are seeded once
// at setup, so the cached copy can only go stale by redeploy.
func (r *userRepository) AllRoles() ([]models.Role, error) {
	if r.redis != nil {
		cached, err := r.redis.Get(r.ctx, rolesCacheKey).Result()
		if err == nil {
			var roles []models.Role
			if err := json.Unmarshal([]byte(cached), &roles); err == nil {
				return roles, nil
			}
		}
	}

	var roles []models.Role
	err := r.db.Where("guard_name = ?", models.GuardWeb).
		Order("name ASC").
		Find(&roles).Error
	if err != nil {
		return nil, err
	}

	if r.redis != nil {
		if data, err := json.Marshal(roles); err == nil {
			if err := r.redis.Set(r.ctx, rolesCacheKey, data, rolesCacheExpiration).Err(); err != nil {
				log.Printf("Failed to cache roles: %v", err)
			}
		}
	}

	return roles, nil
}
