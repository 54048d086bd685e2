package controllers

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"abrec/internal/format"
	"abrec/internal/models"
	"abrec/internal/query"
	"abrec/internal/repository"
	"abrec/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	repo repository.UserRepository
}

func NewUserController(repo repository.UserRepository) *UserController {
	return &UserController{repo: repo}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary Log in
// @Description Issues a JWT for an existing account
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Email and password"
// @Success 200 {object} map[string]interface{} "User logged in successfully"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /users/login [post]
func (uc *UserController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.repo.FindByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid credentials",
			"error":   "Email or password is incorrect",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid credentials",
			"error":   "Email or password is incorrect",
		})
		return
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.RoleName(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET_KEY")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to generate token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User logged in successfully",
		"data": gin.H{
			"token": signed,
			"user":  format.UserForList(user),
		},
	})
}

// Index godoc
// @Summary List users
// @Description Paginated users list ordered by name, admin only
// @Tags users
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} map[string]interface{} "Users retrieved successfully"
// @Failure 403 {object} map[string]interface{} "Acesso negado."
// @Router /users [get]
func (uc *UserController) Index(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	users, total, err := uc.repo.FindPage(page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to list users",
			"error":   err.Error(),
		})
		return
	}

	items := make([]format.UserListItem, 0, len(users))
	for i := range users {
		items = append(items, format.UserForList(&users[i]))
	}

	lastPage := (total + query.PerPage - 1) / query.PerPage
	if lastPage < 1 {
		lastPage = 1
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Users retrieved successfully",
		"data": gin.H{
			"data":         items,
			"total":        total,
			"per_page":     query.PerPage,
			"current_page": page,
			"last_page":    lastPage,
		},
	})
}

// Create godoc
// @Summary User registration form data
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{} "Form data"
// @Router /users/create [get]
func (uc *UserController) Create(c *gin.Context) {
	roles, err := uc.rolesForSelect()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load roles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User form data",
		"data": gin.H{
			"roles": roles,
		},
	})
}

// Store godoc
// @Summary Register a user
// @Description Creates a user with exactly one role; admin only
// @Tags users
// @Accept json
// @Produce json
// @Param user body validation.UserForm true "User data"
// @Success 201 {object} map[string]interface{} "Usuário cadastrado com sucesso."
// @Failure 422 {object} map[string]interface{} "Field validation errors"
// @Router /users [post]
func (uc *UserController) Store(c *gin.Context) {
	var form validation.UserForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	errs, err := validation.ValidateUser(&form, uc.repo, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to validate user",
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

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to hash password",
			"error":   err.Error(),
		})
		return
	}

	user := models.User{
		Name:     form.Name,
		Email:    form.Email,
		Password: string(hash),
	}

	if err := uc.repo.Create(&user, form.Role); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"status":  "error",
				"message": "Os dados fornecidos são inválidos.",
				"errors":  validation.Errors{"email": "Este e-mail já está cadastrado."},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Usuário cadastrado com sucesso.",
		"data":    format.UserForList(&user),
	})
}

// Edit godoc
// @Summary User edit form data
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Form data"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /users/{id}/edit [get]
func (uc *UserController) Edit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	user, err := uc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	roles, err := uc.rolesForSelect()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load roles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User retrieved successfully",
		"data": gin.H{
			"user": gin.H{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
				"role":  user.RoleName(),
			},
			"roles": roles,
		},
	})
}

// Update godoc
// @Summary Update a user
// @Description Name, email and role always; password only when supplied
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body validation.UserForm true "User data"
// @Success 200 {object} map[string]interface{} "Usuário atualizado com sucesso."
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 422 {object} map[string]interface{} "Field validation errors"
// @Router /users/{id} [put]
func (uc *UserController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	user, err := uc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	var form validation.UserForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	errs, err := validation.ValidateUser(&form, uc.repo, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to validate user",
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

	user.Name = form.Name
	user.Email = form.Email
	if form.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to hash password",
				"error":   err.Error(),
			})
			return
		}
		user.Password = string(hash)
	}

	if err := uc.repo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"status":  "error",
				"message": "Os dados fornecidos são inválidos.",
				"errors":  validation.Errors{"email": "Este e-mail já está cadastrado."},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update user",
			"error":   err.Error(),
		})
		return
	}

	if err := uc.repo.SyncRole(user, form.Role); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to assign role",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Usuário atualizado com sucesso.",
		"data": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  form.Role,
		},
	})
}

// Destroy godoc
// @Summary Delete a user
// @Description Hard delete; deleting your own account is rejected with an error flash
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Usuário excluído com sucesso."
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /users/{id} [delete]
func (uc *UserController) Destroy(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	// Flash-style rejection, not a hard failure
	if uint(id) == c.GetUint("user_id") {
		c.JSON(http.StatusOK, gin.H{
			"status":  "error",
			"message": "Você não pode excluir sua própria conta.",
			"data":    nil,
		})
		return
	}

	if err := uc.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "User not found",
				"error":   "No user exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete user",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Usuário excluído com sucesso.",
		"data":    nil,
	})
}

// Roles godoc
// @Summary Roles for the user form select
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{} "Roles retrieved successfully"
// @Router /users/roles [get]
func (uc *UserController) Roles(c *gin.Context) {
	roles, err := uc.rolesForSelect()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load roles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Roles retrieved successfully",
		"data":    roles,
	})
}

func (uc *UserController) rolesForSelect() ([]gin.H, error) {
	roles, err := uc.repo.AllRoles()
	if err != nil {
		return nil, err
	}
	options := make([]gin.H, 0, len(roles))
	for _, role := range roles {
		options = append(options, gin.H{
			"value": role.Name,
			"label": capitalize(role.Name),
		})
	}
	return options, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
