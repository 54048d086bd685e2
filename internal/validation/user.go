package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const passwordMinLength = 8

// UserChecker answers uniqueness and reference questions for user
// submissions. excludeID skips the user being edited (0 on create).
type UserChecker interface {
	EmailExists(email string, excludeID uint) (bool, error)
	RoleExists(name string) (bool, error)
}

// UserForm is a user create or edit submission.
type UserForm struct {
	Name                 string `json:"name" form:"name"`
	Email                string `json:"email" form:"email"`
	Password             string `json:"password" form:"password"`
	PasswordConfirmation string `json:"password_confirmation" form:"password_confirmation"`
	Role                 string `json:"role" form:"role"`
}

// ValidateUser validates a user submission and returns every failing field.
// On create (excludeID == 0) the password is required; on update the
// password rules run only when a password was supplied, absence meaning the
// current password is kept.
func ValidateUser(form *UserForm, checker UserChecker, excludeID uint) (Errors, error) {
	form.normalize()
	errs := Errors{}

	if form.Name == "" {
		errs.Add("name", "O campo nome é obrigatório.")
	} else if utf8.RuneCountInString(form.Name) > 255 {
		errs.Add("name", "O nome não pode ter mais de 255 caracteres.")
	}

	switch {
	case form.Email == "":
		errs.Add("email", "O campo e-mail é obrigatório.")
	case !emailPattern.MatchString(form.Email) || len(form.Email) > 255:
		errs.Add("email", "O e-mail deve ser um endereço válido.")
	default:
		taken, err := checker.EmailExists(form.Email, excludeID)
		if err != nil {
			return nil, err
		}
		if taken {
			errs.Add("email", "Este e-mail já está cadastrado.")
		}
	}

	passwordRequired := excludeID == 0
	if passwordRequired && form.Password == "" {
		errs.Add("password", "O campo senha é obrigatório.")
	} else if form.Password != "" {
		if utf8.RuneCountInString(form.Password) < passwordMinLength {
			errs.Add("password", "A senha deve ter pelo menos 8 caracteres.")
		} else if form.Password != form.PasswordConfirmation {
			errs.Add("password", "A confirmação da senha não confere.")
		}
	}

	if form.Role == "" {
		errs.Add("role", "O campo perfil é obrigatório.")
	} else {
		exists, err := checker.RoleExists(form.Role)
		if err != nil {
			return nil, err
		}
		if !exists {
			errs.Add("role", "O perfil selecionado é inválido.")
		}
	}

	return errs, nil
}

func (f *UserForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Role = strings.TrimSpace(f.Role)
}
