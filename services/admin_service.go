package services

import (
	"errors"

	"go-blog-api/models"
	"go-blog-api/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// BootstrapOutcome reports what EnsureAdmin had to do.
type BootstrapOutcome string

const (
	BootstrapAlreadyAdmin BootstrapOutcome = "already_admin"
	BootstrapPromoted     BootstrapOutcome = "promoted"
	BootstrapCreated      BootstrapOutcome = "created"
)

type AdminService interface {
	EnsureAdmin(email, username, password string) (BootstrapOutcome, *models.User, error)
}

type adminService struct {
	userRepo repositories.UserRepository
}

func NewAdminService(userRepo repositories.UserRepository) AdminService {
	return &adminService{userRepo: userRepo}
}

// EnsureAdmin promotes the user matching email or username to admin,
// creating the account if none exists. Repeated calls with the same
// identity are no-ops.
func (s *adminService) EnsureAdmin(email, username, password string) (BootstrapOutcome, *models.User, error) {
	fields := map[string]string{}
	if email == "" {
		fields["email"] = "email is required"
	}
	if username == "" {
		fields["username"] = "username is required"
	}
	if password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return "", nil, models.ErrorValidation{Fields: fields}
	}

	user, err := s.userRepo.GetByEmailOrUsername(email, username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, models.ErrorInternalServer{Message: err.Error()}
	}

	if err == nil {
		if user.Role == models.RoleAdmin {
			return BootstrapAlreadyAdmin, user, nil
		}

		user.Role = models.RoleAdmin
		if err := s.userRepo.Update(user); err != nil {
			return "", nil, models.ErrorInternalServer{Message: err.Error()}
		}
		return BootstrapPromoted, user, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, models.ErrorInternalServer{Message: err.Error()}
	}

	user = &models.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
	}

	if err := s.userRepo.Create(user); err != nil {
		return "", nil, models.ErrorInternalServer{Message: err.Error()}
	}

	return BootstrapCreated, user, nil
}
