package services

import (
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/apperr"
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/models"

	"gorm.io/gorm"
)

// PasswordVerifier compares a stored credential against a supplied
// one. The shipped implementation is an exact string match, which
// reproduces the current plain-text credential storage; swapping in a
// salted-hash verifier only requires changing the wiring in main.
type PasswordVerifier interface {
	Verify(stored, supplied string) bool
}

type PlainTextVerifier struct{}

func (PlainTextVerifier) Verify(stored, supplied string) bool {
	return stored == supplied
}

type AuthService struct {
	db           *gorm.DB
	verifier     PasswordVerifier
	adminRegCode string
}

func NewAuthService(db *gorm.DB, verifier PasswordVerifier, adminRegCode string) *AuthService {
	return &AuthService{db: db, verifier: verifier, adminRegCode: adminRegCode}
}

// RegisterUser creates a USER account. Email must not be registered
// yet, under either role.
func (s *AuthService) RegisterUser(name, email, password string) (*models.User, error) {
	return s.register(name, email, password, models.RoleUser)
}

// RegisterAdmin creates an ADMIN account. The registration code is
// checked before anything else, so a wrong code never leaks whether
// the email is already taken.
func (s *AuthService) RegisterAdmin(name, email, password, adminCode string) (*models.User, error) {
	if adminCode != s.adminRegCode {
		return nil, apperr.Unauthorized("Invalid admin registration code")
	}
	return s.register(name, email, password, models.RoleAdmin)
}

func (s *AuthService) register(name, email, password, role string) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, apperr.InvalidInput("Email already registered")
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates an account for one role surface. An unknown
// email and a wrong password produce the identical NotFound message so
// account existence is never leaked; a correct credential for the
// wrong role is Unauthorized.
func (s *AuthService) Login(email, password, expectedRole string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, apperr.NotFound("Invalid email or password")
	}

	if !s.verifier.Verify(user.Password, password) {
		return nil, apperr.NotFound("Invalid email or password")
	}

	if user.Role != expectedRole {
		return nil, apperr.Unauthorized("Access denied for this role")
	}

	return &user, nil
}
