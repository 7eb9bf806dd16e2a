package services

import (
	"errors"
	"strings"

	"github.com/rishen2486/wheels-up-booking-suite/access"
	"github.com/rishen2486/wheels-up-booking-suite/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound    = errors.New("profile_not_found")
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Role      string
}

func (s *ProfileService) Register(in RegisterInput) (*models.Profile, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := strings.TrimSpace(in.Role)
	if role != "agent" {
		role = "customer"
	}

	profile := &models.Profile{
		UserID:    uuid.NewString(),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Password:  string(hash),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Phone:     strings.TrimSpace(in.Phone),
		Role:      role,
	}
	if err := s.DB.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) Authenticate(email, password string) (*models.Profile, error) {
	var profile models.Profile
	err := s.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &profile, nil
}

func (s *ProfileService) GetByUserID(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := s.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// ScopeFor maps a profile row (possibly missing) to an access scope.
// A missing profile never fails open.
func ScopeFor(userID string, profile *models.Profile) access.Scope {
	if profile == nil {
		return access.Resolve(userID, false)
	}
	return access.Resolve(userID, profile.Superuser)
}

// ResolveScope looks up the caller's profile and resolves their read
// scope. Lookup failures degrade to the most restrictive scope.
func (s *ProfileService) ResolveScope(userID string) access.Scope {
	profile, err := s.GetByUserID(userID)
	if err != nil {
		return ScopeFor(userID, nil)
	}
	return ScopeFor(userID, profile)
}
