package store

import (
	"errors"
	"strings"

	logrus "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"busmate/internal/models"
)

// AccountRepository handles account rows in the users table.
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository.
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// NormalizeEmail lowercases and trims an email. All storage and lookups
// go through this, which is what makes email uniqueness case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeRole validates and normalizes a role string.
func NormalizeRole(role string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case models.RolePassenger:
		return models.RolePassenger, nil
	case models.RoleBusOperator:
		return models.RoleBusOperator, nil
	default:
		return "", ErrInvalidRole
	}
}

// CreateAccount inserts a new account and returns its assigned ID.
// The password is stored as a bcrypt hash, never in the clear. A second
// account with the same normalized email fails with ErrDuplicateEmail;
// the unique index makes this safe even when two creates race.
func (r *AccountRepository) CreateAccount(email, password, role string) (uint, error) {
	role, err := NormalizeRole(role)
	if err != nil {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	account := models.Account{
		Email:      NormalizeEmail(email),
		Password:   string(hash),
		UserType:   role,
		IsVerified: false,
	}
	if err := r.db.Create(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrDuplicateEmail
		}
		logrus.WithError(err).Error("could not create account")
		return 0, err
	}

	return account.ID, nil
}

// EmailExists reports whether an account with the given email is on file.
// Empty or blank input is false without touching the database.
func (r *AccountRepository) EmailExists(email string) (bool, error) {
	normalized := NormalizeEmail(email)
	if normalized == "" {
		return false, nil
	}

	var count int64
	if err := r.db.Model(&models.Account{}).Where("email = ?", normalized).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Authenticate returns the account matching the credentials. Unknown email
// and wrong password both come back as ErrNotFound; callers cannot tell
// them apart, and the caller-visible message should not either.
func (r *AccountRepository) Authenticate(email, password string) (*models.Account, error) {
	var account models.Account
	err := r.db.Where("email = ?", NormalizeEmail(email)).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, ErrNotFound
	}

	return &account, nil
}

// UpdatePassword replaces the password for the given email, returning true
// iff exactly one row was updated. It does not re-check the old password;
// the reset flow has already verified the caller's identity.
func (r *AccountRepository) UpdatePassword(email, newPassword string) (bool, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	res := r.db.Model(&models.Account{}).
		Where("email = ?", NormalizeEmail(email)).
		Update("password", string(hash))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// CountAccounts returns the total number of accounts.
func (r *AccountRepository) CountAccounts() (int64, error) {
	var count int64
	err := r.db.Model(&models.Account{}).Count(&count).Error
	return count, err
}

// ListAccounts returns every account, unfiltered. Diagnostic use only.
func (r *AccountRepository) ListAccounts() ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.Find(&accounts).Error
	return accounts, err
}
