package store

import (
	"errors"

	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"busmate/internal/models"
)

// PassengerInfo is a passenger profile joined with the owning account's
// email and user type, the shape dashboards read.
type PassengerInfo struct {
	models.Passenger `gorm:"embedded"`
	Email            string `gorm:"column:email" json:"email"`
	UserType         string `gorm:"column:user_type" json:"user_type"`
}

// OperatorInfo is the operator-side equivalent of PassengerInfo.
type OperatorInfo struct {
	models.BusOperator `gorm:"embedded"`
	Email              string `gorm:"column:email" json:"email"`
	UserType           string `gorm:"column:user_type" json:"user_type"`
}

// ProfileRepository handles the passengers and bus_operators tables.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// InsertPassengerProfile inserts the profile row for an existing account.
// Field values are stored verbatim. A second profile for the same account
// fails with ErrConstraint.
func (r *ProfileRepository) InsertPassengerProfile(profile *models.Passenger) error {
	if err := r.db.Create(profile).Error; err != nil {
		logrus.WithError(err).WithField("user_id", profile.UserID).
			Error("could not insert passenger profile")
		return constraintErr(err)
	}
	return nil
}

// InsertOperatorProfile inserts the profile row for an existing operator
// account, with the same contract as InsertPassengerProfile.
func (r *ProfileRepository) InsertOperatorProfile(profile *models.BusOperator) error {
	if err := r.db.Create(profile).Error; err != nil {
		logrus.WithError(err).WithField("user_id", profile.UserID).
			Error("could not insert operator profile")
		return constraintErr(err)
	}
	return nil
}

// GetPassengerProfile returns the profile for the given account, joined
// with the account's email and user type. ErrNotFound when no profile row
// exists yet; a fresh account before profile completion is the common
// case, not corruption.
func (r *ProfileRepository) GetPassengerProfile(accountID uint) (*PassengerInfo, error) {
	var info PassengerInfo
	err := r.db.Table("passengers").
		Select("passengers.*, users.email, users.user_type").
		Joins("JOIN users ON users.user_id = passengers.user_id").
		Where("passengers.user_id = ?", accountID).
		Take(&info).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &info, nil
}

// GetOperatorProfile is the bus_operators counterpart of GetPassengerProfile.
func (r *ProfileRepository) GetOperatorProfile(accountID uint) (*OperatorInfo, error) {
	var info OperatorInfo
	err := r.db.Table("bus_operators").
		Select("bus_operators.*, users.email, users.user_type").
		Joins("JOIN users ON users.user_id = bus_operators.user_id").
		Where("bus_operators.user_id = ?", accountID).
		Take(&info).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &info, nil
}

func constraintErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrConstraint
	}
	return err
}
