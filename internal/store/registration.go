package store

import (
	"gorm.io/gorm"

	"busmate/internal/models"
)

// RegisterPassenger creates an account and its passenger profile in one
// transaction. A failed profile insert rolls the account back, so a
// half-registered passenger can never be left behind by this path.
func RegisterPassenger(db *gorm.DB, email, password string, profile models.Passenger) (*models.Account, error) {
	var account *models.Account

	err := db.Transaction(func(tx *gorm.DB) error {
		id, err := NewAccountRepository(tx).CreateAccount(email, password, models.RolePassenger)
		if err != nil {
			return err
		}

		profile.UserID = id
		if err := NewProfileRepository(tx).InsertPassengerProfile(&profile); err != nil {
			return err
		}

		account = &models.Account{}
		return tx.First(account, id).Error
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// RegisterOperator creates an account and its operator profile in one
// transaction, same contract as RegisterPassenger.
func RegisterOperator(db *gorm.DB, email, password string, profile models.BusOperator) (*models.Account, error) {
	var account *models.Account

	err := db.Transaction(func(tx *gorm.DB) error {
		id, err := NewAccountRepository(tx).CreateAccount(email, password, models.RoleBusOperator)
		if err != nil {
			return err
		}

		profile.UserID = id
		if err := NewProfileRepository(tx).InsertOperatorProfile(&profile); err != nil {
			return err
		}

		account = &models.Account{}
		return tx.First(account, id).Error
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}
