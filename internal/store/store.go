package store

import (
	"errors"

	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"busmate/internal/models"
)

// SchemaVersion is the current version of the three-table schema.
// Bumping it wipes existing data on the next Open (see Upgrade).
const SchemaVersion = 3

// schemaInfo is a single-row table recording the schema version the
// database file was created with. It stands in for SQLite's user_version
// pragma so the same logic runs on every backend.
type schemaInfo struct {
	ID      uint `gorm:"primaryKey"`
	Version int  `gorm:"not null"`
}

func (schemaInfo) TableName() string {
	return "schema_info"
}

// Open ensures the users, passengers and bus_operators tables exist at
// the requested schema version. If the database was created with an older
// version, Upgrade is invoked first.
//
// The upgrade contract is destructive: all three tables are dropped and
// recreated empty. Every schema bump discards all user data. This mirrors
// the app's historical behavior and is kept deliberately; a production
// deployment would replace it with per-version migration steps.
func Open(db *gorm.DB, version int) error {
	if err := db.AutoMigrate(&schemaInfo{}); err != nil {
		return err
	}

	var info schemaInfo
	err := db.First(&info).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		info = schemaInfo{Version: version}
		if err := db.Create(&info).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	case info.Version < version:
		if err := Upgrade(db, info.Version, version); err != nil {
			return err
		}
		info.Version = version
		if err := db.Save(&info).Error; err != nil {
			return err
		}
	}

	if err := db.AutoMigrate(&models.Account{}, &models.Passenger{}, &models.BusOperator{}); err != nil {
		return err
	}

	logrus.WithField("schema_version", version).Debug("store opened")
	return nil
}

// Upgrade drops the three tables and leaves them to be recreated empty.
func Upgrade(db *gorm.DB, oldVersion, newVersion int) error {
	logrus.WithFields(logrus.Fields{
		"old": oldVersion,
		"new": newVersion,
	}).Warn("destructive schema upgrade: dropping all tables")

	return db.Migrator().DropTable(&models.BusOperator{}, &models.Passenger{}, &models.Account{})
}
