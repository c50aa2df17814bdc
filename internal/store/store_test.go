package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"busmate/internal/models"
)

func openTestDB(t *testing.T, path string, version int) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Open(db, version))
	return db
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return openTestDB(t, filepath.Join(t.TempDir(), "busmate.db"), SchemaVersion)
}

func TestOpenCreatesEmptyTables(t *testing.T) {
	db := newTestDB(t)

	for _, model := range []interface{}{&models.Account{}, &models.Passenger{}, &models.BusOperator{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		require.Zero(t, count)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "busmate.db")
	db := openTestDB(t, path, SchemaVersion)

	_, err := NewAccountRepository(db).CreateAccount("rider@example.com", "secret1", models.RolePassenger)
	require.NoError(t, err)

	// Same version again: no upgrade, data survives.
	require.NoError(t, Open(db, SchemaVersion))

	count, err := NewAccountRepository(db).CountAccounts()
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestUpgradeDropsAllData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "busmate.db")
	db := openTestDB(t, path, SchemaVersion)

	accounts := NewAccountRepository(db)
	profiles := NewProfileRepository(db)

	id, err := accounts.CreateAccount("rider@example.com", "secret1", models.RolePassenger)
	require.NoError(t, err)
	require.NoError(t, profiles.InsertPassengerProfile(&models.Passenger{UserID: id, FullName: "Rider One"}))

	opID, err := accounts.CreateAccount("driver@example.com", "secret2", models.RoleBusOperator)
	require.NoError(t, err)
	require.NoError(t, profiles.InsertOperatorProfile(&models.BusOperator{
		UserID:              opID,
		FullName:            "Driver One",
		LicenseNumber:       "DL-1",
		VehicleRegistration: "NA-1234",
	}))

	// A version bump is destructive: every table comes back empty.
	require.NoError(t, Open(db, SchemaVersion+1))

	for _, model := range []interface{}{&models.Account{}, &models.Passenger{}, &models.BusOperator{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		require.Zero(t, count)
	}
}
