package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"busmate/internal/models"
)

func TestCreateAccountAndEmailExists(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))

	id, err := repo.CreateAccount("Jane@Example.com", "secret1", "passenger")
	require.NoError(t, err)
	assert.EqualValues(t, 1, id)

	t.Run("normalized lookup", func(t *testing.T) {
		exists, err := repo.EmailExists("jane@example.com")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		exists, err := repo.EmailExists("  JANE@EXAMPLE.COM  ")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("blank input short-circuits", func(t *testing.T) {
		for _, email := range []string{"", "   "} {
			exists, err := repo.EmailExists(email)
			require.NoError(t, err)
			assert.False(t, exists)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		exists, err := repo.EmailExists("nobody@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))

	_, err := repo.CreateAccount("jane@example.com", "secret1", "passenger")
	require.NoError(t, err)

	// Differs only in case and surrounding whitespace.
	_, err = repo.CreateAccount("  Jane@EXAMPLE.com ", "other", "bus_operator")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestCreateAccountRejectsUnknownRole(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))

	_, err := repo.CreateAccount("jane@example.com", "secret1", "conductor")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestCreateAccountDefaults(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)

	id, err := repo.CreateAccount("Jane@Example.com", "secret1", "passenger")
	require.NoError(t, err)

	var account models.Account
	require.NoError(t, db.First(&account, id).Error)

	assert.Equal(t, "jane@example.com", account.Email)
	assert.Equal(t, models.RolePassenger, account.UserType)
	assert.False(t, account.IsVerified)
	assert.False(t, account.CreatedAt.IsZero())
	// Never stored in the clear.
	assert.NotEqual(t, "secret1", account.Password)
	assert.NotContains(t, account.Password, "secret1")
}

func TestAuthenticate(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))

	id, err := repo.CreateAccount("Jane@Example.com", "secret1", "passenger")
	require.NoError(t, err)

	t.Run("correct credentials, any email case", func(t *testing.T) {
		account, err := repo.Authenticate("JANE@example.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, id, account.ID)
		assert.Equal(t, models.RolePassenger, account.UserType)
	})

	t.Run("wrong password", func(t *testing.T) {
		account, err := repo.Authenticate("jane@example.com", "wrong")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, account)
	})

	t.Run("unknown email collapses to the same outcome", func(t *testing.T) {
		account, err := repo.Authenticate("nobody@example.com", "secret1")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, account)
	})
}

func TestUpdatePassword(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))

	_, err := repo.CreateAccount("jane@example.com", "secret1", "passenger")
	require.NoError(t, err)

	updated, err := repo.UpdatePassword("Jane@Example.com", "newsecret")
	require.NoError(t, err)
	assert.True(t, updated)

	_, err = repo.Authenticate("jane@example.com", "newsecret")
	require.NoError(t, err)

	_, err = repo.Authenticate("jane@example.com", "secret1")
	assert.ErrorIs(t, err, ErrNotFound)

	t.Run("unknown email updates nothing", func(t *testing.T) {
		updated, err := repo.UpdatePassword("nobody@example.com", "whatever")
		require.NoError(t, err)
		assert.False(t, updated)
	})
}

func TestCountAndListAccounts(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))

	count, err := repo.CountAccounts()
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = repo.CreateAccount("jane@example.com", "secret1", "passenger")
	require.NoError(t, err)
	_, err = repo.CreateAccount("joe@example.com", "secret2", "bus_operator")
	require.NoError(t, err)

	count, err = repo.CountAccounts()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	accounts, err := repo.ListAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	emails := []string{accounts[0].Email, accounts[1].Email}
	assert.ElementsMatch(t, []string{"jane@example.com", "joe@example.com"}, emails)
}
