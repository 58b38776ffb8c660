package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user with valid inputs", func(t *testing.T) {
		user, err := NewUser("jane@example.com", "Jane Doe")
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, "jane@example.com", user.Email)
		assert.Equal(t, "Jane Doe", user.Name)
		assert.NotEmpty(t, user.ID)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("allows empty name", func(t *testing.T) {
		user, err := NewUser("jane@example.com", "")
		require.NoError(t, err)
		assert.Empty(t, user.Name)
	})

	t.Run("fails with empty email", func(t *testing.T) {
		_, err := NewUser("", "Jane Doe")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Email cannot be empty")
	})

	t.Run("fails with invalid email format", func(t *testing.T) {
		_, err := NewUser("not-an-email", "Jane Doe")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email format")
	})
}

func TestUserRename(t *testing.T) {
	user, err := NewUser("jane@example.com", "Jane Doe")
	require.NoError(t, err)

	user.Rename("Jane Smith")
	assert.Equal(t, "Jane Smith", user.Name)
}
