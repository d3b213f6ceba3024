package customer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		c, err := New("Maria Silva", "123.456.789-00", "maria@example.com")
		require.NoError(t, err)

		_, err = uuid.Parse(c.ID)
		assert.NoError(t, err, "generated id should be a valid UUID")
		assert.Equal(t, "Maria Silva", c.Name)
		assert.Equal(t, "123.456.789-00", c.DocumentID)
		assert.Equal(t, "maria@example.com", c.Email)
	})

	t.Run("EmailOptional", func(t *testing.T) {
		c, err := New("Maria Silva", "123.456.789-00", "")
		require.NoError(t, err)
		assert.Empty(t, c.Email)
	})

	t.Run("EmptyName", func(t *testing.T) {
		_, err := New("", "123.456.789-00", "")
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("EmptyDocumentID", func(t *testing.T) {
		_, err := New("Maria Silva", "", "")
		assert.ErrorIs(t, err, ErrEmptyDocumentID)
	})
}
