package userstore

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/registro/internal/registration"
)

func TestNewEntry(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	rec := registration.UserRecord{
		Name:       "Maria  Silva",
		NationalID: "529.982.247-25",
		Email:      " Maria@Example.com ",
		Password:   "segredo1",
	}

	t.Run("hashes the password", func(t *testing.T) {
		t.Parallel()

		e, err := newEntry("id-1", rec, bcrypt.MinCost, now)
		require.NoError(t, err)
		assert.Equal(t, "52998224725", e.NationalID)
		assert.Equal(t, "Maria Silva", e.Name)
		assert.NoError(t, bcrypt.CompareHashAndPassword(e.PasswordHash, []byte("segredo1")))
		assert.Error(t, bcrypt.CompareHashAndPassword(e.PasswordHash, []byte("outra")))
	})

	t.Run("72 bytes is the longest accepted password", func(t *testing.T) {
		t.Parallel()

		r := rec
		r.Password = strings.Repeat("a", 72)
		_, err := newEntry("id-2", r, bcrypt.MinCost, now)
		require.NoError(t, err)

		r.Password = strings.Repeat("a", 73)
		_, err = newEntry("id-3", r, bcrypt.MinCost, now)
		assert.ErrorIs(t, err, registration.ErrSaveRejected)
		assert.ErrorIs(t, err, ErrPasswordTooLong)
		assert.NotErrorIs(t, err, ErrHashPassword)
	})

	t.Run("missing national id", func(t *testing.T) {
		t.Parallel()

		r := rec
		r.NationalID = "  "
		_, err := newEntry("id-4", r, bcrypt.MinCost, now)
		assert.ErrorIs(t, err, ErrInvalidRecord)
	})
}
