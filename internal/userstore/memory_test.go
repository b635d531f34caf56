package userstore_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/registro/internal/registration"
	"github.com/dmitrymomot/registro/internal/userstore"
)

func sampleRecord() registration.UserRecord {
	return registration.UserRecord{
		Name:       "Maria  Silva",
		NationalID: "529.982.247-25",
		BirthDate:  time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC),
		Gender:     "feminino",
		Phone:      "(11) 91234-5678",
		Email:      " Maria@Example.com ",
		Password:   "segredo1",
	}
}

func TestMemory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("save and find", func(t *testing.T) {
		t.Parallel()

		store := userstore.NewMemory(userstore.WithBcryptCost(bcrypt.MinCost))
		ok, err := store.Save(ctx, sampleRecord())
		require.NoError(t, err)
		require.True(t, ok)

		users, err := store.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)

		got := users[0]
		assert.Equal(t, "Maria Silva", got.Name)
		assert.Equal(t, "52998224725", got.NationalID)
		assert.Equal(t, "11912345678", got.Phone)
		assert.Equal(t, "maria@example.com", got.Email)
		assert.Equal(t, "1990-05-17", got.BirthDateString())
		assert.Empty(t, got.Password)
	})

	t.Run("duplicate national id is declined", func(t *testing.T) {
		t.Parallel()

		store := userstore.NewMemory(userstore.WithBcryptCost(bcrypt.MinCost))
		_, err := store.Save(ctx, sampleRecord())
		require.NoError(t, err)

		dup := sampleRecord()
		dup.NationalID = "52998224725"
		dup.Email = "other@example.com"
		ok, err := store.Save(ctx, dup)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("duplicate email is declined regardless of case", func(t *testing.T) {
		t.Parallel()

		store := userstore.NewMemory(userstore.WithBcryptCost(bcrypt.MinCost))
		_, err := store.Save(ctx, sampleRecord())
		require.NoError(t, err)

		dup := sampleRecord()
		dup.NationalID = "111.444.777-35"
		dup.Email = "MARIA@EXAMPLE.COM"
		ok, err := store.Save(ctx, dup)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing national id is an error", func(t *testing.T) {
		t.Parallel()

		store := userstore.NewMemory(userstore.WithBcryptCost(bcrypt.MinCost))
		rec := sampleRecord()
		rec.NationalID = "abc"
		_, err := store.Save(ctx, rec)
		assert.ErrorIs(t, err, userstore.ErrInvalidRecord)
	})

	t.Run("password too long for bcrypt is a rejection", func(t *testing.T) {
		t.Parallel()

		store := userstore.NewMemory(userstore.WithBcryptCost(bcrypt.MinCost))
		rec := sampleRecord()
		rec.Password = strings.Repeat("a", 80)

		ok, err := store.Save(ctx, rec)
		assert.False(t, ok)
		assert.ErrorIs(t, err, registration.ErrSaveRejected)
		assert.ErrorIs(t, err, userstore.ErrPasswordTooLong)
		assert.NotErrorIs(t, err, registration.ErrStoreUnavailable)

		users, err := store.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		store := userstore.NewMemory()
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.Save(cctx, sampleRecord())
		assert.ErrorIs(t, err, context.Canceled)
		_, err = store.FindAll(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("concurrent saves of one id keep exactly one", func(t *testing.T) {
		t.Parallel()

		store := userstore.NewMemory(userstore.WithBcryptCost(bcrypt.MinCost))
		var (
			wg    sync.WaitGroup
			mu    sync.Mutex
			saved int
		)
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := store.Save(ctx, sampleRecord())
				assert.NoError(t, err)
				if ok {
					mu.Lock()
					saved++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, saved)
		users, err := store.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("ping", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, userstore.NewMemory().Ping(ctx))
	})
}
