package userstore

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/registro/internal/registration"
	"github.com/dmitrymomot/registro/pkg/sanitizer"
)

// entry is the stored form of a registration.UserRecord.
type entry struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	NationalID   string    `json:"national_id"`
	BirthDate    string    `json:"birth_date"`
	Gender       string    `json:"gender"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// newEntry normalizes the identifying fields and hashes the password.
// A password bcrypt cannot hash is a rejection of the record, not a store
// failure, so it is reported as registration.ErrSaveRejected.
func newEntry(id string, r registration.UserRecord, cost int, now time.Time) (entry, error) {
	nationalID := normalizeKey(r.NationalID)
	if nationalID == "" {
		return entry{}, ErrInvalidRecord
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return entry{}, errors.Join(registration.ErrSaveRejected, ErrPasswordTooLong)
	}
	if err != nil {
		return entry{}, fmt.Errorf("%w: %w", ErrHashPassword, err)
	}

	return entry{
		ID:           id,
		Name:         sanitizer.NormalizeWhitespace(r.Name),
		NationalID:   nationalID,
		BirthDate:    r.BirthDateString(),
		Gender:       r.Gender,
		Phone:        sanitizer.NormalizePhone(r.Phone),
		Email:        sanitizer.NormalizeEmail(r.Email),
		PasswordHash: hash,
		CreatedAt:    now.UTC(),
	}, nil
}

func (e entry) emailKey() string {
	return sanitizer.FoldEmail(e.Email)
}

// record converts back to the domain type. The password is never returned.
func (e entry) record() (registration.UserRecord, error) {
	var birthDate time.Time
	if e.BirthDate != "" {
		t, err := time.Parse(time.DateOnly, e.BirthDate)
		if err != nil {
			return registration.UserRecord{}, fmt.Errorf("%w: %w", ErrDecodeRecord, err)
		}
		birthDate = t
	}

	return registration.UserRecord{
		Name:       e.Name,
		NationalID: e.NationalID,
		BirthDate:  birthDate,
		Gender:     e.Gender,
		Phone:      e.Phone,
		Email:      e.Email,
	}, nil
}

func normalizeKey(nationalID string) string {
	return sanitizer.NormalizeCPF(nationalID)
}
