package registration

import (
	"strings"
	"time"
)

// birthDateLayouts are tried in order: ISO date pickers first, then full
// timestamps, then the dd/mm/yyyy form typed by hand.
var birthDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"02/01/2006",
}

// UserRecord is the domain record handed to the user store.
// Records read back from a store never carry the password.
type UserRecord struct {
	Name       string
	NationalID string
	BirthDate  time.Time
	Gender     string
	Phone      string
	Email      string
	Password   string
}

// BirthDateString formats BirthDate as yyyy-mm-dd.
func (r UserRecord) BirthDateString() string {
	if r.BirthDate.IsZero() {
		return ""
	}
	return r.BirthDate.Format(time.DateOnly)
}

// BuildRecord assembles a UserRecord from validated form values.
// Values are copied verbatim; only the birth date is parsed.
func BuildRecord(values map[string]string) (UserRecord, error) {
	birthDate, err := ParseBirthDate(values[FieldBirthDate])
	if err != nil {
		return UserRecord{}, err
	}

	return UserRecord{
		Name:       values[FieldName],
		NationalID: values[FieldNationalID],
		BirthDate:  birthDate,
		Gender:     values[FieldGender],
		Phone:      values[FieldPhone],
		Email:      values[FieldEmail],
		Password:   values[FieldPassword],
	}, nil
}

// ParseBirthDate parses a calendar date, dropping any time of day.
// The result is midnight UTC of the day written in the input.
func ParseBirthDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range birthDateLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, &ParseError{Field: FieldBirthDate, Value: value}
}
