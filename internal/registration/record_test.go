package registration_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/registro/internal/registration"
)

func TestParseBirthDate(t *testing.T) {
	t.Parallel()

	want := time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC)
	for _, input := range []string{
		"1990-05-17",
		" 1990-05-17 ",
		"1990-05-17T00:00:00Z",
		"1990-05-17T22:30:00-03:00",
		"17/05/1990",
	} {
		got, err := registration.ParseBirthDate(input)
		require.NoError(t, err, input)
		assert.True(t, want.Equal(got), "%s parsed as %s", input, got)
	}

	for _, input := range []string{"", "ontem", "1990-13-01", "31/02/1990"} {
		_, err := registration.ParseBirthDate(input)
		require.Error(t, err, input)
		assert.True(t, registration.IsParseError(err))

		var pe *registration.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, registration.FieldBirthDate, pe.Field)
	}
}

func TestBuildRecord(t *testing.T) {
	t.Parallel()

	t.Run("copies values verbatim", func(t *testing.T) {
		t.Parallel()

		record, err := registration.BuildRecord(validValues())
		require.NoError(t, err)

		assert.Equal(t, registration.UserRecord{
			Name:       "Maria Silva",
			NationalID: "529.982.247-25",
			BirthDate:  time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC),
			Gender:     "feminino",
			Phone:      "(11) 91234-5678",
			Email:      "maria@example.com",
			Password:   "segredo1",
		}, record)
		assert.Equal(t, "1990-05-17", record.BirthDateString())
	})

	t.Run("bad birth date", func(t *testing.T) {
		t.Parallel()

		values := validValues()
		values[registration.FieldBirthDate] = "amanhã"
		_, err := registration.BuildRecord(values)
		assert.True(t, registration.IsParseError(err))
	})

	t.Run("zero birth date formats empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, registration.UserRecord{}.BirthDateString())
	})
}
