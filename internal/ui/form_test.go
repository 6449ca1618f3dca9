package ui_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm_PromptsForMissingFields(t *testing.T) {
	noColor(t)
	out := &bytes.Buffer{}
	f := ui.NewForm(strings.NewReader("Pull-ups\n12\n"), out, "", "")

	require.NoError(t, f.Fill())
	assert.Equal(t, "Pull-ups", f.Name)
	assert.Equal(t, "12", f.Max)
	assert.Equal(t, "Exercise name: Maximum: ", out.String())
}

func TestForm_UsesGivenValues(t *testing.T) {
	noColor(t)
	out := &bytes.Buffer{}
	f := ui.NewForm(strings.NewReader(""), out, "Dips", "20")

	require.NoError(t, f.Fill())
	assert.Empty(t, out.String())
}

func TestForm_ReasksRejectedMax(t *testing.T) {
	noColor(t)
	out := &bytes.Buffer{}
	f := ui.NewForm(strings.NewReader("abc\n0\n15\n"), out, "Dips", "")

	require.NoError(t, f.Fill())
	assert.Equal(t, "15", f.Max)
	assert.Equal(t,
		"Maximum: please enter a valid number\nMaximum: the maximum must be greater than 0\nMaximum: ",
		out.String())
}

func TestForm_EmptyNameSkipsMaxPrompt(t *testing.T) {
	noColor(t)
	out := &bytes.Buffer{}
	f := ui.NewForm(strings.NewReader("   \n12\n"), out, "", "")

	err := f.Fill()
	var inErr *models.InputError
	require.True(t, errors.As(err, &inErr))
	assert.Equal(t, models.EmptyName, inErr.Kind)
	assert.Equal(t, "Exercise name: ", out.String())
	assert.Empty(t, f.Max)
}

func TestForm_Aborts(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		givenName string
		givenMax  string
		kind      models.InputErrorKind
	}{
		{"empty name", "\n", "", "", models.EmptyName},
		{"end of input before name", "", "", "", models.EmptyName},
		{"end of input after rejected max", "-2\n", "Dips", "", models.NonPositiveMax},
		{"rejected flag value is not re-asked", "15\n", "Dips", "ten", models.NonNumericMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			noColor(t)
			f := ui.NewForm(strings.NewReader(tt.input), &bytes.Buffer{}, tt.givenName, tt.givenMax)

			err := f.Fill()
			var inErr *models.InputError
			require.True(t, errors.As(err, &inErr))
			assert.Equal(t, tt.kind, inErr.Kind)
		})
	}
}
