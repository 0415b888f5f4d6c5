package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstpro/internal/domain"
	"gstpro/internal/gst"
)

func TestValidateGSTIN(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, gst.ValidateGSTIN("29AAAAA0000A1Z5", "India"))
	})

	t.Run("valid_with_surrounding_whitespace", func(t *testing.T) {
		assert.NoError(t, gst.ValidateGSTIN("  29AAAAA0000A1Z5 ", "India"))
	})

	t.Run("lowercase_rejected", func(t *testing.T) {
		err := gst.ValidateGSTIN("29aaaaa0000a1z5", "India")
		assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)
	})

	t.Run("mixed_case_rejected", func(t *testing.T) {
		err := gst.ValidateGSTIN("29AaAAA0000A1Z5", "India")
		assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)
	})

	t.Run("empty", func(t *testing.T) {
		err := gst.ValidateGSTIN("", "India")
		assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)
	})

	t.Run("too_short", func(t *testing.T) {
		err := gst.ValidateGSTIN("29AAAAA0000A1Z", "India")
		assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)
	})

	t.Run("missing_z_separator", func(t *testing.T) {
		err := gst.ValidateGSTIN("29AAAAA0000A1X5", "India")
		assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)
	})

	t.Run("state_code_zero", func(t *testing.T) {
		err := gst.ValidateGSTIN("00AAAAA0000A1Z5", "India")
		assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)
	})

	t.Run("state_code_out_of_range", func(t *testing.T) {
		err := gst.ValidateGSTIN("39AAAAA0000A1Z5", "India")
		assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)
	})

	t.Run("urp_foreign_customer", func(t *testing.T) {
		assert.NoError(t, gst.ValidateGSTIN("URP", "USA"))
	})

	t.Run("urp_rejected_for_india", func(t *testing.T) {
		err := gst.ValidateGSTIN("URP", "India")
		assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)
	})
}

func TestPANFromGSTIN(t *testing.T) {
	assert.Equal(t, "AAAAA0000A", gst.PANFromGSTIN("29AAAAA0000A1Z5"))
	assert.Equal(t, "", gst.PANFromGSTIN("29AAA"))
}

func TestStateFromGSTIN(t *testing.T) {
	name, ok := gst.StateFromGSTIN("29AAAAA0000A1Z5")
	require.True(t, ok)
	assert.Equal(t, "Karnataka", name)

	_, ok = gst.StateFromGSTIN("X")
	assert.False(t, ok)
}
