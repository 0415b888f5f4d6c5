package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gstpro/internal/domain"
	"gstpro/internal/gst"
)

func TestValidateHSNSAC_Goods(t *testing.T) {
	assert.NoError(t, gst.ValidateHSNSAC("8471", false))
	assert.NoError(t, gst.ValidateHSNSAC("847130", false))
	assert.NoError(t, gst.ValidateHSNSAC("84713010", false))

	assert.ErrorIs(t, gst.ValidateHSNSAC("84713", false), domain.ErrInvalidHSNSAC)
	assert.ErrorIs(t, gst.ValidateHSNSAC("847", false), domain.ErrInvalidHSNSAC)
	assert.ErrorIs(t, gst.ValidateHSNSAC("84713A", false), domain.ErrInvalidHSNSAC)
	assert.ErrorIs(t, gst.ValidateHSNSAC("", false), domain.ErrInvalidHSNSAC)
}

func TestValidateHSNSAC_Services(t *testing.T) {
	assert.NoError(t, gst.ValidateHSNSAC("998313", true))

	assert.ErrorIs(t, gst.ValidateHSNSAC("9983", true), domain.ErrInvalidHSNSAC)
	assert.ErrorIs(t, gst.ValidateHSNSAC("99831301", true), domain.ErrInvalidHSNSAC)
}

func TestValidatePincode(t *testing.T) {
	assert.NoError(t, gst.ValidatePincode("560001", "India"))
	assert.NoError(t, gst.ValidatePincode("5600", "India"))

	assert.ErrorIs(t, gst.ValidatePincode("560", "India"), domain.ErrInvalidPincode)
	assert.ErrorIs(t, gst.ValidatePincode("56000A", "India"), domain.ErrInvalidPincode)

	// Foreign postal codes are free-form.
	assert.NoError(t, gst.ValidatePincode("SW1A 1AA", "United Kingdom"))
}

func TestStateCode(t *testing.T) {
	code, ok := gst.StateCode("Karnataka")
	assert.True(t, ok)
	assert.Equal(t, "29", code)

	code, ok = gst.StateCode("  maharashtra ")
	assert.True(t, ok)
	assert.Equal(t, "27", code)

	// Substring fallback for decorated names.
	code, ok = gst.StateCode("State of Goa")
	assert.True(t, ok)
	assert.Equal(t, "30", code)

	// Post-split Andhra Pradesh maps to 37.
	code, ok = gst.StateCode("Andhra Pradesh")
	assert.True(t, ok)
	assert.Equal(t, "37", code)

	// An input mentioning two states always resolves to the longest name.
	code, ok = gst.StateCode("West Bengal and Bihar border")
	assert.True(t, ok)
	assert.Equal(t, "19", code)

	code, ok = gst.StateCode("Delhi adjoining Haryana")
	assert.True(t, ok)
	assert.Equal(t, "06", code)

	_, ok = gst.StateCode("Atlantis")
	assert.False(t, ok)
}

func TestStateName(t *testing.T) {
	name, ok := gst.StateName("07")
	assert.True(t, ok)
	assert.Equal(t, "Delhi", name)

	_, ok = gst.StateName("00")
	assert.False(t, ok)
}
