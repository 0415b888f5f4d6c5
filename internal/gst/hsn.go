package gst

import (
	"fmt"
	"regexp"
	"strings"

	"gstpro/internal/domain"
)

var (
	// HSN codes for goods are 4, 6, or 8 digits.
	hsnPattern = regexp.MustCompile(`^\d{4}(\d{2}(\d{2})?)?$`)
	// SAC codes for services are exactly 6 digits.
	sacPattern = regexp.MustCompile(`^\d{6}$`)

	pincodePattern = regexp.MustCompile(`^\d{4,10}$`)
)

// ValidateHSNSAC checks an HSN (goods) or SAC (services) code, selected by
// isService.
func ValidateHSNSAC(code string, isService bool) error {
	if code == "" {
		return fmt.Errorf("%w: code is required", domain.ErrInvalidHSNSAC)
	}
	code = strings.TrimSpace(code)

	if isService {
		if !sacPattern.MatchString(code) {
			return fmt.Errorf("%w: SAC code must be exactly 6 digits", domain.ErrInvalidHSNSAC)
		}
		return nil
	}
	if !hsnPattern.MatchString(code) {
		return fmt.Errorf("%w: HSN code must be 4, 6, or 8 digits", domain.ErrInvalidHSNSAC)
	}
	return nil
}

// ValidatePincode checks a postal code. Indian pincodes must be 4-10 digits;
// other countries are free-form.
func ValidatePincode(pincode, country string) error {
	if country != "India" && country != "" {
		return nil
	}
	if !pincodePattern.MatchString(strings.TrimSpace(pincode)) {
		return fmt.Errorf("%w: must be 4-10 digits", domain.ErrInvalidPincode)
	}
	return nil
}
