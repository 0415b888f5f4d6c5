// Package gst provides pure validation utilities for Indian GST identifiers:
// GSTIN, HSN/SAC codes, pincodes, and the statutory state-code tables.
package gst

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gstpro/internal/domain"
)

// GSTIN structure: 2-digit state code, 10-char PAN, entity number, the
// literal 'Z', and a check character.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][0-9A-Z]Z[0-9A-Z]$`)

// URPSentinel is the literal GSTIN value for unregistered (foreign) persons.
const URPSentinel = "URP"

// ValidateGSTIN checks a GSTIN for structural validity. The sentinel "URP"
// is accepted only for customers outside India. Surrounding whitespace is
// trimmed; the check is otherwise case-sensitive, so lowercase letters are
// rejected.
func ValidateGSTIN(gstin, country string) error {
	if gstin == "" {
		return fmt.Errorf("%w: GSTIN is required", domain.ErrInvalidGSTIN)
	}
	gstin = strings.TrimSpace(gstin)

	if gstin == URPSentinel {
		if country == "India" {
			return fmt.Errorf("%w: URP is only valid for foreign customers", domain.ErrInvalidGSTIN)
		}
		return nil
	}
	if len(gstin) != 15 {
		return fmt.Errorf("%w: must be exactly 15 characters", domain.ErrInvalidGSTIN)
	}
	if !gstinPattern.MatchString(gstin) {
		return fmt.Errorf("%w: format mismatch", domain.ErrInvalidGSTIN)
	}
	code, err := strconv.Atoi(gstin[:2])
	if err != nil || code < 1 || code > 38 {
		return fmt.Errorf("%w: state code %s out of range", domain.ErrInvalidGSTIN, gstin[:2])
	}
	return nil
}

// PANFromGSTIN slices the embedded 10-character PAN out of a GSTIN. Returns
// empty for values too short to contain one.
func PANFromGSTIN(gstin string) string {
	if len(gstin) < 12 {
		return ""
	}
	return gstin[2:12]
}

// StateFromGSTIN resolves the state name encoded in the GSTIN's two-digit
// prefix. The second return is false when the prefix is unknown.
func StateFromGSTIN(gstin string) (string, bool) {
	if len(gstin) < 2 {
		return "", false
	}
	name, ok := stateNameByCode[gstin[:2]]
	return name, ok
}
