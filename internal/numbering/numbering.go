// Package numbering derives invoice numbers and lifecycle statuses from the
// business profile counter and the draft's e-invoice fields.
package numbering

import (
	"fmt"
	"strings"
	"time"

	"gstpro/internal/domain"
)

// fallbackPrefix is used when the business name is too short to yield a
// two-letter prefix.
const fallbackPrefix = "IN"

// Number returns the invoice number for a draft. An explicit number (import
// path) is used verbatim; otherwise the format is
// {2-letter business prefix}-INV-{YY}-{counter zero-padded to 5}.
func Number(profile *domain.BusinessProfile, explicit string, now time.Time) string {
	if explicit != "" {
		return explicit
	}
	prefix := fallbackPrefix
	if name := strings.TrimSpace(profile.Name); len(name) >= 2 {
		prefix = strings.ToUpper(name[:2])
	}
	yearSuffix := now.Format("06")
	return fmt.Sprintf("%s-INV-%s-%05d", prefix, yearSuffix, profile.CurrentInvoiceNumber)
}

// Status resolves the lifecycle status for a draft. IRN presence is the
// authoritative signal of e-invoice approval and overrides any requested
// status; otherwise the caller's status is honored, defaulting to Draft.
func Status(requested domain.InvoiceStatus, irn string) domain.InvoiceStatus {
	if irn != "" {
		return domain.InvoiceStatusApproved
	}
	if requested == "" {
		return domain.InvoiceStatusDraft
	}
	return requested
}
