package billing

import (
	"regexp"
	"strings"
)

// TaxBreakdown is the per-line GST split. Exactly one of (CGST+SGST) or IGST
// is non-zero when tax applies; all components are zero when Applicable is
// false (unregistered supplier) or the rate is zero.
type TaxBreakdown struct {
	CGST       float64 `json:"cgst"`
	SGST       float64 `json:"sgst"`
	IGST       float64 `json:"igst"`
	Interstate bool    `json:"is_interstate"`
	Applicable bool    `json:"is_gst_applicable"`
}

// gstinKeys is the priority-ordered chain of field names under which company
// records have historically carried their GSTIN. "tax.gstin" is a nested path.
var gstinKeys = []string{"gstin", "gstIn", "gstNumber", "gst_no", "gst", "gstinNumber", "tax.gstin"}

// ResolveGSTIN returns the supplier GSTIN from a company record, trying each
// known legacy field name in priority order. Returns "" when none resolves,
// which means the supplier is unregistered and no GST may be charged.
func ResolveGSTIN(company Record) string {
	if company == nil {
		return ""
	}
	return str(pick(company, gstinKeys...))
}

var stateSuffix = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// NormalizeState canonicalizes a state name for comparison: lower-cased,
// trimmed, with any trailing parenthetical code removed, so that
// "Maharashtra (27)" compares equal to "maharashtra".
func NormalizeState(s string) string {
	s = stateSuffix.ReplaceAllString(s, "")
	return strings.ToLower(strings.TrimSpace(s))
}

// recipientState picks the state the supply is delivered to: the shipping
// address state when a shipping address was supplied, else the billing
// party's state.
func recipientState(party, shipping Record) string {
	if shipping != nil {
		if s := str(pick(shipping, "state", "addressState")); s != "" {
			return s
		}
	}
	if party == nil {
		return ""
	}
	return str(pick(party, "state", "addressState"))
}

func supplierState(company Record) string {
	if company == nil {
		return ""
	}
	return str(pick(company, "addressState", "state"))
}

// isInterstate reports whether supplier and recipient states differ after
// normalization. Missing states normalize to "" and compare like any other
// value, so two sides with no state recorded count as a match.
func isInterstate(company, party, shipping Record) bool {
	from := NormalizeState(supplierState(company))
	to := NormalizeState(recipientState(party, shipping))
	return from != to
}

// CalculateGST computes the CGST/SGST/IGST split for a single taxable amount.
// A company without a resolvable GSTIN yields an all-zero, not-applicable
// breakdown. Interstate supplies put the full tax into IGST; intrastate
// supplies split it evenly between CGST and SGST. A zero rate naturally
// produces a zero breakdown and is not treated as "not applicable".
func CalculateGST(amount, rate float64, company, party, shipping Record) TaxBreakdown {
	if ResolveGSTIN(company) == "" {
		return TaxBreakdown{}
	}

	bd := TaxBreakdown{Applicable: true}
	if isInterstate(company, party, shipping) {
		bd.Interstate = true
		bd.IGST = amount * rate / 100
		return bd
	}
	half := amount * (rate / 2) / 100
	bd.CGST = half
	bd.SGST = half
	return bd
}
