package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is a reusable service template offered for quick selection when
// recording a service line. Entries are never referenced by recorded lines;
// a one-off service name not present in the catalog is always allowed.
type Entry struct {
	EntryID       int64           `json:"entryId"`
	ServiceName   string          `json:"serviceName"`
	DefaultCharge decimal.Decimal `json:"defaultCharge"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// DefaultServiceNames seeds a fresh catalog with the consultancy's standard
// offerings. Seeding is idempotent; existing names are left untouched.
var DefaultServiceNames = []string{
	"Xerox",
	"ITR",
	"Search Report",
	"Valuation Report",
	"Plan Design & Estimate",
	"Rubber Stamp",
	"Agreement",
	"Typing",
	"Data Entry",
	"Stamp Duty",
	"Aadhaar-PAN Colour Xerox",
	"7/12",
	"Guarantor for Mortgage",
	"Affidavit",
	"Vendor Fee",
	"Dast Xerox",
	"Consultancy Charge (2%)",
}
