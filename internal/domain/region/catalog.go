package region

import (
	"strings"

	"github.com/shopspring/decimal"

	ierr "github.com/vidinfra/pricing-engine/internal/errors"
)

// FallbackRegionCode is the designated rest of world region that unknown
// codes resolve to.
const FallbackRegionCode = "GLOBAL"

// Catalog is an immutable, case insensitive lookup table of regions.
// It is populated once and never modified afterwards, so concurrent reads
// are safe without locking.
type Catalog struct {
	regions map[string]Region
	ordered []Region
}

// NewCatalog builds a catalog from the given regions. Every region must be
// valid and the fallback region must be present.
func NewCatalog(regions []Region) (*Catalog, error) {
	c := &Catalog{
		regions: make(map[string]Region, len(regions)),
		ordered: make([]Region, 0, len(regions)),
	}

	for _, r := range regions {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		code := strings.ToUpper(r.Code)
		if _, ok := c.regions[code]; ok {
			return nil, ierr.NewError("duplicate region code").
				WithHintf("Region %s is defined more than once", code).
				Mark(ierr.ErrValidation)
		}
		c.regions[code] = r
		c.ordered = append(c.ordered, r)
	}

	if _, ok := c.regions[FallbackRegionCode]; !ok {
		return nil, ierr.NewError("missing fallback region").
			WithHintf("Catalog must contain the %s fallback region", FallbackRegionCode).
			Mark(ierr.ErrValidation)
	}

	return c, nil
}

// GetRegion looks up a region by code, case insensitively. Unknown codes
// resolve to the GLOBAL fallback region rather than an error.
func (c *Catalog) GetRegion(code string) Region {
	if r, ok := c.regions[strings.ToUpper(code)]; ok {
		return r
	}
	return c.regions[FallbackRegionCode]
}

// GetAllRegions returns the catalog's regions in their registration order.
func (c *Catalog) GetAllRegions() []Region {
	out := make([]Region, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// DefaultCatalog returns the built in region table. US is the baseline
// market; the GLOBAL row is the rest of world fallback.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultRegions())
	if err != nil {
		// The built in table is static; a failure here is a programming error.
		panic(err)
	}
	return c
}

func defaultRegions() []Region {
	return []Region{
		{Code: "US", Name: "United States", Currency: "USD", CurrencySymbol: "$", PriceMultiplier: decimal.NewFromInt(1)},
		{Code: "IN", Name: "India", Currency: "INR", CurrencySymbol: "₹", PriceMultiplier: decimal.NewFromFloat(0.35)},
		{Code: "GB", Name: "United Kingdom", Currency: "GBP", CurrencySymbol: "£", PriceMultiplier: decimal.NewFromFloat(0.95)},
		{Code: "EU", Name: "European Union", Currency: "EUR", CurrencySymbol: "€", PriceMultiplier: decimal.NewFromFloat(0.9)},
		{Code: "AU", Name: "Australia", Currency: "AUD", CurrencySymbol: "A$", PriceMultiplier: decimal.NewFromFloat(1.05)},
		{Code: "CA", Name: "Canada", Currency: "CAD", CurrencySymbol: "C$", PriceMultiplier: decimal.NewFromFloat(0.95)},
		{Code: "SG", Name: "Singapore", Currency: "SGD", CurrencySymbol: "S$", PriceMultiplier: decimal.NewFromFloat(0.9)},
		{Code: "AE", Name: "United Arab Emirates", Currency: "AED", CurrencySymbol: "د.إ", PriceMultiplier: decimal.NewFromFloat(0.8)},
		{Code: "TR", Name: "Turkey", Currency: "TRY", CurrencySymbol: "₺", PriceMultiplier: decimal.NewFromFloat(0.3)},
		{Code: "GLOBAL", Name: "Rest of World", Currency: "USD", CurrencySymbol: "$", PriceMultiplier: decimal.NewFromFloat(0.7)},
	}
}
