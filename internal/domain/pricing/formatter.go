package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vidinfra/pricing-engine/internal/types"
)

// FormatPrice renders an amount with its currency symbol. Symbol placement
// follows the currency's convention: suffixed with a space for AED and TRY,
// prefixed for everything else. Amounts are always fixed two decimals with
// no thousands separators.
func FormatPrice(amount decimal.Decimal, currency string, currencySymbol string) string {
	fixed := amount.StringFixed(2)
	if types.GetCurrencyConfig(currency).Position == types.SymbolPositionSuffix {
		return fmt.Sprintf("%s %s", fixed, currencySymbol)
	}
	return fmt.Sprintf("%s%s", currencySymbol, fixed)
}
