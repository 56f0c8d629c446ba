package types

// SymbolPosition determines where a currency symbol is rendered relative
// to the amount.
type SymbolPosition string

const (
	SymbolPositionPrefix SymbolPosition = "prefix"
	SymbolPositionSuffix SymbolPosition = "suffix"
)

// CurrencyConfig holds display metadata for a currency
type CurrencyConfig struct {
	Symbol    string
	Precision int32
	Position  SymbolPosition
}

// DEFAULT_CURRENCY_PRECISION is the number of decimal places used when a
// currency has no explicit config
const DEFAULT_CURRENCY_PRECISION = 2

// CURRENCY_CONFIGS is a map of ISO 4217 currency codes to their display config.
// AED and TRY are conventionally written with the symbol after the amount.
var CURRENCY_CONFIGS = map[string]CurrencyConfig{
	"USD": {Symbol: "$", Precision: 2, Position: SymbolPositionPrefix},
	"EUR": {Symbol: "€", Precision: 2, Position: SymbolPositionPrefix},
	"GBP": {Symbol: "£", Precision: 2, Position: SymbolPositionPrefix},
	"AUD": {Symbol: "A$", Precision: 2, Position: SymbolPositionPrefix},
	"CAD": {Symbol: "C$", Precision: 2, Position: SymbolPositionPrefix},
	"SGD": {Symbol: "S$", Precision: 2, Position: SymbolPositionPrefix},
	"INR": {Symbol: "₹", Precision: 2, Position: SymbolPositionPrefix},
	"AED": {Symbol: "د.إ", Precision: 2, Position: SymbolPositionSuffix},
	"TRY": {Symbol: "₺", Precision: 2, Position: SymbolPositionSuffix},
}

// GetCurrencyConfig returns the config for a given currency code.
// Unknown currencies fall back to a prefix placement with the code's own
// symbol and the default precision.
func GetCurrencyConfig(code string) CurrencyConfig {
	if config, ok := CURRENCY_CONFIGS[code]; ok {
		return config
	}
	return CurrencyConfig{
		Symbol:    code,
		Precision: DEFAULT_CURRENCY_PRECISION,
		Position:  SymbolPositionPrefix,
	}
}

// GetCurrencySymbol returns the symbol for a given currency code
// if the code is not found, it returns the code itself
func GetCurrencySymbol(code string) string {
	return GetCurrencyConfig(code).Symbol
}

// GetCurrencyPrecision returns the decimal precision for a given currency code
func GetCurrencyPrecision(code string) int32 {
	return GetCurrencyConfig(code).Precision
}
