package entity

// Monedas soportadas por la aplicación (códigos ISO 4217).
var SupportedCurrencies = []string{
	"MZN", "ZAR", "USD", "EUR", "GBP", "BRL", "JPY", "CNY", "INR", "AUD",
	"CAD", "CHF", "SEK", "NOK", "DKK", "MXN", "ARS", "KRW", "RUB",
}

// DefaultCurrency moneda por defecto para productos nuevos.
const DefaultCurrency = "MZN"

// IsSupportedCurrency indica si el código pertenece al conjunto soportado.
func IsSupportedCurrency(code string) bool {
	for _, c := range SupportedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}
