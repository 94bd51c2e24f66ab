package steam

// Currency is one of the wallet currencies the market can quote prices in.
type Currency struct {
	ID   int
	Code string
	Name string
}

// Currencies lists the market currencies selectable in settings, keyed by
// the numeric id the order histogram endpoint expects.
var Currencies = []Currency{
	{1, "USD", "United States Dollar"},
	{2, "GBP", "British Pound"},
	{3, "EUR", "Euro"},
	{4, "CHF", "Swiss Franc"},
	{5, "RUB", "Russian Ruble"},
	{6, "PLN", "Polish Zloty"},
	{7, "BRL", "Brazilian Real"},
	{8, "JPY", "Japanese Yen"},
	{9, "NOK", "Norwegian Krone"},
	{10, "IDR", "Indonesian Rupiah"},
	{11, "MYR", "Malaysian Ringgit"},
	{12, "PHP", "Philippine Peso"},
	{13, "SGD", "Singapore Dollar"},
	{14, "THB", "Thai Baht"},
	{15, "VND", "Vietnamese Dong"},
	{16, "KRW", "South Korean Won"},
	{17, "TRY", "Turkish Lira"},
	{18, "UAH", "Ukrainian Hryvnia"},
	{19, "MXN", "Mexican Peso"},
	{20, "CAD", "Canadian Dollar"},
	{21, "AUD", "Australian Dollar"},
	{22, "NZD", "New Zealand Dollar"},
	{23, "CNY", "Chinese Yuan"},
	{24, "INR", "Indian Rupee"},
	{25, "CLP", "Chilean Peso"},
	{26, "PEN", "Peruvian Sol"},
	{27, "COP", "Colombian Peso"},
	{28, "ZAR", "South African Rand"},
	{29, "HKD", "Hong Kong Dollar"},
	{30, "TWD", "New Taiwan Dollar"},
	{31, "SAR", "Saudi Riyal"},
	{32, "AED", "UAE Dirham"},
}

// CurrencyByID returns the currency with the given id, if known.
func CurrencyByID(id int) (Currency, bool) {
	for _, c := range Currencies {
		if c.ID == id {
			return c, true
		}
	}
	return Currency{}, false
}

// CurrencyByCode returns the currency with the given ISO code, if known.
func CurrencyByCode(code string) (Currency, bool) {
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// ValidCurrencyID reports whether id names a known market currency.
func ValidCurrencyID(id int) bool {
	_, ok := CurrencyByID(id)
	return ok
}
