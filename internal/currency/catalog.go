// Package currency is the read-only display catalog mapping ISO currency
// codes to symbols. It has no state and no behavior beyond table lookup.
package currency

// Currency is one entry of the display catalog.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// DefaultSymbol is used whenever a code is not in the catalog. An unknown
// code never blocks saving or rendering.
const DefaultSymbol = "$"

var catalog = []Currency{
	{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
	{Code: "AFN", Symbol: "؋", Name: "Afghan Afghani"},
	{Code: "ALL", Symbol: "L", Name: "Albanian Lek"},
	{Code: "AMD", Symbol: "֏", Name: "Armenian Dram"},
	{Code: "ANG", Symbol: "ƒ", Name: "Netherlands Antillean Guilder"},
	{Code: "AOA", Symbol: "Kz", Name: "Angolan Kwanza"},
	{Code: "ARS", Symbol: "$", Name: "Argentine Peso"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "AWG", Symbol: "ƒ", Name: "Aruban Florin"},
	{Code: "AZN", Symbol: "₼", Name: "Azerbaijani Manat"},
	{Code: "BAM", Symbol: "KM", Name: "Bosnia-Herzegovina Convertible Mark"},
	{Code: "BBD", Symbol: "$", Name: "Barbadian Dollar"},
	{Code: "BDT", Symbol: "৳", Name: "Bangladeshi Taka"},
	{Code: "BGN", Symbol: "лв", Name: "Bulgarian Lev"},
	{Code: "BHD", Symbol: ".د.ب", Name: "Bahraini Dinar"},
	{Code: "BIF", Symbol: "FBu", Name: "Burundian Franc"},
	{Code: "BMD", Symbol: "$", Name: "Bermudan Dollar"},
	{Code: "BND", Symbol: "$", Name: "Brunei Dollar"},
	{Code: "BOB", Symbol: "$b", Name: "Bolivian Boliviano"},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real"},
	{Code: "BSD", Symbol: "$", Name: "Bahamian Dollar"},
	{Code: "BTN", Symbol: "Nu.", Name: "Bhutanese Ngultrum"},
	{Code: "BWP", Symbol: "P", Name: "Botswanan Pula"},
	{Code: "BYN", Symbol: "Br", Name: "Belarusian Ruble"},
	{Code: "BZD", Symbol: "BZ$", Name: "Belize Dollar"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "CDF", Symbol: "FC", Name: "Congolese Franc"},
	{Code: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	{Code: "CLP", Symbol: "$", Name: "Chilean Peso"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{Code: "COP", Symbol: "$", Name: "Colombian Peso"},
	{Code: "CRC", Symbol: "₡", Name: "Costa Rican Colón"},
	{Code: "CUC", Symbol: "$", Name: "Cuban Convertible Peso"},
	{Code: "CUP", Symbol: "₱", Name: "Cuban Peso"},
	{Code: "CVE", Symbol: "$", Name: "Cape Verdean Escudo"},
	{Code: "CZK", Symbol: "Kč", Name: "Czech Republic Koruna"},
	{Code: "DJF", Symbol: "Fdj", Name: "Djiboutian Franc"},
	{Code: "DKK", Symbol: "kr", Name: "Danish Krone"},
	{Code: "DOP", Symbol: "RD$", Name: "Dominican Peso"},
	{Code: "DZD", Symbol: "دج", Name: "Algerian Dinar"},
	{Code: "EGP", Symbol: "£", Name: "Egyptian Pound"},
	{Code: "ERN", Symbol: "Nfk", Name: "Eritrean Nakfa"},
	{Code: "ETB", Symbol: "Br", Name: "Ethiopian Birr"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "FJD", Symbol: "$", Name: "Fijian Dollar"},
	{Code: "FKP", Symbol: "£", Name: "Falkland Islands Pound"},
	{Code: "GBP", Symbol: "£", Name: "British Pound Sterling"},
	{Code: "GEL", Symbol: "₾", Name: "Georgian Lari"},
	{Code: "GGP", Symbol: "£", Name: "Guernsey Pound"},
	{Code: "GHS", Symbol: "¢", Name: "Ghanaian Cedi"},
	{Code: "GIP", Symbol: "£", Name: "Gibraltar Pound"},
	{Code: "GMD", Symbol: "D", Name: "Gambian Dalasi"},
	{Code: "GNF", Symbol: "FG", Name: "Guinean Franc"},
	{Code: "GTQ", Symbol: "Q", Name: "Guatemalan Quetzal"},
	{Code: "GYD", Symbol: "$", Name: "Guyanaese Dollar"},
	{Code: "HKD", Symbol: "HK$", Name: "Hong Kong Dollar"},
	{Code: "HNL", Symbol: "L", Name: "Honduran Lempira"},
	{Code: "HRK", Symbol: "kn", Name: "Croatian Kuna"},
	{Code: "HTG", Symbol: "G", Name: "Haitian Gourde"},
	{Code: "HUF", Symbol: "Ft", Name: "Hungarian Forint"},
	{Code: "IDR", Symbol: "Rp", Name: "Indonesian Rupiah"},
	{Code: "ILS", Symbol: "₪", Name: "Israeli New Sheqel"},
	{Code: "IMP", Symbol: "£", Name: "Manx pound"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "IQD", Symbol: "ع.د", Name: "Iraqi Dinar"},
	{Code: "IRR", Symbol: "﷼", Name: "Iranian Rial"},
	{Code: "ISK", Symbol: "kr", Name: "Icelandic Króna"},
	{Code: "JEP", Symbol: "£", Name: "Jersey Pound"},
	{Code: "JMD", Symbol: "J$", Name: "Jamaican Dollar"},
	{Code: "JOD", Symbol: "JD", Name: "Jordanian Dinar"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "KES", Symbol: "KSh", Name: "Kenyan Shilling"},
	{Code: "KGS", Symbol: "лв", Name: "Kyrgystani Som"},
	{Code: "KHR", Symbol: "៛", Name: "Cambodian Riel"},
	{Code: "KMF", Symbol: "CF", Name: "Comorian Franc"},
	{Code: "KPW", Symbol: "₩", Name: "North Korean Won"},
	{Code: "KRW", Symbol: "₩", Name: "South Korean Won"},
	{Code: "KWD", Symbol: "KD", Name: "Kuwaiti Dinar"},
	{Code: "KYD", Symbol: "$", Name: "Cayman Islands Dollar"},
	{Code: "KZT", Symbol: "лв", Name: "Kazakhstani Tenge"},
	{Code: "LAK", Symbol: "₭", Name: "Laotian Kip"},
	{Code: "LBP", Symbol: "£", Name: "Lebanese Pound"},
	{Code: "LKR", Symbol: "₨", Name: "Sri Lankan Rupee"},
	{Code: "LRD", Symbol: "$", Name: "Liberian Dollar"},
	{Code: "LSL", Symbol: "M", Name: "Lesotho Loti"},
	{Code: "LYD", Symbol: "LD", Name: "Libyan Dinar"},
	{Code: "MAD", Symbol: "MAD", Name: "Moroccan Dirham"},
	{Code: "MDL", Symbol: "lei", Name: "Moldovan Leu"},
	{Code: "MGA", Symbol: "Ar", Name: "Malagasy Ariary"},
	{Code: "MKD", Symbol: "ден", Name: "Macedonian Denar"},
	{Code: "MMK", Symbol: "K", Name: "Myanma Kyat"},
	{Code: "MNT", Symbol: "₮", Name: "Mongolian Tugrik"},
	{Code: "MOP", Symbol: "MOP$", Name: "Macanese Pataca"},
	{Code: "MRU", Symbol: "UM", Name: "Mauritanian Ouguiya"},
	{Code: "MUR", Symbol: "₨", Name: "Mauritian Rupee"},
	{Code: "MVR", Symbol: "Rf", Name: "Maldivian Rufiyaa"},
	{Code: "MWK", Symbol: "MK", Name: "Malawian Kwacha"},
	{Code: "MXN", Symbol: "$", Name: "Mexican Peso"},
	{Code: "MYR", Symbol: "RM", Name: "Malaysian Ringgit"},
	{Code: "MZN", Symbol: "MT", Name: "Mozambican Metical"},
	{Code: "NAD", Symbol: "$", Name: "Namibian Dollar"},
	{Code: "NGN", Symbol: "₦", Name: "Nigerian Naira"},
	{Code: "NIO", Symbol: "C$", Name: "Nicaraguan Córdoba"},
	{Code: "NOK", Symbol: "kr", Name: "Norwegian Krone"},
	{Code: "NPR", Symbol: "₨", Name: "Nepalese Rupee"},
	{Code: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar"},
	{Code: "OMR", Symbol: "﷼", Name: "Omani Rial"},
	{Code: "PAB", Symbol: "B/.", Name: "Panamanian Balboa"},
	{Code: "PEN", Symbol: "S/.", Name: "Peruvian Nuevo Sol"},
	{Code: "PGK", Symbol: "K", Name: "Papua New Guinean Kina"},
	{Code: "PHP", Symbol: "₱", Name: "Philippine Peso"},
	{Code: "PKR", Symbol: "₨", Name: "Pakistani Rupee"},
	{Code: "PLN", Symbol: "zł", Name: "Polish Zloty"},
	{Code: "PYG", Symbol: "Gs", Name: "Paraguayan Guarani"},
	{Code: "QAR", Symbol: "﷼", Name: "Qatari Rial"},
	{Code: "RON", Symbol: "lei", Name: "Romanian Leu"},
	{Code: "RSD", Symbol: "Дин.", Name: "Serbian Dinar"},
	{Code: "RUB", Symbol: "₽", Name: "Russian Ruble"},
	{Code: "RWF", Symbol: "R₣", Name: "Rwandan Franc"},
	{Code: "SAR", Symbol: "﷼", Name: "Saudi Riyal"},
	{Code: "SBD", Symbol: "$", Name: "Solomon Islands Dollar"},
	{Code: "SCR", Symbol: "₨", Name: "Seychellois Rupee"},
	{Code: "SDG", Symbol: "ج.س.", Name: "Sudanese Pound"},
	{Code: "SEK", Symbol: "kr", Name: "Swedish Krona"},
	{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
	{Code: "SHP", Symbol: "£", Name: "Saint Helena Pound"},
	{Code: "SLE", Symbol: "Le", Name: "Sierra Leonean Leone"},
	{Code: "SLL", Symbol: "Le", Name: "Sierra Leonean Leone (Old)"},
	{Code: "SOS", Symbol: "S", Name: "Somali Shilling"},
	{Code: "SRD", Symbol: "$", Name: "Surinamese Dollar"},
	{Code: "SSP", Symbol: "£", Name: "South Sudanese Pound"},
	{Code: "STD", Symbol: "Db", Name: "São Tomé and Príncipe Dobra (Old)"},
	{Code: "STN", Symbol: "Db", Name: "São Tomé and Príncipe Dobra"},
	{Code: "SVC", Symbol: "$", Name: "Salvadoran Colón"},
	{Code: "SYP", Symbol: "£", Name: "Syrian Pound"},
	{Code: "SZL", Symbol: "E", Name: "Swazi Lilangeni"},
	{Code: "THB", Symbol: "฿", Name: "Thai Baht"},
	{Code: "TJS", Symbol: "SM", Name: "Tajikistani Somoni"},
	{Code: "TMT", Symbol: "T", Name: "Turkmenistani Manat"},
	{Code: "TND", Symbol: "د.ت", Name: "Tunisian Dinar"},
	{Code: "TOP", Symbol: "T$", Name: "Tongan Pa'anga"},
	{Code: "TRY", Symbol: "₺", Name: "Turkish Lira"},
	{Code: "TTD", Symbol: "TT$", Name: "Trinidad and Tobago Dollar"},
	{Code: "TVD", Symbol: "$", Name: "Tuvaluan Dollar"},
	{Code: "TWD", Symbol: "NT$", Name: "New Taiwan Dollar"},
	{Code: "TZS", Symbol: "TSh", Name: "Tanzanian Shilling"},
	{Code: "UAH", Symbol: "₴", Name: "Ukrainian Hryvnia"},
	{Code: "UGX", Symbol: "USh", Name: "Ugandan Shilling"},
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "UYU", Symbol: "$U", Name: "Uruguayan Peso"},
	{Code: "UYW", Symbol: "UYW", Name: "Uruguayan Nominal Wage Index Unit"},
	{Code: "UZS", Symbol: "лв", Name: "Uzbekistan Som"},
	{Code: "VED", Symbol: "Bs.D", Name: "Venezuelan Bolívar Digital"},
	{Code: "VES", Symbol: "Bs.S", Name: "Venezuelan Bolívar Soberano"},
	{Code: "VND", Symbol: "₫", Name: "Vietnamese Dong"},
	{Code: "VUV", Symbol: "VT", Name: "Vanuatu Vatu"},
	{Code: "WST", Symbol: "WS$", Name: "Samoan Tala"},
	{Code: "XAF", Symbol: "FCFA", Name: "CFA Franc BEAC"},
	{Code: "XCD", Symbol: "$", Name: "East Caribbean Dollar"},
	{Code: "XDR", Symbol: "SDR", Name: "Special Drawing Rights"},
	{Code: "XOF", Symbol: "CFA", Name: "CFA Franc BCEAO"},
	{Code: "XPF", Symbol: "₣", Name: "CFP Franc"},
	{Code: "YER", Symbol: "﷼", Name: "Yemeni Rial"},
	{Code: "ZAR", Symbol: "R", Name: "South African Rand"},
	{Code: "ZMW", Symbol: "ZK", Name: "Zambian Kwacha"},
	{Code: "ZWL", Symbol: "Z$", Name: "Zimbabwean Dollar"},
}

var byCode = func() map[string]Currency {
	m := make(map[string]Currency, len(catalog))
	for _, c := range catalog {
		m[c.Code] = c
	}
	return m
}()

// Lookup returns the catalog entry for code, if known.
func Lookup(code string) (Currency, bool) {
	c, ok := byCode[code]
	return c, ok
}

// Symbol resolves a currency code to its display symbol, falling back to
// DefaultSymbol for unrecognized codes.
func Symbol(code string) string {
	if c, ok := byCode[code]; ok {
		return c.Symbol
	}
	return DefaultSymbol
}

// All returns the catalog in listing order.
func All() []Currency {
	out := make([]Currency, len(catalog))
	copy(out, catalog)
	return out
}
