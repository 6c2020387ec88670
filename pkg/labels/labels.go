package labels

// Package labels holds the fixed bilingual (Khmer/English) label table
// for the invoice document. Exactly two locales are baked in; there is
// no runtime locale negotiation.

const (
	LangEnglish = "en"
	LangKhmer   = "km"
)

var translations = map[string]map[string]string{
	LangEnglish: {
		"invoice":       "Invoice",
		"customer":      "Customer",
		"date":          "Date",
		"item":          "Item",
		"quantity":      "Qty",
		"unit_price":    "Unit Price",
		"amount":        "Amount",
		"subtotal":      "Subtotal",
		"discount":      "Discount",
		"delivery_fee":  "Delivery Fee",
		"total":         "Total",
		"seller":        "Seller",
		"thank_you":     "Thank you for your purchase!",
		"payment_scan":  "Scan to pay",
	},
	LangKhmer: {
		"invoice":       "វិក្កយបត្រ",
		"customer":      "អតិថិជន",
		"date":          "កាលបរិច្ឆេទ",
		"item":          "ទំនិញ",
		"quantity":      "ចំនួន",
		"unit_price":    "តម្លៃឯកតា",
		"amount":        "ទឹកប្រាក់",
		"subtotal":      "សរុបរង",
		"discount":      "បញ្ចុះតម្លៃ",
		"delivery_fee":  "ថ្លៃដឹកជញ្ជូន",
		"total":         "សរុប",
		"seller":        "អ្នកលក់",
		"thank_you":     "អរគុណសម្រាប់ការទិញ!",
		"payment_scan":  "ស្កេនដើម្បីបង់ប្រាក់",
	},
}

// T returns the label for key in the given language. Unknown keys fall
// back to the key itself; unknown languages fall back to English.
func T(lang, key string) string {
	if m, ok := translations[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := translations[LangEnglish][key]; ok {
		return v
	}
	return key
}

// Pair returns "Khmer / English" for the given key, the form used on
// the printed document.
func Pair(key string) string {
	return T(LangKhmer, key) + " / " + T(LangEnglish, key)
}

// Keys lists the label keys used by the invoice document.
func Keys() []string {
	keys := make([]string, 0, len(translations[LangEnglish]))
	for k := range translations[LangEnglish] {
		keys = append(keys, k)
	}
	return keys
}
