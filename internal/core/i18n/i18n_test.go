package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatEventTime(t *testing.T) {
	tests := []struct {
		name     string
		lang     Language
		input    string
		expected string
	}{
		{name: "EnglishAfternoon", lang: English, input: "14:05:00", expected: "2:05 PM"},
		{name: "EnglishMorning", lang: English, input: "09:30:12", expected: "9:30 AM"},
		{name: "EnglishMidnight", lang: English, input: "00:15:00", expected: "12:15 AM"},
		{name: "EnglishNoon", lang: English, input: "12:00:00", expected: "12:00 PM"},
		{name: "EnglishNoSeconds", lang: English, input: "23:59", expected: "11:59 PM"},
		{name: "ArabicAfternoon", lang: Arabic, input: "14:05:00", expected: "٢:٠٥ م"},
		{name: "ArabicMorning", lang: Arabic, input: "10:45:00", expected: "١٠:٤٥ ص"},
		{name: "Malformed", lang: English, input: "later", expected: "later"},
		{name: "MalformedArabic", lang: Arabic, input: "25:00:00", expected: "25:00:00"},
		{name: "Empty", lang: English, input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatEventTime(tt.lang, tt.input))
		})
	}
}

// TestFormatEventTime_Deterministic verifies identical inputs give identical output.
func TestFormatEventTime_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, FormatEventTime(Arabic, "14:05:00"), FormatEventTime(Arabic, "14:05:00"))
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2020, time.January, 14, 21, 59, 59, 0, time.UTC)
	assert.Equal(t, "1/14/2020", FormatDate(English, d))
	assert.Equal(t, "١٤/١/٢٠٢٠", FormatDate(Arabic, d))
}

func TestFormatDateTime(t *testing.T) {
	d := time.Date(2020, time.January, 10, 14, 5, 9, 0, time.UTC)
	assert.Equal(t, "1/10/2020, 2:05:09 PM", FormatDateTime(English, d))
	assert.Equal(t, "١٠/١/٢٠٢٠، ٢:٠٥:٠٩ م", FormatDateTime(Arabic, d))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "٠١٢٣٤٥٦٧٨٩", Digits(Arabic, "0123456789"))
	assert.Equal(t, "Hub ٣", Digits(Arabic, "Hub 3"))
	assert.Equal(t, "0123", Digits(English, "0123"))
}

func TestT(t *testing.T) {
	assert.Equal(t, "رقم الشحنة", T(Arabic, KeyTrackingNumber))
	assert.Equal(t, "Shipment No.", T(English, KeyTrackingNumber))
	assert.Equal(t, "Delivered", T(English, "DELIVERED"))
	assert.Equal(t, "تم التسليم", T(Arabic, "DELIVERED"))

	// Unknown keys (e.g. new status codes) are shown raw.
	assert.Equal(t, "RETURNED_TO_HUB", T(Arabic, "RETURNED_TO_HUB"))
	// Unsupported language falls back to English.
	assert.Equal(t, "Delivered", T(Language("fr"), "DELIVERED"))

	assert.True(t, Has("CANCELLED"))
	assert.False(t, Has("LOST"))
}

// TestCatalog_Complete verifies every key is translated into both languages.
func TestCatalog_Complete(t *testing.T) {
	for key, texts := range catalog {
		for _, lang := range supported {
			assert.NotEmpty(t, texts[lang], "missing %s translation for %q", lang, key)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		lang  Language
		ok    bool
	}{
		{"ar", Arabic, true},
		{"EN", English, true},
		{"en-US", English, true},
		{" ar-EG ", Arabic, true},
		{"fr", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lang, ok := Parse(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.lang, lang)
		})
	}
}

func TestNegotiate(t *testing.T) {
	assert.Equal(t, English, Negotiate("en-US,en;q=0.9", Arabic))
	assert.Equal(t, Arabic, Negotiate("ar-EG,ar;q=0.9,en;q=0.8", English))
	assert.Equal(t, English, Negotiate("", English))
	assert.Equal(t, Arabic, Negotiate("fr-FR", Arabic))
	assert.Equal(t, English, Negotiate(";;;", English))
}

func TestLanguage_Properties(t *testing.T) {
	assert.Equal(t, English, Arabic.Toggle())
	assert.Equal(t, Arabic, English.Toggle())

	assert.Equal(t, "rtl", Arabic.Dir())
	assert.Equal(t, "ltr", English.Dir())
	assert.True(t, Arabic.IsRTL())
	assert.False(t, English.IsRTL())

	assert.Equal(t, "ar-EG", Arabic.Locale())
	assert.Equal(t, "en-US", English.Locale())
}
