package format

import (
	"regexp"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer gives us English-locale digit grouping, the same rendering the
// frontend gets from Intl with the en-UG locale.
var printer = message.NewPrinter(language.English)

// ugandanPhone matches Ugandan mobile numbers: the country code (256) or the
// trunk prefix (0), a supported carrier prefix (70-78 or 39), then exactly
// seven more digits.
var ugandanPhone = regexp.MustCompile(`^(256|0)(7[0-8]|39)\d{7}$`)

// FormatCurrency renders an amount in whole UGX as a display string with
// thousands grouping and no fractional digits, e.g. "UGX 10,000". Display
// only; nothing parses it back.
func FormatCurrency(amount int) string {
	return printer.Sprintf("UGX %d", amount)
}

// FormatDate renders a timestamp the way the frontend shows donation times,
// medium date plus short time.
func FormatDate(t time.Time) string {
	return t.Format("2 Jan 2006, 15:04")
}

// ValidatePhoneNumber reports whether phone is a valid Ugandan mobile number.
func ValidatePhoneNumber(phone string) bool {
	return ugandanPhone.MatchString(phone)
}
