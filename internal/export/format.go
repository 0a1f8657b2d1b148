package export

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var indianEnglish = language.MustParse("en-IN")

// FormatINR renders a whole-rupee amount with locale digit grouping, e.g. "₹4,560".
func FormatINR(amount int64) string {
	return message.NewPrinter(indianEnglish).Sprintf("₹%d", amount)
}
