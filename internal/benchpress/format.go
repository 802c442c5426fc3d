package benchpress

import (
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/trainlytics/internal/analytics/events"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// formatLbs renders a weight with thousands separators, e.g. "12,345.5 lbs".
func formatLbs(v float64) string {
	return printer.Sprintf("%v lbs", number.Decimal(v, number.MaxFractionDigits(3)))
}

func formatPercent(p int) string {
	return fmt.Sprintf("%d%%", p)
}

func formatPeriod(days int) string {
	return fmt.Sprintf("Last %d days", days)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatDay(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := events.FormatDay(*t)
	return &s
}

func strPtr(s string) *string {
	return &s
}
