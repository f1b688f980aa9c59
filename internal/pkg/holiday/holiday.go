// Package holiday holds the static company holiday calendar consulted during
// attendance generation and exposed for calendar annotation.
package holiday

import "time"

const dateLayout = "2006-01-02"

// Holiday is a single calendar holiday.
type Holiday struct {
	Date string `json:"date"` // YYYY-MM-DD
	Name string `json:"name"`
}

// Approximate dates are used for floating holidays like Holi, Memorial Day,
// Diwali, and Thanksgiving.
var holidays = []Holiday{
	// 2023
	{Date: "2023-01-01", Name: "New Year's Day"},
	{Date: "2023-01-26", Name: "Republic Day (India)"},
	{Date: "2023-03-08", Name: "Holi (India)"},
	{Date: "2023-05-29", Name: "Memorial Day (US)"},
	{Date: "2023-06-19", Name: "Juneteenth (US)"},
	{Date: "2023-07-04", Name: "Independence Day (US)"},
	{Date: "2023-08-15", Name: "Independence Day (India)"},
	{Date: "2023-10-02", Name: "Gandhi Jayanti (India)"},
	{Date: "2023-11-12", Name: "Diwali (India)"},
	{Date: "2023-11-23", Name: "Thanksgiving Day (US)"},
	{Date: "2023-12-25", Name: "Christmas Day"},

	// 2024
	{Date: "2024-01-01", Name: "New Year's Day"},
	{Date: "2024-01-26", Name: "Republic Day (India)"},
	{Date: "2024-03-25", Name: "Holi (India)"},
	{Date: "2024-05-27", Name: "Memorial Day (US)"},
	{Date: "2024-06-19", Name: "Juneteenth (US)"},
	{Date: "2024-07-04", Name: "Independence Day (US)"},
	{Date: "2024-08-15", Name: "Independence Day (India)"},
	{Date: "2024-10-02", Name: "Gandhi Jayanti (India)"},
	{Date: "2024-11-01", Name: "Diwali (India)"},
	{Date: "2024-11-28", Name: "Thanksgiving Day (US)"},
	{Date: "2024-12-25", Name: "Christmas Day"},

	// 2025
	{Date: "2025-01-01", Name: "New Year's Day"},
	{Date: "2025-01-26", Name: "Republic Day (India)"},
	{Date: "2025-03-14", Name: "Holi (India)"},
	{Date: "2025-05-26", Name: "Memorial Day (US)"},
	{Date: "2025-06-19", Name: "Juneteenth (US)"},
	{Date: "2025-07-04", Name: "Independence Day (US)"},
	{Date: "2025-08-15", Name: "Independence Day (India)"},
	{Date: "2025-10-02", Name: "Gandhi Jayanti (India)"},
	{Date: "2025-11-20", Name: "Diwali (India)"},
	{Date: "2025-11-27", Name: "Thanksgiving Day (US)"},
	{Date: "2025-12-25", Name: "Christmas Day"},
}

var byDate = func() map[string]string {
	m := make(map[string]string, len(holidays))
	for _, h := range holidays {
		m[h.Date] = h.Name
	}
	return m
}()

// Name returns the holiday name for a date, if any.
func Name(date time.Time) (string, bool) {
	name, ok := byDate[date.Format(dateLayout)]
	return name, ok
}

// All returns the full calendar in declaration order.
func All() []Holiday {
	out := make([]Holiday, len(holidays))
	copy(out, holidays)
	return out
}
