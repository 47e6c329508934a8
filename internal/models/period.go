package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Default period used when a ledger carries no usable year or month.
const (
	DefaultYear  = 2025
	DefaultMonth = Month(5)
)

// Month is a calendar month index 1-12. It unmarshals leniently: JSON
// numbers, numeric strings, and month names in any supported language all
// resolve to the right index, anything else falls back to DefaultMonth so a
// single corrupt field never blocks loading a ledger.
type Month int

// Valid reports whether the month is in range 1-12.
func (m Month) Valid() bool {
	return m >= 1 && m <= 12
}

// UnmarshalJSON accepts a number, a numeric string, or a month name.
func (m *Month) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*m = NormalizeMonth(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = ResolveMonth(s)
		return nil
	}

	*m = DefaultMonth
	return nil
}

// NormalizeMonth clamps an integer month to 1-12, defaulting out-of-range
// values.
func NormalizeMonth(n int) Month {
	if n >= 1 && n <= 12 {
		return Month(n)
	}
	return DefaultMonth
}

// ResolveMonth maps a numeric string or a month name in any supported
// language to a Month, defaulting when unrecognized.
func ResolveMonth(s string) Month {
	if m, ok := ParseMonth(s); ok {
		return m
	}
	return DefaultMonth
}

// ParseMonth is the strict form of ResolveMonth: it reports whether the
// value was recognized instead of defaulting.
func ParseMonth(s string) (Month, bool) {
	lowered := strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(lowered); err == nil {
		if n >= 1 && n <= 12 {
			return Month(n), true
		}
		return 0, false
	}
	if m, ok := monthAliases[lowered]; ok {
		return m, true
	}
	return 0, false
}

// PeriodKey formats a (year, month) pair as the canonical "YYYY-MM" key.
func PeriodKey(year int, month Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// PreviousPeriod returns the period one month earlier, rolling the year.
func PreviousPeriod(year int, month Month) (int, Month) {
	if !month.Valid() {
		month = DefaultMonth
	}
	if month <= 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// NextPeriod returns the period one month later, rolling the year.
func NextPeriod(year int, month Month) (int, Month) {
	if !month.Valid() {
		month = DefaultMonth
	}
	if month >= 12 {
		return year + 1, 1
	}
	return year, month + 1
}

// monthNames holds localized month names per language code.
var monthNames = map[string][12]string{
	"id": {
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	},
	"en": {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
}

// monthAliases maps every lowercase localized month name to its index.
var monthAliases = func() map[string]Month {
	aliases := make(map[string]Month)
	for _, names := range monthNames {
		for i, name := range names {
			aliases[strings.ToLower(name)] = Month(i + 1)
		}
	}
	return aliases
}()

// MonthName returns the localized name for a month, falling back to the
// default language and default month.
func MonthName(lang string, month Month) string {
	names, ok := monthNames[lang]
	if !ok {
		names = monthNames[DefaultLanguage]
	}
	if !month.Valid() {
		month = DefaultMonth
	}
	return names[month-1]
}

// PeriodLabel formats a period for display, e.g. "Mei 2025".
func PeriodLabel(lang string, year int, month Month) string {
	return fmt.Sprintf("%s %d", MonthName(lang, month), year)
}
