// Package derive computes the fields of a contact record that are derived
// from its structured fields: the formatted mailing address and the age.
package derive

import (
	"strings"
	"time"
)

// GenerateAddress formats a mailing address from its parts. It returns an
// empty string unless address1, city, state and postalCode are all non-blank
// (whitespace-only counts as blank). address2 and country are optional lines.
func GenerateAddress(address1, address2, city, state, postalCode, country string) string {
	if isBlank(address1) || isBlank(city) || isBlank(state) || isBlank(postalCode) {
		return ""
	}

	var b strings.Builder
	b.WriteString(address1)
	if !isBlank(address2) {
		b.WriteString("\n")
		b.WriteString(address2)
	}
	b.WriteString("\n")
	b.WriteString(city)
	b.WriteString(", ")
	b.WriteString(state)
	b.WriteString(" ")
	b.WriteString(postalCode)
	if !isBlank(country) {
		b.WriteString("\n")
		b.WriteString(country)
	}
	return b.String()
}

// CalculateAge returns whole years between birthDate and asOf.
//
// The anniversary of a Feb-29 birth date falls on Feb 28 in non-leap years,
// so someone born 2000-02-29 turns 25 on 2025-02-28. A birth date in the
// future clamps to 0, never negative.
func CalculateAge(birthDate, asOf time.Time) int {
	age := asOf.Year() - birthDate.Year()
	if age < 0 {
		return 0
	}
	if asOf.Before(anniversary(birthDate, asOf.Year())) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// anniversary returns the birthday in the given year, clamping Feb 29 to
// Feb 28 when the year is not a leap year.
func anniversary(birthDate time.Time, year int) time.Time {
	month, day := birthDate.Month(), birthDate.Day()
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, birthDate.Location())
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
