package models

import (
	"fmt"
	"strings"
)

// DayName is a day of the scheduling week. The week starts on Sunday
// and the ordinal (0..6) matches the weekcode day index.
type DayName int

const (
	Sunday DayName = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func (d DayName) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("DayName(%d)", int(d))
	}
	return dayNames[d]
}

// IsValid reports whether d is one of the seven days.
func (d DayName) IsValid() bool {
	return d >= Sunday && d <= Saturday
}

// Next returns the following day, wrapping Saturday to Sunday.
func (d DayName) Next() DayName {
	return (d + 1) % 7
}

// ParseDay resolves a day by full name, 3-letter prefix or ordinal
// ("Sunday", "sun", "0"). Unknown names are a caller error.
func ParseDay(s string) (DayName, error) {
	for i, name := range dayNames {
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return DayName(i), nil
		}
	}
	if len(s) == 1 && s[0] >= '0' && s[0] <= '6' {
		return DayName(s[0] - '0'), nil
	}
	return 0, fmt.Errorf("unknown day name %q", s)
}
