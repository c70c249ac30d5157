package timeline

import (
	"fmt"
	"regexp"
	"time"
)

var periodPattern = regexp.MustCompile(`^Q([1-4])-(\d{4})$`)

// Period identifies one calendar quarter, e.g. Q1-2024.
type Period struct {
	Quarter int
	Year    int
}

// ParsePeriod parses a "Q{1-4}-{year}" label.
func ParsePeriod(label string) (Period, error) {
	m := periodPattern.FindStringSubmatch(label)
	if m == nil {
		return Period{}, fmt.Errorf("malformed period label %q (want Q1-2024 form)", label)
	}
	var p Period
	fmt.Sscanf(m[1], "%d", &p.Quarter)
	fmt.Sscanf(m[2], "%d", &p.Year)
	return p, nil
}

// PeriodOf returns the quarter containing t.
func PeriodOf(t time.Time) Period {
	return Period{
		Quarter: (int(t.Month())-1)/3 + 1,
		Year:    t.Year(),
	}
}

// PeriodOrCurrent parses label, falling back to the quarter containing
// today when the label is malformed.
func PeriodOrCurrent(label string, today time.Time) Period {
	p, err := ParsePeriod(label)
	if err != nil {
		return PeriodOf(today)
	}
	return p
}

// Label renders the canonical "Q{n}-{year}" form.
func (p Period) Label() string {
	return fmt.Sprintf("Q%d-%d", p.Quarter, p.Year)
}

// Start is the first day of the quarter's first month, midnight UTC.
func (p Period) Start() time.Time {
	month := time.Month((p.Quarter-1)*3 + 1)
	return time.Date(p.Year, month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the last day of the quarter's third month, midnight UTC.
func (p Period) End() time.Time {
	month := time.Month((p.Quarter-1)*3 + 1)
	// Day zero of month+3 normalises to the final day of month+2.
	return time.Date(p.Year, month+3, 0, 0, 0, 0, 0, time.UTC)
}

// Order maps the period onto a total ordering usable for comparison and
// iteration across year boundaries.
func (p Period) Order() int {
	return p.Year*4 + p.Quarter - 1
}

// Next returns the following quarter.
func (p Period) Next() Period {
	return periodFromOrder(p.Order() + 1)
}

// Prev returns the preceding quarter.
func (p Period) Prev() Period {
	return periodFromOrder(p.Order() - 1)
}

func periodFromOrder(order int) Period {
	return Period{Quarter: order%4 + 1, Year: order / 4}
}
