package domain

import (
	"strings"
	"time"
)

// Person occupies one lane on the board. The timeline engine only sees the
// ID; everything else is display and capacity input.
type Person struct {
	ID        string
	Name      string
	Avatar    string
	Color     string
	RegionID  string
	RoleID    string
	CreatedAt time.Time
}

// Region groups people sharing PTO and public-holiday allowances.
type Region struct {
	ID       string
	Name     string
	PTODays  int
	Holidays int
}

// Role carries the percentage of a person's time available for project work.
type Role struct {
	ID       string
	Name     string
	FocusPct int
}

// Initials builds an avatar fallback from a display name, e.g.
// "Alice Chen" -> "AC".
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}
