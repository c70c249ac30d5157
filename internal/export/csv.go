// Package export writes board data out as CSV for spreadsheets and as a
// JSON snapshot for backup and transfer between databases.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lszabadkai/quarterback/internal/domain"
)

var csvHeader = []string{
	"Project Name", "Assignees", "Start Date", "End Date",
	"Status", "Type", "Confidence",
	"ICE Impact", "ICE Confidence", "ICE Effort", "ICE Score",
}

const csvDateLayout = "2006-01-02"

// WriteProjectsCSV writes one row per project. Assignee IDs are resolved
// to display names through people; unknown IDs pass through raw so the
// row is never silently incomplete.
func WriteProjectsCSV(w io.Writer, projects []*domain.Project, people []*domain.Person) error {
	nameByID := make(map[string]string, len(people))
	for _, p := range people {
		nameByID[p.ID] = p.Name
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, p := range projects {
		names := make([]string, len(p.Assignees))
		for i, id := range p.Assignees {
			if name, ok := nameByID[id]; ok {
				names[i] = name
			} else {
				names[i] = id
			}
		}

		score := ""
		if v, ok := p.IceScore(); ok {
			score = strconv.FormatFloat(v, 'f', 1, 64)
		}

		row := []string{
			p.Name,
			strings.Join(names, "; "),
			formatDate(p.StartDate),
			formatDate(p.EndDate),
			string(p.Status),
			p.Type,
			string(p.Confidence),
			formatComponent(p.IceImpact),
			formatComponent(p.IceConfidence),
			formatComponent(p.IceEffort),
			score,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row for %s: %w", p.Name, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(csvDateLayout)
}

func formatComponent(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
