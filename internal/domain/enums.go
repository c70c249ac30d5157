package domain

type ProjectStatus string

const (
	StatusPlanned    ProjectStatus = "planned"
	StatusInProgress ProjectStatus = "in_progress"
	StatusDone       ProjectStatus = "done"
	StatusAtRisk     ProjectStatus = "at_risk"
)

type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// ViewMode selects how a quarter's date span is narrowed before week
// generation.
type ViewMode string

const (
	ViewQuarter  ViewMode = "quarter"
	ViewMonth    ViewMode = "month"
	ViewSixWeeks ViewMode = "6weeks"
	ViewTwoWeeks ViewMode = "2weeks"
)

// ValidViewModes is the canonical set of accepted view mode strings.
var ValidViewModes = map[string]bool{
	"quarter": true, "month": true, "6weeks": true, "2weeks": true,
}

// ParseViewMode returns the view mode for s, falling back to the full
// quarter view for anything unrecognised.
func ParseViewMode(s string) ViewMode {
	if ValidViewModes[s] {
		return ViewMode(s)
	}
	return ViewQuarter
}

// ValidProjectStatuses is the canonical set of accepted status strings.
var ValidProjectStatuses = map[string]bool{
	"planned": true, "in_progress": true, "done": true, "at_risk": true,
}

// ValidConfidences is the canonical set of accepted confidence strings.
var ValidConfidences = map[string]bool{
	"low": true, "medium": true, "high": true,
}
