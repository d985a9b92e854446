package model

// IncidentCategory is the triage class assigned to a tactical incident.
type IncidentCategory string

const (
	IncidentSocialUnrest IncidentCategory = "Social Unrest"
	IncidentViolent      IncidentCategory = "Violent Disorder"
	IncidentCoup         IncidentCategory = "Coups/Political Instability"
	IncidentLiveCombat   IncidentCategory = "Live Combat Zones"
	IncidentHumanitarian IncidentCategory = "Humanitarian Disaster"
	IncidentOther        IncidentCategory = "Other"
)

// Valid reports whether c is one of the defined incident categories.
func (c IncidentCategory) Valid() bool {
	switch c {
	case IncidentSocialUnrest, IncidentViolent, IncidentCoup,
		IncidentLiveCombat, IncidentHumanitarian, IncidentOther:
		return true
	}
	return false
}

// ProactiveIntent distinguishes reporting about an event from planning one.
type ProactiveIntent string

const (
	IntentReporting ProactiveIntent = "Reporting"
	IntentPlanning  ProactiveIntent = "Planning"
)

// Valid reports whether i is one of the defined intents.
func (i ProactiveIntent) Valid() bool {
	return i == IntentReporting || i == IntentPlanning
}

// Coordinates locate an incident, anchored to a named landmark.
type Coordinates struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Landmark string  `json:"landmark"`
}

// TacticalIncident is one discrete ground-truth event from a real-time sweep.
type TacticalIncident struct {
	Category        IncidentCategory `json:"category"`
	Summary         string           `json:"summary"`
	Coordinates     Coordinates      `json:"coordinates"`
	Intensity       float64          `json:"intensity"` // 1-10
	ProactiveIntent ProactiveIntent  `json:"proactiveIntent"`
	EvidenceSnippet string           `json:"evidenceSnippet"`
	SourceURL       string           `json:"sourceUrl,omitempty"`
}

// TacticalAnalysis is the result of one incident-level sweep. Unlike a
// CrisisReport there is no fixed-count invariant: a quiet sweep legitimately
// yields zero incidents.
type TacticalAnalysis struct {
	ID                string             `json:"id"`
	Country           string             `json:"country"`
	Timestamp         int64              `json:"timestamp"` // epoch milliseconds
	Incidents         []TacticalIncident `json:"incidents"`
	OverallAssessment string             `json:"overallAssessment"`
}
