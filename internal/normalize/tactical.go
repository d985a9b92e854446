package normalize

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/osintlab/crisisdash/internal/model"
)

type rawTactical struct {
	Incidents         []model.TacticalIncident `json:"incidents"`
	OverallAssessment *string                  `json:"overallAssessment"`
}

// Tactical validates and normalizes a raw sweep payload. An empty incidents
// array is legal: there is no minimum-count invariant on sweeps.
func Tactical(raw []byte, country string, now time.Time) (*model.TacticalAnalysis, error) {
	var rt rawTactical
	if err := json.Unmarshal(stripFences(raw), &rt); err != nil {
		return nil, &MalformedResponseError{Reason: "invalid JSON", Err: err}
	}
	if rt.OverallAssessment == nil {
		return nil, &MalformedResponseError{Reason: "missing required field overallAssessment"}
	}

	for i, inc := range rt.Incidents {
		if !inc.Category.Valid() {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf("incidents[%d] has invalid category %q", i, inc.Category)}
		}
		if !inc.ProactiveIntent.Valid() {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf("incidents[%d] has invalid proactiveIntent %q", i, inc.ProactiveIntent)}
		}
		if inc.Intensity < 1 || inc.Intensity > 10 {
			return nil, &OutOfRangeValueError{Field: fmt.Sprintf("incidents[%d].intensity", i), Value: inc.Intensity, Min: 1, Max: 10}
		}
	}

	analysis := &model.TacticalAnalysis{
		ID:                "TACTICAL-" + NewID()[:6],
		Country:           country,
		Timestamp:         now.UnixMilli(),
		Incidents:         rt.Incidents,
		OverallAssessment: *rt.OverallAssessment,
	}
	if analysis.Incidents == nil {
		analysis.Incidents = []model.TacticalIncident{}
	}
	return analysis, nil
}
