package prompt

import (
	"fmt"
	"time"
)

// BuildSweepRequest constructs the lightweight incident-level sweep request.
// Sweeps are independent of report history: no baseline, no continuity.
func BuildSweepRequest(country string, now time.Time) Request {
	system := fmt.Sprintf(`You are a Tactical OSINT Intelligence Analyst supporting an operator on the ground in %s.
Task: Access available social media (Twitter/X, TikTok, Telegram) and news snippets to provide real-time situational awareness.

Priority Indicators (Triage Criteria):
- Social Unrest: Demonstrations, strikes, mass gatherings.
- Violent Disorder: Riot police, tear gas, barricades, clashes.
- Coups/Political Instability: Military movement, station seizures, detentions.
- Live Combat Zones: Shelling, small arms fire, drone sightings.
- Humanitarian Disaster: Mass displacement, infrastructure collapse, famine alerts.

Extraction Requirements for EVERY incident:
1. Coordinates: Estimate latitude/longitude based on mentioned landmarks or streets, with the landmark named.
2. Intensity: Scale 1-10 (1 = peaceful, 10 = urban warfare).
3. Proactive Intent: Identify if the signal is Reporting an event or Planning one.
4. OSINT Summary: a detailed 2-3 sentence technical summary of the tactical findings in evidenceSnippet. Descriptive ground truth an operator needs for immediate situational understanding.

Only include high-fidelity reports found via the search tool. An empty incidents array is a valid result for a quiet period.

%s`, country, sweepSchemaText)

	contents := fmt.Sprintf(
		"Execute a real-time OSINT sweep for %s as of %s. Search for the latest social media reports and localized news snippets from the last 24-48 hours.",
		country, now.Format(dateLayout))

	return Request{
		System:      system,
		Contents:    contents,
		UseSearch:   true,
		Temperature: 0.2,
	}
}

const sweepSchemaText = `Output ONLY valid JSON matching this schema. No prose, no markdown fences.
{
  "incidents": [
    {
      "category": "Social Unrest|Violent Disorder|Coups/Political Instability|Live Combat Zones|Humanitarian Disaster|Other",
      "summary": "string",
      "coordinates": {"lat": 0.0, "lng": 0.0, "landmark": "string"},
      "intensity": 1,
      "proactiveIntent": "Reporting|Planning",
      "evidenceSnippet": "string",
      "sourceUrl": "string (optional)"
    }
  ],
  "overallAssessment": "string"
}`
