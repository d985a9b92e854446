// Package prompt builds fully-specified analysis requests for the external
// model. A Request is an opaque descriptor: it says what must be asked and
// what shape must come back, and knows nothing about transport.
package prompt

import "fmt"

// Request describes one model call.
type Request struct {
	// System is the system instruction (analyst role, scoring rules,
	// credibility protocol, output schema).
	System string

	// Contents is the user-facing task text.
	Contents string

	// UseSearch directs the transport to enable live web search grounding.
	UseSearch bool

	// Temperature for generation. Low by default for contract stability.
	Temperature float32
}

// InvalidBaselineError indicates a baseline report whose profile does not
// match the requested profile. Raised before any external call is attempted.
type InvalidBaselineError struct {
	Profile  string
	Baseline string
}

func (e *InvalidBaselineError) Error() string {
	return fmt.Sprintf("prompt: baseline report is for %q, requested profile is %q", e.Baseline, e.Profile)
}
