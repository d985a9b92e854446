package normalize

import "fmt"

// MalformedResponseError indicates the raw payload is not valid JSON or is
// missing required top-level fields. No partial report is produced.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("normalize: malformed response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("normalize: malformed response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// IndicatorCountMismatchError indicates the scores array does not contain
// exactly one entry per framework indicator with ids 1..N.
type IndicatorCountMismatchError struct {
	Want   int
	Got    int
	Detail string
}

func (e *IndicatorCountMismatchError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("normalize: indicator count mismatch: want %d entries, got %d (%s)", e.Want, e.Got, e.Detail)
	}
	return fmt.Sprintf("normalize: indicator count mismatch: want %d entries, got %d", e.Want, e.Got)
}

// OutOfRangeValueError indicates a numeric field outside its declared
// domain. Values are rejected, never silently clamped, so model drift
// surfaces instead of being masked.
type OutOfRangeValueError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *OutOfRangeValueError) Error() string {
	return fmt.Sprintf("normalize: %s = %g outside [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}
