// Package analyzer provides the generic NLP-based job posting analyzer,
// used when no site-specific parser claims the source URL.
package analyzer

import "fmt"

// AnalysisError represents an unexpected fault in the analysis path.
// Field-level extraction misses are never errors; only a fault that
// prevents producing a result at all surfaces as an AnalysisError.
type AnalysisError struct {
	Message string
	Cause   error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("analysis error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("analysis error: %s", e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}
