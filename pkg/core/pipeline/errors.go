package pipeline

// ErrorKind classifies pipeline failures. None are retried; each is reported
// once inside the result and is terminal for that invocation.
type ErrorKind string

const (
	// ErrUnsupportedFormat: the file extension maps to no known format.
	ErrUnsupportedFormat ErrorKind = "UnsupportedFormat"
	// ErrExtraction: the file could not be opened, parsed, or was empty.
	ErrExtraction ErrorKind = "ExtractionError"
	// ErrAnalysis: unexpected failure in the arithmetic/scoring stages.
	ErrAnalysis ErrorKind = "AnalysisError"
)

func errorResult(kind ErrorKind, fileType, message string) *AnalysisResult {
	return &AnalysisResult{
		Status:       StatusError,
		FileType:     fileType,
		ErrorType:    string(kind),
		ErrorMessage: message,
	}
}
