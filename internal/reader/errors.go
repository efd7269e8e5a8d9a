package reader

import "fmt"

// UnsupportedTypeError indicates a file whose extension the reader does not
// handle.
type UnsupportedTypeError struct {
	Filename string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Filename)
}

// ExtractionError represents a failure converting a supported document to
// plain text.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("text extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("text extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
