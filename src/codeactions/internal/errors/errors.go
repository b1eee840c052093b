package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

var (
	// NoDocumentOnWireError reports that the request does not name a text document.
	NoDocumentOnWireError = New("textDocument is required")
	// NoRegionOnWireError reports that the request is missing a region.
	NoRegionOnWireError = New("region is required")
)

// IsBadRequest reports whether the error is a bad request from the caller.
func IsBadRequest(e error) bool {
	return stderr.Is(e, NoDocumentOnWireError) || stderr.Is(e, NoRegionOnWireError)
}
