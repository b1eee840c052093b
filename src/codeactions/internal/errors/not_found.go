package errors

import (
	stderr "errors"
	"fmt"

	"github.com/gofrs/uuid"
	"go.lsp.dev/protocol"
)

// UUIDNotFoundError is a service domain error for not found.
type UUIDNotFoundError struct {
	UUID uuid.UUID
}

// Error is an implementation of the error interface.
func (n *UUIDNotFoundError) Error() string {
	return fmt.Sprintf("UUID %q not found", n.UUID)
}

// NotFoundUUID returns an UUID and true if UUIDNotFoundError is part of the
// error chain.
func NotFoundUUID(e error) (_ uuid.UUID, ok bool) {
	var nf *UUIDNotFoundError
	if !stderr.As(e, &nf) {
		return uuid.Nil, false
	}
	return nf.UUID, true
}

// NoWindowFoundError indicates that a window cannot be found within the context.
type NoWindowFoundError struct{}

// Error is an implementation of the error interface.
func (n *NoWindowFoundError) Error() string {
	return "no window found in context"
}

// DocumentNotFoundError indicates that a document is not open in the window.
type DocumentNotFoundError struct {
	Document protocol.DocumentURI
}

// Error is an implementation of the error interface.
func (n *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("document %q not found", n.Document)
}

// SessionNotFoundError indicates that no language server session with the given name is attached.
type SessionNotFoundError struct {
	Name string
}

// Error is an implementation of the error interface.
func (n *SessionNotFoundError) Error() string {
	return fmt.Sprintf("session %q not found", n.Name)
}
