package handler

import (
	"fmt"
	"strings"

	"github.com/nikku/LSP/src/codeactions/controller/lifecycle"
	"github.com/nikku/LSP/src/codeactions/entity"
	"github.com/nikku/LSP/src/codeactions/internal/serverinfofile"
)

const (
	_infoKeyName       = "name"
	_infoKeyExtensions = "extensions"
)

// extensionMethods are the methods beyond the Language Server Protocol that hosts may use.
var extensionMethods = []string{
	entity.MethodSelectionChanged,
	entity.MethodRunCodeActions,
	entity.MethodCodeActionsAvailable,
}

// Output the daemon name and its protocol extensions, so that hosts can tell which daemon they found.
// The JSON-RPC module adds the address it listens on independently.
func outputServerInfo(infofile serverinfofile.ServerInfoFile) error {
	if err := infofile.UpdateField(_infoKeyName, lifecycle.ServerName); err != nil {
		return fmt.Errorf("outputting %q to info file: %w", _infoKeyName, err)
	}
	if err := infofile.UpdateField(_infoKeyExtensions, strings.Join(extensionMethods, ",")); err != nil {
		return fmt.Errorf("outputting %q to info file: %w", _infoKeyExtensions, err)
	}
	return nil
}
