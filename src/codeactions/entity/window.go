// Package entity contains the domain types of the code action daemon.
package entity

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

type keyType string

// WindowContextKey indicates the key to be used to identify the window UUID in the context.
const WindowContextKey keyType = "WindowUUID"

// CodeActionProviderCapability is the server capability path that marks a session as able to serve code actions.
const CodeActionProviderCapability = "codeActionProvider"

// Window entity representing a single connected host editor window.
type Window struct {
	UUID             uuid.UUID                  `json:"uuid" zap:"uuid"`
	InitializeParams *protocol.InitializeParams `json:"-" zap:"-"`
	Conn             *jsonrpc2.Conn             `json:"-" zap:"-"`
	WorkspaceRoot    string                     `json:"workspaceRoot" zap:"workspaceRoot"`
}

// LanguageServerConfig describes how to launch one language server and which documents it attaches to.
type LanguageServerConfig struct {
	Name                  string                 `yaml:"name"`
	Command               string                 `yaml:"command"`
	Args                  []string               `yaml:"args"`
	Env                   []string               `yaml:"env"`
	Languages             []string               `yaml:"languages"`
	Enabled               bool                   `yaml:"enabled"`
	InitializationOptions map[string]interface{} `yaml:"initializationOptions"`
}

// AttachesTo reports whether the server should receive documents with the given language id.
func (c LanguageServerConfig) AttachesTo(languageID protocol.LanguageIdentifier) bool {
	for _, l := range c.Languages {
		if l == string(languageID) {
			return true
		}
	}
	return false
}
