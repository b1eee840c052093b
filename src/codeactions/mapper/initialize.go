package mapper

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/nikku/LSP/src/codeactions/entity"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// ClientName is reported to language servers in the initialize request.
const ClientName = "codeactions"

// InitializeParams are the params of the initialize request sent to language servers.
// Capabilities are kept as a plain map so that only what the daemon supports is announced.
type InitializeParams struct {
	ProcessID             int32                      `json:"processId"`
	ClientInfo            protocol.ClientInfo        `json:"clientInfo"`
	RootPath              string                     `json:"rootPath,omitempty"`
	RootURI               protocol.DocumentURI       `json:"rootUri"`
	InitializationOptions interface{}                `json:"initializationOptions,omitempty"`
	Capabilities          map[string]interface{}     `json:"capabilities"`
	WorkspaceFolders      []protocol.WorkspaceFolder `json:"workspaceFolders"`
}

// InitializeResult is the part of the initialize response the daemon keeps.
type InitializeResult struct {
	Capabilities json.RawMessage `json:"capabilities"`
	ServerInfo   *struct {
		Name    string `json:"name"`
		Version string `json:"version,omitempty"`
	} `json:"serverInfo,omitempty"`
}

// ConfigToInitializeParams builds the initialize request for a server rooted at workspaceRoot.
func ConfigToInitializeParams(cfg entity.LanguageServerConfig, workspaceRoot string) *InitializeParams {
	root := protocol.DocumentURI(uri.File(workspaceRoot))
	return &InitializeParams{
		ProcessID:             int32(os.Getpid()),
		ClientInfo:            protocol.ClientInfo{Name: ClientName},
		RootPath:              workspaceRoot,
		RootURI:               root,
		InitializationOptions: cfg.InitializationOptions,
		Capabilities:          clientCapabilities(),
		WorkspaceFolders: []protocol.WorkspaceFolder{{
			URI:  string(root),
			Name: filepath.Base(workspaceRoot),
		}},
	}
}

func clientCapabilities() map[string]interface{} {
	return map[string]interface{}{
		"textDocument": map[string]interface{}{
			"synchronization": map[string]interface{}{
				"dynamicRegistration": true,
				"didSave":             true,
			},
			"publishDiagnostics": map[string]interface{}{
				"relatedInformation":     true,
				"versionSupport":         true,
				"codeDescriptionSupport": true,
				"dataSupport":            true,
			},
			"codeAction": map[string]interface{}{
				"dynamicRegistration": true,
				"codeActionLiteralSupport": map[string]interface{}{
					"codeActionKind": map[string]interface{}{
						"valueSet": []string{
							"quickfix",
							"refactor",
							"refactor.extract",
							"refactor.inline",
							"refactor.rewrite",
							"source",
							"source.organizeImports",
							"source.fixAll",
						},
					},
				},
				"isPreferredSupport": true,
				"disabledSupport":    true,
				"dataSupport":        true,
				"resolveSupport": map[string]interface{}{
					"properties": []string{"edit"},
				},
			},
		},
		"workspace": map[string]interface{}{
			"applyEdit":        true,
			"configuration":    true,
			"workspaceFolders": true,
			"workspaceEdit": map[string]interface{}{
				"documentChanges": true,
			},
			"executeCommand": map[string]interface{}{},
		},
		"window": map[string]interface{}{
			"workDoneProgress": true,
			"showMessage":      map[string]interface{}{},
		},
	}
}
