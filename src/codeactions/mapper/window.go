package mapper

import (
	"context"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/nikku/LSP/src/codeactions/entity"
	"github.com/nikku/LSP/src/codeactions/internal/errors"
	"github.com/nikku/LSP/src/codeactions/model"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// WindowToModel maps a Window entity to its model equivalent.
func WindowToModel(w *entity.Window) *model.Window {
	return &model.Window{
		UUID:             w.UUID,
		InitializeParams: w.InitializeParams,
		Conn:             w.Conn,
		WorkspaceRoot:    w.WorkspaceRoot,
	}
}

// ModelToWindow maps a model Window to its entity equivalent.
func ModelToWindow(w *model.Window) (*entity.Window, error) {
	return &entity.Window{
		UUID:             w.UUID,
		InitializeParams: w.InitializeParams,
		Conn:             w.Conn,
		WorkspaceRoot:    w.WorkspaceRoot,
	}, nil
}

// UUIDToWindow initializes a new Window entity with the assigned uuid and connection.
func UUIDToWindow(u uuid.UUID, c *jsonrpc2.Conn) *entity.Window {
	return &entity.Window{
		UUID: u,
		Conn: c,
	}
}

// ContextToWindowUUID extracts the window UUID from a context.
func ContextToWindowUUID(c context.Context) (uuid.UUID, error) {
	w, ok := c.Value(entity.WindowContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, &errors.NoWindowFoundError{}
	}
	return w, nil
}

// InitializeParamsToWorkspaceRoot returns the directory the host opened: the root URI, else the first
// workspace folder, else the deprecated root path.
func InitializeParamsToWorkspaceRoot(params *protocol.InitializeParams) string {
	if params == nil {
		return ""
	}
	if root := uriToPath(string(params.RootURI)); root != "" {
		return root
	}
	for _, folder := range params.WorkspaceFolders {
		if root := uriToPath(folder.URI); root != "" {
			return root
		}
	}
	return params.RootPath
}

func uriToPath(u string) string {
	if !strings.HasPrefix(u, uri.FileScheme+"://") {
		return ""
	}
	return uri.URI(u).Filename()
}
