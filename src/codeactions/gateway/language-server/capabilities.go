package languageserver

import (
	"encoding/json"
	"path/filepath"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// _registrationPaths maps dynamically registered methods to the server capability they stand for.
var _registrationPaths = map[string]string{
	protocol.MethodTextDocumentCodeAction:  "codeActionProvider",
	protocol.MethodWorkspaceExecuteCommand: "executeCommandProvider",
}

// register merges dynamically registered capabilities into the static ones.
func (s *session) register(registrations []protocol.Registration) {
	s.updateCapabilities(func(caps map[string]interface{}) {
		for _, r := range registrations {
			path, ok := _registrationPaths[r.Method]
			if !ok {
				continue
			}
			var value interface{} = true
			if r.RegisterOptions != nil {
				value = r.RegisterOptions
			}
			caps[path] = value
			s.logger.Infow("capability registered", "method", r.Method, "id", r.ID)
		}
	})
}

func (s *session) unregister(unregistrations []protocol.Unregistration) {
	s.updateCapabilities(func(caps map[string]interface{}) {
		for _, u := range unregistrations {
			if path, ok := _registrationPaths[u.Method]; ok {
				delete(caps, path)
			}
		}
	})
}

func (s *session) updateCapabilities(update func(map[string]interface{})) {
	s.capabilitiesMu.Lock()
	defer s.capabilitiesMu.Unlock()

	caps := make(map[string]interface{})
	if len(s.capabilities) > 0 {
		if err := json.Unmarshal(s.capabilities, &caps); err != nil {
			s.logger.Warnw("decoding capabilities", "error", err)
			return
		}
	}
	update(caps)

	raw, err := json.Marshal(caps)
	if err != nil {
		s.logger.Warnw("encoding capabilities", "error", err)
		return
	}
	s.capabilities = raw
}

func (s *session) workspaceFolder() protocol.WorkspaceFolder {
	return protocol.WorkspaceFolder{
		URI:  string(uri.File(s.workspaceRoot)),
		Name: filepath.Base(s.workspaceRoot),
	}
}
