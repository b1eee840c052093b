package codeactions

import (
	"slices"

	"github.com/nikku/LSP/src/codeactions/entity"
	"go.lsp.dev/protocol"
)

// interactiveFilter keeps entries matching only, plus commands. Without only, automatic requests
// keep commands, kind-less actions and quick fixes while manual requests keep everything.
func interactiveFilter(only []string, manual bool) responseFilter {
	return func(_ entity.Session, actions []entity.ActionEntry) []entity.ActionEntry {
		if len(only) == 0 && manual {
			return actions
		}

		kept := make([]entity.ActionEntry, 0, len(actions))
		for _, a := range actions {
			if keepInteractive(a, only) {
				kept = append(kept, a)
			}
		}
		return kept
	}
}

func keepInteractive(a entity.ActionEntry, only []string) bool {
	if a.IsCommand() {
		return true
	}
	if len(only) > 0 {
		return entity.KindsIncludeKind(only, a.Kind())
	}
	return a.Kind() == "" || entity.KindsIncludeKind([]string{string(protocol.QuickFix)}, a.Kind())
}

// onSaveFilter keeps entries whose kind is exactly one of the kinds resolved for their session.
// Servers that ignore the requested kinds may answer with a superset.
func onSaveFilter(kindsBySession map[string][]string) responseFilter {
	return func(s entity.Session, actions []entity.ActionEntry) []entity.ActionEntry {
		kinds := kindsBySession[s.Name()]
		kept := make([]entity.ActionEntry, 0, len(actions))
		for _, a := range actions {
			if a.Kind() != "" && slices.Contains(kinds, a.Kind()) {
				kept = append(kept, a)
			}
		}
		return kept
	}
}
