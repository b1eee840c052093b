package factory

import (
	"fmt"
	"math/rand"

	"github.com/nikku/LSP/src/codeactions/entity"
	"go.lsp.dev/protocol"
)

// Range returns a random protocol.Range.
func Range() protocol.Range {
	start := protocol.Position{Line: uint32(rand.Intn(100)), Character: uint32(rand.Intn(100))}
	end := protocol.Position{Line: start.Line + uint32(rand.Intn(100)), Character: uint32(rand.Intn(100))}

	if start.Line == end.Line && start.Character > end.Character {
		end.Character = start.Character + uint32(rand.Intn(100))
	}

	return protocol.Range{
		Start: start,
		End:   end,
	}
}

// CodeAction returns a code action entry of the given kind carrying an empty edit.
func CodeAction(title string, kind string) entity.ActionEntry {
	return entity.ActionEntry{CodeAction: &protocol.CodeAction{
		Title: title,
		Kind:  protocol.CodeActionKind(kind),
		Edit:  &protocol.WorkspaceEdit{},
	}}
}

// DisabledCodeAction returns a code action entry that the server marked as disabled.
func DisabledCodeAction(title string, kind string) entity.ActionEntry {
	a := CodeAction(title, kind)
	a.CodeAction.Disabled = &protocol.CodeActionDisable{Reason: "not applicable"}
	return a
}

// Command returns a bare command entry.
func Command(title string) entity.ActionEntry {
	return entity.ActionEntry{Command: &protocol.Command{
		Title:   title,
		Command: fmt.Sprintf("cmd.%s", title),
	}}
}

// TextDocument returns a text document item for a file path.
func TextDocument(path string, languageID string, text string) protocol.TextDocumentItem {
	return protocol.TextDocumentItem{
		URI:        protocol.DocumentURI("file://" + path),
		LanguageID: protocol.LanguageIdentifier(languageID),
		Version:    1,
		Text:       text,
	}
}

// LanguageServerConfig returns an enabled server configuration attached to the given languages.
func LanguageServerConfig(name string, languages ...string) entity.LanguageServerConfig {
	return entity.LanguageServerConfig{
		Name:      name,
		Command:   name,
		Languages: languages,
		Enabled:   true,
	}
}
