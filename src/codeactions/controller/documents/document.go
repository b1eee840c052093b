package documents

import (
	"slices"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/nikku/LSP/src/codeactions/controller/diagnostics"
	"github.com/nikku/LSP/src/codeactions/entity"
	"github.com/nikku/LSP/src/codeactions/internal/clock"
	"github.com/nikku/LSP/src/codeactions/internal/offsets"
	"go.lsp.dev/protocol"
)

// document is one open text document of a window.
type document struct {
	id          string
	window      uuid.UUID
	uri         protocol.DocumentURI
	languageID  protocol.LanguageIdentifier
	diagnostics diagnostics.Controller
	requester   entity.CodeActionRequester

	mu sync.RWMutex

	// version counts mutations and is what servers see; hostVersion is the
	// last version the host sent and may repeat.
	version     int32
	hostVersion int32
	text        string
	mapper      *offsets.Mapper
	selection   *entity.Region
	sessions    []entity.Session
	timer       clock.Timer
}

func newDocument(window uuid.UUID, item protocol.TextDocumentItem, store diagnostics.Controller) *document {
	return &document{
		id:          uuid.Must(uuid.NewV4()).String(),
		window:      window,
		uri:         item.URI,
		languageID:  item.LanguageID,
		diagnostics: store,
		version:     item.Version,
		hostVersion: item.Version,
		text:        item.Text,
		mapper:      offsets.New(item.Text),
	}
}

func (d *document) Identifier() protocol.TextDocumentIdentifier {
	return protocol.TextDocumentIdentifier{URI: d.uri}
}

func (d *document) ID() string {
	return d.id
}

func (d *document) Version() int32 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.version
}

func (d *document) Selection() (entity.Region, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.selection == nil {
		return entity.Region{}, false
	}
	return *d.selection, true
}

func (d *document) EntireRegion() entity.Region {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return entity.Region{Start: 0, End: len(d.text)}
}

func (d *document) RegionToRange(region entity.Region) protocol.Range {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.mapper.Range(region.Start, region.End)
}

func (d *document) Sessions(capability string) []entity.Session {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var result []entity.Session
	for _, s := range d.sessions {
		if capability == "" || s.HasCapability(capability) {
			result = append(result, s)
		}
	}
	return result
}

func (d *document) SessionByName(name string, capability string) (entity.Session, bool) {
	for _, s := range d.Sessions(capability) {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

func (d *document) DiagnosticsIntersecting(region entity.Region) ([]entity.SessionDiagnostics, entity.Region) {
	return d.diagnostics.Intersecting(d.window, d.query(), region)
}

func (d *document) CodeActions() entity.CodeActionRequester {
	return d.requester
}

func (d *document) query() diagnostics.Query {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.sessions))
	for _, s := range d.sessions {
		names = append(names, s.Name())
	}
	return diagnostics.Query{
		URI:          d.uri,
		Version:      d.version,
		Mapper:       d.mapper,
		SessionNames: names,
	}
}

// item returns the document as sent to a language server on open.
func (d *document) item() protocol.TextDocumentItem {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return protocol.TextDocumentItem{
		URI:        d.uri,
		LanguageID: d.languageID,
		Version:    d.version,
		Text:       d.text,
	}
}

func (d *document) versioned() protocol.VersionedTextDocumentIdentifier {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return protocol.VersionedTextDocumentIdentifier{
		TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: d.uri},
		Version:                d.version,
	}
}

// hostIdentifier identifies the document with the version the host last sent.
func (d *document) hostIdentifier() protocol.VersionedTextDocumentIdentifier {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return protocol.VersionedTextDocumentIdentifier{
		TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: d.uri},
		Version:                d.hostVersion,
	}
}

// attach adds s unless a session with the same name is attached already.
func (d *document) attach(s entity.Session) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if slices.ContainsFunc(d.sessions, func(existing entity.Session) bool { return existing.Name() == s.Name() }) {
		return false
	}
	d.sessions = append(d.sessions, s)
	return true
}

func (d *document) detach(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sessions = slices.DeleteFunc(d.sessions, func(s entity.Session) bool { return s.Name() == name })
}

// applyChanges applies the host's changes and returns the text before and after
// them. Every successful call bumps Version regardless of hostVersion.
func (d *document) applyChanges(hostVersion int32, changes []entity.ContentChange) (string, string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	before := d.text
	text := before
	for _, change := range changes {
		if change.Range == nil {
			text = change.Text
			continue
		}
		m := offsets.New(text)
		start, err := m.Offset(change.Range.Start)
		if err != nil {
			return "", "", err
		}
		end, err := m.Offset(change.Range.End)
		if err != nil {
			return "", "", err
		}
		if end < start {
			start, end = end, start
		}
		text = text[:start] + change.Text + text[end:]
	}

	d.text = text
	d.mapper = offsets.New(text)
	d.version++
	d.hostVersion = hostVersion
	return before, text, nil
}

// setSelection stores region and reports whether it differs from the stored one.
func (d *document) setSelection(region entity.Region) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.selection != nil && *d.selection == region {
		return false
	}
	d.selection = &region
	return true
}

// replaceTimer stops the pending automatic request, if any, and stores t in its place.
func (d *document) replaceTimer(t clock.Timer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = t
}

func (d *document) stopTimer() {
	d.replaceTimer(nil)
}
