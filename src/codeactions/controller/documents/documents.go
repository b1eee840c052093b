// Package documents tracks the documents open in each window and drives automatic code action requests for them.
package documents

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	codeactions "github.com/nikku/LSP/src/codeactions/controller/code-actions"
	"github.com/nikku/LSP/src/codeactions/controller/diagnostics"
	onsave "github.com/nikku/LSP/src/codeactions/controller/on-save"
	"github.com/nikku/LSP/src/codeactions/controller/selector"
	"github.com/nikku/LSP/src/codeactions/entity"
	hostclient "github.com/nikku/LSP/src/codeactions/gateway/host-client"
	"github.com/nikku/LSP/src/codeactions/internal/clock"
	caerrors "github.com/nikku/LSP/src/codeactions/internal/errors"
	"github.com/nikku/LSP/src/codeactions/mapper"
	"github.com/nikku/LSP/src/codeactions/repository/session"
	"github.com/nikku/LSP/src/codeactions/repository/window"
	"github.com/uber-go/tally"
	"go.lsp.dev/protocol"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _nameKey = "documents"

// Module provides the documents controller.
var Module = fx.Provide(New)

//go:generate mockgen -source=documents.go -destination=documentsmock/documents_mock.go -package=documentsmock

// Controller keeps the state of open documents and answers the document related requests of the host.
type Controller interface {
	DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error
	DidChange(ctx context.Context, params *entity.DidChangeParams) error
	DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error
	DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error
	// WillSaveWaitUntil runs the code actions on save and returns once they settled or timed out.
	// Edits are applied through workspace/applyEdit, so the returned list is always empty.
	WillSaveWaitUntil(ctx context.Context, params *protocol.WillSaveTextDocumentParams) ([]protocol.TextEdit, error)

	// SelectionChanged stores the selection and schedules an automatic request once it is stable.
	SelectionChanged(ctx context.Context, params *entity.SelectionChangedParams) error
	// RunCodeActions lets the user pick a code action at the current selection and runs it.
	RunCodeActions(ctx context.Context, params *entity.RunCodeActionsParams) error

	// PublishDiagnostics stores diagnostics published by a session of window.
	PublishDiagnostics(ctx context.Context, window uuid.UUID, sessionName string, params *protocol.PublishDiagnosticsParams)
	// AttachSession opens every matching document of window in s.
	AttachSession(ctx context.Context, window uuid.UUID, s entity.Session)
	// DetachSession forgets the session in every document of window.
	DetachSession(ctx context.Context, window uuid.UUID, sessionName string)
	// CloseWindow drops every document of window.
	CloseWindow(ctx context.Context, window uuid.UUID)
}

// Params are inbound parameters to initialize the controller.
type Params struct {
	fx.In

	Config      config.Provider
	Lifecycle   fx.Lifecycle
	Logger      *zap.SugaredLogger
	Stats       tally.Scope
	Clock       clock.Clock
	Windows     window.Repository
	Sessions    session.Repository
	HostClient  hostclient.Gateway
	Diagnostics diagnostics.Controller
	CodeActions codeactions.Controller
	OnSave      onsave.Controller
	Selector    selector.Controller
}

type documentStore map[uuid.UUID]map[protocol.DocumentURI]*document

type controller struct {
	logger      *zap.SugaredLogger
	clock       clock.Clock
	debounce    time.Duration
	windows     window.Repository
	sessions    session.Repository
	hostClient  hostclient.Gateway
	diagnostics diagnostics.Controller
	codeActions codeactions.Controller
	onSave      onsave.Controller
	selector    selector.Controller

	automaticRuns tally.Counter
	available     tally.Counter
	openDocuments tally.Gauge

	mu        sync.RWMutex
	documents documentStore
	stopped   bool
	wg        sync.WaitGroup
}

// New creates a new documents controller.
func New(p Params) (Controller, error) {
	cfg := entity.CodeActionsConfig{}
	if err := p.Config.Get(entity.CodeActionsConfigKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting configuration for %q: %w", entity.CodeActionsConfigKey, err)
	}

	stats := p.Stats.SubScope("documents")
	c := &controller{
		logger:        p.Logger.With("plugin", _nameKey),
		clock:         p.Clock,
		debounce:      cfg.Debounce(),
		windows:       p.Windows,
		sessions:      p.Sessions,
		hostClient:    p.HostClient,
		diagnostics:   p.Diagnostics,
		codeActions:   p.CodeActions,
		onSave:        p.OnSave,
		selector:      p.Selector,
		automaticRuns: stats.Counter("automatic_runs"),
		available:     stats.Counter("available_notifications"),
		openDocuments: stats.Gauge("open"),
		documents:     make(documentStore),
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: c.stop,
	})
	return c, nil
}

func (c *controller) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	id, err := mapper.ContextToWindowUUID(ctx)
	if err != nil {
		return err
	}
	if params.TextDocument.URI == "" {
		return caerrors.NoDocumentOnWireError
	}

	doc := newDocument(id, params.TextDocument, c.diagnostics)
	doc.requester = c.codeActions.NewRequester(doc)

	c.mu.Lock()
	if _, ok := c.documents[id]; !ok {
		c.documents[id] = make(map[protocol.DocumentURI]*document)
	}
	if previous, ok := c.documents[id][doc.uri]; ok {
		previous.stopTimer()
	}
	c.documents[id][doc.uri] = doc
	c.updateMetricsLocked()
	c.mu.Unlock()

	sessions, err := c.sessions.GetAll(ctx, id)
	if err != nil {
		return fmt.Errorf("getting sessions: %w", err)
	}
	for _, s := range sessions {
		c.open(ctx, doc, s)
	}
	return nil
}

// open attaches s to doc when it serves the document's language.
func (c *controller) open(ctx context.Context, doc *document, s entity.Session) {
	if !s.Config().AttachesTo(doc.languageID) || !doc.attach(s) {
		return
	}
	if err := s.DidOpen(ctx, &protocol.DidOpenTextDocumentParams{TextDocument: doc.item()}); err != nil {
		c.logger.Warnw("forwarding didOpen", "session", s.Name(), "document", doc.uri, "error", err)
	}
}

func (c *controller) DidChange(ctx context.Context, params *entity.DidChangeParams) error {
	doc, err := c.get(ctx, params.TextDocument.URI)
	if err != nil {
		return err
	}

	before, after, err := doc.applyChanges(params.TextDocument.Version, params.ContentChanges)
	if err != nil {
		return fmt.Errorf("applying changes to %q: %w", doc.uri, err)
	}

	change := &entity.TextChange{
		TextDocument: doc.versioned(),
		Before:       before,
		After:        after,
	}
	for _, s := range doc.Sessions("") {
		if err := s.DidChange(ctx, change); err != nil {
			c.logger.Warnw("forwarding didChange", "session", s.Name(), "document", doc.uri, "error", err)
		}
	}
	return nil
}

func (c *controller) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	id, err := mapper.ContextToWindowUUID(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	doc, ok := c.documents[id][params.TextDocument.URI]
	if ok {
		delete(c.documents[id], params.TextDocument.URI)
		c.updateMetricsLocked()
	}
	c.mu.Unlock()
	if !ok {
		return &caerrors.DocumentNotFoundError{Document: params.TextDocument.URI}
	}

	doc.stopTimer()
	for _, s := range doc.Sessions("") {
		if err := s.DidClose(ctx, params); err != nil {
			c.logger.Warnw("forwarding didClose", "session", s.Name(), "document", doc.uri, "error", err)
		}
	}
	c.diagnostics.ClearDocument(id, doc.uri)
	return nil
}

func (c *controller) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	doc, err := c.get(ctx, params.TextDocument.URI)
	if err != nil {
		return err
	}
	for _, s := range doc.Sessions("") {
		if err := s.DidSave(ctx, params); err != nil {
			c.logger.Warnw("forwarding didSave", "session", s.Name(), "document", doc.uri, "error", err)
		}
	}
	return nil
}

func (c *controller) WillSaveWaitUntil(ctx context.Context, params *protocol.WillSaveTextDocumentParams) ([]protocol.TextEdit, error) {
	w, err := c.windows.GetFromContext(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := c.get(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	state := c.onSave.WillSave(ctx, doc, w.WorkspaceRoot)
	c.logger.Debugw("code actions on save finished", "document", doc.uri, "state", state.String())
	return []protocol.TextEdit{}, nil
}

func (c *controller) SelectionChanged(ctx context.Context, params *entity.SelectionChangedParams) error {
	if params.Region == nil {
		return caerrors.NoRegionOnWireError
	}
	doc, err := c.get(ctx, params.TextDocument.URI)
	if err != nil {
		return err
	}

	region := entity.NewRegion(params.Region.Start, params.Region.End)
	if doc.setSelection(region) {
		c.schedule(doc, region)
	}
	return nil
}

func (c *controller) RunCodeActions(ctx context.Context, params *entity.RunCodeActionsParams) error {
	doc, err := c.get(ctx, params.TextDocument.URI)
	if err != nil {
		return err
	}
	if len(params.Actions) > 0 {
		return c.selector.Handle(ctx, doc, params.Actions, true)
	}
	return c.selector.Run(ctx, doc, params.Only)
}

func (c *controller) PublishDiagnostics(ctx context.Context, window uuid.UUID, sessionName string, params *protocol.PublishDiagnosticsParams) {
	c.mu.RLock()
	doc, open := c.documents[window][params.URI]
	c.mu.RUnlock()

	var current int32
	if open {
		current = doc.Version()
	}

	fresh, err := c.diagnostics.Publish(ctx, window, sessionName, current, params)
	if err != nil {
		c.logger.Warnw("publishing diagnostics", "session", sessionName, "document", params.URI, "error", err)
	}
	if !fresh || !open {
		return
	}

	// New diagnostics may widen the region code actions are requested for.
	if region, ok := doc.Selection(); ok {
		c.schedule(doc, region)
	}
}

func (c *controller) AttachSession(ctx context.Context, window uuid.UUID, s entity.Session) {
	for _, doc := range c.windowDocuments(window) {
		c.open(ctx, doc, s)
	}
}

func (c *controller) DetachSession(ctx context.Context, window uuid.UUID, sessionName string) {
	for _, doc := range c.windowDocuments(window) {
		doc.detach(sessionName)
	}
	c.diagnostics.DisposeSession(window, sessionName)
}

func (c *controller) CloseWindow(ctx context.Context, window uuid.UUID) {
	c.mu.Lock()
	docs := c.documents[window]
	delete(c.documents, window)
	c.updateMetricsLocked()
	c.mu.Unlock()

	for _, doc := range docs {
		doc.stopTimer()
	}
	c.diagnostics.DisposeWindow(window)
}

// schedule requests code actions for region once the selection stayed on it for the debounce delay.
func (c *controller) schedule(doc *document, region entity.Region) {
	doc.replaceTimer(c.clock.AfterFunc(c.debounce, func() {
		c.mu.Lock()
		if c.stopped {
			c.mu.Unlock()
			return
		}
		c.wg.Add(1)
		c.mu.Unlock()
		defer c.wg.Done()

		c.requestAutomatic(doc, region)
	}))
}

func (c *controller) requestAutomatic(doc *document, region entity.Region) {
	if current, ok := doc.Selection(); !ok || current != region {
		return
	}

	ctx := context.WithValue(context.Background(), entity.WindowContextKey, doc.window)
	version := doc.Version()
	diags, covering := doc.DiagnosticsIntersecting(region)

	c.automaticRuns.Inc(1)
	result, err := doc.CodeActions().RequestForRegion(ctx, covering, diags, nil, false)
	if err != nil {
		c.logger.Warnw("requesting code actions", "document", doc.uri, "region", region.String(), "error", err)
		return
	}
	if result.Count() == 0 {
		return
	}

	// Results for a selection or text the user already moved away from are dropped.
	if current, ok := doc.Selection(); !ok || current != region || doc.Version() != version {
		return
	}

	c.available.Inc(1)
	if err := c.hostClient.NotifyCodeActionsAvailable(ctx, &entity.CodeActionsAvailableParams{
		TextDocument: doc.hostIdentifier(),
		Region:       region,
		Actions:      result,
	}); err != nil {
		c.logger.Warnw("notifying available code actions", "document", doc.uri, "error", err)
	}
}

func (c *controller) get(ctx context.Context, uri protocol.DocumentURI) (*document, error) {
	id, err := mapper.ContextToWindowUUID(ctx)
	if err != nil {
		return nil, err
	}
	if uri == "" {
		return nil, caerrors.NoDocumentOnWireError
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	docs, ok := c.documents[id]
	if !ok {
		return nil, &caerrors.UUIDNotFoundError{UUID: id}
	}
	doc, ok := docs[uri]
	if !ok {
		return nil, &caerrors.DocumentNotFoundError{Document: uri}
	}
	return doc, nil
}

func (c *controller) windowDocuments(window uuid.UUID) []*document {
	c.mu.RLock()
	defer c.mu.RUnlock()

	docs := make([]*document, 0, len(c.documents[window]))
	for _, doc := range c.documents[window] {
		docs = append(docs, doc)
	}
	return docs
}

func (c *controller) updateMetricsLocked() {
	total := 0
	for _, docs := range c.documents {
		total += len(docs)
	}
	c.openDocuments.Update(float64(total))
}

func (c *controller) stop(ctx context.Context) error {
	c.mu.Lock()
	c.stopped = true
	for _, docs := range c.documents {
		for _, doc := range docs {
			doc.stopTimer()
		}
	}
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
