// Package diagnostics keeps the diagnostics language servers published for open documents.
package diagnostics

import (
	"context"
	"sort"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/nikku/LSP/src/codeactions/entity"
	hostclient "github.com/nikku/LSP/src/codeactions/gateway/host-client"
	"github.com/nikku/LSP/src/codeactions/internal/offsets"
	"github.com/uber-go/tally"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _nameKey = "diagnostics"

// Module provides the diagnostics controller.
var Module = fx.Provide(New)

//go:generate mockgen -source=diagnostics.go -destination=diagnosticsmock/diagnostics_mock.go -package=diagnosticsmock

// Controller stores diagnostics per window, document and session.
type Controller interface {
	// Publish records the diagnostics a session published and forwards the merged diagnostics of the
	// document to the host. current is the version of the open document, or 0 if it is not open.
	// It returns true if the diagnostics belong to the current version.
	Publish(ctx context.Context, window uuid.UUID, sessionName string, current int32, params *protocol.PublishDiagnosticsParams) (bool, error)
	// Intersecting returns the current diagnostics with an endpoint inside region, both endpoints included,
	// grouped by session in the order of sessionNames, and the region covering region and all of them.
	Intersecting(window uuid.UUID, query Query, region entity.Region) ([]entity.SessionDiagnostics, entity.Region)
	// TouchingPoint returns the current diagnostics containing pt whose severity is at most maxSeverity.
	TouchingPoint(window uuid.UUID, query Query, pt int, maxSeverity protocol.DiagnosticSeverity) ([]entity.SessionDiagnostics, entity.Region)
	// ClearDocument drops every diagnostic stored for a document.
	ClearDocument(window uuid.UUID, uri protocol.DocumentURI)
	// DisposeSession drops the diagnostics published by one session of a window.
	DisposeSession(window uuid.UUID, sessionName string)
	// DisposeWindow drops everything stored for a window.
	DisposeWindow(window uuid.UUID)
}

// Query identifies the state of an open document that diagnostics are looked up against.
type Query struct {
	URI          protocol.DocumentURI
	Version      int32
	Mapper       *offsets.Mapper
	SessionNames []string
}

// Params are inbound parameters to initialize the controller.
type Params struct {
	fx.In

	HostClient hostclient.Gateway
	Logger     *zap.SugaredLogger
	Stats      tally.Scope
}

type publication struct {
	version     int32
	diagnostics []protocol.Diagnostic
}

type diagnosticStore map[uuid.UUID]map[protocol.DocumentURI]map[string]publication

type controller struct {
	host          hostclient.Gateway
	logger        *zap.SugaredLogger
	diagnostics   diagnosticStore
	diagnosticsMu sync.Mutex
	published     tally.Counter
	stale         tally.Counter
}

// New creates a new diagnostics controller.
func New(p Params) Controller {
	stats := p.Stats.SubScope(_nameKey)
	return &controller{
		host:        p.HostClient,
		logger:      p.Logger.With("plugin", _nameKey),
		diagnostics: make(diagnosticStore),
		published:   stats.Counter("published"),
		stale:       stats.Counter("stale"),
	}
}

func (c *controller) Publish(ctx context.Context, window uuid.UUID, sessionName string, current int32, params *protocol.PublishDiagnosticsParams) (bool, error) {
	version := current
	if params.Version != 0 {
		version = int32(params.Version)
	}

	merged := c.store(window, params.URI, sessionName, publication{version: version, diagnostics: params.Diagnostics})
	c.published.Inc(int64(len(params.Diagnostics)))

	fresh := version == current
	if !fresh {
		c.stale.Inc(1)
	}

	c.logger.Debugf("Publishing %d diagnostics from %s for %s", len(params.Diagnostics), sessionName, params.URI)
	if err := c.host.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         params.URI,
		Diagnostics: merged,
	}); err != nil {
		return fresh, err
	}
	return fresh, nil
}

// store saves p and returns the diagnostics of every session for uri, sources filled in with the session name.
func (c *controller) store(window uuid.UUID, uri protocol.DocumentURI, sessionName string, p publication) []protocol.Diagnostic {
	c.diagnosticsMu.Lock()
	defer c.diagnosticsMu.Unlock()

	if _, ok := c.diagnostics[window]; !ok {
		c.diagnostics[window] = make(map[protocol.DocumentURI]map[string]publication)
	}
	if _, ok := c.diagnostics[window][uri]; !ok {
		c.diagnostics[window][uri] = make(map[string]publication)
	}
	c.diagnostics[window][uri][sessionName] = p

	names := make([]string, 0, len(c.diagnostics[window][uri]))
	for name := range c.diagnostics[window][uri] {
		names = append(names, name)
	}
	sort.Strings(names)

	merged := make([]protocol.Diagnostic, 0)
	for _, name := range names {
		for _, d := range c.diagnostics[window][uri][name].diagnostics {
			if d.Source == "" {
				d.Source = name
			}
			merged = append(merged, d)
		}
	}
	return merged
}

func (c *controller) Intersecting(window uuid.UUID, query Query, region entity.Region) ([]entity.SessionDiagnostics, entity.Region) {
	return c.collect(window, query, region, func(d protocol.Diagnostic, candidate entity.Region) bool {
		return region.Contains(candidate.Start) || region.Contains(candidate.End)
	})
}

func (c *controller) TouchingPoint(window uuid.UUID, query Query, pt int, maxSeverity protocol.DiagnosticSeverity) ([]entity.SessionDiagnostics, entity.Region) {
	return c.collect(window, query, entity.NewRegion(pt, pt), func(d protocol.Diagnostic, candidate entity.Region) bool {
		return severity(d) <= maxSeverity && candidate.Contains(pt)
	})
}

func (c *controller) collect(window uuid.UUID, query Query, region entity.Region, keep func(protocol.Diagnostic, entity.Region) bool) ([]entity.SessionDiagnostics, entity.Region) {
	c.diagnosticsMu.Lock()
	defer c.diagnosticsMu.Unlock()

	covering := region
	var result []entity.SessionDiagnostics
	for _, name := range query.SessionNames {
		p, ok := c.diagnostics[window][query.URI][name]
		if !ok || p.version != query.Version {
			continue
		}

		var matched []protocol.Diagnostic
		for _, d := range p.diagnostics {
			candidate, err := toRegion(query.Mapper, d.Range)
			if err != nil {
				c.logger.Debugw("skipping diagnostic outside of document", "uri", query.URI, "session", name, "error", err)
				continue
			}
			if keep(d, candidate) {
				covering = covering.Cover(candidate)
				matched = append(matched, d)
			}
		}
		if len(matched) > 0 {
			result = append(result, entity.SessionDiagnostics{SessionName: name, Diagnostics: matched})
		}
	}
	return result, covering
}

func (c *controller) ClearDocument(window uuid.UUID, uri protocol.DocumentURI) {
	c.diagnosticsMu.Lock()
	defer c.diagnosticsMu.Unlock()
	delete(c.diagnostics[window], uri)
}

func (c *controller) DisposeSession(window uuid.UUID, sessionName string) {
	c.diagnosticsMu.Lock()
	defer c.diagnosticsMu.Unlock()
	for _, sessions := range c.diagnostics[window] {
		delete(sessions, sessionName)
	}
}

func (c *controller) DisposeWindow(window uuid.UUID) {
	c.diagnosticsMu.Lock()
	defer c.diagnosticsMu.Unlock()
	delete(c.diagnostics, window)
}

func toRegion(m *offsets.Mapper, r protocol.Range) (entity.Region, error) {
	start, err := m.Offset(r.Start)
	if err != nil {
		return entity.Region{}, err
	}
	end, err := m.Offset(r.End)
	if err != nil {
		return entity.Region{}, err
	}
	return entity.NewRegion(start, end), nil
}

// severity treats a missing severity as an error.
func severity(d protocol.Diagnostic) protocol.DiagnosticSeverity {
	if d.Severity == 0 {
		return protocol.DiagnosticSeverityError
	}
	return d.Severity
}
