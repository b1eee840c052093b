// Package controller aggregates the business logic of the daemon.
package controller

import (
	codeactions "github.com/nikku/LSP/src/codeactions/controller/code-actions"
	"github.com/nikku/LSP/src/codeactions/controller/diagnostics"
	"github.com/nikku/LSP/src/codeactions/controller/documents"
	"github.com/nikku/LSP/src/codeactions/controller/lifecycle"
	onsave "github.com/nikku/LSP/src/codeactions/controller/on-save"
	"github.com/nikku/LSP/src/codeactions/controller/selector"
	"github.com/nikku/LSP/src/codeactions/controller/settings"
	"go.uber.org/fx"
)

// Module provides every controller into an Fx application.
var Module = fx.Options(
	lifecycle.Module,
	documents.Module,
	codeactions.Module,
	diagnostics.Module,
	onsave.Module,
	selector.Module,
	settings.Module,
)
