// Package handler provides the inbound side of the daemon into an Fx application.
package handler

import (
	controller "github.com/nikku/LSP/src/codeactions/controller"
	"github.com/nikku/LSP/src/codeactions/controller/lifecycle"
	handler "github.com/nikku/LSP/src/codeactions/handler/code-actions"
	"github.com/nikku/LSP/src/codeactions/repository/session"
	"github.com/nikku/LSP/src/codeactions/repository/window"
	"go.uber.org/fx"
)

// Module provides the code actions daemon server into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(session.New),
	fx.Provide(window.New),
	fx.Provide(handler.New),
	fx.Invoke(outputServerInfo),
	fx.Invoke(func(h handler.Handler) {}),
	fx.Invoke(func(c lifecycle.Controller) {}),
)
