// Package app assembles the code actions daemon.
package app

import (
	"context"
	"time"

	"github.com/nikku/LSP/src/codeactions/gateway"
	"github.com/nikku/LSP/src/codeactions/handler"
	"github.com/nikku/LSP/src/codeactions/internal/clock"
	"github.com/nikku/LSP/src/codeactions/internal/core"
	"github.com/nikku/LSP/src/codeactions/internal/executor"
	"github.com/nikku/LSP/src/codeactions/internal/fs"
	"github.com/nikku/LSP/src/codeactions/internal/jsonrpcfx"
	"github.com/nikku/LSP/src/codeactions/internal/serverinfofile"
	"github.com/uber-go/tally"
	"go.uber.org/fx"
)

const _serviceName = "codeactions-daemon"

// Module defines the code actions daemon application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	jsonrpcfx.Module,
	fs.Module,
	executor.Module,
	serverinfofile.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(clock.New),
	fx.Provide(newScope),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        EnvLocal,
			RuntimeEnvironment: EnvLocal,
		}
	}),
	fx.Invoke(outputEnvironment),
)

func newScope(lc fx.Lifecycle) tally.Scope {
	rs, closer := tally.NewRootScope(tally.ScopeOptions{
		Tags: map[string]string{
			"service": _serviceName,
		},
	}, 1*time.Second)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return closer.Close()
		},
	})

	return rs
}
