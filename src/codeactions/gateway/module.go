// Package gateway provides the outbound clients of the daemon: the host editor and the language servers.
package gateway

import (
	hostclient "github.com/nikku/LSP/src/codeactions/gateway/host-client"
	languageserver "github.com/nikku/LSP/src/codeactions/gateway/language-server"
	"go.uber.org/fx"
)

// Module provides the gateways into an Fx application.
var Module = fx.Options(
	fx.Provide(hostclient.New),
	fx.Provide(languageserver.New),
)
