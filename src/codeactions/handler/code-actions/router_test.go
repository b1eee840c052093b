package codeactions

import (
	"context"
	"testing"

	"github.com/nikku/LSP/src/codeactions/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

func TestHandleReq(t *testing.T) {
	f := newFixture(t)
	r := f.router(t)

	reply, replies := newReplier()
	request, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), "sampleMethod", []string{"val1", "val2"})
	err := r.HandleReq(context.Background(), reply, request)
	assert.Error(t, err)
	assert.ErrorIs(t, (<-replies).err, jsonrpc2.ErrMethodNotFound)

	assert.Equal(t, int64(1), f.scope.Snapshot().Counters()["testing.json_rpc.requests+method=sampleMethod"].Value())
}

func TestIgnoredNotifications(t *testing.T) {
	f := newFixture(t)
	r := f.router(t)

	for _, method := range []string{protocol.MethodCancelRequest, protocol.MethodTextDocumentWillSave} {
		reply, _ := newReplier()
		n, err := jsonrpc2.NewNotification(method, map[string]interface{}{})
		require.NoError(t, err)
		assert.NoError(t, r.HandleReq(context.Background(), reply, n), method)
	}
}

func TestUUID(t *testing.T) {
	sampleUUID := factory.UUID()
	m := jsonRPCRouter{uuid: sampleUUID}
	assert.Equal(t, sampleUUID, m.UUID())
}
