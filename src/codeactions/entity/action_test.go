package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
)

func TestActionEntryUnmarshal(t *testing.T) {
	t.Run("command", func(t *testing.T) {
		var a ActionEntry
		require.NoError(t, json.Unmarshal([]byte(`{"title":"Run tests","command":"go.test","arguments":[1]}`), &a))
		assert.True(t, a.IsCommand())
		assert.Equal(t, "Run tests", a.Title())
		assert.Equal(t, "", a.Kind())
		assert.False(t, a.IsDisabled())
		assert.Equal(t, "go.test", a.Command.Command)
	})

	t.Run("code action with nested command", func(t *testing.T) {
		var a ActionEntry
		require.NoError(t, json.Unmarshal([]byte(`{"title":"Fix","kind":"quickfix","command":{"title":"Fix","command":"fix"}}`), &a))
		assert.False(t, a.IsCommand())
		assert.Equal(t, "quickfix", a.Kind())
		require.NotNil(t, a.CodeAction.Command)
		assert.Equal(t, "fix", a.CodeAction.Command.Command)
	})

	t.Run("disabled code action", func(t *testing.T) {
		var a ActionEntry
		require.NoError(t, json.Unmarshal([]byte(`{"title":"Extract","kind":"refactor.extract","disabled":{"reason":"no selection"}}`), &a))
		assert.True(t, a.IsDisabled())
	})

	t.Run("invalid", func(t *testing.T) {
		var a ActionEntry
		assert.Error(t, json.Unmarshal([]byte(`["not", "an", "action"]`), &a))
	})
}

func TestActionEntryMarshal(t *testing.T) {
	cmd := ActionEntry{Command: &protocol.Command{Title: "Run", Command: "run"}}
	b, err := json.Marshal(cmd)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Run","command":"run"}`, string(b))

	_, err = json.Marshal(ActionEntry{})
	assert.Error(t, err)
}

func TestAggregateResult(t *testing.T) {
	a1 := ActionEntry{CodeAction: &protocol.CodeAction{Title: "one", IsPreferred: true}}
	a2 := ActionEntry{Command: &protocol.Command{Title: "two"}}
	a3 := ActionEntry{CodeAction: &protocol.CodeAction{Title: "three"}}
	r := AggregateResult{
		{SessionName: "a", Actions: []ActionEntry{a1, a2}},
		{SessionName: "b", Actions: []ActionEntry{a3}},
	}

	assert.Equal(t, 3, r.Count())
	assert.Equal(t, []SessionAction{
		{SessionName: "a", Action: a1},
		{SessionName: "a", Action: a2},
		{SessionName: "b", Action: a3},
	}, r.Flatten())
	assert.True(t, a1.IsPreferred())
	assert.False(t, a2.IsPreferred())
	assert.Empty(t, AggregateResult{}.Flatten())
}
