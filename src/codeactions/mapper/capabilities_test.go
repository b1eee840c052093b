package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const _sampleCapabilities = `{
	"codeActionProvider": {"codeActionKinds": ["quickfix", "source.organizeImports", 5], "resolveProvider": true},
	"hoverProvider": false,
	"renameProvider": null,
	"textDocumentSync": 2
}`

func TestHasCapability(t *testing.T) {
	caps := []byte(_sampleCapabilities)
	tests := []struct {
		path string
		want bool
	}{
		{path: "codeActionProvider", want: true},
		{path: "codeActionProvider.resolveProvider", want: true},
		{path: "textDocumentSync", want: true},
		{path: "hoverProvider", want: false},
		{path: "renameProvider", want: false},
		{path: "definitionProvider", want: false},
		{path: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, HasCapability(caps, tt.path))
		})
	}

	assert.False(t, HasCapability(nil, "codeActionProvider"))
}

func TestCapabilityValue(t *testing.T) {
	caps := []byte(_sampleCapabilities)

	v, ok := CapabilityValue(caps, "textDocumentSync")
	assert.True(t, ok)
	assert.Equal(t, float64(2), v)

	v, ok = CapabilityValue(caps, "codeActionProvider.resolveProvider")
	assert.True(t, ok)
	assert.Equal(t, true, v)

	_, ok = CapabilityValue(caps, "renameProvider")
	assert.False(t, ok)

	_, ok = CapabilityValue(caps, "missing.path")
	assert.False(t, ok)
}

func TestCapabilityStrings(t *testing.T) {
	caps := []byte(_sampleCapabilities)
	assert.Equal(t, []string{"quickfix", "source.organizeImports"}, CapabilityStrings(caps, "codeActionProvider.codeActionKinds"))
	assert.Nil(t, CapabilityStrings(caps, "codeActionProvider"))
	assert.Nil(t, CapabilityStrings(caps, "missing"))
}
