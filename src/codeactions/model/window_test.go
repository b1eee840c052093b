package model

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestWindow(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	m := Window{UUID: id, WorkspaceRoot: "/home/user/project"}
	assert.Equal(t, id, m.UUID)
	assert.Equal(t, "/home/user/project", m.WorkspaceRoot)
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
