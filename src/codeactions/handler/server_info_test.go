package handler

import (
	"errors"
	"testing"

	"github.com/nikku/LSP/src/codeactions/controller/lifecycle"
	"github.com/nikku/LSP/src/codeactions/internal/serverinfofile/serverinfofilemock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestOutputServerInfo(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(m *serverinfofilemock.MockServerInfoFile)
		wantErr    bool
	}{
		{
			name: "fields written",
			setupMocks: func(m *serverinfofilemock.MockServerInfoFile) {
				gomock.InOrder(
					m.EXPECT().UpdateField(_infoKeyName, lifecycle.ServerName).Return(nil),
					m.EXPECT().UpdateField(_infoKeyExtensions, "codeActions/selectionChanged,codeActions/run,codeActions/available").Return(nil),
				)
			},
		},
		{
			name: "name fails",
			setupMocks: func(m *serverinfofilemock.MockServerInfoFile) {
				m.EXPECT().UpdateField(_infoKeyName, gomock.Any()).Return(errors.New("read-only"))
			},
			wantErr: true,
		},
		{
			name: "extensions fail",
			setupMocks: func(m *serverinfofilemock.MockServerInfoFile) {
				m.EXPECT().UpdateField(_infoKeyName, gomock.Any()).Return(nil)
				m.EXPECT().UpdateField(_infoKeyExtensions, gomock.Any()).Return(errors.New("read-only"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			infofile := serverinfofilemock.NewMockServerInfoFile(ctrl)
			tt.setupMocks(infofile)

			err := outputServerInfo(infofile)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
