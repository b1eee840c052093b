package onsave

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nikku/LSP/src/codeactions/controller/settings/settingsmock"
	"github.com/nikku/LSP/src/codeactions/entity"
	"github.com/nikku/LSP/src/codeactions/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestController(t *testing.T, settingsCtrl *settingsmock.MockController, timeoutMs int) (*controller, *fxtest.Lifecycle, tally.TestScope) {
	p, err := config.NewStaticProvider(map[string]interface{}{
		"codeActions": map[string]interface{}{
			"onSaveTimeoutMs": timeoutMs,
		},
	})
	require.NoError(t, err)

	lc := fxtest.NewLifecycle(t)
	scope := tally.NewTestScope("testing", make(map[string]string, 0))
	c, err := New(Params{
		Config:    p,
		Lifecycle: lc,
		Logger:    zap.NewNop().Sugar(),
		Stats:     scope,
		Settings:  settingsCtrl,
		Clock:     clock.New(),
	})
	require.NoError(t, err)
	return c.(*controller), lc, scope
}

func TestNew(t *testing.T) {
	p, _ := config.NewStaticProvider(map[string]interface{}{"codeActions": "bad"})
	_, err := New(Params{
		Config:    p,
		Lifecycle: fxtest.NewLifecycle(t),
		Logger:    zap.NewNop().Sugar(),
		Stats:     tally.NoopScope,
		Clock:     clock.New(),
	})
	assert.Error(t, err)
}

func TestWillSave(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing enabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		settingsCtrl := settingsmock.NewMockController(ctrl)
		settingsCtrl.EXPECT().OnSaveConfig("/repo").Return(entity.OnSaveConfig{})

		c, lc, _ := newTestController(t, settingsCtrl, 1000)
		defer lc.RequireStart().RequireStop()

		f := newFixture(t)
		assert.Equal(t, Idle, c.WillSave(ctx, f.doc, "/repo"))
	})

	t.Run("actions settle before the deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		settingsCtrl := settingsmock.NewMockController(ctrl)
		settingsCtrl.EXPECT().OnSaveConfig("/repo").Return(_onSave)

		c, lc, _ := newTestController(t, settingsCtrl, 5000)
		defer lc.RequireStart().RequireStop()

		f := newFixture(t)
		f.versions(1)
		f.requester.EXPECT().RequestOnSave(gomock.Any(), _onSave).Return(fixAll(), nil)
		f.session.EXPECT().RunAction(gomock.Any(), gomock.Any()).Return(nil)

		assert.Equal(t, Done, c.WillSave(ctx, f.doc, "/repo"))
		c.wg.Wait()
		assert.Empty(t, c.pending)
	})

	t.Run("deadline cancels the task", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		settingsCtrl := settingsmock.NewMockController(ctrl)
		settingsCtrl.EXPECT().OnSaveConfig("/repo").Return(_onSave)

		c, lc, scope := newTestController(t, settingsCtrl, 20)
		defer lc.RequireStart().RequireStop()

		f := newFixture(t)
		f.versions(1)
		release := make(chan struct{})
		f.requester.EXPECT().RequestOnSave(gomock.Any(), _onSave).DoAndReturn(
			func(context.Context, entity.OnSaveConfig) (entity.AggregateResult, error) {
				<-release
				return fixAll(), nil
			})
		// The task observes the cancellation once the request settles and never applies.
		f.session.EXPECT().RunAction(gomock.Any(), gomock.Any()).Times(0)

		start := time.Now()
		assert.Equal(t, Cancelled, c.WillSave(ctx, f.doc, "/repo"))
		assert.Less(t, time.Since(start), 5*time.Second)

		c.mu.Lock()
		task := c.pending["7"]
		c.mu.Unlock()
		require.NotNil(t, task)

		close(release)
		c.wg.Wait()
		assert.Equal(t, Cancelled, task.State())

		counters := scope.Snapshot().Counters()
		assert.Equal(t, int64(1), counters["testing.on_save.timeouts+"].Value())
	})

	t.Run("saving again cancels the previous save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		settingsCtrl := settingsmock.NewMockController(ctrl)
		settingsCtrl.EXPECT().OnSaveConfig("/repo").Return(_onSave).Times(2)

		c, lc, _ := newTestController(t, settingsCtrl, 200)
		defer lc.RequireStart().RequireStop()

		f := newFixture(t)
		f.versions(1)
		release := make(chan struct{})
		var calls atomic.Int32
		f.requester.EXPECT().RequestOnSave(gomock.Any(), _onSave).DoAndReturn(
			func(context.Context, entity.OnSaveConfig) (entity.AggregateResult, error) {
				if calls.Add(1) == 1 {
					<-release
				}
				return entity.AggregateResult{}, nil
			}).Times(2)

		assert.Equal(t, Cancelled, c.WillSave(ctx, f.doc, "/repo"))
		c.mu.Lock()
		previous := c.pending["7"]
		c.mu.Unlock()

		assert.Equal(t, Done, c.WillSave(ctx, f.doc, "/repo"))
		close(release)
		c.wg.Wait()
		assert.Equal(t, Cancelled, previous.State())
	})
}
