// Package settings resolves the code action kinds to run on save for a workspace.
package settings

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/nikku/LSP/src/codeactions/entity"
	"github.com/nikku/LSP/src/codeactions/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const _nameKey = "settings"

// Module provides the settings controller.
var Module = fx.Provide(New)

//go:generate mockgen -source=settings.go -destination=settingsmock/settings_mock.go -package=settingsmock

// Controller resolves on-save settings.
type Controller interface {
	// OnSaveConfig merges the configured defaults with the overrides of the project rooted at root.
	// Only keys in the source namespace are returned.
	OnSaveConfig(root string) entity.OnSaveConfig
}

// Params are inbound parameters to initialize the controller.
type Params struct {
	fx.In

	Config    config.Provider
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
	FS        fs.FileSystem
}

type projectSettings struct {
	CodeActionsOnSave map[string]bool `yaml:"codeActionsOnSave"`
}

type controller struct {
	defaults entity.OnSaveConfig
	fileName string
	fs       fs.FileSystem
	logger   *zap.SugaredLogger

	mu        sync.Mutex
	overrides map[string]entity.OnSaveConfig
	watcher   *fsnotify.Watcher
	watched   map[string]struct{}
	wg        sync.WaitGroup
}

// New creates a new settings controller.
func New(p Params) (Controller, error) {
	cfg := entity.CodeActionsConfig{}
	if err := p.Config.Get(entity.CodeActionsConfigKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting configuration for %q: %w", entity.CodeActionsConfigKey, err)
	}

	c := &controller{
		defaults:  cfg.OnSave,
		fileName:  cfg.ProjectSettingsFile,
		fs:        p.FS,
		logger:    p.Logger.With("plugin", _nameKey),
		overrides: make(map[string]entity.OnSaveConfig),
		watched:   make(map[string]struct{}),
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: c.stop,
	})
	return c, nil
}

func (c *controller) OnSaveConfig(root string) entity.OnSaveConfig {
	return entity.MergeOnSaveConfig(c.defaults, c.projectOverrides(root))
}

func (c *controller) projectOverrides(root string) entity.OnSaveConfig {
	if c.fileName == "" || root == "" {
		return nil
	}
	root = filepath.Clean(root)

	c.mu.Lock()
	defer c.mu.Unlock()

	if overrides, ok := c.overrides[root]; ok {
		return overrides
	}

	overrides, err := c.readOverrides(root)
	if err != nil {
		c.logger.Warnw("ignoring project settings", "root", root, "error", err)
	}
	c.overrides[root] = overrides

	if err := c.watchLocked(root); err != nil {
		c.logger.Warnw("project settings will not be reloaded", "root", root, "error", err)
	}
	return overrides
}

func (c *controller) readOverrides(root string) (entity.OnSaveConfig, error) {
	name := filepath.Join(root, c.fileName)
	exists, err := c.fs.FileExists(name)
	if err != nil || !exists {
		return nil, err
	}

	data, err := c.fs.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	settings := projectSettings{}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return settings.CodeActionsOnSave, nil
}

// watchLocked starts watching root for changes of the settings file. c.mu must be held.
func (c *controller) watchLocked(root string) error {
	if _, ok := c.watched[root]; ok {
		return nil
	}

	if c.watcher == nil {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create file system watcher: %w", err)
		}
		c.watcher = watcher

		c.wg.Add(1)
		go c.watchChanges(watcher)
	}

	if err := c.watcher.Add(root); err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	c.watched[root] = struct{}{}
	return nil
}

func (c *controller) watchChanges(watcher *fsnotify.Watcher) {
	defer c.wg.Done()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			c.consumeWatcherEvent(event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			c.logger.Errorf("project settings watcher error: %v", err)
		}
	}
}

func (c *controller) consumeWatcherEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != c.fileName {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	root := filepath.Dir(event.Name)
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.overrides, root)
	c.logger.Infow("project settings changed", "file", event.Name)
}

func (c *controller) stop(ctx context.Context) error {
	c.mu.Lock()
	watcher := c.watcher
	c.watcher = nil
	c.mu.Unlock()

	if watcher == nil {
		return nil
	}
	err := watcher.Close()
	c.wg.Wait()
	return err
}
