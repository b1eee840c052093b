package entity

import "time"

// CodeActionsConfigKey is the key that contains the code action settings.
const CodeActionsConfigKey = "codeActions"

// LanguageServersConfigKey is the key that lists the language servers to launch for each window.
const LanguageServersConfigKey = "languageServers"

const (
	_defaultDebounce        = 800 * time.Millisecond
	_defaultRequestTimeout  = 5 * time.Second
	_defaultOnSaveTimeout   = 2 * time.Second
	_defaultOnSaveMaxCycles = 10
)

// CodeActionsConfig defines the properties and types of the code action settings.
type CodeActionsConfig struct {
	DebounceMs          int             `yaml:"debounceMs"`
	RequestTimeoutMs    int             `yaml:"requestTimeoutMs"`
	OnSave              map[string]bool `yaml:"onSave"`
	OnSaveTimeoutMs     int             `yaml:"onSaveTimeoutMs"`
	OnSaveMaxCycles     int             `yaml:"onSaveMaxCycles"`
	ProjectSettingsFile string          `yaml:"projectSettingsFile"`
}

// Debounce is how long a selection must stay unchanged before actions are requested for it.
func (c CodeActionsConfig) Debounce() time.Duration {
	return durationOrDefault(c.DebounceMs, _defaultDebounce)
}

// RequestTimeout bounds a single code action aggregation.
func (c CodeActionsConfig) RequestTimeout() time.Duration {
	return durationOrDefault(c.RequestTimeoutMs, _defaultRequestTimeout)
}

// OnSaveTimeout is the time the host grants for running actions before saving.
func (c CodeActionsConfig) OnSaveTimeout() time.Duration {
	return durationOrDefault(c.OnSaveTimeoutMs, _defaultOnSaveTimeout)
}

// MaxOnSaveCycles caps the number of resolve and apply cycles of one save.
func (c CodeActionsConfig) MaxOnSaveCycles() int {
	if c.OnSaveMaxCycles <= 0 {
		return _defaultOnSaveMaxCycles
	}
	return c.OnSaveMaxCycles
}

func durationOrDefault(ms int, def time.Duration) time.Duration {
	if ms <= 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
