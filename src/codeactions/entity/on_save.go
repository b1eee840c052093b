package entity

import "strings"

// OnSaveKindPrefix is the only kind namespace eligible for running on save.
const OnSaveKindPrefix = "source."

// OnSaveConfig maps a dot-separated kind prefix to whether it should run on save.
type OnSaveConfig map[string]bool

// MergeOnSaveConfig copies defaults, applies overrides on top, and keeps only keys under OnSaveKindPrefix.
// Overrides replace defaults at an identical key; there is no merging below the key level.
func MergeOnSaveConfig(defaults, overrides OnSaveConfig) OnSaveConfig {
	merged := make(OnSaveConfig, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}

	for k := range merged {
		if !strings.HasPrefix(k, OnSaveKindPrefix) {
			delete(merged, k)
		}
	}
	return merged
}
