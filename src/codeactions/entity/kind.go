package entity

import "strings"

// KindsIncludeKind reports whether kind equals one of kinds, or one of kinds is a prefix of kind
// immediately followed by a dot. An empty kind is never included.
func KindsIncludeKind(kinds []string, kind string) bool {
	if kind == "" {
		return false
	}
	for _, k := range kinds {
		if kind == k {
			return true
		}
		if len(kind) > len(k) && strings.HasPrefix(kind, k) && kind[len(k)] == '.' {
			return true
		}
	}
	return false
}

// MatchingOnSaveKinds returns the subset of sessionKinds enabled by config, in the order the session advertised them.
// For each kind, prefixes are walked from the shortest to the full kind and the most specific configured prefix wins.
// A kind without any configured prefix is not enabled.
func MatchingOnSaveKinds(config OnSaveConfig, sessionKinds []string) []string {
	matching := make([]string, 0, len(sessionKinds))
	for _, sessionKind := range sessionKinds {
		enabled := false
		parts := strings.Split(sessionKind, ".")
		for i := range parts {
			if v, ok := config[strings.Join(parts[:i+1], ".")]; ok {
				enabled = v
			}
		}
		if enabled {
			matching = append(matching, sessionKind)
		}
	}
	return matching
}
