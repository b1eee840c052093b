package mapper

import (
	"github.com/tidwall/gjson"
)

// CapabilityValue looks up a dotted path in a JSON encoded capabilities object.
func CapabilityValue(capabilities []byte, path string) (interface{}, bool) {
	if len(capabilities) == 0 || path == "" {
		return nil, false
	}
	res := gjson.GetBytes(capabilities, path)
	if !res.Exists() || res.Type == gjson.Null {
		return nil, false
	}
	return res.Value(), true
}

// HasCapability reports whether a dotted path exists in the capabilities and is not false or null.
func HasCapability(capabilities []byte, path string) bool {
	if len(capabilities) == 0 || path == "" {
		return false
	}
	res := gjson.GetBytes(capabilities, path)
	return res.Exists() && res.Type != gjson.Null && res.Type != gjson.False
}

// CapabilityStrings returns the string elements of the list at path.
func CapabilityStrings(capabilities []byte, path string) []string {
	res := gjson.GetBytes(capabilities, path)
	if !res.IsArray() {
		return nil
	}
	var out []string
	for _, v := range res.Array() {
		if v.Type == gjson.String {
			out = append(out, v.Str)
		}
	}
	return out
}
