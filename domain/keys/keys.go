package keys

import (
	"strings"
)

const (
	// PfxHttpCache prefixes cached GET responses
	PfxHttpCache = "http"
	// PfxMetadata prefixes ipfs documents cached by cid
	PfxMetadata = "metadata"
	// PfxListing prefixes listing records cached by token id
	PfxListing = "listing"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix extracts the prefix of a key for metrics tagging. Keys with more than two
// components report their first two.
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	switch {
	case len(s) > 2:
		return strings.Join(s[:2], ":")
	case len(s) > 1:
		return s[0]
	}
	return ""
}
