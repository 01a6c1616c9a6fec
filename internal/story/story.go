// Package story holds the default story compiled into the binary.
package story

import _ "embed"

//go:embed story.toml
var defaultStory []byte

// Default returns a copy of the embedded story file.
func Default() []byte {
	out := make([]byte, len(defaultStory))
	copy(out, defaultStory)
	return out
}
