package catalog

import (
	_ "embed"
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"
)

//go:embed catalog.toml
var rawCatalogData []byte

var (
	inactive map[string]bool
	fallback []Extension
)

type catalogData struct {
	Inactive []string    `toml:"inactive"`
	Fallback []Extension `toml:"fallback"`
}

func init() {
	var data catalogData
	if err := toml.Unmarshal(rawCatalogData, &data); err != nil {
		panic(fmt.Sprintf("catalog: invalid embedded catalog.toml: %v", err))
	}

	inactive = make(map[string]bool, len(data.Inactive))
	for _, name := range data.Inactive {
		inactive[name] = true
	}
	fallback = data.Fallback
}

// Inactive reports whether an extension is on the static exclusion list.
// The key is the descriptor's declared name, not the record repo name, so
// a repository can exclude itself regardless of what it is called.
func Inactive(name string) bool {
	return inactive[name]
}

// FallbackExtensions returns the last-resort extension list, in its
// declared order. The caller owns the returned slice.
func FallbackExtensions() []Extension {
	return slices.Clone(fallback)
}
