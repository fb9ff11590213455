// Package defaults embeds the catalog used when no --catalog file is given.
//
// Usage:
//
//	catalog.LoadFS(defaults.FS, "v1")
package defaults

import "embed"

//go:embed v1/*.yaml
var FS embed.FS

// Dir is the embedded catalog directory.
const Dir = "v1"
