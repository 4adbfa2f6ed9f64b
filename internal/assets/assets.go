// Package assets bundles the default category icons shipped with the
// application. They are copied into per-user media storage when the
// default catalog is seeded.
package assets

import "embed"

//go:embed icons
var Icons embed.FS

// Icon returns the bundled icon file contents by base name, e.g. "salary".
func Icon(name string) ([]byte, error) {
	return Icons.ReadFile("icons/" + name + ".svg")
}
