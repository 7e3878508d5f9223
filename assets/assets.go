// Package assets embeds the demo's level maps.
package assets

import "embed"

//go:embed levels/*.tmx
var FS embed.FS
