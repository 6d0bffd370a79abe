// Package data carries the default Static Dataset of the Museo Virtual del Agua.
package data

import "embed"

//go:embed rooms.json exhibits.json content.json
var FS embed.FS
