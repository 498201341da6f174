package templates

import "embed"

//go:embed layouts views
var FS embed.FS
