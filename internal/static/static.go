package static

import _ "embed"

// IndexTemplate contains the embedded shell page template. It expects a
// single FrameSrc field.
//
//go:embed index.html.tmpl
var IndexTemplate string
