// Package site renders the assembled view data into the final
// self-contained HTML document and writes it to disk.
package site

import _ "embed"

//go:embed assets/editor.css
var editorCSS string

//go:embed assets/editor.js
var editorScript string

//go:embed assets/page.tmpl
var pageTemplate string
