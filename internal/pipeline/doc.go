// Package pipeline implements the Markdown-to-HTML half of the conversion.
//
// Stages:
//   - Markdown preprocessing (BOM, line endings, ==highlight== syntax)
//   - Markdown to HTML fragment conversion via goldmark (GFM, hard wraps)
//   - HTML fragment parsing, cloning and rendering (golang.org/x/net/html)
//   - Style post-processing: inline styles for pasting into word processors
//
// The Word document itself is produced from the parsed fragment by the
// docmodel and docx packages. Keeping this package free of Word concerns
// lets the clipboard path and the download path share the same HTML.
package pipeline
