// Package docx serializes a docmodel.Document into a WordprocessingML
// (.docx) package with gooxml.
//
// Each block becomes a paragraph carrying its style, spacing, indent,
// alignment and left border. Paragraph styles come from a style sheet: the
// assets "styles" template renders YAML from the document defaults, so a
// custom assets directory can restyle titles and headings without code
// changes.
package docx
