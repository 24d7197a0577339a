// Package md2word converts Markdown to Word, either as styled HTML for
// pasting into a word processor or as a generated .docx file.
//
// # Quick Start
//
//	conv, err := md2word.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2word.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    Title:    "Greeting",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(result.Filename, result.DOCX, 0o644)
//
// # Conversion Pipeline
//
//  1. Markdown preprocessing (line endings, ==highlight== syntax)
//  2. Markdown to HTML via goldmark (GFM, hard line breaks, footnotes)
//  3. Clipboard path: inline styles rewritten on a copy of the HTML tree
//  4. Download path: HTML tree walked into Word blocks, then serialized
//
// # Styles
//
// Style carries font family, size, line height and alignment. The
// regional preset (German academic layout) overrides all four with
// Palatino Linotype 11pt, 1.5 line height, justified text, Calibri
// headings and wider page margins:
//
//	html, err := conv.ClipboardHTML(ctx, md2word.Input{
//	    Markdown: content,
//	    Style:    md2word.Style{Regional: true},
//	})
//
// # Clipboard
//
// Copy writes to any ClipboardWriter and degrades from styled HTML down
// to plain Markdown text, reporting what was copied:
//
//	outcome := conv.Copy(ctx, input, md2word.SystemClipboard())
package md2word
