package md2word

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DocxExtension is appended to every generated filename.
const DocxExtension = ".docx"

// fallbackSlug is used when a title has no usable characters.
const fallbackSlug = "markdown-document"

// germanLetters survive slugging under the regional preset.
const germanLetters = "äöüß"

// Filename derives a download name from a document title: lower-cased,
// every run of characters other than letters and digits replaced by a
// single "-", trimmed, with ".docx" appended. Diacritics are folded to
// ASCII ("é" becomes "e"); the regional preset keeps ä, ö, ü and ß.
func Filename(title string, regional bool) string {
	lang := language.English
	if regional {
		lang = language.German
	}
	lower := cases.Lower(lang).String(title)

	var sb strings.Builder
	pendingDash := false
	for _, r := range lower {
		for _, folded := range foldRune(r, regional) {
			if isSlugRune(folded, regional) {
				if pendingDash && sb.Len() > 0 {
					sb.WriteByte('-')
				}
				pendingDash = false
				sb.WriteRune(folded)
				continue
			}
			pendingDash = true
		}
	}

	slug := sb.String()
	if slug == "" {
		slug = fallbackSlug
	}
	return slug + DocxExtension
}

// foldRune strips combining marks from r. Under the regional preset the
// German letters are returned unchanged.
func foldRune(r rune, regional bool) string {
	if r < unicode.MaxASCII || (regional && strings.ContainsRune(germanLetters, r)) {
		return string(r)
	}
	if r == 'ß' {
		return "ss"
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, string(r))
	if err != nil {
		return string(r)
	}
	return out
}

func isSlugRune(r rune, regional bool) bool {
	if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
		return true
	}
	return regional && strings.ContainsRune(germanLetters, r)
}
