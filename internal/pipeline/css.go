package pipeline

import "strings"

// declaration is a single CSS property/value pair from an inline style.
type declaration struct {
	property string
	value    string
}

// inlineStyle is an ordered set of declarations. Setting an existing
// property replaces its value in place, so applying the same rules twice
// renders the same attribute.
type inlineStyle struct {
	decls []declaration
}

// parseInlineStyle reads a style attribute value. Malformed entries are dropped.
func parseInlineStyle(attr string) *inlineStyle {
	s := &inlineStyle{}
	for _, part := range strings.Split(attr, ";") {
		prop, val, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		val = strings.TrimSpace(val)
		if prop == "" || val == "" {
			continue
		}
		s.set(prop, val)
	}
	return s
}

func (s *inlineStyle) set(property, value string) {
	for i := range s.decls {
		if s.decls[i].property == property {
			s.decls[i].value = value
			return
		}
	}
	s.decls = append(s.decls, declaration{property: property, value: value})
}

func (s *inlineStyle) get(property string) (string, bool) {
	for _, d := range s.decls {
		if d.property == property {
			return d.value, true
		}
	}
	return "", false
}

func (s *inlineStyle) String() string {
	parts := make([]string, len(s.decls))
	for i, d := range s.decls {
		parts[i] = d.property + ": " + d.value
	}
	return strings.Join(parts, "; ")
}
