package xml

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ContentFragment is the atom of character data: either a literal run of
// text, or a named entity reference that was not one of the five XML
// predefined entities. Predefined entities and numeric character references
// are resolved during tokenization into Literal fragments; anything else is
// kept as EntityRef so a consumer can choose to look it up or reject it.
type ContentFragment interface {
	isContentFragment()
	// Flatten renders the fragment the way flattenFragments does for a
	// single fragment: verbatim for Literal, "&name;" for EntityRef.
	Flatten() string
}

// Literal is a run of literal character data.
type Literal string

func (Literal) isContentFragment() {}

// Flatten returns the literal text unchanged.
func (l Literal) Flatten() string { return string(l) }

// EntityRef is a named entity reference that the tokenizer did not resolve
// (i.e. not one of amp, lt, gt, apos, quot).
type EntityRef string

func (EntityRef) isContentFragment() {}

// Flatten renders the entity reference as "&name;".
func (e EntityRef) Flatten() string { return "&" + string(e) + ";" }

// predefinedEntities is the fixed set of five XML predefined entities.
// Unlike a general-purpose HTML entity table, nothing outside this set is
// ever substituted by the tokenizer.
var predefinedEntities = map[string]rune{
	"amp":  '&',
	"lt":   '<',
	"gt":   '>',
	"apos": '\'',
	"quot": '"',
}

// resolveEntity resolves a &name; or &#...; reference (name excludes the
// leading '&' and trailing ';'). It returns the resolved literal rune and
// true, or ("", false) if name is not a predefined entity or numeric
// reference (the caller should then emit an EntityRef fragment).
func resolveEntity(name string) (string, bool, error) {
	if name == "" {
		return "", false, newError("empty entity reference", nil)
	}
	if name[0] == '#' {
		var (
			num int64
			err error
		)
		if len(name) > 1 && (name[1] == 'x' || name[1] == 'X') {
			num, err = strconv.ParseInt(name[2:], 16, 32)
		} else {
			num, err = strconv.ParseInt(name[1:], 10, 32)
		}
		if err != nil {
			return "", false, newWrappedError("invalid numeric character reference &"+name+";", err)
		}
		return string(utf8.AppendRune(nil, rune(num))), true, nil
	}
	if r, ok := predefinedEntities[name]; ok {
		return string(r), true, nil
	}
	return "", false, nil
}

// flattenFragments concatenates a fragment list per spec.md's "flattened
// text" rule: literal fragments verbatim, unresolved entities as "&name;".
func flattenFragments(frags []ContentFragment) string {
	if len(frags) == 0 {
		return ""
	}
	if len(frags) == 1 {
		return frags[0].Flatten()
	}
	var b strings.Builder
	for _, f := range frags {
		b.WriteString(f.Flatten())
	}
	return b.String()
}
