package xml

// RawAttr is a namespace-qualified attribute paired with its content
// fragments, the unit the attribute sub-parser threads through its state.
type RawAttr struct {
	Name  QName
	Value []ContentFragment
}

// Attrs is a resolved element's or declaration's attribute list. QName
// carries *string fields (URI, Prefix), so Go's native map-key equality
// compares those pointers rather than the strings they point to — two
// QNames that QName.Equal considers equal can be built from separate
// qualifyName calls with separate string allocations and would silently
// fail to collide as the same map[QName]... key. Attrs sidesteps this by
// staying a slice and resolving lookups with Get, a linear scan against
// QName.Equal, the same pattern AttrParser itself already uses internally.
type Attrs []RawAttr

// Get returns the content fragments of the first attribute named name,
// using QName.Equal rather than Go's struct equality.
func (a Attrs) Get(name QName) ([]ContentFragment, bool) {
	for _, attr := range a {
		if attr.Name.Equal(name) {
			return attr.Value, true
		}
	}
	return nil, false
}

// AttrParser is the state-threading parser over an element's remaining
// attribute list described by spec.md §4.5. Each claim (RequireAttr,
// OptionalAttr, ...) removes the matched attribute from the remaining list;
// Finish raises the residue error if anything is left unclaimed.
//
// Grounded on the teacher's RawAttrs/Attrs/Attr family (scan-by-key over a
// byte range, used once per lookup), reshaped into a stateful claim-and-
// remove list because spec.md requires detecting leftover attributes after
// parsing completes — something a stateless scan-by-key can't do without
// extra bookkeeping.
type AttrParser struct {
	remaining []RawAttr
}

// NewAttrParser builds an AttrParser over attrs (copied into a fresh slice
// so mutation doesn't alias the caller's).
func NewAttrParser(attrs Attrs) *AttrParser {
	remaining := make([]RawAttr, len(attrs))
	copy(remaining, attrs)
	return &AttrParser{remaining: remaining}
}

// requireAttrRaw scans the remaining attributes for the first one pick
// accepts, removing and returning it. If none match, it raises a parse
// error carrying msg.
func (p *AttrParser) requireAttrRaw(msg string, pick func(RawAttr) (string, bool)) (string, error) {
	v, ok := p.optionalAttrRaw(pick)
	if !ok {
		return "", newError(msg, nil)
	}
	return v, nil
}

// optionalAttrRaw is requireAttrRaw without the error: ("", false) if no
// remaining attribute matches.
func (p *AttrParser) optionalAttrRaw(pick func(RawAttr) (string, bool)) (string, bool) {
	for i, a := range p.remaining {
		if v, ok := pick(a); ok {
			p.remaining = append(p.remaining[:i], p.remaining[i+1:]...)
			return v, true
		}
	}
	return "", false
}

// RequireAttr claims the attribute named name, returning its flattened
// text, or raises a parse error if it isn't present.
func (p *AttrParser) RequireAttr(name QName) (string, error) {
	return p.requireAttrRaw("missing required attribute "+name.String(), func(a RawAttr) (string, bool) {
		if a.Name.Equal(name) {
			return flattenFragments(a.Value), true
		}
		return "", false
	})
}

// OptionalAttr claims the attribute named name if present, returning its
// flattened text and true, or ("", false) if absent.
func (p *AttrParser) OptionalAttr(name QName) (string, bool) {
	return p.optionalAttrRaw(func(a RawAttr) (string, bool) {
		if a.Name.Equal(name) {
			return flattenFragments(a.Value), true
		}
		return "", false
	})
}

// IgnoreAttrs discards all remaining attributes, satisfying the completion
// rule for elements whose attributes are not all explicitly parsed.
func (p *AttrParser) IgnoreAttrs() {
	p.remaining = nil
}

// Finish raises the residue error ("UnparsedAttributes") if any attributes
// remain unclaimed; call after an element's body has been parsed via
// RequireAttr/OptionalAttr (and, when appropriate, IgnoreAttrs).
func (p *AttrParser) Finish() error {
	if len(p.remaining) > 0 {
		leftover := make([]RawAttr, len(p.remaining))
		copy(leftover, p.remaining)
		return newLeftoverAttrsError(leftover)
	}
	return nil
}
