package xml

import "strings"

// Parser is the shape every combinator in this file is built from: given a
// Cursor, either consume a contiguous prefix of events and succeed
// (ok=true), or consume nothing and report not-matched (ok=false, err=nil).
// A non-nil err is a logical failure, distinct from not-matched, per
// spec.md §4.4/§7.
type Parser[T any] func(*Cursor) (T, bool, error)

// Tag matches a BeginElement whose QName satisfies match, running attrs
// against its attribute list (and requiring no attributes survive it
// unclaimed — spec.md §4.5's completion rule) and then body against the
// cursor positioned inside the element, finally requiring a matching
// EndElement.
func Tag[A any, R any](match func(QName) bool, attrs func(*AttrParser) (A, error), body func(*Cursor, A) (R, error)) Parser[R] {
	return func(c *Cursor) (R, bool, error) {
		var zero R
		if err := c.skipWhitespace(); err != nil {
			return zero, false, err
		}
		ev, ok, err := c.Peek()
		if err != nil {
			return zero, false, err
		}
		if !ok {
			return zero, false, nil
		}
		begin, isBegin := ev.(BeginElementEvent)
		if !isBegin || !match(begin.Name) {
			return zero, false, nil
		}

		ap := NewAttrParser(begin.Attrs)
		aVal, err := attrs(ap)
		if err == nil {
			err = ap.Finish()
		}
		if err != nil {
			return zero, false, err
		}

		c.Advance()

		rVal, err := body(c, aVal)
		if err != nil {
			return zero, false, err
		}

		if err := c.skipWhitespace(); err != nil {
			return zero, false, err
		}
		endEv, ok, err := c.Peek()
		if err != nil {
			return zero, false, err
		}
		if !ok {
			return zero, false, newError("expected end tag for "+begin.Name.String()+", reached end of input", nil)
		}
		end, isEnd := endEv.(EndElementEvent)
		if !isEnd {
			return zero, false, newError("expected end tag for "+begin.Name.String(), endEv)
		}
		if !end.Name.Equal(begin.Name) {
			return zero, false, newEndTagMismatch(begin.Name, end.Name)
		}
		c.Advance()
		return rVal, true, nil
	}
}

// TagName is Tag with the predicate "QName == name".
func TagName[A any, R any](name QName, attrs func(*AttrParser) (A, error), body func(*Cursor, A) (R, error)) Parser[R] {
	return Tag(func(q QName) bool { return q.Equal(name) }, attrs, body)
}

// TagNoAttr is TagName with an attribute parser that requires (and claims)
// no attributes — any attribute present becomes residue, per spec.md §4.5.
func TagNoAttr[R any](name QName, body func(*Cursor) (R, error)) Parser[R] {
	return TagName(name,
		func(*AttrParser) (struct{}, error) { return struct{}{}, nil },
		func(c *Cursor, _ struct{}) (R, error) { return body(c) },
	)
}

// contentRun consumes consecutive Content events, concatenating their
// flattened text.
func contentRun(c *Cursor) (string, error) {
	var b strings.Builder
	for {
		ev, ok, err := c.Peek()
		if err != nil {
			return "", err
		}
		if !ok {
			return b.String(), nil
		}
		ce, isContent := ev.(ContentEvent)
		if !isContent {
			return b.String(), nil
		}
		b.WriteString(ce.Fragment.Flatten())
		c.Advance()
	}
}

// Content consumes the next run of consecutive Content events and returns
// their concatenated flattened text, or "" if the next event is not
// Content — without advancing past it, per spec.md's idempotent-
// whitespace-skipping property.
func Content(c *Cursor) (string, error) {
	ev, ok, err := c.Peek()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	if _, isContent := ev.(ContentEvent); !isContent {
		return "", nil
	}
	return contentRun(c)
}

// ContentMaybe is Content but distinguishes "no content present" (false)
// from content that happens to flatten to the empty string (true, "").
func ContentMaybe(c *Cursor) (string, bool, error) {
	ev, ok, err := c.Peek()
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	if _, isContent := ev.(ContentEvent); !isContent {
		return "", false, nil
	}
	text, err := contentRun(c)
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

// Choose tries each parser in turn, returning the first match. Every
// parser here must obey the not-matched contract (consume nothing on
// ok=false) for Choose itself to be non-destructive on total failure.
func Choose[T any](parsers ...Parser[T]) Parser[T] {
	return func(c *Cursor) (T, bool, error) {
		var zero T
		for _, p := range parsers {
			v, ok, err := p(c)
			if err != nil {
				return zero, false, err
			}
			if ok {
				return v, true, nil
			}
		}
		return zero, false, nil
	}
}

// Many repeatedly invokes p, collecting matches until p reports
// not-matched. Terminates because every successful p strictly advances the
// cursor.
func Many[T any](p Parser[T]) func(*Cursor) ([]T, error) {
	return func(c *Cursor) ([]T, error) {
		var results []T
		for {
			v, ok, err := p(c)
			if err != nil {
				return nil, err
			}
			if !ok {
				return results, nil
			}
			results = append(results, v)
		}
	}
}

// Force runs p, raising a parse error with msg if it does not match.
func Force[T any](msg string, p Parser[T]) Parser[T] {
	return func(c *Cursor) (T, bool, error) {
		var zero T
		v, ok, err := p(c)
		if err != nil {
			return zero, false, err
		}
		if !ok {
			return zero, false, newError(msg, nil)
		}
		return v, true, nil
	}
}

// IgnoreElem skips one sibling: a whole element subtree if the next event
// is BeginElement (tracked by depth counter), or a single non-element event
// otherwise. It reports not-matched (without consuming) if the next event
// is the EndElement that closes the enclosing element, or if the sequence
// is exhausted.
func IgnoreElem(c *Cursor) (bool, error) {
	ev, ok, err := c.Peek()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if _, isEnd := ev.(EndElementEvent); isEnd {
		return false, nil
	}
	if _, isBegin := ev.(BeginElementEvent); isBegin {
		c.Advance()
		depth := 1
		for depth > 0 {
			next, ok, err := c.Peek()
			if err != nil {
				return false, err
			}
			if !ok {
				return false, newError("unexpected end of input while skipping an element", nil)
			}
			switch next.(type) {
			case BeginElementEvent:
				depth++
			case EndElementEvent:
				depth--
			}
			c.Advance()
		}
		return true, nil
	}
	c.Advance()
	return true, nil
}

// IgnoreSiblings consumes events up to (but not including) the EndElement
// that closes the current enclosing element.
func IgnoreSiblings(c *Cursor) error {
	for {
		matched, err := IgnoreElem(c)
		if err != nil {
			return err
		}
		if !matched {
			return nil
		}
	}
}

// SkipTill repeatedly tries p, skipping one sibling via IgnoreElem between
// attempts, until p matches or the enclosing element's siblings are
// exhausted.
func SkipTill[T any](p Parser[T]) Parser[T] {
	return func(c *Cursor) (T, bool, error) {
		var zero T
		for {
			v, ok, err := p(c)
			if err != nil {
				return zero, false, err
			}
			if ok {
				return v, true, nil
			}
			matched, err := IgnoreElem(c)
			if err != nil {
				return zero, false, err
			}
			if !matched {
				return zero, false, nil
			}
		}
	}
}

// SkipSiblings runs p, then discards any remaining siblings up to the
// enclosing EndElement, returning p's result either way.
func SkipSiblings[T any](p Parser[T]) Parser[T] {
	return func(c *Cursor) (T, bool, error) {
		var zero T
		v, ok, err := p(c)
		if err != nil {
			return zero, false, err
		}
		if err := IgnoreSiblings(c); err != nil {
			return zero, false, err
		}
		return v, ok, nil
	}
}
