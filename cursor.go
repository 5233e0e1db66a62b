package xml

import "io"

// Cursor is a pull cursor over an Event sequence with one-event pushback,
// the primitive spec.md §4.4/§9 requires for the combinator layer: peek the
// next event without consuming it, or advance past it.
//
// Grounded on the teacher's tokenReader.Token pending-slot idiom (a single
// "nextToken" field used to return a synthesized self-closing EndElement on
// the following call) — generalized here to hold one arbitrary peeked
// Event, since the combinator layer needs a general one-item lookahead
// rather than just that one special case (which the Resolver already
// handles on its own, one layer down).
type Cursor struct {
	src    *Resolver
	peeked Event
	have   bool
	done   bool
}

// NewCursor wraps a Resolver in a peekable Cursor.
func NewCursor(src *Resolver) *Cursor {
	return &Cursor{src: src}
}

// Peek returns the next event without consuming it. ok is false once the
// sequence is exhausted.
func (c *Cursor) Peek() (Event, bool, error) {
	if c.have {
		return c.peeked, true, nil
	}
	if c.done {
		return nil, false, nil
	}
	ev, err := c.src.Next()
	if err == io.EOF {
		c.done = true
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	c.peeked = ev
	c.have = true
	return ev, true, nil
}

// Advance consumes the event last returned by Peek. It panics if called
// without a preceding successful Peek — a programmer error in this
// package's own combinators, never user-reachable.
func (c *Cursor) Advance() {
	if !c.have {
		panic("xml: Cursor.Advance called without a peeked event")
	}
	c.have = false
	c.peeked = nil
}

// skipWhitespace advances past any run of Content events whose fragment is
// literal whitespace-only, per spec.md §4.4. Mixed content (whitespace next
// to non-whitespace) is left alone.
func (c *Cursor) skipWhitespace() error {
	for {
		ev, ok, err := c.Peek()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		ce, isContent := ev.(ContentEvent)
		if !isContent {
			return nil
		}
		lit, isLiteral := ce.Fragment.(Literal)
		if !isLiteral || !isWhitespaceOnly(string(lit)) {
			return nil
		}
		c.Advance()
	}
}

func isWhitespaceOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
