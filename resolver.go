package xml

import (
	"io"

	"github.com/lspitzner/xml/internal/nsstack"
)

// qualifyName resolves an LName to a QName against level, per spec.md
// §4.3's qualification rules. applyDefault controls whether an unprefixed
// name inherits the scope's default namespace — true for element names,
// false for attribute names (spec.md §3: "An unprefixed attribute name
// never inherits the default namespace; only unprefixed element names
// do.").
func qualifyName(name LName, level NSLevel, applyDefault bool) QName {
	if name.Prefix != nil {
		if *name.Prefix == "xml" {
			uri := xmlNamespaceURI
			prefix := "xml"
			return QName{Local: name.Local, URI: &uri, Prefix: &prefix}
		}
		if uri, ok := level.ResolvePrefix(*name.Prefix); ok {
			prefix := *name.Prefix
			return QName{Local: name.Local, URI: &uri, Prefix: &prefix}
		}
		// Unknown prefix does not fail the parse (spec.md §9 Open Question,
		// resolved per the spec's own wording).
		prefix := *name.Prefix
		return QName{Local: name.Local, Prefix: &prefix}
	}
	if applyDefault {
		if uri, ok := level.ResolveDefault(); ok {
			return QName{Local: name.Local, URI: &uri}
		}
	}
	return QName{Local: name.Local}
}

// Resolver is the stateful Token→Event transducer of spec.md §4.3. It
// maintains a namespace scope stack synchronized with element nesting and
// injects the single BeginDocument/EndDocument pair that brackets every
// event sequence.
type Resolver struct {
	tok   *Tokenizer
	stack nsstack.Stack
	opts  options

	started  bool
	finished bool

	pendingTok        Token // a token peeked while bootstrapping BeginDocument
	havePendingTok    bool
	pendingEnd        *QName // synthesized EndElement for a self-closing element
	pendingDoctypeEnd bool   // EndDoctype still owed for a DOCTYPE pair
}

// NewResolver wraps a Tokenizer, producing the namespace-qualified Event
// sequence.
func NewResolver(tok *Tokenizer, opts ...ParserOption) *Resolver {
	return &Resolver{tok: tok, opts: buildOptions(opts)}
}

// Next returns the next Event, or io.EOF once EndDocumentEvent has been
// returned.
func (r *Resolver) Next() (Event, error) {
	if r.finished {
		return nil, io.EOF
	}
	if r.pendingEnd != nil {
		qn := *r.pendingEnd
		r.pendingEnd = nil
		return EndElementEvent{Name: qn}, nil
	}
	if r.pendingDoctypeEnd {
		r.pendingDoctypeEnd = false
		return EndDoctypeEvent{}, nil
	}
	if !r.started {
		r.started = true
		return r.bootstrap()
	}

	tok, err := r.nextToken()
	if err == io.EOF {
		r.finished = true
		return EndDocumentEvent{}, nil
	}
	if err != nil {
		return nil, err
	}
	return r.resolveToken(tok)
}

// bootstrap emits the single BeginDocumentEvent, consuming a leading
// "<?xml ... ?>" prolog if present; otherwise it peeks one token and
// buffers it for the following Next call, per spec.md's "the resolver's
// caller injects BeginDocument once at the very start of the event
// stream" sequencing.
func (r *Resolver) bootstrap() (Event, error) {
	tok, err := r.nextToken()
	if err == io.EOF {
		// The tokenizer is already exhausted, but BeginDocument/EndDocument
		// must still bracket the (empty) event sequence — don't set
		// r.finished here, so the following Next call still reaches the
		// EOF branch below and emits EndDocumentEvent.
		return BeginDocumentEvent{}, nil
	}
	if err != nil {
		return nil, err
	}
	if decl, ok := tok.(BeginDocumentTok); ok {
		attrs := make(Attrs, 0, len(decl.Attrs))
		for _, a := range decl.Attrs {
			attrs = append(attrs, RawAttr{Name: qualifyName(a.Name, NSLevel{}, false), Value: a.Value})
		}
		return BeginDocumentEvent{Attrs: attrs}, nil
	}
	r.pendingTok = tok
	r.havePendingTok = true
	return BeginDocumentEvent{}, nil
}

func (r *Resolver) nextToken() (Token, error) {
	if r.havePendingTok {
		r.havePendingTok = false
		return r.pendingTok, nil
	}
	return r.tok.Next()
}

func (r *Resolver) resolveToken(tok Token) (Event, error) {
	switch tok := tok.(type) {
	case BeginDocumentTok:
		return nil, newError("unexpected XML declaration after the start of the document", nil)
	case InstructionTok:
		return InstructionEvent{Target: tok.Target, Body: tok.Body}, nil
	case ContentTok:
		return ContentEvent{Fragment: tok.Fragment}, nil
	case CommentTok:
		return CommentEvent{Text: tok.Text}, nil
	case CDATATok:
		return CDATAEvent{Text: tok.Text}, nil
	case DoctypeTok:
		r.pendingDoctypeEnd = true
		return BeginDoctypeEvent{RootName: tok.RootName, ExternalID: tok.ExternalID}, nil
	case BeginElementTok:
		return r.resolveBeginElement(tok)
	case EndElementTok:
		return r.resolveEndElement(tok)
	default:
		return nil, newError("unrecognized token", nil)
	}
}

func (r *Resolver) resolveBeginElement(tok BeginElementTok) (Event, error) {
	parent := r.stack.Top()
	level := parent.Clone()

	var ordinary []RawAttrTok
	for _, a := range tok.Attrs {
		switch {
		case a.Name.Prefix != nil && *a.Name.Prefix == "xmlns":
			if level.Prefixes == nil {
				level.Prefixes = map[string]string{}
			}
			level.Prefixes[a.Name.Local] = flattenFragments(a.Value)
		case a.Name.Prefix == nil && a.Name.Local == "xmlns":
			uri := flattenFragments(a.Value)
			if uri != "" {
				level.Default = &uri
			} else {
				level.Default = nil
			}
		default:
			ordinary = append(ordinary, a)
		}
	}

	name := qualifyName(tok.Name, level, true)

	attrs := make(Attrs, 0, len(ordinary))
	for _, a := range ordinary {
		attrs = append(attrs, RawAttr{Name: qualifyName(a.Name, level, false), Value: a.Value})
	}

	if tok.SelfClosing {
		qn := name
		r.pendingEnd = &qn
		return BeginElementEvent{Name: name, Attrs: attrs}, nil
	}

	if r.stack.Len()+1 > r.opts.maxDepth {
		return nil, newError("maximum element nesting depth exceeded", nil)
	}
	r.stack.Push(level)
	return BeginElementEvent{Name: name, Attrs: attrs}, nil
}

func (r *Resolver) resolveEndElement(tok EndElementTok) (Event, error) {
	popped, _ := r.stack.Pop()
	name := qualifyName(tok.Name, popped, true)
	return EndElementEvent{Name: name}, nil
}
