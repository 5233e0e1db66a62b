package xml

// Event is the tagged-variant output of the namespace resolver: Tokens
// rewritten with fully-qualified names. See spec.md §3.
type Event interface {
	isEvent()
}

// BeginDocumentEvent is emitted exactly once, before any other event.
type BeginDocumentEvent struct {
	Attrs Attrs
}

func (BeginDocumentEvent) isEvent() {}

// EndDocumentEvent is emitted exactly once, after every other event.
type EndDocumentEvent struct{}

func (EndDocumentEvent) isEvent() {}

// InstructionEvent is a processing instruction, passed through unchanged
// from InstructionTok.
type InstructionEvent struct {
	Target string
	Body   string
}

func (InstructionEvent) isEvent() {}

// BeginElementEvent is a namespace-qualified begin tag. Attrs is looked up
// by name via Attrs.Get, not map indexing; attribute-name uniqueness is a
// caller invariant the resolver does not enforce (spec.md §3).
type BeginElementEvent struct {
	Name  QName
	Attrs Attrs
}

func (BeginElementEvent) isEvent() {}

// EndElementEvent is a namespace-qualified end tag.
type EndElementEvent struct {
	Name QName
}

func (EndElementEvent) isEvent() {}

// ContentEvent is a single content fragment, passed through unchanged from
// ContentTok. Consecutive fragments are not coalesced at this layer (see
// the Content combinator, which does coalesce).
type ContentEvent struct {
	Fragment ContentFragment
}

func (ContentEvent) isEvent() {}

// CommentEvent is passed through unchanged from CommentTok.
type CommentEvent struct {
	Text string
}

func (CommentEvent) isEvent() {}

// CDATAEvent is passed through unchanged from CDATATok.
type CDATAEvent struct {
	Text string
}

func (CDATAEvent) isEvent() {}

// BeginDoctypeEvent and EndDoctypeEvent together replace DoctypeTok: the
// resolver emits the pair for every DOCTYPE declaration, per spec.md §4.3.
type BeginDoctypeEvent struct {
	RootName   string
	ExternalID *DoctypeExternalID
}

func (BeginDoctypeEvent) isEvent() {}

// EndDoctypeEvent closes the BeginDoctypeEvent pair.
type EndDoctypeEvent struct{}

func (EndDoctypeEvent) isEvent() {}
