package xml

// Token is the tagged-variant output of the tokenizer, before namespace
// resolution. It holds no namespace URI information — see Event for the
// post-resolution counterpart.
type Token interface {
	isToken()
}

// RawAttrTok is an attribute as produced by the tokenizer: an LName paired
// with its (not-yet namespace-qualified) content fragments, in input order.
type RawAttrTok struct {
	Name  LName
	Value []ContentFragment
}

// BeginDocumentTok is emitted for a leading "<?xml ... ?>" prolog.
type BeginDocumentTok struct {
	Attrs []RawAttrTok
}

func (BeginDocumentTok) isToken() {}

// InstructionTok is a processing instruction "<?target body?>" other than
// the XML declaration.
type InstructionTok struct {
	Target string
	Body   string
}

func (InstructionTok) isToken() {}

// BeginElementTok is a begin tag, "<name attrs...>" or the self-closing
// "<name attrs.../>".
type BeginElementTok struct {
	Name         LName
	Attrs        []RawAttrTok
	SelfClosing  bool
}

func (BeginElementTok) isToken() {}

// EndElementTok is an end tag, "</name>".
type EndElementTok struct {
	Name LName
}

func (EndElementTok) isToken() {}

// ContentTok is a single content fragment. Consecutive fragments are not
// coalesced by the tokenizer; each remains its own token.
type ContentTok struct {
	Fragment ContentFragment
}

func (ContentTok) isToken() {}

// CommentTok is a "<!--...-->" comment; Text excludes the delimiters.
type CommentTok struct {
	Text string
}

func (CommentTok) isToken() {}

// CDATATok is a "<![CDATA[...]]>" section; Text excludes the delimiters and
// is never entity-decoded.
type CDATATok struct {
	Text string
}

func (CDATATok) isToken() {}

// DoctypeExternalIDKind distinguishes PUBLIC from SYSTEM external IDs.
type DoctypeExternalIDKind int

const (
	// DoctypeSystem is a "SYSTEM \"sysid\"" external ID.
	DoctypeSystem DoctypeExternalIDKind = iota
	// DoctypePublic is a "PUBLIC \"pubid\" \"sysid\"" external ID.
	DoctypePublic
)

// DoctypeExternalID is the optional external identifier of a DOCTYPE
// declaration.
type DoctypeExternalID struct {
	Kind   DoctypeExternalIDKind
	PubID  string // only set when Kind == DoctypePublic
	SysID  string
}

// DoctypeTok is a "<!DOCTYPE root ...>" declaration.
type DoctypeTok struct {
	RootName   string
	ExternalID *DoctypeExternalID
}

func (DoctypeTok) isToken() {}
