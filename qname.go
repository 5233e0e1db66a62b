package xml

// QName is a fully-qualified name produced by the namespace resolver: a
// local part plus an optional namespace URI and the lexical prefix it was
// written with (kept only for round-tripping/diagnostics — equality and
// lookups are defined on Local+URI, per spec.md's attribute-key semantics).
type QName struct {
	Local  string
	URI    *string
	Prefix *string
}

// Equal reports whether two QNames have the same Local and URI. The Prefix
// is informational and excluded from equality, matching the way the
// resolver and combinators compare names (spec.md §3: "Attribute-key
// uniqueness ... the resolver does not merge duplicates" is about lexical
// collisions, not prefix spelling).
func (q QName) Equal(other QName) bool {
	if q.Local != other.Local {
		return false
	}
	switch {
	case q.URI == nil && other.URI == nil:
		return true
	case q.URI == nil || other.URI == nil:
		return false
	default:
		return *q.URI == *other.URI
	}
}

// String renders the QName for diagnostics as "{uri}local" or "local".
func (q QName) String() string {
	if q.URI == nil {
		return q.Local
	}
	return "{" + *q.URI + "}" + q.Local
}

// xmlNamespaceURI is the fixed URI the "xml" prefix always resolves to,
// regardless of scope (spec.md §3 invariant).
const xmlNamespaceURI = "http://www.w3.org/XML/1998/namespace"
