package xml

import "github.com/lspitzner/xml/internal/nsstack"

// NSLevel is a namespace scope: an optional default URI plus a prefix to
// URI map, per spec.md §3. It is a snapshot — fully resolved at the time
// its element was opened — not a delta against its parent.
type NSLevel = nsstack.Level
