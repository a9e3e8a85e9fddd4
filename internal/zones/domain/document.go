// Package domain defines the core types of the zone conversion engine:
// the generic zone document delivered by an external parser, the typed
// resource record variants the engine produces, and the contracts for
// custom record decoders and context filtering.
package domain

// RawRecord is one untyped attribute record extracted from a zone
// document. Data holds the type-specific attributes keyed by field
// name; a nil Data is a structural defect and never reaches a decoder.
// Context is nil when the record carries no context restriction, which
// is distinct from an empty (but present) tag list.
type RawRecord struct {
	Name    string
	Type    string
	TTL     uint32
	Data    map[string]any
	Context []string
}

// ZoneDocument is a generic, loosely-typed zone as delivered by the
// document parser: a zone name, an optional content hash, and the
// ordered attribute records to convert.
type ZoneDocument struct {
	Name    string
	Hash    string
	Records []RawRecord
}

// ConversionResult is the output of one conversion call: the zone name
// and hash carried through from the document, and the unique set of
// typed records in first-seen order.
type ConversionResult struct {
	Name    string
	Hash    string
	Records []ResourceRecord
}
