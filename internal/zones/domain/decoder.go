package domain

// RecordDecoder is the contract for externally supplied decoders that
// extend the engine beyond its built-in record types. Decode returns
// the typed record and true when the decoder recognizes the raw
// record, or a zero value and false when it does not. Decoders are
// tried in registration order; the first to return true wins.
type RecordDecoder interface {
	Decode(record RawRecord) (ResourceRecord, bool)
}

// RecordDecoderFunc adapts a plain function to the RecordDecoder interface.
type RecordDecoderFunc func(record RawRecord) (ResourceRecord, bool)

// Decode calls f.
func (f RecordDecoderFunc) Decode(record RawRecord) (ResourceRecord, bool) {
	return f(record)
}
