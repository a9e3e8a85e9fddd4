package converter

import "github.com/zonekit/zoned/internal/zones/domain"

// DecoderRegistry is the service's view of the custom parser chain:
// append-style registration plus an ordered snapshot read.
type DecoderRegistry interface {
	Register(d domain.RecordDecoder)
	RegisterAll(ds []domain.RecordDecoder)
	Decoders() []domain.RecordDecoder
}

// ResultCache stores conversion results keyed by zone name so that an
// unchanged document (same content hash) can skip reconversion.
type ResultCache interface {
	Put(result domain.ConversionResult)
	Get(name string) (domain.ConversionResult, bool)
	NeedsReload(name, hash string) bool
}
