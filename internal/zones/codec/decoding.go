// Package codec converts the untyped attribute records of a zone
// document into typed resource records. It contains the built-in
// per-type decoders, the context inclusion filter, and the conversion
// pipeline that ties them together with the custom parser chain.
package codec

import (
	"errors"

	"github.com/zonekit/zoned/internal/zones/domain"
)

// ErrUnsupportedType signals that the built-in decoder does not
// recognize a record's type. It is not a defect: the pipeline reacts by
// handing the record to the custom parser chain.
var ErrUnsupportedType = errors.New("unsupported record type")

// Decode maps one raw attribute record to its typed resource record
// based on its type tag. It returns ErrUnsupportedType for types
// outside the built-in set, and a descriptive error when a field fails
// validation. Missing data keys yield zero-valued fields; only fields
// with explicit syntax rules (IP addresses, hex fingerprints, text
// escapes) can fail the record.
func Decode(record domain.RawRecord) (domain.ResourceRecord, error) {
	h := domain.RRHeader{Name: record.Name, TTL: record.TTL}
	switch domain.RRTypeFromString(record.Type) {
	case domain.RRTypeA: // 1
		return decodeA(h, record.Data)
	case domain.RRTypeNS: // 2
		return decodeNS(h, record.Data)
	case domain.RRTypeCNAME: // 5
		return decodeCNAME(h, record.Data)
	case domain.RRTypeSOA: // 6
		return decodeSOA(h, record.Data)
	case domain.RRTypePTR: // 12
		return decodePTR(h, record.Data)
	case domain.RRTypeHINFO: // 13
		return decodeHINFO(h, record.Data)
	case domain.RRTypeMX: // 15
		return decodeMX(h, record.Data)
	case domain.RRTypeTXT: // 16
		return decodeTXT(h, record.Data)
	case domain.RRTypeRP: // 17
		return decodeRP(h, record.Data)
	case domain.RRTypeAAAA: // 28
		return decodeAAAA(h, record.Data)
	case domain.RRTypeNAPTR: // 35
		return decodeNAPTR(h, record.Data)
	case domain.RRTypeSSHFP: // 44
		return decodeSSHFP(h, record.Data)
	case domain.RRTypeSPF: // 99
		return decodeSPF(h, record.Data)
	default:
		return nil, ErrUnsupportedType
	}
}
