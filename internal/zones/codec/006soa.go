package codec

import "github.com/zonekit/zoned/internal/zones/domain"

// decodeSOA decodes an SOA record from its attribute mapping.
// All fields are optional at this layer; absent keys produce zero
// values. Serial monotonicity and the like are downstream concerns.
func decodeSOA(h domain.RRHeader, data map[string]any) (domain.ResourceRecord, error) {
	return domain.SOA{
		RRHeader: h,
		Mname:    fieldString(data, "mname"),
		Rname:    fieldString(data, "rname"),
		Serial:   fieldUint32(data, "serial"),
		Refresh:  fieldUint32(data, "refresh"),
		Retry:    fieldUint32(data, "retry"),
		Expire:   fieldUint32(data, "expire"),
		Minimum:  fieldUint32(data, "minimum"),
	}, nil
}
