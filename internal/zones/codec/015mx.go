package codec

import "github.com/zonekit/zoned/internal/zones/domain"

// decodeMX decodes an MX record from its attribute mapping.
func decodeMX(h domain.RRHeader, data map[string]any) (domain.ResourceRecord, error) {
	// data = {"preference": 10, "exchange": "mail.example.com"}
	return domain.MX{
		RRHeader:   h,
		Preference: fieldUint16(data, "preference"),
		Exchange:   fieldString(data, "exchange"),
	}, nil
}
