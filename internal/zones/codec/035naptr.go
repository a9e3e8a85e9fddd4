package codec

import "github.com/zonekit/zoned/internal/zones/domain"

// decodeNAPTR decodes a NAPTR record from its attribute mapping.
func decodeNAPTR(h domain.RRHeader, data map[string]any) (domain.ResourceRecord, error) {
	// data = {"order": 100, "preference": 10, "flags": "s",
	//         "services": "SIP+D2U", "regexp": "", "replacement": "_sip._udp.example.com"}
	return domain.NAPTR{
		RRHeader:    h,
		Order:       fieldUint16(data, "order"),
		Preference:  fieldUint16(data, "preference"),
		Flags:       fieldString(data, "flags"),
		Services:    fieldString(data, "services"),
		Regexp:      fieldString(data, "regexp"),
		Replacement: fieldString(data, "replacement"),
	}, nil
}
