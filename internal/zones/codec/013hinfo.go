package codec

import "github.com/zonekit/zoned/internal/zones/domain"

// decodeHINFO decodes an HINFO record from its attribute mapping.
func decodeHINFO(h domain.RRHeader, data map[string]any) (domain.ResourceRecord, error) {
	// data = {"cpu": "ARM64", "os": "Linux"}
	return domain.HINFO{
		RRHeader: h,
		CPU:      fieldString(data, "cpu"),
		OS:       fieldString(data, "os"),
	}, nil
}
