package codec

import "github.com/zonekit/zoned/internal/zones/domain"

// decodeRP decodes an RP record from its attribute mapping.
func decodeRP(h domain.RRHeader, data map[string]any) (domain.ResourceRecord, error) {
	// data = {"mbox": "hostmaster.example.com", "txt": "ops.example.com"}
	return domain.RP{
		RRHeader: h,
		Mbox:     fieldString(data, "mbox"),
		Txt:      fieldString(data, "txt"),
	}, nil
}
