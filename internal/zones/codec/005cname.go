package codec

import "github.com/zonekit/zoned/internal/zones/domain"

// decodeCNAME decodes a CNAME record from its attribute mapping.
func decodeCNAME(h domain.RRHeader, data map[string]any) (domain.ResourceRecord, error) {
	// data = {"dname": "canonical.example.com"}
	return domain.CNAME{RRHeader: h, Dname: fieldString(data, "dname")}, nil
}
