package codec

import "github.com/zonekit/zoned/internal/zones/domain"

// decodePTR decodes a PTR record from its attribute mapping.
func decodePTR(h domain.RRHeader, data map[string]any) (domain.ResourceRecord, error) {
	// data = {"dname": "host.example.com"}
	return domain.PTR{RRHeader: h, Dname: fieldString(data, "dname")}, nil
}
