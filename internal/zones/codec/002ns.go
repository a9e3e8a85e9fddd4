package codec

import "github.com/zonekit/zoned/internal/zones/domain"

// decodeNS decodes an NS record from its attribute mapping.
func decodeNS(h domain.RRHeader, data map[string]any) (domain.ResourceRecord, error) {
	// data = {"dname": "ns1.example.com"}
	return domain.NS{RRHeader: h, Dname: fieldString(data, "dname")}, nil
}
