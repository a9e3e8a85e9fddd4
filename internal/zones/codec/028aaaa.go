package codec

import (
	"fmt"
	"net"

	"github.com/zonekit/zoned/internal/zones/domain"
)

// decodeAAAA decodes an AAAA record from its attribute mapping.
func decodeAAAA(h domain.RRHeader, data map[string]any) (domain.ResourceRecord, error) {
	// data = {"ip": "2001:db8::ff00:42:8329"}
	s := fieldString(data, "ip")
	ip := net.ParseIP(s)
	if ip == nil || ip.To16() == nil || ip.To4() != nil {
		return nil, fmt.Errorf("invalid AAAA record IP: %q", s)
	}
	return domain.AAAA{RRHeader: h, IP: ip.To16()}, nil
}
