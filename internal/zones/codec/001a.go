package codec

import (
	"fmt"
	"net"

	"github.com/zonekit/zoned/internal/zones/domain"
)

// decodeA decodes an A record from its attribute mapping.
func decodeA(h domain.RRHeader, data map[string]any) (domain.ResourceRecord, error) {
	// data = {"ip": "192.168.0.1"}
	s := fieldString(data, "ip")
	ip := net.ParseIP(s)
	if ip == nil || ip.To4() == nil {
		return nil, fmt.Errorf("invalid A record IP: %q", s)
	}
	return domain.A{RRHeader: h, IP: ip.To4()}, nil
}
