package codec

import (
	"fmt"

	"github.com/zonekit/zoned/internal/zones/domain"
)

// decodeSPF decodes an SPF record from its attribute mapping. SPF data
// shares the character-string syntax of TXT.
func decodeSPF(h domain.RRHeader, data map[string]any) (domain.ResourceRecord, error) {
	// data = {"spf": "\"v=spf1 mx -all\""}
	segments, err := parseCharacterStrings(fieldString(data, "spf"))
	if err != nil {
		return nil, fmt.Errorf("invalid SPF data: %w", err)
	}
	return domain.SPF{RRHeader: h, Txt: segments}, nil
}
