package codec

import (
	"fmt"
	"strings"

	"github.com/zonekit/zoned/internal/zones/domain"
)

// decodeTXT decodes a TXT record from its attribute mapping. The txt
// field is in zone presentation form and may carry escape sequences;
// malformed escapes fail the record, never the zone.
func decodeTXT(h domain.RRHeader, data map[string]any) (domain.ResourceRecord, error) {
	// data = {"txt": "\"some text\""}
	segments, err := parseCharacterStrings(fieldString(data, "txt"))
	if err != nil {
		return nil, fmt.Errorf("invalid TXT data: %w", err)
	}
	return domain.TXT{RRHeader: h, Txt: segments}, nil
}

// parseCharacterStrings splits a presentation-form text value into its
// character strings. A value without quotes is a single segment; a
// quoted value may carry several segments separated by whitespace.
// Supported escapes are \\ and \" plus RFC 1035 decimal escapes \DDD.
func parseCharacterStrings(s string) ([]string, error) {
	if !strings.Contains(s, `"`) {
		seg, err := unescape(s)
		if err != nil {
			return nil, err
		}
		return []string{seg}, nil
	}

	var segments []string
	i := 0
	for i < len(s) {
		if s[i] == ' ' || s[i] == '\t' {
			i++
			continue
		}
		if s[i] != '"' {
			return nil, fmt.Errorf("unexpected character %q outside quoted string", s[i])
		}
		i++ // consume opening quote
		var b strings.Builder
		closed := false
		for i < len(s) {
			c := s[i]
			if c == '"' {
				i++
				closed = true
				break
			}
			if c == '\\' {
				r, n, err := unescapeAt(s, i)
				if err != nil {
					return nil, err
				}
				b.WriteByte(r)
				i += n
				continue
			}
			b.WriteByte(c)
			i++
		}
		if !closed {
			return nil, fmt.Errorf("unterminated quoted string")
		}
		segments = append(segments, b.String())
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("no character strings found")
	}
	return segments, nil
}

// unescape processes escape sequences in an unquoted text value.
func unescape(s string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			i++
			continue
		}
		r, n, err := unescapeAt(s, i)
		if err != nil {
			return "", err
		}
		b.WriteByte(r)
		i += n
	}
	return b.String(), nil
}

// unescapeAt decodes one escape sequence starting at the backslash at
// s[i], returning the resulting byte and the number of input bytes
// consumed.
func unescapeAt(s string, i int) (byte, int, error) {
	if i+1 >= len(s) {
		return 0, 0, fmt.Errorf("dangling escape at end of string")
	}
	c := s[i+1]
	if c < '0' || c > '9' {
		// \X for any non-digit X is the literal character
		return c, 2, nil
	}
	// \DDD decimal escape, exactly three digits, one byte
	if i+3 >= len(s) {
		return 0, 0, fmt.Errorf("truncated decimal escape %q", s[i:])
	}
	val := 0
	for j := i + 1; j <= i+3; j++ {
		d := s[j]
		if d < '0' || d > '9' {
			return 0, 0, fmt.Errorf("invalid decimal escape %q", s[i:i+4])
		}
		val = val*10 + int(d-'0')
	}
	if val > 255 {
		return 0, 0, fmt.Errorf("decimal escape %q out of range", s[i:i+4])
	}
	return byte(val), 4, nil
}
