package codec

import "strconv"

// Attribute lookups are tolerant about key presence and numeric type:
// zone documents arrive through generic YAML/JSON/TOML parsing, so a
// number may surface as int, int64, uint64 or float64, and quoted
// numbers as strings. Missing keys yield the zero value rather than
// failing the record.

// fieldString returns the named attribute as a string, or "" if the
// key is absent or not a string.
func fieldString(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return s
}

// fieldUint returns the named attribute as an unsigned integer
// truncated to bits, or 0 if the key is absent or not numeric.
func fieldUint(data map[string]any, key string, bits int) uint64 {
	var n uint64
	switch v := data[key].(type) {
	case int:
		if v >= 0 {
			n = uint64(v)
		}
	case int64:
		if v >= 0 {
			n = uint64(v)
		}
	case uint64:
		n = v
	case float64:
		if v >= 0 {
			n = uint64(v)
		}
	case string:
		n, _ = strconv.ParseUint(v, 10, 64)
	}
	if bits < 64 {
		n &= uint64(1)<<bits - 1
	}
	return n
}

func fieldUint32(data map[string]any, key string) uint32 {
	return uint32(fieldUint(data, key, 32))
}

func fieldUint16(data map[string]any, key string) uint16 {
	return uint16(fieldUint(data, key, 16))
}

func fieldUint8(data map[string]any, key string) uint8 {
	return uint8(fieldUint(data, key, 8))
}
