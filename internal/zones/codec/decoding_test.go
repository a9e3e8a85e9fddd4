package codec

import (
	"errors"
	"net"
	"reflect"
	"testing"

	"github.com/zonekit/zoned/internal/zones/domain"
)

func rawRecord(name, rtype string, ttl uint32, data map[string]any) domain.RawRecord {
	return domain.RawRecord{Name: name, Type: rtype, TTL: ttl, Data: data}
}

func TestDecode_WellFormedFieldRoundTrip(t *testing.T) {
	h := domain.RRHeader{Name: "example.com", TTL: 3600}

	tests := []struct {
		rtype    string
		data     map[string]any
		expected domain.ResourceRecord
	}{
		{
			rtype: "SOA",
			data: map[string]any{
				"mname": "ns1.example.com", "rname": "admin.example.com",
				"serial": 2024010101, "refresh": 7200, "retry": 900,
				"expire": 1209600, "minimum": 300,
			},
			expected: domain.SOA{RRHeader: h, Mname: "ns1.example.com", Rname: "admin.example.com",
				Serial: 2024010101, Refresh: 7200, Retry: 900, Expire: 1209600, Minimum: 300},
		},
		{
			rtype:    "NS",
			data:     map[string]any{"dname": "ns1.example.com"},
			expected: domain.NS{RRHeader: h, Dname: "ns1.example.com"},
		},
		{
			rtype:    "A",
			data:     map[string]any{"ip": "10.0.0.1"},
			expected: domain.A{RRHeader: h, IP: net.ParseIP("10.0.0.1").To4()},
		},
		{
			rtype:    "AAAA",
			data:     map[string]any{"ip": "2001:db8::1"},
			expected: domain.AAAA{RRHeader: h, IP: net.ParseIP("2001:db8::1").To16()},
		},
		{
			rtype:    "CNAME",
			data:     map[string]any{"dname": "canonical.example.com"},
			expected: domain.CNAME{RRHeader: h, Dname: "canonical.example.com"},
		},
		{
			rtype:    "MX",
			data:     map[string]any{"preference": 10, "exchange": "mail.example.com"},
			expected: domain.MX{RRHeader: h, Preference: 10, Exchange: "mail.example.com"},
		},
		{
			rtype:    "HINFO",
			data:     map[string]any{"cpu": "ARM64", "os": "Linux"},
			expected: domain.HINFO{RRHeader: h, CPU: "ARM64", OS: "Linux"},
		},
		{
			rtype:    "RP",
			data:     map[string]any{"mbox": "hostmaster.example.com", "txt": "ops.example.com"},
			expected: domain.RP{RRHeader: h, Mbox: "hostmaster.example.com", Txt: "ops.example.com"},
		},
		{
			rtype:    "TXT",
			data:     map[string]any{"txt": "v=spf1 -all"},
			expected: domain.TXT{RRHeader: h, Txt: []string{"v=spf1 -all"}},
		},
		{
			rtype:    "SPF",
			data:     map[string]any{"spf": `"v=spf1 mx -all"`},
			expected: domain.SPF{RRHeader: h, Txt: []string{"v=spf1 mx -all"}},
		},
		{
			rtype:    "PTR",
			data:     map[string]any{"dname": "host.example.com"},
			expected: domain.PTR{RRHeader: h, Dname: "host.example.com"},
		},
		{
			rtype:    "SSHFP",
			data:     map[string]any{"alg": 1, "fptype": 2, "fp": "1A2B"},
			expected: domain.SSHFP{RRHeader: h, Algorithm: 1, FingerprintType: 2, Fingerprint: []byte{0x1a, 0x2b}},
		},
		{
			rtype: "NAPTR",
			data: map[string]any{
				"order": 100, "preference": 10, "flags": "s",
				"services": "SIP+D2U", "regexp": "", "replacement": "_sip._udp.example.com",
			},
			expected: domain.NAPTR{RRHeader: h, Order: 100, Preference: 10, Flags: "s",
				Services: "SIP+D2U", Regexp: "", Replacement: "_sip._udp.example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.rtype, func(t *testing.T) {
			got, err := Decode(rawRecord("example.com", tt.rtype, 3600, tt.data))
			if err != nil {
				t.Fatalf("Decode(%s) returned error: %v", tt.rtype, err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Decode(%s) = %#v, want %#v", tt.rtype, got, tt.expected)
			}
		})
	}
}

func TestDecode_CaseInsensitiveTypeTag(t *testing.T) {
	got, err := Decode(rawRecord("example.com", "cname", 300, map[string]any{"dname": "x.example.com"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(domain.CNAME); !ok {
		t.Errorf("expected CNAME record, got %T", got)
	}
}

func TestDecode_MissingKeysYieldZeroFields(t *testing.T) {
	got, err := Decode(rawRecord("example.com", "MX", 300, map[string]any{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mx, ok := got.(domain.MX)
	if !ok {
		t.Fatalf("expected MX, got %T", got)
	}
	if mx.Preference != 0 || mx.Exchange != "" {
		t.Errorf("expected zero-valued fields, got %+v", mx)
	}
}

func TestDecode_UnsupportedType(t *testing.T) {
	for _, rtype := range []string{"FOO", "SRV", "CAA", ""} {
		_, err := Decode(rawRecord("example.com", rtype, 300, map[string]any{}))
		if !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("Decode(type=%q) error = %v, want ErrUnsupportedType", rtype, err)
		}
	}
}

func TestDecode_NumericFieldsFromGenericParsers(t *testing.T) {
	// JSON parsing surfaces numbers as float64, TOML as int64, and
	// quoted numbers as strings; all must land in the typed fields.
	for _, serial := range []any{float64(42), int64(42), "42", 42} {
		got, err := Decode(rawRecord("example.com", "SOA", 300, map[string]any{"serial": serial}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.(domain.SOA).Serial != 42 {
			t.Errorf("serial %T(%v) decoded to %d, want 42", serial, serial, got.(domain.SOA).Serial)
		}
	}
}
