package domain

import "testing"

func TestRRTypeFromString_CaseInsensitive(t *testing.T) {
	tests := []struct {
		input    string
		expected RRType
	}{
		{"A", RRTypeA},
		{"a", RRTypeA},
		{"aaaa", RRTypeAAAA},
		{"Cname", RRTypeCNAME},
		{"soa", RRTypeSOA},
		{"NS", RRTypeNS},
		{"mx", RRTypeMX},
		{"hinfo", RRTypeHINFO},
		{"rp", RRTypeRP},
		{"TxT", RRTypeTXT},
		{"spf", RRTypeSPF},
		{"ptr", RRTypePTR},
		{"sshfp", RRTypeSSHFP},
		{"NAPTR", RRTypeNAPTR},
		{" a ", RRTypeA},
	}
	for _, tt := range tests {
		if got := RRTypeFromString(tt.input); got != tt.expected {
			t.Errorf("RRTypeFromString(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestRRTypeFromString_Unknown(t *testing.T) {
	for _, input := range []string{"FOO", "SRV", "CAA", ""} {
		if got := RRTypeFromString(input); got != 0 {
			t.Errorf("RRTypeFromString(%q) = %v, want 0", input, got)
		}
	}
}

func TestRRType_StringRoundTrip(t *testing.T) {
	types := []RRType{
		RRTypeA, RRTypeNS, RRTypeCNAME, RRTypeSOA, RRTypePTR, RRTypeHINFO,
		RRTypeMX, RRTypeTXT, RRTypeRP, RRTypeAAAA, RRTypeNAPTR, RRTypeSSHFP,
		RRTypeSPF,
	}
	for _, rt := range types {
		if !rt.IsValid() {
			t.Errorf("%v should be valid", rt)
		}
		if got := RRTypeFromString(rt.String()); got != rt {
			t.Errorf("round trip failed for %v: got %v", rt, got)
		}
	}
}

func TestRRType_StringUnknown(t *testing.T) {
	if got := RRType(41).String(); got != "UNKNOWN(41)" {
		t.Errorf("expected UNKNOWN(41), got %q", got)
	}
	if RRType(41).IsValid() {
		t.Errorf("RRType(41) should not be valid")
	}
}
