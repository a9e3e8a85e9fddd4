package domain

import (
	"fmt"
	"strings"
)

// RRType represents a DNS resource record type (e.g. A, AAAA, MX).
// See IANA DNS Parameters for assigned codes.
type RRType uint16

// DNS Resource Record Type constants for the closed set of types the
// built-in decoder understands. Anything else is handed to the custom
// parser chain.
const (
	RRTypeA     RRType = 1  // A - IPv4 address
	RRTypeNS    RRType = 2  // NS - Name server
	RRTypeCNAME RRType = 5  // CNAME - Canonical name
	RRTypeSOA   RRType = 6  // SOA - Start of authority
	RRTypePTR   RRType = 12 // PTR - Pointer
	RRTypeHINFO RRType = 13 // HINFO - Host information
	RRTypeMX    RRType = 15 // MX - Mail exchange
	RRTypeTXT   RRType = 16 // TXT - Text
	RRTypeRP    RRType = 17 // RP - Responsible person
	RRTypeAAAA  RRType = 28 // AAAA - IPv6 address
	RRTypeNAPTR RRType = 35 // NAPTR - Naming authority pointer
	RRTypeSSHFP RRType = 44 // SSHFP - SSH host key fingerprint
	RRTypeSPF   RRType = 99 // SPF - Sender policy framework
)

// IsValid returns true if the RRType is one of the supported types.
func (t RRType) IsValid() bool {
	switch t {
	case RRTypeA, RRTypeNS, RRTypeCNAME, RRTypeSOA, RRTypePTR, RRTypeHINFO,
		RRTypeMX, RRTypeTXT, RRTypeRP, RRTypeAAAA, RRTypeNAPTR, RRTypeSSHFP,
		RRTypeSPF:
		return true
	default:
		return false
	}
}

// String returns the textual representation of the RRType.
// For unknown types, it returns "UNKNOWN(<value>)".
func (t RRType) String() string {
	switch t {
	case RRTypeA:
		return "A"
	case RRTypeNS:
		return "NS"
	case RRTypeCNAME:
		return "CNAME"
	case RRTypeSOA:
		return "SOA"
	case RRTypePTR:
		return "PTR"
	case RRTypeHINFO:
		return "HINFO"
	case RRTypeMX:
		return "MX"
	case RRTypeTXT:
		return "TXT"
	case RRTypeRP:
		return "RP"
	case RRTypeAAAA:
		return "AAAA"
	case RRTypeNAPTR:
		return "NAPTR"
	case RRTypeSSHFP:
		return "SSHFP"
	case RRTypeSPF:
		return "SPF"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", t)
	}
}

// RRTypeFromString converts a record type string to its corresponding
// RRType value. Matching is case-insensitive; unknown strings yield 0.
func RRTypeFromString(s string) RRType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return RRTypeA
	case "NS":
		return RRTypeNS
	case "CNAME":
		return RRTypeCNAME
	case "SOA":
		return RRTypeSOA
	case "PTR":
		return RRTypePTR
	case "HINFO":
		return RRTypeHINFO
	case "MX":
		return RRTypeMX
	case "TXT":
		return RRTypeTXT
	case "RP":
		return RRTypeRP
	case "AAAA":
		return RRTypeAAAA
	case "NAPTR":
		return RRTypeNAPTR
	case "SSHFP":
		return RRTypeSSHFP
	case "SPF":
		return RRTypeSPF
	default:
		return 0 // invalid/unknown
	}
}
