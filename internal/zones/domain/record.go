package domain

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// RRHeader carries the fields common to every resource record.
type RRHeader struct {
	Name string
	TTL  uint32
}

// Header returns the common name/ttl fields.
func (h RRHeader) Header() RRHeader { return h }

// ResourceRecord is one typed DNS record produced by the conversion
// engine. The built-in variants below form a closed set; custom
// decoders may introduce further implementations. RData returns the
// presentation form of the type-specific fields and, together with the
// concrete type, name, ttl and type code, defines structural identity
// for deduplication.
type ResourceRecord interface {
	Header() RRHeader
	Type() RRType
	RData() string
}

// SOA is a start-of-authority record.
type SOA struct {
	RRHeader
	Mname   string
	Rname   string
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func (r SOA) Type() RRType { return RRTypeSOA }

func (r SOA) RData() string {
	return fmt.Sprintf("%s %s %d %d %d %d %d",
		r.Mname, r.Rname, r.Serial, r.Refresh, r.Retry, r.Expire, r.Minimum)
}

// NS is a name-server record.
type NS struct {
	RRHeader
	Dname string
}

func (r NS) Type() RRType  { return RRTypeNS }
func (r NS) RData() string { return r.Dname }

// A is an IPv4 address record.
type A struct {
	RRHeader
	IP net.IP
}

func (r A) Type() RRType  { return RRTypeA }
func (r A) RData() string { return r.IP.String() }

// AAAA is an IPv6 address record.
type AAAA struct {
	RRHeader
	IP net.IP
}

func (r AAAA) Type() RRType  { return RRTypeAAAA }
func (r AAAA) RData() string { return r.IP.String() }

// CNAME is a canonical-name record.
type CNAME struct {
	RRHeader
	Dname string
}

func (r CNAME) Type() RRType  { return RRTypeCNAME }
func (r CNAME) RData() string { return r.Dname }

// MX is a mail-exchange record.
type MX struct {
	RRHeader
	Preference uint16
	Exchange   string
}

func (r MX) Type() RRType  { return RRTypeMX }
func (r MX) RData() string { return fmt.Sprintf("%d %s", r.Preference, r.Exchange) }

// HINFO is a host-information record.
type HINFO struct {
	RRHeader
	CPU string
	OS  string
}

func (r HINFO) Type() RRType { return RRTypeHINFO }
func (r HINFO) RData() string {
	return strconv.Quote(r.CPU) + " " + strconv.Quote(r.OS)
}

// RP is a responsible-person record.
type RP struct {
	RRHeader
	Mbox string
	Txt  string
}

func (r RP) Type() RRType  { return RRTypeRP }
func (r RP) RData() string { return r.Mbox + " " + r.Txt }

// TXT is a text record holding one or more character strings.
type TXT struct {
	RRHeader
	Txt []string
}

func (r TXT) Type() RRType  { return RRTypeTXT }
func (r TXT) RData() string { return quoteStrings(r.Txt) }

// SPF is a sender-policy record; same shape as TXT.
type SPF struct {
	RRHeader
	Txt []string
}

func (r SPF) Type() RRType  { return RRTypeSPF }
func (r SPF) RData() string { return quoteStrings(r.Txt) }

// PTR is a pointer record.
type PTR struct {
	RRHeader
	Dname string
}

func (r PTR) Type() RRType  { return RRTypePTR }
func (r PTR) RData() string { return r.Dname }

// SSHFP is an SSH host key fingerprint record. Fingerprint holds the
// raw bytes decoded from the hex form in the zone document.
type SSHFP struct {
	RRHeader
	Algorithm       uint8
	FingerprintType uint8
	Fingerprint     []byte
}

func (r SSHFP) Type() RRType { return RRTypeSSHFP }
func (r SSHFP) RData() string {
	return fmt.Sprintf("%d %d %X", r.Algorithm, r.FingerprintType, r.Fingerprint)
}

// NAPTR is a naming-authority-pointer record.
type NAPTR struct {
	RRHeader
	Order       uint16
	Preference  uint16
	Flags       string
	Services    string
	Regexp      string
	Replacement string
}

func (r NAPTR) Type() RRType { return RRTypeNAPTR }
func (r NAPTR) RData() string {
	return fmt.Sprintf("%d %d %q %q %q %s",
		r.Order, r.Preference, r.Flags, r.Services, r.Regexp, r.Replacement)
}

// quoteStrings renders character strings in zone presentation form,
// one quoted segment per string.
func quoteStrings(ss []string) string {
	quoted := make([]string, len(ss))
	for i, s := range ss {
		quoted[i] = strconv.Quote(s)
	}
	return strings.Join(quoted, " ")
}
