/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package httpurl

import (
	"net/netip"
	"strings"
	"unicode"
	"unicode/utf8"

	"braces.dev/errtrace"
	"golang.org/x/text/unicode/norm"
)

const (
	maxLabelLength = 63
	maxNameLength  = 253
)

// HostKind tells which variant a Host holds.
type HostKind int

const (
	// DNS is a registered name made of ASCII-Compatible-Encoding labels.
	DNS HostKind = iota + 1
	// IPv4 is a dotted-decimal IPv4 literal.
	IPv4
	// IPv6 is an IPv6 literal.
	IPv6
)

// String returns the name of the host kind.
func (k HostKind) String() string {
	switch k {
	case DNS:
		return "dns"
	case IPv4:
		return "ipv4"
	case IPv6:
		return "ipv6"
	default:
		return "unknown"
	}
}

// Host is a validated, canonical URL host. It is one of an IPv4 literal, an
// IPv6 literal or a DNS name, as reported by Kind.
//
// Host values are comparable: two hosts are == iff their canonical forms are
// identical, so "bücher" and "xn--bcher-kva" compare equal, and so do
// "2001:0db8:0:0:0:0:0:1" and "[2001:db8::1]".
type Host struct {
	kind HostKind
	ipv4 [4]byte
	ipv6 [8]uint16
	name string
}

// ParseHost classifies and canonicalizes a host token. The token must not
// contain user-info or a port; IPv6 literals may be bracketed or not.
func ParseHost(s string) (Host, error) {
	h, err := parseHost(s)
	if err != nil {
		return Host{}, errtrace.Wrap(newValidationError(err))
	}
	return h, nil
}

// parseHost is ParseHost without the public error conversion.
func parseHost(s string) (Host, error) {
	if s == "" {
		return Host{}, &kindError{kind: ErrMissingSchemeOrHost, message: "missing host"}
	}

	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return Host{}, hostError("unterminated IP literal", s)
		}
		return newIPv6Host(s[1 : len(s)-1])
	}
	if strings.ContainsAny(s, ":]") {
		return newIPv6Host(s)
	}

	if looksLikeIPv4(s) {
		octets, err := parseIPv4(s)
		if err != nil {
			return Host{}, err
		}
		return Host{kind: IPv4, ipv4: octets}, nil
	}

	return parseDNSHost(s)
}

func newIPv6Host(s string) (Host, error) {
	addr, err := parseIPv6(s)
	if err != nil {
		return Host{}, err
	}
	return Host{kind: IPv6, ipv6: addr}, nil
}

// looksLikeIPv4 reports whether a host must be read as an IPv4 literal:
// it only holds digits and dots, or its last label is a number (decimal or
// "0x" hex). Such a host is never a DNS name, even when it is not a valid
// IPv4 literal.
func looksLikeIPv4(s string) bool {
	last := s[strings.LastIndexByte(s, '.')+1:]
	if last == "" {
		return false
	}
	if isNumeric(last) {
		return true
	}
	if len(last) > 2 && (last[:2] == "0x" || last[:2] == "0X") {
		for _, r := range last[2:] {
			if !isASCIIHexDigit(r) {
				return false
			}
		}
		return true
	}
	return false
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !isASCIIDigit(r) {
			return false
		}
	}
	return s != ""
}

// dotReplacer maps Unicode full stops to the ASCII label separator.
func dotReplacer() *strings.Replacer {
	return strings.NewReplacer(
		"。", ".",
		"．", ".",
		"｡", ".",
	)
}

// parseDNSHost validates a registered name and converts every label to its
// ASCII form.
func parseDNSHost(s string) (Host, error) {
	name := dotReplacer().Replace(norm.NFC.String(percentDecode(s)))
	if !utf8.ValidString(name) {
		return Host{}, hostError("host is not valid UTF-8", s)
	}

	labels := strings.Split(name, ".")
	for i, label := range labels {
		if label == "" {
			return Host{}, hostError("empty label", s)
		}
		if err := validateLabelChars(label); err != nil {
			return Host{}, err
		}
		if err := validateBidiLabel(label); err != nil {
			return Host{}, err
		}
		ascii, err := labelToASCII(label)
		if err != nil {
			return Host{}, err
		}
		if len(ascii) > maxLabelLength {
			return Host{}, hostError("label longer than 63 octets", label)
		}
		labels[i] = ascii
	}

	ascii := strings.Join(labels, ".")
	if len(ascii) > maxNameLength {
		return Host{}, hostError("name longer than 253 octets", s)
	}
	if looksLikeIPv4(ascii) {
		return Host{}, hostError("name ends in a number", s)
	}
	return Host{kind: DNS, name: ascii}, nil
}

// validateLabelChars accepts ASCII letters, digits and hyphens, and any
// non-ASCII character that is not a space, a control or a bidi formatting
// character. Finer Unicode rules are left to the IDNA mapping.
func validateLabelChars(label string) error {
	for _, r := range label {
		switch {
		case isASCIILetter(r), isASCIIDigit(r), r == '-':
		case r < utf8.RuneSelf:
			return hostCharError("invalid character in host", r)
		case unicode.IsSpace(r), unicode.IsControl(r), isForbiddenBidiFormatting(r):
			return hostCharError("invalid character in host", r)
		}
	}
	return nil
}

// Kind returns the variant of the host.
func (h Host) Kind() HostKind { return h.kind }

// IsZero reports whether h is the zero Host, which no parse ever returns.
func (h Host) IsZero() bool { return h.kind == 0 }

// Name returns the canonical ASCII form of the host: dotted decimal for IPv4,
// the bracketed compressed form for IPv6 and the punycode labels for DNS.
func (h Host) Name() string {
	switch h.kind {
	case IPv4:
		return formatIPv4(h.ipv4)
	case IPv6:
		return "[" + formatIPv6(h.ipv6) + "]"
	default:
		return h.name
	}
}

// String returns the display form of the host: IPv6 without brackets and DNS
// labels decoded to Unicode.
func (h Host) String() string {
	switch h.kind {
	case IPv4:
		return formatIPv4(h.ipv4)
	case IPv6:
		return formatIPv6(h.ipv6)
	case DNS:
		labels := h.Labels()
		for i, label := range labels {
			labels[i] = labelToUnicode(label)
		}
		return strings.Join(labels, ".")
	default:
		return ""
	}
}

// Labels returns the ASCII labels of a DNS host, or nil for IP literals.
func (h Host) Labels() []string {
	if h.kind != DNS {
		return nil
	}
	return strings.Split(h.name, ".")
}

// Addr returns the address of an IP literal host. The boolean is false for
// DNS names.
func (h Host) Addr() (netip.Addr, bool) {
	switch h.kind {
	case IPv4:
		return netip.AddrFrom4(h.ipv4), true
	case IPv6:
		var b [16]byte
		for i, g := range h.ipv6 {
			b[2*i] = byte(g >> 8)
			b[2*i+1] = byte(g)
		}
		return netip.AddrFrom16(b), true
	default:
		return netip.Addr{}, false
	}
}

// Equal reports whether h and other have the same canonical form.
func (h Host) Equal(other Host) bool { return h == other }

// urlForm returns the host as written in a URL, IPv6 bracketed; ascii selects
// between the punycode and the display form of DNS names.
func (h Host) urlForm(ascii bool) string {
	if ascii || h.kind == IPv6 {
		return h.Name()
	}
	return h.String()
}
