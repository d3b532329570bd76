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
	"strconv"
	"strings"
)

const (
	ipv4Octets     = 4
	ipv6Groups     = 8
	maxGroupDigits = 4
	maxOctetDigits = 3
)

// parseIPv4 parses a dotted-decimal IPv4 literal. Exactly four decimal
// components in 0-255 are required and leading zeros are rejected, since
// "010" could be read as octal.
func parseIPv4(s string) ([4]byte, error) {
	var octets [4]byte

	parts := strings.Split(s, ".")
	if len(parts) != ipv4Octets {
		return octets, hostError("IPv4 address must have four components", s)
	}
	for i, part := range parts {
		if part == "" || len(part) > maxOctetDigits {
			return octets, hostError("invalid IPv4 component", s)
		}
		for _, r := range part {
			if !isASCIIDigit(r) {
				return octets, hostError("invalid IPv4 component", s)
			}
		}
		if len(part) > 1 && part[0] == '0' {
			return octets, hostError("leading zero in IPv4 component", s)
		}
		v, err := strconv.Atoi(part)
		if err != nil || v > 255 {
			return octets, hostError("IPv4 component out of range", s)
		}
		octets[i] = byte(v)
	}
	return octets, nil
}

// formatIPv4 returns the dotted-decimal form of an IPv4 address.
func formatIPv4(octets [4]byte) string {
	var b strings.Builder
	for i, o := range octets {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(int(o)))
	}
	return b.String()
}

// parseIPv6Groups parses a colon-separated run of hex groups ("a:b:c").
// An empty string yields no groups.
func parseIPv6Groups(s, literal string) ([]uint16, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ":")
	groups := make([]uint16, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, hostError("empty IPv6 group", literal)
		}
		if len(part) > maxGroupDigits {
			return nil, hostError("IPv6 group has more than four digits", literal)
		}
		for _, r := range part {
			if !isASCIIHexDigit(r) {
				return nil, hostCharError("invalid IPv6 character", r)
			}
		}
		v, err := strconv.ParseUint(part, 16, 16)
		if err != nil {
			return nil, hostError("invalid IPv6 group", literal)
		}
		groups = append(groups, uint16(v))
	}
	return groups, nil
}

// parseIPv6 parses an IPv6 literal without brackets: eight hex groups, or
// fewer groups with a single "::" standing for one or more zero groups.
// Embedded IPv4 tails and zone identifiers are not accepted.
func parseIPv6(s string) ([8]uint16, error) {
	var addr [8]uint16

	if strings.Count(s, "::") > 1 || strings.Contains(s, ":::") {
		return addr, hostError("IPv6 address may compress zeros only once", s)
	}

	head, tail, compressed := strings.Cut(s, "::")
	if !compressed {
		groups, err := parseIPv6Groups(s, s)
		if err != nil {
			return addr, err
		}
		if len(groups) != ipv6Groups {
			return addr, hostError("IPv6 address must have eight groups", s)
		}
		copy(addr[:], groups)
		return addr, nil
	}

	before, err := parseIPv6Groups(head, s)
	if err != nil {
		return addr, err
	}
	after, err := parseIPv6Groups(tail, s)
	if err != nil {
		return addr, err
	}
	if len(before)+len(after) >= ipv6Groups {
		return addr, hostError("IPv6 address has too many groups", s)
	}
	copy(addr[:], before)
	copy(addr[ipv6Groups-len(after):], after)
	return addr, nil
}

// longestZeroRun returns the start and length of the longest run of zero
// groups; the leftmost run wins a tie. The length is 0 if there is no zero.
func longestZeroRun(addr [8]uint16) (int, int) {
	bestStart, bestLen := 0, 0
	for i := 0; i < ipv6Groups; {
		if addr[i] != 0 {
			i++
			continue
		}
		start := i
		for i < ipv6Groups && addr[i] == 0 {
			i++
		}
		if i-start > bestLen {
			bestStart, bestLen = start, i-start
		}
	}
	return bestStart, bestLen
}

// formatIPv6 returns the canonical text of an IPv6 address: lowercase hex
// without leading zeros, and the longest run of zero groups, even a single
// one, replaced by "::".
func formatIPv6(addr [8]uint16) string {
	writeGroups := func(b *strings.Builder, groups []uint16) {
		for i, g := range groups {
			if i > 0 {
				b.WriteByte(':')
			}
			b.WriteString(strconv.FormatUint(uint64(g), 16))
		}
	}

	var b strings.Builder
	start, n := longestZeroRun(addr)
	if n == 0 {
		writeGroups(&b, addr[:])
		return b.String()
	}
	writeGroups(&b, addr[:start])
	b.WriteString("::")
	writeGroups(&b, addr[start+n:])
	return b.String()
}
