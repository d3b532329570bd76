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
	"strings"
	"unicode/utf8"
)

const upperHex = "0123456789ABCDEF"

// unhex returns the value of an ASCII hex digit. The caller must have
// checked the digit with isASCIIHexDigit.
func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// isEscape reports whether s[i:] starts with a well-formed "%XX" triplet.
func isEscape(s string, i int) bool {
	return s[i] == '%' && i+2 < len(s) && isASCIIHexDigit(rune(s[i+1])) && isASCIIHexDigit(rune(s[i+2]))
}

// percentDecode replaces every well-formed "%XX" triplet by the byte it
// encodes. Malformed escapes are copied literally. Decoded octets that do not
// form valid UTF-8 are kept as raw bytes so that percentEncode restores them.
func percentDecode(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if isEscape(s, i) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 3
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// decodeUnreserved decodes any percent-encoded octet that corresponds to an
// unreserved character, as per RFC 3986 Section 6.2.2.2. Every other escape
// is left untouched.
func decodeUnreserved(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if isEscape(s, i) {
			c := unhex(s[i+1])<<4 | unhex(s[i+2])
			if isUnreserved(rune(c)) {
				b.WriteByte(c)
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// percentEncode writes s to b, replacing every byte the safe predicate
// rejects by its "%XX" escape with uppercase hex digits. Bytes outside
// US-ASCII are always escaped.
func percentEncode(b *strings.Builder, s string, safe func(byte) bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < utf8.RuneSelf && safe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
}

// writeDisplay writes decoded text to b for human consumption. Valid UTF-8 is
// written as is; stray bytes that are not part of a valid sequence are
// written as "%XX" escapes.
func writeDisplay(b *strings.Builder, s string) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte('%')
			b.WriteByte(upperHex[s[i]>>4])
			b.WriteByte(upperHex[s[i]&0x0F])
			i++
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
}
