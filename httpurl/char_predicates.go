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

import "strings"

// isASCIILetter checks if a rune is an ASCII letter.
func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// isASCIIDigit checks if a rune is an ASCII digit.
func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isASCIIHexDigit checks if a rune is an ASCII hexadecimal digit.
func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// isSchemeChar checks if a rune may appear after the first letter of a scheme.
func isSchemeChar(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) || r == '+' || r == '-' || r == '.'
}

// isForbiddenBidiFormatting checks for bidirectional formatting characters.
// These are LRM (U+200E), RLM (U+200F), and LRE, RLE, PDF, LRO, RLO (U+202A to U+202E).
func isForbiddenBidiFormatting(c rune) bool {
	return (c >= '\u202A' && c <= '\u202E') || c == '\u200E' || c == '\u200F'
}

// isUnreserved checks if a character is in the unreserved set as defined by RFC 3986.
func isUnreserved(c rune) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

// isSubDelim checks if a character is in the sub-delims set as defined by RFC 3986.
func isSubDelim(c rune) bool {
	return strings.ContainsRune("!$&'()*+,;=", c)
}

// isPathSafe reports whether a byte may appear unescaped in an encoded path segment
// (pchar in RFC 3986, Section 3.3).
func isPathSafe(c byte) bool {
	r := rune(c)
	return isUnreserved(r) || isSubDelim(r) || r == ':' || r == '@'
}

// isQuerySafe reports whether a byte may appear unescaped in an encoded query key
// or value. The pair delimiters '&' and '=' are escaped, and so is '+' to keep
// form decoders from reading it as a space.
func isQuerySafe(c byte) bool {
	switch c {
	case '&', '=', '+':
		return false
	case '/', '?':
		return true
	}
	return isPathSafe(c)
}

// isFragmentSafe reports whether a byte may appear unescaped in an encoded fragment.
func isFragmentSafe(c byte) bool {
	return c == '/' || c == '?' || isPathSafe(c)
}
