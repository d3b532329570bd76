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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package httpurl

import (
	"strings"
	"testing"
)

func TestPercentDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no escapes", "abc", "abc"},
		{"single escape", "%41", "A"},
		{"lowercase hex", "%c3%a9", "é"},
		{"uppercase hex", "%C3%A9", "é"},
		{"plus is literal", "a+b", "a+b"},
		{"encoded plus", "%2B", "+"},
		{"trailing percent", "100%", "100%"},
		{"truncated escape", "%4", "%4"},
		{"non-hex escape", "%zz%41", "%zzA"},
		{"encoded percent", "%2541", "%41"},
		{"invalid utf-8 kept", "%FF", "\xff"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := percentDecode(tt.input); got != tt.want {
				t.Errorf("percentDecode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestDecodeUnreserved verifies normalization per RFC 3986, Section 6.2.2.2.
func TestDecodeUnreserved(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"letters and digits", "%41%62%30", "Ab0"},
		{"unreserved symbols", "%2D%2E%5F%7E", "-._~"},
		{"dots", "%2e%2E", ".."},
		{"reserved kept", "%2F%3F%23", "%2F%3F%23"},
		{"non-ascii kept", "%C3%A9", "%C3%A9"},
		{"case of kept escapes unchanged", "%2f", "%2f"},
		{"malformed kept", "%G1%", "%G1%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeUnreserved(tt.input); got != tt.want {
				t.Errorf("decodeUnreserved(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPercentEncode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		safe  func(byte) bool
		want  string
	}{
		{"path keeps sub-delims", "a+b;c=d", isPathSafe, "a+b;c=d"},
		{"path escapes slash", "a/b", isPathSafe, "a%2Fb"},
		{"query escapes delimiters", "a&b=c+d", isQuerySafe, "a%26b%3Dc%2Bd"},
		{"fragment keeps slash and question mark", "/a?b", isFragmentSafe, "/a?b"},
		{"space", "a b", isPathSafe, "a%20b"},
		{"percent always escaped", "%41", isPathSafe, "%2541"},
		{"utf-8 bytes", "é", isPathSafe, "%C3%A9"},
		{"raw byte", "\xff", isPathSafe, "%FF"},
		{"control", "\x00\x7f", isFragmentSafe, "%00%7F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			percentEncode(&b, tt.input, tt.safe)
			if got := b.String(); got != tt.want {
				t.Errorf("percentEncode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPercentEncodeDecodeAllBytes(t *testing.T) {
	for c := 0; c <= 0xFF; c++ {
		s := "x" + string([]byte{byte(c)}) + "y"
		for _, safe := range []func(byte) bool{isPathSafe, isQuerySafe, isFragmentSafe} {
			var b strings.Builder
			percentEncode(&b, s, safe)
			if got := percentDecode(b.String()); got != s {
				t.Errorf("percentDecode(percentEncode(%q)) = %q", s, got)
			}
		}
	}
}

func TestWriteDisplay(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"résumé", "résumé"},
		{"\U0001F43C", "\U0001F43C"},
		{"a b%", "a b%"},
		{"\xff", "%FF"},
		{"a\xc3", "a%C3"},
	}

	for _, tt := range tests {
		var b strings.Builder
		writeDisplay(&b, tt.input)
		if got := b.String(); got != tt.want {
			t.Errorf("writeDisplay(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
