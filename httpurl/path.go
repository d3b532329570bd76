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
	"slices"
	"strings"
)

// Path is a normalized URL path: decoded segments without dot segments,
// plus whether the path ends with a slash. The zero Path is the empty path
// "/".
type Path struct {
	segments      []string
	trailingSlash bool
}

// EmptyPath returns the canonical empty path "/".
func EmptyPath() Path { return Path{} }

// ParsePath parses a raw, percent-encoded path. Backslashes are read as
// slashes, dot segments (also when written "%2e") are removed and every
// segment is percent-decoded. Parsing never fails: malformed escapes are kept
// literally.
func ParsePath(raw string) Path {
	return newPath(decodeUnreserved(raw), true)
}

// PathOf builds a path from decoded text. Backslashes are read as slashes
// and dot segments are removed; '%' has no special meaning.
func PathOf(text string) Path {
	return newPath(text, false)
}

func newPath(s string, decode bool) Path {
	s = strings.ReplaceAll(s, `\`, "/")
	if !strings.HasPrefix(s, "/") {
		s = "/" + s
	}
	s = strings.TrimPrefix(removeDotSegments(s), "/")
	if s == "" {
		return Path{}
	}

	segments := strings.Split(s, "/")
	var p Path
	if segments[len(segments)-1] == "" {
		p.trailingSlash = true
		segments = segments[:len(segments)-1]
	}
	if decode {
		for i, segment := range segments {
			segments[i] = percentDecode(segment)
		}
	}
	p.segments = segments
	return p
}

// Segments returns a copy of the decoded segments.
func (p Path) Segments() []string { return slices.Clone(p.segments) }

// TrailingSlash reports whether the path ends with a slash. The empty path
// reports false.
func (p Path) TrailingSlash() bool { return p.trailingSlash }

// IsEmpty reports whether p is the empty path "/".
func (p Path) IsEmpty() bool { return len(p.segments) == 0 }

// Filename returns the last segment, or "" when the path is empty or ends
// with a slash.
func (p Path) Filename() string {
	if p.IsEmpty() || p.trailingSlash {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// Equal reports whether p and other have the same segments and trailing slash.
func (p Path) Equal(other Path) bool {
	return p.trailingSlash == other.trailingSlash && slices.Equal(p.segments, other.segments)
}

// String returns the decoded display form of the path, always starting with '/'.
func (p Path) String() string {
	var b strings.Builder
	p.write(&b, false)
	return b.String()
}

// Encoded returns the percent-encoded form of the path.
func (p Path) Encoded() string {
	var b strings.Builder
	p.write(&b, true)
	return b.String()
}

func (p Path) write(b *strings.Builder, encode bool) {
	b.WriteByte('/')
	for i, segment := range p.segments {
		if i > 0 {
			b.WriteByte('/')
		}
		if encode {
			percentEncode(b, segment, isPathSafe)
		} else {
			writeDisplay(b, segment)
		}
	}
	if p.trailingSlash {
		b.WriteByte('/')
	}
}

// applyDotSegmentRules handles rules 2A-2D of RFC 3986, Section 5.2.4.
// It modifies the input path `in` and output buffer `output` if a rule is matched.
// It returns the modified path, the modified output buffer, and a boolean
// indicating if a rule was successfully applied.
func applyDotSegmentRules(in string, output []string) (string, []string, bool) {
	// Rule 2A: "../" or "./"
	if strings.HasPrefix(in, "../") {
		return in[3:], output, true
	}
	if strings.HasPrefix(in, "./") {
		return in[2:], output, true
	}
	// Rule 2B: "/./" or "/."
	if strings.HasPrefix(in, "/./") {
		return "/" + in[3:], output, true
	}
	if in == "/." {
		return "/", output, true
	}
	// Rule 2C: "/../" or "/..", popping at most what the output holds.
	if strings.HasPrefix(in, "/../") || in == "/.." {
		newIn := "/"
		if len(in) > len("/..") {
			newIn += in[4:]
		}
		if len(output) > 0 {
			output = output[:len(output)-1]
		}
		return newIn, output, true
	}
	// Rule 2D: "." or ".."
	if in == "." || in == ".." {
		return "", output, true
	}
	return in, output, false
}

// extractFirstSegment handles rule 2E of RFC 3986, Section 5.2.4.
// It extracts the first path segment, with its leading slash if any, and
// returns it along with the remainder of the input.
func extractFirstSegment(in string) (string, string) {
	slashIndex := strings.Index(in, "/")
	if slashIndex == 0 {
		nextSlash := strings.Index(in[1:], "/")
		if nextSlash == -1 {
			return in, ""
		}
		return in[:nextSlash+1], in[nextSlash+1:]
	}
	if slashIndex == -1 {
		return in, ""
	}
	return in[:slashIndex], in[slashIndex:]
}

// removeDotSegments implements the "Remove Dot Segments" algorithm from
// RFC 3986, Section 5.2.4. A ".." at the root is a no-op.
func removeDotSegments(input string) string {
	var output []string
	in := input

	for len(in) > 0 {
		var ruleApplied bool
		in, output, ruleApplied = applyDotSegmentRules(in, output)
		if ruleApplied {
			continue
		}

		var segment string
		segment, in = extractFirstSegment(in)
		output = append(output, segment)
	}

	return strings.Join(output, "")
}
