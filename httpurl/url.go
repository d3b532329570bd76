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

// Package httpurl provides a strict, immutable value type for absolute http
// and https URLs, following RFC 3986 and IDNA (UTS #46).
//
// A URL is obtained either by parsing a string with Parse, or by building it
// from typed components with a Builder. Both paths apply the same validation
// and produce the same canonical form:
//   - the host is classified as an IPv4 literal, an IPv6 literal or a DNS
//     name; IPv6 is compressed, DNS names are lowercased and stored in their
//     ASCII (punycode) form;
//   - the path has its dot segments removed and its segments percent-decoded;
//   - the query is an ordered list of decoded key/value pairs;
//   - the port defaults to 80 for http and 443 for https.
//
// Two URLs that only differ in spelling (case, percent-encoding, IDNA form,
// IPv6 notation) are Equal and have the same Hash.
//
// A URL can be written in two forms: String returns a human-friendly decoded
// form, and ToURI returns a strictly ASCII form that any RFC 3986 parser,
// including net/url, accepts.
//
// Every value in this package is immutable and safe for concurrent use,
// except Builder which belongs to a single goroutine.
package httpurl

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/cespare/xxhash/v2"
)

// URL is a validated, canonical, absolute http or https URL.
// It is immutable; use Builder to derive a modified copy.
type URL struct {
	scheme   Scheme
	host     Host
	port     int
	path     Path
	query    Query
	fragment string
}

// Parse parses and validates an absolute URL of the form
//
//	scheme://[userinfo@]host[:port][/path][?query][#fragment]
//
// Surrounding whitespace and line breaks, with the whitespace around them,
// are removed first. Backslashes are accepted in place of slashes in the
// "://" separator and in the path. User-info is discarded.
//
// The returned error is a *ValidationError wrapping ErrMissingSchemeOrHost,
// ErrUnsupportedScheme, ErrInvalidHost or ErrInvalidPort.
func Parse(s string) (*URL, error) {
	u, err := parse(s)
	if err != nil {
		return nil, errtrace.Wrap(newValidationError(err))
	}
	return u, nil
}

func parse(s string) (*URL, error) {
	s = clean(s)

	colon := strings.IndexByte(s, ':')
	if colon < 1 || !isASCIILetter(rune(s[0])) || strings.IndexFunc(s[:colon], func(r rune) bool { return !isSchemeChar(r) }) != -1 {
		return nil, &kindError{kind: ErrMissingSchemeOrHost, details: s}
	}
	rest := s[colon+1:]
	if len(rest) < 2 || !isSlash(rest[0]) || !isSlash(rest[1]) {
		return nil, &kindError{kind: ErrMissingSchemeOrHost, details: s}
	}
	scheme, err := parseScheme(s[:colon])
	if err != nil {
		return nil, err
	}
	rest = rest[2:]

	end := strings.IndexAny(rest, `/\?#`)
	if end == -1 {
		end = len(rest)
	}
	authority, rest := rest[:end], rest[end:]
	rest, fragment, _ := strings.Cut(rest, "#")
	rawPath, rawQuery, _ := strings.Cut(rest, "?")

	host, port, err := parseAuthority(authority, scheme)
	if err != nil {
		return nil, err
	}

	return &URL{
		scheme:   scheme,
		host:     host,
		port:     port,
		path:     ParsePath(rawPath),
		query:    ParseQuery(rawQuery),
		fragment: percentDecode(fragment),
	}, nil
}

// parseAuthority validates the host and port of an authority and resolves
// the port against the scheme default. An empty port is the same as no port.
func parseAuthority(authority string, scheme Scheme) (Host, int, error) {
	rawHost, rawPort, hasPort := splitAuthority(authority)
	host, err := parseHost(rawHost)
	if err != nil {
		return Host{}, 0, err
	}
	port := scheme.DefaultPort()
	if hasPort && rawPort != "" {
		if port, err = parsePort(rawPort); err != nil {
			return Host{}, 0, err
		}
	}
	return host, port, nil
}

func isSlash(c byte) bool { return c == '/' || c == '\\' }

// clean trims the input and removes every line break together with the
// whitespace around it.
func clean(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return strings.TrimSpace(s)
	}
	lines := strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == '\r' })
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "")
}

// Scheme returns the scheme of the URL.
func (u *URL) Scheme() Scheme { return u.scheme }

// Host returns the host of the URL.
func (u *URL) Host() Host { return u.host }

// Port returns the port of the URL, or the scheme's default port when none
// was given.
func (u *URL) Port() int { return u.port }

// Path returns the path of the URL. It is never absent; it may be empty ("/").
func (u *URL) Path() Path { return u.path }

// Query returns the query of the URL. It may be empty.
func (u *URL) Query() Query { return u.query }

// Fragment returns the decoded fragment, or "" when there is none.
func (u *URL) Fragment() string { return u.fragment }

// String returns the decoded display form of the URL: the host in Unicode,
// path, query and fragment without percent-encoding. The port is written
// only when it differs from the scheme default.
func (u *URL) String() string { return u.format(false) }

// ToURI returns the URL as a strictly ASCII RFC 3986 URI: the host in
// punycode and path, query and fragment percent-encoded. Parsing the result
// yields a URL equal to u.
func (u *URL) ToURI() string { return u.format(true) }

func (u *URL) format(ascii bool) string {
	var b strings.Builder
	b.WriteString(u.scheme.String())
	b.WriteString("://")
	b.WriteString(u.host.urlForm(ascii))
	if u.port != u.scheme.DefaultPort() {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(u.port))
	}
	u.path.write(&b, ascii)
	if !u.query.IsEmpty() {
		b.WriteByte('?')
		u.query.write(&b, ascii)
	}
	if u.fragment != "" {
		b.WriteByte('#')
		if ascii {
			percentEncode(&b, u.fragment, isFragmentSafe)
		} else {
			writeDisplay(&b, u.fragment)
		}
	}
	return b.String()
}

// Equal reports whether u and other have the same scheme, host, port, path,
// query and fragment in canonical form.
func (u *URL) Equal(other *URL) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.scheme == other.scheme &&
		u.host == other.host &&
		u.port == other.port &&
		u.path.Equal(other.path) &&
		u.query.Equal(other.query) &&
		u.fragment == other.fragment
}

// Hash returns a hash of the canonical form of u. Equal URLs have equal hashes.
func (u *URL) Hash() uint64 {
	d := xxhash.New()
	for _, part := range []string{
		u.scheme.String(),
		u.host.Name(),
		strconv.Itoa(u.port),
		u.path.Encoded(),
		u.query.Encoded(),
		u.fragment,
	} {
		_, _ = d.WriteString(part)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// Builder returns a new Builder holding the components of u. Changing the
// builder does not affect u.
func (u *URL) Builder() *Builder {
	b := &Builder{
		scheme:   u.scheme,
		host:     u.host,
		path:     u.path,
		query:    slices.Clone(u.query.pairs),
		fragment: u.fragment,
	}
	if u.port != u.scheme.DefaultPort() {
		b.port, b.hasPort = u.port, true
	}
	return b
}

// MarshalText implements the encoding.TextMarshaler interface using the
// ToURI form.
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.ToURI()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The text
// is validated with Parse.
func (u *URL) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*u = *parsed
	return nil
}

// MarshalJSON implements the json.Marshaler interface, encoding the URL as a
// JSON string in its ToURI form.
func (u *URL) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(json.Marshal(u.ToURI()))
}

// UnmarshalJSON implements the json.Unmarshaler interface. It decodes a JSON
// string into a URL, performing validation in the process.
func (u *URL) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(u.UnmarshalText([]byte(s)))
}
