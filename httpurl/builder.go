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

	"braces.dev/errtrace"
)

// Builder stages the components of a URL. Setters never fail; all
// validation happens in Create, which either returns a complete URL or an
// error. A Builder must not be used by several goroutines at once.
type Builder struct {
	scheme   Scheme
	rawHost  string
	host     Host
	port     int
	hasPort  bool
	path     Path
	query    []KeyValue
	fragment string
}

// NewBuilder returns a Builder for the given scheme and host. The host may
// carry user-info, which is dropped, and a ":port" suffix; IPv6 literals may
// be bracketed or not.
func NewBuilder(scheme Scheme, host string) *Builder {
	return &Builder{scheme: scheme, rawHost: host}
}

// NewHTTP returns a Builder for an http URL on host.
func NewHTTP(host string) *Builder { return NewBuilder(HTTP, host) }

// NewHTTPS returns a Builder for an https URL on host.
func NewHTTPS(host string) *Builder { return NewBuilder(HTTPS, host) }

// Scheme replaces the scheme.
func (b *Builder) Scheme(scheme Scheme) *Builder {
	b.scheme = scheme
	return b
}

// Host replaces the host, with the same syntax as NewBuilder.
func (b *Builder) Host(host string) *Builder {
	b.rawHost = host
	b.host = Host{}
	return b
}

// Port sets an explicit port. It takes precedence over a port given with
// the host.
func (b *Builder) Port(port int) *Builder {
	b.port, b.hasPort = port, true
	return b
}

// Path sets the path from decoded text; see PathOf.
func (b *Builder) Path(path string) *Builder {
	b.path = PathOf(path)
	return b
}

// Query appends one decoded query parameter.
func (b *Builder) Query(key, value string) *Builder {
	b.query = append(b.query, KeyValue{Key: key, Value: value})
	return b
}

// SetQuery replaces all query parameters.
func (b *Builder) SetQuery(q Query) *Builder {
	b.query = q.Pairs()
	return b
}

// Fragment sets the decoded fragment. An empty fragment removes it.
func (b *Builder) Fragment(fragment string) *Builder {
	b.fragment = fragment
	return b
}

// Create validates the staged components and returns the URL. The returned
// error is a *ValidationError, as for Parse.
func (b *Builder) Create() (*URL, error) {
	u, err := b.create()
	if err != nil {
		return nil, errtrace.Wrap(newValidationError(err))
	}
	return u, nil
}

func (b *Builder) create() (*URL, error) {
	if !b.scheme.IsValid() {
		return nil, &kindError{kind: ErrUnsupportedScheme, details: strconv.Itoa(int(b.scheme))}
	}

	host, port := b.host, b.scheme.DefaultPort()
	if host.IsZero() {
		var err error
		if host, port, err = parseAuthority(b.rawHost, b.scheme); err != nil {
			return nil, err
		}
	}
	if b.hasPort {
		if err := checkPort(b.port); err != nil {
			return nil, err
		}
		port = b.port
	}

	return &URL{
		scheme:   b.scheme,
		host:     host,
		port:     port,
		path:     b.path,
		query:    QueryOf(b.query...),
		fragment: b.fragment,
	}, nil
}
