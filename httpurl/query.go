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

// KeyValue is one decoded query parameter.
type KeyValue struct {
	Key   string
	Value string
}

// Query is an ordered list of decoded query parameters. Duplicate keys and
// the order of the input are kept. The zero Query has no parameters.
type Query struct {
	pairs []KeyValue
}

// ParseQuery parses a raw query string, without the leading '?'. The string
// is split on '&', empty tokens are skipped, and each token is split on its
// first '='; a token without '=' has an empty value. Keys and values are
// percent-decoded; '+' is kept as is.
func ParseQuery(raw string) Query {
	var pairs []KeyValue
	for _, token := range strings.Split(raw, "&") {
		if token == "" {
			continue
		}
		key, value, _ := strings.Cut(token, "=")
		pairs = append(pairs, KeyValue{Key: percentDecode(key), Value: percentDecode(value)})
	}
	return Query{pairs: pairs}
}

// QueryOf builds a query from decoded pairs.
func QueryOf(pairs ...KeyValue) Query {
	if len(pairs) == 0 {
		return Query{}
	}
	return Query{pairs: slices.Clone(pairs)}
}

// Pairs returns a copy of the parameters in order.
func (q Query) Pairs() []KeyValue { return slices.Clone(q.pairs) }

// Len returns the number of parameters.
func (q Query) Len() int { return len(q.pairs) }

// IsEmpty reports whether the query has no parameters.
func (q Query) IsEmpty() bool { return len(q.pairs) == 0 }

// Get returns the value of the first parameter named key.
func (q Query) Get(key string) (string, bool) {
	for _, kv := range q.pairs {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// GetAll returns the values of every parameter named key, in order.
func (q Query) GetAll(key string) []string {
	var values []string
	for _, kv := range q.pairs {
		if kv.Key == key {
			values = append(values, kv.Value)
		}
	}
	return values
}

// Equal reports whether q and other hold the same parameters in the same order.
func (q Query) Equal(other Query) bool { return slices.Equal(q.pairs, other.pairs) }

// String returns the decoded display form, "k=v&k2=v2", without '?'.
func (q Query) String() string {
	var b strings.Builder
	q.write(&b, false)
	return b.String()
}

// Encoded returns the percent-encoded form, without '?'.
func (q Query) Encoded() string {
	var b strings.Builder
	q.write(&b, true)
	return b.String()
}

func (q Query) write(b *strings.Builder, encode bool) {
	for i, kv := range q.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		if encode {
			percentEncode(b, kv.Key, isQuerySafe)
			b.WriteByte('=')
			percentEncode(b, kv.Value, isQuerySafe)
			continue
		}
		writeDisplay(b, kv.Key)
		b.WriteByte('=')
		writeDisplay(b, kv.Value)
	}
}
