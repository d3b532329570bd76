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

	"braces.dev/errtrace"
)

const (
	maxPort       = 65535
	maxPortDigits = 5
)

// splitAuthority splits an authority into its host and port parts. Any
// user-info, up to the last '@', is dropped. A host with more than one colon
// and no brackets is an IPv6 literal without a port. An unterminated or
// malformed bracketed literal is returned whole as the host so that host
// validation reports it.
func splitAuthority(authority string) (host, port string, hasPort bool) {
	hostport := authority
	if at := strings.LastIndex(authority, "@"); at != -1 {
		hostport = authority[at+1:]
	}

	if strings.HasPrefix(hostport, "[") {
		endBracket := strings.Index(hostport, "]")
		if endBracket == -1 {
			return hostport, "", false
		}
		rest := hostport[endBracket+1:]
		switch {
		case rest == "":
			return hostport, "", false
		case rest[0] == ':':
			return hostport[:endBracket+1], rest[1:], true
		default:
			return hostport, "", false
		}
	}

	if strings.Count(hostport, ":") > 1 {
		return hostport, "", false
	}
	host, port, hasPort = strings.Cut(hostport, ":")
	return host, port, hasPort
}

// ParsePort parses a decimal port in the range [0, 65535]. Signs, hex and
// any other non-digit character are rejected.
func ParsePort(s string) (int, error) {
	port, err := parsePort(s)
	if err != nil {
		return 0, errtrace.Wrap(newValidationError(err))
	}
	return port, nil
}

func parsePort(s string) (int, error) {
	if s == "" {
		return 0, portError("empty port", s)
	}
	for _, r := range s {
		if !isASCIIDigit(r) {
			return 0, &kindError{kind: ErrInvalidPort, message: "invalid port character", char: r}
		}
	}
	if len(strings.TrimLeft(s, "0")) > maxPortDigits {
		return 0, portError("port out of range", s)
	}
	port, err := strconv.Atoi(s)
	if err != nil || port > maxPort {
		return 0, portError("port out of range", s)
	}
	return port, nil
}

// checkPort validates a port given as a number.
func checkPort(port int) error {
	if port < 0 || port > maxPort {
		return portError("port out of range", strconv.Itoa(port))
	}
	return nil
}
