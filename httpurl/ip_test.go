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
	"errors"
	"testing"
)

func TestParseIPv4(t *testing.T) {
	tests := []struct {
		input   string
		want    [4]byte
		wantErr bool
	}{
		{"127.0.0.1", [4]byte{127, 0, 0, 1}, false},
		{"0.0.0.0", [4]byte{}, false},
		{"255.255.255.255", [4]byte{255, 255, 255, 255}, false},
		{"192.168.1.10", [4]byte{192, 168, 1, 10}, false},
		{"10.10.0", [4]byte{}, true},
		{"1.1.1.1.1", [4]byte{}, true},
		{"192.168", [4]byte{}, true},
		{"3294823", [4]byte{}, true},
		{"01.01.01.01", [4]byte{}, true},
		{"256.0.0.1", [4]byte{}, true},
		{"1..1.1", [4]byte{}, true},
		{"1.1.1.", [4]byte{}, true},
		{"0xa.0xb.0xc.0xd", [4]byte{}, true},
		{"1.1.1.1000", [4]byte{}, true},
		{"+1.1.1.1", [4]byte{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseIPv4(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseIPv4(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidHost) {
					t.Errorf("parseIPv4(%q) error = %v, want ErrInvalidHost", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("parseIPv4(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if s := formatIPv4(got); s != tt.input {
				t.Errorf("formatIPv4(%v) = %q, want %q", got, s, tt.input)
			}
		})
	}
}

func TestParseIPv6(t *testing.T) {
	tests := []struct {
		input   string
		want    [8]uint16
		wantErr bool
	}{
		{"::", [8]uint16{}, false},
		{"::1", [8]uint16{7: 1}, false},
		{"1::", [8]uint16{0: 1}, false},
		{"2001:db8::1", [8]uint16{0x2001, 0xdb8, 7: 1}, false},
		{"2001:0DB8:0000:0000:0000:0000:0000:0001", [8]uint16{0x2001, 0xdb8, 7: 1}, false},
		{"1:2:3:4:5:6:7:8", [8]uint16{1, 2, 3, 4, 5, 6, 7, 8}, false},
		{"1:2:3:4:5:6::8", [8]uint16{1, 2, 3, 4, 5, 6, 0, 8}, false},
		{"0:0:0:a:b:00:000:0", [8]uint16{3: 0xa, 4: 0xb}, false},
		{":::", [8]uint16{}, true},
		{"1::2::3", [8]uint16{}, true},
		{"1:2:3:4:5:6:7:8:9", [8]uint16{}, true},
		{"1:2:3:4:5:6:7", [8]uint16{}, true},
		{"1:2:3:4::5:6:7:8", [8]uint16{}, true},
		{"a::z:80", [8]uint16{}, true},
		{"-1:-1:-1:-1", [8]uint16{}, true},
		{"a:1:b", [8]uint16{}, true},
		{"12345::", [8]uint16{}, true},
		{":1:2:3:4:5:6:7", [8]uint16{}, true},
		{"1:2:3:4:5:6:7:", [8]uint16{}, true},
		{"::ffff:1.2.3.4", [8]uint16{}, true},
		{"fe80::1%eth0", [8]uint16{}, true},
		{"", [8]uint16{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseIPv6(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseIPv6(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidHost) {
					t.Errorf("parseIPv6(%q) error = %v, want ErrInvalidHost", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("parseIPv6(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatIPv6(t *testing.T) {
	tests := []struct {
		name  string
		input [8]uint16
		want  string
	}{
		{"all zero", [8]uint16{}, "::"},
		{"loopback", [8]uint16{7: 1}, "::1"},
		{"no zero", [8]uint16{1, 2, 3, 4, 5, 6, 7, 8}, "1:2:3:4:5:6:7:8"},
		{"single zero group compressed", [8]uint16{1, 2, 3, 4, 5, 6, 0, 8}, "1:2:3:4:5:6::8"},
		{"longest run wins", [8]uint16{0: 0, 1: 1, 5: 1}, "0:1::1:0:0"},
		{"leftmost run wins a tie", [8]uint16{1, 0, 0, 2, 0, 0, 3, 4}, "1::2:0:0:3:4"},
		{"trailing run", [8]uint16{0: 1}, "1::"},
		{"lowercase without leading zeros", [8]uint16{0x2001, 0x0db8, 7: 0xABCD}, "2001:db8::abcd"},
		{"first zeros", [8]uint16{3: 0xa, 4: 0xb}, "::a:b:0:0:0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatIPv6(tt.input); got != tt.want {
				t.Errorf("formatIPv6(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
