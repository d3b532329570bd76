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

func TestParseScheme(t *testing.T) {
	tests := []struct {
		input       string
		want        Scheme
		wantErr     bool
		wantString  string
		defaultPort int
	}{
		{"http", HTTP, false, "http", 80},
		{"HTTP", HTTP, false, "http", 80},
		{"https", HTTPS, false, "https", 443},
		{"HtTPs", HTTPS, false, "https", 443},
		{"ftp", 0, true, "", 0},
		{"ws", 0, true, "", 0},
		{"mysql", 0, true, "", 0},
		{"", 0, true, "", 0},
		{"http ", 0, true, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseScheme(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseScheme(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnsupportedScheme) {
				t.Errorf("ParseScheme(%q) error = %v, want ErrUnsupportedScheme", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseScheme(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if s := got.String(); s != tt.wantString {
				t.Errorf("ParseScheme(%q).String() = %q, want %q", tt.input, s, tt.wantString)
			}
			if p := got.DefaultPort(); p != tt.defaultPort {
				t.Errorf("ParseScheme(%q).DefaultPort() = %d, want %d", tt.input, p, tt.defaultPort)
			}
			if got.IsValid() == tt.wantErr {
				t.Errorf("ParseScheme(%q).IsValid() = %v", tt.input, got.IsValid())
			}
		})
	}
}
