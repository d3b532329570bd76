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

	"golang.org/x/net/idna"
)

// acePrefix marks an ASCII-Compatible-Encoding label.
const acePrefix = "xn--"

// newLabelProfile returns the UTS #46 profile used to convert single labels.
// Profiles are immutable, a new one is cheap to build.
func newLabelProfile() *idna.Profile {
	return idna.New(
		idna.MapForLookup(),
		idna.Transitional(false),
		idna.StrictDomainName(true),
		idna.VerifyDNSLength(true),
	)
}

// labelToASCII converts one DNS label to its ASCII form. ASCII labels are
// lowercased and validated, other labels are case-mapped and punycode
// encoded with the "xn--" prefix. "xn--" input must decode to a valid label.
func labelToASCII(label string) (string, error) {
	ascii, err := newLabelProfile().ToASCII(label)
	if err != nil {
		return "", hostError("label is not a valid domain label", label)
	}
	// The lookup mapping can turn some compatibility characters into dots.
	if strings.Contains(ascii, ".") {
		return "", hostError("label is not a valid domain label", label)
	}
	return strings.ToLower(ascii), nil
}

// labelToUnicode converts an ASCII label back to its Unicode display form.
// Labels without the "xn--" prefix, or that cannot be decoded, are returned
// unchanged.
func labelToUnicode(label string) string {
	if !strings.HasPrefix(label, acePrefix) {
		return label
	}
	unicodeLabel, err := newLabelProfile().ToUnicode(label)
	if err != nil {
		return label
	}
	return unicodeLabel
}
