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
	"golang.org/x/text/unicode/bidi"
)

// isRTL reports whether r has a strong right-to-left bidi class.
func isRTL(r rune) bool {
	prop, _ := bidi.LookupRune(r)
	class := prop.Class()
	return class == bidi.R || class == bidi.AL
}

// validateBidiLabel checks a Unicode DNS label against the structural bidi
// rules also applied to IRI components (RFC 3987, Section 4.2):
//
//   - a label must not use both right-to-left and left-to-right characters;
//   - a label using right-to-left characters must start and end with one.
func validateBidiLabel(label string) error {
	if label == "" {
		return nil
	}

	runes := []rune(label)
	var hasLTR, hasRTL bool
	for _, r := range runes {
		prop, _ := bidi.LookupRune(r)
		switch prop.Class() {
		case bidi.R, bidi.AL:
			hasRTL = true
		case bidi.L:
			hasLTR = true
		default:
			// Neutral and weak classes do not decide the label direction.
		}
	}

	if hasLTR && hasRTL {
		return hostError("mixed left-to-right and right-to-left characters in label", label)
	}
	if hasRTL && (!isRTL(runes[0]) || !isRTL(runes[len(runes)-1])) {
		return hostError("right-to-left label must start and end with right-to-left characters", label)
	}
	return nil
}
