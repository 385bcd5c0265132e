// ABOUTME: Profile name validation
// ABOUTME: Names become directory entries verbatim, so traversal characters are rejected

package profile

import (
	"fmt"
	"strings"
)

// forbiddenNameChars are rejected because names are used verbatim as
// directory-entry names: '/' and '.' would allow path traversal, and spaces
// make names ambiguous on the command line.
const forbiddenNameChars = "./ "

// ValidateName returns nil for a usable profile name. It rejects the empty
// string and any name containing '.', '/', or space. No normalization or
// case folding is applied.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name: %w", ErrNameInvalid)
	}
	if i := strings.IndexAny(name, forbiddenNameChars); i >= 0 {
		return fmt.Errorf("name %q contains %q: %w", name, name[i], ErrNameInvalid)
	}
	return nil
}
