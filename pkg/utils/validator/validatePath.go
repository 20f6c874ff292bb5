package validator

import (
	"strings"

	"github.com/oldmonad/readerr/pkg/errors"
)

// ValidatePath rejects blank paths. The path is otherwise returned untouched:
// readers must see it verbatim.
func (v *ValidatorOptions) ValidatePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.NewErrEmptyPath()
	}
	return path, nil
}
