package service

import (
	"fmt"
	"strings"

	"github.com/forum-api/forum/shared/errors"
)

type field struct {
	name  string
	value string
}

// requireFields fails with MISSING_FIELD namespaced by op, listing every empty field.
func requireFields(op string, fields ...field) error {
	var missing []string
	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return errors.NewMissingField(op, fmt.Sprintf("required fields missing: %s", strings.Join(missing, ", ")))
}
