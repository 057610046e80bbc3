// Package paths validates user-supplied file path arguments.
package paths

import (
	"fmt"
	"os"

	"github.com/converse-labs/converse/internal/cli/output"
)

// NotFoundError reports a required path argument that does not exist and has
// no usable fallback. The root dispatcher maps it to a non-zero exit.
type NotFoundError struct {
	Current   string
	Parameter string
	Fallback  string
}

func (e *NotFoundError) Error() string {
	fallbackClause := ""
	if e.Fallback != "" {
		fallbackClause = fmt.Sprintf("use the default location ('%s') or ", e.Fallback)
	}
	return fmt.Sprintf(
		"the path '%s' does not exist. Please make sure to %sspecify it with '--%s'",
		e.Current, fallbackClause, e.Parameter,
	)
}

// Exists reports whether the path names an existing file or directory.
// An empty path never exists.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// Validate checks that current exists and returns it unchanged.
//
// If current is empty or missing, the fallback is used instead when it
// exists, with a warning on the renderer. Otherwise, when noneIsValid is
// set the empty path is returned without error; when it is not, a
// *NotFoundError names the offending flag and the fallback, if any.
func Validate(r *output.Renderer, current, parameter, fallback string, noneIsValid bool) (string, error) {
	if Exists(current) {
		return current, nil
	}

	if fallback != "" && Exists(fallback) {
		r.Warning(fmt.Sprintf("'%s' not found. Using default location '%s' instead.", current, fallback))
		return fallback, nil
	}

	if noneIsValid {
		return "", nil
	}

	return "", &NotFoundError{Current: current, Parameter: parameter, Fallback: fallback}
}
