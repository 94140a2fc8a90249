package paramstore

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParameterExists is returned when a put targets a name that already has
// a value and overwrite was not requested.
var ErrParameterExists = errors.New("parampath: parameter already exists")

// InvalidParametersError is returned when the remote store rejected one or
// more requested names as malformed.
type InvalidParametersError struct {
	// Names are the rejected parameter names, as reported by the store.
	Names []string
}

func (e *InvalidParametersError) Error() string {
	return fmt.Sprintf("parampath: invalid parameters requested: %s", strings.Join(e.Names, ", "))
}

// MissingParametersError is returned when a required parameter set was not
// fully satisfied by a path listing.
type MissingParametersError struct {
	// Names are the required suffix paths absent from the listing, sorted.
	Names []string

	// Path is the base path that was queried.
	Path string
}

func (e *MissingParametersError) Error() string {
	return fmt.Sprintf("parampath: missing parameters %s on path %s", strings.Join(e.Names, ", "), e.Path)
}
