package assetprep

import (
	"errors"
	"fmt"

	"github.com/ukaji3/assetprep-go/pkg/assetprep/output"
	"github.com/ukaji3/assetprep-go/pkg/assetprep/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrDirNotFound indicates the directory to normalize does not exist.
var ErrDirNotFound = errors.New("directory not found")

// Descriptor errors, shared with the parser package.
var (
	ErrInvalidFormat    = parser.ErrInvalidFormat
	ErrMissingAttribute = parser.ErrMissingAttribute
	ErrInvalidAttribute = parser.ErrInvalidAttribute
)

// ErrInvalidLuaOptions indicates Lua output options that cannot be loaded.
var ErrInvalidLuaOptions = output.ErrInvalidLuaOptions

// AttributeError is the parser's per-attribute error.
type AttributeError = parser.AttributeError

// RenameError represents a failed rename inside a directory.
type RenameError struct {
	Dir  string
	From string
	To   string
	Err  error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("rename %q to %q in %s: %v", e.From, e.To, e.Dir, e.Err)
}

func (e *RenameError) Unwrap() error {
	return e.Err
}

// NewRenameError creates a new RenameError.
func NewRenameError(dir, from, to string, err error) *RenameError {
	return &RenameError{
		Dir:  dir,
		From: from,
		To:   to,
		Err:  err,
	}
}
