package parser

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat indicates the descriptor is not well-formed XML.
var ErrInvalidFormat = errors.New("invalid sheet format")

// ErrMissingAttribute indicates a required attribute is absent.
var ErrMissingAttribute = errors.New("missing attribute")

// ErrInvalidAttribute indicates an attribute value could not be parsed.
var ErrInvalidAttribute = errors.New("invalid attribute")

// AttributeError represents a problem with one attribute of one element.
type AttributeError struct {
	Element   string
	Region    string // value of the name attribute, if known
	Attribute string
	Value     string
	Line      int
	Err       error
}

func (e *AttributeError) Error() string {
	where := fmt.Sprintf("<%s>", e.Element)
	if e.Region != "" {
		where = fmt.Sprintf("<%s name=%q>", e.Element, e.Region)
	}
	if e.Value != "" {
		return fmt.Sprintf("line %d: %s attribute %q = %q: %v", e.Line, where, e.Attribute, e.Value, e.Err)
	}
	return fmt.Sprintf("line %d: %s attribute %q: %v", e.Line, where, e.Attribute, e.Err)
}

func (e *AttributeError) Unwrap() error {
	return e.Err
}
