package errors

import (
	"fmt"
	"strings"
)

// UnknownScaleError reports a lookup against a palette name that is not registered.
type UnknownScaleError struct {
	Scale string
}

// NewUnknownScaleError constructs an UnknownScaleError.
func NewUnknownScaleError(scale string) error {
	return &UnknownScaleError{Scale: scale}
}

func (e *UnknownScaleError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown color scale %q", e.Scale)
}

// UnknownShadeError reports a shade that is missing from an otherwise valid palette.
type UnknownShadeError struct {
	Scale string
	Shade string
}

// NewUnknownShadeError constructs an UnknownShadeError.
func NewUnknownShadeError(scale, shade string) error {
	return &UnknownShadeError{Scale: scale, Shade: shade}
}

func (e *UnknownShadeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown shade %q in color scale %q", e.Shade, e.Scale)
}

// UnknownTokenError reports a key that is not registered in a named token scale.
type UnknownTokenError struct {
	Kind string
	Key  string
}

// NewUnknownTokenError constructs an UnknownTokenError for the given scale kind.
func NewUnknownTokenError(kind, key string) error {
	return &UnknownTokenError{Kind: kind, Key: key}
}

func (e *UnknownTokenError) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind != "" {
		return fmt.Sprintf("unknown %s token %q", e.Kind, e.Key)
	}
	return fmt.Sprintf("unknown token %q", e.Key)
}

// UnknownVariantValueError reports an axis value that the component does not declare.
type UnknownVariantValueError struct {
	Component string
	Axis      string
	Value     string
	Allowed   []string
}

// NewUnknownVariantValueError constructs an UnknownVariantValueError.
func NewUnknownVariantValueError(component, axis, value string, allowed []string) error {
	return &UnknownVariantValueError{
		Component: component,
		Axis:      axis,
		Value:     value,
		Allowed:   append([]string(nil), allowed...),
	}
}

func (e *UnknownVariantValueError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("unknown value %q for axis %q", e.Value, e.Axis)
	if e.Component != "" {
		msg = fmt.Sprintf("%s: %s", e.Component, msg)
	}
	if len(e.Allowed) > 0 {
		msg += fmt.Sprintf(" (allowed: %s)", strings.Join(e.Allowed, ", "))
	}
	return msg
}

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures table and configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
