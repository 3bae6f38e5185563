// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"errors"
	"fmt"
)

// Kind identifies which loading step failed.
type Kind int

const (
	// KindUnknown classifies errors that did not come from this package.
	KindUnknown Kind = iota
	// KindRead means the config file could not be read as text.
	KindRead
	// KindParse means the file was read but is not a valid cluster map.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindRead:
		return "read"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// ReadContext is the message attached to every read failure.
const ReadContext = "failed to read config file"

var (
	// Sentinel errors for errors.Is checks at the boundary.
	ErrReadConfig  = errors.New("config: read failure")
	ErrParseConfig = errors.New("config: parse failure")

	// ErrInvalidUTF8 is the cause of a read failure on non-text content.
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

	// ErrLoneSurrogate rejects \u escapes that do not form a valid UTF-16 pair.
	ErrLoneSurrogate = errors.New("lone surrogate in hex escape")
)

// LoadError is returned by every failed load. Parse failures carry no
// message of their own, so Error() passes the decoder's description through.
type LoadError struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *LoadError) Error() string {
	switch {
	case e.Msg == "" && e.Err == nil:
		return fmt.Sprintf("config: %s failure", e.Kind)
	case e.Msg == "":
		return e.Err.Error()
	case e.Err == nil:
		return e.Msg
	default:
		return e.Msg + ": " + e.Err.Error()
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels so callers need not type-assert.
func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrReadConfig:
		return e.Kind == KindRead
	case ErrParseConfig:
		return e.Kind == KindParse
	}
	return false
}

// MissingFieldError reports a required key absent from the JSON object.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

// DuplicateFieldError reports a required key that appears more than once.
type DuplicateFieldError struct {
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("duplicate field %q", e.Field)
}

// FieldTypeError reports a required key whose value has the wrong type.
type FieldTypeError struct {
	Field string
	Err   error
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("invalid value for field %q: %v", e.Field, e.Err)
}

func (e *FieldTypeError) Unwrap() error {
	return e.Err
}

// Classify returns the loading step that produced err.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var le *LoadError
	if errors.As(err, &le) {
		return le.Kind
	}
	return KindUnknown
}
