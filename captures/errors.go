// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package captures

import (
	"errors"
	"fmt"

	"github.com/mdhender/ffrkconv/abilities"
)

// ErrReadFile is returned when a capture file cannot be read.
type ErrReadFile struct {
	Op   string // open, read
	Path string
	Err  error
}

func (e *ErrReadFile) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ErrReadFile) Unwrap() error {
	return e.Err
}

// ErrParseCapture is returned when a capture file is not a battle init
// capture.
type ErrParseCapture struct {
	Path string
	Err  error
}

func (e *ErrParseCapture) Error() string {
	return fmt.Sprintf("parse capture %s: %v", e.Path, e.Err)
}

func (e *ErrParseCapture) Unwrap() error {
	return e.Err
}

// ErrRegion is returned when no game data is loaded for a capture's region.
type ErrRegion struct {
	Path   string
	Region string
}

func (e *ErrRegion) Error() string {
	return fmt.Sprintf("%s: no game data for region %q", e.Path, e.Region)
}

// ErrDatabase is returned when archiving fails.
type ErrDatabase struct {
	Op  string
	Err error
}

func (e *ErrDatabase) Error() string {
	return fmt.Sprintf("database %s: %v", e.Op, e.Err)
}

func (e *ErrDatabase) Unwrap() error {
	return e.Err
}

// Error code constants for reporting.
const (
	ErrCodeReadFile     = "READ_FILE"
	ErrCodeParseCapture = "PARSE_CAPTURE"
	ErrCodeRegion       = "REGION"
	ErrCodeSlot         = "SLOT"
	ErrCodeDatabase     = "DATABASE"
	ErrCodeUnknown      = "UNKNOWN"
)

// ErrorCode returns the error code string for a given error.
func ErrorCode(err error) string {
	var abilityErr *abilities.AbilityError
	switch err.(type) {
	case *ErrReadFile:
		return ErrCodeReadFile
	case *ErrParseCapture:
		return ErrCodeParseCapture
	case *ErrRegion:
		return ErrCodeRegion
	case *ErrDatabase:
		return ErrCodeDatabase
	}
	if errors.As(err, &abilityErr) {
		return ErrCodeSlot
	}
	return ErrCodeUnknown
}
