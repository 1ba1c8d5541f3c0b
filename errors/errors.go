// Package errors provides DICOM-specific error types for better error handling
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrMalformedItem = errors.New("dicom: malformed negotiation item")
	ErrInvalidResult = errors.New("dicom: invalid presentation context result")
	ErrInvalidUID    = errors.New("dicom: invalid UID")
	ErrSealed        = errors.New("dicom: registry sealed")
)

// ItemError reports a Presentation Context item that cannot be decoded or
// encoded. It always matches ErrMalformedItem.
type ItemError struct {
	ContextID byte
	Offset    int
	Msg       string
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("presentation context %d: %s (offset: %d)", e.ContextID, e.Msg, e.Offset)
}

func (e *ItemError) Unwrap() error {
	return ErrMalformedItem
}

// NewItemError creates a new item error
func NewItemError(contextID byte, offset int, msg string) *ItemError {
	return &ItemError{
		ContextID: contextID,
		Offset:    offset,
		Msg:       msg,
	}
}

// ResultError represents a result byte outside the PresentationResult range.
type ResultError struct {
	Value byte
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("invalid presentation context result: 0x%02X", e.Value)
}

// Unwrap places a bad result byte in the same fatal category as any other
// malformed item.
func (e *ResultError) Unwrap() []error {
	return []error{ErrInvalidResult, ErrMalformedItem}
}

// NewResultError creates a new result error
func NewResultError(value byte) *ResultError {
	return &ResultError{Value: value}
}

// UIDError represents a UID string that cannot be put on the wire.
type UIDError struct {
	UID string
	Msg string
}

func (e *UIDError) Error() string {
	return fmt.Sprintf("UID %q: %s", e.UID, e.Msg)
}

func (e *UIDError) Unwrap() error {
	return ErrInvalidUID
}

// NewUIDError creates a new UID error
func NewUIDError(uid, msg string) *UIDError {
	return &UIDError{
		UID: uid,
		Msg: msg,
	}
}
