//
// Tencent is pleased to support the open source community by making trpc-docextract-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docextract-go is licensed under the Apache License Version 2.0.
//
//

package document

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the kind of a processing failure. Callers dispatch on
// the code; message text is for humans only.
type ErrorCode string

// Error codes raised by the extraction subsystem.
const (
	// CodeNoFile indicates no file was supplied.
	CodeNoFile ErrorCode = "NO_FILE"
	// CodeEmptyFile indicates a zero-byte or whitespace-only input.
	CodeEmptyFile ErrorCode = "EMPTY_FILE"
	// CodeFileTooLarge indicates the input exceeds the size ceiling.
	CodeFileTooLarge ErrorCode = "FILE_TOO_LARGE"
	// CodeUnsupportedType indicates the declared type matches no processor.
	CodeUnsupportedType ErrorCode = "UNSUPPORTED_TYPE"
	// CodeNoProcessor indicates selection found nothing to delegate to.
	// Defensive; unreachable when the unsupported-type validation ran first.
	CodeNoProcessor ErrorCode = "NO_PROCESSOR"
	// CodeNoTextContent indicates the processor ran fine but produced no text.
	CodeNoTextContent ErrorCode = "NO_TEXT_CONTENT"
	// CodeExtractionFailed indicates the underlying parser failed.
	CodeExtractionFailed ErrorCode = "EXTRACTION_FAILED"
	// CodeReadFailed indicates the file content could not be read.
	CodeReadFailed ErrorCode = "READ_FAILED"
	// CodeOCRInitFailed indicates the recognition engine failed to start.
	CodeOCRInitFailed ErrorCode = "OCR_INIT_FAILED"
	// CodeOCRFailed indicates recognition ran but failed.
	CodeOCRFailed ErrorCode = "OCR_FAILED"
	// CodeProcessingFailed wraps non-typed errors at the dispatcher boundary.
	CodeProcessingFailed ErrorCode = "PROCESSING_FAILED"
	// CodeUnexpected wraps panics recovered during batch extraction.
	CodeUnexpected ErrorCode = "UNEXPECTED_ERROR"
)

// Error is the typed failure value used throughout the subsystem. It is
// immutable once constructed; the With* methods return copies.
type Error struct {
	code    ErrorCode
	message string
	file    string
	cause   error
}

// NewError creates a typed error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{code: code, message: message}
}

// NewErrorf creates a typed error with a formatted message.
func NewErrorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{code: code, message: fmt.Sprintf(format, args...)}
}

// WrapError creates a typed error that wraps an underlying cause.
func WrapError(code ErrorCode, cause error, message string) *Error {
	return &Error{code: code, message: message, cause: cause}
}

// Code returns the error kind.
func (e *Error) Code() ErrorCode { return e.code }

// Message returns the human-readable message.
func (e *Error) Message() string { return e.message }

// File returns the name of the offending file, if recorded.
func (e *Error) File() string { return e.file }

// WithFile returns a copy of the error referencing the offending file.
func (e *Error) WithFile(file File) *Error {
	clone := *e
	if file != nil {
		clone.file = file.Name()
	}
	return &clone
}

// WithPrefix returns a copy of the error with the message prefixed, keeping
// the code unchanged. The dispatcher uses it to annotate processor identity.
func (e *Error) WithPrefix(prefix string) *Error {
	clone := *e
	clone.message = prefix + ": " + e.message
	return &clone
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.file != "" {
		return fmt.Sprintf("%s: %s (file: %s)", e.code, e.message, e.file)
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// AsError extracts a typed error from an error chain.
func AsError(err error) (*Error, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// CodeOf returns the code of a typed error, or "" for untyped errors.
func CodeOf(err error) ErrorCode {
	if pe, ok := AsError(err); ok {
		return pe.Code()
	}
	return ""
}
