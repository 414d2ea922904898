//
// Tencent is pleased to support the open source community by making trpc-docextract-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docextract-go is licensed under the Apache License Version 2.0.
//
//

// Package document defines the data types shared by the extraction subsystem:
// input files, extraction results and the typed processing error.
package document

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// File is an opaque reference to uploaded bytes. The declared media type is
// caller-supplied and is trusted without content sniffing. Implementations
// are supplied by the caller for the duration of one extraction call; the
// subsystem never retains them past that call.
type File interface {
	// Name returns the file name, used for extension fallback and diagnostics.
	Name() string

	// MediaType returns the caller-declared media type (e.g. "application/pdf").
	MediaType() string

	// Size returns the size of the file content in bytes.
	Size() int64

	// Bytes returns the raw file content.
	Bytes() ([]byte, error)
}

// BytesFile is an in-memory File implementation backed by a byte slice.
type BytesFile struct {
	name      string
	mediaType string
	data      []byte
}

// NewFile creates a File from in-memory content.
func NewFile(name, mediaType string, data []byte) *BytesFile {
	return &BytesFile{
		name:      name,
		mediaType: mediaType,
		data:      data,
	}
}

// NewFileFromPath reads a file from disk and infers its media type from the
// file extension.
func NewFileFromPath(path string) (*BytesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}
	name := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(name))
	mediaType, ok := MediaTypeByExtension(ext)
	if !ok {
		mediaType = NormalizeMediaType(mime.TypeByExtension(ext))
	}
	return NewFile(name, mediaType, data), nil
}

// Name returns the file name.
func (f *BytesFile) Name() string { return f.name }

// MediaType returns the declared media type.
func (f *BytesFile) MediaType() string { return f.mediaType }

// Size returns the content length in bytes.
func (f *BytesFile) Size() int64 { return int64(len(f.data)) }

// Bytes returns the raw content.
func (f *BytesFile) Bytes() ([]byte, error) { return f.data, nil }

// Metadata describes an extraction result. WordCount is always recomputed
// from the extracted text; PageCount and HasImages are set only by
// processors that can produce them.
type Metadata struct {
	WordCount      int
	PageCount      *int
	HasImages      *bool
	ProcessingTime time.Duration
}

// Result is the outcome of a successful extraction.
type Result struct {
	Text     string
	Metadata Metadata
}
