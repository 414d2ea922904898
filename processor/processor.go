//
// Tencent is pleased to support the open source community by making trpc-docextract-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docextract-go is licensed under the Apache License Version 2.0.
//
//

// Package processor defines the capability contract implemented by every
// format processor.
package processor

import (
	"context"
	"path/filepath"
	"strings"

	"trpc.group/trpc-go/trpc-docextract-go/document"
)

// Processor implements format-specific text extraction for one family of
// media types.
type Processor interface {
	// Name identifies the processor in diagnostics and wrapped errors.
	Name() string

	// SupportedTypes returns the media types this processor declares.
	SupportedTypes() []string

	// CanProcess reports whether this processor claims the file, based on
	// its declared media type or, for loosely-typed uploads, its file
	// extension. File content is never inspected.
	CanProcess(file document.File) bool

	// ExtractText parses the file and returns cleaned plain text.
	ExtractText(ctx context.Context, file document.File) (string, error)
}

// MetadataExtractor is implemented by processors that can produce extraction
// metadata beyond plain text. Processors that do not implement it get
// minimal metadata synthesized by the dispatcher.
type MetadataExtractor interface {
	ExtractWithMetadata(ctx context.Context, file document.File) (*document.Result, error)
}

// MatchesType reports whether the file's declared media type is one of types.
func MatchesType(file document.File, types []string) bool {
	declared := document.NormalizeMediaType(file.MediaType())
	if declared == "" {
		return false
	}
	for _, t := range types {
		if declared == t {
			return true
		}
	}
	return false
}

// MatchesExtension reports whether the file name carries one of the given
// extensions. Extensions should include the dot prefix (e.g. ".txt").
func MatchesExtension(file document.File, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(file.Name()))
	if ext == "" {
		return false
	}
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
