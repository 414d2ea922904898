//
// Tencent is pleased to support the open source community by making trpc-docextract-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docextract-go is licensed under the Apache License Version 2.0.
//

// Package ocr provides the recognition engine interface and the shared
// worker that manages the engine lifecycle.
package ocr

import "context"

// DefaultLanguage is used when no recognition language is requested.
const DefaultLanguage = "eng"

// Options configures OCR behavior for a single extraction call.
type Options struct {
	// Enabled gates recognition. When false the image processor returns a
	// placeholder instead of running the engine.
	Enabled bool

	// Language selects the recognition language (e.g. "eng", "deu").
	Language string

	// PreprocessImage is reserved; image preprocessing is not applied in
	// the current behavior.
	PreprocessImage bool
}

// DefaultOptions returns the options applied when the caller passes none.
func DefaultOptions() Options {
	return Options{Enabled: true, Language: DefaultLanguage}
}

// Engine is a recognition engine instance bound to one language. Engines
// are not assumed to be safe for concurrent use; the Worker serializes all
// access.
type Engine interface {
	// Recognize extracts text from raster image data.
	Recognize(ctx context.Context, image []byte) (string, error)

	// Close releases engine resources.
	Close() error
}

// EngineFactory constructs an engine for the requested language. The worker
// calls it lazily on first use and again after termination.
type EngineFactory func(language string) (Engine, error)
