//
// Tencent is pleased to support the open source community by making trpc-docextract-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docextract-go is licensed under the Apache License Version 2.0.
//

// Package tesseract provides the Tesseract recognition engine.
//
// Requires the Tesseract runtime: apt-get install tesseract-ocr libtesseract-dev
package tesseract

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"trpc.group/trpc-go/trpc-docextract-go/ocr"
)

// options holds internal configuration for the Tesseract engine.
type options struct {
	pageSegMode int // Tesseract page segmentation mode (0-13)
}

// Option configures the Tesseract engine.
type Option func(*options)

// WithPageSegMode sets the Tesseract page segmentation mode (0-13).
// Common modes:
//
//	3 = Fully automatic page segmentation (default)
//	6 = Uniform block of text
//	7 = Treat the image as a single text line
//
// Invalid modes (< 0 or > 13) are ignored and the default mode (3) is used.
func WithPageSegMode(mode int) Option {
	return func(o *options) {
		if mode < 0 || mode > 13 {
			return
		}
		o.pageSegMode = mode
	}
}

// Engine wraps a gosseract client bound to one language. It is not safe for
// concurrent use; the ocr.Worker serializes access.
type Engine struct {
	client *gosseract.Client
}

// New creates a Tesseract engine for the given language.
func New(language string, opts ...Option) (*Engine, error) {
	cfg := &options{pageSegMode: 3}
	for _, opt := range opts {
		opt(cfg)
	}

	client := gosseract.NewClient()
	if language != "" {
		if err := client.SetLanguage(language); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set language %q: %w", language, err)
		}
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(cfg.pageSegMode)); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set page segmentation mode %d: %w", cfg.pageSegMode, err)
	}
	return &Engine{client: client}, nil
}

// Factory returns an ocr.EngineFactory that builds Tesseract engines with
// the given options.
func Factory(opts ...Option) ocr.EngineFactory {
	return func(language string) (ocr.Engine, error) {
		return New(language, opts...)
	}
}

// Recognize extracts text from image data. The operation respects context
// cancellation; recognition itself runs in a separate goroutine because
// gosseract calls are not interruptible.
func (e *Engine) Recognize(ctx context.Context, image []byte) (string, error) {
	type result struct {
		text string
		err  error
	}

	// Buffered so the goroutine never leaks on cancellation.
	resultCh := make(chan result, 1)
	go func() {
		if err := e.client.SetImageFromBytes(image); err != nil {
			resultCh <- result{err: fmt.Errorf("failed to set image: %w", err)}
			return
		}
		text, err := e.client.Text()
		if err != nil {
			resultCh <- result{err: fmt.Errorf("failed to extract text: %w", err)}
			return
		}
		resultCh <- result{text: text}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-resultCh:
		return res.text, res.err
	}
}

// Close releases the underlying client.
func (e *Engine) Close() error {
	if e.client == nil {
		return nil
	}
	err := e.client.Close()
	e.client = nil
	return err
}
