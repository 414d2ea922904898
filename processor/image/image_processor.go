//
// Tencent is pleased to support the open source community by making trpc-docextract-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docextract-go is licensed under the Apache License Version 2.0.
//
//

// Package image provides the OCR processor for raster images. It is the
// fallback path for image uploads and wraps the shared recognition worker.
package image

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trpc.group/trpc-go/trpc-docextract-go/document"
	"trpc.group/trpc-go/trpc-docextract-go/internal/textclean"
	"trpc.group/trpc-go/trpc-docextract-go/ocr"
	"trpc.group/trpc-go/trpc-docextract-go/ocr/tesseract"
	"trpc.group/trpc-go/trpc-docextract-go/processor"
)

var supportedTypes = []string{
	document.MediaTypePNG,
	document.MediaTypeJPEG,
	document.MediaTypeWebP,
}

var supportedExtensions = []string{".png", ".jpg", ".jpeg", ".webp"}

// Processor runs OCR on raster images through a shared worker.
type Processor struct {
	worker *ocr.Worker
}

// Option configures the image processor.
type Option func(*Processor)

// WithWorker sets the recognition worker, for sharing one worker between
// processors or injecting a fake in tests.
func WithWorker(worker *ocr.Worker) Option {
	return func(p *Processor) { p.worker = worker }
}

// WithEngineFactory sets the engine factory backing a new worker.
func WithEngineFactory(factory ocr.EngineFactory) Option {
	return func(p *Processor) { p.worker = ocr.NewWorker(factory) }
}

// New creates an image processor. Without options it recognizes with a
// Tesseract-backed worker.
func New(opts ...Option) *Processor {
	p := &Processor{}
	for _, opt := range opts {
		opt(p)
	}
	if p.worker == nil {
		p.worker = ocr.NewWorker(tesseract.Factory())
	}
	return p
}

// Name returns the processor identity.
func (p *Processor) Name() string { return "ImageProcessor" }

// SupportedTypes returns the media types this processor declares.
func (p *Processor) SupportedTypes() []string { return supportedTypes }

// Worker returns the shared recognition worker.
func (p *Processor) Worker() *ocr.Worker { return p.worker }

// CanProcess reports whether the file is a raster image by declared type or
// file extension.
func (p *Processor) CanProcess(file document.File) bool {
	return processor.MatchesType(file, supportedTypes) ||
		processor.MatchesExtension(file, supportedExtensions)
}

// ExtractText runs OCR with default options.
func (p *Processor) ExtractText(ctx context.Context, file document.File) (string, error) {
	return p.ExtractTextWithOptions(ctx, file, ocr.DefaultOptions())
}

// ExtractTextWithOptions runs OCR honoring per-call options. Disabled OCR
// and images without legible text are deliberate non-error outcomes that
// return placeholder strings.
func (p *Processor) ExtractTextWithOptions(ctx context.Context, file document.File, opts ocr.Options) (string, error) {
	if !opts.Enabled {
		return DisabledPlaceholder(file.Name()), nil
	}

	data, err := file.Bytes()
	if err != nil {
		return "", document.WrapError(document.CodeReadFailed, err,
			"failed to read file content").WithFile(file)
	}

	text, err := p.worker.Recognize(ctx, data, opts)
	if err != nil {
		if pe, ok := document.AsError(err); ok {
			return "", pe.WithFile(file)
		}
		return "", err
	}

	cleaned := textclean.OCR(text)
	if cleaned == "" {
		return NoTextPlaceholder(file.Name()), nil
	}
	return cleaned, nil
}

// ExtractWithMetadata runs OCR with default options and computes metadata.
func (p *Processor) ExtractWithMetadata(ctx context.Context, file document.File) (*document.Result, error) {
	return p.ExtractWithMetadataOptions(ctx, file, ocr.DefaultOptions())
}

// ExtractWithMetadataOptions runs OCR honoring per-call options and computes
// metadata. Placeholder outcomes count as zero words.
func (p *Processor) ExtractWithMetadataOptions(ctx context.Context, file document.File, opts ocr.Options) (*document.Result, error) {
	start := time.Now()
	text, err := p.ExtractTextWithOptions(ctx, file, opts)
	if err != nil {
		return nil, err
	}

	wordCount := 0
	if !IsPlaceholder(text) {
		wordCount = textclean.CountWords(text)
	}
	return &document.Result{
		Text: text,
		Metadata: document.Metadata{
			WordCount:      wordCount,
			ProcessingTime: time.Since(start),
		},
	}, nil
}

// DisabledPlaceholder is returned when OCR was not enabled for the call.
func DisabledPlaceholder(name string) string {
	return fmt.Sprintf("[Image file: %s. OCR processing disabled.]", name)
}

// NoTextPlaceholder is returned when recognition found no legible text.
func NoTextPlaceholder(name string) string {
	return fmt.Sprintf("[Image processed: %s. No text detected.]", name)
}

// IsPlaceholder reports whether text is one of the diagnostic placeholders,
// which are excluded from word counting.
func IsPlaceholder(text string) bool {
	return strings.HasPrefix(text, "[Image ") && strings.HasSuffix(text, "]")
}
