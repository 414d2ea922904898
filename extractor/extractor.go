//
// Tencent is pleased to support the open source community by making trpc-docextract-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docextract-go is licensed under the Apache License Version 2.0.
//
//

// Package extractor implements the unified document extractor: input
// validation, processor selection, single-file extraction and concurrent
// batch extraction with per-item failure isolation.
package extractor

import (
	"trpc.group/trpc-go/trpc-docextract-go/document"
	"trpc.group/trpc-go/trpc-docextract-go/processor"
	"trpc.group/trpc-go/trpc-docextract-go/processor/image"
	"trpc.group/trpc-go/trpc-docextract-go/processor/pdf"
	"trpc.group/trpc-go/trpc-docextract-go/processor/plaintext"
	"trpc.group/trpc-go/trpc-docextract-go/processor/word"
)

// MaxFileSize is the hard ceiling on input size, enforced before any
// processor runs. Exactly MaxFileSize bytes is accepted.
const MaxFileSize = 50 * 1024 * 1024

// Extractor owns the ordered list of standard processors plus the OCR
// processor. Selection iterates the standard processors in declared order
// and picks the first match; the OCR processor is consulted last and only
// as the fallback for raster images.
type Extractor struct {
	processors          []processor.Processor
	ocrProcessor        *image.Processor
	maxBatchConcurrency int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithProcessors replaces the standard processor list. Order is
// significant: the first processor claiming a file's type wins.
func WithProcessors(processors ...processor.Processor) Option {
	return func(e *Extractor) { e.processors = processors }
}

// WithOCRProcessor replaces the OCR fallback processor.
func WithOCRProcessor(p *image.Processor) Option {
	return func(e *Extractor) { e.ocrProcessor = p }
}

// WithMaxBatchConcurrency bounds how many batch items run at once. Zero or
// negative keeps the default of one concurrent task per input.
func WithMaxBatchConcurrency(n int) Option {
	return func(e *Extractor) { e.maxBatchConcurrency = n }
}

// New creates an extractor. Without options it registers the PDF, Word and
// plain-text processors in that order, plus a Tesseract-backed OCR
// processor.
func New(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	if e.processors == nil {
		e.processors = []processor.Processor{
			pdf.New(),
			word.New(),
			plaintext.New(),
		}
	}
	if e.ocrProcessor == nil {
		e.ocrProcessor = image.New()
	}
	return e
}

// SupportedTypes returns the union of every registered processor's declared
// media types plus the OCR processor's types, in registration order.
func (e *Extractor) SupportedTypes() []string {
	seen := make(map[string]bool)
	var types []string
	for _, p := range e.processors {
		for _, t := range p.SupportedTypes() {
			if !seen[t] {
				seen[t] = true
				types = append(types, t)
			}
		}
	}
	for _, t := range e.ocrProcessor.SupportedTypes() {
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	return types
}

// CanProcess reports whether any processor claims the file. The declared
// media type is taken at face value; content is never sniffed.
func (e *Extractor) CanProcess(file document.File, opts ...ExtractOption) bool {
	if file == nil {
		return false
	}
	cfg := newExtractConfig(opts...)
	return e.canProcess(file, cfg.includeOCR)
}

func (e *Extractor) canProcess(file document.File, includeOCR bool) bool {
	for _, p := range e.processors {
		if p.CanProcess(file) {
			return true
		}
	}
	return includeOCR && e.ocrProcessor.CanProcess(file)
}

// RequiresOCR reports whether the file can only be handled by the OCR
// fallback.
func (e *Extractor) RequiresOCR(file document.File) bool {
	if file == nil {
		return false
	}
	return !e.canProcess(file, false) && e.ocrProcessor.CanProcess(file)
}

// TypeInfo describes how a file would be routed. Diagnostic only.
type TypeInfo struct {
	MediaType     string
	ProcessorName string
	Supported     bool
	RequiresOCR   bool
}

// FileTypeInfo reports which processor would claim the file. No side
// effects.
func (e *Extractor) FileTypeInfo(file document.File) TypeInfo {
	if file == nil {
		return TypeInfo{}
	}
	info := TypeInfo{MediaType: file.MediaType()}
	for _, p := range e.processors {
		if p.CanProcess(file) {
			info.ProcessorName = p.Name()
			info.Supported = true
			return info
		}
	}
	if e.ocrProcessor.CanProcess(file) {
		info.ProcessorName = e.ocrProcessor.Name()
		info.Supported = true
		info.RequiresOCR = true
	}
	return info
}

// TerminateOCR releases the shared OCR worker. Idempotent; the worker
// re-initializes on the next OCR call.
func (e *Extractor) TerminateOCR() error {
	return e.ocrProcessor.Worker().Terminate()
}

// Close releases all resources held by the extractor.
func (e *Extractor) Close() error {
	return e.TerminateOCR()
}
