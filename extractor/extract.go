//
// Tencent is pleased to support the open source community by making trpc-docextract-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docextract-go is licensed under the Apache License Version 2.0.
//
//

package extractor

import (
	"context"
	"strings"
	"time"

	"trpc.group/trpc-go/trpc-docextract-go/document"
	"trpc.group/trpc-go/trpc-docextract-go/internal/textclean"
	"trpc.group/trpc-go/trpc-docextract-go/log"
	"trpc.group/trpc-go/trpc-docextract-go/processor"
	"trpc.group/trpc-go/trpc-docextract-go/processor/image"
)

// ExtractText validates the file, selects a processor and returns the
// extracted plain text.
func (e *Extractor) ExtractText(ctx context.Context, file document.File, opts ...ExtractOption) (string, error) {
	cfg := newExtractConfig(opts...)
	if err := e.validate(file, cfg); err != nil {
		return "", err
	}

	proc, err := e.selectProcessor(file, cfg)
	if err != nil {
		return "", err
	}
	log.Debugf("extracting text from %q with %s", file.Name(), proc.Name())

	text, extractErr := e.delegateText(ctx, proc, file, cfg)
	if extractErr != nil {
		return "", wrapProcessorError(proc.Name(), extractErr, file)
	}
	return text, nil
}

// ExtractWithMetadata validates the file, selects a processor and returns
// the extracted text plus metadata. When the selected processor only
// implements plain text extraction, minimal metadata is synthesized.
func (e *Extractor) ExtractWithMetadata(ctx context.Context, file document.File, opts ...ExtractOption) (*document.Result, error) {
	return e.extractWithMetadata(ctx, file, newExtractConfig(opts...))
}

// validate fails fast before any processor runs. Order is significant:
// missing file, empty file and oversized file are rejected regardless of
// declared type.
func (e *Extractor) validate(file document.File, cfg *extractConfig) error {
	if file == nil {
		return document.NewError(document.CodeNoFile, "no file provided")
	}
	if file.Size() == 0 {
		return document.NewError(document.CodeEmptyFile, "file is empty").WithFile(file)
	}
	if file.Size() > MaxFileSize {
		return document.NewErrorf(document.CodeFileTooLarge,
			"file size %d bytes exceeds the maximum of %d bytes", file.Size(), MaxFileSize).
			WithFile(file)
	}
	if !e.canProcess(file, cfg.includeOCR) {
		return document.NewErrorf(document.CodeUnsupportedType,
			"unsupported file type %q; supported types: %s",
			file.MediaType(), strings.Join(e.SupportedTypes(), ", ")).
			WithFile(file)
	}
	return nil
}

// selectProcessor picks the first standard processor claiming the declared
// type, falling back to the OCR processor when permitted. First match wins;
// the standard order is a documented tie-break policy.
func (e *Extractor) selectProcessor(file document.File, cfg *extractConfig) (processor.Processor, error) {
	for _, p := range e.processors {
		if p.CanProcess(file) {
			return p, nil
		}
	}
	if cfg.includeOCR && e.ocrProcessor.CanProcess(file) {
		return e.ocrProcessor, nil
	}
	// Unreachable when validation ran first.
	return nil, document.NewErrorf(document.CodeNoProcessor,
		"no processor available for type %q", file.MediaType()).WithFile(file)
}

func (e *Extractor) delegateText(ctx context.Context, proc processor.Processor, file document.File, cfg *extractConfig) (string, error) {
	if ocrProc, ok := proc.(*image.Processor); ok {
		return ocrProc.ExtractTextWithOptions(ctx, file, cfg.ocr)
	}
	return proc.ExtractText(ctx, file)
}

func (e *Extractor) delegateMetadata(ctx context.Context, proc processor.Processor, file document.File, cfg *extractConfig) (*document.Result, error) {
	if ocrProc, ok := proc.(*image.Processor); ok {
		return ocrProc.ExtractWithMetadataOptions(ctx, file, cfg.ocr)
	}
	if metaProc, ok := proc.(processor.MetadataExtractor); ok {
		return metaProc.ExtractWithMetadata(ctx, file)
	}

	// Text-only processor: run plain extraction and synthesize minimal
	// metadata.
	start := time.Now()
	text, err := proc.ExtractText(ctx, file)
	if err != nil {
		return nil, err
	}
	return &document.Result{
		Text: text,
		Metadata: document.Metadata{
			WordCount:      textclean.CountWords(text),
			ProcessingTime: time.Since(start),
		},
	}, nil
}

// wrapProcessorError annotates a processor failure with the processor's
// identity so callers can tell which engine failed. The original error code
// is preserved; untyped errors become PROCESSING_FAILED.
func wrapProcessorError(name string, err error, file document.File) error {
	if pe, ok := document.AsError(err); ok {
		return pe.WithPrefix(name)
	}
	return document.WrapError(document.CodeProcessingFailed, err,
		name+": "+err.Error()).WithFile(file)
}
