//
// Tencent is pleased to support the open source community by making trpc-docextract-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docextract-go is licensed under the Apache License Version 2.0.
//
//

package extractor

import "trpc.group/trpc-go/trpc-docextract-go/ocr"

// extractConfig holds per-call settings.
type extractConfig struct {
	ocr        ocr.Options
	includeOCR bool
}

// ExtractOption configures a single extraction call.
type ExtractOption func(*extractConfig)

func newExtractConfig(opts ...ExtractOption) *extractConfig {
	cfg := &extractConfig{
		ocr:        ocr.DefaultOptions(),
		includeOCR: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithOCR replaces the OCR options for this call.
func WithOCR(opts ocr.Options) ExtractOption {
	return func(cfg *extractConfig) { cfg.ocr = opts }
}

// WithOCRDisabled keeps image files routable to the OCR processor but makes
// it return a placeholder instead of running recognition.
func WithOCRDisabled() ExtractOption {
	return func(cfg *extractConfig) { cfg.ocr.Enabled = false }
}

// WithOCRLanguage sets the recognition language for this call.
func WithOCRLanguage(language string) ExtractOption {
	return func(cfg *extractConfig) { cfg.ocr.Language = language }
}

// WithoutOCRFallback excludes the OCR processor from routing entirely, so
// image types validate as unsupported.
func WithoutOCRFallback() ExtractOption {
	return func(cfg *extractConfig) { cfg.includeOCR = false }
}
