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
	"sync"

	"github.com/panjf2000/ants/v2"

	"trpc.group/trpc-go/trpc-docextract-go/document"
	"trpc.group/trpc-go/trpc-docextract-go/log"
)

// BatchOutcome pairs one input file with either its result or its typed
// error. Exactly one of Result and Err is set.
type BatchOutcome struct {
	File   document.File
	Result *document.Result
	Err    *document.Error
}

// OK reports whether the item succeeded.
func (o BatchOutcome) OK() bool { return o.Err == nil }

// ExtractBatch runs ExtractWithMetadata for every file concurrently and
// settles every item: the returned slice always has one outcome per input,
// in input order, and no failure aborts or omits the processing of any
// other file. The call itself never fails.
func (e *Extractor) ExtractBatch(ctx context.Context, files []document.File, opts ...ExtractOption) []BatchOutcome {
	outcomes := make([]BatchOutcome, len(files))
	if len(files) == 0 {
		return outcomes
	}

	cfg := newExtractConfig(opts...)
	size := e.maxBatchConcurrency
	if size <= 0 || size > len(files) {
		size = len(files)
	}

	var wg sync.WaitGroup
	pool, err := ants.NewPoolWithFunc(size, func(arg any) {
		defer wg.Done()
		idx := arg.(int)
		outcomes[idx] = e.extractOutcome(ctx, files[idx], cfg)
	})
	if err != nil {
		// Pool creation failing is no reason to fail the batch.
		log.Warnf("batch pool unavailable, extracting sequentially: %v", err)
		for i, file := range files {
			outcomes[i] = e.extractOutcome(ctx, file, cfg)
		}
		return outcomes
	}
	defer pool.Release()

	for i := range files {
		wg.Add(1)
		if invokeErr := pool.Invoke(i); invokeErr != nil {
			wg.Done()
			outcomes[i] = BatchOutcome{
				File: files[i],
				Err: document.NewErrorf(document.CodeUnexpected,
					"failed to schedule extraction: %v", invokeErr),
			}
		}
	}
	wg.Wait()
	return outcomes
}

// extractOutcome settles one batch item, converting typed errors, untyped
// errors and panics into a per-item error value.
func (e *Extractor) extractOutcome(ctx context.Context, file document.File, cfg *extractConfig) (out BatchOutcome) {
	out.File = file
	defer func() {
		if r := recover(); r != nil {
			out.Result = nil
			pe := document.NewErrorf(document.CodeUnexpected, "panic during extraction: %v", r)
			if file != nil {
				pe = pe.WithFile(file)
			}
			out.Err = pe
		}
	}()

	result, err := e.extractWithMetadata(ctx, file, cfg)
	if err != nil {
		out.Err = toProcessingError(err, file)
		return out
	}
	out.Result = result
	return out
}

// extractWithMetadata is the config-level entry shared by the public method
// and the batch path.
func (e *Extractor) extractWithMetadata(ctx context.Context, file document.File, cfg *extractConfig) (*document.Result, error) {
	if err := e.validate(file, cfg); err != nil {
		return nil, err
	}
	proc, err := e.selectProcessor(file, cfg)
	if err != nil {
		return nil, err
	}
	log.Debugf("extracting from %q with %s", file.Name(), proc.Name())
	result, extractErr := e.delegateMetadata(ctx, proc, file, cfg)
	if extractErr != nil {
		return nil, wrapProcessorError(proc.Name(), extractErr, file)
	}
	return result, nil
}

// toProcessingError converts any error into a typed error for batch
// outcomes.
func toProcessingError(err error, file document.File) *document.Error {
	if pe, ok := document.AsError(err); ok {
		return pe
	}
	pe := document.WrapError(document.CodeProcessingFailed, err, err.Error())
	if file != nil {
		pe = pe.WithFile(file)
	}
	return pe
}
