//
// Tencent is pleased to support the open source community by making trpc-docextract-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docextract-go is licensed under the Apache License Version 2.0.
//

package ocr

import (
	"context"
	"sync"

	"trpc.group/trpc-go/trpc-docextract-go/document"
	"trpc.group/trpc-go/trpc-docextract-go/log"
)

// State describes the worker lifecycle.
type State int

// Worker lifecycle states.
const (
	StateUninitialized State = iota
	StateReady
	StateTerminated
)

// String returns a readable state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Worker owns the shared recognition engine. It initializes the engine
// lazily on first use, reuses it across calls, and tears it down on
// Terminate. Recognition engines are not reentrant, so every engine access
// is serialized under the worker mutex.
type Worker struct {
	mu       sync.Mutex
	factory  EngineFactory
	engine   Engine
	language string
	state    State
}

// NewWorker creates a worker that builds engines with the given factory.
func NewWorker(factory EngineFactory) *Worker {
	return &Worker{factory: factory}
}

// Recognize runs recognition on image data, initializing the engine for the
// requested language if the worker is not ready. A worker that is already
// ready keeps its original language; a different requested language is
// ignored.
func (w *Worker) Recognize(ctx context.Context, image []byte, opts Options) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	language := opts.Language
	if language == "" {
		language = DefaultLanguage
	}

	if w.state != StateReady {
		engine, err := w.factory(language)
		if err != nil {
			return "", document.WrapError(document.CodeOCRInitFailed, err,
				"failed to initialize OCR engine for language "+language)
		}
		w.engine = engine
		w.language = language
		w.state = StateReady
		log.Debugf("ocr worker initialized for language %q", language)
	} else if language != w.language {
		log.Warnf("ocr worker already initialized for language %q; ignoring requested language %q",
			w.language, language)
	}

	text, err := w.engine.Recognize(ctx, image)
	if err != nil {
		return "", document.WrapError(document.CodeOCRFailed, err, "OCR recognition failed")
	}
	return text, nil
}

// Terminate releases the engine. It is idempotent: terminating a worker
// that holds no engine is a no-op. The next Recognize call re-initializes.
func (w *Worker) Terminate() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateReady {
		return nil
	}
	err := w.engine.Close()
	w.engine = nil
	w.language = ""
	w.state = StateTerminated
	log.Debugf("ocr worker terminated")
	return err
}

// State returns the current lifecycle state.
func (w *Worker) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Language returns the language the engine was initialized for, or "" when
// the worker holds no engine.
func (w *Worker) Language() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.language
}
