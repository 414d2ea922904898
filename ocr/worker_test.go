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
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-docextract-go/document"
)

type fakeEngine struct {
	mu        sync.Mutex
	busy      bool
	text      string
	err       error
	calls     int
	closed    bool
	onEnter   func()
	reentered bool
}

func (e *fakeEngine) Recognize(ctx context.Context, image []byte) (string, error) {
	e.mu.Lock()
	if e.busy {
		e.reentered = true
	}
	e.busy = true
	e.calls++
	e.mu.Unlock()

	if e.onEnter != nil {
		e.onEnter()
	}

	e.mu.Lock()
	e.busy = false
	e.mu.Unlock()
	return e.text, e.err
}

func (e *fakeEngine) Close() error {
	e.closed = true
	return nil
}

type fakeFactory struct {
	mu      sync.Mutex
	inits   int
	langs   []string
	initErr error
	engine  *fakeEngine
}

func (f *fakeFactory) build(language string) (Engine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inits++
	f.langs = append(f.langs, language)
	if f.initErr != nil {
		return nil, f.initErr
	}
	if f.engine == nil {
		f.engine = &fakeEngine{text: "recognized"}
	}
	return f.engine, nil
}

func TestWorker_LazyInitAndReuse(t *testing.T) {
	factory := &fakeFactory{}
	w := NewWorker(factory.build)

	assert.Equal(t, StateUninitialized, w.State())

	text, err := w.Recognize(context.Background(), []byte("img"), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "recognized", text)
	assert.Equal(t, StateReady, w.State())
	assert.Equal(t, "eng", w.Language())

	_, err = w.Recognize(context.Background(), []byte("img"), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, factory.inits, "engine must be cached across calls")
}

func TestWorker_InitFailure(t *testing.T) {
	factory := &fakeFactory{initErr: errors.New("no engine")}
	w := NewWorker(factory.build)

	_, err := w.Recognize(context.Background(), []byte("img"), DefaultOptions())
	require.Error(t, err)
	assert.Equal(t, document.CodeOCRInitFailed, document.CodeOf(err))
	assert.Equal(t, StateUninitialized, w.State())
}

func TestWorker_RecognitionFailure(t *testing.T) {
	factory := &fakeFactory{engine: &fakeEngine{err: errors.New("blurry")}}
	w := NewWorker(factory.build)

	_, err := w.Recognize(context.Background(), []byte("img"), DefaultOptions())
	require.Error(t, err)
	assert.Equal(t, document.CodeOCRFailed, document.CodeOf(err))
}

func TestWorker_TerminateIdempotent(t *testing.T) {
	factory := &fakeFactory{}
	w := NewWorker(factory.build)

	// Terminating an uninitialized worker is a no-op.
	require.NoError(t, w.Terminate())
	assert.Equal(t, StateUninitialized, w.State())

	_, err := w.Recognize(context.Background(), []byte("img"), DefaultOptions())
	require.NoError(t, err)

	require.NoError(t, w.Terminate())
	assert.Equal(t, StateTerminated, w.State())
	assert.True(t, factory.engine.closed)
	require.NoError(t, w.Terminate())
}

func TestWorker_ReinitializesAfterTerminate(t *testing.T) {
	factory := &fakeFactory{}
	w := NewWorker(factory.build)

	_, err := w.Recognize(context.Background(), []byte("img"), DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, w.Terminate())

	_, err = w.Recognize(context.Background(), []byte("img"), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, factory.inits, "terminated worker must re-initialize")
	assert.Equal(t, StateReady, w.State())
}

func TestWorker_KeepsFirstLanguage(t *testing.T) {
	factory := &fakeFactory{}
	w := NewWorker(factory.build)

	_, err := w.Recognize(context.Background(), []byte("img"), Options{Enabled: true, Language: "deu"})
	require.NoError(t, err)
	_, err = w.Recognize(context.Background(), []byte("img"), Options{Enabled: true, Language: "fra"})
	require.NoError(t, err)

	assert.Equal(t, 1, factory.inits)
	assert.Equal(t, "deu", w.Language())
	assert.Equal(t, []string{"deu"}, factory.langs)
}

func TestWorker_SerializesEngineAccess(t *testing.T) {
	release := make(chan struct{})
	engine := &fakeEngine{text: "ok"}
	engine.onEnter = func() {
		select {
		case <-release:
		default:
			// First caller blocks until released; a concurrent caller
			// entering now would be flagged as reentrancy.
			<-release
		}
	}
	factory := &fakeFactory{engine: engine}
	w := NewWorker(factory.build)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = w.Recognize(context.Background(), []byte("img"), DefaultOptions())
		}()
	}
	close(release)
	wg.Wait()

	assert.Equal(t, 4, engine.calls)
	assert.False(t, engine.reentered, "worker must serialize engine access")
}
