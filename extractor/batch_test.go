//
// Tencent is pleased to support the open source community by making trpc-docextract-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docextract-go is licensed under the Apache License Version 2.0.
//

package extractor

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-docextract-go/document"
)

// panicProcessor simulates a processor bug.
type panicProcessor struct {
	stubProcessor
}

func (p *panicProcessor) ExtractText(ctx context.Context, file document.File) (string, error) {
	panic("corrupted internal state")
}

func TestExtractBatch_Empty(t *testing.T) {
	e := New()
	outcomes := e.ExtractBatch(context.Background(), nil)
	assert.Empty(t, outcomes)
}

func TestExtractBatch_PreservesInputOrder(t *testing.T) {
	e := New()
	files := make([]document.File, 8)
	for i := range files {
		files[i] = textFile(fmt.Sprintf("doc-%d.txt", i), fmt.Sprintf("content number %d", i))
	}

	outcomes := e.ExtractBatch(context.Background(), files)
	require.Len(t, outcomes, len(files))
	for i, out := range outcomes {
		require.True(t, out.OK(), "item %d: %v", i, out.Err)
		assert.Same(t, files[i], out.File)
		assert.Equal(t, fmt.Sprintf("content number %d", i), out.Result.Text)
		assert.Equal(t, 3, out.Result.Metadata.WordCount)
	}
}

func TestExtractBatch_SettlesMixedFailures(t *testing.T) {
	e := New()
	files := []document.File{
		textFile("good.txt", "fine text"),
		document.NewFile("empty.txt", document.MediaTypePlainText, nil),
		sizedFile{"huge.pdf", document.MediaTypePDF, MaxFileSize + 1},
		document.NewFile("odd.bin", "application/octet-stream", []byte{1}),
		nil,
		textFile("also-good.txt", "more fine text"),
	}

	outcomes := e.ExtractBatch(context.Background(), files)
	require.Len(t, outcomes, len(files))

	assert.True(t, outcomes[0].OK())
	assert.Equal(t, "fine text", outcomes[0].Result.Text)

	require.False(t, outcomes[1].OK())
	assert.Equal(t, document.CodeEmptyFile, outcomes[1].Err.Code())

	require.False(t, outcomes[2].OK())
	assert.Equal(t, document.CodeFileTooLarge, outcomes[2].Err.Code())

	require.False(t, outcomes[3].OK())
	assert.Equal(t, document.CodeUnsupportedType, outcomes[3].Err.Code())

	require.False(t, outcomes[4].OK())
	assert.Equal(t, document.CodeNoFile, outcomes[4].Err.Code())

	assert.True(t, outcomes[5].OK())
	assert.Equal(t, "more fine text", outcomes[5].Result.Text)
}

func TestExtractBatch_RecoversPanics(t *testing.T) {
	broken := &panicProcessor{stubProcessor{
		name:  "BrokenProcessor",
		types: []string{document.MediaTypePlainText},
	}}
	e := New(WithProcessors(broken))

	files := []document.File{
		textFile("first.txt", "boom"),
		textFile("second.txt", "boom again"),
	}
	outcomes := e.ExtractBatch(context.Background(), files)
	require.Len(t, outcomes, 2)
	for i, out := range outcomes {
		require.False(t, out.OK(), "item %d", i)
		assert.Equal(t, document.CodeUnexpected, out.Err.Code())
		assert.Contains(t, out.Err.Error(), "panic")
		assert.Nil(t, out.Result)
	}
}

func TestExtractBatch_BoundedConcurrency(t *testing.T) {
	e := New(WithMaxBatchConcurrency(2))
	files := make([]document.File, 6)
	for i := range files {
		files[i] = textFile(fmt.Sprintf("doc-%d.txt", i), "same text here")
	}

	outcomes := e.ExtractBatch(context.Background(), files)
	require.Len(t, outcomes, 6)
	for i, out := range outcomes {
		require.True(t, out.OK(), "item %d: %v", i, out.Err)
		assert.Equal(t, "same text here", out.Result.Text)
	}
}
