package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/mwalkowski/laradoc"
	"github.com/mwalkowski/laradoc/mock"
	laraslog "github.com/mwalkowski/laradoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingIndex_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs query and result count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Index{
			SearchFn: func(context.Context, string, int) ([]laradoc.SearchResult, error) {
				return []laradoc.SearchResult{
					{Chunk: &laradoc.Chunk{Text: "routing"}, Score: 0.9},
					{Chunk: &laradoc.Chunk{Text: "middleware"}, Score: 0.8},
				}, nil
			},
		}

		index := laraslog.NewLoggingIndex(inner, logger)
		results, err := index.Search(context.Background(), "how to route", 3)

		require.NoError(t, err)
		assert.Len(t, results, 2)
		output := buf.String()
		assert.Contains(t, output, "similarity search")
		assert.Contains(t, output, "query=\"how to route\"")
		assert.Contains(t, output, "k=3")
		assert.Contains(t, output, "count=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Index{
			SearchFn: func(context.Context, string, int) ([]laradoc.SearchResult, error) {
				return nil, errors.New("index not loaded")
			},
		}

		index := laraslog.NewLoggingIndex(inner, logger)
		_, err := index.Search(context.Background(), "anything", 3)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"index not loaded\"")
	})
}
