package migration

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles_AreOrderedGooseMigrations(t *testing.T) {
	files, err := Files()
	require.NoError(t, err)
	require.NotEmpty(t, files)

	assert.Equal(t, "00001_create_lca_postings.sql", files[0])
	for _, f := range files {
		b, err := fs.ReadFile(embedded, "sql/"+f)
		require.NoError(t, err)
		body := string(b)
		assert.True(t, strings.Contains(body, "-- +goose Up"), f)
		assert.True(t, strings.Contains(body, "-- +goose Down"), f)
	}
}

func TestRun_NilDB(t *testing.T) {
	err := Runner{}.Run(context.Background(), nil)
	assert.Error(t, err)
}
