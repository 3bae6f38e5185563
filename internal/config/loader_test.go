// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ManuGH/clustermap/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadClusterMap_FromWorkingDirectory(t *testing.T) {
	testutil.ClusterDir(t, `{"name": "alpha", "group": 3}`)

	cm, err := LoadClusterMap()
	require.NoError(t, err)
	assert.Equal(t, ClusterMap{Name: "alpha", Group: 3}, cm)
}

func TestLoadClusterMap_MissingFile(t *testing.T) {
	testutil.EmptyDir(t)

	_, err := LoadClusterMap()
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrReadConfig)
	assert.NotErrorIs(t, err, ErrParseConfig)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, KindRead, Classify(err))
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_ParseFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "syntax", content: `{not valid}`},
		{name: "missing group", content: `{"name": "alpha"}`},
		{name: "group not integer", content: `{"name": "alpha", "group": "x"}`},
		{name: "empty file", content: ``},
		{name: "duplicate name", content: `{"name": "a", "name": "b", "group": 1}`},
		{name: "lone surrogate", content: `{"name": "\ud800", "group": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteClusterFile(t, t.TempDir(), tt.content)

			_, err := Load(path)
			require.Error(t, err)

			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, KindParse, le.Kind)
			assert.Empty(t, le.Msg)
			assert.ErrorIs(t, err, ErrParseConfig)
			assert.NotContains(t, err.Error(), ReadContext)
			// The decoder's description is passed through unchanged.
			assert.Equal(t, le.Err.Error(), err.Error())
		})
	}
}

func TestLoad_InvalidUTF8IsReadFailure(t *testing.T) {
	path := testutil.WriteClusterFile(t, t.TempDir(), "{\"name\": \"\xff\xfe\", \"group\": 1}")

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, KindRead, Classify(err))
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Contains(t, err.Error(), ReadContext)
}

func TestLoad_Unreadable(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for this user")
	}
	path := testutil.WriteClusterFile(t, t.TempDir(), `{"name": "alpha", "group": 3}`)
	require.NoError(t, os.Chmod(path, 0o000))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadConfig)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestLoad_DirectoryIsReadFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cluster.json")
	require.NoError(t, os.Mkdir(path, 0o750))

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, KindRead, Classify(err))
}

func TestLoad_DoesNotModifyFile(t *testing.T) {
	content := `{"name": "alpha", "group": 3}`
	path := testutil.WriteClusterFile(t, t.TempDir(), content)
	before, err := os.Stat(path)
	require.NoError(t, err)

	_, err = Load(path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestNewLoader_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, NewLoader("", zerolog.Nop()).Path())
	assert.Equal(t, "other.json", NewLoader("other.json", zerolog.Nop()).Path())
}

func TestLoader_LogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	path := testutil.WriteClusterFile(t, t.TempDir(), `{"name": "alpha", "group": 3}`)

	_, err := NewLoader(path, logger).Load()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"event":"config.read"`)
	assert.Contains(t, out, `"event":"config.parsed"`)
	assert.Contains(t, out, `"cluster_name":"alpha"`)
	assert.Contains(t, out, `"component":"config"`)

	buf.Reset()
	_, err = NewLoader(filepath.Join(t.TempDir(), "absent.json"), logger).Load()
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"event":"config.failed"`)
	assert.Contains(t, buf.String(), `"kind":"read"`)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, KindUnknown, Classify(nil))
	assert.Equal(t, KindUnknown, Classify(errors.New("other")))
	assert.Equal(t, KindParse, Classify(&LoadError{Kind: KindParse, Err: errors.New("bad")}))
}

func TestLoadError_Error(t *testing.T) {
	cause := errors.New("cause")
	tests := []struct {
		name string
		err  *LoadError
		want string
	}{
		{name: "message and cause", err: &LoadError{Kind: KindRead, Msg: ReadContext, Err: cause}, want: "failed to read config file: cause"},
		{name: "cause only", err: &LoadError{Kind: KindParse, Err: cause}, want: "cause"},
		{name: "message only", err: &LoadError{Kind: KindRead, Msg: "m"}, want: "m"},
		{name: "empty", err: &LoadError{Kind: KindParse}, want: "config: parse failure"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
