// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	xglog "github.com/ManuGH/clustermap/internal/log"
	"github.com/rs/zerolog"
)

// DefaultPath is resolved against the working directory at load time.
const DefaultPath = "cluster.json"

// Loader reads a cluster map from a single JSON file.
type Loader struct {
	path   string
	logger zerolog.Logger
}

// NewLoader creates a loader for path. An empty path means DefaultPath.
func NewLoader(path string, logger zerolog.Logger) *Loader {
	if path == "" {
		path = DefaultPath
	}
	return &Loader{
		path:   path,
		logger: logger.With().Str(xglog.FieldComponent, "config").Str(xglog.FieldPath, path).Logger(),
	}
}

// Path returns the file the loader reads.
func (l *Loader) Path() string {
	return l.path
}

// Load reads and decodes the file. Every failure is a *LoadError.
func (l *Loader) Load() (ClusterMap, error) {
	text, err := l.readText()
	if err != nil {
		l.logger.Debug().Err(err).Str(xglog.FieldEvent, "config.failed").Stringer(xglog.FieldKind, KindRead).Msg("read failed")
		return ClusterMap{}, &LoadError{Kind: KindRead, Msg: ReadContext, Err: err}
	}
	l.logger.Debug().Str(xglog.FieldEvent, "config.read").Int("bytes", len(text)).Msg("config file read")

	cm, err := DecodeClusterMap(text)
	if err != nil {
		l.logger.Debug().Err(err).Str(xglog.FieldEvent, "config.failed").Stringer(xglog.FieldKind, KindParse).Msg("parse failed")
		return ClusterMap{}, &LoadError{Kind: KindParse, Err: err}
	}
	l.logger.Debug().Str(xglog.FieldEvent, "config.parsed").Str(xglog.FieldClusterName, cm.Name).Int32(xglog.FieldClusterGroup, cm.Group).Msg("cluster map loaded")
	return cm, nil
}

func (l *Loader) readText() ([]byte, error) {
	// #nosec G304 -- fixed file name relative to the working directory
	data, err := os.ReadFile(filepath.Clean(l.path))
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}
	return data, nil
}

// Load reads the cluster map at path without logging.
func Load(path string) (ClusterMap, error) {
	return NewLoader(path, zerolog.Nop()).Load()
}

// LoadClusterMap reads DefaultPath from the working directory.
func LoadClusterMap() (ClusterMap, error) {
	return Load(DefaultPath)
}
