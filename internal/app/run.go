// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package app wires loading and printing into the single program run.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ManuGH/clustermap/internal/config"
	xglog "github.com/ManuGH/clustermap/internal/log"
	"github.com/ManuGH/clustermap/internal/render"
	"github.com/google/uuid"
)

// Run loads config.DefaultPath from the working directory and prints the
// result to w. The load error is returned after it has been printed.
func Run(ctx context.Context, w io.Writer) error {
	return RunPath(ctx, w, config.DefaultPath)
}

// RunPath is Run for an explicit file path.
func RunPath(ctx context.Context, w io.Writer, path string) error {
	if xglog.RunIDFromContext(ctx) == "" {
		ctx = xglog.ContextWithRunID(ctx, uuid.NewString())
	}
	logger := xglog.WithComponentFromContext(ctx, "app")

	cm, err := config.NewLoader(path, xglog.WithContext(ctx, *xglog.FromContext(ctx))).Load()
	if err != nil {
		logger.Debug().Str(xglog.FieldEvent, "run.failed").Stringer(xglog.FieldKind, config.Classify(err)).Msg("printing load failure")
		if _, werr := fmt.Fprintln(w, render.Error(err)); werr != nil {
			return errors.Join(err, fmt.Errorf("write output: %w", werr))
		}
		return err
	}

	if _, err := fmt.Fprintln(w, render.Value(cm)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Debug().Str(xglog.FieldEvent, "run.done").Msg("cluster map printed")
	return nil
}
