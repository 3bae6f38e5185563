// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// clustermap prints the cluster map stored in ./cluster.json.
//
// Usage:
//
//	clustermap
//
// The parsed record, or the reason it could not be loaded, is written to
// stdout. The exit code is 0 in both cases.
package main

import (
	"context"
	"os"

	"github.com/ManuGH/clustermap/internal/app"
	xglog "github.com/ManuGH/clustermap/internal/log"
	"github.com/ManuGH/clustermap/internal/version"
)

func main() {
	xglog.Configure(xglog.Config{
		Service: "clustermap",
		Version: version.String(),
	})
	logger := xglog.WithComponent("main")
	ctx := logger.WithContext(context.Background())
	_ = app.Run(ctx, os.Stdout)
}
