// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package config loads the cluster map from cluster.json.
//
// Loading has two steps. A read failure wraps the OS error under the fixed
// message "failed to read config file"; a parse failure passes the decoder
// error through unchanged. Both are reported as *LoadError.
package config
