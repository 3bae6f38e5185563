// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRunID   = "run_id"
	FieldService = "service"
	FieldVersion = "version"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"
	FieldKind      = "kind"

	// Path fields
	FieldPath = "path"

	// Cluster map fields
	FieldClusterName  = "cluster_name"
	FieldClusterGroup = "cluster_group"
)
