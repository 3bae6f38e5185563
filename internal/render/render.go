// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package render produces the debug text printed for a load result.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// dumper output is stable across runs: no pointer addresses, sorted map keys.
var dumper = spew.ConfigState{
	Indent:                  "    ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Value renders v with its type, field names and values. Strings are quoted.
func Value(v any) string {
	return strings.TrimRight(dumper.Sdump(v), "\n")
}

// Error renders err as its top message followed by a "Caused by:" section
// listing each wrapped cause. A single cause is indented; several are numbered.
func Error(err error) string {
	if err == nil {
		return ""
	}
	msgs := Chain(err)
	if len(msgs) == 0 {
		return err.Error()
	}

	var b strings.Builder
	b.WriteString(msgs[0])
	causes := msgs[1:]
	if len(causes) == 0 {
		return b.String()
	}
	b.WriteString("\n\nCaused by:")
	for i, c := range causes {
		if len(causes) == 1 {
			fmt.Fprintf(&b, "\n    %s", c)
			continue
		}
		fmt.Fprintf(&b, "\n    %d: %s", i, c)
	}
	return b.String()
}

// Chain splits err into one message per level of the Unwrap chain.
// A level whose text is only its cause's text adds nothing and is skipped.
func Chain(err error) []string {
	var msgs []string
	for err != nil {
		next := errors.Unwrap(err)
		msg := err.Error()
		if next != nil {
			if msg == next.Error() {
				err = next
				continue
			}
			msg = strings.TrimSuffix(msg, ": "+next.Error())
		}
		msgs = append(msgs, msg)
		err = next
	}
	return msgs
}
