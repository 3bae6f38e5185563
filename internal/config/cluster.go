// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"unicode/utf16"
)

// ClusterMap names a cluster and the group it belongs to.
type ClusterMap struct {
	Name  string `json:"name"`
	Group int32  `json:"group"`
}

var clusterMapType = reflect.TypeOf(ClusterMap{})

var requiredFields = []string{"name", "group"}

// DecodeClusterMap parses data as a single JSON object holding both
// required fields. Unknown keys are ignored; key matching is exact.
// A required key may appear only once.
func DecodeClusterMap(data []byte) (ClusterMap, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		// Report shape errors against ClusterMap, not the intermediate map.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			typeErr.Type = clusterMapType
		}
		return ClusterMap{}, err
	}
	if fields == nil {
		return ClusterMap{}, &json.UnmarshalTypeError{Value: "null", Type: clusterMapType}
	}
	// encoding/json substitutes U+FFFD for unpaired surrogates.
	if err := checkSurrogates(data); err != nil {
		return ClusterMap{}, err
	}
	// The map keeps only the last value of a repeated key.
	if err := checkDuplicateFields(data); err != nil {
		return ClusterMap{}, err
	}

	var cm ClusterMap
	if err := decodeField(fields, "name", &cm.Name); err != nil {
		return ClusterMap{}, err
	}
	if err := decodeField(fields, "group", &cm.Group); err != nil {
		return ClusterMap{}, err
	}
	return cm, nil
}

func decodeField(fields map[string]json.RawMessage, name string, dst any) error {
	raw, ok := fields[name]
	if !ok {
		return &MissingFieldError{Field: name}
	}
	// Unmarshal treats null as a no-op, which would leave a zero value behind.
	if bytes.Equal(raw, []byte("null")) {
		return &FieldTypeError{
			Field: name,
			Err:   &json.UnmarshalTypeError{Value: "null", Type: reflect.TypeOf(dst).Elem()},
		}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &FieldTypeError{Field: name, Err: err}
	}
	return nil
}

// checkDuplicateFields walks the top-level object of an already valid
// document and rejects repeats of the required keys.
func checkDuplicateFields(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(requiredFields))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		for _, f := range requiredFields {
			if key != f {
				continue
			}
			if seen[key] {
				return &DuplicateFieldError{Field: key}
			}
			seen[key] = true
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return err
		}
	}
	return nil
}

// checkSurrogates scans the string literals of an already valid document
// for \u escapes in the surrogate range that are not a leading/trailing pair.
func checkSurrogates(data []byte) error {
	inString := false
	for i := 0; i < len(data); i++ {
		c := data[i]
		if !inString {
			inString = c == '"'
			continue
		}
		switch c {
		case '"':
			inString = false
		case '\\':
			if data[i+1] != 'u' {
				i++
				continue
			}
			r := hexRune(data[i+2 : i+6])
			if !utf16.IsSurrogate(r) {
				i += 5
				continue
			}
			if r < 0xdc00 && i+11 < len(data) && data[i+6] == '\\' && data[i+7] == 'u' {
				if r2 := hexRune(data[i+8 : i+12]); r2 >= 0xdc00 && r2 <= 0xdfff {
					i += 11
					continue
				}
			}
			return fmt.Errorf("%w at offset %d", ErrLoneSurrogate, i)
		}
	}
	return nil
}

func hexRune(b []byte) rune {
	v, err := strconv.ParseUint(string(b), 16, 32)
	if err != nil {
		return -1
	}
	return rune(v)
}
