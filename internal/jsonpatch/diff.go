// Package jsonpatch computes RFC 6902 patches between two JSON documents.
package jsonpatch

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

var emptyPatch = json.RawMessage("[]")

type Operation struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// Between marshals prev and next and returns the patch that turns the first
// into the second. Identical documents yield an empty array.
func Between(prev, next any) (json.RawMessage, error) {
	a, err := normalize(prev)
	if err != nil {
		return nil, errors.Wrap(err, "normalize previous document")
	}
	b, err := normalize(next)
	if err != nil {
		return nil, errors.Wrap(err, "normalize next document")
	}

	ops := Diff(a, b, "")
	if len(ops) == 0 {
		return emptyPatch, nil
	}
	out, err := json.Marshal(ops)
	if err != nil {
		return nil, errors.Wrap(err, "marshal patch")
	}
	return out, nil
}

func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Diff walks two decoded documents (maps, slices and scalars as produced by
// json.Unmarshal into any). Object keys are visited in sorted order so the
// patch is deterministic. Path should be "" for the root document.
func Diff(a, b any, path string) []Operation {
	if a == nil && b == nil {
		return nil
	}
	if a == nil || b == nil {
		return []Operation{replaceOp(path, b)}
	}

	aMap, aIsMap := a.(map[string]any)
	bMap, bIsMap := b.(map[string]any)
	if aIsMap && bIsMap {
		return diffObjects(aMap, bMap, path)
	}

	aArr, aIsArr := a.([]any)
	bArr, bIsArr := b.([]any)
	if aIsArr && bIsArr {
		return diffArrays(aArr, bArr, path)
	}

	if aIsMap || bIsMap || aIsArr || bIsArr || a != b {
		return []Operation{replaceOp(path, b)}
	}
	return nil
}

func diffObjects(a, b map[string]any, path string) []Operation {
	var ops []Operation

	for _, k := range slices.Sorted(maps.Keys(a)) {
		if _, ok := b[k]; !ok {
			ops = append(ops, removeOp(path+"/"+escapeKey(k)))
		}
	}

	for _, k := range slices.Sorted(maps.Keys(b)) {
		childPath := path + "/" + escapeKey(k)
		av, inA := a[k]
		if !inA {
			ops = append(ops, addOp(childPath, b[k]))
			continue
		}
		ops = append(ops, Diff(av, b[k], childPath)...)
	}

	return ops
}

func diffArrays(a, b []any, path string) []Operation {
	var ops []Operation

	common := min(len(a), len(b))
	for i := 0; i < common; i++ {
		ops = append(ops, Diff(a[i], b[i], path+"/"+strconv.Itoa(i))...)
	}

	// trailing removals run backwards so earlier indexes stay valid
	for i := len(a) - 1; i >= common; i-- {
		ops = append(ops, removeOp(path+"/"+strconv.Itoa(i)))
	}
	for i := common; i < len(b); i++ {
		ops = append(ops, addOp(path+"/"+strconv.Itoa(i), b[i]))
	}

	return ops
}

func replaceOp(path string, value any) Operation {
	return Operation{Op: "replace", Path: path, Value: marshalValue(value)}
}

func addOp(path string, value any) Operation {
	return Operation{Op: "add", Path: path, Value: marshalValue(value)}
}

func removeOp(path string) Operation {
	return Operation{Op: "remove", Path: path}
}

func marshalValue(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("null")
	}
	return b
}

// escapeKey escapes a JSON Pointer token per RFC 6901.
func escapeKey(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}
