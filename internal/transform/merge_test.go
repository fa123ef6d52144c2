package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeMaps_NilBaseReturnsPartial(t *testing.T) {
	partial := map[string]any{"restore": true}

	got := MergeMaps(partial, nil)

	assert.Equal(t, partial, got)
}

func TestMergeMaps_Idempotent(t *testing.T) {
	cfg := map[string]any{
		"recolor": map[string]any{"prompt": "jacket", "to": "red", "multiple": true},
	}

	got := MergeMaps(cfg, cfg)

	assert.Equal(t, cfg, got)
}

func TestMergeMaps_PartialWinsBaseOnlyKeysPreserved(t *testing.T) {
	partial := map[string]any{"a": map[string]any{"x": 1}}
	base := map[string]any{"a": map[string]any{"x": 2, "y": 3}}

	got := MergeMaps(partial, base)

	assert.Equal(t, map[string]any{"a": map[string]any{"x": 1, "y": 3}}, got)
}

func TestMergeMaps_ScalarOverwritesNested(t *testing.T) {
	partial := map[string]any{"remove": true}
	base := map[string]any{"remove": map[string]any{"prompt": "chair"}}

	got := MergeMaps(partial, base)

	assert.Equal(t, true, got["remove"])
}

func TestMergeMaps_ArraysAreAtomic(t *testing.T) {
	// Arrays are replaced wholesale, never merged element-wise. This is a
	// policy choice, not an accident.
	partial := map[string]any{"tags": []any{"c"}}
	base := map[string]any{"tags": []any{"a", "b"}}

	got := MergeMaps(partial, base)

	assert.Equal(t, []any{"c"}, got["tags"])
}

func TestMergeMaps_BasePreservedOnDisjointKeys(t *testing.T) {
	partial := map[string]any{"restore": true}
	base := map[string]any{"fillBackground": true}

	got := MergeMaps(partial, base)

	assert.Equal(t, map[string]any{"restore": true, "fillBackground": true}, got)
}
