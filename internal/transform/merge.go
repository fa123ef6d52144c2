package transform

// MergeMaps deep-merges partial over base and returns the result. For every
// key in partial: when both sides hold a nested map the two are merged
// recursively, otherwise the partial value overwrites. Keys only in base are
// preserved. A nil base short-circuits to partial. Arrays are atomic values:
// a slice from partial fully replaces the one in base, never element-wise.
// The result shares values with both inputs; callers own it from here on.
func MergeMaps(partial, base map[string]any) map[string]any {
	if base == nil {
		return partial
	}

	out := make(map[string]any, len(base)+len(partial))
	for k, v := range base {
		out[k] = v
	}

	for k, v := range partial {
		pm, pok := v.(map[string]any)
		bm, bok := out[k].(map[string]any)
		if pok && bok {
			out[k] = MergeMaps(pm, bm)
			continue
		}
		out[k] = v
	}

	return out
}
