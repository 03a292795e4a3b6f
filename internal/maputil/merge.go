package maputil

import (
	"fmt"

	"dario.cat/mergo"
)

// DeepMerge merges source into target and returns target.
//
// Objects merge key by key. When the source value is an object and the
// target value is not, the target value is replaced by the source object.
// Arrays and scalars from source replace the target value, empty ones
// included. Source is copied first, so later changes to target never reach
// source.
func DeepMerge(target, source map[string]any) (map[string]any, error) {
	if target == nil {
		target = make(map[string]any, len(source))
	}
	src, _ := deepCopy(source).(map[string]any)
	if err := mergo.Merge(&target, src, mergo.WithOverride, mergo.WithOverwriteWithEmptyValue); err != nil {
		return nil, fmt.Errorf("maputil: merge failed: %w", err)
	}
	return target, nil
}

func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = deepCopy(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = deepCopy(val)
		}
		return out
	default:
		return v
	}
}
