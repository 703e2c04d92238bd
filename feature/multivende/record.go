package multivende

import "time"

// Record is one raw marketplace payload: an arbitrarily nested JSON-like
// tree. The accessors walk a path of string keys and int indices and report
// absence through their ok result instead of panicking, because the API
// regularly omits whole sub-objects.
type Record map[string]any

// Get walks the path and returns the value found there. Path elements are
// string map keys or int array indices; negative indices count from the end
// of the array, so -1 addresses the last element.
func (r Record) Get(path ...any) (any, bool) {
	var cur any = map[string]any(r)

	for _, step := range path {
		switch key := step.(type) {
		case string:
			m, ok := cur.(map[string]any)
			if !ok {
				return nil, false
			}
			cur, ok = m[key]
			if !ok {
				return nil, false
			}
		case int:
			arr, ok := cur.([]any)
			if !ok {
				return nil, false
			}
			idx := key
			if idx < 0 {
				idx += len(arr)
			}
			if idx < 0 || idx >= len(arr) {
				return nil, false
			}
			cur = arr[idx]
		default:
			return nil, false
		}
	}

	if cur == nil {
		return nil, false
	}
	return cur, true
}

// String returns the string at path.
func (r Record) String(path ...any) (string, bool) {
	v, ok := r.Get(path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Float returns the number at path. JSON numbers decode as float64; string
// encoded numbers are not coerced.
func (r Record) Float(path ...any) (float64, bool) {
	v, ok := r.Get(path...)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

// Int returns the number at path truncated to int.
func (r Record) Int(path ...any) (int, bool) {
	f, ok := r.Float(path...)
	return int(f), ok
}

// Time parses the RFC 3339 timestamp at path and strips the offset: the
// result is the equivalent UTC instant, which downstream stores as a
// timezone-naive column.
func (r Record) Time(path ...any) (time.Time, bool) {
	s, ok := r.String(path...)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// Sub returns the nested object at path as a Record.
func (r Record) Sub(path ...any) (Record, bool) {
	v, ok := r.Get(path...)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return Record(m), true
}

// Records returns the array of objects at path.
func (r Record) Records(path ...any) ([]Record, bool) {
	v, ok := r.Get(path...)
	if !ok {
		return nil, false
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]Record, 0, len(arr))
	for _, e := range arr {
		m, ok := e.(map[string]any)
		if !ok {
			return nil, false
		}
		out = append(out, Record(m))
	}
	return out, true
}
