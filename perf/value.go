package perf

// ValueKind identifies the variant held by a Value.
type ValueKind uint8

const (
	KindString ValueKind = iota
	KindFloat64
	KindInt64
	KindBool
	KindMap
)

// Value is a closed union of the attribute types a sample context may
// carry: string, float64, int64, bool, or a nested map. Keeping the
// contract closed keeps sink emission well-typed instead of accepting
// arbitrary dynamic values.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	i    int64
	b    bool
	m    map[string]Value
}

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Float64 returns a float64 Value.
func Float64(f float64) Value { return Value{kind: KindFloat64, num: f} }

// Int returns an int64 Value.
func Int(i int64) Value { return Value{kind: KindInt64, i: i} }

// Bool returns a bool Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Map returns a nested map Value.
func Map(m map[string]Value) Value { return Value{kind: KindMap, m: m} }

// Kind returns the variant held by the Value.
func (v Value) Kind() ValueKind { return v.kind }

// Interface unpacks the Value into its plain Go representation. Nested
// maps unpack recursively into map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindFloat64:
		return v.num
	case KindInt64:
		return v.i
	case KindBool:
		return v.b
	case KindMap:
		out := make(map[string]any, len(v.m))
		for k, child := range v.m {
			out[k] = child.Interface()
		}
		return out
	default:
		return v.str
	}
}
