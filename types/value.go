package types

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Kind classifies a dynamic Value.
type Kind int

const (
	// KindNull is SQL NULL.
	KindNull Kind = iota
	// KindString is a text value.
	KindString
	// KindInt is a 64-bit signed integer.
	KindInt
	// KindFloat is a 64-bit float.
	KindFloat
	// KindBool is a boolean.
	KindBool
	// KindRaw is the opaque-text fallback: a value that fits none of the
	// other kinds (a JSON array or object, for example) carried as its
	// canonical textual serialization.
	KindRaw
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Value is the backend-agnostic representation of a bound parameter or a
// decoded column: one of null, string, 64-bit integer, 64-bit float, boolean,
// or an opaque textual fallback.
//
// The zero Value is null. Values are comparable and safe to copy.
type Value struct {
	kind Kind
	str  string
	i64  int64
	f64  float64
	b    bool
}

// Null returns the null Value.
func Null() Value {
	return Value{kind: KindNull}
}

// String returns a text Value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Int returns a 64-bit integer Value.
func Int(i int64) Value {
	return Value{kind: KindInt, i64: i}
}

// Float returns a 64-bit float Value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f64: f}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Raw returns an opaque-text fallback Value carrying the canonical textual
// serialization of something that fits no other kind.
func Raw(text string) Value {
	return Value{kind: KindRaw, str: text}
}

// Kind returns the classification of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// StringValue returns the text for KindString, or the raw serialization for
// KindRaw. It is zero for other kinds.
func (v Value) StringValue() string {
	return v.str
}

// IntValue returns the integer for KindInt. It is zero for other kinds.
func (v Value) IntValue() int64 {
	return v.i64
}

// FloatValue returns the float for KindFloat. It is zero for other kinds.
func (v Value) FloatValue() float64 {
	return v.f64
}

// BoolValue returns the boolean for KindBool. It is false for other kinds.
func (v Value) BoolValue() bool {
	return v.b
}

// MarshalJSON encodes the value in its dynamic wire form: null, a JSON
// string, a JSON number, a JSON bool, or (for KindRaw) the raw serialization
// verbatim.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.str)
	case KindInt:
		return strconv.AppendInt(nil, v.i64, 10), nil
	case KindFloat:
		return json.Marshal(v.f64)
	case KindBool:
		return strconv.AppendBool(nil, v.b), nil
	case KindRaw:
		if json.Valid([]byte(v.str)) {
			return []byte(v.str), nil
		}
		return json.Marshal(v.str)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a dynamic wire value.
//
// Classification order is fixed: null, then string, then integer-valued
// number, then float, then boolean; anything else (arrays, objects) becomes
// the KindRaw textual fallback. A whole-number JSON literal such as 42 is an
// integer because the integer check runs first; 42.5 is a float.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*v = Null()
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = String(s)
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return err
		}
		*v = Bool(b)
		return nil
	case '[', '{':
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err != nil {
			return err
		}
		*v = Raw(buf.String())
		return nil
	default:
		if i, err := strconv.ParseInt(string(trimmed), 10, 64); err == nil {
			*v = Int(i)
			return nil
		}
		var f float64
		if err := json.Unmarshal(trimmed, &f); err != nil {
			return err
		}
		*v = Float(f)
		return nil
	}
}

// Row is an ordered mapping from column name to dynamic value, preserving
// the column order returned by the database. When two columns share a name,
// the later value overwrites the earlier one at the name's original position
// (first-seen position, last-seen value).
type Row struct {
	names  []string
	index  map[string]int
	values []Value
}

// NewRow returns an empty Row.
func NewRow() *Row {
	return &Row{index: make(map[string]int)}
}

// Set stores a value under the given column name, appending the name at the
// end unless it was already seen.
func (r *Row) Set(name string, v Value) {
	if i, ok := r.index[name]; ok {
		r.values[i] = v
		return
	}
	r.index[name] = len(r.names)
	r.names = append(r.names, name)
	r.values = append(r.values, v)
}

// Get returns the value stored under name.
func (r *Row) Get(name string) (Value, bool) {
	i, ok := r.index[name]
	if !ok {
		return Null(), false
	}
	return r.values[i], true
}

// Columns returns the column names in first-seen order.
func (r *Row) Columns() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of distinct columns.
func (r *Row) Len() int {
	return len(r.names)
}

// MarshalJSON encodes the row as a JSON object with keys in column order.
func (r *Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := r.values[i].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the row, preserving key order.
func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return &json.UnmarshalTypeError{Value: "non-object", Type: nil}
	}

	*r = Row{index: make(map[string]int)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var v Value
		if err := v.UnmarshalJSON(raw); err != nil {
			return err
		}
		r.Set(key, v)
	}
	// Consume the closing brace.
	_, err = dec.Token()
	return err
}
