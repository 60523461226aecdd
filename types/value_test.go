package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueUnmarshalClassification(t *testing.T) {
	tests := []struct {
		name string
		json string
		want Value
	}{
		{"null", `null`, Null()},
		{"string", `"hello"`, String("hello")},
		{"integer", `42`, Int(42)},
		{"negative integer", `-7`, Int(-7)},
		{"float", `42.5`, Float(42.5)},
		{"exponent is float", `1e3`, Float(1000)},
		{"bool true", `true`, Bool(true)},
		{"bool false", `false`, Bool(false)},
		{"array falls back to raw", `[1, 2]`, Raw(`[1,2]`)},
		{"object falls back to raw", `{"a": 1}`, Raw(`{"a":1}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			require.NoError(t, json.Unmarshal([]byte(tt.json), &v))
			require.Equal(t, tt.want, v)
		})
	}
}

func TestValueUnmarshalNumericString(t *testing.T) {
	// A quoted number is a string; the string check runs before the
	// numeric ones.
	var v Value
	require.NoError(t, json.Unmarshal([]byte(`"42"`), &v))
	require.Equal(t, String("42"), v)
}

func TestValueMarshal(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null(), `null`},
		{"string", String("hi"), `"hi"`},
		{"int", Int(42), `42`},
		{"float", Float(42.5), `42.5`},
		{"bool", Bool(true), `true`},
		{"raw passes through", Raw(`{"a":1}`), `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.v)
			require.NoError(t, err)
			require.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestValueZeroIsNull(t *testing.T) {
	var v Value
	require.True(t, v.IsNull())
	require.Equal(t, KindNull, v.Kind())
}

func TestRowOrdering(t *testing.T) {
	r := NewRow()
	r.Set("id", Int(1))
	r.Set("name", String("Alice"))
	r.Set("score", Float(9.5))

	require.Equal(t, []string{"id", "name", "score"}, r.Columns())
	require.Equal(t, 3, r.Len())

	got, ok := r.Get("name")
	require.True(t, ok)
	require.Equal(t, String("Alice"), got)

	_, ok = r.Get("missing")
	require.False(t, ok)
}

func TestRowDuplicateColumn(t *testing.T) {
	// Duplicate names keep the first-seen position and the last-seen value.
	r := NewRow()
	r.Set("a", Int(1))
	r.Set("b", Int(2))
	r.Set("a", Int(3))

	require.Equal(t, []string{"a", "b"}, r.Columns())

	got, ok := r.Get("a")
	require.True(t, ok)
	require.Equal(t, Int(3), got)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	require.Equal(t, `{"a":3,"b":2}`, string(data))
}

func TestRowMarshalPreservesOrder(t *testing.T) {
	r := NewRow()
	r.Set("zebra", Int(1))
	r.Set("apple", Int(2))

	data, err := json.Marshal(r)
	require.NoError(t, err)
	require.Equal(t, `{"zebra":1,"apple":2}`, string(data))
}

func TestRowUnmarshalRoundTrip(t *testing.T) {
	src := `{"id":1,"name":"Alice","ratio":0.5,"ok":true,"gone":null}`

	var r Row
	require.NoError(t, json.Unmarshal([]byte(src), &r))
	require.Equal(t, []string{"id", "name", "ratio", "ok", "gone"}, r.Columns())

	data, err := json.Marshal(&r)
	require.NoError(t, err)
	require.Equal(t, src, string(data))
}
