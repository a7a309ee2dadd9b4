package types

import (
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAppendPromotes(t *testing.T) {
	v := Single("Tros")
	assert.False(t, v.IsMultiple())
	assert.Equal(t, []string{"Tros"}, v.Values())

	v = v.Append("Tros II")
	assert.True(t, v.IsMultiple())
	assert.Equal(t, KindMultiple, v.Kind())
	assert.Equal(t, []string{"Tros", "Tros II"}, v.Values())

	v = v.Append("Tros III")
	assert.Equal(t, []string{"Tros", "Tros II", "Tros III"}, v.Values())
	assert.Equal(t, "Tros, Tros II, Tros III", v.String())
}

func TestValueAppendDoesNotAlias(t *testing.T) {
	base := Multiple("a", "b")
	left := base.Append("c")
	right := base.Append("d")
	assert.Equal(t, []string{"a", "b"}, base.Values())
	assert.Equal(t, []string{"a", "b", "c"}, left.Values())
	assert.Equal(t, []string{"a", "b", "d"}, right.Values())
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Single("x").Equal(Single("x")))
	assert.False(t, Single("x").Equal(Multiple("x")))
	assert.False(t, Multiple("x", "y").Equal(Multiple("y", "x")))
}

func TestRecordAddAndOrder(t *testing.T) {
	r := NewRecord()
	r.Add("Author", "Talbot Mundy")
	r.Add("Country", "United States")
	r.Add("Author", "Someone Else")

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"Author", "Country"}, r.Labels())

	v, ok := r.Get("Author")
	require.True(t, ok)
	assert.Equal(t, []string{"Talbot Mundy", "Someone Else"}, v.Values())
	assert.Equal(t, map[string]interface{}{
		"Author":  []string{"Talbot Mundy", "Someone Else"},
		"Country": "United States",
	}, r.Plain())
}

func TestRecordSetKeepsPosition(t *testing.T) {
	r := NewRecord()
	r.Set("a", Single("1"))
	r.Set("b", Single("2"))
	r.Set("a", Single("3"))

	assert.Equal(t, []string{"a", "b"}, r.Labels())
	v, _ := r.Get("a")
	assert.Equal(t, "3", v.String())
}

func TestRecordDelete(t *testing.T) {
	r := NewRecord()
	r.Set("", Single("dropped"))
	r.Set("kept", Single("x"))
	r.Delete("")
	r.Delete("missing")

	assert.False(t, r.Has(""))
	assert.Equal(t, []string{"kept"}, r.Labels())
	assert.Len(t, r.Map(), 1)
}

func TestRecordZeroValue(t *testing.T) {
	var r Record
	r.Add("k", "v")
	assert.True(t, r.Has("k"))

	var nilRecord *Record
	assert.Equal(t, 0, nilRecord.Len())
	assert.Nil(t, nilRecord.Labels())
	assert.False(t, nilRecord.Has("k"))
}

func TestRecordMarshalJSON(t *testing.T) {
	r := NewRecord()
	r.Add("Pages", "367")
	r.Add("Genre", "Fantasy novel")
	r.Add("Genre", "Adventure")

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"Pages":"367","Genre":["Fantasy novel","Adventure"]}`, string(out))

	empty, err := json.Marshal(NewRecord())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(empty))
}

func TestRecordMarshalYAML(t *testing.T) {
	r := NewRecord()
	r.Add("Pages", "367")
	r.Add("Genre", "Fantasy novel")
	r.Add("Genre", "Adventure")

	out, err := yaml.Marshal(r)
	require.NoError(t, err)

	var back yaml.MapSlice
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.Len(t, back, 2)
	assert.Equal(t, "Pages", back[0].Key)
	assert.Equal(t, "Genre", back[1].Key)
}
