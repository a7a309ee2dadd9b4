package types

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/goccy/go-yaml"
)

// Kind tells which variant a Value holds.
type Kind int

const (
	KindSingle   Kind = iota // one string
	KindMultiple             // an ordered list of strings
)

// Value is the content stored under a label: either a single string or,
// once more than one value accumulated under the same label, a list.
type Value struct {
	kind  Kind
	items []string
}

// Single returns a Value holding s.
func Single(s string) Value {
	return Value{kind: KindSingle, items: []string{s}}
}

// Multiple returns a Value holding items in order.
func Multiple(items ...string) Value {
	return Value{kind: KindMultiple, items: append([]string(nil), items...)}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsMultiple reports whether v holds a list.
func (v Value) IsMultiple() bool {
	return v.kind == KindMultiple
}

// Values returns the strings held by v. A single value yields one element.
func (v Value) Values() []string {
	return append([]string(nil), v.items...)
}

// String returns the single string, or the list joined with ", ".
func (v Value) String() string {
	return strings.Join(v.items, ", ")
}

// Append returns v with s added: a single value is promoted to a two
// element list, a list grows by one.
func (v Value) Append(s string) Value {
	return Multiple(append(v.Values(), s)...)
}

// Equal reports whether v and o hold the same variant and strings.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind || len(v.items) != len(o.items) {
		return false
	}
	for i := range v.items {
		if v.items[i] != o.items[i] {
			return false
		}
	}
	return true
}

// Interface returns v as a string or a []string.
func (v Value) Interface() interface{} {
	if v.kind == KindMultiple {
		return v.Values()
	}
	if len(v.items) == 0 {
		return ""
	}
	return v.items[0]
}

// MarshalJSON encodes a single value as a string and a list as an array.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// MarshalYAML encodes a single value as a scalar and a list as a sequence.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.Interface(), nil
}

// Record maps labels to values and remembers the order labels were first seen.
type Record struct {
	labels []string
	fields map[string]Value
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{fields: make(map[string]Value)}
}

// Len returns the number of labels.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.labels)
}

// Labels returns the labels in insertion order.
func (r *Record) Labels() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.labels...)
}

// Get returns the value stored under label.
func (r *Record) Get(label string) (Value, bool) {
	if r == nil {
		return Value{}, false
	}
	v, ok := r.fields[label]
	return v, ok
}

// Has reports whether label is present.
func (r *Record) Has(label string) bool {
	_, ok := r.Get(label)
	return ok
}

// Set stores v under label. An existing label keeps its position.
func (r *Record) Set(label string, v Value) {
	if r.fields == nil {
		r.fields = make(map[string]Value)
	}
	if _, ok := r.fields[label]; !ok {
		r.labels = append(r.labels, label)
	}
	r.fields[label] = v
}

// Add accumulates s under label: stored directly for a new label, appended
// otherwise (see Value.Append).
func (r *Record) Add(label, s string) {
	if v, ok := r.fields[label]; ok {
		r.fields[label] = v.Append(s)
		return
	}
	r.Set(label, Single(s))
}

// Delete removes label.
func (r *Record) Delete(label string) {
	if _, ok := r.fields[label]; !ok {
		return
	}
	delete(r.fields, label)
	for i, l := range r.labels {
		if l == label {
			r.labels = append(r.labels[:i], r.labels[i+1:]...)
			break
		}
	}
}

// Map returns the fields as a plain map.
func (r *Record) Map() map[string]Value {
	out := make(map[string]Value, r.Len())
	for _, label := range r.Labels() {
		out[label] = r.fields[label]
	}
	return out
}

// Plain returns the fields as a map of string or []string values.
func (r *Record) Plain() map[string]interface{} {
	out := make(map[string]interface{}, r.Len())
	for _, label := range r.Labels() {
		out[label] = r.fields[label].Interface()
	}
	return out
}

// MarshalJSON encodes the record as an object with keys in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range r.Labels() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.fields[label])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the record as a mapping with keys in insertion order.
func (r *Record) MarshalYAML() (interface{}, error) {
	out := make(yaml.MapSlice, 0, r.Len())
	for _, label := range r.Labels() {
		out = append(out, yaml.MapItem{Key: label, Value: r.fields[label].Interface()})
	}
	return out, nil
}
