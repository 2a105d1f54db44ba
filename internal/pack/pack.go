// Package pack implements the call-site unpacking containers of spec.md
// §3.4/§4.6: a lazy positional pack (produced by a unary dereference of an
// iterable with known size) and a lazy keyword pack (produced by a double
// dereference of a string-keyed mapping). Both are one-shot, runtime-only
// views over the caller's own containers — they must not outlive the call
// that created them (spec.md §5).
package pack

import (
	"fmt"
	"reflect"
)

// Positional wraps an iterable of known size behind a one-shot cursor.
type Positional struct {
	values []reflect.Value
	cursor int
}

// NewPositional builds a Positional pack from a slice or array value
// (reflect.Value of Kind Slice or Array), the "iterable with known size" of
// spec.md §4.6.
func NewPositional(v reflect.Value) (*Positional, error) {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		values := make([]reflect.Value, v.Len())
		for i := range values {
			values[i] = v.Index(i)
		}
		return &Positional{values: values}, nil
	default:
		return nil, fmt.Errorf("pack: *%s is not an iterable of known size", v.Kind())
	}
}

// Len returns the number of values remaining (consumed ones excluded).
func (p *Positional) Len() int {
	if p == nil {
		return 0
	}
	return len(p.values) - p.cursor
}

// HasNext reports whether the cursor has not yet reached the end.
func (p *Positional) HasNext() bool { return p.Len() > 0 }

// Next advances the cursor and returns the next value. Panics if exhausted;
// callers must check HasNext first (mirrors spec.md's one-shot contract).
func (p *Positional) Next() reflect.Value {
	v := p.values[p.cursor]
	p.cursor++
	return v
}

// Remaining returns every value left in the pack, in order, and advances the
// cursor to the end — used when a *args target drains the pack in one step.
func (p *Positional) Remaining() []reflect.Value {
	if p == nil {
		return nil
	}
	rest := p.values[p.cursor:]
	p.cursor = len(p.values)
	return rest
}

// Validate fails if the cursor has not reached the end: an unconsumed
// positional pack with no *args target to absorb it (spec.md §4.6, the
// "excess positional" failure of §4.8).
func (p *Positional) Validate() error {
	if p.HasNext() {
		leftover := p.values[p.cursor:]
		vals := make([]any, len(leftover))
		for i, v := range leftover {
			vals[i] = v.Interface()
		}
		return fmt.Errorf("too many positional arguments, remaining: %v", vals)
	}
	return nil
}

// Keyword wraps a string-keyed mapping behind destructive extraction.
type Keyword struct {
	entries map[string]reflect.Value
	order   []string // order in which entries were read from the source (Go map order for a map or Items() source)
}

// KeyValuer is implemented by any host type that can supply (key, value)
// pairs for double-dereference unpacking, per spec.md §4.6's fallback order:
// prefer Items(), then Keys()+Lookup(), then plain key iteration.
type KeyValuer interface {
	Items() map[string]any
}

// KeysLookuper is the second tier of spec.md §4.6's fallback: a host type
// that cannot hand over its whole mapping at once (Items()) but can name its
// keys and resolve one at a time.
type KeysLookuper interface {
	Keys() []string
	Lookup(key string) (any, bool)
}

// NewKeyword builds a Keyword pack from a map value (reflect.Value of Kind
// Map with string keys) or from anything implementing KeyValuer or
// KeysLookuper, tried in that order.
func NewKeyword(v reflect.Value) (*Keyword, error) {
	if kv, ok := v.Interface().(KeyValuer); ok {
		return newKeywordFromMap(kv.Items()), nil
	}
	if kl, ok := v.Interface().(KeysLookuper); ok {
		return newKeywordFromKeysLookuper(kl), nil
	}
	if v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("pack: **%s is not a string-keyed mapping", v.Kind())
	}
	kw := &Keyword{entries: make(map[string]reflect.Value, v.Len())}
	iter := v.MapRange()
	for iter.Next() {
		k := iter.Key().String()
		kw.entries[k] = iter.Value()
		kw.order = append(kw.order, k)
	}
	return kw, nil
}

func newKeywordFromMap(m map[string]any) *Keyword {
	kw := &Keyword{entries: make(map[string]reflect.Value, len(m))}
	for k, v := range m {
		kw.entries[k] = reflect.ValueOf(v)
		kw.order = append(kw.order, k)
	}
	return kw
}

func newKeywordFromKeysLookuper(kl KeysLookuper) *Keyword {
	keys := kl.Keys()
	kw := &Keyword{entries: make(map[string]reflect.Value, len(keys))}
	for _, k := range keys {
		v, ok := kl.Lookup(k)
		if !ok {
			continue
		}
		kw.entries[k] = reflect.ValueOf(v)
		kw.order = append(kw.order, k)
	}
	return kw
}

// Len returns the number of entries remaining.
func (k *Keyword) Len() int {
	if k == nil {
		return 0
	}
	return len(k.entries)
}

// Extract destructively removes and returns the entry for key, or a null
// result (spec.md §3.4).
func (k *Keyword) Extract(key string) (reflect.Value, bool) {
	if k == nil {
		return reflect.Value{}, false
	}
	v, ok := k.entries[key]
	if ok {
		delete(k.entries, key)
	}
	return v, ok
}

// Remaining returns (without consuming) every (key, value) pair left in the
// pack, in original insertion order — used when a **kwargs target drains
// the pack in one step.
func (k *Keyword) Remaining() []KeywordEntry {
	if k == nil {
		return nil
	}
	out := make([]KeywordEntry, 0, len(k.entries))
	for _, name := range k.order {
		if v, ok := k.entries[name]; ok {
			out = append(out, KeywordEntry{Name: name, Value: v})
		}
	}
	return out
}

// KeywordEntry is one (name, value) pair drained from a Keyword pack.
type KeywordEntry struct {
	Name  string
	Value reflect.Value
}

// Validate fails if any entries remain: an unconsumed keyword pack with no
// **kwargs target to absorb it (spec.md §4.6, the "excess keyword" failure
// of §4.8).
func (k *Keyword) Validate() error {
	if k.Len() > 0 {
		names := make([]string, 0, len(k.entries))
		for _, n := range k.order {
			if _, ok := k.entries[n]; ok {
				names = append(names, n)
			}
		}
		return fmt.Errorf("unconsumed keyword arguments: %v", names)
	}
	return nil
}
