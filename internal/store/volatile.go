// internal/store/volatile.go
package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"
)

// VolatileStore keeps every kind as an ordered in-memory table. It exists
// for the demo fallback when the durable backend is unreachable at startup:
// record shapes and id semantics are identical to the durable store, but
// nothing survives a restart. Each operation runs under one lock, so a
// single Find/Insert/Update/Delete is atomic; multi-call sequences are not.
type VolatileStore struct {
	mu     sync.RWMutex
	tables map[Kind][]interface{}
}

// NewVolatileStore creates an empty volatile store.
func NewVolatileStore() *VolatileStore {
	return &VolatileStore{tables: make(map[Kind][]interface{})}
}

func (s *VolatileStore) Mode() Mode {
	return Volatile
}

func (s *VolatileStore) Find(ctx context.Context, kind Kind, filter Filter, opts *FindOptions, out interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []interface{}
	for _, doc := range s.tables[kind] {
		if matchesFilter(doc, filter) {
			matches = append(matches, doc)
		}
	}

	if opts != nil && opts.SortBy != "" {
		sortDocs(matches, opts.SortBy, opts.Desc)
	}

	slice := reflect.ValueOf(out).Elem()
	result := reflect.MakeSlice(slice.Type(), 0, len(matches))
	for _, doc := range matches {
		result = reflect.Append(result, cloneValue(reflect.ValueOf(doc)))
	}
	slice.Set(result)
	return nil
}

func (s *VolatileStore) FindOne(ctx context.Context, kind Kind, filter Filter, out interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.tables[kind] {
		if matchesFilter(doc, filter) {
			reflect.ValueOf(out).Elem().Set(cloneValue(reflect.ValueOf(doc)))
			return nil
		}
	}
	return ErrNotFound
}

func (s *VolatileStore) Insert(ctx context.Context, kind Kind, doc interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Deep-copied on the way in and out, so neither the caller's copy nor a
	// record handed back by Find/FindOne can alias table state. A decoded
	// durable document is isolated the same way.
	v := reflect.Indirect(reflect.ValueOf(doc))
	s.tables[kind] = append(s.tables[kind], cloneValue(v).Interface())
	return nil
}

func (s *VolatileStore) Update(ctx context.Context, kind Kind, filter Filter, set Filter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched int64
	table := s.tables[kind]
	for i, doc := range table {
		if !matchesFilter(doc, filter) {
			continue
		}
		patched, err := patchDoc(doc, set)
		if err != nil {
			return matched, err
		}
		// Set values may be caller-owned slices or maps; detach them.
		table[i] = cloneValue(reflect.ValueOf(patched)).Interface()
		matched++
	}
	return matched, nil
}

func (s *VolatileStore) Delete(ctx context.Context, kind Kind, filter Filter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	table := s.tables[kind]
	kept := table[:0]
	for _, doc := range table {
		if matchesFilter(doc, filter) {
			removed++
			continue
		}
		kept = append(kept, doc)
	}
	s.tables[kind] = kept
	return removed, nil
}

func (s *VolatileStore) Count(ctx context.Context, kind Kind) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.tables[kind])), nil
}

func (s *VolatileStore) MaxID(ctx context.Context, kind Kind) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var max int64
	for _, doc := range s.tables[kind] {
		if v, ok := fieldByTag(doc, "id"); ok {
			if id, ok := asInt64(v); ok && id > max {
				max = id
			}
		}
	}
	return max, nil
}

// cloneValue deep-copies slice, map, pointer and interface state so a value
// crossing the store boundary never shares mutable memory with the table.
// Structs are copied whole first (keeping unexported state such as
// time.Time's) before their settable reference fields are detached.
func cloneValue(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return v
		}
		c := reflect.New(v.Type().Elem())
		c.Elem().Set(cloneValue(v.Elem()))
		return c
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		c := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			c.Index(i).Set(cloneValue(v.Index(i)))
		}
		return c
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		c := reflect.MakeMap(v.Type())
		for _, k := range v.MapKeys() {
			c.SetMapIndex(k, cloneValue(v.MapIndex(k)))
		}
		return c
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		return cloneValue(v.Elem())
	case reflect.Struct:
		c := reflect.New(v.Type()).Elem()
		c.Set(v)
		for i := 0; i < c.NumField(); i++ {
			f := c.Field(i)
			switch f.Kind() {
			case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
				if f.CanSet() {
					f.Set(cloneValue(f))
				}
			}
		}
		return c
	default:
		return v
	}
}

// fieldByTag resolves a struct field by the first segment of its bson tag,
// falling back to the lowercased field name, mirroring how the durable
// backend addresses fields.
func fieldByTag(doc interface{}, name string) (interface{}, bool) {
	v := reflect.Indirect(reflect.ValueOf(doc))
	if v.Kind() != reflect.Struct {
		return nil, false
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if bsonFieldName(t.Field(i)) == name {
			return v.Field(i).Interface(), true
		}
	}
	return nil, false
}

func bsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("bson")
	if tag == "-" {
		// Excluded from the durable backend, so not addressable here either.
		return ""
	}
	if tag == "" {
		return strings.ToLower(f.Name)
	}
	name := strings.Split(tag, ",")[0]
	if name == "" {
		return strings.ToLower(f.Name)
	}
	return name
}

func matchesFilter(doc interface{}, filter Filter) bool {
	for name, want := range filter {
		got, ok := fieldByTag(doc, name)
		if !ok || !looselyEqual(got, want) {
			return false
		}
	}
	return true
}

// looselyEqual compares field and filter values across integer widths, the
// way bson equality does.
func looselyEqual(a, b interface{}) bool {
	if ai, ok := asInt64(a); ok {
		if bi, ok := asInt64(b); ok {
			return ai == bi
		}
	}
	if af, ok := asFloat64(a); ok {
		if bf, ok := asFloat64(b); ok {
			return af == bf
		}
	}
	return reflect.DeepEqual(a, b)
}

func asInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	}
	return 0, false
}

func asFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	if i, ok := asInt64(v); ok {
		return float64(i), true
	}
	return 0, false
}

// patchDoc returns a copy of doc with the set fields replaced in place,
// matching the durable backend's $set semantics.
func patchDoc(doc interface{}, set Filter) (interface{}, error) {
	orig := reflect.Indirect(reflect.ValueOf(doc))
	copied := reflect.New(orig.Type()).Elem()
	copied.Set(orig)

	t := copied.Type()
	for name, value := range set {
		found := false
		for i := 0; i < t.NumField(); i++ {
			if bsonFieldName(t.Field(i)) != name {
				continue
			}
			field := copied.Field(i)
			rv := reflect.ValueOf(value)
			if !rv.Type().ConvertibleTo(field.Type()) {
				return nil, fmt.Errorf("cannot set field %q: %s is not %s", name, rv.Type(), field.Type())
			}
			field.Set(rv.Convert(field.Type()))
			found = true
			break
		}
		if !found {
			return nil, fmt.Errorf("cannot set unknown field %q on %s", name, t)
		}
	}
	return copied.Interface(), nil
}

func sortDocs(docs []interface{}, field string, desc bool) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, _ := fieldByTag(docs[i], field)
		b, _ := fieldByTag(docs[j], field)
		less := lessValue(a, b)
		if desc {
			return lessValue(b, a)
		}
		return less
	})
}

func lessValue(a, b interface{}) bool {
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Before(bt)
		}
	}
	if ai, ok := asInt64(a); ok {
		if bi, ok := asInt64(b); ok {
			return ai < bi
		}
	}
	if af, ok := asFloat64(a); ok {
		if bf, ok := asFloat64(b); ok {
			return af < bf
		}
	}
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return as < bs
		}
	}
	return false
}
