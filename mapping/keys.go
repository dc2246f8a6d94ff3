// Package mapping translates records between the API shape (camelCase
// keys) and the store shape (snake_case columns).
//
// Every entity has a named mapper that lists its fields explicitly. The
// generic key converters below are the escape hatch for documents whose
// shape is not known ahead of time, such as catalog details.
package mapping

import "strings"

// ToStoreKey converts a camelCase key to snake_case by putting an
// underscore before every uppercase ASCII letter and lowercasing it.
// Other characters pass through unchanged.
func ToStoreKey(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('_')
			b.WriteByte(c + ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// FromStoreKey is the inverse of ToStoreKey: every underscore followed by
// a lowercase ASCII letter becomes that letter uppercased.
func FromStoreKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '_' && i+1 < len(key) && key[i+1] >= 'a' && key[i+1] <= 'z' {
			b.WriteByte(key[i+1] - ('a' - 'A'))
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// GenericToStore renames every top-level key of obj with ToStoreKey.
// Values are not touched. A nil map yields nil.
func GenericToStore(obj map[string]interface{}) map[string]interface{} {
	return renameKeys(obj, ToStoreKey)
}

// GenericFromStore renames every top-level key of row with FromStoreKey.
func GenericFromStore(row map[string]interface{}) map[string]interface{} {
	return renameKeys(row, FromStoreKey)
}

// GenericToStoreList applies GenericToStore to each object in a list
func GenericToStoreList(objs []map[string]interface{}) []map[string]interface{} {
	return renameList(objs, ToStoreKey)
}

// GenericFromStoreList applies GenericFromStore to each row in a list
func GenericFromStoreList(rows []map[string]interface{}) []map[string]interface{} {
	return renameList(rows, FromStoreKey)
}

func renameKeys(in map[string]interface{}, rename func(string) string) map[string]interface{} {
	if in == nil {
		return nil
	}
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[rename(k)] = v
	}
	return out
}

func renameList(in []map[string]interface{}, rename func(string) string) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(in))
	for _, obj := range in {
		out = append(out, renameKeys(obj, rename))
	}
	return out
}
