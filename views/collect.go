package views

import "strings"

// Appender is a container a finite view can be drained into. The list
// containers of this module satisfy it, as does any type with a variadic
// Add.
type Appender[T any] interface {
	Add(values ...T)
}

// Collect drains a finite view into a fresh slice. A boundary violation of
// a strict view is returned alongside whatever was collected before it.
func Collect[T any](s Seq[T]) ([]T, error) {
	var out []T
	if n, ok := Size(s); ok {
		out = make([]T, 0, n)
	}
	cur := s.Cursor()
	for cur.Next() {
		out = append(out, cur.Value())
	}
	return out, cur.Err()
}

// String drains a finite char view into a string. Byte elements are
// written raw; rune elements are UTF-8 encoded.
func String[T Char](s Seq[T]) (string, error) {
	// unsigned wraparound distinguishes byte-backed element types from runes
	var zero T
	byteWide := zero-1 > 0

	var sb strings.Builder
	cur := s.Cursor()
	for cur.Next() {
		if byteWide {
			sb.WriteByte(byte(cur.Value()))
		} else {
			sb.WriteRune(rune(cur.Value()))
		}
	}
	return sb.String(), cur.Err()
}

// Into drains a finite view into dst, one Add call per element.
func Into[T any](s Seq[T], dst Appender[T]) error {
	cur := s.Cursor()
	for cur.Next() {
		dst.Add(cur.Value())
	}
	return cur.Err()
}
