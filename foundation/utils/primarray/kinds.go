// File: kinds.go
// Title: Element Kinds
// Description: Declares the eight supported primitive element kinds, the type
//              constraints the generic layer is written against, and the
//              16-bit Char code unit type.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package primarray

import (
	"strings"
	"unicode/utf16"

	"golang.org/x/exp/constraints"
)

// Char is a UTF-16 code unit, the character kind of this package.
type Char uint16

// String renders the code unit as a string. Lone surrogates render as U+FFFD.
func (c Char) String() string {
	return string(utf16.Decode([]uint16{uint16(c)}))
}

// Element is the closed set of supported primitive element types.
type Element interface {
	int8 | int16 | int32 | int64 | float32 | float64 | bool | Char
}

// Ordered is the subset of Element kinds with a total order. Boolean is
// deliberately absent.
type Ordered interface {
	int8 | int16 | int32 | int64 | float32 | float64 | Char
}

// Number is the numeric result type accepted by SumOf.
type Number interface {
	constraints.Integer | constraints.Float
}

// Kind identifies the element kind of an array.
type Kind int

const (
	KindByte Kind = iota
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindBoolean
	KindChar
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindByte:
		return "Byte"
	case KindShort:
		return "Short"
	case KindInt:
		return "Int"
	case KindLong:
		return "Long"
	case KindFloat:
		return "Float"
	case KindDouble:
		return "Double"
	case KindBoolean:
		return "Boolean"
	case KindChar:
		return "Char"
	default:
		return "Unknown"
	}
}

// Bits returns the width of one element in bits
func (k Kind) Bits() int {
	switch k {
	case KindByte, KindBoolean:
		return 8
	case KindShort, KindChar:
		return 16
	case KindInt, KindFloat:
		return 32
	case KindLong, KindDouble:
		return 64
	default:
		return 0
	}
}

// Sortable reports whether arrays of this kind support Sort.
func (k Kind) Sortable() bool {
	return k != KindBoolean
}

// AllKinds returns the eight kinds in declaration order
func AllKinds() []Kind {
	return []Kind{KindByte, KindShort, KindInt, KindLong, KindFloat, KindDouble, KindBoolean, KindChar}
}

// ParseKind resolves a kind by case-insensitive name ("int", "Double", ...).
func ParseKind(name string) (Kind, bool) {
	for _, k := range AllKinds() {
		if strings.EqualFold(k.String(), strings.TrimSpace(name)) {
			return k, true
		}
	}
	return 0, false
}

// KindOf returns the kind of element type T
func KindOf[T Element]() Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return KindByte
	case int16:
		return KindShort
	case int32:
		return KindInt
	case int64:
		return KindLong
	case float32:
		return KindFloat
	case float64:
		return KindDouble
	case bool:
		return KindBoolean
	default:
		return KindChar
	}
}
