// File: zip.go
// Title: Zip and Join Operations
// Description: Pairwise combination of arrays and slices, and string joining
//              with separator, prefix, postfix, limit and truncation marker.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-14
// Modified: 2025-02-24
//
// Change History:
// - 2025-02-14 v0.1.0: Initial implementation
// - 2025-02-24 v0.1.0: Floats render with a fractional digit

package primarray

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Pair holds two values
type Pair[A, B any] struct {
	First  A
	Second B
}

// ===== Zip =====

// Zip pairs elements by index, stopping at the shorter input
func Zip[T, R Element](a PrimitiveArray[T], other PrimitiveArray[R]) []Pair[T, R] {
	return ZipSlice(a, other.Data())
}

func ZipWith[T, R Element, V any](a PrimitiveArray[T], other PrimitiveArray[R], transform func(T, R) V) []V {
	return ZipSliceWith(a, other.Data(), transform)
}

// ZipSlice pairs the elements of a with those of a plain slice
func ZipSlice[T Element, R any](a PrimitiveArray[T], other []R) []Pair[T, R] {
	return ZipSliceWith(a, other, func(x T, y R) Pair[T, R] { return Pair[T, R]{First: x, Second: y} })
}

func ZipSliceWith[T Element, R, V any](a PrimitiveArray[T], other []R, transform func(T, R) V) []V {
	data := a.Data()
	n := min(len(data), len(other))
	result := make([]V, n)
	for i := 0; i < n; i++ {
		result[i] = transform(data[i], other[i])
	}
	return result
}

// ===== Join =====

type joinConfig struct {
	separator string
	prefix    string
	postfix   string
	limit     int
	truncated string
}

// JoinOption customizes JoinTo and JoinToString
type JoinOption func(*joinConfig)

// WithSeparator sets the text between elements (default ", ")
func WithSeparator(separator string) JoinOption {
	return func(c *joinConfig) { c.separator = separator }
}

func WithPrefix(prefix string) JoinOption {
	return func(c *joinConfig) { c.prefix = prefix }
}

func WithPostfix(postfix string) JoinOption {
	return func(c *joinConfig) { c.postfix = postfix }
}

// WithLimit caps the number of rendered elements. Negative means no limit.
func WithLimit(limit int) JoinOption {
	return func(c *joinConfig) { c.limit = limit }
}

// WithTruncated sets the marker emitted when the limit cuts elements off (default "...")
func WithTruncated(truncated string) JoinOption {
	return func(c *joinConfig) { c.truncated = truncated }
}

func newJoinConfig(opts []JoinOption) joinConfig {
	c := joinConfig{separator: ", ", limit: -1, truncated: "..."}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// JoinToString renders the elements with their default formatting
func JoinToString[T Element](a PrimitiveArray[T], opts ...JoinOption) string {
	return JoinToStringFunc(a, nil, opts...)
}

// JoinToStringFunc renders the elements with transform. A nil transform uses
// the default formatting.
func JoinToStringFunc[T Element](a PrimitiveArray[T], transform func(T) string, opts ...JoinOption) string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = JoinTo(&sb, a, transform, opts...)
	return sb.String()
}

// JoinTo writes the joined elements to w
func JoinTo[T Element](w io.Writer, a PrimitiveArray[T], transform func(T) string, opts ...JoinOption) error {
	c := newJoinConfig(opts)
	if transform == nil {
		transform = FormatElement[T]
	}

	if _, err := io.WriteString(w, c.prefix); err != nil {
		return err
	}
	count := 0
	for _, v := range a.Data() {
		count++
		if count > 1 {
			if _, err := io.WriteString(w, c.separator); err != nil {
				return err
			}
		}
		if c.limit >= 0 && count > c.limit {
			break
		}
		if _, err := io.WriteString(w, transform(v)); err != nil {
			return err
		}
	}
	if c.limit >= 0 && count > c.limit {
		if _, err := io.WriteString(w, c.truncated); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, c.postfix)
	return err
}

// FormatElement renders one element the way String does
func FormatElement[T Element](v T) string {
	switch x := any(v).(type) {
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return formatFloat(float64(x), 32)
	case float64:
		return formatFloat(x, 64)
	case bool:
		return strconv.FormatBool(x)
	case Char:
		return x.String()
	default:
		return ""
	}
}

// formatFloat renders f with at least one fractional digit. Magnitudes in
// [1e-3, 1e7) use plain notation, others use "1.5E-5" scientific notation.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	if abs := math.Abs(f); abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, bitSize)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'E', -1, bitSize), "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	e, _ := strconv.Atoi(exp)
	return mantissa + "E" + strconv.Itoa(e)
}
