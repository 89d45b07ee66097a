package frame

import (
	"fmt"
	"math"
	"strconv"
)

// Kind is the semantic type of a cell or of a whole column.
type Kind uint8

const (
	Null Kind = iota
	Number
	Text
	Bool
	// Mixed is only ever a column kind: the column holds cells of more
	// than one non-null kind.
	Mixed
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Number:
		return "number"
	case Text:
		return "text"
	case Bool:
		return "bool"
	case Mixed:
		return "mixed"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is a single cell: a number, a string, a boolean or the null marker.
// The zero Value is the null marker. Values are comparable and may be used
// as map keys.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
}

// NA returns the null marker.
func NA() Value { return Value{} }

// Num returns a numeric value. NaN is stored as the null marker and
// negative zero as zero, so equal numbers always share one key.
func Num(f float64) Value {
	if math.IsNaN(f) {
		return Value{}
	}
	if f == 0 {
		f = 0
	}
	return Value{kind: Number, num: f}
}

// Str returns a text value.
func Str(s string) Value { return Value{kind: Text, str: s} }

// Boolean returns a boolean value.
func Boolean(b bool) Value { return Value{kind: Bool, b: b} }

// ValueOf converts a plain Go value. nil and NaN become the null marker,
// every integer and float type becomes a Number.
func ValueOf(x interface{}) Value {
	switch v := x.(type) {
	case nil:
		return Value{}
	case Value:
		return v
	case float64:
		return Num(v)
	case float32:
		return Num(float64(v))
	case int:
		return Num(float64(v))
	case int8:
		return Num(float64(v))
	case int16:
		return Num(float64(v))
	case int32:
		return Num(float64(v))
	case int64:
		return Num(float64(v))
	case uint:
		return Num(float64(v))
	case uint8:
		return Num(float64(v))
	case uint16:
		return Num(float64(v))
	case uint32:
		return Num(float64(v))
	case uint64:
		return Num(float64(v))
	case string:
		return Str(v)
	case bool:
		return Boolean(v)
	case *string:
		if v == nil {
			return Value{}
		}
		return Str(*v)
	case *float64:
		if v == nil {
			return Value{}
		}
		return Num(*v)
	case fmt.Stringer:
		return Str(v.String())
	}
	return Str(fmt.Sprint(x))
}

func valuesOf(xs []interface{}) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		out[i] = ValueOf(x)
	}
	return out
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == Null }

// Float returns the numeric value. Booleans count as 1 and 0; text and
// null report false.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case Number:
		return v.num, true
	case Bool:
		if v.b {
			return 1, true
		}
		return 0, true
	}
	return math.NaN(), false
}

func (v Value) Text() (string, bool) {
	if v.kind != Text {
		return "", false
	}
	return v.str, true
}

func (v Value) Bool() (bool, bool) {
	if v.kind != Bool {
		return false, false
	}
	return v.b, true
}

// Truthy reports whether v is the boolean true.
func (v Value) Truthy() bool { return v.kind == Bool && v.b }

// Interface returns nil, a float64, a string or a bool.
func (v Value) Interface() interface{} {
	switch v.kind {
	case Number:
		return v.num
	case Text:
		return v.str
	case Bool:
		return v.b
	}
	return nil
}

func (v Value) String() string {
	switch v.kind {
	case Number:
		return formatFloat(v.num)
	case Text:
		return v.str
	case Bool:
		return strconv.FormatBool(v.b)
	}
	return "NaN"
}

func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.Abs(f) >= 1e21 || (f != 0 && math.Abs(f) < 1e-6) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Equal compares two values the way element-wise == does: a null marker is
// never equal to anything, itself included.
func (v Value) Equal(o Value) bool {
	if v.kind == Null || o.kind == Null {
		return false
	}
	return v == o
}

// Same is structural identity. Two null markers are the same.
func (v Value) Same(o Value) bool { return v == o }

// kindRank orders kinds for sorting; nulls sort last.
func kindRank(k Kind) int {
	switch k {
	case Bool:
		return 0
	case Number:
		return 1
	case Text:
		return 2
	}
	return 3
}

// Compare is a total order over values: booleans, then numbers, then text,
// then nulls.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		ra, rb := kindRank(a.kind), kindRank(b.kind)
		if ra < rb {
			return -1
		}
		return 1
	}
	switch a.kind {
	case Number:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
	case Text:
		switch {
		case a.str < b.str:
			return -1
		case a.str > b.str:
			return 1
		}
	case Bool:
		if a.b != b.b {
			if !a.b {
				return -1
			}
			return 1
		}
	}
	return 0
}

func mergeKind(a, b Kind) Kind {
	switch {
	case b == Null:
		return a
	case a == Null:
		return b
	case a == b:
		return a
	}
	return Mixed
}

func inferKind(vs []Value) Kind {
	k := Null
	for _, v := range vs {
		k = mergeKind(k, v.kind)
		if k == Mixed {
			return k
		}
	}
	return k
}
