package queryfilter

import (
	"strconv"
	"strings"
)

// Kind enumerates the filter value types supported by the query string
// contract.
type Kind string

const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "boolean"
	KindList   Kind = "array"
)

// Value is a tagged union holding one filter value. The zero Value is
// null, which all read paths treat as inactive.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	list []string
	set  bool
}

func Null() Value {
	return Value{}
}

func String(s string) Value {
	return Value{kind: KindString, str: s, set: true}
}

func Number(n float64) Value {
	return Value{kind: KindNumber, num: n, set: true}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, b: b, set: true}
}

func List(items ...string) Value {
	copied := make([]string, len(items))
	copy(copied, items)
	return Value{kind: KindList, list: copied, set: true}
}

func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether no value has been set at all.
func (v Value) IsNull() bool {
	return !v.set
}

// IsActive reports whether the value constrains anything. Null values,
// empty strings and empty lists are uniformly inactive.
func (v Value) IsActive() bool {
	if !v.set {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str != ""
	case KindList:
		return len(v.list) > 0
	default:
		return true
	}
}

func (v Value) Str() string {
	return v.str
}

func (v Value) Num() float64 {
	return v.num
}

func (v Value) Bool() bool {
	return v.b
}

// Items returns a copy of the list payload; mutating it does not affect
// the store.
func (v Value) Items() []string {
	out := make([]string, len(v.list))
	copy(out, v.list)
	return out
}

// Encode renders the value in its wire form: lists join with commas,
// booleans become "1"/"0", numbers use the shortest round-trip form.
func (v Value) Encode() string {
	switch v.kind {
	case KindList:
		return strings.Join(v.list, ",")
	case KindBool:
		if v.b {
			return "1"
		}
		return "0"
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return v.str
	}
}

// parseValue coerces a raw query string parameter into a typed Value
// according to the declared kind. Unparseable numbers yield null.
func parseValue(kind Kind, raw string) Value {
	switch kind {
	case KindList:
		return List(strings.Split(raw, ",")...)
	case KindBool:
		return Bool(raw == "1" || raw == "true")
	case KindNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Null()
		}
		return Number(n)
	default:
		return String(raw)
	}
}

// emptyFor returns the type-appropriate inactive value used when a key
// is cleared without a configured default.
func emptyFor(kind Kind) Value {
	if kind == KindList {
		return List()
	}
	return Null()
}
