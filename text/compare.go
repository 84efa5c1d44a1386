package text

import (
	"fmt"

	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/vstr"
)

// Comparator returns a comparator for sorted containers of
// github.com/emirpasic/gods, e.g.
//
//	set := treeset.NewWith(text.Comparator[byte, utf.UTF8]())
//
// Operands may be of type Str[E, P], *String[E, P], CStr[E, P] or Array[E, P].
// Other types make the comparator panic.
func Comparator[E vstr.Element, P vstr.Policy[E]]() utils.Comparator {
	return func(a, b interface{}) int {
		return asStr[E, P](a).Compare(asStr[E, P](b))
	}
}

// ScalarComparator is Comparator with scalar value ordering, see CompareScalars.
func ScalarComparator[E vstr.Element, P vstr.Policy[E]]() utils.Comparator {
	return func(a, b interface{}) int {
		return CompareScalars(asStr[E, P](a), asStr[E, P](b))
	}
}

func asStr[E vstr.Element, P vstr.Policy[E]](x interface{}) Str[E, P] {
	switch s := x.(type) {
	case Str[E, P]:
		return s
	case *String[E, P]:
		return s.Str()
	case CStr[E, P]:
		return s.AsStr()
	case Array[E, P]:
		return s.Str()
	}
	panic(fmt.Sprintf("text: cannot compare %T as %s string", x, policyName[E, P]()))
}

// CompareScalars compares a and b by scalar values, with the shorter one
// being less if it is a prefix of the longer one. This differs from
// Str.Compare only for UTF-16 strings containing scalars above U+FFFF.
// Policies without codec are compared by elements.
func CompareScalars[E vstr.Element, P vstr.Policy[E]](a, b Str[E, P]) int {
	dec := decoderOf[E, P]()
	if dec == nil {
		return a.Compare(b)
	}
	x, y := a.elems, b.elems
	for len(x) > 0 && len(y) > 0 {
		r, n, _ := dec.Decode(x)
		s, m, _ := dec.Decode(y)
		if r != s {
			if r < s {
				return -1
			}
			return 1
		}
		x, y = x[n:], y[m:]
	}
	switch {
	case len(x) > 0:
		return 1
	case len(y) > 0:
		return -1
	}
	return 0
}
