package facts

import (
	"sort"
	"strconv"
	"strings"
)

// Fact is one drillable item within a topic, e.g. {"a": 7, "b": 8}.
// Field names are lower-case letters only.
type Fact map[string]int

// Names returns the fact's field names in lexical order.
func (f Fact) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Key returns the Card Key for the fact under topicID.
//
// The key is topicID followed by name=value pairs in lexical field order,
// joined with "_", so it does not depend on how the fact was constructed.
// Topic IDs never contain '=' and field names never contain '_', which makes
// the mapping from (topic, fact) to key injective.
func (f Fact) Key(topicID string) string {
	var b strings.Builder
	b.WriteString(topicID)
	for _, name := range f.Names() {
		b.WriteByte('_')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(f[name]))
	}
	return b.String()
}

// String renders the fact as "{a=7 b=8}".
func (f Fact) String() string {
	parts := make([]string, 0, len(f))
	for _, name := range f.Names() {
		parts = append(parts, name+"="+strconv.Itoa(f[name]))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Equal reports whether two facts have the same fields and values.
func (f Fact) Equal(other Fact) bool {
	if len(f) != len(other) {
		return false
	}
	for name, v := range f {
		ov, ok := other[name]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// Contains reports whether pool holds a fact equal to f.
func Contains(pool []Fact, f Fact) bool {
	for _, p := range pool {
		if p.Equal(f) {
			return true
		}
	}
	return false
}
