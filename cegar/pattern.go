package cegar

import "sort"

// Pattern is a sorted, duplicate-free sequence of variable ids. It is the
// identity of a projection: two projections are the same iff their
// patterns contain the same variables.
type Pattern []Variable

// NewPattern returns vars sorted ascending with duplicates removed.
func NewPattern(vars ...Variable) Pattern {
	p := make(Pattern, len(vars))
	copy(p, vars)
	sort.Slice(p, func(i, j int) bool { return p[i] < p[j] })

	out := p[:0]
	haveLast := false
	var last Variable
	for _, v := range p {
		if haveLast && v == last {
			continue
		}
		out = append(out, v)
		last, haveLast = v, true
	}
	return out
}

// MergePatterns returns the sorted union of a and b.
func MergePatterns(a, b Pattern) Pattern {
	combined := make(Pattern, 0, len(a)+len(b))
	combined = append(combined, a...)
	combined = append(combined, b...)
	return NewPattern(combined...)
}

// ExtendPattern returns p with v added, sorted.
func ExtendPattern(p Pattern, v Variable) Pattern {
	combined := make(Pattern, 0, len(p)+1)
	combined = append(combined, p...)
	combined = append(combined, v)
	return NewPattern(combined...)
}

// Contains reports whether v is one of p's variables.
func (p Pattern) Contains(v Variable) bool {
	for _, pv := range p {
		if pv == v {
			return true
		}
	}
	return false
}
