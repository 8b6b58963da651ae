package ivscope

import "sort"

// Scope is an unordered collection of variables with an occurrence count
// per variable (spec §3). Scopes support union, intersection,
// containment, iteration in id order, and an index map from a contained
// variable's id to a compact 0..n-1 position. A Scope is mutable (Insert/
// Remove) to match realpaver's Scope, which insertion-accumulates
// occurrence counts as a term's free variables are collected; use Clone
// before mutating a Scope you don't own.
type Scope struct {
	vars   map[int]Variable
	counts map[int]int
	order  []int // sorted variable ids, kept in sync on every mutation
}

// NewScope builds a scope containing each of vars once.
func NewScope(vars ...Variable) *Scope {
	s := &Scope{vars: map[int]Variable{}, counts: map[int]int{}}
	for _, v := range vars {
		s.InsertVar(v)
	}
	return s
}

// InsertVar adds v to the scope, incrementing its occurrence count.
func (s *Scope) InsertVar(v Variable) {
	s.vars[v.id] = v
	if s.counts[v.id] == 0 {
		s.order = insertSorted(s.order, v.id)
	}
	s.counts[v.id]++
}

// Insert merges other's variables and occurrence counts into s.
func (s *Scope) Insert(other *Scope) {
	if other == nil {
		return
	}
	for _, id := range other.order {
		v := other.vars[id]
		s.vars[id] = v
		if s.counts[id] == 0 {
			s.order = insertSorted(s.order, id)
		}
		s.counts[id] += other.counts[id]
	}
}

// Remove decrements other's variables' occurrence counts in s, dropping
// any that reach zero.
func (s *Scope) Remove(other *Scope) {
	if other == nil {
		return
	}
	for _, id := range other.order {
		c, ok := s.counts[id]
		if !ok {
			continue
		}
		c -= other.counts[id]
		if c <= 0 {
			delete(s.counts, id)
			delete(s.vars, id)
			s.order = removeSorted(s.order, id)
		} else {
			s.counts[id] = c
		}
	}
}

func insertSorted(order []int, id int) []int {
	i := sort.SearchInts(order, id)
	order = append(order, 0)
	copy(order[i+1:], order[i:])
	order[i] = id
	return order
}

func removeSorted(order []int, id int) []int {
	i := sort.SearchInts(order, id)
	if i < len(order) && order[i] == id {
		order = append(order[:i], order[i+1:]...)
	}
	return order
}

// Clone returns an independent deep copy of s.
func (s *Scope) Clone() *Scope {
	c := &Scope{
		vars:   make(map[int]Variable, len(s.vars)),
		counts: make(map[int]int, len(s.counts)),
		order:  append([]int(nil), s.order...),
	}
	for k, v := range s.vars {
		c.vars[k] = v
	}
	for k, v := range s.counts {
		c.counts[k] = v
	}
	return c
}

// Size returns the number of distinct variables in the scope.
func (s *Scope) Size() int { return len(s.order) }

// IsEmpty reports whether the scope has no variables.
func (s *Scope) IsEmpty() bool { return len(s.order) == 0 }

// Contains reports whether v (by id) is in the scope.
func (s *Scope) Contains(v Variable) bool { return s.ContainsID(v.id) }

// ContainsID reports whether a variable with the given id is in the scope.
func (s *Scope) ContainsID(id int) bool { _, ok := s.vars[id]; return ok }

// Count returns how many times v occurs (0 if absent).
func (s *Scope) Count(v Variable) int { return s.counts[v.id] }

// Variables returns the scope's variables in ascending id order.
func (s *Scope) Variables() []Variable {
	out := make([]Variable, len(s.order))
	for i, id := range s.order {
		out[i] = s.vars[id]
	}
	return out
}

// IndexOf returns the compact 0..n-1 position of the variable with the
// given id within this scope's id-sorted order, per spec §3's "index
// map that returns a compact 0..n-1 position for each contained variable".
func (s *Scope) IndexOf(id int) (int, bool) {
	i := sort.SearchInts(s.order, id)
	if i < len(s.order) && s.order[i] == id {
		return i, true
	}
	return -1, false
}

// Union returns a new scope containing the variables (and summed counts)
// of both s and other.
func (s *Scope) Union(other *Scope) *Scope {
	u := s.Clone()
	u.Insert(other)
	return u
}

// Intersection returns a new scope containing only variables present in
// both s and other, with count equal to the minimum of the two.
func (s *Scope) Intersection(other *Scope) *Scope {
	r := &Scope{vars: map[int]Variable{}, counts: map[int]int{}}
	for _, id := range s.order {
		if c, ok := other.counts[id]; ok {
			min := c
			if s.counts[id] < min {
				min = s.counts[id]
			}
			r.vars[id] = s.vars[id]
			r.counts[id] = min
			r.order = insertSorted(r.order, id)
		}
	}
	return r
}

// Equal reports whether s and other contain the same variables with the
// same occurrence counts — the equality the ScopeBank interns on.
func (s *Scope) Equal(other *Scope) bool {
	if other == nil || len(s.order) != len(other.order) {
		return false
	}
	for i, id := range s.order {
		if other.order[i] != id || s.counts[id] != other.counts[id] {
			return false
		}
	}
	return true
}

// key returns a canonical string encoding used by ScopeBank to dedupe
// structurally-equal scopes.
func (s *Scope) key() string {
	b := make([]byte, 0, len(s.order)*8)
	for _, id := range s.order {
		b = appendVarint(b, id)
		b = append(b, ':')
		b = appendVarint(b, s.counts[id])
		b = append(b, ',')
	}
	return string(b)
}

func appendVarint(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	if n < 0 {
		b = append(b, '-')
		n = -n
	}
	start := len(b)
	for n > 0 {
		b = append(b, byte('0'+n%10))
		n /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
