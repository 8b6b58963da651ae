package ivscope

import (
	"testing"

	"github.com/ivsolve/ivsolve/pkg/ivnum"
)

func mkVar(name string) Variable {
	return NewVariable(name, ivnum.New(0, 1), Continuous, Tolerance{Abs: 1e-8})
}

func TestScopeInsertAndCount(t *testing.T) {
	x, y := mkVar("x"), mkVar("y")
	s := NewScope(x, y, x)
	if s.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", s.Size())
	}
	if s.Count(x) != 2 {
		t.Errorf("Count(x) = %d, want 2", s.Count(x))
	}
	if s.Count(y) != 1 {
		t.Errorf("Count(y) = %d, want 1", s.Count(y))
	}
}

func TestScopeUnionIntersection(t *testing.T) {
	x, y, z := mkVar("x"), mkVar("y"), mkVar("z")
	a := NewScope(x, y)
	b := NewScope(y, z)

	u := a.Union(b)
	if u.Size() != 3 {
		t.Errorf("Union size = %d, want 3", u.Size())
	}
	if u.Count(y) != 2 {
		t.Errorf("Union count(y) = %d, want 2", u.Count(y))
	}

	i := a.Intersection(b)
	if i.Size() != 1 || !i.Contains(y) {
		t.Errorf("Intersection = %v variables, want just y", i.Variables())
	}
}

func TestScopeRemove(t *testing.T) {
	x, y := mkVar("x"), mkVar("y")
	s := NewScope(x, x, y)
	s.Remove(NewScope(x))
	if s.Count(x) != 1 {
		t.Errorf("after one Remove, count(x) = %d, want 1", s.Count(x))
	}
	s.Remove(NewScope(x))
	if s.Contains(x) {
		t.Errorf("x should be gone after removing all occurrences")
	}
	if !s.Contains(y) {
		t.Errorf("y should be untouched")
	}
}

func TestScopeIndexOfOrdersByID(t *testing.T) {
	vars := make([]Variable, 4)
	for i := range vars {
		vars[i] = mkVar("v")
	}
	s := NewScope(vars[2], vars[0], vars[3], vars[1])
	got := s.Variables()
	for i := 1; i < len(got); i++ {
		if got[i-1].ID() >= got[i].ID() {
			t.Fatalf("Variables() not sorted by id: %v", got)
		}
	}
	for pos, v := range got {
		idx, ok := s.IndexOf(v.ID())
		if !ok || idx != pos {
			t.Errorf("IndexOf(%d) = (%d,%v), want (%d,true)", v.ID(), idx, ok, pos)
		}
	}
}

func TestScopeEqualAndBankInterning(t *testing.T) {
	x, y := mkVar("x"), mkVar("y")
	a := NewScope(x, y)
	b := NewScope(y, x)
	if !a.Equal(b) {
		t.Fatalf("scopes with same members/counts in different insertion order should be equal")
	}

	bank := NewScopeBank()
	ca := bank.Insert(a)
	cb := bank.Insert(b)
	if ca != cb {
		t.Errorf("bank should intern structurally-equal scopes to the same pointer")
	}

	c := NewScope(x)
	cc := bank.Insert(c)
	if cc == ca {
		t.Errorf("distinct scopes must not be interned together")
	}
}

func TestScopeCloneIsIndependent(t *testing.T) {
	x := mkVar("x")
	s := NewScope(x)
	c := s.Clone()
	c.InsertVar(mkVar("y"))
	if s.Size() != 1 {
		t.Errorf("mutating clone affected original: size = %d", s.Size())
	}
}
