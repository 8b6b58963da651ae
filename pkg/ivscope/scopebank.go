package ivscope

import "sync"

// ScopeBank is a global, append-only interner for Scope values: inserting
// a scope equal to one already known returns the previously interned
// instance, so equal scopes become pointer-identical. Grounded in
// realpaver's ScopeBank::getInstance()->insertScope(...), used throughout
// original_source so that DAG nodes sharing a free-variable set share one
// Scope instead of each carrying a private copy.
type ScopeBank struct {
	mu    sync.Mutex
	table map[string]*Scope
}

var defaultBank = NewScopeBank()

// NewScopeBank creates an empty bank. Most callers should use the
// package-level Intern, which goes through a shared default bank; a
// private bank is useful in tests that want isolation.
func NewScopeBank() *ScopeBank {
	return &ScopeBank{table: map[string]*Scope{}}
}

// Insert returns the canonical interned scope structurally equal to s. If
// no equal scope has been seen before, s itself becomes canonical.
func (b *ScopeBank) Insert(s *Scope) *Scope {
	if s == nil {
		return nil
	}
	k := s.key()
	b.mu.Lock()
	defer b.mu.Unlock()
	if canon, ok := b.table[k]; ok {
		return canon
	}
	b.table[k] = s
	return s
}

// Size reports how many distinct scopes the bank has interned.
func (b *ScopeBank) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.table)
}

// Intern canonicalizes s against the shared default bank.
func Intern(s *Scope) *Scope { return defaultBank.Insert(s) }
