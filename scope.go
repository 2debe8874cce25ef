package exprlang

import (
	"fmt"
	"io"
	"sort"
)

// ScopeTable is a stack of scope levels. Level 0 is never closed; lookups
// search from the innermost open level outward.
type ScopeTable[T any] struct {
	levels []map[string]T
}

func NewScopeTable[T any]() *ScopeTable[T] {
	return &ScopeTable[T]{
		levels: []map[string]T{make(map[string]T)},
	}
}

// Level is the index of the innermost open level.
func (s *ScopeTable[T]) Level() int {
	return len(s.levels) - 1
}

func (s *ScopeTable[T]) OpenScope() {
	s.levels = append(s.levels, make(map[string]T))
}

// CloseScope discards the innermost level and its bindings.
func (s *ScopeTable[T]) CloseScope() {
	if len(s.levels) == 1 {
		panic("exprlang: close of the outermost scope")
	}
	s.levels = s.levels[:len(s.levels)-1]
}

// Declare binds name at level, replacing any binding already at that level.
func (s *ScopeTable[T]) Declare(level int, name string, v T) {
	s.levels[level][name] = v
}

// Save binds name at the innermost level.
func (s *ScopeTable[T]) Save(name string, v T) {
	s.Declare(s.Level(), name, v)
}

func (s *ScopeTable[T]) Lookup(name string) (T, bool) {
	for level := s.Level(); level >= 0; level-- {
		if v, ok := s.levels[level][name]; ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Clone copies every level so the copy can be restored after a failed run.
func (s *ScopeTable[T]) Clone() *ScopeTable[T] {
	levels := make([]map[string]T, len(s.levels))
	for i, m := range s.levels {
		levels[i] = make(map[string]T, len(m))
		for k, v := range m {
			levels[i][k] = v
		}
	}
	return &ScopeTable[T]{levels: levels}
}

// Dump writes the bindings innermost level first, names sorted.
func (s *ScopeTable[T]) Dump(w io.Writer) {
	for level := s.Level(); level >= 0; level-- {
		fmt.Fprintf(w, "level %d:\n", level)
		names := make([]string, 0, len(s.levels[level]))
		for name := range s.levels[level] {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "\t%s => %v\n", name, s.levels[level][name])
		}
	}
}
