// Package interntoken shares the text of repeated tokens, so that a name
// read many times is stored once.
package interntoken

import (
	"sync"
)

// Table is a set of interned strings.  A nil Table interns nothing.  A Table
// is safe for concurrent use.
type Table struct {
	mut    sync.RWMutex
	intern map[string]string
}

func NewTable() *Table {
	return &Table{
		intern: make(map[string]string),
	}
}

// Len returns the number of strings in the table.
func (tab *Table) Len() int {
	if tab == nil {
		return 0
	}
	tab.mut.RLock()
	defer tab.mut.RUnlock()
	return len(tab.intern)
}

// GetBytes returns a string equal to b.
func (tab *Table) GetBytes(b []byte) string {
	if tab == nil {
		return string(b)
	}
	tab.mut.RLock()
	// The conversion in the index expression does not allocate.
	s, ok := tab.intern[string(b)]
	tab.mut.RUnlock()
	if ok {
		return s
	}
	return tab.insert(string(b))
}

// Get returns a string that equals s.
func (tab *Table) Get(s string) string {
	if tab == nil {
		return s
	}
	tab.mut.RLock()
	p, ok := tab.intern[s]
	tab.mut.RUnlock()
	if ok {
		return p
	}
	return tab.insert(s)
}

func (tab *Table) insert(s string) string {
	tab.mut.Lock()
	p, ok := tab.intern[s]
	if !ok {
		p = s
		tab.intern[s] = p
	}
	tab.mut.Unlock()
	return p
}
