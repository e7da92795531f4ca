package testfixtures

import (
	"fmt"
	"sync"
)

// IDGenerator hands out predictable confirmation codes such as "HD-000001".
type IDGenerator struct {
	mu     sync.Mutex
	prefix string
	issued uint64
}

// NewIDGenerator returns a generator whose codes start with prefix, or
// with "HD" when prefix is empty.
func NewIDGenerator(prefix string) *IDGenerator {
	if prefix == "" {
		prefix = "HD"
	}
	return &IDGenerator{prefix: prefix}
}

// Next returns the next confirmation code.
func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.issued++
	return fmt.Sprintf("%s-%06d", g.prefix, g.issued)
}

// NextFunc exposes Next for injection into a reservation ledger.
func (g *IDGenerator) NextFunc() func() string {
	if g == nil {
		return func() string { return "" }
	}
	return g.Next
}

// Issued reports how many codes have been handed out.
func (g *IDGenerator) Issued() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.issued
}

// Reset starts the sequence over.
func (g *IDGenerator) Reset() {
	g.mu.Lock()
	g.issued = 0
	g.mu.Unlock()
}
