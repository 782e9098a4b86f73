// Package parserpool provides a pool of botanical gnparser instances for
// concurrent name parsing.
// This is a pure package - parsing is computation, not I/O.
package parserpool

import (
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
)

// Pool hands out parsers to concurrent callers.
type Pool interface {
	// Canonical returns the simple canonical form of a scientific name.
	// The second value is false when the name cannot be parsed.
	// This method is safe for concurrent use.
	Canonical(name string) (string, bool)

	// Close shuts down the pool. After calling Close, the pool should not
	// be used.
	Close()
}

type pool struct {
	ch chan gnparser.GNparser
}

// NewPool creates a pool with jobsNum botanical parsers.
// If jobsNum is 0, it defaults to runtime.NumCPU().
func NewPool(jobsNum int) Pool {
	poolSize := jobsNum
	if poolSize <= 0 {
		poolSize = runtime.NumCPU()
	}

	cfg := gnparser.NewConfig(
		gnparser.OptCode(nomcode.Botanical),
	)

	return &pool{ch: gnparser.NewPool(cfg, poolSize)}
}

// Canonical parses a name with a parser borrowed from the pool.
func (p *pool) Canonical(name string) (string, bool) {
	// blocks if all parsers are busy
	parser := <-p.ch
	res := parser.ParseName(name)
	p.ch <- parser

	if !res.Parsed || res.Canonical == nil {
		return "", false
	}
	return res.Canonical.Simple, true
}

// Close closes the channel and drains remaining parsers.
func (p *pool) Close() {
	if p.ch != nil {
		close(p.ch)
		for range p.ch {
		}
	}
}
