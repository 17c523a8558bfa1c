package main

import (
	"bytes"
	"context"
	"sync"
	"time"

	mdblocks "github.com/alnah/go-mdblocks"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment, converter and pool doubles
// ---------------------------------------------------------------------------

// newTestEnv returns an Environment writing to buffers, with the given
// "KEY=value" pairs as its process environment and a real converter pool.
func newTestEnv(environ ...string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:         time.Now,
		Stdout:      &stdout,
		Stderr:      &stderr,
		Environ:     func() []string { return environ },
		InContainer: func() bool { return false },
		NewPool:     newPool,
	}
	return env, &stdout, &stderr
}

// mockConverter records inputs and returns canned output.
type mockConverter struct {
	mu     sync.Mutex
	inputs []mdblocks.Input
	err    error
}

func (m *mockConverter) Convert(_ context.Context, in mdblocks.Input) (*mdblocks.ConvertResult, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, in)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	res := &mdblocks.ConvertResult{HTML: []byte("<title>" + in.Title + "</title>")}
	if !in.HTMLOnly {
		res.PDF = []byte("%PDF-1.4 mock")
	}
	return res, nil
}

func (m *mockConverter) recorded() []mdblocks.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mdblocks.Input(nil), m.inputs...)
}

// mockPool hands out a single shared converter.
type mockPool struct {
	conv    CLIConverter
	size    int
	initErr error

	mu       sync.Mutex
	opts     []mdblocks.Option
	closed   bool
	released int
}

func (p *mockPool) Acquire() CLIConverter {
	if p.initErr != nil || p.conv == nil {
		return nil
	}
	return p.conv
}

func (p *mockPool) Release(CLIConverter) {
	p.mu.Lock()
	p.released++
	p.mu.Unlock()
}

func (p *mockPool) InitError() error { return p.initErr }

func (p *mockPool) Size() int { return max(p.size, 1) }

func (p *mockPool) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return nil
}

// factory is a PoolFactory that records its arguments and returns p.
func (p *mockPool) factory(size int, opts ...mdblocks.Option) Pool {
	p.mu.Lock()
	p.size = size
	p.opts = opts
	p.mu.Unlock()
	return p
}
