package mdblocks

import (
	"errors"
	"runtime"
	"sync"
	"testing"
)

// Compile-time interface check.
var _ interface {
	Acquire() *Converter
	Release(*Converter)
	Size() int
	Close() error
} = (*ConverterPool)(nil)

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	gomaxprocs := runtime.GOMAXPROCS(0)

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{name: "explicit takes priority", workers: 4, want: 4},
		{name: "explicit=1 for sequential", workers: 1, want: 1},
		{name: "explicit can exceed max", workers: 20, want: 20},
		{name: "zero uses auto calculation", workers: 0, want: min(max(gomaxprocs/cpuDivisor, MinPoolSize), MaxPoolSize)},
		{name: "negative uses auto calculation", workers: -3, want: min(max(gomaxprocs/cpuDivisor, MinPoolSize), MaxPoolSize)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ResolvePoolSize(tt.workers); got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

func TestNewConverterPool_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want int
	}{
		{n: 3, want: 3},
		{n: 0, want: 1},
		{n: -1, want: 1},
	}

	for _, tt := range tests {
		pool := NewConverterPool(tt.n)
		if got := pool.Size(); got != tt.want {
			t.Errorf("NewConverterPool(%d).Size() = %d, want %d", tt.n, got, tt.want)
		}
		_ = pool.Close()
	}
}

func TestConverterPool_AcquireRelease(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(2, WithCardsDefaults(CardsDefaults{Columns: 2}))
	defer func() { _ = pool.Close() }()

	a := pool.Acquire()
	b := pool.Acquire()
	if a == nil || b == nil {
		t.Fatal("Acquire() returned nil")
	}
	if a == b {
		t.Error("Acquire() returned the same converter twice")
	}
	if a.cfg.cards.Columns != 2 {
		t.Errorf("pooled converter columns = %d, want 2", a.cfg.cards.Columns)
	}

	pool.Release(a)
	if c := pool.Acquire(); c != a {
		t.Error("Acquire() after Release did not reuse the released converter")
	}
}

func TestConverterPool_Concurrent(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(2)
	defer func() { _ = pool.Close() }()

	var wg sync.WaitGroup
	for range 10 {
		wg.Go(func() {
			conv := pool.Acquire()
			if conv == nil {
				t.Error("Acquire() returned nil")
				return
			}
			pool.Release(conv)
		})
	}
	wg.Wait()

	if pool.created > pool.Size() {
		t.Errorf("created %d converters, pool size %d", pool.created, pool.Size())
	}
}

func TestConverterPool_InitError(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(2, WithCardsDefaults(CardsDefaults{Columns: 99}))
	defer func() { _ = pool.Close() }()

	if conv := pool.Acquire(); conv != nil {
		t.Error("Acquire() with invalid options returned a converter")
	}
	if err := pool.InitError(); !errors.Is(err, ErrInvalidColumns) {
		t.Errorf("InitError() = %v, want %v", err, ErrInvalidColumns)
	}
	if conv := pool.Acquire(); conv != nil {
		t.Error("second Acquire() returned a converter")
	}
}

func TestConverterPool_CloseIdempotent(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(1)
	conv := pool.Acquire()

	if err := pool.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := pool.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	// Release after Close is a no-op.
	pool.Release(conv)
	pool.Release(nil)
}
