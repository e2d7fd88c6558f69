package sixelframe

import (
	"fmt"
	"sync"

	"github.com/gogpu/sixelframe/internal/bufpool"
)

// Allocator hands out and takes back the pixel and palette buffers a Frame owns.
//
// Alloc returns a buffer of exactly n bytes whose contents are unspecified.
// Free receives buffers previously returned by Alloc, possibly resliced
// shorter by in-place operations; implementations should key on cap(buf).
type Allocator interface {
	Alloc(n int) ([]byte, error)
	Free(buf []byte)
}

// poolAllocator backs frames with a shared size-bucketed pool.
type poolAllocator struct {
	pool *bufpool.Pool
}

func (a poolAllocator) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrOutOfMemory, n)
	}
	return a.pool.Get(n), nil
}

func (a poolAllocator) Free(buf []byte) {
	a.pool.Put(buf)
}

// DefaultAllocator returns the allocator frames use unless WithAllocator
// says otherwise. It recycles buffers through a process-wide pool.
func DefaultAllocator() Allocator {
	return poolAllocator{pool: bufpool.Default()}
}

// LimitAllocator caps the number of bytes outstanding at once and reports
// ErrOutOfMemory past the cap. Useful for bounding memory when decoding
// untrusted images.
//
// Only buffers issued by the LimitAllocator count against the budget;
// Free ignores any other buffer.
//
// Thread safety: All methods are safe for concurrent use.
type LimitAllocator struct {
	mu     sync.Mutex
	limit  int
	used   int
	issued map[*byte]int
	next   Allocator
}

// NewLimitAllocator creates a LimitAllocator allowing maxBytes outstanding,
// drawing buffers from next (DefaultAllocator when nil).
func NewLimitAllocator(maxBytes int, next Allocator) *LimitAllocator {
	if next == nil {
		next = DefaultAllocator()
	}
	return &LimitAllocator{limit: maxBytes, issued: make(map[*byte]int), next: next}
}

// Alloc reserves n bytes from the budget and forwards to the wrapped allocator.
func (a *LimitAllocator) Alloc(n int) ([]byte, error) {
	a.mu.Lock()
	if a.used+n > a.limit {
		used := a.used
		a.mu.Unlock()
		return nil, fmt.Errorf("%w: %d bytes requested, %d of %d in use", ErrOutOfMemory, n, used, a.limit)
	}
	a.used += n
	a.mu.Unlock()

	buf, err := a.next.Alloc(n)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil || cap(buf) == 0 {
		a.used -= n
		return buf, err
	}
	a.issued[&buf[:1][0]] = n
	return buf, nil
}

// Free returns a buffer issued by Alloc to the budget and to the wrapped
// allocator.
func (a *LimitAllocator) Free(buf []byte) {
	if cap(buf) == 0 {
		return
	}
	key := &buf[:1][0]

	a.mu.Lock()
	n, ok := a.issued[key]
	if ok {
		delete(a.issued, key)
		a.used -= n
	}
	a.mu.Unlock()

	if ok {
		a.next.Free(buf)
	}
}

// InUse returns the number of bytes currently outstanding.
func (a *LimitAllocator) InUse() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.used
}
