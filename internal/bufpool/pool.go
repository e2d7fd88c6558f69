// Package bufpool provides a size-bucketed pool of pixel byte buffers.
package bufpool

import "sync"

// Pool is a thread-safe pool for reusing pixel buffers.
//
// Pool groups buffers by their exact length, allowing efficient reuse of
// identically-sized frames. This reduces GC pressure when the same geometry
// is resized or converted over and over, as happens with animations.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]byte
	maxSize int // max buffers per bucket
}

// New creates a new buffer pool with the given maximum buffers per bucket.
// A maxPerBucket of 0 or less means unlimited (use with caution).
func New(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
	}
}

// Get retrieves a buffer of exactly n bytes from the pool or allocates one.
// Reused buffers are zeroed.
func (p *Pool) Get(n int) []byte {
	if n <= 0 {
		return nil
	}

	p.mu.Lock()
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		bucket[len(bucket)-1] = nil
		p.buckets[n] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return buf
	}
	p.mu.Unlock()

	return make([]byte, n)
}

// Put returns a buffer to the pool for reuse. The buffer is cleared and
// keyed by its capacity, so a slice that was shrunk in place still lands
// in the bucket it was allocated from.
// If buf is empty or the bucket is at max capacity, the buffer is discarded.
func (p *Pool) Put(buf []byte) {
	if cap(buf) == 0 {
		return
	}

	buf = buf[:cap(buf)]
	clear(buf)

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[len(buf)]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		// Bucket full, GC will clean up.
		return
	}
	for _, b := range bucket {
		if &b[0] == &buf[0] {
			// Already pooled; a second copy would hand the memory out twice.
			return
		}
	}

	p.buckets[len(buf)] = append(bucket, buf)
}

// Len returns the number of buffers currently held for size n.
func (p *Pool) Len(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[n])
}

// defaultPool is the package-level pool for convenient usage.
var defaultPool = New(8)

// Default returns the package-level pool.
func Default() *Pool {
	return defaultPool
}
