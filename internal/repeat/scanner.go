package repeat

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/b97tsk/idscan/internal/idrange"
)

// DefaultChunkSize is the number of identifiers a Scanner hands to a worker
// at a time when ChunkSize is zero.
const DefaultChunkSize = 1 << 20

// Scanner computes the same sum as SumRepeated but splits the covered
// identifiers into chunks and scans them on several goroutines.
type Scanner struct {
	// Workers bounds the number of chunks scanned at once. Values below 2
	// scan one chunk at a time.
	Workers int

	// ChunkSize is the number of identifiers per chunk.
	ChunkSize uint64

	// Progress, if set, receives the running number of identifiers scanned
	// after each chunk. It may be called from several goroutines.
	Progress func(scanned uint64)
}

// SumRepeated returns SumRepeated(set). It stops early and returns ctx.Err()
// once ctx is done.
func (s *Scanner) SumRepeated(ctx context.Context, set idrange.Set) (uint64, error) {
	var sum, scanned atomic.Uint64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.Workers, 1))

	s.eachChunk(set, func(c idrange.Range) bool {
		if gctx.Err() != nil {
			return false
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sum.Add(sumRepeatedIn(c))
			n := scanned.Add(c.Len())
			if s.Progress != nil {
				s.Progress(n)
			}
			return nil
		})
		return true
	})

	if err := g.Wait(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return sum.Load(), nil
}

// eachChunk cuts the ranges of set into pieces of at most ChunkSize
// identifiers and passes them to yield until it returns false.
func (s *Scanner) eachChunk(set idrange.Set, yield func(idrange.Range) bool) {
	size := s.ChunkSize
	if size == 0 {
		size = DefaultChunkSize
	}
	for i := 0; i < set.Len(); i++ {
		r := set.At(i)
		for start := r.Start; ; {
			end := r.End
			if end-start >= size {
				end = start + size - 1
			}
			if !yield(idrange.Range{Start: start, End: end}) {
				return
			}
			if end == r.End {
				break
			}
			start = end + 1
		}
	}
}
