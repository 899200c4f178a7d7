package entropy

import (
	"crypto/rand"
	"fmt"
	"io"
)

// ReaderFunc returns the random-byte provider. Override in tests for determinism.
var ReaderFunc = func() io.Reader { return rand.Reader }

// Reader is a thin wrapper around ReaderFunc.
func Reader() io.Reader { return ReaderFunc() }

// Read fills a fresh n-byte slice from r.
func Read(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("failed to read %d random bytes: %w", n, err)
	}
	return buf, nil
}

// Fixed returns a reader that endlessly repeats data.
func Fixed(data ...byte) io.Reader {
	if len(data) == 0 {
		data = []byte{0}
	}
	return &repeater{data: data}
}

type repeater struct {
	data []byte
	pos  int
}

func (r *repeater) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.data[r.pos%len(r.data)]
		r.pos++
	}
	return len(p), nil
}
