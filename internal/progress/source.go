// Package progress streams upload payloads and reports transfer progress on
// interactive terminals.
package progress

import "io"

// Source is a single-pass reader over a fixed byte buffer. Once exhausted it
// stays exhausted; build a new Source to read the buffer again.
type Source struct {
	buf    []byte
	cursor int
}

// NewSource returns a Source over buf. buf must not be modified afterwards.
func NewSource(buf []byte) *Source {
	return &Source{buf: buf}
}

// Next returns up to size bytes and advances the cursor. The chunk never
// extends past the end of the buffer. ok is false once every byte has been
// delivered. A non-positive size yields an empty chunk and leaves the cursor
// in place. Callers must not modify the returned chunk.
func (s *Source) Next(size int) (chunk []byte, ok bool) {
	if s.cursor >= len(s.buf) {
		return nil, false
	}
	if size <= 0 {
		return []byte{}, true
	}

	end := s.cursor + min(size, len(s.buf)-s.cursor)
	chunk = s.buf[s.cursor:end:end]
	s.cursor = end
	return chunk, true
}

// Read implements io.Reader, pulling len(p) bytes at a time.
func (s *Source) Read(p []byte) (int, error) {
	if len(p) == 0 {
		if s.cursor >= len(s.buf) {
			return 0, io.EOF
		}
		return 0, nil
	}

	chunk, ok := s.Next(len(p))
	if !ok {
		return 0, io.EOF
	}
	return copy(p, chunk), nil
}

// Len returns the total payload size in bytes.
func (s *Source) Len() int {
	return len(s.buf)
}

// Offset returns the number of bytes already delivered.
func (s *Source) Offset() int {
	return s.cursor
}

// Remaining returns the number of bytes not yet delivered.
func (s *Source) Remaining() int {
	return len(s.buf) - s.cursor
}
