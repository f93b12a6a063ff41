package macho

import "io"

// A ByteSource is the minimal read surface this package needs from an
// underlying file or memory buffer. Every decoder reads through this
// interface rather than holding an *os.File directly, so a caller can
// hand in an in-memory buffer, a remapped shared-cache slice, or a plain
// file with equal ease.
type ByteSource interface {
	// Size returns the total number of addressable bytes.
	Size() uint64
	// ReadAt returns exactly n bytes starting at off, or an error if the
	// range [off, off+n) is not fully contained in the source.
	ReadAt(off, n uint64) ([]byte, error)
	// ReadCString reads a NUL-terminated string starting at off, scanning
	// at most max bytes. The returned string does not include the NUL.
	ReadCString(off, max uint64) (string, error)
}

// fileSource adapts an io.ReaderAt with a known size to ByteSource.
type fileSource struct {
	r    io.ReaderAt
	size uint64
}

// newFileSource wraps r, which must expose size addressable bytes.
func newFileSource(r io.ReaderAt, size uint64) *fileSource {
	return &fileSource{r: r, size: size}
}

func (s *fileSource) Size() uint64 { return s.size }

func (s *fileSource) ReadAt(off, n uint64) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	if off > s.size || n > s.size-off {
		return nil, newError(IoOutOfRange, int64(off), "read past end of file")
	}
	buf := make([]byte, n)
	if _, err := s.r.ReadAt(buf, int64(off)); err != nil {
		return nil, wrapError(IoOutOfRange, int64(off), "short read", err)
	}
	return buf, nil
}

func (s *fileSource) ReadCString(off, max uint64) (string, error) {
	if off > s.size {
		return "", newError(IoOutOfRange, int64(off), "read past end of file")
	}
	limit := max
	if rem := s.size - off; rem < limit {
		limit = rem
	}
	buf, err := s.ReadAt(off, limit)
	if err != nil {
		return "", err
	}
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i]), nil
		}
	}
	return "", newError(MalformedString, int64(off), "no NUL terminator within bound")
}
