package gateway

import (
	"io"
	"io/ioutil"
)

// matches the Reset signature of compress/zlib and czlib readers
type resetter interface {
	Reset(r io.Reader, dict []byte) error
}

// wrappedReader decompresses one websocket message at a time through a
// reusable zlib context.
type wrappedReader struct {
	io.ReadCloser
}

func (r wrappedReader) Reset(src io.Reader) error {
	return r.ReadCloser.(resetter).Reset(src, nil)
}

func (r wrappedReader) Read() ([]byte, error) {
	return ioutil.ReadAll(r.ReadCloser)
}
