package bodycodec

import (
	"github.com/valyala/bytebufferpool"
)

var bufferPool bytebufferpool.Pool

// GetBuffer retrieves a scratch buffer from the pool. Callers must return
// it with PutBuffer; encoders copy the assembled body out of the buffer
// before releasing it, since the template outlives the encode call.
func GetBuffer() *bytebufferpool.ByteBuffer {
	return bufferPool.Get()
}

// PutBuffer returns a buffer to the pool.
func PutBuffer(b *bytebufferpool.ByteBuffer) {
	bufferPool.Put(b)
}
