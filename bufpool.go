package imglib

import (
	"bytes"
	"sync"
)

// bytesBufPool reuses the buffers that hold non-seekable input while it is decoded.
var bytesBufPool = sync.Pool{
	New: func() any {
		// 64KB covers small bitmaps and netpbm files without regrowing.
		return bytes.NewBuffer(make([]byte, 0, 64*1024))
	},
}

// maxPooledBuffer keeps a single huge image from pinning its buffer in the pool.
const maxPooledBuffer = 16 << 20

func getBuffer() *bytes.Buffer {
	buf := bytesBufPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	bytesBufPool.Put(buf)
}
