// pool.go - Only for internal buffer reuse
package brcode

import "sync"

var bufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 0, 256)
		return &buf
	},
}

// A static payload never exceeds a few hundred bytes.
func getBuffer() []byte {
	buf := bufferPool.Get().(*[]byte)
	return (*buf)[:0]
}

func putBuffer(buf []byte) {
	if cap(buf) <= 1024 { // Don't pool huge buffers
		b := buf[:0]
		bufferPool.Put(&b)
	}
}
