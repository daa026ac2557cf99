package server

import "sync"

// Buffer pools for reducing allocations on the read path. Response assembly
// uses bytebufferpool instead (see response.go).

// chunkBufferPool holds 4KB buffers for reading from connections
var chunkBufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 4096)
		return &buf
	},
}

// headerBufferPool holds 8KB buffers for accumulating request headers
var headerBufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 8192)
		return &buf
	},
}

// Pool size limits - buffers larger than this are discarded
const (
	maxPoolBufferSize = 16384 // 16KB
)
