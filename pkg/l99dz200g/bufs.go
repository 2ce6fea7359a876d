package l99dz200g

import "sync"

var frames = &sync.Pool{New: func() interface{} { return make([]byte, FrameSize) }}

func getFrame() []byte {
	return frames.Get().([]byte)
}

func putFrame(b []byte) {
	b[0], b[1], b[2], b[3] = 0, 0, 0, 0
	frames.Put(b)
}
