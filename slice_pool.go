package cournot

import (
	"sync"
)

var gameNodeSlicePool = sync.Pool{
	New: func() interface{} {
		return make([]GameNode, 0)
	},
}

func allocGameNodeSlice() []GameNode {
	return gameNodeSlicePool.Get().([]GameNode)
}

func freeGameNodeSlice(s []GameNode) {
	if cap(s) > 0 {
		gameNodeSlicePool.Put(s[:0])
	}
}
