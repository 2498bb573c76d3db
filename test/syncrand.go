package test

import (
	"math/rand"
	"sync"
)

// syncRand serializes access to a seeded rand.Rand so a ControlledRand can
// be shared by a test and its subtests.
type syncRand struct {
	lk sync.Mutex
	*rand.Rand
}

func newSyncRand(seed int64) *syncRand {
	return &syncRand{Rand: rand.New(rand.NewSource(seed))}
}
func (r *syncRand) Read(p []byte) (n int, err error) {
	r.lk.Lock()
	defer r.lk.Unlock()
	return r.Rand.Read(p)
}
func (r *syncRand) Uint32() uint32 {
	r.lk.Lock()
	defer r.lk.Unlock()
	return r.Rand.Uint32()
}
func (r *syncRand) Uint64() uint64 {
	r.lk.Lock()
	defer r.lk.Unlock()
	return r.Rand.Uint64()
}
func (r *syncRand) Intn(n int) int {
	r.lk.Lock()
	defer r.lk.Unlock()
	return r.Rand.Intn(n)
}
