package usecase

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// waybillNoTimeLayout produces the 14-digit zero-padded timestamp part.
const waybillNoTimeLayout = "20060102150405"

// WaybillNoGenerator produces business identifiers of the form
// "WB" + yyyyMMddHHmmss + 0..999. Clock and random source are injectable
// so tests can pin the output. Uniqueness is not guaranteed within a
// second; the store's unique constraint is the backstop.
type WaybillNoGenerator struct {
	now  func() time.Time
	intn func(int) int
}

// NewWaybillNoGenerator constructs a generator with the wall clock and a
// locked pseudo-random source.
func NewWaybillNoGenerator() *WaybillNoGenerator {
	var mu sync.Mutex
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &WaybillNoGenerator{
		now: time.Now,
		intn: func(n int) int {
			mu.Lock()
			defer mu.Unlock()
			return rng.Intn(n)
		},
	}
}

// Next returns a fresh waybill number.
func (g *WaybillNoGenerator) Next() string {
	return "WB" + g.now().Format(waybillNoTimeLayout) + strconv.Itoa(g.intn(1000))
}
