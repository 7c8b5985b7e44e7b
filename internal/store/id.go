package store

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Table and hand ids are ULIDs so histories sort by creation time.
var idGen = struct {
	sync.Mutex
	entropy *ulid.MonotonicEntropy
}{entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)}

func NewID() string {
	idGen.Lock()
	defer idGen.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), idGen.entropy).String()
}
