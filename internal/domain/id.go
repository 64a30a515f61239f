package domain

import (
	"strconv"
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID returns a time-derived record identifier: the current Unix time in
// milliseconds, rendered as a decimal string. Two calls inside the same
// millisecond still yield distinct, strictly increasing ids.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return strconv.FormatInt(id, 10)
}
