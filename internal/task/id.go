package task

import "time"

// NextID derives an id from the creation timestamp (unix milliseconds) and
// bumps it until it is unique within the collection. Uniqueness is the only
// guaranteed property; ids are not a strict creation order.
func NextID(createdAt time.Time, existsFn func(int64) bool) int64 {
	id := createdAt.UnixMilli()
	for existsFn(id) {
		id++
	}
	return id
}
