package gallery

// maxPendingRevocations bounds the deferred-release buffer. Beyond the
// cap the oldest reference is evicted and released first, so the queue
// never grows without bound.
const maxPendingRevocations = 50

// revocationQueue is the FIFO of locally minted preview references
// removed from the gallery but possibly still rendered somewhere.
// Releasing at removal time would break in-flight interactions with the
// element, so removal parks the reference here and the release happens
// on eviction, ClearAll or disposal.
type revocationQueue struct {
	refs []string
}

func (q *revocationQueue) push(ref string, release func(string)) {
	for len(q.refs) >= maxPendingRevocations {
		oldest := q.refs[0]
		q.refs = q.refs[1:]
		release(oldest)
	}
	q.refs = append(q.refs, ref)
}

// drain releases everything still parked and empties the queue.
func (q *revocationQueue) drain(release func(string)) {
	for _, ref := range q.refs {
		release(ref)
	}
	q.refs = nil
}

func (q *revocationQueue) len() int {
	return len(q.refs)
}
