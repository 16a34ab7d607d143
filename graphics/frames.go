package graphics

// FrameCallback is invoked once per display refresh with the host clock in seconds.
type FrameCallback func(now float64)

// FrameHandle identifies a pending frame request. The zero handle is never issued.
type FrameHandle uint64

// FrameQueue holds pending display-refresh callbacks with request/cancel
// semantics. Callbacks requested while a refresh is being dispatched run on the
// following refresh. It is not safe for concurrent use; hosts drive it from
// the thread that owns the context.
type FrameQueue struct {
	next     FrameHandle
	pending  []frameRequest
	inFlight []frameRequest
}

type frameRequest struct {
	handle FrameHandle
	fn     FrameCallback
}

func (q *FrameQueue) Request(fn FrameCallback) FrameHandle {
	q.next++
	q.pending = append(q.pending, frameRequest{handle: q.next, fn: fn})
	return q.next
}

// Cancel drops a request that has not run yet. Unknown or already-run handles
// are ignored.
func (q *FrameQueue) Cancel(h FrameHandle) {
	for i, req := range q.pending {
		if req.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	// cancelled by an earlier callback of the refresh being dispatched
	for i := range q.inFlight {
		if q.inFlight[i].handle == h {
			q.inFlight[i].fn = nil
			return
		}
	}
}

// Len returns the number of requests waiting for the next refresh.
func (q *FrameQueue) Len() int {
	return len(q.pending)
}

// Dispatch runs every callback pending at the time of the call and returns how
// many ran.
func (q *FrameQueue) Dispatch(now float64) int {
	q.inFlight = q.pending
	q.pending = nil
	ran := 0
	for i := range q.inFlight {
		fn := q.inFlight[i].fn
		if fn == nil {
			continue
		}
		q.inFlight[i].fn = nil
		fn(now)
		ran++
	}
	q.inFlight = nil
	return ran
}
