package sim

import "fmt"

// Admission is the outcome of ResourcePool.TryAcquire.
type Admission int

const (
	// Granted means a server was free and is now occupied by the request.
	Granted Admission = iota
	// Queued means every server was busy and the request joined the waiting line.
	Queued
	// Dropped means the waiting line was full; the request is lost.
	Dropped
)

func (a Admission) String() string {
	switch a {
	case Granted:
		return "granted"
	case Queued:
		return "queued"
	case Dropped:
		return "dropped"
	default:
		return fmt.Sprintf("Admission(%d)", int(a))
	}
}

// ResourcePool models N identical servers fronted by a bounded FIFO waiting line.
//
// Invariants, held between any two calls:
//   - 0 <= InUse() <= Capacity()
//   - Waiting() <= MaxQueueSize()
//   - Waiting() > 0 implies InUse() == Capacity() (work-conserving)
type ResourcePool struct {
	capacity     int
	maxQueueSize int
	inUse        int
	waitQ        *WaitQueue
}

// NewResourcePool creates a pool of capacity servers and a waiting line of at
// most maxQueueSize requests. Panics on out-of-range arguments; Config.Validate
// guards the public path.
func NewResourcePool(capacity, maxQueueSize int) *ResourcePool {
	if capacity <= 0 {
		panic(fmt.Sprintf("NewResourcePool: capacity must be > 0, got %d", capacity))
	}
	if maxQueueSize < 0 {
		panic(fmt.Sprintf("NewResourcePool: maxQueueSize must be >= 0, got %d", maxQueueSize))
	}
	return &ResourcePool{
		capacity:     capacity,
		maxQueueSize: maxQueueSize,
		waitQ:        &WaitQueue{},
	}
}

// TryAcquire applies the admission policy to req.
func (p *ResourcePool) TryAcquire(req *PendingRequest) Admission {
	if p.inUse < p.capacity {
		p.inUse++
		return Granted
	}
	if p.waitQ.Len() < p.maxQueueSize {
		p.waitQ.Enqueue(req)
		return Queued
	}
	return Dropped
}

// Release frees one server. If a request is waiting, the head of the line is
// granted the freed server at once and returned with ok=true; the caller must
// start its service at the current time.
func (p *ResourcePool) Release() (next *PendingRequest, ok bool) {
	if p.inUse == 0 {
		panic("Release: no server in use")
	}
	p.inUse--
	head := p.waitQ.Peek()
	if head == nil {
		return nil, false
	}
	if next = p.waitQ.Dequeue(); next != head {
		panic(fmt.Sprintf("Release: dequeued %s but head was %s", next, head))
	}
	p.inUse++
	return next, true
}

// Capacity returns the number of servers.
func (p *ResourcePool) Capacity() int { return p.capacity }

// MaxQueueSize returns the waiting-line cap.
func (p *ResourcePool) MaxQueueSize() int { return p.maxQueueSize }

// InUse returns the number of busy servers.
func (p *ResourcePool) InUse() int { return p.inUse }

// Waiting returns the current waiting-line length.
func (p *ResourcePool) Waiting() int { return p.waitQ.Len() }

func (p *ResourcePool) String() string {
	return fmt.Sprintf("pool{in_use=%d/%d waiting=%d/%d %s}", p.inUse, p.capacity, p.waitQ.Len(), p.maxQueueSize, p.waitQ)
}
