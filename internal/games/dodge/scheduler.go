package dodge

import "container/heap"

// timerKind identifies what a scheduled timer does when it fires.
type timerKind int

const (
	timerBulletSpawn  timerKind = iota // Spawn a bullet and reschedule
	timerPowerUpSpawn                  // Attempt a power-up spawn and reschedule
	timerPowerUpTTL                    // Expire the power-up in handle
)

// timer is a single scheduled event on simulation time.
type timer struct {
	at     int // Simulation time in ms
	seq    uint64
	kind   timerKind
	handle Handle
}

// timerQueue is a min-heap ordered by (at, seq).
type timerQueue []timer

func (q timerQueue) Len() int { return len(q) }
func (q timerQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}
func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *timerQueue) Push(x any)   { *q = append(*q, x.(timer)) }
func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	*q = old[:n-1]
	return t
}

// Scheduler is a deterministic timer queue driven by the simulation clock.
// Timers due at the same time fire in the order they were scheduled.
type Scheduler struct {
	queue timerQueue
	seq   uint64
}

// Schedule adds a timer firing at simulation time at.
func (s *Scheduler) Schedule(at int, kind timerKind, h Handle) {
	s.seq++
	heap.Push(&s.queue, timer{at: at, seq: s.seq, kind: kind, handle: h})
}

// PopDue removes and returns the earliest timer due at or before now.
func (s *Scheduler) PopDue(now int) (timer, bool) {
	if len(s.queue) == 0 || s.queue[0].at > now {
		return timer{}, false
	}
	return heap.Pop(&s.queue).(timer), true
}

// NextAt returns the time of the earliest pending timer.
func (s *Scheduler) NextAt() (int, bool) {
	if len(s.queue) == 0 {
		return 0, false
	}
	return s.queue[0].at, true
}

// Len returns the number of pending timers.
func (s *Scheduler) Len() int {
	return len(s.queue)
}

// Reset drops all pending timers.
func (s *Scheduler) Reset() {
	s.queue = s.queue[:0]
	s.seq = 0
}
