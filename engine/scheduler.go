package engine

import (
	"container/heap"
	"time"
)

// TaskKind identifies a deferred game action
type TaskKind uint8

const (
	TaskRespawn TaskKind = iota + 1
)

func (k TaskKind) String() string {
	if k == TaskRespawn {
		return "respawn"
	}
	return "unknown"
}

// Task is a deferred action keyed on simulation time
// Generation ties the task to the session that scheduled it
type Task struct {
	At         time.Duration
	Kind       TaskKind
	Generation uint64
	seq        uint64
}

// taskHeap orders by fire time, then by insertion for equal times
type taskHeap []Task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].At != h[j].At {
		return h[i].At < h[j].At
	}
	return h[i].seq < h[j].seq
}
func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *taskHeap) Push(x any)   { *h = append(*h, x.(Task)) }
func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	*h = old[:n-1]
	return t
}

// Scheduler is a min-heap of deferred tasks drained by the simulation step
// Not thread-safe; owned by the simulation goroutine
type Scheduler struct {
	tasks taskHeap
	seq   uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule queues a task to fire at simulation time at
func (s *Scheduler) Schedule(at time.Duration, kind TaskKind, generation uint64) {
	s.seq++
	heap.Push(&s.tasks, Task{At: at, Kind: kind, Generation: generation, seq: s.seq})
}

// Due pops every task with At <= now, in fire order
func (s *Scheduler) Due(now time.Duration) []Task {
	var out []Task
	for len(s.tasks) > 0 && s.tasks[0].At <= now {
		out = append(out, heap.Pop(&s.tasks).(Task))
	}
	return out
}

func (s *Scheduler) Len() int { return len(s.tasks) }

// Clear drops all pending tasks
func (s *Scheduler) Clear() {
	s.tasks = s.tasks[:0]
}
