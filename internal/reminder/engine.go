package reminder

import (
	"container/heap"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var ErrInvalidDueTime = errors.New("reminder: invalid due time")

// DueAlert fires when a scheduled task reaches its due time.
type DueAlert struct {
	TaskID string
	Title  string
	DueAt  time.Time
}

type queueItem struct {
	alert     DueAlert
	cancelled bool
}

type priorityQueue []*queueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].alert.DueAt.Before(pq[j].alert.DueAt)
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(*queueItem))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

// Engine delivers DueAlert events when task due times arrive. Alerts are
// held in a min-heap keyed by due time; a single goroutine sleeps until
// the earliest one. Emission is non-blocking: if the consumer lags, the
// alert is dropped and counted rather than stalling the loop. Cancelled
// entries stay in the heap marked dead and are discarded when they
// surface.
type Engine struct {
	mu      sync.Mutex
	queue   priorityQueue
	byTask  map[string]*queueItem
	out     chan DueAlert
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
}

func NewEngine(bufferSize int) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		queue:  make(priorityQueue, 0),
		byTask: make(map[string]*queueItem),
		out:    make(chan DueAlert, bufferSize),
		wakeup: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

func (e *Engine) C() <-chan DueAlert {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	heap.Init(&e.queue)
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

// Schedule arms an alert for the task. Scheduling a task that is already
// armed replaces its previous alert.
func (e *Engine) Schedule(alert DueAlert) error {
	if alert.DueAt.IsZero() {
		return ErrInvalidDueTime
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return errors.New("reminder: engine stopped")
	}

	if prev, ok := e.byTask[alert.TaskID]; ok {
		prev.cancelled = true
	}
	item := &queueItem{alert: alert}
	e.byTask[alert.TaskID] = item
	heap.Push(&e.queue, item)
	e.signalWakeup()
	return nil
}

// Cancel disarms a pending alert, typically because the task completed.
// Unknown task ids are a no-op.
func (e *Engine) Cancel(taskID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if item, ok := e.byTask[taskID]; ok {
		item.cancelled = true
		delete(e.byTask, taskID)
	}
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		next, hasNext := e.peek()
		if !hasNext {
			select {
			case <-e.wakeup:
				continue
			case <-e.stopCh:
				return
			}
		}

		wait := time.Until(next.DueAt)
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			due := e.popDue(time.Now().UTC())
			for _, alert := range due {
				select {
				case e.out <- alert:
				default:
					atomic.AddUint64(&e.dropped, 1)
				}
			}
		case <-e.wakeup:
			continue
		case <-e.stopCh:
			if timer != nil {
				stopTimer(timer)
			}
			return
		}
	}
}

func (e *Engine) signalWakeup() {
	select {
	case e.wakeup <- struct{}{}:
	default:
	}
}

func (e *Engine) peek() (DueAlert, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for len(e.queue) > 0 {
		if e.queue[0].cancelled {
			heap.Pop(&e.queue)
			continue
		}
		return e.queue[0].alert, true
	}
	return DueAlert{}, false
}

func (e *Engine) popDue(now time.Time) []DueAlert {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]DueAlert, 0)
	for len(e.queue) > 0 {
		next := e.queue[0]
		if !next.cancelled && next.alert.DueAt.After(now) {
			break
		}
		item := heap.Pop(&e.queue).(*queueItem)
		if item.cancelled {
			continue
		}
		if e.byTask[item.alert.TaskID] == item {
			delete(e.byTask, item.alert.TaskID)
		}
		out = append(out, item.alert)
	}
	return out
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
