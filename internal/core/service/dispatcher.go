package service

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
)

var ErrDispatcherClosed = errors.New("dispatcher is shut down")

type userQueue struct {
	jobs []func()
}

// Dispatcher runs jobs serially per user and concurrently across users. A
// user's goroutine lives only while that user has queued work.
type Dispatcher struct {
	mu     sync.Mutex
	queues map[int64]*userQueue
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{queues: make(map[int64]*userQueue)}
}

// Submit enqueues job behind every job previously submitted for userID. Jobs
// submitted after Shutdown are rejected with ErrDispatcherClosed.
func (d *Dispatcher) Submit(userID int64, job func()) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		log.Warn().Int64("userId", userID).Msg("rejecting job, dispatcher is shut down")
		return ErrDispatcherClosed
	}

	q, ok := d.queues[userID]
	if !ok {
		q = &userQueue{}
		d.queues[userID] = q
		d.wg.Add(1)
		go d.drain(userID, q)
	}

	q.jobs = append(q.jobs, job)
	return nil
}

// Wait blocks until every submitted job has finished. It must not run
// concurrently with Submit; use Shutdown for teardown.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Shutdown stops accepting jobs and waits for the queued ones to finish.
func (d *Dispatcher) Shutdown() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) drain(userID int64, q *userQueue) {
	defer d.wg.Done()

	for {
		d.mu.Lock()
		if len(q.jobs) == 0 {
			delete(d.queues, userID)
			d.mu.Unlock()
			return
		}

		job := q.jobs[0]
		q.jobs[0] = nil
		q.jobs = q.jobs[1:]
		d.mu.Unlock()

		run(userID, job)
	}
}

func run(userID int64, job func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Int64("userId", userID).Interface("panic", r).Msg("recovered from panic in update job")
		}
	}()

	job()
}
