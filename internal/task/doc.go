// Package task manages background job queuing, processing, and lifecycle.
// The Dispatcher records a job and pushes its command onto a FIFO queue;
// the Worker pops envelopes one at a time, executes the command against
// the services, and advances the job record through
// queued -> started -> finished/failed. There is no retry, no priority,
// and no cancellation of enqueued work.
package task
