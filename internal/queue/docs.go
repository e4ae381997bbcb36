// Package queue implements an in-memory, multi-queue job dispatcher with
// at-least-once execution and bounded retries.
//
// Jobs are appended to named FIFO queues and handed to the queue's handler
// during periodic drain cycles. A queue drains at most once concurrently;
// different queues drain in parallel. Jobs are kept in memory for status
// inspection and are lost on process restart.
package queue
