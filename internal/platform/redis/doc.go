// Package redis implements the store and job queue contracts on Redis,
// using one logical database for application data and another for job
// records and the queue. Documents are JSON blobs under prefixed keys;
// ID counters use INCR; the queue is a list consumed with BRPOP.
package redis
