// Package store defines the key-value persistence contract and the error
// taxonomy shared by its implementations. The interface abstracts the
// underlying storage mechanism from the application's core logic, allowing
// business rules to remain independent of whether data lives in process
// memory or in Redis.
package store
