// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting for todo lists, their items, and job status
// polling. It translates HTTP concerns to service operations and maps
// service errors onto the public status codes.
package api
