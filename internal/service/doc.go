// Package service implements the business operations over todo lists and
// their items: CRUD, case-insensitive uniqueness validation, toggling, and
// bulk completion. Services are constructed with an injected store; they
// hold no ambient global state.
package service
