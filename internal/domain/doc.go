// Package domain defines the core business entities of the todo list
// system and their validation rules. These types carry no persistence or
// transport concerns; stores and handlers adapt around them.
package domain
