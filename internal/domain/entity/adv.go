// Package entity defines the core domain entities and validation logic for the
// application. It contains the advertisement and user business objects along with
// their validation rules and domain-specific errors.
package entity

import "time"

// Adv represents an advertisement entity in the system.
// Every persisted Adv references the user that owned it at creation time;
// ownership is set exactly once and never transferred.
type Adv struct {
	ID        int64
	Title     string
	Desc      string
	OwnerID   int64
	CreatedAt time.Time
}
