// Package session holds the client-side view of the authenticated user as an
// explicit state machine: uninitialized, then checking, settling as
// authenticated or anonymous. Screens that require auth redirect only once
// the check reaches a terminal status, never while it is still running.
package session

import (
	"errors"

	"cinebook-cli/model"
)

type Status int

const (
	StatusUninitialized Status = iota
	StatusChecking
	StatusAuthenticated
	StatusAnonymous
)

func (s Status) Terminal() bool {
	return s == StatusAuthenticated || s == StatusAnonymous
}

// Context is the session state passed to components that need to know who is
// signed in.
type Context struct {
	status Status
	user   model.User
}

func New() *Context {
	return &Context{status: StatusUninitialized}
}

// BeginCheck marks the auth check in flight. Re-checking from a terminal
// state is allowed; starting a second concurrent check is not.
func (c *Context) BeginCheck() error {
	if c.status == StatusChecking {
		return errors.New("auth check already in progress")
	}
	c.status = StatusChecking
	return nil
}

// ResolveAuthenticated completes the check with a signed-in user.
func (c *Context) ResolveAuthenticated(user model.User) {
	c.user = user
	c.status = StatusAuthenticated
}

// ResolveAnonymous completes the check without a session.
func (c *Context) ResolveAnonymous() {
	c.user = model.User{}
	c.status = StatusAnonymous
}

// SetLoggedOut drops the user immediately, e.g. after an explicit logout.
func (c *Context) SetLoggedOut() {
	c.user = model.User{}
	c.status = StatusAnonymous
}

func (c *Context) Status() Status {
	return c.status
}

func (c *Context) User() model.User {
	return c.user
}

func (c *Context) Authenticated() bool {
	return c.status == StatusAuthenticated
}
