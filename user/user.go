// Package user exposes the local account's profile surface.
package user

import (
	"errors"

	"github.com/lanternworks/gridlink/platform"
)

var ErrNilCaller = errors.New("user: platform caller required")

// Client reads the local user's profile through the call boundary.
type Client struct {
	caller platform.Caller
}

func New(caller platform.Caller) (*Client, error) {
	if caller == nil {
		return nil, ErrNilCaller
	}
	return &Client{caller: caller}, nil
}

// Identity returns the platform identity of the current user.
func (c *Client) Identity() platform.ID {
	return platform.ID(c.caller.Identity())
}

// Level returns the current user's profile level.
func (c *Client) Level() uint32 {
	return c.caller.PlayerLevel()
}
