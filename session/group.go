package session

import (
	"context"

	"golang.org/x/sync/errgroup"

	"go.lepak.sg/treesim/tree"
)

// Group runs several controllers over one tree side by side, usually
// with a different algorithm each, so that they can be compared.
// Members stay independent; the group only fans operations out.
type Group struct {
	members []*Controller
}

func NewGroup(cs ...*Controller) *Group {
	return &Group{members: cs}
}

func (g *Group) Members() []*Controller {
	return g.members
}

// SetTree binds root to every member, resetting each.
func (g *Group) SetTree(root *tree.Node) {
	for _, c := range g.members {
		c.SetTree(root)
	}
}

// Toggle toggles play and pause on every member.
func (g *Group) Toggle() {
	for _, c := range g.members {
		c.TogglePlayPause()
	}
}

func (g *Group) Reset() {
	for _, c := range g.members {
		c.Reset()
	}
}

func (g *Group) someIn(s State) bool {
	for _, c := range g.members {
		if c.State() == s {
			return true
		}
	}
	return false
}

func (g *Group) allIn(s State) bool {
	for _, c := range g.members {
		if c.State() != s {
			return false
		}
	}
	return true
}

func (g *Group) AnyRunning() bool {
	return g.someIn(Running)
}

func (g *Group) AnyCompleted() bool {
	return g.someIn(Completed)
}

// AllIdle is true for an empty group.
func (g *Group) AllIdle() bool {
	return g.allIn(Idle)
}

func (g *Group) AllPaused() bool {
	return g.allIn(Paused)
}

// StatusCounts adds up the status histograms of all members.
func (g *Group) StatusCounts() Counts {
	sum := Counts{}
	for _, c := range g.members {
		sum = sum.Add(c.StatusCounts())
	}
	return sum
}

// Wait blocks until every member completes or ctx is done.
func (g *Group) Wait(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	for _, c := range g.members {
		c := c
		eg.Go(func() error {
			return c.Wait(ctx)
		})
	}
	return eg.Wait()
}
