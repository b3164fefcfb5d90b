// SPDX-License-Identifier: MIT

package distributed

import (
	"context"
	"fmt"
)

// MinLoc is the result of a min-with-location reduction.
type MinLoc struct {
	Value float64
	Rank  int
}

// less orders candidates by value, then by rank.
func (m MinLoc) less(o MinLoc) bool {
	return m.Value < o.Value || (m.Value == o.Value && m.Rank < o.Rank)
}

// Communicator is the collective-communication surface a worker needs.
// Every rank of a world must call the same collectives in the same order.
type Communicator interface {
	Rank() int
	Size() int

	// AllReduceMinLoc returns the smallest v over all ranks and the rank that
	// contributed it; equal values resolve to the lowest rank.
	AllReduceMinLoc(ctx context.Context, v float64) (MinLoc, error)

	// Broadcast copies root's buf into buf on every other rank. All ranks must
	// pass the same root and a buffer of the same length.
	Broadcast(ctx context.Context, root int, buf []int8) error
}

type bcastMsg struct {
	root int
	data []int8
}

// LocalGroup connects size in-process workers. Rank 0 coordinates reductions;
// the root of a broadcast sends directly to every other rank.
type LocalGroup struct {
	size      int
	reduceIn  chan MinLoc
	reduceOut []chan MinLoc
	bcast     []chan bcastMsg
}

// NewLocalGroup allocates the channels for a world of size workers.
// Errors: ErrInvalidWorld.
func NewLocalGroup(size int) (*LocalGroup, error) {
	if size <= 0 {
		return nil, fmt.Errorf("NewLocalGroup(%d): %w", size, ErrInvalidWorld)
	}
	g := &LocalGroup{
		size:      size,
		reduceIn:  make(chan MinLoc, size),
		reduceOut: make([]chan MinLoc, size),
		bcast:     make([]chan bcastMsg, size),
	}
	for r := 0; r < size; r++ {
		g.reduceOut[r] = make(chan MinLoc, 1)
		g.bcast[r] = make(chan bcastMsg, 1)
	}

	return g, nil
}

// Size returns the world size.
func (g *LocalGroup) Size() int { return g.size }

// Comm returns the communicator endpoint of rank. Each endpoint must be used
// by exactly one goroutine.
func (g *LocalGroup) Comm(rank int) (Communicator, error) {
	if rank < 0 || rank >= g.size {
		return nil, fmt.Errorf("Comm(%d) of %d: %w", rank, g.size, ErrInvalidWorld)
	}

	return &localComm{group: g, rank: rank}, nil
}

type localComm struct {
	group *LocalGroup
	rank  int
}

func (c *localComm) Rank() int { return c.rank }
func (c *localComm) Size() int { return c.group.size }

func (c *localComm) AllReduceMinLoc(ctx context.Context, v float64) (MinLoc, error) {
	var (
		g    = c.group
		mine = MinLoc{Value: v, Rank: c.rank}
	)
	if c.rank != 0 {
		select {
		case g.reduceIn <- mine:
		case <-ctx.Done():
			return MinLoc{}, ctx.Err()
		}
		select {
		case out := <-g.reduceOut[c.rank]:
			return out, nil
		case <-ctx.Done():
			return MinLoc{}, ctx.Err()
		}
	}

	// Coordinator: gather size-1 contributions, then fan the result out.
	best := mine
	for received := 1; received < g.size; received++ {
		select {
		case in := <-g.reduceIn:
			if in.less(best) {
				best = in
			}
		case <-ctx.Done():
			return MinLoc{}, ctx.Err()
		}
	}
	for r := 1; r < g.size; r++ {
		select {
		case g.reduceOut[r] <- best:
		case <-ctx.Done():
			return MinLoc{}, ctx.Err()
		}
	}

	return best, nil
}

func (c *localComm) Broadcast(ctx context.Context, root int, buf []int8) error {
	g := c.group
	if root < 0 || root >= g.size {
		return fmt.Errorf("Broadcast root %d of %d: %w", root, g.size, ErrInvalidWorld)
	}

	if c.rank == root {
		for r := 0; r < g.size; r++ {
			if r == root {
				continue
			}
			msg := bcastMsg{root: root, data: append([]int8(nil), buf...)}
			select {
			case g.bcast[r] <- msg:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	}

	select {
	case msg := <-g.bcast[c.rank]:
		if msg.root != root || len(msg.data) != len(buf) {
			return fmt.Errorf("rank %d: broadcast root %d len %d, expected root %d len %d: %w",
				c.rank, msg.root, len(msg.data), root, len(buf), ErrMalformedCollective)
		}
		copy(buf, msg.data)

		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
