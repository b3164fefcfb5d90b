// SPDX-License-Identifier: MIT

// Package distributed runs a replica ensemble across independent workers and
// agrees on a single global best.
//
// Each worker (rank r of a world of size W) runs its own anneal.Ensemble seeded
// with base+r, then all workers meet at exactly two collectives:
//
//  1. AllReduceMinLoc: every rank contributes its local best energy and learns
//     the smallest one together with its owner (ties go to the lowest rank).
//  2. Broadcast: the owning rank sends its best state to everyone.
//
// The Communicator interface abstracts the message-passing runtime. LocalGroup
// implements it for in-process workers on channels, and RunLocal drives a whole
// LocalGroup with one goroutine per rank.
//
// Workers never share mutable state. A failing worker cancels the shared
// context, which unblocks every pending collective.
package distributed
