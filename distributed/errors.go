// SPDX-License-Identifier: MIT

package distributed

import "errors"

var (
	// ErrInvalidWorld is returned for a world size <= 0 or a rank outside [0, size).
	ErrInvalidWorld = errors.New("distributed: invalid world size or rank")

	// ErrNilCommunicator is returned when Run is called without a communicator.
	ErrNilCommunicator = errors.New("distributed: communicator is nil")

	// ErrMalformedCollective is returned when ranks disagree on a collective's
	// root or buffer length.
	ErrMalformedCollective = errors.New("distributed: malformed collective")
)
