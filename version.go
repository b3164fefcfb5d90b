// SPDX-License-Identifier: MIT

package qanneal

// Version is the library and CLI release string.
const Version = "0.3.0"
