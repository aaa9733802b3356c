package game

import "errors"

// ErrExhausted is returned by a MoveSource when the whole reachable
// configuration space has been walked and unwound back to the initial
// turn without finding anything left to try.
var ErrExhausted = errors.New("configuration space exhausted")
