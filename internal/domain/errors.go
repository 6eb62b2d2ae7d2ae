package domain

import "errors"

// Sentinel errors shared by the storage, routing and RPC layers. Compare
// against these with errors.Is rather than string matching.
var (
	ErrNotFound       = errors.New("key not found")
	ErrNotResponsible = errors.New("node not responsible for the given key")
	ErrUninitialized  = errors.New("node not yet initialized")
)
