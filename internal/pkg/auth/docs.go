// Package auth provides password hashing and JWT access token handling for
// the HTTP and websocket adapters.
package auth
