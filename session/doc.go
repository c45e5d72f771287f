// Package session is the facade a caller drives: initialize once with
// a role, a method, and a transport; start it; observe status
// transitions through a callback or by polling; cancel or close it
// when done. It owns exactly one worker goroutine per instance and
// never re-enters it.
package session
