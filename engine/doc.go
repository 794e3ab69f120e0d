// Package engine holds the five-in-a-row rules and the move selector used
// by the web and terminal shells. Boards are owned by the caller; nothing in
// this package keeps game state between calls.
package engine
