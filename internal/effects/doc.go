// Package effects holds the small pointer and scroll driven animations of
// the portfolio page: cursor follow, card tilt, magnetic buttons, the
// navigation bar, scroll reveal, skill bars and timeline progress.
//
// Every effect is a plain state machine advanced by its host; none of them
// touch a display or start goroutines.
package effects
