// Package field animates the decorative particle background.
//
// A [Field] owns a fixed set of drifting points drawn onto a 2D [Surface]
// together with faint lines between every pair closer than the link
// distance. The package never talks to a real display; its collaborators
// are injected:
//
//   - [Canvas]: yields the [Surface] to draw on, or nil when unavailable
//   - [Viewport]: current size plus a resize subscription
//   - [ThemeFunc]: read-only "dark or light" query, polled once per frame
//   - [Scheduler]: frame ticks for [Field.Run]
//
// # Example
//
//	f, err := field.New(canvas, viewport, themes.Get, field.WithSeed(1))
//	if err != nil {
//	    return err
//	}
//	go f.Run(ctx, field.NewTicker(60))
//
// # Failure
//
// The only failure is [ErrMissingResource]. Hosts that treat the field as
// optional decoration use [Mount], which logs and returns a nil *Field whose
// methods are all no-ops.
//
// # Thread Safety
//
// A Field has exactly one mutator: the goroutine calling [Field.Frame],
// [Field.Step] or [Field.Run]. [Field.Resize] may be called from any
// goroutine; new dimensions take effect at the start of the next frame.
package field
