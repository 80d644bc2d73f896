// Package bubblepop is the animated bubble field behind a personal landing
// page, rendered with [Ebitengine].
//
// Labeled bubbles rise from below the viewport on a fixed cadence. Each one
// sways, wobbles and pulses while it floats, fades out when it reaches the
// header band or leaves the top of the screen, and pops when it is clicked,
// touched or activated from the keyboard. When a pop animation completes
// the page navigates to the route bound to that bubble's label.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg := bubblepop.DefaultConfig()
//	session, err := bubblepop.NewSession(cfg, bubblepop.SessionOptions{
//		Navigator: bubblepop.NewPlatformNavigator(cfg),
//		Header:    bubblepop.NewPlatformHeader(cfg),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	bubblepop.Run(session, bubblepop.RunConfig{
//		Title: "bubbles", Width: 1024, Height: 768,
//	})
//
// For full control, drive a [Session] yourself: call [Session.Resize] when
// the viewport changes, [Session.Tick] once per frame with a [Surface], and
// feed pointer and keyboard input through [Session.PointerMove],
// [Session.PointerDown], [Session.Touch] and [Session.Controls].
//
// # Routes
//
// Labels map to routes through a [RouteTable]. A label marked as a surprise
// resolves to one of the other routes, chosen uniformly at random each time
// it is popped.
//
// # Rendering
//
// Bubbles draw through the [Surface] interface, a small canvas-style API
// with a transform stack, global alpha and gradient paints. [ImageSurface]
// implements it on top of an [ebiten.Image] using triangle meshes.
//
// # Configuration
//
// [Load] reads bubblepop/config.toml from the XDG config directory and
// applies BUBBLEPOP_* environment overrides on top of [DefaultConfig].
//
// # Automated checks
//
// A [Script] drives injected input and labeled PNG screenshots frame by
// frame, so visual regressions can be checked without a person at the
// keyboard.
//
// [Ebitengine]: https://ebitengine.org
package bubblepop
