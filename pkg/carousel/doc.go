// Package carousel implements a drag/swipe slide carousel engine that owns
// slide geometry, pointer and touch gesture tracking, snap-target selection
// and autoplay scheduling. It knows nothing about rendering: hosts feed it
// measurements (window width and track width) and pointer coordinates, and
// read back the track offset, the transition to apply and the indicator
// state.
//
// Offsets are expressed in pixels and measured from the first-slide
// position. Every mutation is clamped into [0, MaxOffset], so no sequence of
// commands can leave the track outside its scrollable range.
//
// Timers (autoplay, snap settle, resize debounce) are scheduled through a
// Clock and owned by the Carousel; Close cancels all of them. A drag started
// inside the carousel subscribes to a Capturer so that a release observed
// anywhere by the host still ends the drag.
package carousel
