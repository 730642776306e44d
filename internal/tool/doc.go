// Package tool models hand tools as stateful entities that wear down with use.
//
// Every variant embeds Base, which owns the shared durability contract:
//   - Degrade subtracts wear and floors durability at zero
//   - CheckDurability reports whether durability is above zero
//   - Repair restores durability to full
//
// Destructive actions check durability first and return a *BrokenError
// without touching state when the tool is broken. A successful destructive
// action degrades exactly once, except Hammer.Strike which degrades once per
// individual strike. Configuration actions (bit, blade, tip, size, speed,
// toggles) never degrade.
//
// The package performs no I/O. Actions return Report values whose Countdown
// ticks are rendered by the caller, and randomness comes from an injected
// utils.Rand.
package tool
