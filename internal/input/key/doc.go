// Package key defines keyboard identities for the input system.
//
// A key press is identified two independent ways:
//
//   - Code: the physical, layout-independent key position ("KeyW" is the
//     key left of "KeyE" on any layout). Use codes for game-style controls.
//   - Logical: the layout-dependent value the platform resolved for the
//     press, either a character ("a", "A", "ж") or a named key (Enter,
//     Escape). Use logical values for text-like input.
//
// Both identities are tracked separately by the state table, so a query by
// code and a query by logical value can disagree when a platform reports them
// inconsistently. This is accepted, not corrected.
//
// # Names
//
// Codes and logical values can be written as strings, which is how scripts
// and configuration refer to them:
//
//   - Codes: "KeyW", "w", "Digit1", "1", "Escape", "Esc", "ShiftLeft", "F5"
//   - Logical: "a", "A", "Enter", "ArrowUp", "Space"
package key
