// Package script runs Lua frame scripts against input snapshots.
//
// A script is a Lua file that defines a global update function. The runner
// calls it once per frame with the frame's delta time in seconds:
//
//	function update(dt)
//	  if input.key_pressed("Space") then
//	    log.info("jump")
//	  end
//	  if input.close_requested() then
//	    app.exit()
//	  end
//	end
//
// Scripts see three modules:
//
//   - input: read-only queries against the current snapshot. Keys are named
//     by physical code ("KeyW", "w", "Escape") or, for the logical_*
//     variants, by logical value ("a", "A", "Enter"). Buttons are named
//     "left", "right", "middle", "back", "forward" or "otherN".
//   - log: debug, info, warn and error write to the host logger.
//   - app: exit asks the host to stop after the current frame.
//
// Only the base, table, string and math libraries are opened. File
// loading functions are removed and print goes to the host logger.
package script
