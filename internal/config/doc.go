// Package config loads inputframe configuration.
//
// Settings come from three layers, later layers overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file, chosen by extension
//  3. INPUTFRAME_* environment variables
//
// Environment variable names map to setting paths by splitting on
// underscores: the first part names the section and the rest form the
// camelCase setting name, so INPUTFRAME_LOOP_FRAME_RATE sets
// loop.frameRate. INPUTFRAME_LOG_LEVEL is accepted as an alias for
// logging.level.
//
// Example TOML:
//
//	[logging]
//	level = "debug"
//
//	[loop]
//	frameRate = 60
//
//	[terminal]
//	releaseAfter = "550ms"
//
//	[script]
//	path = "frame.lua"
//	watch = true
package config
