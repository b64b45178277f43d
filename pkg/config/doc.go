// Package config loads datename's runtime configuration.
//
// Values are layered, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file: $DATENAME_CONFIG, or datename/config.toml on
//     the XDG config search path
//  3. DATENAME_* environment variables (DATENAME_LOG_LEVEL -> log.level)
//  4. command line flags that were explicitly set
//
// The timestamp pattern used for new names is deliberately absent: it is
// fixed and lives in pkg/renamer.
package config
