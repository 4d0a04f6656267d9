// Package config loads and validates photofix configuration from TOML.
//
// Configuration covers the session directory (transient feed state), the
// download directory, simulated-processing timing, feed seeding, and log
// output. Load resolves ~ paths, applies defaults for missing keys, and
// rejects unusable values up front so later packages can trust the config.
package config
