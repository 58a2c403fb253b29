// Package config loads and watches the engine configuration.
//
// Configuration lives in a single TOML or YAML file, chosen by extension.
// A missing file is not an error: the defaults apply. The Store holds the
// current snapshot, lets components subscribe to changes, and hot-applies
// edits to the file through an fsnotify watcher so the exit sequence and
// its timeout can change without a restart.
package config
