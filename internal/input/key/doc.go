// Package key defines the normalized key event type fed into the command
// engine. Hosts translate their native keyboard events into Event values;
// the engine never sees backend-specific types.
package key
