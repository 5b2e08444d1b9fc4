package interceptor

// Config controls how trace lines are emitted.
type Config struct {
	// StructuredFields adds "type", "method" and, on the end line,
	// "elapsed_ms" fields to every trace entry, next to the message.
	// The message text is identical either way.
	StructuredFields bool `yaml:"structured_fields"`
}
