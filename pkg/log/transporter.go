package log

// Transporter is a log destination.
type Transporter interface {
	// Name identifies the transporter in fallback error output.
	Name() string

	// Write delivers one entry.
	Write(entry Entry) error

	// Close releases resources. Write must not be called afterwards.
	Close() error
}
