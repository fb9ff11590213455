package ports

// Watcher monitors a single file for changes so it can be reloaded.
// Only one Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring path. onChange is called with the absolute
	// path of the file each time it is written, created, replaced or
	// removed. The callback may be invoked from any goroutine. Returns an
	// error if the parent directory cannot be watched.
	Watch(path string, onChange func(path string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
