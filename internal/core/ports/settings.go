package ports

// Settings exposes host configuration the resolver treats as opaque.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type Settings interface {
	// ToolCachePath returns the directory the host uses to cache its own
	// tool dependencies, for the given working directory. The directory
	// is not required to exist yet.
	ToolCachePath(workdir string) string
}
