package ports

import "github.com/riggbuild/rigg/internal/core/domain"

// Hasher defines the interface for fingerprinting resolved file sets.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// DigestFiles computes a stable content digest over the given files.
	// The digest is independent of enumeration order.
	DigestFiles(files []domain.File) (string, error)
}
