// Package forge resolves repository shorthands (owner/repo) against code
// hosting platforms, so callers can clone without spelling out a full URL.
package forge

import (
	"context"
	"fmt"

	"github.com/lerenn/gitwrap/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// RepoReference identifies a repository on a forge.
type RepoReference struct {
	Owner string
	Name  string
	URL   string
}

// RepoInfo describes a resolved repository.
type RepoInfo struct {
	Owner         string
	Name          string
	CloneURL      string
	SSHURL        string
	DefaultBranch string
	Private       bool
}

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge
	Name() string

	// ParseRepoReference parses various repository reference formats
	ParseRepoReference(repoRef string) (*RepoReference, error)

	// GetRepositoryInfo resolves a reference to clone URLs and default branch
	GetRepositoryInfo(ctx context.Context, ref *RepoReference) (*RepoInfo, error)
}

// ManagerInterface defines the interface for forge management.
type ManagerInterface interface {
	// GetForge returns the forge implementation for the given name
	GetForge(name string) (Forge, error)
	// Resolve parses a repository reference and resolves it against the
	// first forge that accepts it
	Resolve(ctx context.Context, repoRef string) (*RepoInfo, error)
}

// Manager manages forge implementations and provides a unified interface.
type Manager struct {
	forges map[string]Forge
	logger logger.Logger
}

// NewManager creates a new forge manager with registered forge implementations.
func NewManager(logger logger.Logger) *Manager {
	m := &Manager{
		forges: make(map[string]Forge),
		logger: logger,
	}

	// Register forge implementations
	m.registerForges()

	return m
}

// registerForges registers all available forge implementations.
func (m *Manager) registerForges() {
	// Register GitHub forge
	github := NewGitHub()
	m.forges[github.Name()] = github
}

// GetForge returns the forge implementation for the given name.
func (m *Manager) GetForge(name string) (Forge, error) {
	forge, exists := m.forges[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, name)
	}
	return forge, nil
}

// Resolve parses a repository reference and resolves it against the first
// forge that accepts it.
func (m *Manager) Resolve(ctx context.Context, repoRef string) (*RepoInfo, error) {
	for _, forge := range m.forges {
		ref, err := forge.ParseRepoReference(repoRef)
		if err != nil {
			continue
		}

		m.logger.Logf("Resolving %s/%s on %s", ref.Owner, ref.Name, forge.Name())
		return forge.GetRepositoryInfo(ctx, ref)
	}
	return nil, fmt.Errorf("%w: no supported forge recognizes %q", ErrInvalidRepoRef, repoRef)
}
