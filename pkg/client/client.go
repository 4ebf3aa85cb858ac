// Package client provides the repository-facing facade over the git CLI. It
// composes the command, executor and parser layers: typed parameters are
// turned into an argument vector, executed against a working directory, and
// the captured output is translated into records or a typed error.
package client

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=client.go -destination=mocks/client.gen.go -package=mocks

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/lerenn/gitwrap/pkg/executor"
	"github.com/lerenn/gitwrap/pkg/logger"
	"github.com/lerenn/gitwrap/pkg/parser"
)

// Client interface provides Git repository operations. Repositories are
// identified by their working-directory path on every call; no state is
// cached between calls. Operations never retry: every failure is surfaced
// with the operation, argv and stderr attached.
type Client interface {
	// Init initializes a new repository. It fails with ErrPathConflict when
	// the path already contains one, instead of letting git silently
	// reinitialize.
	Init(ctx context.Context, params InitParams) error

	// Clone clones a repository to the target path. A non-empty destination
	// that is not already a repository fails with ErrPathConflict.
	Clone(ctx context.Context, params CloneParams) error

	// Open validates that repoPath belongs to an existing repository and
	// returns its resolved top-level path.
	Open(ctx context.Context, repoPath string) (string, error)

	// Add adds files to the staging area.
	Add(ctx context.Context, repoPath string, params AddParams) error

	// Remove removes files from the working tree and the index.
	Remove(ctx context.Context, repoPath string, params RemoveParams) error

	// Move moves or renames a tracked file.
	Move(ctx context.Context, repoPath string, params MoveParams) error

	// Commit records staged changes. With nothing staged it fails with
	// ErrNothingToCommit; the staging area is never pre-checked separately.
	Commit(ctx context.Context, repoPath string, params CommitParams) error

	// Tag creates a lightweight or annotated tag.
	Tag(ctx context.Context, repoPath string, params TagParams) error

	// Branch creates a branch, optionally from a start point.
	Branch(ctx context.Context, repoPath, name, startPoint string) error

	// Switch checks out a branch, optionally creating it first.
	Switch(ctx context.Context, repoPath string, params SwitchParams) error

	// Pull fetches from a remote and integrates into the current branch.
	Pull(ctx context.Context, repoPath string, params PullParams) error

	// Push updates a remote with local commits.
	Push(ctx context.Context, repoPath string, params PushParams) error

	// ConfigGet reads a configuration value in the given scope. A missing
	// key fails with ErrOperationRejected.
	ConfigGet(ctx context.Context, repoPath, key string, scope Scope) (string, error)

	// ConfigSet writes a configuration value in the given scope.
	ConfigSet(ctx context.Context, repoPath, key, value string, scope Scope) error

	// ListBranches lists local branches. Results are re-queried on every
	// call, never cached.
	ListBranches(ctx context.Context, repoPath string) ([]parser.BranchRecord, error)

	// ListTags lists tags with their target commits.
	ListTags(ctx context.Context, repoPath string) ([]parser.TagRecord, error)

	// ListCommits returns a lazy iterator over the commit log, newest
	// first. An empty repository yields an exhausted iterator, not an
	// error.
	ListCommits(ctx context.Context, repoPath string, params LogParams) (*parser.CommitIter, error)

	// ActiveBranch returns the currently checked out branch name.
	ActiveBranch(ctx context.Context, repoPath string) (string, error)
}

type realClient struct {
	executor executor.Executor
	logger   logger.Logger
}

type clientOptions struct {
	gitPath  string
	executor executor.Executor
	logger   logger.Logger
}

// Option configures the client.
type Option func(*clientOptions)

// WithGitPath sets the git binary path instead of resolving it from PATH.
func WithGitPath(path string) Option {
	return func(o *clientOptions) {
		o.gitPath = path
	}
}

// WithExecutor replaces the process executor, mainly for tests.
func WithExecutor(e executor.Executor) Option {
	return func(o *clientOptions) {
		o.executor = e
	}
}

// WithLogger sets the logger used to trace executed commands.
func WithLogger(l logger.Logger) Option {
	return func(o *clientOptions) {
		o.logger = l
	}
}

// NewClient creates a new Client instance. The git binary location is
// resolved once here and injected into the executor, never looked up per
// call; a missing binary fails construction with ErrExecutionFailed.
func NewClient(opts ...Option) (Client, error) {
	options := clientOptions{
		logger: logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	if options.executor == nil {
		gitPath := options.gitPath
		if gitPath == "" {
			resolved, err := exec.LookPath("git")
			if err != nil {
				return nil, fmt.Errorf("%w: %v", executor.ErrExecutionFailed, err)
			}
			gitPath = resolved
		}
		options.executor = executor.New(gitPath, executor.WithLogger(options.logger))
	}

	return &realClient{
		executor: options.executor,
		logger:   options.logger,
	}, nil
}
