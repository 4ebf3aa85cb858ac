package client

import "github.com/lerenn/gitwrap/pkg/command"

// Parameter types are defined by the command layer; the facade re-exports
// them so callers only import this package.
type (
	// InitParams contains parameters for Init.
	InitParams = command.InitParams
	// CloneParams contains parameters for Clone.
	CloneParams = command.CloneParams
	// AddParams contains parameters for Add.
	AddParams = command.AddParams
	// RemoveParams contains parameters for Remove.
	RemoveParams = command.RemoveParams
	// MoveParams contains parameters for Move.
	MoveParams = command.MoveParams
	// CommitParams contains parameters for Commit.
	CommitParams = command.CommitParams
	// TagParams contains parameters for Tag.
	TagParams = command.TagParams
	// SwitchParams contains parameters for Switch.
	SwitchParams = command.SwitchParams
	// PullParams contains parameters for Pull.
	PullParams = command.PullParams
	// PushParams contains parameters for Push.
	PushParams = command.PushParams
	// LogParams contains parameters for ListCommits.
	LogParams = command.LogParams
	// Scope selects the configuration file for ConfigGet/ConfigSet.
	Scope = command.Scope
)

// Configuration scopes.
const (
	// ScopeLocal targets the per-repository configuration.
	ScopeLocal = command.ScopeLocal
	// ScopeGlobal targets the per-user configuration.
	ScopeGlobal = command.ScopeGlobal
)
