package command

// Scope selects which git configuration file an operation targets. Local and
// global scopes are mutually exclusive by construction.
type Scope string

// Supported configuration scopes.
const (
	// ScopeLocal targets the per-repository configuration. It is the
	// default when no scope is given.
	ScopeLocal Scope = "local"
	// ScopeGlobal targets the per-user configuration.
	ScopeGlobal Scope = "global"
)

// InitParams contains parameters for Init.
type InitParams struct {
	Path          string
	Bare          bool
	InitialBranch string
}

// CloneParams contains parameters for Clone.
type CloneParams struct {
	URL        string
	TargetPath string
	Branch     string
	Depth      int
}

// AddParams contains parameters for Add.
type AddParams struct {
	Paths  []string
	All    bool
	Update bool
}

// RemoveParams contains parameters for Remove.
type RemoveParams struct {
	Paths     []string
	Recursive bool
	Cached    bool
	Force     bool
}

// MoveParams contains parameters for Move.
type MoveParams struct {
	Source      string
	Destination string
	Force       bool
}

// CommitParams contains parameters for Commit.
type CommitParams struct {
	Message string
	Amend   bool
	All     bool
}

// TagParams contains parameters for Tag.
type TagParams struct {
	Name      string
	Target    string
	Annotated bool
	Message   string
}

// SwitchParams contains parameters for Checkout.
type SwitchParams struct {
	Branch string
	Create bool
}

// PullParams contains parameters for Pull.
type PullParams struct {
	Remote  string
	Refspec string
}

// PushParams contains parameters for Push.
type PushParams struct {
	Remote      string
	Refspec     string
	SetUpstream bool
	Force       bool
}

// LogParams contains parameters for Log. Reference and All are mutually
// exclusive; when both are zero the log starts at HEAD.
type LogParams struct {
	Reference string
	MaxCount  int
	All       bool
}
