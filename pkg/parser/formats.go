package parser

// The command layer pins these format strings on every introspection
// invocation, so the parser only ever depends on output shapes this module
// controls, never on git's human-readable listings.
const (
	// fieldSeparator is the ASCII unit separator; git emits it for %1f in
	// ref formats and %x1f in log pretty formats.
	fieldSeparator = "\x1f"

	// recordSeparator is the ASCII record separator terminating each log
	// entry, so multi-line commit messages cannot be confused with record
	// boundaries.
	recordSeparator = "\x1e"

	// BranchListFormat is passed to `git branch --list --format`.
	BranchListFormat = "%(refname:short)%1f%(HEAD)%1f%(upstream:short)"

	// TagListFormat is passed to `git for-each-ref refs/tags --format`. The
	// conditional dereferences annotated tags to the commit they point to.
	TagListFormat = "%(refname:short)%1f%(if)%(object)%(then)%(object)%(else)%(objectname)%(end)"

	// CommitLogFormat is passed to `git log --pretty=format:`. %B keeps
	// multi-line messages intact.
	CommitLogFormat = "%H%x1f%P%x1f%aN%x1f%aE%x1f%ad%x1f%B%x1e"

	// CommitDateFormat is passed to `git log --date=format:`.
	CommitDateFormat = "%Y-%m-%d %H:%M:%S"

	// commitDateLayout is the Go layout equivalent of CommitDateFormat.
	commitDateLayout = "2006-01-02 15:04:05"
)

const (
	branchFieldCount = 3
	tagFieldCount    = 2
	commitFieldCount = 6
)
