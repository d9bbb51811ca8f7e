package engine

// DenestRequest represents a request to move nested files up to the
// working directory.
type DenestRequest struct {
	// WorkingDir is the directory to operate on; relative paths resolve against CWD
	WorkingDir string

	// CWD is the process working directory, resolved once by the caller
	CWD string

	// Execute performs the moves; false is a dry run
	Execute bool

	// Extensions limits candidates to these extensions (empty keeps all)
	Extensions []string

	// Depth is the maximum search depth (0 = unlimited)
	Depth int

	// Cleanup removes directories left empty after the moves
	Cleanup bool

	// IncludeHidden makes hidden files and directories candidates
	IncludeHidden bool

	// Exclude holds glob patterns matched against working-dir-relative paths
	Exclude []string

	// JournalDir enables a move journal written to this directory
	JournalDir string
}

// RemprefRequest represents a request to strip a fixed-length prefix from
// filenames.
type RemprefRequest struct {
	// WorkingDir is the directory to operate on; relative paths resolve against CWD
	WorkingDir string

	// CWD is the process working directory, resolved once by the caller
	CWD string

	// Execute performs the renames; false is a dry run
	Execute bool

	// PrefixLength is the number of characters to strip (must be >= 1)
	PrefixLength int

	// Extensions limits candidates to these extensions (empty keeps all)
	Extensions []string

	// Recursive descends into subdirectories
	Recursive bool

	// Depth is the maximum search depth when Recursive (0 = unlimited)
	Depth int

	// IncludeHidden makes hidden files and directories candidates
	IncludeHidden bool

	// Exclude holds glob patterns matched against working-dir-relative paths
	Exclude []string

	// OuterScope selects the bystander set: "root" or "tree" (default)
	OuterScope string

	// JournalDir enables a rename journal written to this directory
	JournalDir string
}
