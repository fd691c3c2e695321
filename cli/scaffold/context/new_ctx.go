package scaffold_ctx

// NewCtx contains information for scaffolding new instant answers.
type NewCtx struct {
	// SetName is a template set to generate.
	SetName string
	// AnswerName is the instant answer name to create.
	AnswerName string
	// WorkDir is duckgen launch working directory.
	WorkDir string
	// RepoPath is a configured instant answer repository path. When empty,
	// the repository enclosing WorkDir is used.
	RepoPath string
	// TemplateSearchPaths is a set of paths to search for template files.
	TemplateSearchPaths []string
	// VarsFromCli template variables definitions provided in command line.
	VarsFromCli []string
	// NonInteractive if set, disables user interaction. Missing values
	// fail scaffolding instead of prompting.
	NonInteractive bool
}
