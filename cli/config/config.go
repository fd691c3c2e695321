package config

// Config is used to store all information from the
// duckgen.yaml configuration file.
type Config struct {
	CliConfig *CliOpts `mapstructure:"duckgen" yaml:"duckgen"`
}

// duckgen.yaml file format:
// duckgen:
//   templates:
//     path: path/to/templates (or a list of paths)
//   repo:
//     path: path/to/instant answer repository

// TemplatesOpts contains customization options for answer templates.
type TemplatesOpts struct {
	// Path is the directory (or directories) to search user templates in.
	Path FieldStringArrayType `mapstructure:"path" yaml:"path"`
}

// RepoOpts stores the location of the instant answer repository.
type RepoOpts struct {
	// Path is the repository root. When empty, the repository is
	// detected by walking up from the current working directory.
	Path string `mapstructure:"path" yaml:"path"`
}

// CliOpts stores options from the duckgen.yaml configuration file.
type CliOpts struct {
	// Templates options.
	Templates *TemplatesOpts `mapstructure:"templates" yaml:"templates,omitempty"`
	// Repo options.
	Repo *RepoOpts `mapstructure:"repo" yaml:"repo,omitempty"`
}
