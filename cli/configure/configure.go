package configure

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/apex/log"
	"github.com/mitchellh/mapstructure"
	"github.com/zeroclickinfo/duckgen/cli/cmdcontext"
	"github.com/zeroclickinfo/duckgen/cli/config"
	"github.com/zeroclickinfo/duckgen/cli/util"
)

const (
	// ConfigName is the name of the duckgen configuration file.
	ConfigName = "duckgen.yaml"
	// TemplatesPath is a default user templates directory name.
	TemplatesPath = "templates"
)

// GetDefaultCliOpts returns `CliOpts` filled with default values.
func GetDefaultCliOpts() *config.CliOpts {
	templates := config.TemplatesOpts{
		Path: config.NewSingleOrArray(TemplatesPath),
	}
	repo := config.RepoOpts{
		Path: "",
	}
	return &config.CliOpts{
		Templates: &templates,
		Repo:      &repo,
	}
}

// adjustPathWithConfigLocation adjust provided filePath with configDir.
// Absolute filePath is returned as is. Relative filePath is calculated
// relative to configDir.
func adjustPathWithConfigLocation(filePath, configDir string) (string, error) {
	if filePath == "" {
		return "", nil
	}
	return util.JoinAbspath(configDir, filePath)
}

// updateCliOpts resolves all paths in config relative to the specified
// location, and sets uninitialized values to defaults.
func updateCliOpts(cliOpts *config.CliOpts, configDir string) error {
	var err error

	if cliOpts.Templates == nil {
		cliOpts.Templates = &config.TemplatesOpts{}
	}
	if len(cliOpts.Templates.Path) == 0 {
		cliOpts.Templates.Path = config.NewSingleOrArray(TemplatesPath)
	}
	for i := range cliOpts.Templates.Path {
		if cliOpts.Templates.Path[i], err = adjustPathWithConfigLocation(
			cliOpts.Templates.Path[i], configDir); err != nil {
			return err
		}
	}

	if cliOpts.Repo == nil {
		cliOpts.Repo = &config.RepoOpts{}
	}
	if cliOpts.Repo.Path, err = adjustPathWithConfigLocation(cliOpts.Repo.Path,
		configDir); err != nil {
		return err
	}

	return nil
}

func decodeStringAsArrayField(from, to reflect.Type, value interface{}) (
	interface{}, error,
) {
	if to != reflect.TypeOf(config.FieldStringArrayType{}) || from.Kind() != reflect.String {
		return value, nil
	}
	return []string{value.(string)}, nil
}

func decodeConfig(input map[string]any, cfg *config.Config) error {
	decoderConfig := mapstructure.DecoderConfig{
		Result:     cfg,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(decodeStringAsArrayField),
	}
	decoder, err := mapstructure.NewDecoder(&decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// GetCliOpts returns duckgen options from the config file located at path
// configurePath. The second return value is the path to the used config
// file, empty if there is none.
func GetCliOpts(configurePath string) (*config.CliOpts, string, error) {
	cfg := config.Config{CliConfig: GetDefaultCliOpts()}

	configPath, err := util.GetYamlFileName(configurePath, true)
	if err == nil {
		if configPath, err = filepath.Abs(configPath); err != nil {
			return nil, "", fmt.Errorf("cannot determine config file path: %s", err)
		}
		rawConfigOpts, err := util.ParseYAML(configPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to parse configuration: %s", err)
		}

		if err := decodeConfig(rawConfigOpts, &cfg); err != nil {
			return nil, "", fmt.Errorf("failed to parse configuration: %s", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, "", fmt.Errorf("failed to get access to configuration file: %s", err)
	} else {
		configPath = ""
	}

	configDir := ""
	if configPath == "" {
		if configDir, err = os.Getwd(); err != nil {
			return cfg.CliConfig, configPath, err
		}
	} else {
		if configDir, err = filepath.Abs(filepath.Dir(configPath)); err != nil {
			return cfg.CliConfig, configPath, err
		}
	}

	if err = updateCliOpts(cfg.CliConfig, configDir); err != nil {
		return cfg.CliConfig, "", err
	}

	return cfg.CliConfig, configPath, nil
}

// Cli performs initial CLI configuration.
func Cli(cmdCtx *cmdcontext.CmdCtx) error {
	if cmdCtx.Cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	var err error
	if cmdCtx.Cli.ConfigPath != "" {
		if _, err = os.Stat(cmdCtx.Cli.ConfigPath); err != nil {
			return fmt.Errorf("specified path to the configuration file is invalid: %s", err)
		}
		if cmdCtx.Cli.ConfigPath, err = filepath.Abs(cmdCtx.Cli.ConfigPath); err != nil {
			return fmt.Errorf("failed to get configuration file path: %s", err)
		}
	} else {
		// We start looking for config in the current directory,
		// going up to the root directory.
		if cmdCtx.Cli.ConfigPath, err = getConfigPath(ConfigName); err != nil {
			return fmt.Errorf("failed to get config: %s", err)
		}
	}

	if cmdCtx.Cli.ConfigPath != "" {
		log.Debugf("Using configuration file %q", cmdCtx.Cli.ConfigPath)
		cmdCtx.Cli.ConfigDir = filepath.Dir(cmdCtx.Cli.ConfigPath)
	} else {
		if cmdCtx.Cli.ConfigDir, err = os.Getwd(); err != nil {
			return err
		}
	}

	return nil
}

// getConfigPath looks for the path to the duckgen.yaml configuration file,
// looking through all directories from the current one to the root.
func getConfigPath(configName string) (string, error) {
	curDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to detect current directory: %s", err)
	}

	for curDir != "/" {
		configPath, err := util.GetYamlFileName(filepath.Join(curDir, configName), true)
		if err == nil {
			return configPath, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}

		curDir = filepath.Dir(curDir)
	}

	return "", nil
}
