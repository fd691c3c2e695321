package init

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/zeroclickinfo/duckgen/cli/config"
	"github.com/zeroclickinfo/duckgen/cli/configure"
	"github.com/zeroclickinfo/duckgen/cli/repository"
	"github.com/zeroclickinfo/duckgen/cli/util"
)

const (
	defaultDirPermissions = os.FileMode(0750)
)

// InitCtx contains information for duckgen config creation.
type InitCtx struct {
	// SkipRepo, if set, disables instant answer repository detection,
	// so init does not record the repository location in the config.
	SkipRepo bool
	// ForceMode, if set, duckgen config is re-written without a question.
	ForceMode bool
	// reader to use for reading user input.
	reader io.Reader
}

// createDirectories creates directories specified in dirList.
func createDirectories(dirList []string) error {
	for _, dirName := range dirList {
		if dirName == "" {
			continue
		}
		if err := util.CreateDirectory(dirName, defaultDirPermissions); err != nil {
			return err
		}
		log.Debugf("'%s' directory is created.", dirName)
	}
	return nil
}

// generateDuckgenConfig generates the config in configPath, recording
// repoPath as the repository location if it is not empty. The default
// user templates directory is created next to the config.
func generateDuckgenConfig(configPath string, repoPath string) error {
	cfg := config.Config{CliConfig: configure.GetDefaultCliOpts()}
	cfg.CliConfig.Repo.Path = repoPath

	if err := util.WriteYaml(configPath, cfg); err != nil {
		return err
	}

	directoriesToCreate := []string{}
	directoriesToCreate = append(directoriesToCreate, cfg.CliConfig.Templates.Path...)

	return createDirectories(directoriesToCreate)
}

// FillCtx initializes init context.
func FillCtx(initCtx *InitCtx) {
	initCtx.reader = os.Stdin
}

// checkExistingConfig checks the duckgen config for existence and asks for
// confirmation to overwrite. Returns the config file name to write, empty
// if init is cancelled. In case of error, non-nil error is returned as
// the second value.
func checkExistingConfig(initCtx *InitCtx) (string, error) {
	configName, err := util.GetYamlFileName(configure.ConfigName, false)
	if err != nil {
		return "", err
	}
	if configName == "" {
		// No existing config, create one with the default name.
		return configure.ConfigName, nil
	}

	if !initCtx.ForceMode {
		confirmed, err := util.AskConfirm(initCtx.reader,
			fmt.Sprintf("%s already exists. Overwrite?", configName))
		if err != nil {
			return "", err
		}
		if !confirmed {
			log.Info("Init is cancelled by user.")
			return "", nil
		}
	}

	if err = os.Remove(configName); err != nil {
		return "", err
	}
	return configName, nil
}

// Run creates duckgen config for the repository in current dir.
func Run(initCtx *InitCtx) error {
	if initCtx.reader == nil {
		initCtx.reader = os.Stdin
	}

	configName, err := checkExistingConfig(initCtx)
	if configName == "" {
		return err
	}

	repoPath := ""
	if !initCtx.SkipRepo {
		if repo, err := repository.DetectCwd(); err == nil {
			log.Infof("Found %s repository '%s'", repo.Kind, repo.Root)
			repoPath = repo.Root
		} else {
			log.Debugf("No instant answer repository found: %s", err)
		}
	}

	if err := generateDuckgenConfig(configName, repoPath); err != nil {
		return err
	}

	log.Infof("Configuration is written to '%s'", configName)

	return nil
}
