package util

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// ArgError represents command line arguments error.
type ArgError struct {
	msg string
}

// Error returns error message.
func (e ArgError) Error() string {
	return e.msg
}

// NewArgError creates and returns new argument error.
func NewArgError(text string) error {
	return &ArgError{text}
}

// VersionFunc is a type of function that return
// string with current duckgen version.
type VersionFunc func(bool, bool) string

// InternalError shows error information, version of duckgen and call stack.
func InternalError(format string, f VersionFunc, err ...interface{}) error {
	errorFmt := `whoops! It looks like something is wrong with this version of duckgen.
Error: %s
Version: %s
Stacktrace:
%s`
	version := f(false, false)

	return fmt.Errorf(errorFmt, fmt.Sprintf(format, err...), version, debug.Stack())
}

// GetFileContentBytes returns file content as a bytes slice.
func GetFileContentBytes(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	fileContent, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return fileContent, nil
}

// JoinPaths concat paths.
func JoinPaths(paths ...string) string {
	path := ""
	for _, pathPart := range paths {
		if filepath.IsAbs(pathPart) {
			path = pathPart
		} else {
			path = filepath.Join(path, pathPart)
		}
	}

	return path
}

// JoinAbspath concat paths and makes the resulting path absolute.
func JoinAbspath(paths ...string) (string, error) {
	var err error
	path := JoinPaths(paths...)
	if path, err = filepath.Abs(path); err != nil {
		return "", fmt.Errorf("failed to get absolute path: %s", err)
	}

	return path, nil
}

// ParseYAML parse yaml file at specified path.
func ParseYAML(path string) (map[string]interface{}, error) {
	fileContent, err := GetFileContentBytes(path)
	if err != nil {
		return nil, fmt.Errorf(`failed to read "%s" file: %s`, path, err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(fileContent, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %s", err)
	}

	return raw, nil
}

// WriteYaml writes YAML encoding of object o to fileName.
func WriteYaml(fileName string, o interface{}) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Warnf("Failed to close a file '%s': %s", file.Name(), err)
		}
	}()

	if err = yaml.NewEncoder(file).Encode(o); err != nil {
		return err
	}
	return nil
}

// GetYamlFileName searches for a file with .yaml or .yml extension next to
// fileName. An error is returned if both variants exist.
func GetYamlFileName(fileName string, mustExist bool) (string, error) {
	fileBaseName := fileName
	switch filepath.Ext(fileName) {
	case ".yaml":
		fileBaseName = strings.TrimSuffix(fileName, ".yaml")
	case ".yml":
		fileBaseName = strings.TrimSuffix(fileName, ".yml")
	case "":
		fileBaseName = fileName
	default:
		return "", fmt.Errorf("provided file '%s' has no .yaml/.yml extension", fileName)
	}

	foundYamlFiles := []string{}
	foundFiles, err := filepath.Glob(fmt.Sprintf("%s.y*ml", fileBaseName))
	if err != nil {
		return "", err
	}
	for _, fileName := range foundFiles {
		if !IsRegularFile(fileName) {
			continue
		}
		switch filepath.Ext(fileName) {
		case ".yaml", ".yml":
			foundYamlFiles = append(foundYamlFiles, fileName)
		}
	}

	if len(foundYamlFiles) > 1 {
		return "", fmt.Errorf("more than one YAML files are found:\n%s\nAmbiguous selection",
			strings.Join(foundYamlFiles, ", "))
	} else if len(foundYamlFiles) == 1 {
		return foundYamlFiles[0], nil
	} else if !mustExist {
		return "", nil
	}

	return "", os.ErrNotExist
}

// AskConfirm asks the user for confirmation and returns true if yes.
func AskConfirm(ioReader io.Reader, question string) (bool, error) {
	reader := bufio.NewReader(ioReader)

	for {
		fmt.Printf("%s [y/n]: ", question)

		resp, err := reader.ReadString('\n')
		resp = strings.ToLower(strings.TrimSpace(resp))
		if err != nil {
			return false, err
		}

		if resp == "y" || resp == "yes" {
			return true, nil
		}

		if resp == "n" || resp == "no" {
			return false, nil
		}
	}
}

// IsDir checks if filePath is a directory. Returns true if the directory exists.
func IsDir(filePath string) bool {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return false
	}

	return fileInfo.IsDir()
}

// IsRegularFile checks if filePath is a regular file. Returns true if the file
// exists and it is a regular file.
func IsRegularFile(filePath string) bool {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return false
	}

	return fileInfo.Mode().IsRegular()
}

// CreateDirectory create a directory with existence and error checks.
func CreateDirectory(dirName string, fileMode os.FileMode) error {
	stat, err := os.Stat(dirName)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	} else {
		if !stat.IsDir() {
			return fmt.Errorf("'%s' already exists and is not a directory", dirName)
		}
		return nil
	}
	if err = os.MkdirAll(dirName, fileMode); err != nil {
		return err
	}
	return nil
}

// Chdir changes current directory and updates PWD environment var accordingly.
// Returns a function restoring the previous working directory.
func Chdir(newPath string) (func() error, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if err = os.Chdir(newPath); err != nil {
		return nil, fmt.Errorf("failed to change directory: %s", err)
	}

	// Update PWD environment var.
	if err = os.Setenv("PWD", newPath); err != nil {
		if err = os.Chdir(cwd); err != nil {
			return nil, fmt.Errorf("failed to change directory back: %w", err)
		}
		os.Setenv("PWD", cwd) // Return PWD back.
		return nil, fmt.Errorf("failed to change PWD environment variable: %w", err)
	}

	return func() error {
		if err = os.Chdir(cwd); err != nil {
			return fmt.Errorf("failed to change directory back: %w", err)
		}
		if err = os.Setenv("PWD", cwd); err != nil {
			return fmt.Errorf("failed to change PWD environment variable: %w", err)
		}
		return nil
	}, nil
}

// FsCopyFileChangePerms copies file from the certain FS with changing perms.
func FsCopyFileChangePerms(fsys fs.FS, src, dst string, perms int) error {
	// Read data from src.
	data, err := fs.ReadFile(fsys, src)
	if err != nil {
		return err
	}
	// Write data to dst.
	return os.WriteFile(dst, data, fs.FileMode(perms))
}

// HandleCmdErr handles an error returned by command implementation.
// If received error is of an ArgError type, usage help is printed.
func HandleCmdErr(cmd *cobra.Command, err error) {
	if err != nil {
		var argError *ArgError
		if errors.As(err, &argError) {
			log.Error(argError.Error())
			cmd.Usage()
			os.Exit(1)
		}
		log.Fatalf(err.Error())
	}
}
