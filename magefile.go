//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	goPackageName = "github.com/zeroclickinfo/duckgen/cli"

	asmflags = "all=-trimpath=${PWD}"
	gcflags  = "all=-trimpath=${PWD}"

	packagePath = "./cli"
)

var (
	ldflags = []string{
		"-X ${PACKAGE}/version.gitTag=${GIT_TAG}",
		"-X ${PACKAGE}/version.gitCommit=${GIT_COMMIT}",
		"-X ${PACKAGE}/version.versionLabel=${VERSION_LABEL}",
	}

	goExecutableName      = "go"
	duckgenExecutableName = "duckgen"

	generateModePath = filepath.Join(packagePath, "codegen", "generate_code.go")

	Aliases = map[string]interface{}{
		"build": Build.Release,
		"unit":  Unit.Default,
		"lint":  Lint.Golang,
	}
)

func init() {
	var err error

	if specifiedGoExe := os.Getenv("GOEXE"); specifiedGoExe != "" {
		goExecutableName = specifiedGoExe
	}

	if specifiedDuckgenExe := os.Getenv("DUCKGENEXE"); specifiedDuckgenExe != "" {
		duckgenExecutableName = specifiedDuckgenExe
	} else {
		if duckgenExecutableName, err = filepath.Abs(duckgenExecutableName); err != nil {
			panic(err)
		}
	}

	// Use Go modules even if the sources are placed under GOPATH.
	os.Setenv("GO111MODULE", "on")
}

type optsUpdater func(args []string) ([]string, error)

// appendFlags appends the passed flags to the build arguments.
func appendFlags(flags ...string) optsUpdater {
	return func(args []string) ([]string, error) {
		return append(args, flags...), nil
	}
}

// appendLdFlags appends linker flags to the build arguments.
func appendLdFlags(flags ...string) optsUpdater {
	return func(args []string) ([]string, error) {
		buildLdflags := make([]string, len(ldflags))
		copy(buildLdflags, ldflags)
		buildLdflags = append(buildLdflags, flags...)

		return append(append(args, "-ldflags"), strings.Join(buildLdflags, " ")), nil
	}
}

// buildDuckgen builds the duckgen executable.
func buildDuckgen(argUpdaters ...optsUpdater) error {
	mg.Deps(GenerateGoCode)

	args := []string{"build", "-o", duckgenExecutableName}

	var err error
	for _, updateArguments := range argUpdaters {
		if args, err = updateArguments(args); err != nil {
			return err
		}
	}

	args = append(args,
		"-asmflags", asmflags,
		"-gcflags", gcflags,
		packagePath)

	if err = sh.RunWith(getBuildEnvironment(), goExecutableName, args...); err != nil {
		return fmt.Errorf("failed to build duckgen executable: %s", err)
	}

	return nil
}

type Build mg.Namespace

// Release builds duckgen without debug info.
func (Build) Release() error {
	fmt.Println("Building release duckgen...")

	return buildDuckgen(appendLdFlags("-s", "-w"))
}

// Debug builds duckgen with debug info.
func (Build) Debug() error {
	fmt.Println("Building debug duckgen...")

	return buildDuckgen(appendLdFlags())
}

// Coverage builds duckgen with coverage instrumentation.
func (Build) Coverage() error {
	fmt.Println("Building duckgen with coverage...")

	if err := buildDuckgen(appendFlags("-cover"), appendLdFlags("-s", "-w")); err != nil {
		return err
	}

	fmt.Println(`Set coverage data destination directory (must exist) and run duckgen:
	GOCOVERDIR=./<coverage_dest_dir> duckgen <opts>`)

	return nil
}

type Lint mg.Namespace

// Golang runs golangci-lint over the module.
func (Lint) Golang() error {
	fmt.Println("Running golangci-lint...")

	mg.Deps(GenerateGoCode)

	return sh.RunV("golangci-lint", "run")
}

type Unit mg.Namespace

func runUnitTests(flags []string) error {
	mg.Deps(GenerateGoCode)

	args := []string{"test"}
	if mg.Verbose() {
		args = append(args, "-v")
	}
	args = append(args, "./...")
	args = append(args, flags...)

	return sh.RunV(goExecutableName, args...)
}

// Default runs unit tests.
func (Unit) Default() error {
	fmt.Println("Running unit tests...")

	return runUnitTests([]string{})
}

// Coverage runs unit tests with code coverage collection.
func (Unit) Coverage() error {
	fmt.Println("Running unit tests with code coverage...")

	currentDir, err := os.Getwd()
	if err != nil {
		return err
	}

	coverDir := filepath.Join(currentDir, "coverage", "unit")
	if err = os.MkdirAll(coverDir, 0750); err != nil {
		return err
	}

	err = runUnitTests([]string{
		"-cover",
		"-args", fmt.Sprintf("-test.gocoverdir=%s", coverDir),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Coverage data is saved to %q\n", coverDir)

	return nil
}

// Test runs the linter and the unit tests.
func Test() {
	mg.SerialDeps(Lint.Golang, Unit.Default)
}

// Clean removes build artifacts.
func Clean() {
	fmt.Println("Cleaning directory...")

	os.Remove(duckgenExecutableName)
}

// GenerateGoCode generates the embedded template mode tables.
func GenerateGoCode() error {
	return sh.RunWith(getBuildEnvironment(), goExecutableName, "run", generateModePath)
}

// getBuildEnvironment returns a map with the build environment variables.
func getBuildEnvironment() map[string]string {
	var err error

	var currentDir string
	var gitTag string
	var gitCommit string

	if currentDir, err = os.Getwd(); err != nil {
		log.Warnf("Failed to get current directory: %s", err)
	}

	if _, err := exec.LookPath("git"); err == nil {
		gitTag, _ = sh.Output("git", "describe", "--tags")
		gitCommit, _ = sh.Output("git", "rev-parse", "--short", "HEAD")
	}

	return map[string]string{
		"PACKAGE":       goPackageName,
		"GIT_TAG":       gitTag,
		"GIT_COMMIT":    gitCommit,
		"VERSION_LABEL": os.Getenv("VERSION_LABEL"),
		"PWD":           currentDir,
		"CGO_ENABLED":   "0",
	}
}
