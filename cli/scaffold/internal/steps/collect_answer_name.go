package steps

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/zeroclickinfo/duckgen/cli/ia"
	scaffold_ctx "github.com/zeroclickinfo/duckgen/cli/scaffold/context"
	"github.com/zeroclickinfo/duckgen/cli/scaffold/internal/iatemplate"
)

// Reader interface is used for reading user input.
type Reader interface {
	readLine() (string, error)
}

// consoleReader implements reading from console.
type consoleReader struct {
	stdinReader *bufio.Reader
}

// readLine reads line from console. New-line symbol is trimmed.
func (consoleReader consoleReader) readLine() (string, error) {
	input, err := consoleReader.stdinReader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("error getting user input: %s", err)
	}
	return strings.TrimSuffix(input, "\n"), nil
}

// NewConsoleReader create new console reader.
func NewConsoleReader() consoleReader {
	return consoleReader{bufio.NewReader(os.Stdin)}
}

type CollectAnswerName struct {
	// Reader is used to get user input.
	Reader Reader
}

// Run makes sure the instant answer name is known and valid, prompting
// for it in interactive mode.
func (collectAnswerName CollectAnswerName) Run(ctx *scaffold_ctx.NewCtx,
	genCtx *iatemplate.GenCtx) error {
	if ctx.AnswerName != "" {
		return ia.ValidateName(ctx.AnswerName)
	}

	if ctx.NonInteractive {
		return fmt.Errorf("instant answer name is required in non-interactive mode, " +
			"specify it with the --name option")
	}

	for {
		fmt.Printf("Instant answer name: ")
		input, err := collectAnswerName.Reader.readLine()
		if err != nil {
			return fmt.Errorf("error reading user input: %s", err)
		}

		if input == "" {
			fmt.Println("Please enter a value.")
			continue
		}
		if err = ia.ValidateName(input); err != nil {
			fmt.Printf("%s. Try again.\n", err)
			continue
		}

		ctx.AnswerName = input
		return nil
	}
}
