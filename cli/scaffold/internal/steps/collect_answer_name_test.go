package steps

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	scaffold_ctx "github.com/zeroclickinfo/duckgen/cli/scaffold/context"
	"github.com/zeroclickinfo/duckgen/cli/scaffold/internal/iatemplate"
)

type mockReader struct {
	lines []string
}

func (reader *mockReader) readLine() (string, error) {
	if len(reader.lines) == 0 {
		return "", fmt.Errorf("user input is empty")
	}

	line := reader.lines[0]
	reader.lines = reader.lines[1:]
	return line, nil
}

func TestCollectAnswerNameProvided(t *testing.T) {
	ctx := scaffold_ctx.NewCtx{AnswerName: "Hello Bob"}
	var genCtx iatemplate.GenCtx

	collectName := CollectAnswerName{Reader: &mockReader{}}
	require.NoError(t, collectName.Run(&ctx, &genCtx))
	assert.Equal(t, "Hello Bob", ctx.AnswerName)
}

func TestCollectAnswerNameProvidedInvalid(t *testing.T) {
	ctx := scaffold_ctx.NewCtx{AnswerName: "2 Fast"}
	var genCtx iatemplate.GenCtx

	collectName := CollectAnswerName{Reader: &mockReader{}}
	err := collectName.Run(&ctx, &genCtx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid instant answer name")
}

func TestCollectAnswerNameNonInteractive(t *testing.T) {
	ctx := scaffold_ctx.NewCtx{NonInteractive: true}
	var genCtx iatemplate.GenCtx

	collectName := CollectAnswerName{Reader: &mockReader{}}
	err := collectName.Run(&ctx, &genCtx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--name")
}

func TestCollectAnswerNamePrompted(t *testing.T) {
	ctx := scaffold_ctx.NewCtx{}
	var genCtx iatemplate.GenCtx

	collectName := CollectAnswerName{Reader: &mockReader{lines: []string{
		"",          // Empty input, must be asked again.
		"Bad Name!", // Invalid input, must be asked again.
		"Hello Bob", // Valid input.
	}}}
	require.NoError(t, collectName.Run(&ctx, &genCtx))
	assert.Equal(t, "Hello Bob", ctx.AnswerName)
}

func TestCollectAnswerNameReadFailure(t *testing.T) {
	ctx := scaffold_ctx.NewCtx{}
	var genCtx iatemplate.GenCtx

	collectName := CollectAnswerName{Reader: &mockReader{}}
	err := collectName.Run(&ctx, &genCtx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading user input")
}
