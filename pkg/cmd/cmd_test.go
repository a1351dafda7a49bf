package cmd_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/containertools/dfm/pkg/cmd"
)

func TestString(t *testing.T) {
	// Arrange
	input := []string{
		cmd.New("echo").Arg("hello").Arg("world").String(),
		cmd.New("cmd-only").String(),
		cmd.New("").String(),
	}
	expected := []string{
		"echo hello world",
		"cmd-only",
		"",
	}

	// Assert
	for i, input := range input {
		assert.Equal(t, expected[i], input)
	}
}

func TestEqual(t *testing.T) {
	a := cmd.New("docker").Arg("build", "-t", "img")
	b := cmd.New("docker").Arg("build").Arg("-t").Arg("img")
	c := cmd.New("docker").Arg("tag")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestRunSuccess(t *testing.T) {
	_, err := cmd.New("true").Run(context.Background())
	assert.NoError(t, err)
}

func TestRunFailure(t *testing.T) {
	_, err := cmd.New("false").Run(context.Background())
	assert.Error(t, err)
}

func TestRunWithoutCommand(t *testing.T) {
	_, err := cmd.New("").Run(context.Background())
	assert.Error(t, err)
}

func TestOutput(t *testing.T) {
	out, err := cmd.New("echo").Arg("hello").Output()
	assert.NoError(t, err)
	assert.Contains(t, out, "hello")
}
