package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talgya/minisim/internal/config"
)

func Test_Runner_RejectsEmptyCommand(t *testing.T) {
	r := &Runner{}

	_, err := r.Run(context.Background(), config.Scenario{Agents: 2, Iterations: 1})

	assert.ErrorIs(t, err, ErrEmptyCommand)
}

func Test_Runner_MissingBinaryIsAFailedSample(t *testing.T) {
	r := &Runner{Command: []string{"/nonexistent/minisim-binary"}}

	_, err := r.Run(context.Background(), config.Scenario{Agents: 2, Iterations: 1})

	assert.Error(t, err)
}
