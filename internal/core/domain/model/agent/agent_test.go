package agent_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/agent"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAgent(t *testing.T) {
	t.Run("should create agent with trimmed fields", func(t *testing.T) {
		a, err := agent.NewAgent(" agent_1 ", "Sam", "919991112223 ")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "agent_1", a.ID())
		assert.Equal(t, "Sam", a.Name())
		assert.Equal(t, "919991112223", a.Contact())
	})

	t.Run("should join every missing field", func(t *testing.T) {
		a, err := agent.NewAgent("", " ", "")

		require.Error(t, err)
		assert.Nil(t, a)
		assert.ErrorIs(t, err, agent.ErrIDIsRequired)
		assert.ErrorIs(t, err, agent.ErrNameIsRequired)
		assert.ErrorIs(t, err, agent.ErrContactIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var nilAgent *agent.Agent

		assert.Equal(t, agent.ErrAgentIsNotConstructed, nilAgent.Validate())
		assert.Equal(t, agent.ErrAgentIsNotConstructed, (&agent.Agent{}).Validate())
	})
}
