package impl

import (
	"testing"

	domainerrors "dietlog/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitGate(t *testing.T) {
	gate := NewSubmitGate()

	release, err := gate.Acquire("record:new")
	require.NoError(t, err)

	_, err = gate.Acquire("record:new")
	assert.ErrorIs(t, err, domainerrors.ErrSubmitInProgress)

	other, err := gate.Acquire("record:3")
	require.NoError(t, err)
	other()

	release()
	again, err := gate.Acquire("record:new")
	require.NoError(t, err)
	again()
}
