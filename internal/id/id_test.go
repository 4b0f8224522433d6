package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDNewID(t *testing.T) {
	gen := UUID{}

	a := gen.NewID()
	b := gen.NewID()

	_, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSequenceNewID(t *testing.T) {
	gen := NewSequence("tx")

	assert.Equal(t, "tx-1", gen.NewID())
	assert.Equal(t, "tx-2", gen.NewID())
	assert.Equal(t, "tx-3", gen.NewID())
}
