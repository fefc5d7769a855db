package stl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tbt/stl"
)

func TestBuilder_CountTracksConstructedNodes(t *testing.T) {
	b := stl.NewBuilder()
	assert.Equal(t, 0, b.Count())

	b.AtomicProp([]string{"a"}, identity)
	assert.Equal(t, 1, b.Count())

	b.Globally(b.AtomicProp([]string{"a"}, identity))
	assert.Equal(t, 3, b.Count())
}

func TestBuilder_ResetRestartsIDCounter(t *testing.T) {
	b := stl.NewBuilder()
	f1 := b.AtomicProp([]string{"a"}, identity)
	assert.Equal(t, 1, b.Count())

	b.Reset()
	assert.Equal(t, 0, b.Count())

	f2 := b.AtomicProp([]string{"a"}, identity)
	assert.Equal(t, f1.ID(), f2.ID(), "node built after Reset reuses the id freed by the prior tree")
}
