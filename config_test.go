package nodegraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigWithDefaults(t *testing.T) {
	c := Config{MaxEdges: 7}.WithDefaults()

	assert.Equal(t, DefaultMaxNodes, c.MaxNodes)
	assert.Equal(t, 7, c.MaxEdges)
	assert.Equal(t, Size{Width: DefaultNodeWidth, Height: DefaultNodeHeight}, c.NodeDefaults)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	bad := []Config{
		{MaxNodes: -1, MaxEdges: 1, NodeDefaults: Size{1, 1}},
		{MaxNodes: 1, MaxEdges: -1, NodeDefaults: Size{1, 1}},
		{MaxNodes: 1, MaxEdges: 1, NodeDefaults: Size{0, 1}},
		{MaxNodes: 1, MaxEdges: 1, NodeDefaults: Size{1, -5}},
	}
	for _, c := range bad {
		assert.ErrorIs(t, c.Validate(), ErrInvalidConfig, "%+v", c)
	}
}
