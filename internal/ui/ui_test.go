package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"NODES", 5},
		{"\x1b[31minvalid\x1b[0m", 7},
		{"\x1b[1;96mnodegraph\x1b[0m", 9},
		{"Sink ×2", 7},
		{"表格", 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VisibleWidth(tt.in), "%q", tt.in)
	}
}

func TestPadIgnoresEscapes(t *testing.T) {
	assert.Equal(t, "\x1b[31mab\x1b[0m  ", pad("\x1b[31mab\x1b[0m", 4))
	assert.Equal(t, "×  ", pad("×", 3))
	assert.Equal(t, "toolong", pad("toolong", 3))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Http Request", Title("http-request"))
	assert.Equal(t, "Data Source", Title("data_source"))
}
