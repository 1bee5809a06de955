package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocate(t *testing.T) {
	text := "ab\ncd\n\nxyz\x00"
	tests := []struct {
		pos  int
		line int
		col  int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3},
		{3, 2, 1},
		{4, 2, 2},
		{6, 3, 1},
		{7, 4, 1},
		{9, 4, 3},
		{10, 4, 4},
	}
	for _, test := range tests {
		loc := Locate("test.hl", text, test.pos)
		assert.Equal(t, test.line, loc.Line, "pos %d", test.pos)
		assert.Equal(t, test.col, loc.Col, "pos %d", test.pos)
	}
	assert.Equal(t, "test.hl:2:2", Locate("test.hl", text, 4).String())
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "f[3]", (&Location{File: "f", Pos: 3}).String())
	assert.Equal(t, "f:2", (&Location{File: "f", Pos: 3, Line: 2}).String())
	assert.Equal(t, "f:2:1", (&Location{File: "f", Pos: 3, Line: 2, Col: 1}).String())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "identifier", IDENTIFIER.String())
	assert.Equal(t, "(", Delimiter('(').String())
	assert.Equal(t, INVALID, Delimiter('{'))
	assert.Equal(t, "invalid", Type(1000).String())
}
