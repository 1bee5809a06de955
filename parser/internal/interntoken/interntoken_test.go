package interntoken

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	tab := NewTable()
	a := tab.GetBytes([]byte("name"))
	b := tab.Get("na" + string([]byte("me")))
	c := tab.GetBytes([]byte("other"))
	assert.Equal(t, "name", a)
	assert.Equal(t, "name", b)
	assert.Equal(t, "other", c)
	assert.Equal(t, unsafe.StringData(a), unsafe.StringData(b), "interned strings share their bytes")
	assert.Equal(t, 2, tab.Len())

	var none *Table
	assert.Equal(t, "x", none.GetBytes([]byte("x")))
	assert.Equal(t, "y", none.Get("y"))
	assert.Equal(t, 0, none.Len())
}
