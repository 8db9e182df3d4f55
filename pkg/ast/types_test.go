package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	name := ParseName("a.b.TestClass1")
	assert.Equal(t, "a.b.TestClass1", name.String())
	assert.Equal(t, "TestClass1", name.Last())
	assert.False(t, name.IsZero())
	assert.True(t, name.Equal(NewName("a", "b", "TestClass1")))
	assert.False(t, name.Equal(NewName("a", "b")))
	assert.True(t, Name{}.IsZero())
}

func TestName_SegmentsAreCopied(t *testing.T) {
	name := NewName("a", "b")
	segments := name.Segments()
	segments[0] = "mutated"
	assert.Equal(t, "a.b", name.String())
}

func TestName_IsPrimitive(t *testing.T) {
	for _, p := range []string{"int", "long", "char", "byte", "boolean", "float", "double"} {
		assert.True(t, NewName(p).IsPrimitive(), p)
	}
	assert.False(t, NewName("a", "b", "int").IsPrimitive())
	assert.False(t, NewName("String").IsPrimitive())
}
