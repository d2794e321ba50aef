package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBase(t *testing.T) {
	t.Run("NewBase creates with dimensions", func(t *testing.T) {
		b := NewBase(100, 50)

		w, h := b.Size()
		assert.Equal(t, 100, w)
		assert.Equal(t, 50, h)
		assert.False(t, b.Focused())
	})

	t.Run("Focus and Blur toggle state", func(t *testing.T) {
		var b Base

		b.Focus()
		assert.True(t, b.Focused())

		b.Blur()
		assert.False(t, b.Focused())
	})

	t.Run("SetSize clamps negatives", func(t *testing.T) {
		var b Base

		b.SetSize(-3, 12)

		w, h := b.Size()
		assert.Equal(t, 0, w)
		assert.Equal(t, 12, h)
	})
}
