package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptEditing(t *testing.T) {
	p := newPrompt(PromptRename, "rename: ", "name.txt")
	assert.Equal(t, 8, p.Cursor)

	p.move("home")
	p.insert('_')
	assert.Equal(t, "_name.txt", p.Text())

	p.move("end")
	p.backspace()
	p.backspace()
	p.backspace()
	assert.Equal(t, "_name.", p.Text())

	p.move("left")
	p.deleteForward()
	assert.Equal(t, "_name", p.Text())

	p.move("home")
	p.deleteForward()
	p.move("left")
	p.backspace()
	assert.Equal(t, "name", p.Text())
	assert.Equal(t, 0, p.Cursor)

	p.move("right")
	p.insert('ä')
	assert.Equal(t, "näame", p.Text())

	p.clear()
	assert.Empty(t, p.Text())
	assert.Equal(t, 0, p.Cursor)
}
