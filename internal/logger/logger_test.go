package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelsWriteToOutput(t *testing.T) {
	buf := ForTest(t)

	Info("info %d\n", 1)
	Warn("warn %s\n", "x")
	Error("error\n")
	Plain("plain\n")

	assert.Equal(t, "info 1\nwarn x\nerror\nplain\n", buf.String())
}

func TestDebugToggle(t *testing.T) {
	buf := ForTest(t)
	t.Cleanup(func() { Init(false) })

	Init(false)
	Debug("[DEBUG] hidden\n")
	assert.Empty(t, buf.String())

	Init(true)
	Debug("[DEBUG] shown\n")
	assert.Equal(t, "[DEBUG] shown\n", buf.String())
}

func TestWriterReturnsCurrentOutput(t *testing.T) {
	buf := ForTest(t)
	assert.Same(t, buf, Writer())
}
