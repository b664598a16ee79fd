package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := printer{w: &buf, plain: true}

	p.success("Solved in %d calls", 2)
	p.error("Can't solve")
	p.keyValue("Max calls", "0")
	p.file("out.pdf")

	assert.Equal(t, "✓ Solved in 2 calls\n"+
		"✗ Can't solve\n"+
		"Max calls      0\n"+
		"  → out.pdf\n", buf.String())
}

func TestPrinter_BoardKeepsLines(t *testing.T) {
	var buf bytes.Buffer
	p := printer{w: &buf, plain: true}

	p.board("Solution!\n+--+\n|  |\n")

	assert.Equal(t, "Solution!\n+--+\n|  |\n", buf.String())
}
