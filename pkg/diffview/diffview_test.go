package diffview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDiffIdentical(t *testing.T) {
	assert.Empty(t, GetDiff("a.mdx", "same\n", "same\n", false))

	var buf bytes.Buffer
	PrintDiff(&buf, "a.mdx", "same\n", "same\n", false)
	assert.Equal(t, "a.mdx: no changes detected.\n", buf.String())
}

func TestGetDiffPlain(t *testing.T) {
	before := "title\nintro\nold line\nfooter\n"
	after := "title\nintro\nnew line\nfooter\nextra\n"

	want := "a.mdx +++2 ---1\n" +
		"  title\n" +
		"  intro\n" +
		"- old line\n" +
		"+ new line\n" +
		"  footer\n" +
		"+ extra\n"
	assert.Equal(t, want, GetDiff("a.mdx", before, after, false))
}

func TestGetDiffElidesDistantContext(t *testing.T) {
	var lines []string
	for i := 0; i < 20; i++ {
		lines = append(lines, "line")
	}
	before := strings.Join(lines, "\n") + "\n"
	after := before + "added\n"

	diff := GetDiff("p.mdx", before, after, false)
	assert.True(t, strings.HasPrefix(diff, "p.mdx +++1 \n  ...\n"))
	assert.Equal(t, 3, strings.Count(diff, "  line\n"))
	assert.True(t, strings.HasSuffix(diff, "+ added\n"))
}

func TestGetDiffColor(t *testing.T) {
	diff := GetDiff("c.mdx", "a\n", "b\n", true)
	assert.Contains(t, diff, RedColor+"- a"+ResetColor)
	assert.Contains(t, diff, GreenColor+"+ b"+ResetColor)
	assert.Contains(t, diff, BoldStyle+YellowColor+"c.mdx"+ResetColor)
}
