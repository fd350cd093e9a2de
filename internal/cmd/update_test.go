package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReleaseNotesExcerpt(t *testing.T) {
	short := "Fixed the neurotoxin emitters."
	assert.Equal(t, short, releaseNotesExcerpt(short))

	long := strings.Repeat("The cake is a lie. ", 60)
	excerpt := releaseNotesExcerpt(long)
	assert.LessOrEqual(t, len([]rune(excerpt)), releaseNotesExcerptLen)
	assert.True(t, strings.HasSuffix(excerpt, "..."), "long notes end with an ellipsis")
}
