package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narrativenexus/corpusprep/pkg/textclean"
)

func TestReclean(t *testing.T) {
	cleaner := textclean.NewCleaner(nil)
	rows := []Row{
		{
			Filename: "001.eml",
			Category: "rec.autos",
			Text: "> quoted reply line\n" +
				"The Surviving Content Of This Row Is Long Enough To Keep Around.\n" +
				"--\n" +
				"signature block",
		},
		{Filename: "002.eml", Category: "rec.autos", Text: "too short"},
		{Filename: "=cmd.eml", Category: "sci.space", Text: "Another Row With Sufficient Length To Survive The Cleaning Pass Intact."},
	}

	out := Reclean(rows, cleaner, 40)
	require.Len(t, out, 2)

	assert.Equal(t, "001.eml", out[0].Filename)
	assert.Equal(t, "the surviving content of this row is long enough to keep around.", out[0].Text)

	// Formula-looking fields are neutralized on the way out.
	assert.Equal(t, "'=cmd.eml", out[1].Filename)
	assert.Equal(t, "another row with sufficient length to survive the cleaning pass intact.", out[1].Text)
}

func TestRecleanEmptyInput(t *testing.T) {
	assert.Empty(t, Reclean(nil, textclean.NewCleaner(nil), 40))
}

func TestRecleanFromCSVFixture(t *testing.T) {
	inPath := filepath.Join(t.TempDir(), "corpus.csv")
	require.NoError(t, CSVSink{Path: inPath}.Write([]Record{
		{Row: Row{
			Filename: "001.eml",
			Category: "talk.religion",
			Text: "Subject: stray header\n" +
				"A body paragraph that survived the first pass but still carries noise.\n" +
				"> and one stray quoted line",
		}},
	}))

	rows, err := LoadTable(inPath)
	require.NoError(t, err)

	out := Reclean(rows, textclean.NewCleaner(nil), 40)
	require.Len(t, out, 1)
	assert.Equal(t, "a body paragraph that survived the first pass but still carries noise.", out[0].Text)

	outPath := filepath.Join(t.TempDir(), "corpus_final.csv")
	require.NoError(t, CSVSink{Path: outPath}.Write(out))
	reloaded, err := LoadCSV(outPath)
	require.NoError(t, err)
	assert.Equal(t, out[0].Row, reloaded[0])
}
