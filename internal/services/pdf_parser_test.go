package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-checker/internal/pdftest"
)

func TestPDFParser_ExtractText(t *testing.T) {
	parser := NewPDFParserService()

	t.Run("single page", func(t *testing.T) {
		text, err := parser.ExtractText(pdftest.Build("Jane Doe Senior Go Engineer"))

		require.NoError(t, err)
		assert.Contains(t, text, "Jane Doe Senior Go Engineer")
	})

	t.Run("pages are concatenated in order", func(t *testing.T) {
		text, err := parser.ExtractText(pdftest.Build("FirstPage", "SecondPage", "ThirdPage"))

		require.NoError(t, err)
		first := strings.Index(text, "FirstPage")
		second := strings.Index(text, "SecondPage")
		third := strings.Index(text, "ThirdPage")
		require.True(t, first >= 0 && second >= 0 && third >= 0, "all pages extracted: %q", text)
		assert.Less(t, first, second)
		assert.Less(t, second, third)
	})

	t.Run("whitespace only text fails", func(t *testing.T) {
		_, err := parser.ExtractText(pdftest.Build("     "))
		assert.ErrorIs(t, err, ErrPDFExtraction)
	})

	t.Run("no text layer fails", func(t *testing.T) {
		_, err := parser.ExtractText(pdftest.Build(""))
		assert.ErrorIs(t, err, ErrPDFExtraction)
	})

	t.Run("not a pdf", func(t *testing.T) {
		_, err := parser.ExtractText([]byte("this is plain text, not a PDF document"))
		assert.ErrorIs(t, err, ErrPDFExtraction)
	})

	t.Run("truncated pdf", func(t *testing.T) {
		data := pdftest.Build("Some text")
		_, err := parser.ExtractText(data[:len(data)/2])
		assert.ErrorIs(t, err, ErrPDFExtraction)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := parser.ExtractText(nil)
		assert.ErrorIs(t, err, ErrPDFExtraction)
	})
}

func TestPDFParser_ExtractTextWithMetaData(t *testing.T) {
	parser := NewPDFParserService()

	content, err := parser.ExtractTextWithMetaData(pdftest.Build("Alpha", "", "Gamma"))

	require.NoError(t, err)
	assert.Equal(t, 3, content.PageCount)
	assert.Len(t, content.Pages, 3)
	assert.Contains(t, content.Pages[0], "Alpha")
	assert.Contains(t, content.Pages[2], "Gamma")
	assert.Contains(t, content.Text, "Alpha")
}

func TestCleanText(t *testing.T) {
	got := CleanText("  line one  \n\n\n   line two\n \n")
	assert.Equal(t, "line one\nline two", got)
}
