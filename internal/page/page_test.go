package page_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/hostingcloud/framehost/internal/page"
)

// iframeSrcs returns the src attribute of every iframe in doc.
func iframeSrcs(t *testing.T, doc []byte) []string {
	t.Helper()

	root, err := html.Parse(bytes.NewReader(doc))
	require.NoError(t, err)

	var srcs []string
	for n := range root.Descendants() {
		if n.Type != html.ElementNode || n.Data != "iframe" {
			continue
		}
		for _, attr := range n.Attr {
			if attr.Key == "src" {
				srcs = append(srcs, attr.Val)
			}
		}
	}
	return srcs
}

func TestRender_Default(t *testing.T) {
	doc, err := page.Render(page.DefaultFrameSrc)
	require.NoError(t, err)

	s := string(doc)
	assert.Contains(t, s, "<!DOCTYPE html>")
	assert.Contains(t, s, `<meta charset="UTF-8">`)
	assert.Contains(t, s, `<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
	assert.Contains(t, s, "<title>HostingCloud</title>")
	assert.Contains(t, s, "overflow: hidden;")
	assert.Contains(t, s, "border: none;")
	assert.Contains(t, s, `<iframe src="http://localhost"></iframe>`)

	assert.Equal(t, []string{"http://localhost"}, iframeSrcs(t, doc))
}

func TestRender_Deterministic(t *testing.T) {
	first, err := page.Render(page.DefaultFrameSrc)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		next, err := page.Render(page.DefaultFrameSrc)
		require.NoError(t, err)
		assert.Equal(t, first, next)
	}
}

func TestRender_CustomFrameSrc(t *testing.T) {
	src := "https://app.example.com:3000/dashboard?tab=1&view=full"

	doc, err := page.Render(src)
	require.NoError(t, err)

	assert.Equal(t, []string{src}, iframeSrcs(t, doc))
}

func TestRender_InvalidFrameSrc(t *testing.T) {
	for _, src := range []string{
		"",
		"localhost",
		"/relative/path",
		"ftp://files.example.com",
		"javascript:alert(1)",
		"http://",
		"http://%zz",
	} {
		t.Run(src, func(t *testing.T) {
			doc, err := page.Render(src)
			require.ErrorIs(t, err, page.ErrInvalidFrameSrc)
			assert.Nil(t, doc)
		})
	}
}
