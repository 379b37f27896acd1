package download_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"trends-dashboard/internal/api/common/download"
)

func TestLink(t *testing.T) {
	png := []byte("fake png bytes")
	got := download.Link(png, "search_volume.png", "Download <chart>")

	want := `<a href="data:file/png;base64,` + base64.StdEncoding.EncodeToString(png) +
		`" download="search_volume.png">Download &lt;chart&gt;</a>`
	require.Equal(t, want, string(got))
}

func TestFilename(t *testing.T) {
	require.Equal(t, "search_volume_Prabowo_Gibran.png", download.Filename("search_volume", "Prabowo Gibran"))
	require.Equal(t, "related_queries_a_b.png", download.Filename("related_queries", "a/b"))
}
