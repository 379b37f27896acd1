package dashboard

import (
	"bytes"
	"embed"
	"encoding/base64"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"trends-dashboard/internal/api/relatedqueries"
	"trends-dashboard/internal/api/searchvolume"
)

const (
	DefaultKeyword = "Prabowo Gibran"
	DefaultStart   = "2023-10-01"
	DefaultEnd     = "2023-11-30"

	searchVolumePath   = "/search-volume"
	relatedQueriesPath = "/related-queries"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = map[string]*template.Template{
	searchVolumePath:   template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/search_volume.html")),
	relatedQueriesPath: template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/related_queries.html")),
}

type menuItem struct {
	Name   string
	Path   string
	Active bool
}

type form struct {
	Keyword       string
	Start         string
	End           string
	Geo           string
	MovingAverage bool
	DynamicYAxis  bool
	// only the search volume page has the chart options
	ShowOptions bool
}

type row struct {
	Date    string
	Value   string
	Average string
}

type page struct {
	Title string
	Path  string
	Menu  []menuItem
	Form  form

	Error  string
	NoData bool

	Image    template.URL
	Download template.HTML

	SearchVolume   *searchvolume.SearchVolume
	Rows           []row
	RelatedQueries *relatedqueries.RelatedQueries
}

func newPage(title, path string, f form) *page {
	menu := []menuItem{
		{Name: "Search Volume Visualization", Path: searchVolumePath},
		{Name: "Related Queries", Path: relatedQueriesPath},
	}
	for i := range menu {
		menu[i].Active = menu[i].Path == path
	}
	return &page{
		Title: title,
		Path:  path,
		Menu:  menu,
		Form:  f,
	}
}

func imageURL(png []byte) template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
}

func render(c *fiber.Ctx, status int, p *page) error {
	var buf bytes.Buffer
	if err := pages[p.Path].ExecuteTemplate(&buf, "layout", p); err != nil {
		return err
	}
	c.Type("html")
	return c.Status(status).Send(buf.Bytes())
}
