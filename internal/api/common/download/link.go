package download

import (
	"encoding/base64"
	"fmt"
	"html"
	"html/template"
)

// Link builds an anchor that downloads png under filename when clicked.
func Link(png []byte, filename, text string) template.HTML {
	b64 := base64.StdEncoding.EncodeToString(png)
	return template.HTML(fmt.Sprintf(`<a href="data:file/png;base64,%s" download="%s">%s</a>`,
		b64, html.EscapeString(filename), html.EscapeString(text)))
}

// Filename names a chart download after the query it shows.
func Filename(kind, keyword string) string {
	name := make([]rune, 0, len(keyword))
	for _, r := range keyword {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			name = append(name, r)
		default:
			name = append(name, '_')
		}
	}
	return fmt.Sprintf("%s_%s.png", kind, string(name))
}
