package templates

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"
)

//go:embed *.html
var files embed.FS

var pages = template.Must(template.ParseFS(files, "*.html"))

// Render writes the named page. Data is a map of whatever the page needs;
// every page understands the Title and Flashes keys.
func Render(w http.ResponseWriter, name string, data map[string]interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		logrus.WithError(err).Errorf("rendering %s failed", name)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}
