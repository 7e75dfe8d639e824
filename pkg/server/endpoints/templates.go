package endpoints

import (
	"embed"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
)

//go:embed templates
var templateFiles embed.FS

// diskTemplatesDir is where the page templates live in a source checkout.
// In debug mode they are parsed from here and hot-reloaded on change.
const diskTemplatesDir = "pkg/server/endpoints/templates"

// Templates holds the parsed page templates. The embedded copies are always
// the fallback; debug mode swaps in the on-disk copies and reloads them when
// fsnotify reports a change.
type Templates struct {
	mu sync.RWMutex
	t  *template.Template
}

// NewTemplates parses the page templates. With debug set and a source
// checkout present, templates are read from disk and watched for changes.
func NewTemplates(debug bool) *Templates {
	templates := &Templates{}

	if debug {
		if info, err := os.Stat(diskTemplatesDir); err == nil && info.IsDir() {
			if t, err := parseTemplates(os.DirFS(diskTemplatesDir), "*.html.tmpl"); err == nil {
				templates.t = t
				go templates.watch(diskTemplatesDir)
				return templates
			}
		}
	}

	t, err := parseTemplates(templateFiles, "templates/*.html.tmpl")
	if err != nil {
		// the embedded templates are part of the binary; failing to parse
		// them is a build defect
		panic(err)
	}
	templates.t = t
	return templates
}

func parseTemplates(fsys fs.FS, glob string) (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"safe": func(s string) template.HTML { return template.HTML(s) },
	}).ParseFS(fsys, glob)
}

// watch reloads the templates whenever a file in dir changes.
func (ts *Templates) watch(dir string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("template watch disabled: %v", err)
		return
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		log.Printf("template watch disabled: %v", err)
		return
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				t, err := parseTemplates(os.DirFS(dir), "*.html.tmpl")
				if err != nil {
					log.Printf("template reload failed: %v", err)
					continue
				}
				ts.mu.Lock()
				ts.t = t
				ts.mu.Unlock()
				log.Printf("templates reloaded after change to %s", event.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("template watch error: %v", err)
		}
	}
}

// Render executes the named template into the response as HTML.
func (ts *Templates) Render(w http.ResponseWriter, name string, data interface{}) {
	ts.mu.RLock()
	t := ts.t
	ts.mu.RUnlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("template %s failed: %v", name, err)
	}
}
