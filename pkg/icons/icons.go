package icons

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// DefaultBaseURL is where the site serves icon images from.
const DefaultBaseURL = "/icons/"

// aliases maps alternate server spellings to the canonical icon key.
var aliases = map[string]string{
	"googlesearch": "web_search",
	"playwright":   "playwright_with_chunk",
}

// defaultImages maps server names to the PNG shipped with the site.
var defaultImages = map[string]string{
	"excel":                 "excel.png",
	"google_sheet":          "google_sheet.png",
	"google_cloud":          "google_cloud.png",
	"google-cloud":          "google_cloud.png",
	"google_search":         "google_search.png",
	"google_map":            "google_map.png",
	"google_calendar":       "calendar.png",
	"google_forms":          "google_forms.png",
	"github":                "github.png",
	"git":                   "git.png",
	"huggingface":           "hf.png",
	"k8s":                   "k8s.png",
	"snowflake":             "snowflake.png",
	"word":                  "word.png",
	"pptx":                  "pptx.png",
	"pdf":                   "pdf.png",
	"python":                "python.png",
	"terminal":              "terminal.png",
	"memory":                "memory.png",
	"filesystem":            "filesystem.png",
	"web_search":            "google_search.png",
	"yahoo-finance":         "yahoo.png",
	"howtocook":             "cook.png",
	"arxiv_local":           "arxiv.png",
	"scholarly":             "scholar.png",
	"claim_done":            "claim_done.png",
	"playwright_with_chunk": "playwright.png",
	"pdf-tools":             "pdf.png",
	"python-execute":        "python.png",
	"history":               "history.png",
	"emails":                "mail.png",
	"notion":                "notion.png",
	"wandb":                 "wandb.png",
	"canvas":                "canvas.png",
	"fetch":                 "fetch.png",
	"rail_12306":            "12306.png",
	"youtube-transcript":    "youtube_transcript.png",
	"youtube":               "youtube.png",
	"arxiv-latex":           "latex.png",
	"sleep":                 "sleep.png",
	"woocommerce":           "woo.png",
}

// DefaultImages returns a copy of the built-in server → PNG mapping.
func DefaultImages() map[string]string {
	out := make(map[string]string, len(defaultImages))
	for k, v := range defaultImages {
		out[k] = v
	}
	return out
}

// ImageTag renders an inline image of the given pixel size.
func ImageTag(src string, size int) string {
	return fmt.Sprintf(`<img src="%s" style={{height: "%dpx", width: "%dpx", margin: 0, padding: 0, display: 'inline-block'}} />`, src, size, size)
}

// Table resolves server names to icon markup.
type Table struct {
	icons map[string]string
}

// Default builds the table from the built-in PNG set.
func Default(baseURL string) *Table {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	t := &Table{icons: make(map[string]string, len(defaultImages)+len(aliases))}
	for name, png := range defaultImages {
		t.icons[name] = ImageTag(baseURL+png, 20)
	}
	t.applyAliases()
	return t
}

// Load reads a JSON object of {server: markup} from path and layers it over
// the defaults. An empty path returns the defaults.
func Load(path, baseURL string) (*Table, error) {
	t := Default(baseURL)
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read icon table: %w", err)
	}
	var overrides map[string]string
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse icon table %s: %w", path, err)
	}
	for name, markup := range overrides {
		t.icons[name] = markup
	}
	t.applyAliases()
	return t, nil
}

// applyAliases points each alias at its canonical icon, if there is one.
func (t *Table) applyAliases() {
	for alias, canonical := range aliases {
		if icon, ok := t.icons[canonical]; ok {
			t.icons[alias] = icon
		}
	}
}

// Lookup returns the icon markup for a server.
func (t *Table) Lookup(server string) (string, bool) {
	icon, ok := t.icons[server]
	return icon, ok
}

// Names lists the servers that have an icon, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.icons))
	for name := range t.icons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
