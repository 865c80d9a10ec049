package svgassets

import (
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/mcpbench/docgen/pkg/icons"
	"github.com/mcpbench/docgen/pkg/utils"
)

// ImageSize is the pixel size of substituted icons.
const ImageSize = 64

// commentWindow is how many lines above an SVG are searched for its label.
const commentWindow = 3

var svgPattern = regexp.MustCompile(`(?s)<svg[^>]*>.*?</svg>`)

// Replacement records one substituted SVG.
type Replacement struct {
	Icon  string
	Image string
}

// Replacer swaps inline SVG icons for PNG images. An SVG is identified by the
// first /* ... */ comment in the lines just above it.
type Replacer struct {
	images  map[string]string
	names   []string
	baseURL string
}

// NewReplacer creates a replacer for the given icon name → PNG file map.
func NewReplacer(images map[string]string, baseURL string) *Replacer {
	if baseURL == "" {
		baseURL = icons.DefaultBaseURL
	}
	names := make([]string, 0, len(images))
	for name := range images {
		names = append(names, name)
	}
	// Longer names first so "youtube-transcript" wins over "youtube".
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return &Replacer{images: images, names: names, baseURL: baseURL}
}

// Replace returns content with every recognized SVG replaced, and the
// replacements made in document order.
func (r *Replacer) Replace(content string) (string, []Replacement) {
	var done []Replacement
	seen := make(map[string]bool)
	for _, svg := range svgPattern.FindAllString(content, -1) {
		if seen[svg] {
			continue
		}
		seen[svg] = true
		name, ok := r.iconFor(content, svg)
		if !ok {
			continue
		}
		png := r.images[name]
		content = strings.ReplaceAll(content, svg, icons.ImageTag(r.baseURL+png, ImageSize))
		done = append(done, Replacement{Icon: name, Image: png})
	}
	return content, done
}

func (r *Replacer) iconFor(content, svg string) (string, bool) {
	idx := strings.Index(content, svg)
	if idx < 0 {
		return "", false
	}
	lineNo := strings.Count(content[:idx], "\n")
	lines := strings.Split(content, "\n")
	for j := max(0, lineNo-commentWindow); j < lineNo; j++ {
		if !strings.Contains(lines[j], "/*") || !strings.Contains(lines[j], "*/") {
			continue
		}
		comment := strings.TrimSpace(lines[j])
		for _, name := range r.names {
			if strings.Contains(comment, name) {
				return name, true
			}
		}
		return "", false
	}
	return "", false
}

// RewriteFile applies Replace to the file at path in place.
func (r *Replacer) RewriteFile(path string) ([]Replacement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, utils.NewFileSystemError("read", path, err)
	}
	updated, done := r.Replace(string(data))
	if len(done) == 0 {
		return nil, nil
	}
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return nil, utils.NewFileSystemError("write", path, err)
	}
	return done, nil
}
