package assemble

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mcpbench/docgen/pkg/configuration"
	"github.com/mcpbench/docgen/pkg/filediscovery"
	"github.com/mcpbench/docgen/pkg/render"
	"github.com/mcpbench/docgen/pkg/trajectory"
	"github.com/mcpbench/docgen/pkg/utils"
)

// Options controls which traces are placed on a page and in what order.
type Options struct {
	IntroText string
	// Models is the explicit section order. When empty every *.json log in
	// the task's log directory is used, filtered by ModelKeywords.
	Models        []string
	ModelKeywords []string
	Detailed      map[string]bool
}

// OptionsFromConfig builds assembler options from the loaded configuration.
func OptionsFromConfig(cfg *configuration.Config) Options {
	return Options{
		IntroText:     cfg.IntroText,
		Models:        cfg.Models,
		ModelKeywords: cfg.ModelKeywords,
		Detailed:      cfg.DetailedSet(),
	}
}

// Section summarizes one model's rendered trace.
type Section struct {
	Model       string
	Pass        bool
	ToolCalls   int
	Turns       int
	Disclosures int
	Unanswered  int
}

// Failure records a model log that could not be placed on its page.
type Failure struct {
	Model string
	Path  string
	Err   error
}

// Page is the assembled output for one task.
type Page struct {
	Source   filediscovery.TaskSource
	Text     string
	Detailed bool
	Sections []Section
	Failures []Failure
}

// Assembler merges the per-model renderings of a task into one page.
type Assembler struct {
	opts   Options
	icons  render.IconLookup
	logger *utils.Logger
}

// New creates an assembler.
func New(opts Options, icons render.IconLookup, logger *utils.Logger) *Assembler {
	return &Assembler{opts: opts, icons: icons, logger: logger}
}

type modelLog struct {
	name string
	path string
}

// BuildPage renders one task page. Only failure to read the base content is
// returned as an error; a model log that fails to load or render is skipped
// and recorded on the page.
func (a *Assembler) BuildPage(src filediscovery.TaskSource) (*Page, error) {
	base, err := os.ReadFile(src.SourcePath)
	if err != nil {
		return nil, utils.NewFileSystemError("read", src.SourcePath, err).WithComponent("assemble")
	}

	page := &Page{Source: src}
	var b strings.Builder
	b.Write(base)
	b.WriteString("\n")

	logs, err := a.modelLogs(src.LogDir)
	if err != nil {
		return nil, err
	}
	if logs == nil || !a.opts.Detailed[src.ID] {
		page.Text = b.String()
		return page, nil
	}

	page.Detailed = true
	b.WriteString(a.opts.IntroText + "\n")
	b.WriteString("\n<AccordionGroup>\n")

	ids := render.NewDisclosureIDs(src.ID)
	for _, ml := range logs {
		section, text, err := a.section(ml, ids)
		if err != nil {
			a.logger.LogError(fmt.Errorf("task %s: skipping %s: %w", src.ID, ml.name, err))
			page.Failures = append(page.Failures, Failure{Model: ml.name, Path: ml.path, Err: err})
			continue
		}
		if section.Unanswered > 0 {
			a.logger.Logf("Warning: %d tool call(s) in %s never received a result", section.Unanswered, ml.path)
		}
		b.WriteString(text)
		page.Sections = append(page.Sections, section)
	}

	b.WriteString("</AccordionGroup>\n")
	page.Text = b.String()
	return page, nil
}

// modelLogs lists the logs to render for a task. It returns nil when the log
// directory is missing or empty.
func (a *Assembler) modelLogs(logDir string) ([]modelLog, error) {
	entries, err := os.ReadDir(logDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, utils.NewFileSystemError("list", logDir, err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	logs := []modelLog{}
	if len(a.opts.Models) > 0 {
		for _, model := range a.opts.Models {
			path := filepath.Join(logDir, model+".json")
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				logs = append(logs, modelLog{name: model, path: path})
			}
		}
		return logs, nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if a.matchesKeywords(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		logs = append(logs, modelLog{
			name: trajectory.ModelFromFilename(name),
			path: filepath.Join(logDir, name),
		})
	}
	return logs, nil
}

func (a *Assembler) matchesKeywords(name string) bool {
	if len(a.opts.ModelKeywords) == 0 {
		return true
	}
	lower := strings.ToLower(name)
	for _, kw := range a.opts.ModelKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// section renders one model's accordion. Nothing is returned for the page
// unless the whole log rendered. Errors name the log path exactly once.
func (a *Assembler) section(ml modelLog, ids *render.DisclosureIDs) (Section, string, error) {
	log, err := trajectory.Load(ml.path)
	if err != nil {
		return Section{}, "", fmt.Errorf("load: %w", err)
	}
	frag, err := render.New(a.icons, ids).Render(log)
	if err != nil {
		return Section{}, "", fmt.Errorf("render %s: %w", ml.path, err)
	}

	section := Section{
		Model:       ml.name,
		Pass:        log.Pass,
		ToolCalls:   log.ToolCallCount(),
		Turns:       frag.Turns,
		Disclosures: len(frag.Disclosures),
		Unanswered:  frag.Unanswered,
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<Accordion title=\"%s\">\n\n", ml.name)
	writeCards(&b, section)
	b.WriteString(frag.Text)
	b.WriteString("</Accordion>\n\n")
	return section, b.String(), nil
}

func writeCards(b *strings.Builder, s Section) {
	b.WriteString("<Columns cols={3}>\n")
	if s.Pass {
		writeCard(b, "Task Completion", "check", "Completed")
	} else {
		writeCard(b, "Task Completion", "x", "Failed")
	}
	writeCard(b, "Tool Calls", "wrench", fmt.Sprint(s.ToolCalls))
	writeCard(b, "Turns", "arrows-rotate", fmt.Sprint(s.Turns))
	b.WriteString("</Columns>\n\n")
}

func writeCard(b *strings.Builder, title, icon, body string) {
	fmt.Fprintf(b, "<Card title=\"%s\" icon=\"%s\">\n%s\n</Card>\n", title, icon, body)
}

// WritePage writes the page to its target path.
func (a *Assembler) WritePage(page *Page) error {
	target := page.Source.TargetPath
	if err := os.WriteFile(target, []byte(page.Text), 0644); err != nil {
		return utils.NewFileSystemError("write", target, err).WithComponent("assemble")
	}
	a.logger.LogWorkspaceOperation("write", target)
	return nil
}
