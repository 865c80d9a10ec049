package assemble

import (
	"fmt"

	"github.com/mcpbench/docgen/pkg/filediscovery"
)

// Report collects the outcome of a batch.
type Report struct {
	Pages []*Page
	// Errors holds tasks whose page could not be built or written at all.
	Errors []error
}

// Detailed counts pages that carry rendered traces.
func (r *Report) Detailed() int {
	n := 0
	for _, p := range r.Pages {
		if p.Detailed {
			n++
		}
	}
	return n
}

// Failures returns every skipped model log across the batch.
func (r *Report) Failures() []Failure {
	var all []Failure
	for _, p := range r.Pages {
		all = append(all, p.Failures...)
	}
	return all
}

// OK reports whether the batch completed without errors or skipped logs.
func (r *Report) OK() bool {
	return len(r.Errors) == 0 && len(r.Failures()) == 0
}

// Run builds every task page in order. Pages are written unless dryRun is set.
// A task that fails is recorded and the batch continues.
func (a *Assembler) Run(sources []filediscovery.TaskSource, dryRun bool) *Report {
	report := &Report{}
	for _, src := range sources {
		a.logger.Logf("Assembling task %s from %s", src.ID, src.SourcePath)
		page, err := a.BuildPage(src)
		if err != nil {
			a.logger.LogError(err)
			report.Errors = append(report.Errors, fmt.Errorf("task %s: %w", src.ID, err))
			continue
		}
		if !dryRun {
			if err := a.WritePage(page); err != nil {
				a.logger.LogError(err)
				report.Errors = append(report.Errors, fmt.Errorf("task %s: %w", src.ID, err))
				continue
			}
		}
		report.Pages = append(report.Pages, page)
	}
	return report
}
