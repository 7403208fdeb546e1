// Package output formats lexflow results for the terminal.
//
// The [Printer] renders execution traces, framework and template
// listings, and risk assessments with lipgloss styling, and optionally
// renders prompt text as markdown via glamour. All output goes to the
// printer's writer, so tests capture it with a bytes.Buffer.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"lexflow/internal/config"
	"lexflow/internal/ethics"
	"lexflow/internal/framework"
	"lexflow/internal/pipeline"
	"lexflow/internal/refdata"
	"lexflow/internal/template"
	"lexflow/internal/workflow"
)

// Printer writes formatted output to a terminal or buffer.
//
// Use [NewPrinter] for stdout or [NewPrinterWithWriter] for a custom
// writer (tests). Markdown rendering follows the output configuration;
// when disabled or unavailable, prompt text is printed verbatim.
type Printer struct {
	w        io.Writer
	cfg      config.OutputConfig
	renderer *glamour.TermRenderer

	headerStyle  lipgloss.Style
	sectionStyle lipgloss.Style
	dimStyle     lipgloss.Style
	stateStyles  map[pipeline.State]lipgloss.Style
	riskStyles   map[ethics.Level]lipgloss.Style
}

// NewPrinter creates a [Printer] writing to stdout with default output
// configuration.
func NewPrinter() *Printer {
	return NewPrinterWithConfig(os.Stdout, config.DefaultConfig().Output)
}

// NewPrinterWithWriter creates a [Printer] writing to w with markdown
// rendering disabled, suitable for tests and piped output.
func NewPrinterWithWriter(w io.Writer) *Printer {
	cfg := config.DefaultConfig().Output
	cfg.Markdown.Enabled = false
	return NewPrinterWithConfig(w, cfg)
}

// NewPrinterWithConfig creates a [Printer] writing to w with the given
// output configuration.
func NewPrinterWithConfig(w io.Writer, cfg config.OutputConfig) *Printer {
	p := &Printer{
		w:            w,
		cfg:          cfg,
		headerStyle:  lipgloss.NewStyle().Bold(true),
		sectionStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		dimStyle:     lipgloss.NewStyle().Faint(true),
		stateStyles: map[pipeline.State]lipgloss.Style{
			pipeline.StateCompleted: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
			pipeline.StateFailed:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
			pipeline.StateBlocked:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		},
		riskStyles: map[ethics.Level]lipgloss.Style{
			ethics.LevelLow:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			ethics.LevelMedium:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			ethics.LevelHigh:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			ethics.LevelProhibited: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		},
	}

	if cfg.Markdown.Enabled {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStylePath(cfg.Markdown.Style),
			glamour.WithWordWrap(cfg.Markdown.WordWrap),
		)
		if err == nil {
			p.renderer = renderer
		}
		// On renderer construction failure, fall back to plain text.
	}

	return p
}

// PrintTrace writes a complete workflow run result.
//
// The trace header shows the run outcome and highest risk; each entry
// shows its step, risk assessment and rendered prompt. For Blocked runs
// the final entry's rationale is emphasised so the practitioner sees why
// the run stopped.
func (p *Printer) PrintTrace(t *pipeline.Trace, legislation []string) {
	state := strings.ToUpper(string(t.State))
	if style, ok := p.stateStyles[t.State]; ok {
		state = style.Render(state)
	}

	fmt.Fprintf(p.w, "%s  %s\n", p.headerStyle.Render("Workflow: "+t.Workflow), state)
	fmt.Fprintf(p.w, "%s\n", p.dimStyle.Render("run "+t.RunID))
	if len(legislation) > 0 {
		fmt.Fprintf(p.w, "%s %s\n", p.headerStyle.Render("Key legislation:"), strings.Join(legislation, "; "))
	}
	fmt.Fprintln(p.w)

	for i, entry := range t.Entries {
		fmt.Fprintf(p.w, "%s\n", p.sectionStyle.Render(fmt.Sprintf("[%d/%d] %s", i+1, len(t.Entries), entry.StepID)))
		p.printAssessment(entry.Assessment)
		fmt.Fprintln(p.w)
		p.printMarkdown(entry.Rendered)
		if p.cfg.ShowSnapshots {
			p.printSnapshot(entry.Snapshot)
		}
		fmt.Fprintln(p.w)
	}

	fmt.Fprintf(p.w, "%s %s\n",
		p.headerStyle.Render("Highest risk:"),
		p.riskLabel(t.HighestRisk()))
}

// PrintAssessment writes a standalone risk assessment (the assess
// command).
func (p *Printer) PrintAssessment(a ethics.Assessment) {
	p.printAssessment(a)
}

func (p *Printer) printAssessment(a ethics.Assessment) {
	fmt.Fprintf(p.w, "Risk: %s\n", p.riskLabel(a.Level))
	fmt.Fprintf(p.w, "%s\n", a.Rationale)
	if len(a.GuidelineIDs) > 0 {
		fmt.Fprintf(p.w, "%s\n", p.dimStyle.Render("guidelines: "+strings.Join(a.GuidelineIDs, ", ")))
	}
}

func (p *Printer) riskLabel(l ethics.Level) string {
	label := l.Label()
	if style, ok := p.riskStyles[l]; ok {
		return style.Render(label)
	}
	return label
}

// printMarkdown renders prompt text as markdown when a renderer is
// available, otherwise prints it verbatim.
func (p *Printer) printMarkdown(text string) {
	if p.renderer != nil {
		if out, err := p.renderer.Render(text); err == nil {
			fmt.Fprint(p.w, out)
			return
		}
	}
	fmt.Fprintln(p.w, text)
}

func (p *Printer) printSnapshot(snapshot map[string]string) {
	fmt.Fprintf(p.w, "%s\n", p.dimStyle.Render(fmt.Sprintf("context: %d values", len(snapshot))))
}

// PrintWorkflowList writes a summary line per workflow definition.
func (p *Printer) PrintWorkflowList(defs []workflow.Definition) {
	for _, d := range defs {
		fmt.Fprintf(p.w, "%s  %s\n", p.headerStyle.Render(d.Name), p.dimStyle.Render(string(d.Category)))
		fmt.Fprintf(p.w, "  %s\n", p.truncate(d.Description))
		fmt.Fprintf(p.w, "  steps: %d  inputs: %s\n", len(d.Steps), strings.Join(d.Inputs, ", "))
	}
}

// PrintWorkflow writes a full workflow definition.
func (p *Printer) PrintWorkflow(d workflow.Definition, legislation []string) {
	fmt.Fprintf(p.w, "%s  %s\n", p.headerStyle.Render(d.Name), p.dimStyle.Render(string(d.Category)))
	fmt.Fprintf(p.w, "%s\n", d.Description)
	fmt.Fprintf(p.w, "Practice area: %s\n", d.PracticeArea)
	fmt.Fprintf(p.w, "Caller inputs: %s\n", strings.Join(d.Inputs, ", "))
	if len(legislation) > 0 {
		fmt.Fprintf(p.w, "Key legislation: %s\n", strings.Join(legislation, "; "))
	}
	fmt.Fprintln(p.w)
	for i, s := range d.Steps {
		fmt.Fprintf(p.w, "%s\n", p.sectionStyle.Render(fmt.Sprintf("%d. %s", i+1, s.ID)))
		fmt.Fprintf(p.w, "   uses %s %q\n", s.Uses.Kind, s.Uses.Name)
		fmt.Fprintf(p.w, "   requires: %s\n", strings.Join(s.Requires, ", "))
		fmt.Fprintf(p.w, "   outputs:  %s\n", strings.Join(s.Outputs, ", "))
	}
}

// PrintFrameworkList writes a summary line per framework.
func (p *Printer) PrintFrameworkList(frameworks []framework.Framework) {
	for _, f := range frameworks {
		fmt.Fprintf(p.w, "%s  %s  %s\n",
			p.headerStyle.Render(f.Acronym),
			p.dimStyle.Render(string(f.Category)),
			p.dimStyle.Render(f.Difficulty))
		fmt.Fprintf(p.w, "  %s\n", p.truncate(f.Description))
	}
}

// PrintFramework writes a full framework definition.
func (p *Printer) PrintFramework(f framework.Framework) {
	fmt.Fprintf(p.w, "%s - %s\n", p.headerStyle.Render(f.Acronym), f.Name)
	fmt.Fprintf(p.w, "%s | %s | %s\n", f.Category, f.Difficulty, f.Source)
	fmt.Fprintf(p.w, "%s\n\n", f.Description)
	for _, c := range f.Components {
		fmt.Fprintf(p.w, "%s\n", p.sectionStyle.Render("["+strings.ToUpper(c.Label)+"]"))
		fmt.Fprintf(p.w, "  %s\n", c.Guidance)
		if c.Example != "" {
			fmt.Fprintf(p.w, "  %s\n", p.dimStyle.Render("e.g. "+c.Example))
		}
	}
	if len(f.BestFor) > 0 {
		fmt.Fprintf(p.w, "\nBest for: %s\n", strings.Join(f.BestFor, "; "))
	}
}

// PrintTemplateList writes a summary line per template.
func (p *Printer) PrintTemplateList(templates []template.Template) {
	for _, t := range templates {
		fmt.Fprintf(p.w, "%s  %s\n", p.headerStyle.Render(t.Name), p.dimStyle.Render(string(t.PracticeArea)))
		fmt.Fprintf(p.w, "  %s\n", p.truncate(t.Description))
		fmt.Fprintf(p.w, "  inputs: %s\n", strings.Join(t.RequiredInputs, ", "))
	}
}

// PrintCourts writes the specialist court table.
func (p *Printer) PrintCourts(courts []refdata.Court) {
	for _, c := range courts {
		fmt.Fprintf(p.w, "%s  %s\n", p.headerStyle.Render(c.Abbreviation), c.Name)
		fmt.Fprintf(p.w, "  %s\n", p.dimStyle.Render(c.GoverningAct))
		fmt.Fprintf(p.w, "  %s\n", p.truncate(c.Jurisdiction))
	}
}

// PrintLegislation writes the legislation table.
func (p *Printer) PrintLegislation(acts []refdata.Act) {
	for _, a := range acts {
		fmt.Fprintf(p.w, "%s  %s\n", p.headerStyle.Render(a.Key), a.Citation())
		for _, prov := range a.KeyProvisions {
			fmt.Fprintf(p.w, "  %s %s: %s\n", prov.Section, p.headerStyle.Render(prov.Title), p.truncate(prov.Summary))
		}
	}
}

func (p *Printer) truncate(s string) string {
	max := p.cfg.TruncateLength
	if max <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
