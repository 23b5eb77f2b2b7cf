package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/clearclaim/fnoltriage/internal/model"
)

// Renderer writes decisions as JSON, Markdown, or a console summary
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes an indented JSON decision to path
func (r *Renderer) RenderJSON(decision *model.Decision, path string) error {
	data, err := MarshalDecision(decision)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// MarshalDecision renders a decision as stable, indented JSON. Two decisions
// for the same input marshal byte-identically.
func MarshalDecision(decision *model.Decision) ([]byte, error) {
	data, err := json.MarshalIndent(decision, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal decision: %w", err)
	}
	return append(data, '\n'), nil
}

// RenderMarkdown writes a human-readable decision report to path
func (r *Renderer) RenderMarkdown(decision *model.Decision, source string, path string) error {
	var b strings.Builder

	b.WriteString("# FNOL Triage Decision\n\n")
	if source != "" {
		fmt.Fprintf(&b, "**Source:** %s\n\n", source)
	}
	fmt.Fprintf(&b, "**Workflow:** %s\n\n", decision.Workflow)
	fmt.Fprintf(&b, "**Reason:** %s\n\n", decision.WorkflowReason)
	fmt.Fprintf(&b, "**Severity:** %.2f\n\n", decision.Severity)

	b.WriteString("## Extracted Fields\n\n")
	b.WriteString("| Field | Value |\n|---|---|\n")
	fields := decision.Fields
	fmt.Fprintf(&b, "| Policy number | %s |\n", orDash(fields.PolicyNumber))
	fmt.Fprintf(&b, "| Policyholder | %s |\n", orDash(fields.PolicyholderName))
	fmt.Fprintf(&b, "| Incident date | %s |\n", dateOrDash(fields.IncidentDate))
	fmt.Fprintf(&b, "| Submission date | %s |\n", dateOrDash(fields.SubmissionDate))
	fmt.Fprintf(&b, "| Contact phone | %s |\n", orDash(fields.ContactPhone))
	fmt.Fprintf(&b, "| Claimed amount | %s |\n", orDash(fields.ClaimedAmountText))
	fmt.Fprintf(&b, "| Incident type | %s |\n", fields.IncidentType)
	fmt.Fprintf(&b, "| Police report | %v |\n", fields.HasPoliceReport)
	fmt.Fprintf(&b, "| Photos | %v |\n", fields.HasPhotos)
	b.WriteString("\n")

	if len(decision.Flags) > 0 {
		b.WriteString("## Validation Flags\n\n")
		for i, flag := range decision.Flags {
			fmt.Fprintf(&b, "- `%s`: %s\n", flag, decision.Reasons[i])
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\n")
		for _, line := range decision.Explanation {
			fmt.Fprintf(&b, "_%s_\n", line)
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderSummary prints a one-screen summary to w
func (r *Renderer) RenderSummary(w io.Writer, decision *model.Decision, source string) {
	if source != "" {
		fmt.Fprintf(w, "Report:    %s\n", source)
	}
	fmt.Fprintf(w, "Workflow:  %s\n", decision.Workflow)
	fmt.Fprintf(w, "Reason:    %s\n", decision.WorkflowReason)
	fmt.Fprintf(w, "Severity:  %.2f\n", decision.Severity)
	fmt.Fprintf(w, "Type:      %s\n", decision.Fields.IncidentType)
	if len(decision.Flags) > 0 {
		fmt.Fprintf(w, "Flags:     %d\n", len(decision.Flags))
		for i, flag := range decision.Flags {
			fmt.Fprintf(w, "  - %s: %s\n", flag, decision.Reasons[i])
		}
	}
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func dateOrDash(d *model.Date) string {
	if d == nil {
		return "-"
	}
	return d.String()
}
