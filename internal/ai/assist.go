// Package ai wraps the Gemini API for lead scoring, email drafting and
// the other assistant features. Without an API key every call degrades
// to a static fallback instead of erroring, so the rest of the product
// keeps working offline.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"simplecrm/internal/domain"
)

const defaultModel = "gemini-3-flash-preview"

// Assist is the assistant facade. A zero Assist (no client) is valid
// and serves fallbacks only.
type Assist struct {
	client *genai.Client
	model  string
}

// New builds an assistant backed by Gemini. An empty key yields a
// disabled assistant that only returns fallbacks.
func New(ctx context.Context, apiKey string) (*Assist, error) {
	if apiKey == "" {
		return &Assist{model: defaultModel}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Assist{client: client, model: defaultModel}, nil
}

// Enabled reports whether a live model is configured.
func (a *Assist) Enabled() bool { return a.client != nil }

func (a *Assist) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func (a *Assist) generateJSON(ctx context.Context, prompt string, out any) error {
	text, err := a.generate(ctx, prompt, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(strings.TrimSpace(text)), out)
}

// LeadScore is the scoring verdict for one lead.
type LeadScore struct {
	Score     int    `json:"score"`
	Label     string `json:"label"` // Hot / Warm / Cold
	Reasoning string `json:"reasoning"`
}

// ScoreLead rates conversion probability from the lead profile and its
// recent timeline. Returns nil when the assistant is disabled or the
// model fails.
func (a *Assist) ScoreLead(ctx context.Context, lead domain.Lead, history []domain.Activity) *LeadScore {
	if !a.Enabled() {
		return nil
	}

	recent := make([]string, 0, 5)
	for i, act := range history {
		if i == 5 {
			break
		}
		recent = append(recent, act.Content)
	}
	prompt := fmt.Sprintf(`
Analyze this lead for an Indian B2B tech business and provide a conversion probability score (0-100) and a label ('Hot', 'Warm', or 'Cold').
Name: %s
Company: %s
Value: ₹%.0f
Status: %s
Priority: %s
Interactions: %d
History: %s

Return a JSON object: { "score": number, "label": "Hot" | "Warm" | "Cold", "reasoning": string }`,
		lead.Name, lead.Company, lead.Value, lead.Status, lead.Priority, len(history), strings.Join(recent, "; "))

	var score LeadScore
	if err := a.generateJSON(ctx, prompt, &score); err != nil {
		return nil
	}
	return &score
}

// EmailDraft is a generated subject/body pair.
type EmailDraft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// EmailContext describes the recipient and sender for drafting.
type EmailContext struct {
	Name     string
	Company  string
	UserName string
}

func (a *Assist) GenerateEmail(ctx context.Context, intent, tone, points string, ec EmailContext) *EmailDraft {
	if !a.Enabled() {
		return nil
	}
	prompt := fmt.Sprintf(`
Generate a professional business email for an Indian client.
Intent: %s
Tone: %s
Key Points to include: %s
Recipient Name: %s
Recipient Company: %s
My Name: %s
My Company: SimpleCRM Solutions

Return a JSON object: { "subject": "string", "body": "string" }
Make sure the email is polite and culturally appropriate for the Indian market.`,
		intent, tone, points, ec.Name, ec.Company, ec.UserName)

	var draft EmailDraft
	if err := a.generateJSON(ctx, prompt, &draft); err != nil {
		return nil
	}
	return &draft
}

func (a *Assist) ImproveEmail(ctx context.Context, text string) string {
	if !a.Enabled() {
		return ""
	}
	prompt := fmt.Sprintf(`Refine and improve the following business email to be more professional, clear, and impactful while maintaining the original meaning. Text: %q`, text)
	out, err := a.generate(ctx, prompt, nil)
	if err != nil {
		return ""
	}
	return out
}

// GrammarResult is the corrected text plus a change summary.
type GrammarResult struct {
	Corrected   string `json:"corrected"`
	Explanation string `json:"explanation"`
}

func (a *Assist) CheckGrammar(ctx context.Context, text string) *GrammarResult {
	if !a.Enabled() {
		return nil
	}
	prompt := fmt.Sprintf(`Check and fix any grammar or spelling errors in this business email. Text: %q. Return JSON: { "corrected": "the full fixed text", "explanation": "brief summary of changes" }`, text)
	var res GrammarResult
	if err := a.generateJSON(ctx, prompt, &res); err != nil {
		return nil
	}
	return &res
}

func (a *Assist) Translate(ctx context.Context, text, targetLang string) string {
	if !a.Enabled() {
		return ""
	}
	prompt := fmt.Sprintf(`Translate the following business email text accurately to %s. Text: %q`, targetLang, text)
	out, err := a.generate(ctx, prompt, nil)
	if err != nil {
		return ""
	}
	return out
}

// SummarizeLead condenses a lead's timeline into a short handoff brief.
func (a *Assist) SummarizeLead(ctx context.Context, lead domain.Lead, history []domain.Activity) string {
	if !a.Enabled() {
		return "Summary unavailable."
	}
	var lines []string
	for _, act := range history {
		lines = append(lines, fmt.Sprintf("%s: %s - %s", act.Timestamp.Format("2006-01-02 15:04"), act.Type, act.Content))
	}
	prompt := fmt.Sprintf(`Summarize the following lead interactions into a concise 3-sentence executive summary for a sales person.
Focus on intent, pain points, and current status.
Lead: %s from %s
History:
%s`, lead.Name, lead.Company, strings.Join(lines, "\n"))

	out, err := a.generate(ctx, prompt, nil)
	if err != nil || out == "" {
		return "Could not generate summary."
	}
	return out
}

func (a *Assist) SummarizeActivities(ctx context.Context, activities []domain.Activity) string {
	if !a.Enabled() || len(activities) == 0 {
		return "No activity to summarize."
	}
	var logs []string
	for _, act := range activities {
		logs = append(logs, fmt.Sprintf("[%s] %s: %s", act.Timestamp.Format("2006-01-02 15:04"), act.Type, act.Content))
	}
	prompt := fmt.Sprintf(`
Summarize these CRM activities for a business user in India.
Identify:
1. Overall momentum (active/stalled).
2. Most frequent topics of discussion.
3. Critical pending follow-ups or concerns.

Activities:
%s

Return a concise summary (max 100 words) using bullet points for readability.`, strings.Join(logs, "\n"))

	out, err := a.generate(ctx, prompt, nil)
	if err != nil || out == "" {
		return "Summary generation failed."
	}
	return out
}

// AnalyzeNote extracts sentiment, topics and action items from a note.
func (a *Assist) AnalyzeNote(ctx context.Context, note string) *domain.NoteAnalysis {
	if !a.Enabled() {
		return nil
	}
	prompt := fmt.Sprintf(`
Analyze this sales note and extract sentiment, key topics, and any concrete action items.
Note: %q

Return JSON: { "sentiment": "Positive" | "Neutral" | "Negative", "topics": string[], "actionItems": string[] }`, note)

	var res domain.NoteAnalysis
	if err := a.generateJSON(ctx, prompt, &res); err != nil {
		return nil
	}
	return &res
}

// Enrichment carries a web-grounded company profile.
type Enrichment struct {
	Summary string             `json:"summary"`
	Sources []EnrichmentSource `json:"sources"`
}

type EnrichmentSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// EnrichCompany looks up public information about a company with the
// model's search grounding.
func (a *Assist) EnrichCompany(ctx context.Context, companyName string) *Enrichment {
	if !a.Enabled() {
		return nil
	}
	prompt := fmt.Sprintf(`Find basic business information about the company %q in India.
Specifically look for their industry, approximate company size (number of employees), and official website URL.`, companyName)

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		return nil
	}

	out := &Enrichment{Summary: resp.Text()}
	if out.Summary == "" {
		out.Summary = "No information found."
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk.Web != nil && chunk.Web.URI != "" {
				out.Sources = append(out.Sources, EnrichmentSource{URI: chunk.Web.URI, Title: chunk.Web.Title})
			}
		}
	}
	return out
}

// DetectDuplicates returns the IDs of existing leads that likely match
// the new entry. Disabled assistants report no duplicates.
func (a *Assist) DetectDuplicates(ctx context.Context, newLead domain.Lead, existing []domain.Lead) []string {
	if !a.Enabled() || len(existing) == 0 {
		return nil
	}
	type candidate struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Company string `json:"company"`
	}
	candidates := make([]candidate, 0, len(existing))
	for _, l := range existing {
		candidates = append(candidates, candidate{ID: l.ID, Name: l.Name, Phone: l.Phone, Company: l.Company})
	}
	encoded, _ := json.Marshal(candidates)
	prompt := fmt.Sprintf(`
Compare this new lead entry with the existing leads list and identify any highly likely duplicates.
New Lead: Name: %s, Phone: %s, Company: %s
Existing Leads: %s

Return a JSON array of IDs that are likely duplicates: [string, string...]
If no duplicates, return an empty array [].`, newLead.Name, newLead.Phone, newLead.Company, encoded)

	var ids []string
	if err := a.generateJSON(ctx, prompt, &ids); err != nil {
		return nil
	}
	return ids
}

const fallbackNextActions = "• Follow up with a friendly call.\n• Check for mutual LinkedIn connections.\n• Send a quick value proposition via WhatsApp."

// StrategicInsights suggests next actions for a lead.
func (a *Assist) StrategicInsights(ctx context.Context, lead domain.Lead, history []domain.Activity) string {
	if !a.Enabled() {
		return "No strategic insights available without API key."
	}
	var lines []string
	for _, act := range history {
		lines = append(lines, fmt.Sprintf("%s: %s - %s", act.Timestamp.Format("2006-01-02 15:04"), act.Type, act.Content))
	}
	prompt := fmt.Sprintf(`
You are a Strategic Sales Assistant for an Indian CRM.
Analyze the lead %q from %q.
Status: %s
Value: ₹%.0f
Priority: %s
History:
%s

Provide exactly 3 bullet points of "Suggested Next Actions".
Make them specific, practical, and culturally aware for the Indian market.
Keep each bullet point under 15 words.`, lead.Name, lead.Company, lead.Status, lead.Value, lead.Priority, strings.Join(lines, "\n"))

	out, err := a.generate(ctx, prompt, nil)
	if err != nil || out == "" {
		return fallbackNextActions
	}
	return out
}

// ExtractedLead is the structured result of free-text lead capture.
type ExtractedLead struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Company  string  `json:"company"`
	Value    float64 `json:"value"`
	Status   string  `json:"status"`
	Source   string  `json:"source"`
	Priority string  `json:"priority"`
	City     string  `json:"city"`
	Notes    string  `json:"notes"`
}

// ExtractLead parses a free-text description (typed or dictated) into
// lead fields.
func (a *Assist) ExtractLead(ctx context.Context, text string, statuses, sources []string) *ExtractedLead {
	if !a.Enabled() {
		return nil
	}
	prompt := fmt.Sprintf(`
Extract lead details from the following text and return a JSON object.
Text: %q
Available Statuses: %s
Available Sources: %s

JSON structure:
{
  "name": string,
  "email": string,
  "phone": string,
  "company": string,
  "value": number,
  "status": string,
  "source": string,
  "priority": "High" | "Medium" | "Low",
  "city": string,
  "notes": string
}`, text, strings.Join(statuses, ", "), strings.Join(sources, ", "))

	var lead ExtractedLead
	if err := a.generateJSON(ctx, prompt, &lead); err != nil {
		return nil
	}
	return &lead
}

// ReportMetrics is the aggregate snapshot fed to report insights.
type ReportMetrics struct {
	LeadsCount     int
	CustomersCount int
	WonDealsValue  float64
	LostDealsValue float64
	TopSources     []string
}

var fallbackInsights = []string{
	"Most of your business is coming from Website referrals.",
	"Conversion rate is steady at 12.5% this month.",
	"Consider focusing more on 'Qualified' leads to hit your target.",
}

// ReportInsights produces three headline observations for the report
// screen; a canned set is returned when no model is configured.
func (a *Assist) ReportInsights(ctx context.Context, m ReportMetrics) []string {
	if !a.Enabled() {
		return fallbackInsights
	}
	prompt := fmt.Sprintf(`
Analyze these CRM metrics for an Indian business and provide exactly 3 impactful insights.
Metrics:
- Total Leads: %d
- Total Customers: %d
- Revenue from Won Deals: ₹%.0f
- Revenue lost from Lost Deals: ₹%.0f
- Top Lead Sources: %s

Provide 3 concise bullet points. Mention specific trends and provide 1 actionable recommendation.
Keep it culturally relevant for the Indian market.`,
		m.LeadsCount, m.CustomersCount, m.WonDealsValue, m.LostDealsValue, strings.Join(m.TopSources, ", "))

	out, err := a.generate(ctx, prompt, nil)
	if err != nil {
		return []string{"Insights currently unavailable."}
	}
	var insights []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			insights = append(insights, line)
		}
		if len(insights) == 3 {
			break
		}
	}
	if len(insights) == 0 {
		return []string{"Insights currently unavailable."}
	}
	return insights
}
