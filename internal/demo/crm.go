// Package demo holds the hardcoded CRM records rendered by the pages.
package demo

import (
	"fmt"
	"strings"
)

// KPI is a headline figure on the dashboard and analytics pages.
type KPI struct {
	Label    string
	Value    string
	Icon     string
	Change   string
	Positive bool
}

// Deal is one opportunity in the pipeline.
type Deal struct {
	ID          int
	Name        string
	Company     string
	Value       int
	Owner       string
	DaysInStage int
	Probability int
}

// Stage is a pipeline column.
type Stage struct {
	ID    string
	Label string
	Color string
	Deals []Deal
}

// Total sums the deal values of the stage.
func (s Stage) Total() int {
	sum := 0
	for _, d := range s.Deals {
		sum += d.Value
	}
	return sum
}

// Activity is a dashboard feed entry.
type Activity struct {
	Icon string
	Text string
	When string
}

// Task is a dashboard to-do.
type Task struct {
	Title    string
	Due      string
	Priority string
	Overdue  bool
	Done     bool
}

// Contact is a person at a customer.
type Contact struct {
	ID      int
	Name    string
	Company string
	Role    string
	Email   string
	Phone   string
	Status  string
	Deals   int
	Value   string
}

// Company is an account.
type Company struct {
	ID           int
	Name         string
	Industry     string
	Logo         string
	Contacts     int
	OpenDeals    int
	Revenue      string
	Status       string
	LastActivity string
}

// File is a document in the shared drive.
type File struct {
	ID       int
	Name     string
	Icon     string
	Type     string
	Client   string
	Size     string
	Modified string
}

// Template is a reusable document.
type Template struct {
	ID          int
	Name        string
	Description string
	Icon        string
	Category    string
	LastUsed    string
	Uses        int
}

// SharedDoc is a document someone shared with the user.
type SharedDoc struct {
	ID         int
	Name       string
	Icon       string
	SharedBy   string
	Permission string
	Date       string
}

// Bar is one bar of a simple chart; Pct is relative to the largest bar.
type Bar struct {
	Label string
	Value string
	Pct   int
	Color string
}

// Rep is a sales representative.
type Rep struct {
	Name     string
	Role     string
	Deals    int
	Revenue  string
	Quota    string
	QuotaPct int
	Trend    string
	TrendUp  bool
	// Share is revenue relative to the top rep, in percent.
	Share int
}

// FileFilters lists the file type filters in display order.
var FileFilters = []string{"All", "Proposals", "Contracts", "Invoices", "Other"}

// DashboardKPIs returns the dashboard headline figures.
func DashboardKPIs() []KPI {
	return []KPI{
		{Label: "Revenue (MTD)", Value: "$284K", Icon: "payments", Change: "+12.5%", Positive: true},
		{Label: "Active Deals", Value: "47", Icon: "handshake", Change: "+8", Positive: true},
		{Label: "Total Contacts", Value: "1,248", Icon: "group", Change: "+34", Positive: true},
		{Label: "Deals at Risk", Value: "3", Icon: "trending_down", Change: "+1", Positive: false},
	}
}

// RecentActivities returns the dashboard activity feed.
func RecentActivities() []Activity {
	return []Activity{
		{Icon: "mail", Text: "Sarah Chen sent a proposal to Globex Inc for the Cloud Migration project.", When: "15 min ago"},
		{Icon: "call", Text: "James Miller completed a discovery call with Wayne Industries.", When: "1 hour ago"},
		{Icon: "handshake", Text: "Support Contract with Umbrella LLC moved to Closed Won.", When: "2 hours ago"},
		{Icon: "edit_note", Text: "Lisa Park added notes to the Initech opportunity.", When: "3 hours ago"},
		{Icon: "mail", Text: "Follow-up email sent to Acme Corp regarding license terms.", When: "5 hours ago"},
		{Icon: "call", Text: "Demo call scheduled with Stark Solutions for Thursday.", When: "Yesterday"},
	}
}

// Tasks returns the dashboard to-do list.
func Tasks() []Task {
	return []Task{
		{Title: "Send revised proposal to Acme Corp", Due: "Today, 5:00 PM", Priority: "High"},
		{Title: "Follow up with Globex Inc decision maker", Due: "Tomorrow", Priority: "High"},
		{Title: "Prepare quarterly pipeline review deck", Due: "Feb 12", Priority: "Medium"},
		{Title: "Update CRM notes for Wayne Industries", Due: "Feb 7", Priority: "Low", Overdue: true},
		{Title: "Schedule onboarding call with Umbrella LLC", Due: "Feb 13", Priority: "Medium", Done: true},
		{Title: "Review Stark Solutions contract terms", Due: "Feb 14", Priority: "Low"},
	}
}

// Pipeline returns the deal stages in board order.
func Pipeline() []Stage {
	return []Stage{
		{ID: "prospecting", Label: "Prospecting", Color: "#6b7280", Deals: []Deal{
			{ID: 1, Name: "IT Modernization", Company: "Hooli", Value: 85000, Owner: "María García", DaysInStage: 3, Probability: 15},
			{ID: 2, Name: "Security Suite Upgrade", Company: "LexCorp", Value: 42000, Owner: "David Park", DaysInStage: 1, Probability: 10},
			{ID: 3, Name: "DevOps Pipeline", Company: "Piedmont Tech", Value: 53000, Owner: "Emma Wilson", DaysInStage: 5, Probability: 20},
		}},
		{ID: "qualification", Label: "Qualification", Color: "#2563eb", Deals: []Deal{
			{ID: 4, Name: "Analytics Platform", Company: "Initech", Value: 67200, Owner: "Lisa Park", DaysInStage: 4, Probability: 35},
			{ID: 5, Name: "Data Warehouse Setup", Company: "Stark Solutions", Value: 92000, Owner: "Alex Thompson", DaysInStage: 7, Probability: 40},
			{ID: 6, Name: "API Integration Suite", Company: "Cyberdyne", Value: 128000, Owner: "Sarah Chen", DaysInStage: 2, Probability: 30},
			{ID: 7, Name: "Compliance Dashboard", Company: "Oscorp", Value: 72000, Owner: "Priya Sharma", DaysInStage: 6, Probability: 45},
		}},
		{ID: "proposal", Label: "Proposal", Color: "#7c3aed", Deals: []Deal{
			{ID: 8, Name: "Cloud Migration Package", Company: "Globex Inc", Value: 124500, Owner: "Sarah Chen", DaysInStage: 5, Probability: 55},
			{ID: 9, Name: "Security Audit", Company: "Wayne Industries", Value: 35000, Owner: "James Miller", DaysInStage: 3, Probability: 60},
			{ID: 10, Name: "Platform Licensing", Company: "Umbrella LLC", Value: 48500, Owner: "Emma Wilson", DaysInStage: 8, Probability: 50},
			{ID: 11, Name: "ML Infrastructure", Company: "Piedmont Tech", Value: 74000, Owner: "Lisa Park", DaysInStage: 1, Probability: 65},
		}},
		{ID: "negotiation", Label: "Negotiation", Color: "#ea580c", Deals: []Deal{
			{ID: 12, Name: "Enterprise License Renewal", Company: "Acme Corp", Value: 48000, Owner: "James Miller", DaysInStage: 2, Probability: 75},
			{ID: 13, Name: "Managed Services", Company: "Globex Inc", Value: 86000, Owner: "Alex Thompson", DaysInStage: 4, Probability: 80},
			{ID: 14, Name: "SaaS Migration", Company: "Wayne Industries", Value: 62000, Owner: "Sarah Chen", DaysInStage: 1, Probability: 85},
		}},
		{ID: "closed-won", Label: "Closed Won", Color: "#059669", Deals: []Deal{
			{ID: 15, Name: "Support Contract", Company: "Umbrella LLC", Value: 18900, Owner: "Priya Sharma", Probability: 100},
			{ID: 16, Name: "Annual Platform License", Company: "Cyberdyne", Value: 215000, Owner: "Lisa Park", Probability: 100},
			{ID: 17, Name: "Consulting Retainer", Company: "Initech", Value: 144000, Owner: "James Miller", Probability: 100},
			{ID: 18, Name: "Infrastructure Upgrade", Company: "Acme Corp", Value: 446000, Owner: "Sarah Chen", Probability: 100},
		}},
	}
}

// PipelineSummary describes the open deals, e.g. "14 open deals worth $1.0M".
func PipelineSummary(stages []Stage) string {
	count, total := 0, 0
	for _, s := range stages {
		if s.ID == "closed-won" {
			continue
		}
		count += len(s.Deals)
		total += s.Total()
	}
	return fmt.Sprintf("%d open deals worth %s", count, FormatMoney(total))
}

// FormatMoney renders whole dollars compactly: $950, $85K, $1.2M.
func FormatMoney(v int) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("$%.1fM", float64(v)/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("$%dK", (v+500)/1000)
	default:
		return fmt.Sprintf("$%d", v)
	}
}

// Contacts returns the contact list.
func Contacts() []Contact {
	return []Contact{
		{ID: 1, Name: "Sarah Chen", Company: "Acme Corp", Role: "VP Engineering", Email: "sarah@acme.com", Phone: "+1 555-0101", Status: "Active", Deals: 3, Value: "$142K"},
		{ID: 2, Name: "James Miller", Company: "Globex Inc", Role: "CTO", Email: "james@globex.com", Phone: "+1 555-0102", Status: "Active", Deals: 2, Value: "$186K"},
		{ID: 3, Name: "María García", Company: "Initech", Role: "Procurement Manager", Email: "maria@initech.com", Phone: "+1 555-0103", Status: "Lead", Deals: 1, Value: "$67K"},
		{ID: 4, Name: "David Park", Company: "Wayne Industries", Role: "CISO", Email: "david@wayne.com", Phone: "+1 555-0104", Status: "Lead", Deals: 1, Value: "$35K"},
		{ID: 5, Name: "Emma Wilson", Company: "Umbrella LLC", Role: "Head of IT", Email: "emma@umbrella.com", Phone: "+1 555-0105", Status: "Active", Deals: 1, Value: "$19K"},
		{ID: 6, Name: "Alex Thompson", Company: "Stark Solutions", Role: "Director of Ops", Email: "alex@stark.com", Phone: "+1 555-0106", Status: "Lead", Deals: 1, Value: "$92K"},
		{ID: 7, Name: "Priya Sharma", Company: "Oscorp", Role: "VP Product", Email: "priya@oscorp.com", Phone: "+1 555-0107", Status: "Active", Deals: 2, Value: "$78K"},
		{ID: 8, Name: "Michael Brown", Company: "LexCorp", Role: "CFO", Email: "michael@lexcorp.com", Phone: "+1 555-0108", Status: "Inactive", Value: "$0"},
		{ID: 9, Name: "Lisa Park", Company: "Cyberdyne", Role: "Engineering Lead", Email: "lisa@cyberdyne.com", Phone: "+1 555-0109", Status: "Active", Deals: 4, Value: "$215K"},
		{ID: 10, Name: "Robert Kim", Company: "Hooli", Role: "Head of Security", Email: "robert@hooli.com", Phone: "+1 555-0110", Status: "Inactive", Value: "$0"},
	}
}

// SearchContacts matches q against name, company and role.
func SearchContacts(contacts []Contact, q string) []Contact {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return contacts
	}
	var out []Contact
	for _, c := range contacts {
		if containsAny(q, c.Name, c.Company, c.Role) {
			out = append(out, c)
		}
	}
	return out
}

// CountByStatus tallies contacts per status.
func CountByStatus(contacts []Contact) map[string]int {
	out := make(map[string]int)
	for _, c := range contacts {
		out[c.Status]++
	}
	return out
}

// Companies returns the account list.
func Companies() []Company {
	return []Company{
		{ID: 1, Name: "Acme Corp", Industry: "Technology", Logo: "AC", Contacts: 4, OpenDeals: 2, Revenue: "$494K", Status: "Customer", LastActivity: "2 hours ago"},
		{ID: 2, Name: "Globex Inc", Industry: "Manufacturing", Logo: "GI", Contacts: 3, OpenDeals: 2, Revenue: "$210K", Status: "Customer", LastActivity: "5 hours ago"},
		{ID: 3, Name: "Initech", Industry: "Software", Logo: "IN", Contacts: 2, OpenDeals: 1, Revenue: "$211K", Status: "Customer", LastActivity: "1 day ago"},
		{ID: 4, Name: "Wayne Industries", Industry: "Defense & Security", Logo: "WI", Contacts: 3, OpenDeals: 2, Revenue: "$97K", Status: "Prospect", LastActivity: "3 hours ago"},
		{ID: 5, Name: "Umbrella LLC", Industry: "Healthcare", Logo: "UL", Contacts: 2, OpenDeals: 1, Revenue: "$67K", Status: "Customer", LastActivity: "1 day ago"},
		{ID: 6, Name: "Stark Solutions", Industry: "Engineering", Logo: "SS", Contacts: 2, OpenDeals: 1, Revenue: "$92K", Status: "Prospect", LastActivity: "2 days ago"},
		{ID: 7, Name: "Oscorp", Industry: "Biotech", Logo: "OS", Contacts: 2, OpenDeals: 1, Revenue: "$72K", Status: "Prospect", LastActivity: "4 days ago"},
		{ID: 8, Name: "Cyberdyne", Industry: "AI & Robotics", Logo: "CY", Contacts: 3, OpenDeals: 1, Revenue: "$343K", Status: "Customer", LastActivity: "1 day ago"},
		{ID: 9, Name: "LexCorp", Industry: "Finance", Logo: "LC", Contacts: 1, OpenDeals: 1, Revenue: "$42K", Status: "Prospect", LastActivity: "1 week ago"},
		{ID: 10, Name: "Hooli", Industry: "Cloud Services", Logo: "HO", Contacts: 1, OpenDeals: 1, Revenue: "$85K", Status: "Prospect", LastActivity: "3 days ago"},
		{ID: 11, Name: "Piedmont Tech", Industry: "Infrastructure", Logo: "PT", Contacts: 2, OpenDeals: 2, Revenue: "$127K", Status: "Prospect", LastActivity: "5 days ago"},
		{ID: 12, Name: "Vandelay Industries", Industry: "Import/Export", Logo: "VI", Contacts: 1, Revenue: "$0", Status: "Churned", LastActivity: "2 months ago"},
	}
}

// SearchCompanies matches q against name and industry.
func SearchCompanies(companies []Company, q string) []Company {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return companies
	}
	var out []Company
	for _, c := range companies {
		if containsAny(q, c.Name, c.Industry) {
			out = append(out, c)
		}
	}
	return out
}

// Files returns the drive contents, newest first.
func Files() []File {
	return []File{
		{ID: 1, Name: "Acme Corp - Enterprise License Proposal.pdf", Icon: "picture_as_pdf", Type: "Proposal", Client: "Acme Corp", Size: "2.4 MB", Modified: "2 hours ago"},
		{ID: 2, Name: "Globex Inc - Service Agreement v3.docx", Icon: "description", Type: "Contract", Client: "Globex Inc", Size: "1.1 MB", Modified: "5 hours ago"},
		{ID: 3, Name: "INV-2025-0047 Wayne Industries.pdf", Icon: "receipt_long", Type: "Invoice", Client: "Wayne Industries", Size: "340 KB", Modified: "Yesterday"},
		{ID: 4, Name: "Cyberdyne Systems - Platform Migration.pdf", Icon: "picture_as_pdf", Type: "Proposal", Client: "Cyberdyne", Size: "4.7 MB", Modified: "Yesterday"},
		{ID: 5, Name: "Oscorp - NDA (Signed).pdf", Icon: "verified", Type: "Contract", Client: "Oscorp", Size: "520 KB", Modified: "2 days ago"},
		{ID: 6, Name: "INV-2025-0046 Stark Solutions.pdf", Icon: "receipt_long", Type: "Invoice", Client: "Stark Solutions", Size: "290 KB", Modified: "2 days ago"},
		{ID: 7, Name: "Pricing Guide 2025.xlsx", Icon: "table_chart", Type: "Other", Client: "Internal", Size: "1.8 MB", Modified: "3 days ago"},
		{ID: 8, Name: "Initech - Custom Integration Proposal.pdf", Icon: "picture_as_pdf", Type: "Proposal", Client: "Initech", Size: "3.2 MB", Modified: "4 days ago"},
		{ID: 9, Name: "LexCorp - Master Service Agreement.docx", Icon: "description", Type: "Contract", Client: "LexCorp", Size: "1.5 MB", Modified: "5 days ago"},
		{ID: 10, Name: "INV-2025-0045 Umbrella LLC.pdf", Icon: "receipt_long", Type: "Invoice", Client: "Umbrella LLC", Size: "310 KB", Modified: "5 days ago"},
		{ID: 11, Name: "Hooli - Security Assessment Proposal.pdf", Icon: "picture_as_pdf", Type: "Proposal", Client: "Hooli", Size: "5.1 MB", Modified: "1 week ago"},
		{ID: 12, Name: "Q1 2025 Sales Playbook.pptx", Icon: "slideshow", Type: "Other", Client: "Internal", Size: "8.2 MB", Modified: "1 week ago"},
		{ID: 13, Name: "INV-2025-0044 Acme Corp.pdf", Icon: "receipt_long", Type: "Invoice", Client: "Acme Corp", Size: "350 KB", Modified: "1 week ago"},
		{ID: 14, Name: "Stark Solutions - Phase 2 Addendum.docx", Icon: "description", Type: "Contract", Client: "Stark Solutions", Size: "890 KB", Modified: "2 weeks ago"},
		{ID: 15, Name: "Commission Structure 2025.xlsx", Icon: "table_chart", Type: "Other", Client: "Internal", Size: "1.2 MB", Modified: "2 weeks ago"},
		{ID: 16, Name: "INV-2025-0043 Cyberdyne.pdf", Icon: "receipt_long", Type: "Invoice", Client: "Cyberdyne", Size: "380 KB", Modified: "2 weeks ago"},
		{ID: 17, Name: "Wayne Industries - Annual Renewal.docx", Icon: "description", Type: "Contract", Client: "Wayne Industries", Size: "2.1 MB", Modified: "3 weeks ago"},
		{ID: 18, Name: "Competitive Analysis - Enterprise.pptx", Icon: "slideshow", Type: "Other", Client: "Internal", Size: "6.7 MB", Modified: "1 month ago"},
	}
}

// FilterFiles applies a FileFilters entry and a name/client query. Unknown
// filters behave like "All".
func FilterFiles(files []File, filter, q string) []File {
	var kind string
	switch filter {
	case "Proposals":
		kind = "Proposal"
	case "Contracts":
		kind = "Contract"
	case "Invoices":
		kind = "Invoice"
	case "Other":
		kind = "Other"
	}
	q = strings.ToLower(strings.TrimSpace(q))
	var out []File
	for _, f := range files {
		if kind != "" && f.Type != kind {
			continue
		}
		if q != "" && !containsAny(q, f.Name, f.Client) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Templates returns the document templates.
func Templates() []Template {
	return []Template{
		{ID: 1, Name: "Enterprise Proposal", Description: "Full-featured proposal for enterprise clients with scope, pricing, and timeline sections.", Icon: "description", Category: "Proposal", LastUsed: "2 days ago", Uses: 34},
		{ID: 2, Name: "Standard SaaS Agreement", Description: "Master service agreement template for SaaS subscription products.", Icon: "gavel", Category: "Contract", LastUsed: "1 week ago", Uses: 28},
		{ID: 3, Name: "SMB Quick Proposal", Description: "Streamlined one-page proposal for small to mid-size business deals.", Icon: "bolt", Category: "Proposal", LastUsed: "3 days ago", Uses: 47},
		{ID: 4, Name: "Follow-Up Email", Description: "Post-demo follow-up with next steps, pricing summary, and CTA.", Icon: "mail", Category: "Email", LastUsed: "Today", Uses: 112},
		{ID: 5, Name: "Non-Disclosure Agreement", Description: "Mutual NDA for early-stage conversations with prospects.", Icon: "lock", Category: "Contract", LastUsed: "5 days ago", Uses: 19},
		{ID: 6, Name: "Monthly Invoice", Description: "Recurring invoice with line items and payment terms.", Icon: "receipt_long", Category: "Invoice", LastUsed: "Yesterday", Uses: 86},
		{ID: 7, Name: "Renewal Proposal", Description: "Renewal offer summarizing usage, value delivered and new pricing.", Icon: "autorenew", Category: "Proposal", LastUsed: "2 weeks ago", Uses: 15},
	}
}

// SharedDocs returns documents shared with the user.
func SharedDocs() []SharedDoc {
	return []SharedDoc{
		{ID: 1, Name: "Q2 Sales Forecast - Final.xlsx", Icon: "table_chart", SharedBy: "Sarah Chen", Permission: "Can edit", Date: "1 hour ago"},
		{ID: 2, Name: "Acme Corp - Proposal Review.pdf", Icon: "picture_as_pdf", SharedBy: "James Miller", Permission: "Can comment", Date: "3 hours ago"},
		{ID: 3, Name: "Client Onboarding Checklist.docx", Icon: "description", SharedBy: "Priya Sharma", Permission: "Can view", Date: "Yesterday"},
		{ID: 4, Name: "Commission Structure 2025.xlsx", Icon: "table_chart", SharedBy: "Alex Thompson", Permission: "Can edit", Date: "2 days ago"},
		{ID: 5, Name: "Competitive Analysis - Enterprise.pptx", Icon: "slideshow", SharedBy: "Lisa Park", Permission: "Can view", Date: "3 days ago"},
		{ID: 6, Name: "Product Demo Script v4.docx", Icon: "description", SharedBy: "Emma Wilson", Permission: "Can comment", Date: "1 week ago"},
	}
}

// AnalyticsMetrics returns the analytics overview figures.
func AnalyticsMetrics() []KPI {
	return []KPI{
		{Label: "Total Revenue", Value: "$1.2M", Icon: "payments", Change: "+12%", Positive: true},
		{Label: "New Deals", Value: "34", Icon: "handshake", Change: "+8%", Positive: true},
		{Label: "Win Rate", Value: "68%", Icon: "emoji_events", Change: "+3%", Positive: true},
		{Label: "Avg Deal Size", Value: "$35K", Icon: "trending_up", Change: "-2%", Positive: false},
	}
}

// MonthlyRevenue returns the trailing twelve months.
func MonthlyRevenue() []Bar {
	return []Bar{
		{Label: "Jul", Value: "$68K", Pct: 34}, {Label: "Aug", Value: "$92K", Pct: 46},
		{Label: "Sep", Value: "$78K", Pct: 39}, {Label: "Oct", Value: "$114K", Pct: 57},
		{Label: "Nov", Value: "$98K", Pct: 49}, {Label: "Dec", Value: "$145K", Pct: 73},
		{Label: "Jan", Value: "$132K", Pct: 66}, {Label: "Feb", Value: "$156K", Pct: 78},
		{Label: "Mar", Value: "$168K", Pct: 84}, {Label: "Apr", Value: "$142K", Pct: 71},
		{Label: "May", Value: "$189K", Pct: 95}, {Label: "Jun", Value: "$200K", Pct: 100},
	}
}

// PipelineStages returns the stage totals of the analytics overview.
func PipelineStages() []Bar {
	return []Bar{
		{Label: "Prospecting", Value: "12 · $180K", Color: "#6b7280"},
		{Label: "Qualification", Value: "8 · $240K", Color: "#2563eb"},
		{Label: "Proposal", Value: "6 · $420K", Color: "#7c3aed"},
		{Label: "Negotiation", Value: "4 · $310K", Color: "#ea580c"},
		{Label: "Closed Won", Value: "17 · $890K", Color: "#059669"},
		{Label: "Closed Lost", Value: "5 · $175K", Color: "#dc2626"},
	}
}

// Reps returns the sales team ordered by revenue.
func Reps() []Rep {
	return []Rep{
		{Name: "Sarah Chen", Role: "Senior Account Exec", Deals: 12, Revenue: "$342K", Quota: "$300K", QuotaPct: 114, Trend: "+18%", TrendUp: true, Share: 100},
		{Name: "James Miller", Role: "Account Executive", Deals: 9, Revenue: "$298K", Quota: "$280K", QuotaPct: 106, Trend: "+12%", TrendUp: true, Share: 87},
		{Name: "Lisa Park", Role: "Senior Account Exec", Deals: 11, Revenue: "$264K", Quota: "$260K", QuotaPct: 102, Trend: "+5%", TrendUp: true, Share: 77},
		{Name: "Alex Thompson", Role: "Account Executive", Deals: 7, Revenue: "$215K", Quota: "$280K", QuotaPct: 77, Trend: "+8%", TrendUp: true, Share: 63},
		{Name: "Priya Sharma", Role: "Account Executive", Deals: 8, Revenue: "$189K", Quota: "$260K", QuotaPct: 73, Trend: "-3%", Share: 55},
		{Name: "Emma Wilson", Role: "Business Dev Rep", Deals: 6, Revenue: "$142K", Quota: "$220K", QuotaPct: 65, Trend: "+15%", TrendUp: true, Share: 42},
		{Name: "David Park", Role: "Business Dev Rep", Deals: 5, Revenue: "$98K", Quota: "$220K", QuotaPct: 45, Trend: "-8%", Share: 29},
		{Name: "María García", Role: "SDR", Deals: 4, Revenue: "$67K", Quota: "$180K", QuotaPct: 37, Trend: "+2%", TrendUp: true, Share: 20},
	}
}

// TopReps returns the first n reps.
func TopReps(n int) []Rep {
	reps := Reps()
	if n < len(reps) {
		reps = reps[:n]
	}
	return reps
}

// VelocityMetrics returns the performance page headline figures.
func VelocityMetrics() []KPI {
	return []KPI{
		{Label: "Avg Sales Cycle", Value: "28d", Icon: "schedule", Change: "3 days faster than last quarter", Positive: true},
		{Label: "Lead Response", Value: "2.4h", Icon: "bolt", Change: "Avg first response time", Positive: true},
		{Label: "Win Rate", Value: "68%", Icon: "emoji_events", Change: "+3% from last quarter", Positive: true},
		{Label: "Pipeline Velocity", Value: "$142K", Icon: "speed", Change: "Revenue per month", Positive: true},
	}
}

// Funnel returns the conversion funnel.
func Funnel() []Bar {
	return []Bar{
		{Label: "Leads Generated", Value: "248 (100%)", Pct: 100, Color: "#6b7280"},
		{Label: "Qualified", Value: "156 (62.9%)", Pct: 63, Color: "#2563eb"},
		{Label: "Proposal Sent", Value: "89 (35.9%)", Pct: 36, Color: "#7c3aed"},
		{Label: "Negotiation", Value: "52 (21.0%)", Pct: 21, Color: "#ea580c"},
		{Label: "Closed Won", Value: "34 (13.7%)", Pct: 14, Color: "#059669"},
	}
}

// WinLossReasons returns the reasons deals were won or lost.
func WinLossReasons() []Bar {
	return []Bar{
		{Label: "Price competitive", Value: "35%", Pct: 35, Color: "#059669"},
		{Label: "Feature fit", Value: "28%", Pct: 28, Color: "#2563eb"},
		{Label: "Budget constraints", Value: "18%", Pct: 18, Color: "#dc2626"},
		{Label: "Competitor chosen", Value: "12%", Pct: 12, Color: "#ea580c"},
		{Label: "Timing/priority", Value: "7%", Pct: 7, Color: "#6b7280"},
	}
}

func containsAny(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
