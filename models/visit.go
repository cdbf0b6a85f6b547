package models

// Ticket type identifiers
const (
	TicketAdult   = "adult"
	TicketChild   = "child"
	TicketSenior  = "senior"
	TicketToddler = "toddler"
)

// Package type identifiers
const (
	PackageStandard = "standard"
	PackagePremium  = "premium"
	PackageFamily   = "family"
)

// TicketType represents an admission ticket type
type TicketType struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"` // Cents
}

// FAQ represents a frequently asked question
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// TicketQuoteRequest represents the ticket calculator form
// Example: {"visitDate": "2025-07-04", "adults": 2, "children": 2, "seniors": 0, "toddlers": 1, "package": "family"}
type TicketQuoteRequest struct {
	VisitDate string `json:"visitDate"`
	Adults    int    `json:"adults"`
	Children  int    `json:"children"`
	Seniors   int    `json:"seniors"`
	Toddlers  int    `json:"toddlers"`
	Package   string `json:"package"`
}

// TicketQuoteLine is the price applied to one ticket type
type TicketQuoteLine struct {
	TicketType string   `json:"ticketType"`
	Qty        int      `json:"qty"`
	UnitPrice  int64    `json:"unitPrice"`
	LineTotal  int64    `json:"lineTotal"`
	RuleIDs    []string `json:"ruleIds"`
}

// TicketQuote is the result of a ticket price calculation
type TicketQuote struct {
	VisitDate      string            `json:"visitDate"`
	VisitDateLabel string            `json:"visitDateLabel"` // "Invalid date" when unparseable
	Package        string            `json:"package"`
	Lines          []TicketQuoteLine `json:"lines"`
	AppliedRules   []string          `json:"appliedRules"`
	Total          int64             `json:"total"`
	TotalLabel     string            `json:"totalLabel"`
}

// VisitInfoResponse represents the visitor information page
type VisitInfoResponse struct {
	OpeningHours string            `json:"openingHours"`
	Notice       string            `json:"notice"`
	TicketTypes  []TicketType      `json:"ticketTypes"`
	Packages     []string          `json:"packages"`
	FAQ          []FAQ             `json:"faq"`
	Events       []EventOccurrence `json:"events"`
}
