package pricing

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"zoo-web/models"
	"zoo-web/utils"
)

//go:embed pricebook.yaml
var defaultConfig []byte

// Rule types
const (
	RuleFixedPrice = "fixed_price" // Replaces the unit price
	RuleSurcharge  = "surcharge"   // Adds to the unit price
)

// InvalidDateLabel is shown when the visit date cannot be parsed
const InvalidDateLabel = "Invalid date"

var (
	// ErrUnknownPackage is returned for a package missing from the pricebook
	ErrUnknownPackage = errors.New("unknown package")
)

// PricingConfig represents the pricing configuration structure
type PricingConfig struct {
	Currency  string           `yaml:"currency"`
	Pricebook map[string]int64 `yaml:"pricebook"` // ticket type -> cents
	Packages  []string         `yaml:"packages"`
	Rules     []Rule           `yaml:"rules"`
}

// Rule adjusts ticket prices when its conditions hold
type Rule struct {
	ID         string           `yaml:"id"`
	Name       string           `yaml:"name"`
	Active     bool             `yaml:"active"`
	Priority   int              `yaml:"priority"`
	Type       string           `yaml:"type"`
	Conditions Conditions       `yaml:"conditions"`
	Action     map[string]int64 `yaml:"action"` // ticket type -> cents
}

// Conditions restrict when a rule applies
type Conditions struct {
	Package     string `yaml:"package"`
	MinAdults   int    `yaml:"minAdults"`
	MinChildren int    `yaml:"minChildren"`
}

// Engine prices admission tickets from a YAML pricebook
type Engine struct {
	config *PricingConfig
	now    func() time.Time
}

// NewEngine loads the pricebook from configPath, or the built-in one when
// configPath is empty
func NewEngine(configPath string, logger *zap.Logger) (*Engine, error) {
	data := defaultConfig
	source := "embedded"

	if configPath != "" {
		// Resolve config path
		if !filepath.IsAbs(configPath) {
			wd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get working directory: %w", err)
			}
			configPath = filepath.Join(wd, configPath)
		}

		var err error
		data, err = os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read pricing config: %w", err)
		}
		source = configPath
	}

	engine, err := NewEngineFromBytes(data)
	if err != nil {
		return nil, err
	}

	logger.Info("pricing config loaded",
		zap.String("source", source),
		zap.Int("rules", len(engine.config.Rules)),
	)
	return engine, nil
}

// NewEngineFromBytes parses and validates a YAML pricebook
func NewEngineFromBytes(data []byte) (*Engine, error) {
	var config PricingConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse pricing config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid pricing config: %w", err)
	}

	// Sort rules by priority (highest first)
	sort.SliceStable(config.Rules, func(i, j int) bool {
		return config.Rules[i].Priority > config.Rules[j].Priority
	})

	return &Engine{config: &config, now: time.Now}, nil
}

func validateConfig(config *PricingConfig) error {
	if config.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if len(config.Pricebook) == 0 {
		return fmt.Errorf("pricebook is required")
	}
	if len(config.Packages) == 0 {
		return fmt.Errorf("packages are required")
	}
	for _, rule := range config.Rules {
		if rule.Type != RuleFixedPrice && rule.Type != RuleSurcharge {
			return fmt.Errorf("rule %s: unknown type %q", rule.ID, rule.Type)
		}
		for ticket := range rule.Action {
			if _, ok := config.Pricebook[ticket]; !ok {
				return fmt.Errorf("rule %s: unknown ticket type %q", rule.ID, ticket)
			}
		}
	}
	return nil
}

// Packages returns the package ids offered on the ticket form
func (e *Engine) Packages() []string {
	return slices.Clone(e.config.Packages)
}

// ListPrice returns a ticket type's undiscounted price in cents
func (e *Engine) ListPrice(ticketType string) int64 {
	return e.config.Pricebook[ticketType]
}

// ticketOrder is the display order of quote lines
var ticketOrder = []string{models.TicketAdult, models.TicketChild, models.TicketSenior, models.TicketToddler}

// Quote prices a ticket request. Negative counts are read as zero and an
// empty package means standard.
func (e *Engine) Quote(req models.TicketQuoteRequest) (*models.TicketQuote, error) {
	pkg := strings.ToLower(strings.TrimSpace(req.Package))
	if pkg == "" {
		pkg = models.PackageStandard
	}
	if !slices.Contains(e.config.Packages, pkg) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPackage, req.Package)
	}

	counts := map[string]int{
		models.TicketAdult:   max(req.Adults, 0),
		models.TicketChild:   max(req.Children, 0),
		models.TicketSenior:  max(req.Seniors, 0),
		models.TicketToddler: max(req.Toddlers, 0),
	}

	unitPrices := make(map[string]int64, len(ticketOrder))
	ruleIDs := make(map[string][]string, len(ticketOrder))
	for _, t := range ticketOrder {
		unitPrices[t] = e.config.Pricebook[t]
	}

	quote := &models.TicketQuote{
		Package:      pkg,
		Lines:        []models.TicketQuoteLine{},
		AppliedRules: []string{},
	}

	for _, rule := range e.config.Rules {
		if !rule.Active || !rule.matches(pkg, counts) {
			continue
		}
		for ticket, amount := range rule.Action {
			switch rule.Type {
			case RuleFixedPrice:
				unitPrices[ticket] = amount
			case RuleSurcharge:
				unitPrices[ticket] += amount
			}
			ruleIDs[ticket] = append(ruleIDs[ticket], rule.ID)
		}
		quote.AppliedRules = append(quote.AppliedRules, rule.ID)
	}

	for _, t := range ticketOrder {
		qty := counts[t]
		lineTotal := int64(qty) * unitPrices[t]
		quote.Total += lineTotal

		ids := ruleIDs[t]
		if ids == nil {
			ids = []string{}
		}
		quote.Lines = append(quote.Lines, models.TicketQuoteLine{
			TicketType: t,
			Qty:        qty,
			UnitPrice:  unitPrices[t],
			LineTotal:  lineTotal,
			RuleIDs:    ids,
		})
	}

	quote.TotalLabel = utils.FormatUSD(quote.Total)
	quote.VisitDate, quote.VisitDateLabel = e.visitDate(req.VisitDate)
	return quote, nil
}

// visitDate defaults an empty date to today and formats it like
// "Friday, July 4, 2025"
func (e *Engine) visitDate(raw string) (string, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = e.now().Format(time.DateOnly)
	}
	d, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return raw, InvalidDateLabel
	}
	return raw, d.Format("Monday, January 2, 2006")
}

func (r Rule) matches(pkg string, counts map[string]int) bool {
	if r.Conditions.Package != "" && r.Conditions.Package != pkg {
		return false
	}
	if counts[models.TicketAdult] < r.Conditions.MinAdults {
		return false
	}
	if counts[models.TicketChild] < r.Conditions.MinChildren {
		return false
	}
	return true
}
