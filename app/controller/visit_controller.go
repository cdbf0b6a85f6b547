package controller

import (
	"errors"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"zoo-web/catalog"
	"zoo-web/models"
	"zoo-web/pricing"
	"zoo-web/service"
)

// VisitController handles visitor information, tickets, events and the zoo map
type VisitController struct {
	store   *catalog.Store
	pricing *pricing.Engine
	events  *service.EventService
	render  service.RenderServiceInterface
	logger  *zap.Logger
	now     func() time.Time
}

// NewVisitController creates a new VisitController
func NewVisitController(
	store *catalog.Store,
	pricingEngine *pricing.Engine,
	events *service.EventService,
	render service.RenderServiceInterface,
	logger *zap.Logger,
) *VisitController {
	return &VisitController{
		store:   store,
		pricing: pricingEngine,
		events:  events,
		render:  render,
		logger:  logger,
		now:     time.Now,
	}
}

// VisitInfo handles GET /api/visit
func (c *VisitController) VisitInfo(w http.ResponseWriter, r *http.Request) {
	hours, notice := c.store.OpeningHours()
	writeJSON(w, c.logger, http.StatusOK, models.VisitInfoResponse{
		OpeningHours: hours,
		Notice:       notice,
		TicketTypes:  c.store.TicketTypes(),
		Packages:     c.pricing.Packages(),
		FAQ:          c.store.FAQ(),
		Events:       c.events.Ticketed(c.now()),
	})
}

// Quote handles POST /api/visit/quote
// Request body: {"visitDate": "2025-07-04", "adults": 2, "children": 2, "package": "family"}
func (c *VisitController) Quote(w http.ResponseWriter, r *http.Request) {
	var req models.TicketQuoteRequest
	if err := decodeJSON(r, &req); err != nil {
		c.logger.Debug("Quote: failed to decode request body", zap.Error(err))
		writeError(w, c.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	quote, err := c.pricing.Quote(req)
	if errors.Is(err, pricing.ErrUnknownPackage) {
		writeValidation(w, c.logger, map[string]string{
			"package": "Valid packages: " + strings.Join(c.pricing.Packages(), ", "),
		})
		return
	}
	if err != nil {
		c.logger.Error("Quote: failed to price tickets", zap.Error(err))
		writeError(w, c.logger, http.StatusInternalServerError, "failed to calculate quote")
		return
	}
	writeJSON(w, c.logger, http.StatusOK, quote)
}

// Events handles GET /api/events?category=daily|educational|special|all
func (c *VisitController) Events(w http.ResponseWriter, r *http.Request) {
	category := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("category")))
	switch category {
	case "", "all", models.EventCategoryDaily, models.EventCategoryEducational, models.EventCategorySpecial:
	default:
		writeError(w, c.logger, http.StatusBadRequest, "Invalid category. Valid categories: all, daily, educational, special")
		return
	}
	writeJSON(w, c.logger, http.StatusOK, c.events.Upcoming(c.now(), category))
}

// Map handles GET /api/map?area=savanna&facilities=Food,Restroom&route=regular|accessible
func (c *VisitController) Map(w http.ResponseWriter, r *http.Request) {
	m, msg := c.buildMap(r.URL.Query())
	if msg != "" {
		writeError(w, c.logger, http.StatusBadRequest, msg)
		return
	}
	writeJSON(w, c.logger, http.StatusOK, m)
}

// RenderMap handles GET /map/render with the same query as /api/map.
// It is the page headless Chrome prints.
func (c *VisitController) RenderMap(w http.ResponseWriter, r *http.Request) {
	m, msg := c.buildMap(r.URL.Query())
	if msg != "" {
		writeError(w, c.logger, http.StatusBadRequest, msg)
		return
	}

	html, err := c.render.RenderMapHTML(m)
	if err != nil {
		c.logger.Error("RenderMap: failed to render", zap.Error(err))
		writeError(w, c.logger, http.StatusInternalServerError, "failed to render map")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(html); err != nil {
		c.logger.Warn("RenderMap: failed to write response", zap.Error(err))
	}
}

// PrintMap handles GET /api/map/print, returning /map/render as a PDF
func (c *VisitController) PrintMap(w http.ResponseWriter, r *http.Request) {
	if _, msg := c.buildMap(r.URL.Query()); msg != "" {
		writeError(w, c.logger, http.StatusBadRequest, msg)
		return
	}

	path := "/map/render"
	if r.URL.RawQuery != "" {
		path += "?" + r.URL.RawQuery
	}
	pdf, err := c.render.PDFFromURL(r.Context(), path)
	if err != nil {
		c.logger.Error("PrintMap: failed to generate PDF", zap.Error(err))
		writeError(w, c.logger, http.StatusInternalServerError, "failed to generate PDF")
		return
	}
	writePDF(w, c.logger, "zoo_map.pdf", pdf)
}

// buildMap applies the map selections. A non-empty message means the query was invalid.
func (c *VisitController) buildMap(q url.Values) (models.ZooMapResponse, string) {
	route := q.Get("route")
	if route == "" {
		route = models.RouteRegular
	}
	if route != models.RouteRegular && route != models.RouteAccessible {
		return models.ZooMapResponse{}, "Invalid route. Valid routes: regular, accessible"
	}

	facilities := parseList(q["facilities"])
	known := c.store.Facilities()
	for _, f := range facilities {
		if !slices.Contains(known, f) {
			return models.ZooMapResponse{}, "Invalid facility. Valid facilities: " + strings.Join(known, ", ")
		}
	}

	m := models.ZooMapResponse{
		Areas:      filterAreas(c.store.MapAreas(), facilities),
		Facilities: facilities,
		RouteType:  route,
		Itinerary:  c.store.Itinerary(),
	}

	if id := q.Get("area"); id != "" {
		area, ok := c.store.FindMapArea(id)
		if !ok {
			return models.ZooMapResponse{}, "unknown area: " + id
		}
		m.SelectedArea = &area
		m.DirectoryLink = "/animals?habitat=" + url.QueryEscape(area.Habitat)
	}
	return m, ""
}

// filterAreas keeps the areas offering every selected facility
func filterAreas(areas []models.MapArea, facilities []string) []models.MapArea {
	out := make([]models.MapArea, 0, len(areas))
	for _, a := range areas {
		if hasAll(a.Facilities, facilities) {
			out = append(out, a)
		}
	}
	return out
}

func hasAll(offered, wanted []string) bool {
	for _, f := range wanted {
		if !slices.Contains(offered, f) {
			return false
		}
	}
	return true
}

// parseList accepts both repeated and comma-separated query values
func parseList(values []string) []string {
	out := []string{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" && !slices.Contains(out, part) {
				out = append(out, part)
			}
		}
	}
	return out
}
