package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"zoo-web/catalog"
	"zoo-web/listing"
	"zoo-web/models"
	"zoo-web/service"
	"zoo-web/visitor"
)

// homeEventCount is how many upcoming events the home page lists
const homeEventCount = 4

// CatalogController handles the home page, the animal directory and the conservation page
type CatalogController struct {
	store  *catalog.Store
	images *service.ImageOptimizer
	events *service.EventService
	logger *zap.Logger
	now    func() time.Time
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(
	store *catalog.Store,
	images *service.ImageOptimizer,
	events *service.EventService,
	logger *zap.Logger,
) *CatalogController {
	return &CatalogController{
		store:  store,
		images: images,
		events: events,
		logger: logger,
		now:    time.Now,
	}
}

// Home handles GET /api/home?region=Asia&status=Endangered&more=true
// The region/status selection is kept per visitor; more=true reveals another row.
func (c *CatalogController) Home(w http.ResponseWriter, r *http.Request) {
	vc, ok := currentVisitor(w, r, c.logger)
	if !ok {
		return
	}

	q := r.URL.Query()
	highlighted := c.store.HighlightedAnimals()

	var resp models.HomeResponse
	vc.Update(func(s *visitor.State) {
		if q.Has(listing.DimRegion) || q.Has(listing.DimStatus) {
			region, status := q.Get(listing.DimRegion), q.Get(listing.DimStatus)
			current := s.Highlights.Filters()
			if !q.Has(listing.DimRegion) {
				region = current[listing.DimRegion]
			}
			if !q.Has(listing.DimStatus) {
				status = current[listing.DimStatus]
			}
			s.Highlights.SetFilters(region, status)
		}
		if q.Get("more") == "true" {
			s.Highlights.ShowMore(len(s.Highlights.Matching(highlighted)))
		}
		resp.Highlighted, resp.CanShowMore = s.Highlights.Visible(highlighted)
		resp.HighlightFilters = s.Highlights.Filters()
	})

	resp.Regions = c.store.Regions()
	resp.Statuses = c.store.Statuses()

	projects := c.store.Projects()
	if len(projects) > catalog.HomeHighlightProjects {
		projects = projects[:catalog.HomeHighlightProjects]
	}
	resp.Conservation = projectViews(projects)
	resp.Events = c.events.Soonest(c.now(), homeEventCount)

	writeJSON(w, c.logger, http.StatusOK, resp)
}

// ListAnimals handles GET /api/animals?search=&habitat=&region=&status=&activity=&page=
// Selections are remembered per visitor; any change of filter returns to page 1.
func (c *CatalogController) ListAnimals(w http.ResponseWriter, r *http.Request) {
	vc, ok := currentVisitor(w, r, c.logger)
	if !ok {
		return
	}

	q := r.URL.Query()
	if q.Get("reset") == "true" {
		vc.Update(func(s *visitor.State) { s.Animals.Reset("") })
	}

	selections := map[string]string{}
	for _, dim := range listing.AnimalDimensions {
		if q.Has(dim) {
			selections[dim] = q.Get(dim)
		}
	}

	var (
		page    listing.Page[models.Animal]
		filters map[string]string
		err     error
	)
	vc.Update(func(s *visitor.State) {
		s.Animals.Apply(selections, "", queryInt(r, "page"))
		page, err = listing.AnimalPage(c.store.Animals(), s.Animals)
		filters = s.Animals.Filters()
	})
	if err != nil {
		c.logger.Error("ListAnimals: failed to paginate", zap.Error(err))
		writeError(w, c.logger, http.StatusInternalServerError, "failed to list animals")
		return
	}

	resp := models.AnimalDirectoryResponse{
		ListingPage: listingPage(page, filters, "", summary(len(page.Items), page.TotalItems, "animals")),
		Options:     c.store.AnimalOptions(),
		Highlighted: c.store.HighlightedAnimals(),
	}
	writeJSON(w, c.logger, http.StatusOK, resp)
}

// GetAnimal handles GET /api/animals/{id}
func (c *CatalogController) GetAnimal(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	animal, ok := c.findAnimal(raw)
	if !ok {
		c.logger.Debug("GetAnimal: animal not found", zap.String("id", raw))
		writeJSON(w, c.logger, http.StatusNotFound, models.AnimalNotFoundResponse{
			Error: "animal not found",
			ID:    raw,
			Back:  "/animals",
		})
		return
	}
	writeJSON(w, c.logger, http.StatusOK, animal)
}

// AnimalImage handles GET /api/animals/{id}/image?size=thumb|medium
// Serves the optimized local asset, or redirects to the remote image when none exists.
func (c *CatalogController) AnimalImage(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	animal, ok := c.findAnimal(raw)
	if !ok {
		writeError(w, c.logger, http.StatusNotFound, "animal not found")
		return
	}
	serveImage(w, r, c.images, c.logger, service.KindAnimal, animal.ID, animal.Image)
}

// Conservation handles GET /api/conservation
func (c *CatalogController) Conservation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.logger, http.StatusOK, models.ConservationResponse{
		Projects: projectViews(c.store.Projects()),
		Partners: c.store.Partners(),
	})
}

func (c *CatalogController) findAnimal(raw string) (models.Animal, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return models.Animal{}, false
	}
	return c.store.FindAnimal(id)
}

func serveImage(w http.ResponseWriter, r *http.Request, images *service.ImageOptimizer, logger *zap.Logger, kind string, id int, remote string) {
	data, err := images.Image(kind, id, r.URL.Query().Get("size"))
	if errors.Is(err, service.ErrImageNotFound) {
		http.Redirect(w, r, remote, http.StatusFound)
		return
	}
	if err != nil {
		logger.Error("failed to load image", zap.String("kind", kind), zap.Int("id", id), zap.Error(err))
		writeError(w, logger, http.StatusInternalServerError, "failed to load image")
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.Warn("failed to write image", zap.Error(err))
	}
}

func projectViews(projects []models.ConservationProject) []models.ConservationProjectView {
	views := make([]models.ConservationProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, models.ConservationProjectView{
			ConservationProject: p,
			Progress:            p.ProgressPercentage(),
		})
	}
	return views
}

func listingPage[T any](p listing.Page[T], filters map[string]string, sort, summary string) models.ListingPage[T] {
	return models.ListingPage[T]{
		Items:      p.Items,
		Page:       p.Number,
		PageSize:   p.Size,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
		Filters:    filters,
		Sort:       sort,
		Summary:    summary,
	}
}

// summary builds the "Showing X of Y animals" line, or the empty-state text
func summary(shown, total int, noun string) string {
	if total == 0 {
		return "No " + noun + " found"
	}
	return fmt.Sprintf("Showing %d of %d %s", shown, total, noun)
}
