package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"zoo-web/app/controller"
	"zoo-web/app/middleware"
)

// Controllers groups every HTTP controller of the site
type Controllers struct {
	Catalog *controller.CatalogController
	Shop    *controller.ShopController
	Visit   *controller.VisitController
	Auth    *controller.AuthController
	Theme   *controller.ThemeController
}

// Options configures the router
type Options struct {
	Visitors     middleware.VisitorLoader
	SecureCookie bool
	Logger       *zap.Logger
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// notFoundHandler is the fallback for unknown routes
func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"page not found","home":"/"}`))
}

// NewRouter builds the site's routes
func NewRouter(controllers *Controllers, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(opts.Logger))
	r.Use(chimw.Recoverer)
	// PDF rendering alone may take 30s
	r.Use(chimw.Timeout(60 * time.Second))

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"error":"method not allowed"}`))
	})

	r.Get("/ping", pingHandler)

	// Page printed by headless Chrome; it needs no visitor
	r.Get("/map/render", controllers.Visit.RenderMap)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Visitor(opts.Visitors, opts.SecureCookie, opts.Logger))

		r.Get("/home", controllers.Catalog.Home)
		r.Get("/conservation", controllers.Catalog.Conservation)

		r.Route("/animals", func(r chi.Router) {
			r.Get("/", controllers.Catalog.ListAnimals)
			r.Get("/{id}", controllers.Catalog.GetAnimal)
			r.Get("/{id}/image", controllers.Catalog.AnimalImage)
		})

		r.Get("/products", controllers.Shop.ListProducts)
		r.Get("/products/{id}/image", controllers.Shop.ProductImage)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.Shop.GetCart)
			r.Post("/items", controllers.Shop.AddToCart)
			r.Patch("/items/{productId}", controllers.Shop.UpdateCartLine)
			r.Delete("/items/{productId}", controllers.Shop.RemoveCartLine)
			r.Post("/checkout", controllers.Shop.Checkout)
		})
		r.Get("/orders/last/receipt", controllers.Shop.Receipt)

		r.Get("/visit", controllers.Visit.VisitInfo)
		r.Post("/visit/quote", controllers.Visit.Quote)
		r.Get("/events", controllers.Visit.Events)
		r.Get("/map", controllers.Visit.Map)
		r.Get("/map/print", controllers.Visit.PrintMap)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.Auth.Login)
			r.Post("/logout", controllers.Auth.Logout)
			r.Get("/session", controllers.Auth.Session)
		})

		r.Route("/register", func(r chi.Router) {
			r.Get("/", controllers.Auth.RegistrationState)
			r.Put("/", controllers.Auth.UpdateRegistration)
			r.Post("/next", controllers.Auth.NextRegistrationStep)
			r.Post("/back", controllers.Auth.PreviousRegistrationStep)
			r.Post("/reset", controllers.Auth.ResetRegistration)
		})

		r.Get("/profile", controllers.Auth.Profile)
		r.Patch("/profile", controllers.Auth.UpdateProfile)

		r.Get("/theme", controllers.Theme.GetTheme)
		r.Post("/theme/toggle", controllers.Theme.ToggleTheme)
	})

	return r
}
