package routes

import (
	"travel-booking/config"
	"travel-booking/controllers/accommodation"
	"travel-booking/controllers/admin"
	"travel-booking/controllers/blog"
	"travel-booking/controllers/booking"
	"travel-booking/controllers/destination"
	"travel-booking/controllers/details"
	"travel-booking/controllers/inquiry"
	"travel-booking/controllers/itinerary"
	"travel-booking/controllers/server"
	"travel-booking/controllers/volunteer"
	"travel-booking/middleware"
	"travel-booking/services/notify"
	"travel-booking/storage"

	"github.com/gofiber/fiber/v2"
)

// crud is the handler set every entity route group exposes
type crud interface {
	Index(c *fiber.Ctx) error
	Show(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Destroy(c *fiber.Ctx) error
}

func mount(r fiber.Router, path string, h crud) fiber.Router {
	g := r.Group(path)
	g.Get("/", h.Index)
	g.Post("/", h.Create)
	g.Get("/:id", h.Show)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Destroy)
	return g
}

func SetupRoutes(app *fiber.App, cfg *config.Config, store *storage.Storage, notifier *notify.Notifier) {
	serverController := server.NewServerController(cfg.StorageDriver)
	authController := admin.NewAuthController(cfg.AdminPasswordHash, cfg.AdminJWTSecret)

	accommodationDetails := details.NewDetailsController(store, storage.AccommodationDetails)
	destinationDetails := details.NewDetailsController(store, storage.DestinationDetails)
	itineraryDetails := details.NewDetailsController(store, storage.ItineraryDetails)

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Get("/health", serverController.Health)
	api.Get("/locations", serverController.Locations)

	api.Get("/accommodations/:id/details", accommodationDetails.Show)
	api.Get("/destinations/:id/details", destinationDetails.Show)
	api.Get("/itineraries/:id/details", itineraryDetails.Show)

	mount(api, "/accommodations", accommodation.NewAccommodationController(store))
	mount(api, "/destinations", destination.NewDestinationController(store))
	mount(api, "/itineraries", itinerary.NewItineraryController(store))
	mount(api, "/blog-posts", blog.NewBlogController(store))

	/*=============================================================================
	| Submission Routes
	===============================================================================*/
	// visitors only submit; reading and editing submissions is admin only
	api.Post("/inquiries", inquiry.NewInquiryController(store, notifier).Create)
	api.Post("/bookings", booking.NewBookingController(store, notifier).Create)
	api.Post("/volunteer-applications", volunteer.NewApplicationController(store, notifier).Create)

	/*=============================================================================
	| Admin Routes
	===============================================================================*/
	api.Post("/admin/login", authController.Login)

	adminGroup := api.Group("/admin", middleware.RequireAdmin(middleware.AdminAuth{
		Token:     cfg.AdminToken,
		JWTSecret: cfg.AdminJWTSecret,
	}))

	adminGroup.Post("/accommodations/with-details", admin.NewAccommodationWithDetails(store).Store)
	adminGroup.Post("/destinations/with-details", admin.NewDestinationWithDetails(store).Store)
	adminGroup.Post("/itineraries/with-details", admin.NewItineraryWithDetails(store).Store)

	for path, dc := range map[string]*details.DetailsController{
		"/accommodations": accommodationDetails,
		"/destinations":   destinationDetails,
		"/itineraries":    itineraryDetails,
	} {
		adminGroup.Get(path+"/:id/details", dc.Show)
		adminGroup.Put(path+"/:id/details", dc.Save)
		adminGroup.Delete(path+"/:id/details", dc.Destroy)
	}

	mount(adminGroup, "/accommodations", accommodation.NewAdminAccommodationController(store))
	mount(adminGroup, "/destinations", destination.NewAdminDestinationController(store))
	mount(adminGroup, "/itineraries", itinerary.NewAdminItineraryController(store))
	mount(adminGroup, "/blog-posts", blog.NewAdminBlogController(store))

	// submissions live in the same tables; entries made here send no email
	mount(adminGroup, "/inquiries", inquiry.NewInquiryController(store, nil))
	mount(adminGroup, "/bookings", booking.NewBookingController(store, nil))
	mount(adminGroup, "/volunteer-applications", volunteer.NewApplicationController(store, nil))
}
