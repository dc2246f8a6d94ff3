package database

import (
	"fmt"

	accommodationModel "travel-booking/models/accommodation"
	blogModel "travel-booking/models/blog"
	bookingModel "travel-booking/models/booking"
	destinationModel "travel-booking/models/destination"
	detailsModel "travel-booking/models/details"
	inquiryModel "travel-booking/models/inquiry"
	itineraryModel "travel-booking/models/itinerary"
	logModel "travel-booking/models/log"
	volunteerModel "travel-booking/models/volunteer"
	"travel-booking/storage"

	"gorm.io/gorm"
)

type tableModel struct {
	name  string
	model interface{}
}

// registeredTables lists every collection with the row model that shapes it.
// Catalog tables appear twice: the public table and its admin_ twin.
func registeredTables() []tableModel {
	tables := []tableModel{
		{"accommodations", &accommodationModel.Accommodation{}},
		{"admin_accommodations", &accommodationModel.Accommodation{}},
		{"destinations", &destinationModel.Destination{}},
		{"admin_destinations", &destinationModel.Destination{}},
		{"itineraries", &itineraryModel.Itinerary{}},
		{"admin_itineraries", &itineraryModel.Itinerary{}},
		{"blog_posts", &blogModel.Post{}},
		{"admin_blog_posts", &blogModel.Post{}},
		{"inquiries", &inquiryModel.Inquiry{}},
		{"bookings", &bookingModel.Booking{}},
		{"volunteer_applications", &volunteerModel.Application{}},
		{"request_logs", &logModel.Log{}},
	}
	for _, kind := range []storage.DetailsKind{storage.AccommodationDetails, storage.DestinationDetails, storage.ItineraryDetails} {
		tables = append(tables, tableModel{kind.Table(), &detailsModel.Details{}})
	}
	return tables
}

// Migrate creates or alters every registered table
func Migrate(db *gorm.DB) error {
	for _, t := range registeredTables() {
		if err := db.Table(t.name).AutoMigrate(t.model); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", t.name, err)
		}
	}
	return nil
}

// createIndexes adds the lookup indexes. They are created by hand so each
// admin_ twin gets its own index names.
func createIndexes(db *gorm.DB) error {
	indexes := map[string][]string{
		"accommodations":         {"continental", "country", "destination", "created_at"},
		"admin_accommodations":   {"continental", "country", "destination", "created_at"},
		"destinations":           {"continental", "country", "created_at"},
		"admin_destinations":     {"continental", "country", "created_at"},
		"itineraries":            {"category", "created_at"},
		"admin_itineraries":      {"category", "created_at"},
		"blog_posts":             {"slug", "created_at"},
		"admin_blog_posts":       {"slug", "created_at"},
		"inquiries":              {"created_at"},
		"bookings":               {"created_at"},
		"volunteer_applications": {"created_at"},
		"request_logs":           {"created_at"},
	}

	for table, cols := range indexes {
		for _, col := range cols {
			sql := fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_%s ON %s(%s)", table, col, table, col)
			if err := db.Exec(sql).Error; err != nil {
				return fmt.Errorf("failed to create %s %s index: %w", table, col, err)
			}
		}
	}
	return nil
}
