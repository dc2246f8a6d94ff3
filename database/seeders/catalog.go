package seeders

import (
	"context"
	"fmt"

	"travel-booking/logger"
	"travel-booking/storage"
	accommodationTypes "travel-booking/types/accommodation"
	destinationTypes "travel-booking/types/destination"
	itineraryTypes "travel-booking/types/itinerary"
)

var sampleAccommodations = []accommodationTypes.Accommodation{
	{Name: "Mara River Camp", Continental: "Africa", Country: "Kenya", Destination: "Maasai Mara", Category: "Tented Camp", Description: "Riverside tents on the migration route.", Price: 420, Rating: 4.8, Features: []string{"Game drives", "Full board", "Wi-Fi"}},
	{Name: "Stone Town Courtyard", Continental: "Africa", Country: "Tanzania", Destination: "Zanzibar", Category: "Boutique Hotel", Description: "Restored merchant house in the old town.", Price: 180, Rating: 4.5, Features: []string{"Rooftop terrace", "Breakfast"}},
	{Name: "Ubud Rice Terrace Villa", Continental: "Asia", Country: "Indonesia", Destination: "Bali", Category: "Villa", Description: "Private pool villa above the terraces.", Price: 260, Rating: 4.7, Features: []string{"Private pool", "Yoga deck"}},
}

var sampleDestinations = []destinationTypes.Destination{
	{Name: "Serengeti", Continental: "Africa", Country: "Tanzania", Description: "Endless plains and the great migration.", Highlights: []string{"Migration", "Big cats", "Balloon safari"}, BestTime: "June to October"},
	{Name: "Galapagos", Continental: "South America", Country: "Ecuador", Description: "Volcanic islands with fearless wildlife.", Highlights: []string{"Giant tortoises", "Snorkelling"}, BestTime: "December to May"},
}

var sampleItineraries = []itineraryTypes.Itinerary{
	{Name: "Classic Kenya Safari", Duration: "7 days", Price: 2450, Category: "Safari", Description: "Nairobi, Amboseli and the Maasai Mara.", Highlights: []string{"Kilimanjaro views", "Mara game drives"}, Includes: []string{"Lodges", "Park fees", "Transfers"}, Difficulty: "Easy", GroupSize: "2-6", Rating: 4.9},
	{Name: "Gorilla Trek", Duration: "4 days", Price: 3100, Category: "Adventure", Description: "Track mountain gorillas in Bwindi.", Highlights: []string{"Gorilla permit", "Batwa walk"}, Includes: []string{"Permit", "Guide", "Meals"}, Difficulty: "Challenging", GroupSize: "1-8", Rating: 4.8},
}

// SeedCatalog fills each public catalog table that is still empty
func SeedCatalog(ctx context.Context, s *storage.Storage) error {
	return s.Transaction(ctx, func(tx *storage.Storage) error {
		if err := seed(ctx, "accommodations", tx.ListAccommodations, tx.CreateAccommodation, sampleAccommodations); err != nil {
			return err
		}
		if err := seed(ctx, "destinations", tx.ListDestinations, tx.CreateDestination, sampleDestinations); err != nil {
			return err
		}
		return seed(ctx, "itineraries", tx.ListItineraries, tx.CreateItinerary, sampleItineraries)
	})
}

func seed[T any](ctx context.Context, name string, list func(context.Context) ([]T, error), create func(context.Context, T) (T, error), samples []T) error {
	existing, err := list(ctx)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", name, err)
	}
	if len(existing) > 0 {
		logger.Info(fmt.Sprintf("Skipping %s seed, table already has %d rows", name, len(existing)))
		return nil
	}
	for _, rec := range samples {
		if _, err := create(ctx, rec); err != nil {
			return fmt.Errorf("failed to seed %s: %w", name, err)
		}
	}
	logger.Success(fmt.Sprintf("Seeded %d %s", len(samples), name))
	return nil
}
