package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-booking/types"
	accommodationTypes "travel-booking/types/accommodation"
	blogTypes "travel-booking/types/blog"
	bookingTypes "travel-booking/types/booking"
	destinationTypes "travel-booking/types/destination"
	inquiryTypes "travel-booking/types/inquiry"
	itineraryTypes "travel-booking/types/itinerary"
	volunteerTypes "travel-booking/types/volunteer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage() (*Storage, *MemoryBackend) {
	backend := NewMemoryBackend()
	return New(backend), backend
}

func testLodge() accommodationTypes.Accommodation {
	return accommodationTypes.Accommodation{
		Name:        "Test Lodge",
		Continental: "africa",
		Country:     "tanzania",
		Destination: "serengeti",
		Category:    "luxury",
		Description: "x",
		Price:       500,
		Rating:      5,
		Features:    []string{"wifi"},
	}
}

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string { return &s }

func TestAccommodationLifecycle(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage()

	created, err := s.CreateAccommodation(ctx, testLodge())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Nil(t, created.ImageURL)
	require.NotNil(t, created.CreatedAt)
	assert.Equal(t, "Test Lodge", created.Name)
	assert.Equal(t, []string{"wifi"}, created.Features)

	fetched, found, err := s.GetAccommodation(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, created, fetched)

	updated, found, err := s.UpdateAccommodation(ctx, created.ID, accommodationTypes.Patch{Price: floatPtr(600)})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 600.0, updated.Price)

	refetched, found, err := s.GetAccommodation(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 600.0, refetched.Price)
	assert.Equal(t, "Test Lodge", refetched.Name)
	assert.Equal(t, created.Features, refetched.Features)
	assert.Equal(t, created.CreatedAt, refetched.CreatedAt)

	deleted, err := s.DeleteAccommodation(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, found, err = s.GetAccommodation(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNotFoundIsNotAnError(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage()

	deleted, err := s.DeleteAccommodation(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.False(t, deleted)

	_, found, err := s.GetDestination(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = s.UpdateItinerary(ctx, "does-not-exist", itineraryTypes.Patch{Name: strPtr("x")})
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = s.UpdateInquiry(ctx, "does-not-exist", inquiryTypes.Patch{})
	require.NoError(t, err)
	assert.False(t, found)

	deleted, err = s.DeleteAdminBlogPost(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestListsAreNeverNil(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage()

	accommodations, err := s.ListAccommodations(ctx)
	require.NoError(t, err)
	assert.NotNil(t, accommodations)
	assert.Empty(t, accommodations)

	bookings, err := s.ListBookings(ctx)
	require.NoError(t, err)
	assert.NotNil(t, bookings)

	applications, err := s.ListVolunteerApplications(ctx)
	require.NoError(t, err)
	assert.NotNil(t, applications)

	created, err := s.CreateDestination(ctx, destinationTypes.Destination{Name: "Serengeti"})
	require.NoError(t, err)
	_, err = s.DeleteDestination(ctx, created.ID)
	require.NoError(t, err)

	destinations, err := s.ListDestinations(ctx)
	require.NoError(t, err)
	assert.NotNil(t, destinations)
	assert.Empty(t, destinations)
}

func TestCreateIgnoresClientIDAndCreatedAt(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage()

	past := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := testLodge()
	rec.ID = "client-chosen"
	rec.CreatedAt = &past

	created, err := s.CreateAccommodation(ctx, rec)
	require.NoError(t, err)
	assert.NotEqual(t, "client-chosen", created.ID)
	require.NotNil(t, created.CreatedAt)
	assert.True(t, created.CreatedAt.After(past))
}

func TestPartialUpdateLeavesOtherFields(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage()

	created, err := s.CreateInquiry(ctx, inquiryTypes.Inquiry{
		FirstName: "Amani",
		LastName:  "Mollel",
		Email:     "amani@example.com",
		Adults:    2,
		Message:   "Hello",
	})
	require.NoError(t, err)

	updated, found, err := s.UpdateInquiry(ctx, created.ID, inquiryTypes.Patch{Message: strPtr("Changed")})
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "Changed", updated.Message)
	assert.Equal(t, "Amani", updated.FirstName)
	assert.Equal(t, "amani@example.com", updated.Email)
	assert.Equal(t, 2, updated.Adults)
}

func TestEmptyPatchReturnsCurrentRecord(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage()

	created, err := s.CreateAccommodation(ctx, testLodge())
	require.NoError(t, err)

	same, found, err := s.UpdateAccommodation(ctx, created.ID, accommodationTypes.Patch{})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, created, same)
}

func TestAdminTablesAreSeparateAndNewestFirst(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage()

	public, err := s.CreateItinerary(ctx, itineraryTypes.Itinerary{Name: "Public"})
	require.NoError(t, err)

	names := []string{"first", "second", "third"}
	for _, name := range names {
		_, err := s.CreateAdminItinerary(ctx, itineraryTypes.Itinerary{Name: name})
		require.NoError(t, err)
	}

	adminList, err := s.ListAdminItineraries(ctx)
	require.NoError(t, err)
	require.Len(t, adminList, 3)
	assert.Equal(t, "third", adminList[0].Name)
	assert.Equal(t, "second", adminList[1].Name)
	assert.Equal(t, "first", adminList[2].Name)

	_, found, err := s.GetAdminItinerary(ctx, public.ID)
	require.NoError(t, err)
	assert.False(t, found)

	publicList, err := s.ListItineraries(ctx)
	require.NoError(t, err)
	assert.Len(t, publicList, 1)
}

func TestSubmissionsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage()

	booking, err := s.CreateBooking(ctx, bookingTypes.Booking{
		BookingType:  "accommodation",
		ItemID:       "lodge-1",
		ItemName:     "Test Lodge",
		FullName:     "Amani Mollel",
		Email:        "amani@example.com",
		CheckInDate:  "2025-08-01",
		CheckOutDate: "2025-08-04",
		NumberOfDays: 3,
		Adults:       2,
	})
	require.NoError(t, err)
	fetchedBooking, found, err := s.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, booking, fetchedBooking)

	application, err := s.CreateVolunteerApplication(ctx, volunteerTypes.Application{
		ProgramID:  "turtles",
		FirstName:  "Amani",
		LastName:   "Mollel",
		Email:      "amani@example.com",
		Excursions: []string{"reef", "volcano"},
	})
	require.NoError(t, err)
	fetchedApplication, found, err := s.GetVolunteerApplication(ctx, application.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"reef", "volcano"}, fetchedApplication.Excursions)

	post, err := s.CreateBlogPost(ctx, blogTypes.Post{Title: "Hello", Slug: "hello", Content: "# Hi"})
	require.NoError(t, err)
	updatedPost, found, err := s.UpdateBlogPost(ctx, post.ID, blogTypes.Patch{Title: strPtr("Hello again")})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Hello again", updatedPost.Title)
	assert.Equal(t, "hello", updatedPost.Slug)
}

func TestStoreFailureCarriesMessage(t *testing.T) {
	ctx := context.Background()
	s, backend := newTestStorage()

	backend.SetFailure(errors.New("connection refused"))

	_, err := s.ListAccommodations(ctx)
	require.Error(t, err)
	assert.Equal(t, "connection refused", err.Error())

	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "list", opErr.Op)
	assert.Equal(t, "accommodations", opErr.Table)

	_, _, err = s.GetAdminDestination(ctx, "x")
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "admin_destinations", opErr.Table)

	deleted, err := s.DeleteBooking(ctx, "x")
	assert.False(t, deleted)
	assert.EqualError(t, err, "connection refused")

	backend.SetFailure(nil)
	_, err = s.ListAccommodations(ctx)
	assert.NoError(t, err)
}

func TestDetailsUpsertAndDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage()

	_, found, err := s.GetDetails(ctx, AccommodationDetails, "lodge-1")
	require.NoError(t, err)
	assert.False(t, found)

	saved, err := s.SaveDetails(ctx, AccommodationDetails, "lodge-1", map[string]interface{}{
		"roomTypes": []interface{}{"suite"},
		"checkIn":   "14:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "14:00", saved["checkIn"])

	_, err = s.SaveDetails(ctx, AccommodationDetails, "lodge-1", map[string]interface{}{"checkIn": "15:00"})
	require.NoError(t, err)

	got, found, err := s.GetDetails(ctx, AccommodationDetails, "lodge-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, map[string]interface{}{"checkIn": "15:00"}, got)

	_, found, err = s.GetDetails(ctx, DestinationDetails, "lodge-1")
	require.NoError(t, err)
	assert.False(t, found)

	deleted, err := s.DeleteDetails(ctx, AccommodationDetails, "lodge-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.DeleteDetails(ctx, AccommodationDetails, "lodge-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDetailsRejectsUnknownKind(t *testing.T) {
	s, _ := newTestStorage()
	_, _, err := s.GetDetails(context.Background(), DetailsKind("blog"), "x")
	assert.Error(t, err)
}

func TestTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage()

	boom := errors.New("details failed")
	err := s.Transaction(ctx, func(tx *Storage) error {
		if _, err := tx.CreateAdminAccommodation(ctx, testLodge()); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := s.ListAdminAccommodations(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTransactionCommits(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage()

	var id string
	err := s.Transaction(ctx, func(tx *Storage) error {
		created, err := tx.CreateAdminAccommodation(ctx, testLodge())
		if err != nil {
			return err
		}
		id = created.ID
		_, err = tx.SaveDetails(ctx, AccommodationDetails, id, map[string]interface{}{"checkIn": "14:00"})
		return err
	})
	require.NoError(t, err)

	_, found, err := s.GetAdminAccommodation(ctx, id)
	require.NoError(t, err)
	assert.True(t, found)

	_, found, err = s.GetDetails(ctx, AccommodationDetails, id)
	require.NoError(t, err)
	assert.True(t, found)
}

func testBooking() bookingTypes.Booking {
	return bookingTypes.Booking{
		BookingType:  "accommodation",
		ItemID:       "lodge-1",
		ItemName:     "Test Lodge",
		FullName:     "Amani Mollel",
		Email:        "amani@example.com",
		CheckInDate:  "2025-08-01",
		CheckOutDate: "2025-08-04",
		NumberOfDays: 3,
	}
}

func TestTransactionKeepsWritesMadeOutsideIt(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage()

	outside, err := s.CreateAccommodation(ctx, testLodge())
	require.NoError(t, err)

	err = s.Transaction(ctx, func(tx *Storage) error {
		if _, err := s.CreateBooking(ctx, testBooking()); err != nil {
			return err
		}
		name := "Renamed Lodge"
		if _, _, err := s.UpdateAccommodation(ctx, outside.ID, accommodationTypes.Patch{Name: &name}); err != nil {
			return err
		}
		_, err := tx.CreateAdminAccommodation(ctx, testLodge())
		return err
	})
	require.NoError(t, err)

	bookings, err := s.ListBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	got, found, err := s.GetAccommodation(ctx, outside.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Renamed Lodge", got.Name)

	admin, err := s.ListAdminAccommodations(ctx)
	require.NoError(t, err)
	assert.Len(t, admin, 1)
}

func TestTransactionRollbackKeepsWritesMadeOutsideIt(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage()

	boom := errors.New("details failed")
	err := s.Transaction(ctx, func(tx *Storage) error {
		if _, err := s.CreateBooking(ctx, testBooking()); err != nil {
			return err
		}
		if _, err := tx.CreateAdminAccommodation(ctx, testLodge()); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	bookings, err := s.ListBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	admin, err := s.ListAdminAccommodations(ctx)
	require.NoError(t, err)
	assert.Empty(t, admin)
}

func TestTransactionAppliesDeletes(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage()

	kept, err := s.CreateAccommodation(ctx, testLodge())
	require.NoError(t, err)
	dropped, err := s.CreateAccommodation(ctx, testLodge())
	require.NoError(t, err)

	err = s.Transaction(ctx, func(tx *Storage) error {
		_, err := tx.DeleteAccommodation(ctx, dropped.ID)
		return err
	})
	require.NoError(t, err)

	list, err := s.ListAccommodations(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, kept.ID, list[0].ID)
}

func TestCanceledContext(t *testing.T) {
	s, _ := newTestStorage()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ListAccommodations(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSaveRequestLog(t *testing.T) {
	ctx := context.Background()
	s, backend := newTestStorage()

	err := s.SaveRequestLog(ctx, types.LogEntry{
		Method:     "GET",
		URL:        "/api/health",
		ClientIP:   "10.0.0.7",
		StatusCode: 200,
		Duration:   1500 * time.Millisecond,
		CreatedAt:  time.Now(),
	})
	require.NoError(t, err)

	var rows []map[string]interface{}
	require.NoError(t, backend.Table("request_logs").Find(ctx, &rows, OrderNone))
	require.Len(t, rows, 1)
	assert.Equal(t, "/api/health", rows[0]["url"])
	assert.Equal(t, "10.0.0.7", rows[0]["client_ip"])
	assert.EqualValues(t, 1500, rows[0]["duration_ms"])
}
