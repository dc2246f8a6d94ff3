package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travel-booking/config"
	"travel-booking/constants"
	"travel-booking/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const adminToken = "s3cret"

type envelope struct {
	Message string          `json:"message"`
	Status  int             `json:"status"`
	Token   string          `json:"token"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) (*fiber.App, *storage.MemoryBackend) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		StorageDriver:     "memory",
		AdminToken:        adminToken,
		AdminJWTSecret:    "jwt-secret",
		AdminPasswordHash: string(hash),
	}
	backend := storage.NewMemoryBackend()
	app := fiber.New()
	SetupRoutes(app, cfg, storage.New(backend), nil)
	return app, backend
}

func call(t *testing.T, app *fiber.App, method, path, body string, headers ...string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

const lodgeBody = `{"name":"Test Lodge","continental":"africa","country":"tanzania","destination":"serengeti","category":"luxury","description":"x","price":500,"rating":5,"features":["wifi"]}`

func TestAccommodationCRUD(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := call(t, app, "POST", "/api/accommodations", lodgeBody)
	require.Equal(t, http.StatusCreated, status, env.Message)
	created := decode[map[string]interface{}](t, env.Data)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.NotContains(t, created, "imageUrl")
	assert.Contains(t, created, "createdAt")

	status, env = call(t, app, "GET", "/api/accommodations/"+id, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, created, decode[map[string]interface{}](t, env.Data))

	status, env = call(t, app, "PUT", "/api/accommodations/"+id, `{"price":600}`)
	require.Equal(t, http.StatusOK, status)
	updated := decode[map[string]interface{}](t, env.Data)
	assert.Equal(t, 600.0, updated["price"])
	assert.Equal(t, "Test Lodge", updated["name"])

	status, _ = call(t, app, "DELETE", "/api/accommodations/"+id, "")
	assert.Equal(t, http.StatusOK, status)

	status, env = call(t, app, "GET", "/api/accommodations/"+id, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Accommodation not found", env.Message)

	status, _ = call(t, app, "DELETE", "/api/accommodations/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = call(t, app, "PUT", "/api/accommodations/does-not-exist", `{"price":1}`)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListIsAnEmptyArray(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := call(t, app, "GET", "/api/destinations", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestValidationErrors(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := call(t, app, "POST", "/api/accommodations", `{"price":-1}`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Validation failed", env.Message)

	fields := map[string]string{}
	for _, fe := range decode[[]map[string]string](t, env.Data) {
		fields[fe["field"]] = fe["rule"]
	}
	assert.Equal(t, "required", fields["name"])
	assert.Equal(t, "gte", fields["price"])

	status, _ = call(t, app, "POST", "/api/accommodations", `{not json`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, app, "PUT", "/api/admin/inquiries/x", `{"email":"not-an-email"}`, constants.HeaderAdminToken, adminToken)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAccommodationFilters(t *testing.T) {
	app, _ := newTestApp(t)

	bodies := []string{
		`{"name":"A","continental":"Africa","country":"Kenya","destination":"Maasai Mara","category":"Camp","description":"x"}`,
		`{"name":"B","continental":"Africa","country":"Tanzania","destination":"Zanzibar","category":"Hotel","description":"x"}`,
		`{"name":"C","continental":"Asia","country":"Indonesia","destination":"Bali","category":"Villa","description":"x"}`,
	}
	for _, b := range bodies {
		status, env := call(t, app, "POST", "/api/accommodations", b)
		require.Equal(t, http.StatusCreated, status, env.Message)
	}

	names := func(path string) []string {
		status, env := call(t, app, "GET", path, "")
		require.Equal(t, http.StatusOK, status)
		var out []string
		for _, a := range decode[[]map[string]interface{}](t, env.Data) {
			out = append(out, a["name"].(string))
		}
		return out
	}

	assert.Equal(t, []string{"A", "B", "C"}, names("/api/accommodations"))
	assert.Equal(t, []string{"A", "B"}, names("/api/accommodations?continental=africa"))
	assert.Equal(t, []string{"B"}, names("/api/accommodations?continental=Africa&country=Tanzania"))
	assert.Equal(t, []string{"C"}, names("/api/accommodations?category=villa"))
	assert.Empty(t, names("/api/accommodations?continental=Europe"))
}

func TestBookingDerivesNumberOfDays(t *testing.T) {
	app, _ := newTestApp(t)

	body := `{"bookingType":"accommodation","itemId":"lodge-1","itemName":"Test Lodge","fullName":"Amani Mollel","email":"amani@example.com","checkInDate":"2025-08-01","checkOutDate":"2025-08-05","adults":2}`
	status, env := call(t, app, "POST", "/api/bookings", body)
	require.Equal(t, http.StatusCreated, status, env.Message)
	assert.EqualValues(t, 4, decode[map[string]interface{}](t, env.Data)["numberOfDays"])

	backwards := `{"bookingType":"itinerary","itemId":"trip-1","itemName":"Trip","fullName":"A","email":"a@example.com","checkInDate":"2025-08-05","checkOutDate":"2025-08-01","adults":1}`
	status, env = call(t, app, "POST", "/api/bookings", backwards)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "checkOutDate must not be before checkInDate", env.Message)

	status, _ = call(t, app, "POST", "/api/bookings", strings.Replace(body, `"accommodation"`, `"cruise"`, 1))
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestBookingUpdateChecksStoredDates(t *testing.T) {
	app, _ := newTestApp(t)

	body := `{"bookingType":"accommodation","itemId":"lodge-1","itemName":"Test Lodge","fullName":"Amani Mollel","email":"amani@example.com","checkInDate":"2025-08-01","checkOutDate":"2025-08-05","adults":2}`
	status, env := call(t, app, "POST", "/api/bookings", body)
	require.Equal(t, http.StatusCreated, status, env.Message)
	id := decode[map[string]interface{}](t, env.Data)["id"].(string)

	status, env = call(t, app, "PUT", "/api/admin/bookings/"+id, `{"checkOutDate":"2025-07-30"}`, constants.HeaderAdminToken, adminToken)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "checkOutDate must not be before checkInDate", env.Message)

	status, env = call(t, app, "PUT", "/api/admin/bookings/"+id, `{"checkOutDate":"2025-08-08"}`, constants.HeaderAdminToken, adminToken)
	require.Equal(t, http.StatusOK, status, env.Message)
	updated := decode[map[string]interface{}](t, env.Data)
	assert.Equal(t, "2025-08-08", updated["checkOutDate"])
	assert.EqualValues(t, 7, updated["numberOfDays"])

	status, _ = call(t, app, "PUT", "/api/admin/bookings/missing", `{"checkOutDate":"2025-08-08"}`, constants.HeaderAdminToken, adminToken)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestBlogPostRendersMarkdown(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := call(t, app, "POST", "/api/blog-posts", `{"title":"Hello","slug":"hello","content":"# Hi there"}`)
	require.Equal(t, http.StatusCreated, status, env.Message)
	id := decode[map[string]interface{}](t, env.Data)["id"].(string)

	status, env = call(t, app, "GET", "/api/blog-posts/"+id, "")
	require.Equal(t, http.StatusOK, status)
	post := decode[map[string]interface{}](t, env.Data)
	assert.Equal(t, "# Hi there", post["content"])
	assert.Contains(t, post["contentHtml"], "<h1>Hi there</h1>")
}

func TestStoreFailureIsGeneric500(t *testing.T) {
	app, backend := newTestApp(t)
	backend.SetFailure(assert.AnError)

	status, env := call(t, app, "GET", "/api/itineraries", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", env.Message)
	assert.NotContains(t, env.Message, assert.AnError.Error())
}

func TestAdminRoutesNeedToken(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := call(t, app, "GET", "/api/admin/accommodations", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = call(t, app, "GET", "/api/admin/inquiries", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, env := call(t, app, "GET", "/api/admin/accommodations", "", constants.HeaderAdminToken, adminToken)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestAdminTablesAreSeparate(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := call(t, app, "POST", "/api/admin/accommodations", lodgeBody, constants.HeaderAdminToken, adminToken)
	require.Equal(t, http.StatusCreated, status, env.Message)
	id := decode[map[string]interface{}](t, env.Data)["id"].(string)

	status, _ = call(t, app, "GET", "/api/accommodations/"+id, "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = call(t, app, "GET", "/api/admin/accommodations/"+id, "", constants.HeaderAdminToken, adminToken)
	assert.Equal(t, http.StatusOK, status)
}

func TestAdminLogin(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := call(t, app, "POST", "/api/admin/login", `{"password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = call(t, app, "POST", "/api/admin/login", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, env := call(t, app, "POST", "/api/admin/login", `{"password":"letmein"}`)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, env.Token)

	status, _ = call(t, app, "GET", "/api/admin/destinations", "", "Authorization", "Bearer "+env.Token)
	assert.Equal(t, http.StatusOK, status)
}

func TestDetailsRoutes(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := call(t, app, "GET", "/api/itineraries/trip-1/details", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = call(t, app, "PUT", "/api/admin/itineraries/trip-1/details", `{"dayByDay":["Arrive","Safari"]}`)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, env := call(t, app, "PUT", "/api/admin/itineraries/trip-1/details", `{"dayByDay":["Arrive","Safari"]}`, constants.HeaderAdminToken, adminToken)
	require.Equal(t, http.StatusOK, status, env.Message)

	status, env = call(t, app, "GET", "/api/itineraries/trip-1/details", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"dayByDay":["Arrive","Safari"]}`, string(env.Data))

	status, _ = call(t, app, "PUT", "/api/admin/itineraries/trip-1/details", `[1,2]`, constants.HeaderAdminToken, adminToken)
	assert.Equal(t, http.StatusBadRequest, status)

	longID := strings.Repeat("x", 37)
	status, env = call(t, app, "PUT", "/api/admin/itineraries/"+longID+"/details", `{"dayByDay":[]}`, constants.HeaderAdminToken, adminToken)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid id", env.Message)

	status, _ = call(t, app, "DELETE", "/api/admin/itineraries/trip-1/details", "", constants.HeaderAdminToken, adminToken)
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(t, app, "DELETE", "/api/admin/itineraries/trip-1/details", "", constants.HeaderAdminToken, adminToken)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreateWithDetails(t *testing.T) {
	app, backend := newTestApp(t)

	body := `{"item":` + lodgeBody + `,"details":{"checkInTime":"14:00","roomTypes":["suite"]}}`
	status, env := call(t, app, "POST", "/api/admin/accommodations/with-details", body, constants.HeaderAdminToken, adminToken)
	require.Equal(t, http.StatusCreated, status, env.Message)

	out := decode[struct {
		Item    map[string]interface{} `json:"item"`
		Details map[string]interface{} `json:"details"`
	}](t, env.Data)
	id := out.Item["id"].(string)
	assert.Equal(t, "14:00", out.Details["checkInTime"])

	status, env = call(t, app, "GET", "/api/accommodations/"+id+"/details", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"checkInTime":"14:00","roomTypes":["suite"]}`, string(env.Data))

	status, _ = call(t, app, "POST", "/api/admin/accommodations/with-details", `{"item":{"name":""}}`, constants.HeaderAdminToken, adminToken)
	assert.Equal(t, http.StatusBadRequest, status)

	backend.SetFailure(assert.AnError)
	status, _ = call(t, app, "POST", "/api/admin/accommodations/with-details", body, constants.HeaderAdminToken, adminToken)
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestSubmissionsAreReadableByAdmin(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := call(t, app, "POST", "/api/inquiries", `{"firstName":"Amani","lastName":"Mollel","email":"amani@example.com","adults":2}`)
	require.Equal(t, http.StatusCreated, status, env.Message)

	id := decode[map[string]interface{}](t, env.Data)["id"].(string)

	status, env = call(t, app, "GET", "/api/admin/inquiries", "", constants.HeaderAdminToken, adminToken)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]map[string]interface{}](t, env.Data), 1)

	status, _ = call(t, app, "DELETE", "/api/admin/inquiries/"+id, "", constants.HeaderAdminToken, adminToken)
	assert.Equal(t, http.StatusOK, status)
	status, _ = call(t, app, "GET", "/api/admin/inquiries/"+id, "", constants.HeaderAdminToken, adminToken)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSubmissionsAreNotPubliclyReadable(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := call(t, app, "POST", "/api/inquiries", `{"firstName":"Amani","lastName":"Mollel","email":"amani@example.com","adults":2}`)
	require.Equal(t, http.StatusCreated, status, env.Message)
	id := decode[map[string]interface{}](t, env.Data)["id"].(string)

	for _, tc := range []struct{ method, path string }{
		{"GET", "/api/inquiries"},
		{"GET", "/api/inquiries/" + id},
		{"PUT", "/api/inquiries/" + id},
		{"DELETE", "/api/inquiries/" + id},
		{"GET", "/api/bookings"},
		{"GET", "/api/volunteer-applications"},
	} {
		resp, err := app.Test(httptest.NewRequest(tc.method, tc.path, nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Contains(t, []int{http.StatusNotFound, http.StatusMethodNotAllowed}, resp.StatusCode, tc.method+" "+tc.path)
	}

	status, _ = call(t, app, "GET", "/api/admin/inquiries/"+id, "", constants.HeaderAdminToken, adminToken)
	assert.Equal(t, http.StatusOK, status)
}

func TestHealthAndLocations(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := call(t, app, "GET", "/api/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "memory", decode[map[string]interface{}](t, env.Data)["storage"])

	status, env = call(t, app, "GET", "/api/locations", "")
	assert.Equal(t, http.StatusOK, status)
	locations := decode[[]constants.Continent](t, env.Data)
	assert.Equal(t, len(constants.Locations), len(locations))
}
