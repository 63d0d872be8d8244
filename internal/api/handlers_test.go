package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"realestate/server/config"
	"realestate/server/internal/auth"
	"realestate/server/internal/database"
	"realestate/server/internal/models"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Seeded users, in catalog order
const (
	johnDoe int64 = iota + 1
	janeSmith
	builderCorp
	puneRealty
	siteAdmin
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.ListingEvent
}

func (p *recordingPublisher) Publish(e models.ListingEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) kinds() []models.EventKind {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.EventKind, len(p.events))
	for i, e := range p.events {
		out[i] = e.Kind
	}
	return out
}

type MockActivity struct {
	mock.Mock
}

func (m *MockActivity) Recent(limit int, kind models.EventKind) ([]models.ListingEvent, error) {
	args := m.Called(limit, kind)
	return args.Get(0).([]models.ListingEvent), args.Error(1)
}

type testServer struct {
	router   *gin.Engine
	db       *database.Database
	tokens   *auth.Manager
	events   *recordingPublisher
	activity *MockActivity
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	db := database.NewDatabase(database.WithClock(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}))
	catalog, err := config.LoadSeed("")
	require.NoError(t, err)
	require.NoError(t, db.Seed(catalog))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s := &testServer{
		db:       db,
		tokens:   auth.NewManager("test-secret", time.Hour),
		events:   &recordingPublisher{},
		activity: &MockActivity{},
	}
	h := NewHandler(db, s.tokens, logger, WithEvents(s.events), WithActivity(s.activity))
	s.router = NewRouter(h, RouterOptions{AllowedOrigins: []string{"http://localhost:5173"}})
	return s
}

func (s *testServer) token(t *testing.T, userID int64) string {
	t.Helper()
	user, ok := s.db.GetUser(userID)
	require.True(t, ok)
	token, err := s.tokens.Issue(user)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func propertyIDs(props []models.Property) []int64 {
	out := make([]int64, len(props))
	for i, p := range props {
		out[i] = p.ID
	}
	return out
}

func newListing(cityID int64) map[string]interface{} {
	return map[string]interface{}{
		"title":         "2 BHK near Kharadi",
		"description":   "Bright flat close to the IT park",
		"property_type": "apartment",
		"listing_type":  "rent",
		"price":         32000,
		"bedrooms":      2,
		"area_sqft":     980,
		"address":       "EON Free Zone Road",
		"locality_id":   7,
		"city_id":       cityID,
		"state":         "Maharashtra",
		"owner_id":      builderCorp,
		"amenities":     []string{"Lift"},
		"images":        []string{"https://example.com/a.jpg"},
	}
}

func TestGetProperties(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedIDs    []int64
	}{
		{name: "All newest first", query: "", expectedStatus: http.StatusOK, expectedIDs: []int64{8, 7, 6, 5, 4, 3, 2, 1}},
		{name: "Price band", query: "?min_price=9000000&max_price=10000000", expectedStatus: http.StatusOK, expectedIDs: []int64{5}},
		{name: "City", query: "?city=1", expectedStatus: http.StatusOK, expectedIDs: []int64{6, 1}},
		{name: "Locality", query: "?locality=5", expectedStatus: http.StatusOK, expectedIDs: []int64{8, 2}},
		{name: "Type and bedrooms", query: "?property_type=apartment&bedrooms=3", expectedStatus: http.StatusOK, expectedIDs: []int64{6, 4, 1}},
		{name: "Area range", query: "?min_area=2000&max_area=2500", expectedStatus: http.StatusOK, expectedIDs: []int64{5, 2}},
		{name: "Page", query: "?limit=2&offset=1", expectedStatus: http.StatusOK, expectedIDs: []int64{7, 6}},
		{name: "Page after range filter", query: "?min_price=9000000&limit=2", expectedStatus: http.StatusOK, expectedIDs: []int64{7, 6}},
		{name: "Zero limit", query: "?limit=0", expectedStatus: http.StatusOK, expectedIDs: []int64{}},
		{name: "No match", query: "?listing_type=pg", expectedStatus: http.StatusOK, expectedIDs: []int64{}},
		{name: "Bad city", query: "?city=mumbai", expectedStatus: http.StatusBadRequest},
		{name: "Bad price", query: "?min_price=1e6", expectedStatus: http.StatusBadRequest},
		{name: "Bad type", query: "?property_type=castle", expectedStatus: http.StatusBadRequest},
		{name: "Negative offset", query: "?offset=-1", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(http.MethodGet, "/api/properties"+tt.query, nil, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus != http.StatusOK {
				assert.Contains(t, w.Body.String(), "error")
				return
			}
			assert.Equal(t, tt.expectedIDs, propertyIDs(decode[[]models.Property](t, w)))
		})
	}
}

func TestFeaturedAndRecent(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/properties/featured", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{8, 7, 6, 4, 1}, propertyIDs(decode[[]models.Property](t, w)))

	w = s.do(http.MethodGet, "/api/properties/featured?limit=2", nil, "")
	assert.Equal(t, []int64{8, 7}, propertyIDs(decode[[]models.Property](t, w)))

	w = s.do(http.MethodGet, "/api/properties/recent", nil, "")
	assert.Equal(t, []int64{8, 7, 6}, propertyIDs(decode[[]models.Property](t, w)))

	w = s.do(http.MethodGet, "/api/properties/recent?limit=abc", nil, "")
	assert.Len(t, decode[[]models.Property](t, w), database.DefaultRecentLimit)
}

func TestGetProperty(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/properties/5", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	p := decode[models.Property](t, w)
	assert.Equal(t, "4 BHK Luxury Apartment", p.Title)
	assert.Equal(t, janeSmith, p.OwnerID)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/properties/99", nil, "").Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/properties/abc", nil, "").Code)
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t)

	body := map[string]interface{}{
		"username": "asha",
		"password": "secret99",
		"email":    "asha@example.com",
		"name":     "Asha Rao",
	}
	w := s.do(http.MethodPost, "/api/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode[models.LoginResponse](t, w)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleBuyer, resp.User.Role)
	assert.NotContains(t, w.Body.String(), "secret99")

	w = s.do(http.MethodGet, "/api/user", nil, resp.Token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "asha", decode[models.User](t, w).Username)

	tests := []struct {
		name           string
		body           map[string]interface{}
		expectedStatus int
	}{
		{
			name:           "Username taken in another case",
			body:           map[string]interface{}{"username": "JohnDoe", "password": "secret99", "email": "new@example.com", "name": "X"},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Email taken",
			body:           map[string]interface{}{"username": "someone", "password": "secret99", "email": "JOHN@example.com", "name": "X"},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Admin self registration",
			body:           map[string]interface{}{"username": "root", "password": "secret99", "email": "root@example.com", "name": "X", "role": "admin"},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Invalid email",
			body:           map[string]interface{}{"username": "someone", "password": "secret99", "email": "nope", "name": "X"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Short password",
			body:           map[string]interface{}{"username": "someone", "password": "123", "email": "s@example.com", "name": "X"},
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := s.db.Counts().Users
			w := s.do(http.MethodPost, "/api/register", tt.body, "")
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			assert.Equal(t, before, s.db.Counts().Users)
		})
	}

	w = s.do(http.MethodPost, "/api/login", map[string]string{"username": "johndoe", "password": "password123"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, johnDoe, decode[models.LoginResponse](t, w).User.ID)

	w = s.do(http.MethodPost, "/api/login", map[string]string{"username": "johndoe", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/login", map[string]string{"username": "johndoe"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/logout", nil, "").Code)
}

func TestUpdateCurrentUser(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, johnDoe)

	w := s.do(http.MethodPatch, "/api/user", map[string]string{"phone": "9000000000"}, token)
	require.Equal(t, http.StatusOK, w.Code)
	user := decode[models.User](t, w)
	require.NotNil(t, user.Phone)
	assert.Equal(t, "9000000000", *user.Phone)
	assert.Equal(t, "John Doe", user.Name)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/user", nil, "").Code)

	w = s.do(http.MethodGet, "/api/user/properties", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{2, 8}, propertyIDs(decode[[]models.Property](t, w)))
}

func TestPropertyLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, johnDoe)

	city := func() models.City {
		w := s.do(http.MethodGet, "/api/cities/5", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		return decode[models.City](t, w)
	}
	assert.Equal(t, 1, city().PropertyCount)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/api/properties", newListing(5), "").Code)

	w := s.do(http.MethodPost, "/api/properties", newListing(5), token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Property](t, w)
	assert.Equal(t, int64(9), created.ID)
	assert.Equal(t, johnDoe, created.OwnerID)
	assert.Equal(t, models.PropertyStatusActive, created.Status)
	assert.Equal(t, 2, city().PropertyCount)

	w = s.do(http.MethodPut, "/api/properties/9", map[string]interface{}{"price": 30000}, s.token(t, janeSmith))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPut, "/api/properties/9", map[string]interface{}{"price": 30000, "featured": true}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.Property](t, w)
	assert.Equal(t, int64(30000), updated.Price)
	assert.True(t, updated.Featured)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, 2, city().PropertyCount)

	w = s.do(http.MethodPut, "/api/properties/9", map[string]interface{}{"price": -5}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, http.StatusForbidden, s.do(http.MethodDelete, "/api/properties/9", nil, s.token(t, janeSmith)).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, "/api/properties/9", nil, token).Code)
	assert.Equal(t, 1, city().PropertyCount)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, "/api/properties/9", nil, token).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPut, "/api/properties/9", map[string]interface{}{}, token).Code)

	assert.Equal(t, []models.EventKind{
		models.EventPropertyCreated,
		models.EventPropertyUpdated,
		models.EventPropertyDeleted,
	}, s.events.kinds())
	require.NotNil(t, s.events.events[0].CityID)
	assert.Equal(t, int64(5), *s.events.events[0].CityID)
}

func TestCreatePropertyValidation(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, johnDoe)

	unknownCity := newListing(42)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/properties", unknownCity, token).Code)

	missingTitle := newListing(5)
	delete(missingTitle, "title")
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/properties", missingTitle, token).Code)

	badType := newListing(5)
	badType["listing_type"] = "lease"
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/properties", badType, token).Code)

	assert.Equal(t, 8, s.db.Counts().Properties)
	assert.Empty(t, s.events.kinds())
}

func TestFavorites(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, puneRealty)

	w := s.do(http.MethodPost, "/api/favorites", map[string]int64{"property_id": 7}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	fav := decode[models.Favorite](t, w)
	assert.Equal(t, puneRealty, fav.UserID)

	w = s.do(http.MethodPost, "/api/favorites", map[string]int64{"property_id": 7}, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(http.MethodPost, "/api/favorites", map[string]int64{"property_id": 404}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/api/favorites", map[string]int64{"property_id": 5}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(http.MethodGet, "/api/favorites", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	favs := decode[[]models.FavoriteWithProperty](t, w)
	require.Len(t, favs, 2)
	assert.Equal(t, "4 BHK Villa in Sobha International City", favs[0].Property.Title)

	// a deleted property drops out of the list without error
	require.Equal(t, http.StatusOK, s.do(http.MethodDelete, "/api/properties/5", nil, s.token(t, janeSmith)).Code)
	w = s.do(http.MethodGet, "/api/favorites", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.FavoriteWithProperty](t, w), 1)

	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, "/api/favorites/7", nil, token).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, "/api/favorites/7", nil, token).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/favorites", nil, "").Code)

	assert.Equal(t, []models.EventKind{
		models.EventFavoriteAdded,
		models.EventFavoriteAdded,
		models.EventPropertyDeleted,
		models.EventFavoriteRemoved,
	}, s.events.kinds())
}

func TestInquiries(t *testing.T) {
	s := newTestServer(t)
	inquiry := func(propertyID int64) map[string]interface{} {
		return map[string]interface{}{
			"property_id": propertyID,
			"name":        "Ravi",
			"email":       "ravi@example.com",
			"phone":       "9123456780",
			"message":     "Is this still available?",
			"user_id":     999,
		}
	}

	w := s.do(http.MethodPost, "/api/inquiries", inquiry(2), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	anon := decode[models.Inquiry](t, w)
	assert.Nil(t, anon.UserID)
	assert.Equal(t, models.InquiryStatusNew, anon.Status)

	w = s.do(http.MethodPost, "/api/inquiries", inquiry(3), s.token(t, puneRealty))
	require.Equal(t, http.StatusCreated, w.Code)
	signed := decode[models.Inquiry](t, w)
	require.NotNil(t, signed.UserID)
	assert.Equal(t, puneRealty, *signed.UserID)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/api/inquiries", inquiry(404), "").Code)
	bad := inquiry(2)
	bad["email"] = "not-an-email"
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/inquiries", bad, "").Code)

	// property 2 belongs to johndoe, property 3 to janesmith
	w = s.do(http.MethodGet, "/api/inquiries", nil, s.token(t, johnDoe))
	require.Equal(t, http.StatusOK, w.Code)
	mine := decode[[]models.Inquiry](t, w)
	require.Len(t, mine, 1)
	assert.Equal(t, anon.ID, mine[0].ID)

	w = s.do(http.MethodGet, "/api/inquiries", nil, s.token(t, builderCorp))
	assert.Empty(t, decode[[]models.Inquiry](t, w))

	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/api/properties/2/inquiries", nil, s.token(t, janeSmith)).Code)
	w = s.do(http.MethodGet, "/api/properties/2/inquiries", nil, s.token(t, johnDoe))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Inquiry](t, w), 1)

	path := "/api/inquiries/1"
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPatch, path, map[string]string{"status": "contacted"}, s.token(t, janeSmith)).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPatch, path, map[string]string{"status": "lost"}, s.token(t, johnDoe)).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPatch, "/api/inquiries/50", map[string]string{"status": "closed"}, s.token(t, johnDoe)).Code)

	w = s.do(http.MethodPatch, path, map[string]string{"status": "contacted"}, s.token(t, johnDoe))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.InquiryStatusContacted, decode[models.Inquiry](t, w).Status)
}

func TestAgents(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/agents", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	agents := decode[[]models.AgentProfile](t, w)
	require.Len(t, agents, 4)
	got := make([]int64, len(agents))
	for i, a := range agents {
		got[i] = a.ID
	}
	assert.Equal(t, []int64{1, 3, 4, 2}, got)
	require.NotNil(t, agents[0].Name)
	assert.Equal(t, "Jane Smith", *agents[0].Name)

	w = s.do(http.MethodGet, "/api/agents/2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Builder Corp", *decode[models.AgentProfile](t, w).Name)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/agents/40", nil, "").Code)

	body := map[string]interface{}{"speciality": "Chennai Specialist", "experience_years": 2, "rating": 4.2}
	assert.Equal(t, http.StatusConflict, s.do(http.MethodPost, "/api/agents", body, s.token(t, janeSmith)).Code)

	w = s.do(http.MethodPost, "/api/agents", body, s.token(t, siteAdmin))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.AgentProfile](t, w)
	assert.Equal(t, siteAdmin, created.UserID)
	assert.Equal(t, "Site Admin", *created.Name)

	body["rating"] = 7
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/agents", body, s.token(t, johnDoe)).Code)
}

func TestCities(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/cities", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	cities := decode[[]models.City](t, w)
	require.Len(t, cities, 6)
	counts := make(map[string]int)
	for _, c := range cities {
		counts[c.Name] = c.PropertyCount
	}
	assert.Equal(t, map[string]int{
		"Mumbai": 2, "Delhi NCR": 2, "Bangalore": 2, "Hyderabad": 1, "Pune": 1, "Chennai": 0,
	}, counts)

	w = s.do(http.MethodGet, "/api/cities/1/localities", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Locality](t, w), 2)

	w = s.do(http.MethodGet, "/api/cities/3/properties", nil, "")
	assert.Equal(t, []int64{2, 8}, propertyIDs(decode[[]models.Property](t, w)))

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/cities/99", nil, "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/localities/99", nil, "").Code)

	newCity := map[string]string{"name": "Kochi", "state": "Kerala"}
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/api/cities", newCity, s.token(t, johnDoe)).Code)

	admin := s.token(t, siteAdmin)
	w = s.do(http.MethodPost, "/api/cities", newCity, admin)
	require.Equal(t, http.StatusCreated, w.Code)
	kochi := decode[models.City](t, w)
	assert.Equal(t, int64(7), kochi.ID)
	assert.Equal(t, 0, kochi.PropertyCount)

	w = s.do(http.MethodPost, "/api/cities/7/localities", map[string]string{"name": "Kakkanad"}, admin)
	require.Equal(t, http.StatusCreated, w.Code)
	locality := decode[models.Locality](t, w)
	assert.Equal(t, int64(7), locality.CityID)

	w = s.do(http.MethodGet, "/api/localities/8", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Kakkanad", decode[models.Locality](t, w).Name)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/api/cities/99/localities", map[string]string{"name": "x"}, admin).Code)
}

func TestPropertyStats(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/stats?city=3", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[models.PropertyStats](t, w)
	assert.Equal(t, 2, stats.TotalProperties)
	assert.Equal(t, int64(7250000), stats.MinPrice)
	assert.Equal(t, int64(12000000), stats.MaxPrice)
	assert.InDelta(t, 9625000, stats.AveragePrice, 0.5)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/stats?city=x", nil, "").Code)
}

func TestActivity(t *testing.T) {
	s := newTestServer(t)
	archived := []models.ListingEvent{{ID: 1, Kind: models.EventPropertyCreated, PropertyID: 3}}
	s.activity.On("Recent", 10, models.EventPropertyCreated).Return(archived, nil).Once()
	s.activity.On("Recent", 50, models.EventKind("")).Return([]models.ListingEvent{}, errors.New("disk I/O error")).Once()

	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/api/activity", nil, s.token(t, johnDoe)).Code)

	w := s.do(http.MethodGet, "/api/activity?limit=10&kind=property.created", nil, s.token(t, siteAdmin))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.ListingEvent](t, w), 1)

	w = s.do(http.MethodGet, "/api/activity", nil, s.token(t, siteAdmin))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	s.activity.AssertExpectations(t)
}

func TestRequestIDAndCORS(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/healthz", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "6f1c2b3a-8d4e-4f5a-9b6c-7d8e9f0a1b2c")
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, "6f1c2b3a-8d4e-4f5a-9b6c-7d8e9f0a1b2c", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
