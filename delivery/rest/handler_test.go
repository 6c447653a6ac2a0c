package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"weddingplanner/auth"
	"weddingplanner/checklist"
	"weddingplanner/delivery/rest/dto"
	"weddingplanner/delivery/rest/response"
	"weddingplanner/domain"
	"weddingplanner/domain/entity"
	"weddingplanner/repository/memory"
	"weddingplanner/seed"
	"weddingplanner/venue"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	log := zap.NewNop()
	h := NewHandler(
		checklist.NewService(memory.NewTaskRepository(seed.Tasks()), log),
		venue.NewService(memory.NewVenueRepository(seed.Venues()), log),
		auth.NewService(memory.NewUserRepository(), log),
		log,
	)

	r := gin.New()
	h.Register(r.Group("/api/v1"))
	return r
}

func do(r *gin.Engine, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestSearchChecklist(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name      string
		path      string
		wantCount int
		check     func(t *testing.T, resp dto.ChecklistResponse)
	}{
		{
			name:      "no criteria returns everything",
			path:      "/api/v1/checklist",
			wantCount: 10,
			check: func(t *testing.T, resp dto.ChecklistResponse) {
				assert.Equal(t, "All", resp.Category)
				assert.Equal(t, "All", resp.Categories[0])
				assert.Equal(t, 10, resp.Stats.Total)
				for i := 0; i < 5; i++ {
					assert.Equal(t, entity.PriorityHigh, resp.Items[i].Priority)
				}
			},
		},
		{
			name:      "query matches title or description",
			path:      "/api/v1/checklist?q=BOOK",
			wantCount: 6,
		},
		{
			name:      "category filter",
			path:      "/api/v1/checklist?category=Ceremonies",
			wantCount: 2,
			check: func(t *testing.T, resp dto.ChecklistResponse) {
				assert.Equal(t, "Plan Mehendi Ceremony", resp.Items[0].Title)
				assert.Equal(t, "Plan Sangeet Event", resp.Items[1].Title)
				assert.Len(t, resp.Categories, 10)
			},
		},
		{
			name:      "no match is an empty list",
			path:      "/api/v1/checklist?q=zzz",
			wantCount: 0,
			check: func(t *testing.T, resp dto.ChecklistResponse) {
				assert.NotNil(t, resp.Items)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodGet, tt.path, nil)
			require.Equal(t, http.StatusOK, w.Code)

			resp := decode[dto.ChecklistResponse](t, w)
			assert.Equal(t, tt.wantCount, resp.ResultCount)
			assert.Len(t, resp.Items, tt.wantCount)
			if tt.check != nil {
				tt.check(t, resp)
			}
		})
	}
}

func TestTaskLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/v1/checklist", map[string]any{
		"title":    "Hire DJ",
		"category": "Music",
		"priority": "LOW",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[entity.Task](t, w)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entity.PriorityLow, created.Priority)

	path := "/api/v1/checklist/" + created.ID

	w = do(r, http.MethodPost, path+"/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[entity.Task](t, w).Completed)

	w = do(r, http.MethodGet, "/api/v1/checklist/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[dto.StatsResponse](t, w)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 11, stats.Total)
	assert.False(t, stats.Done)

	w = do(r, http.MethodPut, path, map[string]any{
		"title":    "Hire DJ and MC",
		"priority": "HIGH",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[entity.Task](t, w)
	assert.Equal(t, "Hire DJ and MC", updated.Title)
	assert.Equal(t, entity.DefaultCategory, updated.Category)
	assert.False(t, updated.Completed)

	w = do(r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, updated, decode[entity.Task](t, w))

	w = do(r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decode[response.Body](t, w).Error)
}

func TestCreateTask_Invalid(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		body any
	}{
		{name: "missing title", body: map[string]any{"category": "Music"}},
		{name: "unknown priority", body: map[string]any{"title": "Cake", "priority": "URGENT"}},
		{name: "blank title", body: map[string]any{"title": "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/v1/checklist", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUpdateTask_NotFound(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPut, "/api/v1/checklist/missing", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/api/v1/checklist/missing/toggle", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCategories(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/v1/checklist/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.CategoriesResponse](t, w)
	assert.Equal(t, []string{
		"All", "Attire", "Catering", "Ceremonies", "Decoration", "Invitations",
		"Photography", "Transportation", "Travel", "Venue",
	}, resp.Categories)
}

func TestSearchVenues(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantNames  []string
	}{
		{
			name:       "budget upper bound",
			path:       "/api/v1/venues?min_budget=0&max_budget=150000",
			wantStatus: http.StatusOK,
			wantNames:  []string{"Heritage Haveli", "Crystal Banquet Hall", "Hillside Manor", "Urban Rooftop Venue"},
		},
		{
			name:       "region",
			path:       "/api/v1/venues?region=Rajasthan",
			wantStatus: http.StatusOK,
			wantNames:  []string{"Desert Oasis Resort", "Heritage Haveli"},
		},
		{
			name:       "query and capacity",
			path:       "/api/v1/venues?q=resort&min_capacity=360&max_capacity=1000",
			wantStatus: http.StatusOK,
			wantNames:  []string{"Desert Oasis Resort"},
		},
		{
			name:       "negative bound rejected",
			path:       "/api/v1/venues?min_budget=-5",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non numeric bound rejected",
			path:       "/api/v1/venues?max_capacity=lots",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodGet, tt.path, nil)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}

			resp := decode[dto.VenueListResponse](t, w)
			names := make([]string, 0, len(resp.Venues))
			for _, v := range resp.Venues {
				names = append(names, v.Name)
			}
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, len(tt.wantNames), resp.ResultCount)
			assert.Len(t, resp.Regions, 11)
		})
	}
}

func TestVenueRegionsAndGet(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/v1/venues/regions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	regions := decode[dto.RegionsResponse](t, w).Regions
	assert.Equal(t, "All", regions[0])
	assert.Contains(t, regions, "Mumbai")
	assert.Contains(t, regions, "Jaisalmer")

	id := seed.Venues()[0].ID
	w = do(r, http.MethodGet, "/api/v1/venues/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Royal Palace Gardens", decode[entity.Venue](t, w).Name)

	w = do(r, http.MethodGet, "/api/v1/venues/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthFlow(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{
		Email:       "asha@example.com",
		PhoneNumber: "9876543210",
		Name:        "Asha",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	registered := decode[auth.Session](t, w)
	assert.Equal(t, registered.Token, w.Header().Get(SessionHeader))
	assert.True(t, registered.User.LoggedIn)

	w = do(r, http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{Email: "asha@example.com", Name: "Asha"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodGet, "/api/v1/auth/me", nil, SessionHeader, registered.Token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "asha@example.com", decode[entity.User](t, w).Email)

	w = do(r, http.MethodPost, "/api/v1/auth/logout", nil, SessionHeader, registered.Token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodGet, "/api/v1/auth/me", nil, SessionHeader, registered.Token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Email: "asha@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEqual(t, registered.Token, decode[auth.Session](t, w).Token)
}

func TestAuthErrors(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
		wantCode   string
	}{
		{"register without name", http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{Email: "a@b.co"}, http.StatusBadRequest, "validation_error"},
		{"register bad phone", http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{Email: "a@b.co", Name: "A", PhoneNumber: "12ab"}, http.StatusBadRequest, "validation_error"},
		{"login unknown", http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Email: "ghost@example.com"}, http.StatusNotFound, "not_found"},
		{"login invalid email", http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Email: "ghost"}, http.StatusBadRequest, "validation_error"},
		{"me without token", http.MethodGet, "/api/v1/auth/me", nil, http.StatusUnauthorized, "unauthorized"},
		{"logout without token", http.MethodPost, "/api/v1/auth/logout", nil, http.StatusUnauthorized, "unauthorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decode[response.Body](t, w).Error)
		})
	}
}

func TestGetStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{domain.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("find: %w", domain.ErrUserNotFound), http.StatusNotFound},
		{domain.ErrConflict, http.StatusConflict},
		{fmt.Errorf("%w: title", domain.ErrBadParamInput), http.StatusBadRequest},
		{domain.ErrSessionNotFound, http.StatusUnauthorized},
		{domain.ErrInternalServerError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, getStatusCode(tt.err), "%v", tt.err)
	}
}
