package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/qikoffice-dev/qikoffice-api/internal/store"
	"github.com/qikoffice-dev/qikoffice-api/pkg/schema"
)

func setupTestRouter() (*gin.Engine, *Handler) {
	gin.SetMode(gin.TestMode)
	h := New(store.NewMemStore(nil, nil), nil)
	r := gin.New()

	r.POST("/api/signup", h.Signup)
	r.POST("/api/workspaces", h.CreateWorkspace)
	r.GET("/api/workspaces", h.ListWorkspaces)
	r.POST("/api/rooms", h.CreateRoom)
	r.GET("/api/rooms", h.ListRooms)
	r.POST("/api/meetings", h.CreateMeeting)
	r.GET("/api/meetings", h.ListMeetings)
	r.POST("/api/notes", h.CreateNote)
	r.GET("/api/notes", h.ListNotes)
	r.POST("/api/tasks", h.CreateTask)
	r.GET("/api/tasks", h.ListTasks)
	r.PATCH("/api/tasks/:task_id/status", h.UpdateTaskStatus)

	return r, h
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func doList(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, []map[string]any) {
	t.Helper()
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out []map[string]any
	json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestSignup(t *testing.T) {
	r, h := setupTestRouter()

	w, out := doJSON(t, r, "POST", "/api/signup", map[string]any{
		"name":    "Ada",
		"email":   "ada@example.com",
		"company": "Bright Media",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	id, _ := out["id"].(string)
	apiKey, _ := out["api_key"].(string)
	if id == "" {
		t.Error("Expected a non-empty id")
	}
	if len(apiKey) != 32 {
		t.Errorf("Expected a 32-char api key, got %q", apiKey)
	}

	recs, _ := h.Store.Find(context.Background(), schema.CollectionUser, nil)
	if len(recs) != 1 {
		t.Fatalf("Expected 1 stored user, got %d", len(recs))
	}
	if recs[0]["is_active"] != true {
		t.Errorf("Expected is_active default true, got %v", recs[0]["is_active"])
	}
	if recs[0]["api_key"] != apiKey {
		t.Errorf("Stored api key mismatch: %v", recs[0]["api_key"])
	}
}

func TestSignupRejectsBadEmail(t *testing.T) {
	r, h := setupTestRouter()

	w, _ := doJSON(t, r, "POST", "/api/signup", map[string]any{
		"name":  "Ada",
		"email": "not-an-email",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	recs, _ := h.Store.Find(context.Background(), schema.CollectionUser, nil)
	if len(recs) != 0 {
		t.Errorf("Invalid signup must not store a record, found %d", len(recs))
	}
}

func TestWorkspaceCreateAndList(t *testing.T) {
	r, _ := setupTestRouter()

	w, out := doJSON(t, r, "POST", "/api/workspaces", map[string]any{
		"name":          "Bright Media",
		"owner_user_id": "u1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	id := out["id"].(string)

	doJSON(t, r, "POST", "/api/workspaces", map[string]any{
		"name":          "Other",
		"owner_user_id": "u2",
	})

	w, list := doList(t, r, "/api/workspaces?owner_user_id=u1")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if len(list) != 1 {
		t.Fatalf("Expected 1 workspace for u1, got %d", len(list))
	}
	if list[0]["id"] != id {
		t.Errorf("Expected id %s on the wire, got %v", id, list[0]["id"])
	}
	members, ok := list[0]["member_user_ids"].([]any)
	if !ok || len(members) != 0 {
		t.Errorf("Expected an empty member list by default, got %v", list[0]["member_user_ids"])
	}

	w, list = doList(t, r, "/api/workspaces")
	if len(list) != 2 {
		t.Errorf("Expected 2 workspaces without filter, got %d", len(list))
	}
}

func TestWorkspaceRequiredFields(t *testing.T) {
	r, _ := setupTestRouter()

	w, _ := doJSON(t, r, "POST", "/api/workspaces", map[string]any{"name": "No owner"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for missing owner_user_id, got %d", w.Code)
	}
}

func TestRoomDefaultsAndRequiredListFilter(t *testing.T) {
	r, _ := setupTestRouter()

	w, out := doJSON(t, r, "POST", "/api/rooms", map[string]any{
		"workspace_id": "ws1",
		"name":         "War Room",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if out["id"] == "" {
		t.Error("Expected a room id")
	}

	w, list := doList(t, r, "/api/rooms?workspace_id=ws1")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if len(list) != 1 || list[0]["type"] != "online" {
		t.Errorf("Expected room type to default to online, got %v", list)
	}

	w, _ = doList(t, r, "/api/rooms")
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 without workspace_id, got %d", w.Code)
	}
}

func TestMeetingDefaults(t *testing.T) {
	r, _ := setupTestRouter()

	w, out := doJSON(t, r, "POST", "/api/meetings", map[string]any{
		"room_id":      "r1",
		"title":        "Standup",
		"scheduled_at": "2025-03-14T09:30:00Z",
		"host_user_id": "u1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if out["id"] == "" {
		t.Fatal("Expected a meeting id")
	}

	_, list := doList(t, r, "/api/meetings?room_id=r1")
	if len(list) != 1 {
		t.Fatalf("Expected 1 meeting, got %d", len(list))
	}
	mtg := list[0]
	if mtg["status"] != "scheduled" {
		t.Errorf("Expected status default scheduled, got %v", mtg["status"])
	}
	if mtg["duration_minutes"] != float64(60) {
		t.Errorf("Expected duration default 60, got %v", mtg["duration_minutes"])
	}
	if mtg["scheduled_at"] != "2025-03-14T09:30:00Z" {
		t.Errorf("Expected scheduled_at as text, got %v", mtg["scheduled_at"])
	}
	participants, ok := mtg["participant_user_ids"].([]any)
	if !ok || len(participants) != 0 {
		t.Errorf("Expected empty participants by default, got %v", mtg["participant_user_ids"])
	}
}

func TestMeetingRejectsBadTimestamp(t *testing.T) {
	r, h := setupTestRouter()

	w, _ := doJSON(t, r, "POST", "/api/meetings", map[string]any{
		"room_id":      "r1",
		"title":        "Standup",
		"scheduled_at": "next tuesday",
		"host_user_id": "u1",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unparsable scheduled_at, got %d", w.Code)
	}
	recs, _ := h.Store.Find(context.Background(), schema.CollectionMeeting, nil)
	if len(recs) != 0 {
		t.Errorf("Bad timestamp must not create a record, found %d", len(recs))
	}
}

func TestMeetingRejectsNegativeDuration(t *testing.T) {
	r, _ := setupTestRouter()

	w, _ := doJSON(t, r, "POST", "/api/meetings", map[string]any{
		"room_id":          "r1",
		"title":            "Standup",
		"scheduled_at":     "2025-03-14T09:30:00Z",
		"duration_minutes": -5,
		"host_user_id":     "u1",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for negative duration, got %d", w.Code)
	}
}

func TestNoteCreateAndList(t *testing.T) {
	r, _ := setupTestRouter()

	w, _ := doJSON(t, r, "POST", "/api/notes", map[string]any{
		"meeting_id":     "m1",
		"author_user_id": "u1",
		"content":        "decisions made",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	w, list := doList(t, r, "/api/notes?meeting_id=m1")
	if w.Code != http.StatusOK || len(list) != 1 {
		t.Fatalf("Expected 1 note, got %d (status %d)", len(list), w.Code)
	}
	if list[0]["content"] != "decisions made" {
		t.Errorf("Unexpected note: %v", list[0])
	}

	w, _ = doList(t, r, "/api/notes")
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 without meeting_id, got %d", w.Code)
	}
}

func TestTaskFilters(t *testing.T) {
	r, _ := setupTestRouter()

	doJSON(t, r, "POST", "/api/tasks", map[string]any{"meeting_id": "m1", "title": "a", "assignee_user_id": "u1"})
	doJSON(t, r, "POST", "/api/tasks", map[string]any{"meeting_id": "m1", "title": "b"})
	doJSON(t, r, "POST", "/api/tasks", map[string]any{"meeting_id": "m2", "title": "c", "assignee_user_id": "u1"})

	_, list := doList(t, r, "/api/tasks")
	if len(list) != 3 {
		t.Errorf("Expected all 3 tasks without filters, got %d", len(list))
	}
	if list[0]["status"] != "open" {
		t.Errorf("Expected status default open, got %v", list[0]["status"])
	}

	_, list = doList(t, r, "/api/tasks?meeting_id=m1")
	if len(list) != 2 {
		t.Errorf("Expected 2 tasks for m1, got %d", len(list))
	}

	_, list = doList(t, r, "/api/tasks?meeting_id=m1&assignee_user_id=u1")
	if len(list) != 1 || list[0]["title"] != "a" {
		t.Errorf("Expected only task a, got %v", list)
	}
}

func TestTaskDueDateParsing(t *testing.T) {
	r, _ := setupTestRouter()

	w, _ := doJSON(t, r, "POST", "/api/tasks", map[string]any{
		"meeting_id": "m1",
		"title":      "a",
		"due_date":   "2025-04-01",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for date-only due_date, got %d: %s", w.Code, w.Body.String())
	}
	_, list := doList(t, r, "/api/tasks?meeting_id=m1")
	if list[0]["due_date"] != "2025-04-01T00:00:00Z" {
		t.Errorf("Expected due_date as text, got %v", list[0]["due_date"])
	}

	w, _ = doJSON(t, r, "POST", "/api/tasks", map[string]any{
		"meeting_id": "m1",
		"title":      "b",
		"due_date":   "someday",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unparsable due_date, got %d", w.Code)
	}
}

func TestUpdateTaskStatus(t *testing.T) {
	r, h := setupTestRouter()

	_, out := doJSON(t, r, "POST", "/api/tasks", map[string]any{
		"meeting_id": "m1", "title": "a", "assignee_user_id": "u1",
	})
	id := out["id"].(string)

	w, body := doJSON(t, r, "PATCH", "/api/tasks/"+id+"/status", map[string]any{"status": "done"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if body["id"] != id || body["status"] != "done" {
		t.Errorf("Unexpected response: %v", body)
	}

	recs, _ := h.Store.Find(context.Background(), schema.CollectionTask, nil)
	if recs[0]["status"] != "done" {
		t.Errorf("Status not persisted: %v", recs[0])
	}
	if recs[0]["title"] != "a" || recs[0]["assignee_user_id"] != "u1" {
		t.Errorf("Update touched other fields: %v", recs[0])
	}
}

func TestUpdateTaskStatusErrors(t *testing.T) {
	r, _ := setupTestRouter()

	missing := primitive.NewObjectID().Hex()
	w, _ := doJSON(t, r, "PATCH", "/api/tasks/"+missing+"/status", map[string]any{"status": "done"})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for unknown id, got %d", w.Code)
	}

	w, _ = doJSON(t, r, "PATCH", "/api/tasks/zzz/status", map[string]any{"status": "done"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for malformed id, got %d", w.Code)
	}

	w, _ = doJSON(t, r, "PATCH", "/api/tasks/"+missing+"/status", map[string]any{"status": "finished"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unrecognized status, got %d", w.Code)
	}
}

func TestStoreUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := New(nil, nil)
	r := gin.New()
	r.GET("/api/tasks", h.ListTasks)
	r.POST("/api/signup", h.Signup)

	w, _ := doList(t, r, "/api/tasks")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503 with no store, got %d", w.Code)
	}

	w, _ = doJSON(t, r, "POST", "/api/signup", map[string]any{"name": "Ada", "email": "ada@example.com"})
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503 with no store, got %d", w.Code)
	}
}

func TestParseTimestampLayouts(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2025-03-14T09:30:00Z", true},
		{"2025-03-14T09:30:00+02:00", true},
		{"2025-03-14T09:30:00", true},
		{"2025-03-14", true},
		{"14/03/2025", false},
		{"", false},
	}
	for _, tc := range cases {
		_, err := parseTimestamp(tc.in)
		if tc.ok && err != nil {
			t.Errorf("parseTimestamp(%q) failed: %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("parseTimestamp(%q) should have failed", tc.in)
		}
	}
}
