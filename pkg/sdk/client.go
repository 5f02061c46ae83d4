// Package sdk provides the client-side library for the Qik Office API.
package sdk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Record is one API record as returned by the list endpoints: a public
// string "id" plus the entity's fields, timestamps rendered as text.
type Record = map[string]any

// Client talks to a Qik Office daemon over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the daemon at baseURL (e.g. "http://localhost:8000").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Ping checks that the daemon is up.
func (c *Client) Ping() error {
	var out map[string]any
	return c.get("/", nil, &out)
}

// Signup registers a user and returns the new id and its API key.
func (c *Client) Signup(name, email, company string) (id, apiKey string, err error) {
	body := map[string]any{"name": name, "email": email}
	if company != "" {
		body["company"] = company
	}
	var out struct {
		ID     string `json:"id"`
		APIKey string `json:"api_key"`
	}
	if err := c.post("/api/signup", body, &out); err != nil {
		return "", "", err
	}
	return out.ID, out.APIKey, nil
}

// CreateWorkspace creates a workspace and returns its id.
func (c *Client) CreateWorkspace(name, ownerUserID, description string) (string, error) {
	body := map[string]any{"name": name, "owner_user_id": ownerUserID}
	if description != "" {
		body["description"] = description
	}
	return c.create("/api/workspaces", body)
}

// ListWorkspaces lists workspaces, optionally filtered by owner.
func (c *Client) ListWorkspaces(ownerUserID string) ([]Record, error) {
	q := url.Values{}
	if ownerUserID != "" {
		q.Set("owner_user_id", ownerUserID)
	}
	return c.list("/api/workspaces", q)
}

// CreateRoom creates a room in a workspace and returns its id. An empty
// roomType defaults to "online" server-side.
func (c *Client) CreateRoom(workspaceID, name, roomType, description string) (string, error) {
	body := map[string]any{"workspace_id": workspaceID, "name": name}
	if roomType != "" {
		body["type"] = roomType
	}
	if description != "" {
		body["description"] = description
	}
	return c.create("/api/rooms", body)
}

// ListRooms lists the rooms of a workspace.
func (c *Client) ListRooms(workspaceID string) ([]Record, error) {
	q := url.Values{}
	q.Set("workspace_id", workspaceID)
	return c.list("/api/rooms", q)
}

// MeetingParams are the fields for CreateMeeting. ScheduledAt is a text
// timestamp (RFC 3339 or a plain date). DurationMinutes nil means the
// server default of 60.
type MeetingParams struct {
	RoomID             string
	Title              string
	ScheduledAt        string
	DurationMinutes    *int
	HostUserID         string
	ParticipantUserIDs []string
}

// CreateMeeting schedules a meeting and returns its id.
func (c *Client) CreateMeeting(p MeetingParams) (string, error) {
	body := map[string]any{
		"room_id":      p.RoomID,
		"title":        p.Title,
		"scheduled_at": p.ScheduledAt,
		"host_user_id": p.HostUserID,
	}
	if p.DurationMinutes != nil {
		body["duration_minutes"] = *p.DurationMinutes
	}
	if p.ParticipantUserIDs != nil {
		body["participant_user_ids"] = p.ParticipantUserIDs
	}
	return c.create("/api/meetings", body)
}

// ListMeetings lists meetings, optionally filtered by room.
func (c *Client) ListMeetings(roomID string) ([]Record, error) {
	q := url.Values{}
	if roomID != "" {
		q.Set("room_id", roomID)
	}
	return c.list("/api/meetings", q)
}

// CreateNote attaches a note to a meeting and returns its id.
func (c *Client) CreateNote(meetingID, authorUserID, content string) (string, error) {
	return c.create("/api/notes", map[string]any{
		"meeting_id":     meetingID,
		"author_user_id": authorUserID,
		"content":        content,
	})
}

// ListNotes lists the notes of a meeting.
func (c *Client) ListNotes(meetingID string) ([]Record, error) {
	q := url.Values{}
	q.Set("meeting_id", meetingID)
	return c.list("/api/notes", q)
}

// CreateTask creates a task and returns its id. assigneeUserID and dueDate
// may be empty.
func (c *Client) CreateTask(meetingID, title, assigneeUserID, dueDate string) (string, error) {
	body := map[string]any{"meeting_id": meetingID, "title": title}
	if assigneeUserID != "" {
		body["assignee_user_id"] = assigneeUserID
	}
	if dueDate != "" {
		body["due_date"] = dueDate
	}
	return c.create("/api/tasks", body)
}

// ListTasks lists tasks filtered by whichever of meetingID and
// assigneeUserID are non-empty.
func (c *Client) ListTasks(meetingID, assigneeUserID string) ([]Record, error) {
	q := url.Values{}
	if meetingID != "" {
		q.Set("meeting_id", meetingID)
	}
	if assigneeUserID != "" {
		q.Set("assignee_user_id", assigneeUserID)
	}
	return c.list("/api/tasks", q)
}

// UpdateTaskStatus sets a task's status to one of open, in_progress, done.
func (c *Client) UpdateTaskStatus(taskID, status string) error {
	var out map[string]any
	return c.do(http.MethodPatch, "/api/tasks/"+taskID+"/status", map[string]any{"status": status}, &out)
}

// DashboardSummary returns the aggregate counts for a workspace.
func (c *Client) DashboardSummary(workspaceID string) (Record, error) {
	q := url.Values{}
	q.Set("workspace_id", workspaceID)
	var out Record
	if err := c.get("/api/dashboard/summary", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- HTTP plumbing ---

func (c *Client) create(path string, body map[string]any) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	if err := c.post(path, body, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) list(path string, q url.Values) ([]Record, error) {
	var out []Record
	if err := c.get(path, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.send(req, out)
}

func (c *Client) post(path string, body map[string]any, out any) error {
	return c.do(http.MethodPost, path, body, out)
}

func (c *Client) do(method, path string, body map[string]any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("api error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("api error (%d)", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}
