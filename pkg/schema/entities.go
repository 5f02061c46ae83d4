// Package schema defines the stored record shapes used across the Qik Office platform.
// Each struct maps to a Mongo-style collection (lowercased type name); the store
// assigns the record identifier, so the structs carry no id field of their own.
package schema

import "time"

// Collection names. These are runtime keys into the document store, not types.
const (
	CollectionUser      = "user"
	CollectionWorkspace = "workspace"
	CollectionRoom      = "room"
	CollectionMeeting   = "meeting"
	CollectionNote      = "note"
	CollectionTask      = "task"
	CollectionFileAsset = "fileasset"
)

// Collections lists every known collection, in the order reported by GET /schema.
var Collections = []string{
	CollectionUser,
	CollectionWorkspace,
	CollectionRoom,
	CollectionMeeting,
	CollectionNote,
	CollectionTask,
	CollectionFileAsset,
}

// Room types. Stored as-is; the store does not reject other values.
const (
	RoomTypeOnline   = "online"
	RoomTypeInPerson = "in-person"
	RoomTypeHybrid   = "hybrid"
)

// Meeting statuses.
const (
	MeetingStatusScheduled = "scheduled"
	MeetingStatusLive      = "live"
	MeetingStatusCompleted = "completed"
	MeetingStatusCancelled = "cancelled"
)

// Task statuses.
const (
	TaskStatusOpen       = "open"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// ValidTaskStatus reports whether s is one of the recognized task statuses.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// User is a registered account. Email is intended to be unique but the store
// does not enforce it.
type User struct {
	Name      string `bson:"name" json:"name"`
	Email     string `bson:"email" json:"email"`
	Company   string `bson:"company,omitempty" json:"company,omitempty"`
	Role      string `bson:"role,omitempty" json:"role,omitempty"`
	AvatarURL string `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	APIKey    string `bson:"api_key,omitempty" json:"api_key,omitempty"`
	IsActive  bool   `bson:"is_active" json:"is_active"`
}

// Workspace groups rooms under one owner. Member ids are ordered and may
// contain duplicates; ownership references are soft (no integrity checks).
type Workspace struct {
	Name          string   `bson:"name" json:"name"`
	OwnerUserID   string   `bson:"owner_user_id" json:"owner_user_id"`
	MemberUserIDs []string `bson:"member_user_ids" json:"member_user_ids"`
	Description   string   `bson:"description,omitempty" json:"description,omitempty"`
}

// Room is a meeting place inside a workspace.
type Room struct {
	WorkspaceID string `bson:"workspace_id" json:"workspace_id"`
	Name        string `bson:"name" json:"name"`
	Type        string `bson:"type" json:"type"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// Meeting is a scheduled session in a room.
type Meeting struct {
	RoomID             string    `bson:"room_id" json:"room_id"`
	Title              string    `bson:"title" json:"title"`
	ScheduledAt        time.Time `bson:"scheduled_at" json:"scheduled_at"`
	DurationMinutes    int       `bson:"duration_minutes" json:"duration_minutes"`
	HostUserID         string    `bson:"host_user_id" json:"host_user_id"`
	ParticipantUserIDs []string  `bson:"participant_user_ids" json:"participant_user_ids"`
	Status             string    `bson:"status" json:"status"`
	RecordingURL       string    `bson:"recording_url,omitempty" json:"recording_url,omitempty"`
}

// Note is free-form text attached to a meeting.
type Note struct {
	MeetingID    string `bson:"meeting_id" json:"meeting_id"`
	AuthorUserID string `bson:"author_user_id" json:"author_user_id"`
	Content      string `bson:"content" json:"content"`
}

// Task is a to-do raised in a meeting. Status is only ever changed through
// the task status update operation.
type Task struct {
	MeetingID      string     `bson:"meeting_id" json:"meeting_id"`
	Title          string     `bson:"title" json:"title"`
	AssigneeUserID string     `bson:"assignee_user_id,omitempty" json:"assignee_user_id,omitempty"`
	DueDate        *time.Time `bson:"due_date,omitempty" json:"due_date,omitempty"`
	Status         string     `bson:"status" json:"status"`
}

// FileAsset is a file reference attached to a meeting. The platform stores
// the URL only; no endpoint creates or queries these yet.
type FileAsset struct {
	MeetingID        string `bson:"meeting_id" json:"meeting_id"`
	UploadedByUserID string `bson:"uploaded_by_user_id" json:"uploaded_by_user_id"`
	Name             string `bson:"name" json:"name"`
	URL              string `bson:"url" json:"url"`
	Type             string `bson:"type,omitempty" json:"type,omitempty"`
}
