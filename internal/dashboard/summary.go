// Package dashboard derives the workspace summary from the document store.
package dashboard

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/qikoffice-dev/qikoffice-api/internal/store"
	"github.com/qikoffice-dev/qikoffice-api/pkg/schema"
)

// Summary is the aggregate view of one workspace.
type Summary struct {
	Rooms          int     `json:"rooms"`
	Meetings       int     `json:"meetings"`
	Tasks          int     `json:"tasks"`
	TasksDone      int     `json:"tasks_done"`
	CompletionRate float64 `json:"completion_rate"`
}

// Compute chains three filtered queries: rooms of the workspace, meetings
// in those rooms, tasks of those meetings. An empty intermediate id set
// short-circuits the dependent query to an empty result. The three reads
// are not snapshot-isolated; concurrent writes between them can shift the
// counts.
func Compute(ctx context.Context, st store.Store, workspaceID string) (Summary, error) {
	var sum Summary

	rooms, err := st.Find(ctx, schema.CollectionRoom, store.Filter{"workspace_id": workspaceID})
	if err != nil {
		return sum, err
	}
	sum.Rooms = len(rooms)

	var meetings []store.Record
	if roomIDs := recordIDs(rooms); len(roomIDs) > 0 {
		meetings, err = st.Find(ctx, schema.CollectionMeeting, store.Filter{"room_id": roomIDs})
		if err != nil {
			return sum, err
		}
	}
	sum.Meetings = len(meetings)

	var tasks []store.Record
	if meetingIDs := recordIDs(meetings); len(meetingIDs) > 0 {
		tasks, err = st.Find(ctx, schema.CollectionTask, store.Filter{"meeting_id": meetingIDs})
		if err != nil {
			return sum, err
		}
	}
	sum.Tasks = len(tasks)

	for _, task := range tasks {
		if status, _ := task["status"].(string); status == schema.TaskStatusDone {
			sum.TasksDone++
		}
	}
	if sum.Tasks > 0 {
		sum.CompletionRate = float64(sum.TasksDone) / float64(sum.Tasks)
	}
	return sum, nil
}

// recordIDs collects the hex identifiers of the given records.
func recordIDs(recs []store.Record) []string {
	ids := make([]string, 0, len(recs))
	for _, rec := range recs {
		if oid, ok := rec["_id"].(primitive.ObjectID); ok {
			ids = append(ids, oid.Hex())
		}
	}
	return ids
}
