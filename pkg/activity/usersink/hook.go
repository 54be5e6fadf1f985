package usersink

import (
	"context"

	"github.com/goliatone/go-users/pkg/types"
	"github.com/google/uuid"

	"github.com/humbl-club/dashlayout/pkg/activity"
)

// Sink is the slice of go-users' activity logger the hook needs.
type Sink interface {
	Log(ctx context.Context, record types.ActivityRecord) error
}

// Hook maps dashboard activity events into go-users activity records so
// layout edits show up in the user's activity trail.
type Hook struct {
	Sink Sink
}

// Notify implements activity.Hook. Events without a verb or a sink are
// silently dropped.
func (h Hook) Notify(ctx context.Context, evt activity.Event) error {
	if h.Sink == nil {
		return nil
	}
	evt = activity.NormalizeEvent(evt)
	if evt.Verb == "" {
		return nil
	}

	record := types.ActivityRecord{
		Verb:       evt.Verb,
		ObjectType: evt.ObjectType,
		ObjectID:   evt.ObjectID,
		Channel:    evt.Channel,
		OccurredAt: evt.OccurredAt,
	}
	if id, err := uuid.Parse(evt.ActorID); err == nil {
		record.ActorID = id
	}
	if id, err := uuid.Parse(evt.UserID); err == nil {
		record.UserID = id
	}
	if id, err := uuid.Parse(evt.TenantID); err == nil {
		record.TenantID = id
	}

	data := make(map[string]any, len(evt.Metadata)+2)
	for k, v := range evt.Metadata {
		data[k] = v
	}
	if evt.DefinitionCode != "" {
		data["definition_code"] = evt.DefinitionCode
	}
	if len(evt.Recipients) > 0 {
		data["recipients"] = evt.Recipients
	}
	if len(data) > 0 {
		record.Data = data
	}

	return h.Sink.Log(ctx, record)
}
