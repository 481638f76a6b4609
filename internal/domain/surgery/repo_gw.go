package surgery

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hms/hms/internal/gateway"
)

const entityName = "ot_schedules"

const snapshotPage = 200

type repoGW struct {
	gw *gateway.Client
}

func NewRepo(gw *gateway.Client) Repository {
	return &repoGW{gw: gw}
}

func (r *repoGW) List(ctx context.Context, limit, offset int) ([]*OTSchedule, int, error) {
	res, err := r.gw.List(ctx, entityName, nil, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	schedules, err := decodeSchedules(res.Items)
	if err != nil {
		return nil, 0, err
	}
	return schedules, res.Total, nil
}

func (r *repoGW) All(ctx context.Context) ([]*OTSchedule, error) {
	var all []*OTSchedule
	for offset := 0; ; offset += snapshotPage {
		res, err := r.gw.List(ctx, entityName, nil, snapshotPage, offset)
		if err != nil {
			return nil, err
		}
		schedules, err := decodeSchedules(res.Items)
		if err != nil {
			return nil, err
		}
		all = append(all, schedules...)
		if len(schedules) < snapshotPage || len(all) >= res.Total {
			return all, nil
		}
	}
}

func (r *repoGW) GetByID(ctx context.Context, id string) (*OTSchedule, error) {
	raw, err := r.gw.Get(ctx, entityName, id)
	if err != nil {
		return nil, err
	}
	return decodeSchedule(raw)
}

func (r *repoGW) Create(ctx context.Context, s *OTSchedule) (*OTSchedule, error) {
	raw, err := r.gw.Create(ctx, entityName, s)
	if err != nil {
		return nil, err
	}
	return decodeSchedule(raw)
}

func (r *repoGW) Update(ctx context.Context, s *OTSchedule) (*OTSchedule, error) {
	raw, err := r.gw.Update(ctx, entityName, s.ID, s)
	if err != nil {
		return nil, err
	}
	return decodeSchedule(raw)
}

func (r *repoGW) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, entityName, id)
}

func decodeSchedule(raw json.RawMessage) (*OTSchedule, error) {
	var s OTSchedule
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode ot schedule: %w", err)
	}
	return &s, nil
}

func decodeSchedules(items []json.RawMessage) ([]*OTSchedule, error) {
	schedules := make([]*OTSchedule, 0, len(items))
	for _, raw := range items {
		s, err := decodeSchedule(raw)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, nil
}
