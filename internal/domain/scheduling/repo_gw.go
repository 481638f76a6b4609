package scheduling

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hms/hms/internal/gateway"
)

const entityName = "appointments"

const snapshotPage = 200

type repoGW struct {
	gw *gateway.Client
}

func NewRepo(gw *gateway.Client) Repository {
	return &repoGW{gw: gw}
}

func (r *repoGW) List(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	res, err := r.gw.List(ctx, entityName, nil, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	appts, err := decodeAppointments(res.Items)
	if err != nil {
		return nil, 0, err
	}
	return appts, res.Total, nil
}

func (r *repoGW) All(ctx context.Context) ([]*Appointment, error) {
	var all []*Appointment
	for offset := 0; ; offset += snapshotPage {
		res, err := r.gw.List(ctx, entityName, nil, snapshotPage, offset)
		if err != nil {
			return nil, err
		}
		appts, err := decodeAppointments(res.Items)
		if err != nil {
			return nil, err
		}
		all = append(all, appts...)
		if len(appts) < snapshotPage || len(all) >= res.Total {
			return all, nil
		}
	}
}

func (r *repoGW) GetByID(ctx context.Context, id string) (*Appointment, error) {
	raw, err := r.gw.Get(ctx, entityName, id)
	if err != nil {
		return nil, err
	}
	return decodeAppointment(raw)
}

func (r *repoGW) Create(ctx context.Context, a *Appointment) (*Appointment, error) {
	raw, err := r.gw.Create(ctx, entityName, a)
	if err != nil {
		return nil, err
	}
	return decodeAppointment(raw)
}

func (r *repoGW) Update(ctx context.Context, a *Appointment) (*Appointment, error) {
	raw, err := r.gw.Update(ctx, entityName, a.ID, a)
	if err != nil {
		return nil, err
	}
	return decodeAppointment(raw)
}

func (r *repoGW) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, entityName, id)
}

func decodeAppointment(raw json.RawMessage) (*Appointment, error) {
	var a Appointment
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode appointment: %w", err)
	}
	return &a, nil
}

func decodeAppointments(items []json.RawMessage) ([]*Appointment, error) {
	appts := make([]*Appointment, 0, len(items))
	for _, raw := range items {
		a, err := decodeAppointment(raw)
		if err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, nil
}
