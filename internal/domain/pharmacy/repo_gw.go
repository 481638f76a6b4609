package pharmacy

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hms/hms/internal/gateway"
)

const entityName = "prescriptions"

const snapshotPage = 200

type repoGW struct {
	gw *gateway.Client
}

func NewRepo(gw *gateway.Client) Repository {
	return &repoGW{gw: gw}
}

func (r *repoGW) List(ctx context.Context, limit, offset int) ([]*Prescription, int, error) {
	res, err := r.gw.List(ctx, entityName, nil, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	prescriptions, err := decodePrescriptions(res.Items)
	if err != nil {
		return nil, 0, err
	}
	return prescriptions, res.Total, nil
}

func (r *repoGW) All(ctx context.Context) ([]*Prescription, error) {
	var all []*Prescription
	for offset := 0; ; offset += snapshotPage {
		res, err := r.gw.List(ctx, entityName, nil, snapshotPage, offset)
		if err != nil {
			return nil, err
		}
		prescriptions, err := decodePrescriptions(res.Items)
		if err != nil {
			return nil, err
		}
		all = append(all, prescriptions...)
		if len(prescriptions) < snapshotPage || len(all) >= res.Total {
			return all, nil
		}
	}
}

func (r *repoGW) GetByID(ctx context.Context, id string) (*Prescription, error) {
	raw, err := r.gw.Get(ctx, entityName, id)
	if err != nil {
		return nil, err
	}
	return decodePrescription(raw)
}

func (r *repoGW) Create(ctx context.Context, p *Prescription) (*Prescription, error) {
	raw, err := r.gw.Create(ctx, entityName, p)
	if err != nil {
		return nil, err
	}
	return decodePrescription(raw)
}

func (r *repoGW) Update(ctx context.Context, p *Prescription) (*Prescription, error) {
	raw, err := r.gw.Update(ctx, entityName, p.ID, p)
	if err != nil {
		return nil, err
	}
	return decodePrescription(raw)
}

func (r *repoGW) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, entityName, id)
}

func decodePrescription(raw json.RawMessage) (*Prescription, error) {
	var p Prescription
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode prescription: %w", err)
	}
	return &p, nil
}

func decodePrescriptions(items []json.RawMessage) ([]*Prescription, error) {
	prescriptions := make([]*Prescription, 0, len(items))
	for _, raw := range items {
		p, err := decodePrescription(raw)
		if err != nil {
			return nil, err
		}
		prescriptions = append(prescriptions, p)
	}
	return prescriptions, nil
}
