package ward

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hms/hms/internal/gateway"
)

const entityName = "beds"

const snapshotPage = 200

type repoGW struct {
	gw *gateway.Client
}

func NewRepo(gw *gateway.Client) Repository {
	return &repoGW{gw: gw}
}

func (r *repoGW) List(ctx context.Context, limit, offset int) ([]*Bed, int, error) {
	res, err := r.gw.List(ctx, entityName, nil, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	beds, err := decodeBeds(res.Items)
	if err != nil {
		return nil, 0, err
	}
	return beds, res.Total, nil
}

func (r *repoGW) All(ctx context.Context) ([]*Bed, error) {
	var all []*Bed
	for offset := 0; ; offset += snapshotPage {
		res, err := r.gw.List(ctx, entityName, nil, snapshotPage, offset)
		if err != nil {
			return nil, err
		}
		beds, err := decodeBeds(res.Items)
		if err != nil {
			return nil, err
		}
		all = append(all, beds...)
		if len(beds) < snapshotPage || len(all) >= res.Total {
			return all, nil
		}
	}
}

func (r *repoGW) GetByID(ctx context.Context, id string) (*Bed, error) {
	raw, err := r.gw.Get(ctx, entityName, id)
	if err != nil {
		return nil, err
	}
	return decodeBed(raw)
}

func (r *repoGW) Create(ctx context.Context, b *Bed) (*Bed, error) {
	raw, err := r.gw.Create(ctx, entityName, b)
	if err != nil {
		return nil, err
	}
	return decodeBed(raw)
}

func (r *repoGW) Update(ctx context.Context, b *Bed) (*Bed, error) {
	raw, err := r.gw.Update(ctx, entityName, b.ID, b)
	if err != nil {
		return nil, err
	}
	return decodeBed(raw)
}

func (r *repoGW) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, entityName, id)
}

func decodeBed(raw json.RawMessage) (*Bed, error) {
	var b Bed
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("decode bed: %w", err)
	}
	return &b, nil
}

func decodeBeds(items []json.RawMessage) ([]*Bed, error) {
	beds := make([]*Bed, 0, len(items))
	for _, raw := range items {
		b, err := decodeBed(raw)
		if err != nil {
			return nil, err
		}
		beds = append(beds, b)
	}
	return beds, nil
}
