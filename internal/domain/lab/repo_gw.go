package lab

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hms/hms/internal/gateway"
)

const entityName = "lab_orders"

const snapshotPage = 200

type repoGW struct {
	gw *gateway.Client
}

func NewRepo(gw *gateway.Client) Repository {
	return &repoGW{gw: gw}
}

func (r *repoGW) List(ctx context.Context, limit, offset int) ([]*LabOrder, int, error) {
	res, err := r.gw.List(ctx, entityName, nil, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	orders, err := decodeOrders(res.Items)
	if err != nil {
		return nil, 0, err
	}
	return orders, res.Total, nil
}

func (r *repoGW) All(ctx context.Context) ([]*LabOrder, error) {
	var all []*LabOrder
	for offset := 0; ; offset += snapshotPage {
		res, err := r.gw.List(ctx, entityName, nil, snapshotPage, offset)
		if err != nil {
			return nil, err
		}
		orders, err := decodeOrders(res.Items)
		if err != nil {
			return nil, err
		}
		all = append(all, orders...)
		if len(orders) < snapshotPage || len(all) >= res.Total {
			return all, nil
		}
	}
}

func (r *repoGW) GetByID(ctx context.Context, id string) (*LabOrder, error) {
	raw, err := r.gw.Get(ctx, entityName, id)
	if err != nil {
		return nil, err
	}
	return decodeOrder(raw)
}

func (r *repoGW) Create(ctx context.Context, o *LabOrder) (*LabOrder, error) {
	raw, err := r.gw.Create(ctx, entityName, o)
	if err != nil {
		return nil, err
	}
	return decodeOrder(raw)
}

func (r *repoGW) Update(ctx context.Context, o *LabOrder) (*LabOrder, error) {
	raw, err := r.gw.Update(ctx, entityName, o.ID, o)
	if err != nil {
		return nil, err
	}
	return decodeOrder(raw)
}

func (r *repoGW) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, entityName, id)
}

func decodeOrder(raw json.RawMessage) (*LabOrder, error) {
	var o LabOrder
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("decode lab order: %w", err)
	}
	return &o, nil
}

func decodeOrders(items []json.RawMessage) ([]*LabOrder, error) {
	orders := make([]*LabOrder, 0, len(items))
	for _, raw := range items {
		o, err := decodeOrder(raw)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
