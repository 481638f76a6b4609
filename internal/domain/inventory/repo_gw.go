package inventory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hms/hms/internal/gateway"
)

const entityName = "inventory_items"

const snapshotPage = 200

type repoGW struct {
	gw *gateway.Client
}

func NewRepo(gw *gateway.Client) Repository {
	return &repoGW{gw: gw}
}

func (r *repoGW) List(ctx context.Context, limit, offset int) ([]*Item, int, error) {
	res, err := r.gw.List(ctx, entityName, nil, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	items, err := decodeItems(res.Items)
	if err != nil {
		return nil, 0, err
	}
	return items, res.Total, nil
}

func (r *repoGW) All(ctx context.Context) ([]*Item, error) {
	var all []*Item
	for offset := 0; ; offset += snapshotPage {
		res, err := r.gw.List(ctx, entityName, nil, snapshotPage, offset)
		if err != nil {
			return nil, err
		}
		items, err := decodeItems(res.Items)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if len(items) < snapshotPage || len(all) >= res.Total {
			return all, nil
		}
	}
}

func (r *repoGW) GetByID(ctx context.Context, id string) (*Item, error) {
	raw, err := r.gw.Get(ctx, entityName, id)
	if err != nil {
		return nil, err
	}
	return decodeItem(raw)
}

func (r *repoGW) Create(ctx context.Context, i *Item) (*Item, error) {
	raw, err := r.gw.Create(ctx, entityName, i)
	if err != nil {
		return nil, err
	}
	return decodeItem(raw)
}

func (r *repoGW) Update(ctx context.Context, i *Item) (*Item, error) {
	raw, err := r.gw.Update(ctx, entityName, i.ID, i)
	if err != nil {
		return nil, err
	}
	return decodeItem(raw)
}

func (r *repoGW) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, entityName, id)
}

func decodeItem(raw json.RawMessage) (*Item, error) {
	var i Item
	if err := json.Unmarshal(raw, &i); err != nil {
		return nil, fmt.Errorf("decode inventory item: %w", err)
	}
	return &i, nil
}

func decodeItems(raws []json.RawMessage) ([]*Item, error) {
	items := make([]*Item, 0, len(raws))
	for _, raw := range raws {
		i, err := decodeItem(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, nil
}
