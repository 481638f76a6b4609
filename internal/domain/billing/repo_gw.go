package billing

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hms/hms/internal/gateway"
)

const entityName = "bills"

// snapshotPage is the page size used when pulling a full snapshot for stats.
const snapshotPage = 200

type repoGW struct {
	gw *gateway.Client
}

func NewRepo(gw *gateway.Client) Repository {
	return &repoGW{gw: gw}
}

func (r *repoGW) List(ctx context.Context, limit, offset int) ([]*Bill, int, error) {
	res, err := r.gw.List(ctx, entityName, nil, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	bills, err := decodeBills(res.Items)
	if err != nil {
		return nil, 0, err
	}
	return bills, res.Total, nil
}

func (r *repoGW) All(ctx context.Context) ([]*Bill, error) {
	var all []*Bill
	for offset := 0; ; offset += snapshotPage {
		res, err := r.gw.List(ctx, entityName, nil, snapshotPage, offset)
		if err != nil {
			return nil, err
		}
		bills, err := decodeBills(res.Items)
		if err != nil {
			return nil, err
		}
		all = append(all, bills...)
		if len(bills) < snapshotPage || len(all) >= res.Total {
			return all, nil
		}
	}
}

func (r *repoGW) GetByID(ctx context.Context, id string) (*Bill, error) {
	raw, err := r.gw.Get(ctx, entityName, id)
	if err != nil {
		return nil, err
	}
	return decodeBill(raw)
}

func (r *repoGW) Create(ctx context.Context, b *Bill) (*Bill, error) {
	raw, err := r.gw.Create(ctx, entityName, b)
	if err != nil {
		return nil, err
	}
	return decodeBill(raw)
}

func (r *repoGW) Update(ctx context.Context, b *Bill) (*Bill, error) {
	raw, err := r.gw.Update(ctx, entityName, b.ID, b)
	if err != nil {
		return nil, err
	}
	return decodeBill(raw)
}

func (r *repoGW) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, entityName, id)
}

func decodeBill(raw json.RawMessage) (*Bill, error) {
	var b Bill
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("decode bill: %w", err)
	}
	return &b, nil
}

func decodeBills(items []json.RawMessage) ([]*Bill, error) {
	bills := make([]*Bill, 0, len(items))
	for _, raw := range items {
		b, err := decodeBill(raw)
		if err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	return bills, nil
}
