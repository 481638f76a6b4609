package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hms/hms/internal/gateway"
)

const entityName = "services"

const snapshotPage = 200

type repoGW struct {
	gw *gateway.Client
}

func NewRepo(gw *gateway.Client) Repository {
	return &repoGW{gw: gw}
}

func (r *repoGW) List(ctx context.Context, limit, offset int) ([]*Service, int, error) {
	res, err := r.gw.List(ctx, entityName, nil, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	services, err := decodeServices(res.Items)
	if err != nil {
		return nil, 0, err
	}
	return services, res.Total, nil
}

func (r *repoGW) All(ctx context.Context) ([]*Service, error) {
	var all []*Service
	for offset := 0; ; offset += snapshotPage {
		res, err := r.gw.List(ctx, entityName, nil, snapshotPage, offset)
		if err != nil {
			return nil, err
		}
		services, err := decodeServices(res.Items)
		if err != nil {
			return nil, err
		}
		all = append(all, services...)
		if len(services) < snapshotPage || len(all) >= res.Total {
			return all, nil
		}
	}
}

func (r *repoGW) GetByID(ctx context.Context, id string) (*Service, error) {
	raw, err := r.gw.Get(ctx, entityName, id)
	if err != nil {
		return nil, err
	}
	return decodeService(raw)
}

func (r *repoGW) Create(ctx context.Context, s *Service) (*Service, error) {
	raw, err := r.gw.Create(ctx, entityName, s)
	if err != nil {
		return nil, err
	}
	return decodeService(raw)
}

func (r *repoGW) Update(ctx context.Context, s *Service) (*Service, error) {
	raw, err := r.gw.Update(ctx, entityName, s.ID, s)
	if err != nil {
		return nil, err
	}
	return decodeService(raw)
}

func (r *repoGW) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, entityName, id)
}

func decodeService(raw json.RawMessage) (*Service, error) {
	var s Service
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode service: %w", err)
	}
	return &s, nil
}

func decodeServices(items []json.RawMessage) ([]*Service, error) {
	services := make([]*Service, 0, len(items))
	for _, raw := range items {
		s, err := decodeService(raw)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, nil
}
