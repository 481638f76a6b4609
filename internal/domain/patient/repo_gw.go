package patient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/hms/hms/internal/gateway"
)

const (
	entityName  = "patients"
	recordsName = "medical_records"
)

const snapshotPage = 200

type repoGW struct {
	gw *gateway.Client
}

func NewRepo(gw *gateway.Client) Repository {
	return &repoGW{gw: gw}
}

func (r *repoGW) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	res, err := r.gw.List(ctx, entityName, nil, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	patients, err := decodePatients(res.Items)
	if err != nil {
		return nil, 0, err
	}
	return patients, res.Total, nil
}

func (r *repoGW) All(ctx context.Context) ([]*Patient, error) {
	var all []*Patient
	for offset := 0; ; offset += snapshotPage {
		res, err := r.gw.List(ctx, entityName, nil, snapshotPage, offset)
		if err != nil {
			return nil, err
		}
		patients, err := decodePatients(res.Items)
		if err != nil {
			return nil, err
		}
		all = append(all, patients...)
		if len(patients) < snapshotPage || len(all) >= res.Total {
			return all, nil
		}
	}
}

func (r *repoGW) GetByID(ctx context.Context, id string) (*Patient, error) {
	raw, err := r.gw.Get(ctx, entityName, id)
	if err != nil {
		return nil, err
	}
	return decodePatient(raw)
}

func (r *repoGW) Create(ctx context.Context, p *Patient) (*Patient, error) {
	raw, err := r.gw.Create(ctx, entityName, p)
	if err != nil {
		return nil, err
	}
	return decodePatient(raw)
}

func (r *repoGW) Update(ctx context.Context, p *Patient) (*Patient, error) {
	raw, err := r.gw.Update(ctx, entityName, p.ID, p)
	if err != nil {
		return nil, err
	}
	return decodePatient(raw)
}

func (r *repoGW) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, entityName, id)
}

func (r *repoGW) ListRecords(ctx context.Context, patientID string, limit, offset int) ([]*MedicalRecord, int, error) {
	filter := url.Values{"patient_id": {patientID}}
	res, err := r.gw.List(ctx, recordsName, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	records := make([]*MedicalRecord, 0, len(res.Items))
	for _, raw := range res.Items {
		var rec MedicalRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, 0, fmt.Errorf("decode medical record: %w", err)
		}
		records = append(records, &rec)
	}
	return records, res.Total, nil
}

func (r *repoGW) CreateRecord(ctx context.Context, rec *MedicalRecord) (*MedicalRecord, error) {
	raw, err := r.gw.Create(ctx, recordsName, rec)
	if err != nil {
		return nil, err
	}
	var created MedicalRecord
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("decode medical record: %w", err)
	}
	return &created, nil
}

func (r *repoGW) DeleteRecord(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, recordsName, id)
}

func decodePatient(raw json.RawMessage) (*Patient, error) {
	var p Patient
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode patient: %w", err)
	}
	return &p, nil
}

func decodePatients(items []json.RawMessage) ([]*Patient, error) {
	patients := make([]*Patient, 0, len(items))
	for _, raw := range items {
		p, err := decodePatient(raw)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, nil
}
