package patient

import "context"

// Repository reads and writes patient and medical-record entities.
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
	All(ctx context.Context) ([]*Patient, error)
	GetByID(ctx context.Context, id string) (*Patient, error)
	Create(ctx context.Context, p *Patient) (*Patient, error)
	Update(ctx context.Context, p *Patient) (*Patient, error)
	Delete(ctx context.Context, id string) error

	ListRecords(ctx context.Context, patientID string, limit, offset int) ([]*MedicalRecord, int, error)
	CreateRecord(ctx context.Context, r *MedicalRecord) (*MedicalRecord, error)
	DeleteRecord(ctx context.Context, id string) error
}
