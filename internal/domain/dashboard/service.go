// Package dashboard composes every module's stats block into the landing
// dashboard. It holds no state and caches nothing: every call re-derives from
// fresh Gateway snapshots.
package dashboard

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/catalog"
	"github.com/hms/hms/internal/domain/inventory"
	"github.com/hms/hms/internal/domain/lab"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/domain/pharmacy"
	"github.com/hms/hms/internal/domain/scheduling"
	"github.com/hms/hms/internal/domain/staff"
	"github.com/hms/hms/internal/domain/surgery"
	"github.com/hms/hms/internal/domain/ward"
)

// Providers are the narrow slices of each module the dashboard reads.
type (
	PatientStats interface {
		Stats(ctx context.Context) (patient.Stats, error)
	}
	AppointmentStats interface {
		Stats(ctx context.Context) (scheduling.Stats, error)
	}
	BedStats interface {
		Stats(ctx context.Context) (ward.Stats, error)
	}
	BillingStats interface {
		Stats(ctx context.Context) (billing.Stats, error)
	}
	SurgeryStats interface {
		Stats(ctx context.Context) (surgery.Stats, error)
	}
	StaffStats interface {
		EmployeeStats(ctx context.Context) (staff.EmployeeStats, error)
		DepartmentStats(ctx context.Context) (staff.DepartmentStats, error)
	}
	InventoryStats interface {
		Stats(ctx context.Context) (inventory.Stats, error)
	}
	CatalogStats interface {
		Stats(ctx context.Context) (catalog.Stats, error)
	}
	LabStats interface {
		Stats(ctx context.Context) (lab.Stats, error)
	}
	PharmacyStats interface {
		Stats(ctx context.Context) (pharmacy.Stats, error)
	}
)

// Overview is the full dashboard payload.
type Overview struct {
	Patients     patient.Stats         `json:"patients"`
	Appointments scheduling.Stats      `json:"appointments"`
	Beds         ward.Stats            `json:"beds"`
	Billing      billing.Stats         `json:"billing"`
	Surgeries    surgery.Stats         `json:"surgeries"`
	Employees    staff.EmployeeStats   `json:"employees"`
	Departments  staff.DepartmentStats `json:"departments"`
	Inventory    inventory.Stats       `json:"inventory"`
	Services     catalog.Stats         `json:"services"`
	Lab          lab.Stats             `json:"lab"`
	Pharmacy     pharmacy.Stats        `json:"pharmacy"`
}

type Service struct {
	patients     PatientStats
	appointments AppointmentStats
	beds         BedStats
	billing      BillingStats
	surgeries    SurgeryStats
	staff        StaffStats
	inventory    InventoryStats
	catalog      CatalogStats
	lab          LabStats
	pharmacy     PharmacyStats
	logger       zerolog.Logger
}

func NewService(
	patients PatientStats,
	appointments AppointmentStats,
	beds BedStats,
	billingStats BillingStats,
	surgeries SurgeryStats,
	staffStats StaffStats,
	inventoryStats InventoryStats,
	catalogStats CatalogStats,
	labStats LabStats,
	pharmacyStats PharmacyStats,
	logger zerolog.Logger,
) *Service {
	return &Service{
		patients:     patients,
		appointments: appointments,
		beds:         beds,
		billing:      billingStats,
		surgeries:    surgeries,
		staff:        staffStats,
		inventory:    inventoryStats,
		catalog:      catalogStats,
		lab:          labStats,
		pharmacy:     pharmacyStats,
		logger:       logger,
	}
}

// Overview gathers every block. The first upstream failure aborts the call;
// partial dashboards would silently under-report.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	var (
		o   Overview
		err error
	)
	if o.Patients, err = s.patients.Stats(ctx); err != nil {
		return Overview{}, err
	}
	if o.Appointments, err = s.appointments.Stats(ctx); err != nil {
		return Overview{}, err
	}
	if o.Beds, err = s.beds.Stats(ctx); err != nil {
		return Overview{}, err
	}
	if o.Billing, err = s.billing.Stats(ctx); err != nil {
		return Overview{}, err
	}
	if o.Surgeries, err = s.surgeries.Stats(ctx); err != nil {
		return Overview{}, err
	}
	if o.Employees, err = s.staff.EmployeeStats(ctx); err != nil {
		return Overview{}, err
	}
	if o.Departments, err = s.staff.DepartmentStats(ctx); err != nil {
		return Overview{}, err
	}
	if o.Inventory, err = s.inventory.Stats(ctx); err != nil {
		return Overview{}, err
	}
	if o.Services, err = s.catalog.Stats(ctx); err != nil {
		return Overview{}, err
	}
	if o.Lab, err = s.lab.Stats(ctx); err != nil {
		return Overview{}, err
	}
	if o.Pharmacy, err = s.pharmacy.Stats(ctx); err != nil {
		return Overview{}, err
	}
	return o, nil
}
