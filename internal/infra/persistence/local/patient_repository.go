package local

import (
	"context"
	"log/slog"
	"sync"

	"outreach/internal/domain/entity"
	"outreach/internal/domain/repository"
	"outreach/internal/infra/persistence/blobstore"
)

type patientRepository struct {
	mu       sync.Mutex
	patients []entity.PatientRecord
	store    *blobstore.RecordStore
	logger   *slog.Logger
}

// NewPatientRepository loads the patients slot and returns the authoritative
// in-memory store for patient records.
func NewPatientRepository(ctx context.Context, store *blobstore.RecordStore, logger *slog.Logger) repository.PatientRepository {
	repo := &patientRepository{
		store:  store,
		logger: logger,
	}
	repo.patients = blobstore.LoadSlice[entity.PatientRecord](ctx, store, blobstore.SlotPatients)
	logger.Info("patients collection loaded", slog.Int("count", len(repo.patients)))

	return repo
}

func (r *patientRepository) All(ctx context.Context) []entity.PatientRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	return clonePatients(r.patients)
}

func (r *patientRepository) FindByID(ctx context.Context, id string) (*entity.PatientRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.patients {
		if r.patients[i].ID == id {
			patient := r.patients[i].Clone()

			return &patient, nil
		}
	}

	return nil, repository.ErrPatientNotFound
}

func (r *patientRepository) FindByWorker(ctx context.Context, workerID string) []entity.PatientRecord {
	return r.filter(func(p *entity.PatientRecord) bool { return p.WorkerID == workerID })
}

func (r *patientRepository) FindByDoctor(ctx context.Context, doctorID string) []entity.PatientRecord {
	return r.filter(func(p *entity.PatientRecord) bool { return p.DoctorID == doctorID })
}

func (r *patientRepository) FindByFacility(ctx context.Context, facilityID string) []entity.PatientRecord {
	return r.filter(func(p *entity.PatientRecord) bool { return p.FacilityID == facilityID })
}

func (r *patientRepository) FindHighRisk(ctx context.Context) []entity.PatientRecord {
	return r.filter(func(p *entity.PatientRecord) bool { return p.HighRisk })
}

func (r *patientRepository) FindByPregnancyStatus(ctx context.Context, status entity.PregnancyStatus) []entity.PatientRecord {
	return r.filter(func(p *entity.PatientRecord) bool { return p.PregnancyStatus == status })
}

// filter is a linear scan preserving collection order, returning clones.
func (r *patientRepository) filter(match func(*entity.PatientRecord) bool) []entity.PatientRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []entity.PatientRecord
	for i := range r.patients {
		if match(&r.patients[i]) {
			matched = append(matched, r.patients[i].Clone())
		}
	}

	return matched
}

func (r *patientRepository) Add(ctx context.Context, patient entity.PatientRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.patients {
		if r.patients[i].ID == patient.ID {
			return repository.ErrDuplicatePatient
		}
	}

	r.patients = append(r.patients, patient.Clone())
	r.writeThrough(ctx)

	return nil
}

func (r *patientRepository) Update(ctx context.Context, patient entity.PatientRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.patients {
		if r.patients[i].ID == patient.ID {
			r.patients[i] = patient.Clone()
			r.writeThrough(ctx)

			return nil
		}
	}

	return repository.ErrPatientNotFound
}

func (r *patientRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.patients {
		if r.patients[i].ID == id {
			r.patients = append(r.patients[:i], r.patients[i+1:]...)
			r.writeThrough(ctx)

			return nil
		}
	}

	return repository.ErrPatientNotFound
}

// Merge reconciles a remote snapshot by identifier, remote-wins. Existing
// records keep their position; remote-only records append in snapshot order.
func (r *patientRepository) Merge(ctx context.Context, snapshot []entity.PatientRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	index := make(map[string]int, len(r.patients))
	for i := range r.patients {
		index[r.patients[i].ID] = i
	}

	for _, remote := range snapshot {
		if i, ok := index[remote.ID]; ok {
			r.patients[i] = remote.Clone()
		} else {
			index[remote.ID] = len(r.patients)
			r.patients = append(r.patients, remote.Clone())
		}
	}

	r.writeThrough(ctx)
}

func (r *patientRepository) Reload(ctx context.Context) {
	loaded := blobstore.LoadSlice[entity.PatientRecord](ctx, r.store, blobstore.SlotPatients)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.patients = loaded
	r.logger.Info("patients collection reloaded from local store", slog.Int("count", len(loaded)))
}

func (r *patientRepository) writeThrough(ctx context.Context) {
	if err := blobstore.SaveSlice(ctx, r.store, blobstore.SlotPatients, r.patients); err != nil {
		r.logger.Warn("patients write-through failed, change is in-memory only", slog.Any("error", err))
	}
}

func clonePatients(patients []entity.PatientRecord) []entity.PatientRecord {
	out := make([]entity.PatientRecord, len(patients))
	for i := range patients {
		out[i] = patients[i].Clone()
	}

	return out
}
