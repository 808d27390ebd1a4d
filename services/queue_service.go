package services

import (
	"errors"
	"strings"
	"time"

	"barberq-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when an entry, salon or barber does not exist.
// Callers render it as a terminal "not found" state, never as a fatal error.
var ErrNotFound = errors.New("not found")

// ValidationError aborts a mutation before anything is written.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// Store owns the persisted dataset. Every read loads the full document; the
// original kept this state in an ambient global, here it is explicit and
// injectable so the read-modify-write model is visible and testable.
type Store interface {
	LoadDataset() (*Dataset, error)
	AppendEntry(entry *models.QueueEntry) error
	UpdateEntryStatus(entryID uuid.UUID, status models.QueueStatus) (int64, error)
	ClearHistory(salonID uuid.UUID) (int64, error)
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) LoadDataset() (*Dataset, error) {
	ds := &Dataset{}
	if err := s.db.Find(&ds.Salons).Error; err != nil {
		return nil, err
	}
	if err := s.db.Find(&ds.Services).Error; err != nil {
		return nil, err
	}
	if err := s.db.Order("created_at asc").Find(&ds.Barbers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Find(&ds.Chairs).Error; err != nil {
		return nil, err
	}
	// insertion order; id is only a deterministic tiebreak
	if err := s.db.Order("created_at asc, id asc").Find(&ds.Queue).Error; err != nil {
		return nil, err
	}
	if err := s.db.Find(&ds.Users).Error; err != nil {
		return nil, err
	}
	return ds, nil
}

func (s *GormStore) AppendEntry(entry *models.QueueEntry) error {
	return s.db.Create(entry).Error
}

func (s *GormStore) UpdateEntryStatus(entryID uuid.UUID, status models.QueueStatus) (int64, error) {
	res := s.db.Model(&models.QueueEntry{}).Where("id = ?", entryID).Update("status", status)
	return res.RowsAffected, res.Error
}

func (s *GormStore) ClearHistory(salonID uuid.UUID) (int64, error) {
	res := s.db.Where("salon_id = ? AND status IN ?", salonID,
		[]models.QueueStatus{models.StatusCompleted, models.StatusCancelled}).
		Delete(&models.QueueEntry{})
	return res.RowsAffected, res.Error
}

// BarberAuto requests automatic assignment to the least-loaded barber.
const BarberAuto = "auto"

type BookingInput struct {
	SalonID      uuid.UUID
	ClientName   string
	ClientPhone  string
	BarberChoice string // BarberAuto or a barber id
	ServiceIDs   []uuid.UUID
}

type TrackResult struct {
	Entry  models.QueueEntry
	Barber *models.Barber

	// Active is false for COMPLETED/CANCELLED entries; Position and
	// EstimatedWaitMinutes are then not applicable.
	Active               bool
	Position             int // 1-based rank in the barber's active sub-queue
	EstimatedWaitMinutes int
}

// QueueService implements booking, tracking and staff queue operations on
// top of an injected store.
type QueueService struct {
	store Store
}

func NewQueueService(store Store) *QueueService {
	return &QueueService{store: store}
}

// Snapshot exposes the current dataset for read-only derived views.
func (s *QueueService) Snapshot() (*Dataset, error) {
	return s.store.LoadDataset()
}

// SubmitBooking resolves the barber assignment, creates the queue entry and
// persists it. The entry starts WAITING. Validation failures happen before
// any write.
func (s *QueueService) SubmitBooking(input BookingInput) (*models.QueueEntry, error) {
	name := strings.TrimSpace(input.ClientName)
	phone := strings.TrimSpace(input.ClientPhone)
	if name == "" {
		return nil, &ValidationError{Reason: "Client name is required"}
	}
	if phone == "" {
		return nil, &ValidationError{Reason: "Client phone is required"}
	}
	if len(input.ServiceIDs) == 0 {
		return nil, &ValidationError{Reason: "Select at least one service"}
	}

	ds, err := s.store.LoadDataset()
	if err != nil {
		return nil, err
	}
	if ds.SalonByID(input.SalonID) == nil {
		return nil, ErrNotFound
	}

	barberID, err := s.resolveBarber(input.SalonID, input.BarberChoice, ds)
	if err != nil {
		return nil, err
	}

	entry := &models.QueueEntry{
		ID:          uuid.New(),
		SalonID:     input.SalonID,
		ClientID:    uuid.New(),
		ClientName:  name,
		ClientPhone: phone,
		BarberID:    barberID,
		ServiceIDs:  models.UUIDList(input.ServiceIDs),
		Status:      models.StatusWaiting,
		Position:    creationPosition(input.SalonID, barberID, ds),
		CreatedAt:   time.Now(),
	}

	if err := s.store.AppendEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *QueueService) resolveBarber(salonID uuid.UUID, choice string, ds *Dataset) (uuid.UUID, error) {
	if choice == BarberAuto {
		barberID := PickBarber(salonID, ds)
		if barberID == uuid.Nil {
			return uuid.Nil, &ValidationError{Reason: "No barbers available for this salon"}
		}
		return barberID, nil
	}

	barberID, err := uuid.Parse(choice)
	if err != nil {
		return uuid.Nil, &ValidationError{Reason: "Invalid barber id"}
	}
	barber := ds.BarberByID(barberID)
	if barber == nil || barber.SalonID != salonID {
		return uuid.Nil, &ValidationError{Reason: "Barber does not belong to this salon"}
	}
	return barberID, nil
}

// creationPosition counts existing non-COMPLETED entries for the
// (salon, barber) pair, plus one. Stored on the entry as advisory metadata;
// it goes stale as soon as other entries change status.
func creationPosition(salonID, barberID uuid.UUID, ds *Dataset) int {
	count := 0
	for _, e := range ds.Queue {
		if e.SalonID == salonID && e.BarberID == barberID && e.Status != models.StatusCompleted {
			count++
		}
	}
	return count + 1
}

// TrackEntry derives a client's live position and wait estimate from the
// current dataset. Safe to call repeatedly; clients poll it.
func (s *QueueService) TrackEntry(entryID uuid.UUID) (*TrackResult, error) {
	ds, err := s.store.LoadDataset()
	if err != nil {
		return nil, err
	}

	entry := ds.EntryByID(entryID)
	if entry == nil {
		return nil, ErrNotFound
	}

	result := &TrackResult{
		Entry:  *entry,
		Barber: ds.BarberByID(entry.BarberID),
	}

	if !entry.Status.Active() {
		return result, nil
	}

	active := ActiveQueueFor(entry.BarberID, ds)
	for i := range active {
		if active[i].ID == entry.ID {
			result.Active = true
			result.Position = i + 1
			break
		}
		result.EstimatedWaitMinutes += ds.EntryMinutes(&active[i])
	}
	return result, nil
}

// SetStatus overwrites an entry's status unconditionally; any status may
// follow any other. The change is persisted immediately and picked up by the
// next TrackEntry poll.
func (s *QueueService) SetStatus(entryID uuid.UUID, status models.QueueStatus) error {
	if !status.Valid() {
		return &ValidationError{Reason: "Invalid queue status"}
	}
	rows, err := s.store.UpdateEntryStatus(entryID, status)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// EstimateWait returns the booking-form estimate: the chosen barber's load,
// or for an auto booking the minimum load across the salon's barbers (zero
// when the salon has none).
func (s *QueueService) EstimateWait(salonID uuid.UUID, barberChoice string) (int, error) {
	ds, err := s.store.LoadDataset()
	if err != nil {
		return 0, err
	}
	if ds.SalonByID(salonID) == nil {
		return 0, ErrNotFound
	}

	if barberChoice == BarberAuto || barberChoice == "" {
		barberID := PickBarber(salonID, ds)
		if barberID == uuid.Nil {
			return 0, nil
		}
		return EstimateLoad(barberID, salonID, ds), nil
	}

	barberID, err := uuid.Parse(barberChoice)
	if err != nil {
		return 0, &ValidationError{Reason: "Invalid barber id"}
	}
	barber := ds.BarberByID(barberID)
	if barber == nil || barber.SalonID != salonID {
		return 0, &ValidationError{Reason: "Barber does not belong to this salon"}
	}
	return EstimateLoad(barberID, salonID, ds), nil
}

// ClearHistory removes COMPLETED and CANCELLED entries for a salon. Active
// entries are untouched.
func (s *QueueService) ClearHistory(salonID uuid.UUID) (int64, error) {
	return s.store.ClearHistory(salonID)
}
