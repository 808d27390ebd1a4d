package services

import (
	"barberq-backend/models"

	"github.com/google/uuid"
)

// Dataset is an in-memory snapshot of the entire persisted document: every
// salon, service, barber, chair, queue entry and user. Queue entries are in
// insertion order and are never re-sorted. It is also the schema of the
// export/import backup document.
type Dataset struct {
	Salons   []models.Salon
	Services []models.Service
	Barbers  []models.Barber
	Chairs   []models.Chair
	Queue    []models.QueueEntry
	Users    []models.User
}

func (d *Dataset) SalonByID(id uuid.UUID) *models.Salon {
	for i := range d.Salons {
		if d.Salons[i].ID == id {
			return &d.Salons[i]
		}
	}
	return nil
}

func (d *Dataset) SalonBySlug(slug string) *models.Salon {
	for i := range d.Salons {
		if d.Salons[i].Slug == slug {
			return &d.Salons[i]
		}
	}
	return nil
}

func (d *Dataset) BarberByID(id uuid.UUID) *models.Barber {
	for i := range d.Barbers {
		if d.Barbers[i].ID == id {
			return &d.Barbers[i]
		}
	}
	return nil
}

func (d *Dataset) EntryByID(id uuid.UUID) *models.QueueEntry {
	for i := range d.Queue {
		if d.Queue[i].ID == id {
			return &d.Queue[i]
		}
	}
	return nil
}

// SalonBarbers returns a salon's barbers in insertion order.
func (d *Dataset) SalonBarbers(salonID uuid.UUID) []models.Barber {
	var barbers []models.Barber
	for _, b := range d.Barbers {
		if b.SalonID == salonID {
			barbers = append(barbers, b)
		}
	}
	return barbers
}

func (d *Dataset) serviceMinutes(id uuid.UUID) int {
	for _, s := range d.Services {
		if s.ID == id {
			return s.Duration
		}
	}
	// unknown service ids contribute nothing
	return 0
}

// EntryMinutes sums the durations of every service the entry requested.
func (d *Dataset) EntryMinutes(e *models.QueueEntry) int {
	total := 0
	for _, sid := range e.ServiceIDs {
		total += d.serviceMinutes(sid)
	}
	return total
}

// EstimateLoad computes a barber's current workload in minutes: the total
// duration of all WAITING and IN_PROGRESS entries assigned to them in the
// given salon. Work already in progress still counts in full.
func EstimateLoad(barberID, salonID uuid.UUID, ds *Dataset) int {
	total := 0
	for i := range ds.Queue {
		e := &ds.Queue[i]
		if e.SalonID != salonID || e.BarberID != barberID || !e.Status.Active() {
			continue
		}
		total += ds.EntryMinutes(e)
	}
	return total
}

// PickBarber selects the least-loaded barber of a salon. Ties resolve to the
// first barber in the salon's list. Returns uuid.Nil when the salon has no
// barbers; callers must treat that as "unassigned", not as an error.
func PickBarber(salonID uuid.UUID, ds *Dataset) uuid.UUID {
	barbers := ds.SalonBarbers(salonID)
	if len(barbers) == 0 {
		return uuid.Nil
	}

	best := barbers[0].ID
	minLoad := EstimateLoad(best, salonID, ds)
	for _, b := range barbers[1:] {
		if load := EstimateLoad(b.ID, salonID, ds); load < minLoad {
			minLoad = load
			best = b.ID
		}
	}
	return best
}

// ActiveQueueFor builds a barber's active sub-queue: all WAITING and
// IN_PROGRESS entries assigned to them, in insertion order.
func ActiveQueueFor(barberID uuid.UUID, ds *Dataset) []models.QueueEntry {
	var active []models.QueueEntry
	for _, e := range ds.Queue {
		if e.BarberID == barberID && e.Status.Active() {
			active = append(active, e)
		}
	}
	return active
}
