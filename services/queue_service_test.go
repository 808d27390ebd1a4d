package services

import (
	"testing"
	"time"

	"barberq-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*QueueService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Salon{},
		&models.Chair{},
		&models.Service{},
		&models.Barber{},
		&models.QueueEntry{},
		&models.User{},
	))

	return NewQueueService(NewGormStore(db)), db
}

func seedSalon(t *testing.T, db *gorm.DB, slug string) models.Salon {
	t.Helper()
	salon := models.Salon{Name: slug, Slug: slug}
	require.NoError(t, db.Create(&salon).Error)
	return salon
}

func seedBarber(t *testing.T, db *gorm.DB, salonID uuid.UUID, name string) models.Barber {
	t.Helper()
	barber := models.Barber{SalonID: salonID, Name: name}
	require.NoError(t, db.Create(&barber).Error)
	// keep creation timestamps strictly ordered
	time.Sleep(2 * time.Millisecond)
	return barber
}

func seedSvc(t *testing.T, db *gorm.DB, salonID uuid.UUID, minutes int) models.Service {
	t.Helper()
	service := models.Service{SalonID: salonID, Name: "service", Duration: minutes}
	require.NoError(t, db.Create(&service).Error)
	return service
}

func book(t *testing.T, svc *QueueService, salonID uuid.UUID, choice string, serviceIDs ...uuid.UUID) *models.QueueEntry {
	t.Helper()
	entry, err := svc.SubmitBooking(BookingInput{
		SalonID:      salonID,
		ClientName:   "Client",
		ClientPhone:  "+33612345678",
		BarberChoice: choice,
		ServiceIDs:   serviceIDs,
	})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	return entry
}

func TestSubmitBookingSimpleQueue(t *testing.T) {
	svc, db := newTestService(t)
	salon := seedSalon(t, db, "solo")
	barber := seedBarber(t, db, salon.ID, "B")
	long := seedSvc(t, db, salon.ID, 30)
	short := seedSvc(t, db, salon.ID, 15)

	first := book(t, svc, salon.ID, barber.ID.String(), long.ID)
	assert.Equal(t, models.StatusWaiting, first.Status)
	assert.Equal(t, 1, first.Position)

	// auto booking lands on the only barber
	second := book(t, svc, salon.ID, BarberAuto, short.ID)
	assert.Equal(t, barber.ID, second.BarberID)
	assert.Equal(t, 2, second.Position)

	result, err := svc.TrackEntry(second.ID)
	require.NoError(t, err)
	assert.True(t, result.Active)
	assert.Equal(t, 2, result.Position)
	assert.Equal(t, 30, result.EstimatedWaitMinutes)
	require.NotNil(t, result.Barber)
	assert.Equal(t, barber.ID, result.Barber.ID)

	// the entry at the head waits for nobody
	head, err := svc.TrackEntry(first.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, head.Position)
	assert.Equal(t, 0, head.EstimatedWaitMinutes)
}

func TestSubmitBookingAutoAssignsLeastLoaded(t *testing.T) {
	svc, db := newTestService(t)
	salon := seedSalon(t, db, "duo")
	b1 := seedBarber(t, db, salon.ID, "B1")
	b2 := seedBarber(t, db, salon.ID, "B2")
	long := seedSvc(t, db, salon.ID, 45)
	short := seedSvc(t, db, salon.ID, 15)

	book(t, svc, salon.ID, b1.ID.String(), long.ID)

	entry := book(t, svc, salon.ID, BarberAuto, short.ID)
	assert.Equal(t, b2.ID, entry.BarberID)
}

func TestSubmitBookingTieBreaksToFirstBarber(t *testing.T) {
	svc, db := newTestService(t)
	salon := seedSalon(t, db, "tie")
	b1 := seedBarber(t, db, salon.ID, "B1")
	seedBarber(t, db, salon.ID, "B2")
	short := seedSvc(t, db, salon.ID, 15)

	entry := book(t, svc, salon.ID, BarberAuto, short.ID)
	assert.Equal(t, b1.ID, entry.BarberID)
}

func TestSubmitBookingNoBarbersFailsValidation(t *testing.T) {
	svc, db := newTestService(t)
	salon := seedSalon(t, db, "empty")
	short := seedSvc(t, db, salon.ID, 15)

	_, err := svc.SubmitBooking(BookingInput{
		SalonID:      salon.ID,
		ClientName:   "Client",
		ClientPhone:  "+33612345678",
		BarberChoice: BarberAuto,
		ServiceIDs:   []uuid.UUID{short.ID},
	})
	assert.True(t, IsValidation(err))

	// no entry was created
	var count int64
	db.Model(&models.QueueEntry{}).Count(&count)
	assert.Zero(t, count)
}

func TestSubmitBookingRejectsForeignBarber(t *testing.T) {
	svc, db := newTestService(t)
	salon := seedSalon(t, db, "home")
	other := seedSalon(t, db, "away")
	foreign := seedBarber(t, db, other.ID, "F")
	short := seedSvc(t, db, salon.ID, 15)

	_, err := svc.SubmitBooking(BookingInput{
		SalonID:      salon.ID,
		ClientName:   "Client",
		ClientPhone:  "+33612345678",
		BarberChoice: foreign.ID.String(),
		ServiceIDs:   []uuid.UUID{short.ID},
	})
	assert.True(t, IsValidation(err))
}

func TestSubmitBookingRequiresServices(t *testing.T) {
	svc, db := newTestService(t)
	salon := seedSalon(t, db, "svcless")
	seedBarber(t, db, salon.ID, "B")

	_, err := svc.SubmitBooking(BookingInput{
		SalonID:      salon.ID,
		ClientName:   "Client",
		ClientPhone:  "+33612345678",
		BarberChoice: BarberAuto,
	})
	assert.True(t, IsValidation(err))
}

func TestSubmitBookingUnknownSalon(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SubmitBooking(BookingInput{
		SalonID:      uuid.New(),
		ClientName:   "Client",
		ClientPhone:  "+33612345678",
		BarberChoice: BarberAuto,
		ServiceIDs:   []uuid.UUID{uuid.New()},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTrackEntryNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.TrackEntry(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTrackEntryIdempotentRead(t *testing.T) {
	svc, db := newTestService(t)
	salon := seedSalon(t, db, "poll")
	barber := seedBarber(t, db, salon.ID, "B")
	short := seedSvc(t, db, salon.ID, 15)

	book(t, svc, salon.ID, barber.ID.String(), short.ID)
	entry := book(t, svc, salon.ID, barber.ID.String(), short.ID)

	first, err := svc.TrackEntry(entry.ID)
	require.NoError(t, err)
	second, err := svc.TrackEntry(entry.ID)
	require.NoError(t, err)

	assert.Equal(t, first.Position, second.Position)
	assert.Equal(t, first.EstimatedWaitMinutes, second.EstimatedWaitMinutes)
	assert.Equal(t, first.Entry.ID, second.Entry.ID)
	assert.Equal(t, first.Active, second.Active)
}

func TestSetStatusVisibility(t *testing.T) {
	svc, db := newTestService(t)
	salon := seedSalon(t, db, "flow")
	barber := seedBarber(t, db, salon.ID, "B")
	long := seedSvc(t, db, salon.ID, 30)
	short := seedSvc(t, db, salon.ID, 15)

	head := book(t, svc, salon.ID, barber.ID.String(), long.ID)
	tail := book(t, svc, salon.ID, barber.ID.String(), short.ID)

	require.NoError(t, svc.SetStatus(head.ID, models.StatusCompleted))

	// the completed entry leaves every load and sub-queue computation
	ds, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 15, EstimateLoad(barber.ID, salon.ID, ds))

	result, err := svc.TrackEntry(tail.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Position)
	assert.Equal(t, 0, result.EstimatedWaitMinutes)

	// tracking the completed entry shows the terminal view, not a position
	done, err := svc.TrackEntry(head.ID)
	require.NoError(t, err)
	assert.False(t, done.Active)
	assert.Zero(t, done.Position)
}

func TestSetStatusAnyTransitionAllowed(t *testing.T) {
	svc, db := newTestService(t)
	salon := seedSalon(t, db, "loose")
	barber := seedBarber(t, db, salon.ID, "B")
	short := seedSvc(t, db, salon.ID, 15)

	entry := book(t, svc, salon.ID, barber.ID.String(), short.ID)

	// no transition table: COMPLETED may even revert to WAITING
	require.NoError(t, svc.SetStatus(entry.ID, models.StatusCompleted))
	require.NoError(t, svc.SetStatus(entry.ID, models.StatusWaiting))

	result, err := svc.TrackEntry(entry.ID)
	require.NoError(t, err)
	assert.True(t, result.Active)
	assert.Equal(t, 1, result.Position)
}

func TestSetStatusInvalidValue(t *testing.T) {
	svc, db := newTestService(t)
	salon := seedSalon(t, db, "strict")
	barber := seedBarber(t, db, salon.ID, "B")
	short := seedSvc(t, db, salon.ID, 15)

	entry := book(t, svc, salon.ID, barber.ID.String(), short.ID)

	err := svc.SetStatus(entry.ID, models.QueueStatus("NAPPING"))
	assert.True(t, IsValidation(err))

	err = svc.SetStatus(uuid.New(), models.StatusCompleted)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClearHistoryRemovesFinishedOnly(t *testing.T) {
	svc, db := newTestService(t)
	salon := seedSalon(t, db, "mine")
	other := seedSalon(t, db, "theirs")
	barber := seedBarber(t, db, salon.ID, "B")
	foreign := seedBarber(t, db, other.ID, "F")
	short := seedSvc(t, db, salon.ID, 15)
	foreignSvc := seedSvc(t, db, other.ID, 15)

	done := book(t, svc, salon.ID, barber.ID.String(), short.ID)
	gone := book(t, svc, salon.ID, barber.ID.String(), short.ID)
	waiting := book(t, svc, salon.ID, barber.ID.String(), short.ID)
	foreignDone := book(t, svc, other.ID, foreign.ID.String(), foreignSvc.ID)

	require.NoError(t, svc.SetStatus(done.ID, models.StatusCompleted))
	require.NoError(t, svc.SetStatus(gone.ID, models.StatusCancelled))
	require.NoError(t, svc.SetStatus(foreignDone.ID, models.StatusCompleted))

	removed, err := svc.ClearHistory(salon.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	var remaining []models.QueueEntry
	require.NoError(t, db.Find(&remaining).Error)
	assert.Len(t, remaining, 2)

	ids := []uuid.UUID{remaining[0].ID, remaining[1].ID}
	assert.Contains(t, ids, waiting.ID)
	assert.Contains(t, ids, foreignDone.ID) // other salon untouched
}

func TestEstimateWaitAutoIsMinimumAcrossBarbers(t *testing.T) {
	svc, db := newTestService(t)
	salon := seedSalon(t, db, "est")
	b1 := seedBarber(t, db, salon.ID, "B1")
	b2 := seedBarber(t, db, salon.ID, "B2")
	long := seedSvc(t, db, salon.ID, 45)
	short := seedSvc(t, db, salon.ID, 20)

	book(t, svc, salon.ID, b1.ID.String(), long.ID)
	book(t, svc, salon.ID, b2.ID.String(), short.ID)

	auto, err := svc.EstimateWait(salon.ID, BarberAuto)
	require.NoError(t, err)
	assert.Equal(t, 20, auto)

	explicit, err := svc.EstimateWait(salon.ID, b1.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 45, explicit)
}

func TestEstimateWaitEmptySalonIsZero(t *testing.T) {
	svc, db := newTestService(t)
	salon := seedSalon(t, db, "idle")

	minutes, err := svc.EstimateWait(salon.ID, BarberAuto)
	require.NoError(t, err)
	assert.Zero(t, minutes)
}
