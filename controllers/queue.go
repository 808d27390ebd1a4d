// controllers/queue.go
package controllers

import (
	"errors"
	"net/http"

	"barberq-backend/models"
	"barberq-backend/services"
	"barberq-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// QueueController serves the public booking/tracking endpoints and the staff
// queue console on top of the injected queue service.
type QueueController struct {
	svc *services.QueueService
}

func NewQueueController(svc *services.QueueService) *QueueController {
	return &QueueController{svc: svc}
}

// BookingRequest is the public booking form payload. BarberID is either
// "auto" or the id of a barber belonging to the salon.
type BookingRequest struct {
	ClientName  string   `json:"clientName" binding:"required"`
	ClientPhone string   `json:"clientPhone" binding:"required"`
	BarberID    string   `json:"barberId" binding:"required"`
	ServiceIDs  []string `json:"serviceIds" binding:"required"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

func (qc *QueueController) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Not found")
	case services.IsValidation(err):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}

func (qc *QueueController) salonBySlug(c *gin.Context) (*services.Dataset, *models.Salon, bool) {
	ds, err := qc.svc.Snapshot()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return nil, nil, false
	}
	salon := ds.SalonBySlug(c.Param("slug"))
	if salon == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		return nil, nil, false
	}
	return ds, salon, true
}

// SubmitBooking handles POST /api/public/salons/:slug/queue
func (qc *QueueController) SubmitBooking(c *gin.Context) {
	_, salon, ok := qc.salonBySlug(c)
	if !ok {
		return
	}

	var input BookingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.ClientPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	serviceIDs := make([]uuid.UUID, 0, len(input.ServiceIDs))
	for _, raw := range input.ServiceIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
			return
		}
		serviceIDs = append(serviceIDs, id)
	}

	entry, err := qc.svc.SubmitBooking(services.BookingInput{
		SalonID:      salon.ID,
		ClientName:   input.ClientName,
		ClientPhone:  input.ClientPhone,
		BarberChoice: input.BarberID,
		ServiceIDs:   serviceIDs,
	})
	if err != nil {
		qc.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// TrackEntry handles GET /api/public/queue/:id, the polling endpoint behind
// the client waiting page.
func (qc *QueueController) TrackEntry(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid entry ID format")
		return
	}

	result, err := qc.svc.TrackEntry(entryID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
			return
		}
		qc.respondServiceError(c, err)
		return
	}

	var barber gin.H
	if result.Barber != nil {
		barber = gin.H{
			"id":    result.Barber.ID,
			"name":  result.Barber.Name,
			"photo": result.Barber.Photo,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"entry":                result.Entry,
		"barber":               barber,
		"active":               result.Active,
		"position":             result.Position,
		"estimatedWaitMinutes": result.EstimatedWaitMinutes,
	})
}

// GetWaitEstimate handles GET /api/public/salons/:slug/wait?barberId=
func (qc *QueueController) GetWaitEstimate(c *gin.Context) {
	_, salon, ok := qc.salonBySlug(c)
	if !ok {
		return
	}

	choice := c.DefaultQuery("barberId", services.BarberAuto)
	minutes, err := qc.svc.EstimateWait(salon.ID, choice)
	if err != nil {
		qc.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"estimatedWaitMinutes": minutes})
}

// GetQueue handles GET /api/queue, the staff console listing, newest last.
func (qc *QueueController) GetQueue(c *gin.Context) {
	salonID, ok := resolveSalonID(c)
	if !ok {
		return
	}

	ds, err := qc.svc.Snapshot()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	entries := make([]gin.H, 0)
	for i := range ds.Queue {
		e := &ds.Queue[i]
		if e.SalonID != salonID {
			continue
		}
		item := gin.H{
			"entry":        e,
			"totalMinutes": ds.EntryMinutes(e),
		}
		if barber := ds.BarberByID(e.BarberID); barber != nil {
			item["barberName"] = barber.Name
		}
		entries = append(entries, item)
	}

	c.JSON(http.StatusOK, entries)
}

// UpdateStatus handles PUT /api/queue/:id/status. Any status may follow any
// other; there is no transition table.
func (qc *QueueController) UpdateStatus(c *gin.Context) {
	salonID, ok := resolveSalonID(c)
	if !ok {
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid entry ID format")
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Scope check: the entry must belong to the caller's salon
	ds, err := qc.svc.Snapshot()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	entry := ds.EntryByID(entryID)
	if entry == nil || entry.SalonID != salonID {
		utils.RespondWithError(c, http.StatusNotFound, "Queue entry not found")
		return
	}

	if err := qc.svc.SetStatus(entryID, models.QueueStatus(input.Status)); err != nil {
		qc.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// ClearHistory handles DELETE /api/queue/history. Removes the salon's
// COMPLETED and CANCELLED entries.
func (qc *QueueController) ClearHistory(c *gin.Context) {
	salonID, ok := resolveSalonID(c)
	if !ok {
		return
	}

	removed, err := qc.svc.ClearHistory(salonID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear history")
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// Dashboard handles GET /api/dashboard, the staff overview: active client
// count, total queued minutes and per-barber loads.
func (qc *QueueController) Dashboard(c *gin.Context) {
	salonID, ok := resolveSalonID(c)
	if !ok {
		return
	}

	ds, err := qc.svc.Snapshot()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	activeClients := 0
	totalMinutes := 0
	for i := range ds.Queue {
		e := &ds.Queue[i]
		if e.SalonID != salonID || !e.Status.Active() {
			continue
		}
		activeClients++
		totalMinutes += ds.EntryMinutes(e)
	}

	barbers := make([]gin.H, 0)
	for _, b := range ds.SalonBarbers(salonID) {
		barbers = append(barbers, gin.H{
			"id":          b.ID,
			"name":        b.Name,
			"loadMinutes": services.EstimateLoad(b.ID, salonID, ds),
			"activeCount": len(services.ActiveQueueFor(b.ID, ds)),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"activeClients":      activeClients,
		"totalQueuedMinutes": totalMinutes,
		"barbers":            barbers,
	})
}
