package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/careconnect/charityevents-api/models"
	"github.com/careconnect/charityevents-api/store"
	"github.com/careconnect/charityevents-api/utils"
)

// ---------------- CREATE ----------------
func CreateEvent(st store.Store, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name           string  `form:"name" binding:"required"`
			Description    string  `form:"description"`
			EventDate      string  `form:"event_date" binding:"required"`
			EventTime      string  `form:"event_time"`
			Location       string  `form:"location" binding:"required"`
			CategoryID     *int    `form:"category_id"`
			OrganisationID *int    `form:"organisation_id"`
			GoalAmount     float64 `form:"goal_amount"`
			CurrentAmount  float64 `form:"current_amount"`
			TicketPrice    float64 `form:"ticket_price"`
		}

		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		date, err := models.ParseDate(input.EventDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		imageURL, ok := uploadImageIfPresent(c, log)
		if !ok {
			return
		}

		event := models.Event{
			Name:           input.Name,
			Description:    input.Description,
			EventDate:      date,
			EventTime:      input.EventTime,
			Location:       input.Location,
			CategoryID:     input.CategoryID,
			OrganisationID: input.OrganisationID,
			GoalAmount:     models.Money(input.GoalAmount),
			CurrentAmount:  models.Money(input.CurrentAmount),
			TicketPrice:    models.Money(input.TicketPrice),
			IsActive:       true,
			ImageURL:       imageURL,
			CreatedAt:      time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
		defer cancel()

		id, err := st.InsertEvent(ctx, event)
		if err != nil {
			log.Error("could not create event", utils.Err(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not create event"})
			return
		}
		event.ID = id

		c.JSON(http.StatusCreated, gin.H{"success": true, "data": event})
	}
}

// ---------------- UPDATE ----------------
func UpdateEvent(st store.Store, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid event id"})
			return
		}

		var input struct {
			Name           *string  `form:"name"`
			Description    *string  `form:"description"`
			EventDate      *string  `form:"event_date"`
			EventTime      *string  `form:"event_time"`
			Location       *string  `form:"location"`
			CategoryID     *int     `form:"category_id"`
			OrganisationID *int     `form:"organisation_id"`
			GoalAmount     *float64 `form:"goal_amount"`
			CurrentAmount  *float64 `form:"current_amount"`
			TicketPrice    *float64 `form:"ticket_price"`
			IsActive       *bool    `form:"is_active"`
		}

		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
		defer cancel()

		existing, err := st.GetEvent(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Event not found"})
			return
		}
		if err != nil {
			log.Error("could not fetch event", slog.Int("id", id), utils.Err(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch event"})
			return
		}

		patch := store.EventPatch{
			Name:           input.Name,
			Description:    input.Description,
			EventTime:      input.EventTime,
			Location:       input.Location,
			CategoryID:     input.CategoryID,
			OrganisationID: input.OrganisationID,
			IsActive:       input.IsActive,
		}
		if input.EventDate != nil {
			date, err := models.ParseDate(*input.EventDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
				return
			}
			patch.EventDate = &date
		}
		if input.GoalAmount != nil {
			m := models.Money(*input.GoalAmount)
			patch.GoalAmount = &m
		}
		if input.CurrentAmount != nil {
			m := models.Money(*input.CurrentAmount)
			patch.CurrentAmount = &m
		}
		if input.TicketPrice != nil {
			m := models.Money(*input.TicketPrice)
			patch.TicketPrice = &m
		}

		imageURL, ok := uploadImageIfPresent(c, log)
		if !ok {
			return
		}
		if imageURL != "" {
			patch.ImageURL = &imageURL
			if existing.ImageURL != "" {
				if err := utils.DeleteEventImage(existing.ImageURL); err != nil {
					log.Warn("could not delete replaced image", utils.Err(err))
				}
			}
		}

		if patch.Empty() {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No fields to update"})
			return
		}

		if err := st.UpdateEvent(ctx, id, patch); err != nil {
			log.Error("could not update event", slog.Int("id", id), utils.Err(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not update event"})
			return
		}

		updated, err := st.GetEvent(ctx, id)
		if err != nil {
			log.Error("could not fetch updated event", slog.Int("id", id), utils.Err(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve updated event"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
	}
}

// ---------------- DELETE ----------------
func DeleteEvent(st store.Store, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid event id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
		defer cancel()

		existing, err := st.GetEvent(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Event not found"})
			return
		}
		if err != nil {
			log.Error("could not fetch event", slog.Int("id", id), utils.Err(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch event"})
			return
		}

		if err := st.DeleteEvent(ctx, id); err != nil {
			log.Error("could not delete event", slog.Int("id", id), utils.Err(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not delete event"})
			return
		}

		if existing.ImageURL != "" {
			if err := utils.DeleteEventImage(existing.ImageURL); err != nil {
				log.Warn("could not delete event image", utils.Err(err))
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
	}
}

// ---------------- PAUSE / RESUME ----------------
func SetEventActive(st store.Store, log *slog.Logger, active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid event id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
		defer cancel()

		err = st.SetEventActive(ctx, id, active)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Event not found"})
			return
		}
		if err != nil {
			log.Error("could not toggle event", slog.Int("id", id), utils.Err(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not update event"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "id": id, "is_active": active})
	}
}

// uploadImageIfPresent uploads the optional "image" form file. It
// returns ok=false after writing an error response.
func uploadImageIfPresent(c *gin.Context, log *slog.Logger) (url string, ok bool) {
	fileHeader, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", true
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid form data"})
		return "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to open file"})
		return "", false
	}
	defer file.Close()

	url, err = utils.UploadEventImage(file, fileHeader)
	if err != nil {
		log.Error("image upload failed", utils.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Image upload failed"})
		return "", false
	}
	return url, true
}
