package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/careconnect/charityevents-api/discovery"
	"github.com/careconnect/charityevents-api/models"
	"github.com/careconnect/charityevents-api/store"
	"github.com/careconnect/charityevents-api/utils"
)

const queryTimeout = 10 * time.Second

// ---------------- LIST ----------------
func ListEvents(svc *discovery.Service, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
		defer cancel()

		events, err := svc.ListAll(ctx)
		if err != nil {
			log.Error("could not fetch events", utils.Err(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch events"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"count":   len(events),
			"data":    events,
		})
	}
}

// ---------------- SEARCH ----------------
func SearchEvents(svc *discovery.Service, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filters discovery.Filters

		// The original client sent the keyword as "q"; keep both.
		filters.Keyword = c.Query("keyword")
		if filters.Keyword == "" {
			filters.Keyword = c.Query("q")
		}
		filters.CategoryName = c.Query("category")
		filters.Location = c.Query("location")

		if raw := c.Query("category_id"); raw != "" {
			if id, ok := discovery.ParseCategoryID(raw); ok {
				filters.CategoryID = &id
			} else {
				// Malformed id degrades to no category constraint.
				log.Warn("ignoring malformed category_id", slog.String("value", raw))
			}
		}
		if filters.CategoryID != nil && filters.CategoryName != "" {
			log.Debug("both category_id and category supplied, matching on both",
				slog.Int("category_id", *filters.CategoryID),
				slog.String("category", filters.CategoryName))
		}

		if raw := c.Query("date"); raw != "" {
			date, err := models.ParseDate(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
				return
			}
			filters.ExactDate = &date
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
		defer cancel()

		events, err := svc.Search(ctx, filters)
		if err != nil {
			log.Error("search failed", utils.Err(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to search events"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"count":   len(events),
			"data":    events,
		})
	}
}

// ---------------- GET ----------------
func GetEvent(svc *discovery.Service, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid event id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
		defer cancel()

		event, err := svc.GetByID(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Event not found"})
			return
		}
		if err != nil {
			log.Error("could not fetch event", slog.Int("id", id), utils.Err(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch event"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    event,
		})
	}
}

// ---------------- CATEGORIES ----------------
func ListCategories(svc *discovery.Service, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
		defer cancel()

		categories, err := svc.Categories(ctx)
		if err != nil {
			log.Error("could not fetch categories", utils.Err(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch categories"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"count":   len(categories),
			"data":    categories,
		})
	}
}

// ---------------- HEALTH ----------------
func Health(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := st.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
