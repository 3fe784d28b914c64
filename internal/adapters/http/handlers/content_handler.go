package handlers

import (
	"errors"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/services"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ContentHandler handles public site content and its admin CRUD
type ContentHandler struct {
	contentService *services.ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService *services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// SetSettingRequest represents setting upsert request body
type SetSettingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ============================================================
// Public endpoints
// ============================================================

// ListEvents lists published events
// @Summary List events
// @Tags Content
// @Produce json
// @Success 200 {object} response.Response
// @Router /events [get]
func (h *ContentHandler) ListEvents(c *fiber.Ctx) error {
	var (
		events interface{}
		err    error
	)
	if c.Query("upcoming") == "true" {
		events, err = h.contentService.ListUpcomingEvents(c.Context())
	} else {
		events, err = h.contentService.ListEvents(c.Context())
	}
	if err != nil {
		return response.InternalServerError(c, "Failed to list events")
	}
	return response.Success(c, "Events retrieved successfully", fiber.Map{
		"events": events,
	})
}

// GetEvent gets a published event
// @Summary Get event
// @Tags Content
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id} [get]
func (h *ContentHandler) GetEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid event ID")
	}

	event, err := h.contentService.GetEvent(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to get event")
	}

	return response.Success(c, "Event retrieved successfully", fiber.Map{
		"event": event,
	})
}

// ListNews lists published news
// @Summary List news
// @Tags Content
// @Produce json
// @Success 200 {object} response.Response
// @Router /news [get]
func (h *ContentHandler) ListNews(c *fiber.Ctx) error {
	news, err := h.contentService.ListNews(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list news")
	}
	return response.Success(c, "News retrieved successfully", fiber.Map{
		"news": news,
	})
}

// GetNews gets a news item
// @Summary Get news item
// @Tags Content
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /news/{id} [get]
func (h *ContentHandler) GetNews(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid news ID")
	}

	news, err := h.contentService.GetNews(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			return response.NotFound(c, "News item not found")
		}
		return response.InternalServerError(c, "Failed to get news item")
	}

	return response.Success(c, "News item retrieved successfully", fiber.Map{
		"news": news,
	})
}

// GetSection gets a content section by slug
// @Summary Get content section
// @Tags Content
// @Produce json
// @Param slug path string true "Section slug"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /sections/{slug} [get]
func (h *ContentHandler) GetSection(c *fiber.Ctx) error {
	slug := c.Params("slug")

	section, err := h.contentService.GetSection(c.Context(), slug)
	if err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			return response.NotFound(c, "Section not found")
		}
		return response.InternalServerError(c, "Failed to get section")
	}

	return response.Success(c, "Section retrieved successfully", fiber.Map{
		"section": section,
	})
}

// GetMenu returns the active navigation menu
// @Summary Get menu
// @Tags Content
// @Produce json
// @Success 200 {object} response.Response
// @Router /menu [get]
func (h *ContentHandler) GetMenu(c *fiber.Ctx) error {
	items, err := h.contentService.GetMenu(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to get menu")
	}
	return response.Success(c, "Menu retrieved successfully", fiber.Map{
		"menu": items,
	})
}

// GetPublicSettings returns the public settings (payment details etc.)
// @Summary Get public settings
// @Tags Content
// @Produce json
// @Success 200 {object} response.Response
// @Router /settings [get]
func (h *ContentHandler) GetPublicSettings(c *fiber.Ctx) error {
	settings, err := h.contentService.GetPublicSettings(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to get settings")
	}
	return response.Success(c, "Settings retrieved successfully", fiber.Map{
		"settings": settings,
	})
}

// ListFees lists active fee levels
// @Summary List fee levels
// @Tags Content
// @Produce json
// @Success 200 {object} response.Response
// @Router /fees [get]
func (h *ContentHandler) ListFees(c *fiber.Ctx) error {
	fees, err := h.contentService.ListFees(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list fee levels")
	}
	return response.Success(c, "Fee levels retrieved successfully", fiber.Map{
		"fees": fees,
	})
}

// ============================================================
// Admin endpoints
// ============================================================

// ListAllEvents lists every event including unpublished
// @Summary List all events
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/events [get]
func (h *ContentHandler) ListAllEvents(c *fiber.Ctx) error {
	events, err := h.contentService.ListAllEvents(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list events")
	}
	return response.Success(c, "Events retrieved successfully", fiber.Map{
		"events": events,
	})
}

// CreateEvent creates an event
// @Summary Create event
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.EventInput true "Event data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/events [post]
func (h *ContentHandler) CreateEvent(c *fiber.Ctx) error {
	var input services.EventInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	event, err := h.contentService.CreateEvent(c.Context(), &input)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.Created(c, "Event created successfully", fiber.Map{
		"event": event,
	})
}

// UpdateEvent updates an event
// @Summary Update event
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param body body services.EventInput true "Event data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/events/{id} [put]
func (h *ContentHandler) UpdateEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid event ID")
	}

	var input services.EventInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	event, err := h.contentService.UpdateEvent(c.Context(), uint(id), &input)
	if err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to update event")
	}

	return response.Success(c, "Event updated successfully", fiber.Map{
		"event": event,
	})
}

// DeleteEvent deletes an event
// @Summary Delete event
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/events/{id} [delete]
func (h *ContentHandler) DeleteEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid event ID")
	}

	if err := h.contentService.DeleteEvent(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to delete event")
	}

	return response.Success(c, "Event deleted successfully", nil)
}

// ListAllNews lists every news item including unpublished
// @Summary List all news
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/news [get]
func (h *ContentHandler) ListAllNews(c *fiber.Ctx) error {
	news, err := h.contentService.ListAllNews(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list news")
	}
	return response.Success(c, "News retrieved successfully", fiber.Map{
		"news": news,
	})
}

// CreateNews creates a news item
// @Summary Create news item
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.NewsInput true "News data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/news [post]
func (h *ContentHandler) CreateNews(c *fiber.Ctx) error {
	var input services.NewsInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	news, err := h.contentService.CreateNews(c.Context(), &input)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.Created(c, "News item created successfully", fiber.Map{
		"news": news,
	})
}

// UpdateNews updates a news item
// @Summary Update news item
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Param body body services.NewsInput true "News data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/news/{id} [put]
func (h *ContentHandler) UpdateNews(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid news ID")
	}

	var input services.NewsInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	news, err := h.contentService.UpdateNews(c.Context(), uint(id), &input)
	if err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			return response.NotFound(c, "News item not found")
		}
		return response.InternalServerError(c, "Failed to update news item")
	}

	return response.Success(c, "News item updated successfully", fiber.Map{
		"news": news,
	})
}

// DeleteNews deletes a news item
// @Summary Delete news item
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/news/{id} [delete]
func (h *ContentHandler) DeleteNews(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid news ID")
	}

	if err := h.contentService.DeleteNews(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			return response.NotFound(c, "News item not found")
		}
		return response.InternalServerError(c, "Failed to delete news item")
	}

	return response.Success(c, "News item deleted successfully", nil)
}

// ListSections lists all content sections
// @Summary List content sections
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/sections [get]
func (h *ContentHandler) ListSections(c *fiber.Ctx) error {
	sections, err := h.contentService.ListSections(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list sections")
	}
	return response.Success(c, "Sections retrieved successfully", fiber.Map{
		"sections": sections,
	})
}

// CreateSection creates a content section
// @Summary Create content section
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.SectionInput true "Section data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/sections [post]
func (h *ContentHandler) CreateSection(c *fiber.Ctx) error {
	var input services.SectionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	section, err := h.contentService.CreateSection(c.Context(), &input)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateSlug) {
			return response.Conflict(c, "A section with this slug already exists")
		}
		return response.BadRequest(c, err.Error())
	}

	return response.Created(c, "Section created successfully", fiber.Map{
		"section": section,
	})
}

// UpdateSection updates a content section by slug
// @Summary Update content section
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Section slug"
// @Param body body services.SectionInput true "Section data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/sections/{slug} [put]
func (h *ContentHandler) UpdateSection(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var input services.SectionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	section, err := h.contentService.UpdateSection(c.Context(), slug, &input)
	if err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			return response.NotFound(c, "Section not found")
		}
		return response.InternalServerError(c, "Failed to update section")
	}

	return response.Success(c, "Section updated successfully", fiber.Map{
		"section": section,
	})
}

// ListAllMenuItems lists every menu item including inactive
// @Summary List all menu items
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/menu [get]
func (h *ContentHandler) ListAllMenuItems(c *fiber.Ctx) error {
	items, err := h.contentService.ListAllMenuItems(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list menu items")
	}
	return response.Success(c, "Menu items retrieved successfully", fiber.Map{
		"menu": items,
	})
}

// CreateMenuItem creates a menu item
// @Summary Create menu item
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.MenuItemInput true "Menu item data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/menu [post]
func (h *ContentHandler) CreateMenuItem(c *fiber.Ctx) error {
	var input services.MenuItemInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	item, err := h.contentService.CreateMenuItem(c.Context(), &input)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.Created(c, "Menu item created successfully", fiber.Map{
		"item": item,
	})
}

// UpdateMenuItem updates a menu item
// @Summary Update menu item
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu item ID"
// @Param body body services.MenuItemInput true "Menu item data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/menu/{id} [put]
func (h *ContentHandler) UpdateMenuItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid menu item ID")
	}

	var input services.MenuItemInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	item, err := h.contentService.UpdateMenuItem(c.Context(), uint(id), &input)
	if err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			return response.NotFound(c, "Menu item not found")
		}
		return response.InternalServerError(c, "Failed to update menu item")
	}

	return response.Success(c, "Menu item updated successfully", fiber.Map{
		"item": item,
	})
}

// DeleteMenuItem deletes a menu item
// @Summary Delete menu item
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu item ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/menu/{id} [delete]
func (h *ContentHandler) DeleteMenuItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid menu item ID")
	}

	if err := h.contentService.DeleteMenuItem(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			return response.NotFound(c, "Menu item not found")
		}
		return response.InternalServerError(c, "Failed to delete menu item")
	}

	return response.Success(c, "Menu item deleted successfully", nil)
}

// ListSettings lists all settings
// @Summary List settings
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/settings [get]
func (h *ContentHandler) ListSettings(c *fiber.Ctx) error {
	settings, err := h.contentService.ListSettings(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list settings")
	}
	return response.Success(c, "Settings retrieved successfully", fiber.Map{
		"settings": settings,
	})
}

// SetSetting upserts a setting value
// @Summary Set setting
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SetSettingRequest true "Setting key and value"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/settings [put]
func (h *ContentHandler) SetSetting(c *fiber.Ctx) error {
	var req SetSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	setting, err := h.contentService.SetSetting(c.Context(), req.Key, req.Value)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.Success(c, "Setting saved successfully", fiber.Map{
		"setting": setting,
	})
}

// ListAllFees lists every fee level including inactive
// @Summary List all fee levels
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/fees [get]
func (h *ContentHandler) ListAllFees(c *fiber.Ctx) error {
	fees, err := h.contentService.ListAllFees(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list fee levels")
	}
	return response.Success(c, "Fee levels retrieved successfully", fiber.Map{
		"fees": fees,
	})
}

// UpsertFee creates or updates a fee level
// @Summary Upsert fee level
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.FeeInput true "Fee level data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/fees [put]
func (h *ContentHandler) UpsertFee(c *fiber.Ctx) error {
	var input services.FeeInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	fee, err := h.contentService.UpsertFee(c.Context(), &input)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.Success(c, "Fee level saved successfully", fiber.Map{
		"fee": fee,
	})
}
