package popup

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/greenvalley-school/school-cms-api/handlers/banner"
	"github.com/greenvalley-school/school-cms-api/handlers/notice"
	"github.com/greenvalley-school/school-cms-api/model"
	"github.com/greenvalley-school/school-cms-api/utils/popup"
	"github.com/greenvalley-school/school-cms-api/utils/response"
	"gorm.io/gorm"
)

// SessionCookieName identifies an anonymous visitor for popup sequencing
const SessionCookieName = "popup_session"

// PopupHandler drives the homepage popup sequence for anonymous visitors.
// Each session sees the active banner first, then the latest notice, each
// at most once.
type PopupHandler struct {
	db        *gorm.DB
	sequencer *popup.Sequencer
}

// NewPopupHandler creates a new popup handler
func NewPopupHandler(db *gorm.DB, sequencer *popup.Sequencer) *PopupHandler {
	return &PopupHandler{
		db:        db,
		sequencer: sequencer,
	}
}

// PopupResponse is the payload for both /next and /dismiss. Type is the
// popup kind the frontend should render: "banner", "notice" or "none".
type PopupResponse struct {
	Type   string        `json:"type"`
	Banner *model.Banner `json:"banner,omitempty"`
	Notice *model.Notice `json:"notice,omitempty"`
}

// popupType maps a sequencer state to the wire format
func popupType(state popup.State) string {
	switch state {
	case popup.StateShowingBanner:
		return "banner"
	case popup.StateShowingNotice:
		return "notice"
	default:
		return "none"
	}
}

// sessionID reads the popup session cookie, minting one on first contact
func (h *PopupHandler) sessionID(c *fiber.Ctx) string {
	sessionID := c.Cookies(SessionCookieName)
	if sessionID == "" {
		sessionID = uuid.New().String()
		c.Cookie(&fiber.Cookie{
			Name:     SessionCookieName,
			Value:    sessionID,
			Expires:  time.Now().Add(popup.SessionTTL),
			HTTPOnly: true,
			SameSite: "Lax",
			Path:     "/",
		})
	}
	return sessionID
}

// Next handles GET /api/v1/popup/next (public). It reports which popup,
// if any, the visitor should be shown on this page load, together with
// its content.
func (h *PopupHandler) Next(c *fiber.Ctx) error {
	sessionID := h.sessionID(c)

	activeBanner, err := banner.ActiveBanner(h.db)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch popup content")
	}

	latestNotice, err := notice.LatestNotice(h.db)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch popup content")
	}

	state, err := h.sequencer.Next(c.Context(), sessionID, activeBanner != nil, latestNotice != nil)
	if err != nil {
		log.Printf("Popup sequencing failed for session %s: %v", sessionID, err)
		return response.InternalServerError(c, "Failed to determine popup state")
	}

	resp := PopupResponse{Type: popupType(state)}
	switch state {
	case popup.StateShowingBanner:
		resp.Banner = activeBanner
	case popup.StateShowingNotice:
		resp.Notice = latestNotice
	}

	return response.Success(c, resp)
}

// DismissRequest identifies which popup the visitor just closed
type DismissRequest struct {
	Type string `json:"type" validate:"required"`
}

// Dismiss handles POST /api/v1/popup/dismiss (public). It records that the
// named popup was seen and returns the follow-up state, so closing the
// banner can immediately surface the notice.
func (h *PopupHandler) Dismiss(c *fiber.Ctx) error {
	sessionID := h.sessionID(c)

	var req DismissRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var current popup.State
	switch req.Type {
	case "banner":
		current = popup.StateShowingBanner
	case "notice":
		current = popup.StateShowingNotice
	default:
		return response.BadRequest(c, "type must be banner or notice")
	}

	latestNotice, err := notice.LatestNotice(h.db)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch popup content")
	}

	state, err := h.sequencer.Dismiss(c.Context(), sessionID, current, latestNotice != nil)
	if err != nil {
		log.Printf("Popup dismissal failed for session %s: %v", sessionID, err)
		return response.InternalServerError(c, "Failed to record dismissal")
	}

	resp := PopupResponse{Type: popupType(state)}
	if state == popup.StateShowingNotice {
		resp.Notice = latestNotice
	}

	return response.Success(c, resp)
}
