package match

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/keita-f/scrimmage/config"
	"github.com/keita-f/scrimmage/internal/middleware"
	"github.com/keita-f/scrimmage/pkg/apperrors"
	"github.com/keita-f/scrimmage/pkg/cache"
	"github.com/keita-f/scrimmage/pkg/responses"
	"github.com/keita-f/scrimmage/pkg/validator"
	"github.com/keita-f/scrimmage/utils"
)

// MatchController serves confirmed matches and the owner decisions that
// create or dissolve them.
type MatchController struct {
	repo   MatchRepository
	config *config.Config
	tags   *cache.Registry
}

func NewMatchController(repo MatchRepository, cfg *config.Config, tags *cache.Registry) *MatchController {
	return &MatchController{repo: repo, config: cfg, tags: tags}
}

type DecideApplicationRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// @Summary      List matches
// @Description  Matches the caller participates in; type=host, guest, upcoming or past narrows the set.
// @Tags         Matches
// @Produce      json
// @Param        type  query  string  false  "all, host, guest, upcoming or past"
// @Success      200  {object}  responses.SuccessResponse{data=[]MatchWithRole}
// @Router       /matches [get]
// @Security     CookieAuth
func (mc *MatchController) ListMatches(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	listType := c.DefaultQuery("type", "all")
	today := utils.TodayString()

	var matches []Match
	switch listType {
	case "host":
		matches, err = mc.repo.GetHostedBy(userID)
	case "guest":
		matches, err = mc.repo.GetGuestOf(userID)
	case "upcoming":
		matches, err = mc.repo.GetUpcoming(userID, today)
	case "past":
		matches, err = mc.repo.GetPast(userID, today)
	default:
		listType = "all"
		matches, err = mc.repo.GetByUser(userID)
	}
	if err != nil {
		log.Printf("list %s matches failed: %v", listType, err)
		responses.InternalServerError(c, "Failed to fetch matches")
		return
	}

	annotated := make([]MatchWithRole, 0, len(matches))
	asHost, asGuest, upcoming := 0, 0, 0
	for _, m := range matches {
		annotated = append(annotated, withRole(m, userID))
		if m.HostID == userID {
			asHost++
		} else {
			asGuest++
		}
		if m.Date >= today {
			upcoming++
		}
	}

	responses.SendSuccess(c, http.StatusOK, "", gin.H{
		"type":    listType,
		"count":   len(annotated),
		"matches": annotated,
		"summary": gin.H{
			"total":    len(annotated),
			"as_host":  asHost,
			"as_guest": asGuest,
			"upcoming": upcoming,
			"past":     len(annotated) - upcoming,
		},
	})
}

// @Summary      Match detail
// @Description  Participant-only view including the opponent snapshot and days until the match.
// @Tags         Matches
// @Produce      json
// @Param        match_id  path  int  true  "Match ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      403  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /matches/{match_id} [get]
// @Security     CookieAuth
func (mc *MatchController) GetMatch(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	id, ok := parseID(c, "match_id")
	if !ok {
		return
	}

	m, err := mc.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			responses.NotFound(c, "Match")
			return
		}
		log.Printf("get match %d failed: %v", id, err)
		responses.InternalServerError(c, "Failed to fetch match")
		return
	}
	if m.HostID != userID && m.GuestID != userID {
		responses.Forbidden(c, "You are not a participant of this match")
		return
	}

	daysUntil := 0
	if d, perr := utils.ParseDate(m.Date); perr == nil {
		daysUntil = int(d.Sub(utils.Today()).Hours() / 24)
	}

	responses.SendSuccess(c, http.StatusOK, "", gin.H{
		"match":            withRole(*m, userID),
		"days_until_match": daysUntil,
		"is_past":          daysUntil < 0,
		"is_today":         daysUntil == 0,
		"is_future":        daysUntil > 0,
	})
}

// @Summary      Decide an application
// @Description  Game-owner decision on a pending application. Approving runs the match-creation transaction: the game becomes matched, the application approved and every sibling rejected, atomically.
// @Tags         Applications
// @Accept       json
// @Produce      json
// @Param        application_id  path  int                       true  "Application ID"
// @Param        decision        body  DecideApplicationRequest  true  "approved or rejected"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      403  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      409  {object}  responses.ErrorResponse "Already processed or already matched"
// @Router       /applications/{application_id} [put]
// @Security     CookieAuth
func (mc *MatchController) DecideApplication(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	id, ok := parseID(c, "application_id")
	if !ok {
		return
	}

	var req DecideApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	if req.Status == "rejected" {
		app, err := mc.repo.RejectApplication(id, userID)
		if err != nil {
			mc.respondDecisionError(c, id, err)
			return
		}
		mc.tags.Invalidate(cache.TagApplications)
		responses.SendSuccess(c, http.StatusOK, "Application rejected", gin.H{"application": app})
		return
	}

	m, err := mc.repo.ApproveApplication(id, userID)
	if err != nil {
		mc.respondDecisionError(c, id, err)
		return
	}

	mc.tags.Invalidate(cache.TagApplications, cache.TagGames)
	responses.SendSuccess(c, http.StatusOK, "Match confirmed", gin.H{"match": m})
}

func (mc *MatchController) respondDecisionError(c *gin.Context, applicationID uint, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		responses.NotFound(c, "Application")
	case errors.Is(err, apperrors.ErrForbidden):
		responses.Forbidden(c, "Only the game owner can decide this application")
	case errors.Is(err, apperrors.ErrConflict):
		responses.Conflict(c, "This application or game has already been processed")
	default:
		log.Printf("decide application %d failed: %v", applicationID, err)
		responses.InternalServerError(c, "Match creation failed")
	}
}

// @Summary      Cancel a match
// @Description  Host or guest dissolves the match: the game reopens and all its applications return to pending. Past matches cannot be cancelled; same-day cancellation is a deployment policy.
// @Tags         Matches
// @Produce      json
// @Param        match_id  path  int  true  "Match ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      400  {object}  responses.ErrorResponse "Date policy"
// @Failure      403  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /matches/{match_id} [delete]
// @Security     CookieAuth
func (mc *MatchController) CancelMatch(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	id, ok := parseID(c, "match_id")
	if !ok {
		return
	}

	m, err := mc.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			responses.NotFound(c, "Match")
			return
		}
		log.Printf("cancel match %d: lookup failed: %v", id, err)
		responses.InternalServerError(c, "Failed to cancel match")
		return
	}
	if m.HostID != userID && m.GuestID != userID {
		responses.Forbidden(c, "You are not a participant of this match")
		return
	}

	if utils.DateBeforeToday(m.Date) {
		responses.BadRequest(c, "A past match cannot be cancelled")
		return
	}
	if utils.DateIsToday(m.Date) && !mc.config.Policy.AllowSameDayCancel {
		responses.BadRequest(c, "A match cannot be cancelled on its own day")
		return
	}

	if err := mc.repo.Cancel(id, userID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			responses.NotFound(c, "Match")
		case errors.Is(err, apperrors.ErrForbidden):
			responses.Forbidden(c, "You are not a participant of this match")
		default:
			log.Printf("cancel match %d failed: %v", id, err)
			responses.InternalServerError(c, "Failed to cancel match")
		}
		return
	}

	mc.tags.Invalidate(cache.TagGames, cache.TagApplications)
	responses.SendSuccess(c, http.StatusOK, "Match cancelled successfully", gin.H{
		"cancelled_match_id": id,
		"details": gin.H{
			"original_date": m.Date,
			"original_time": m.Time,
			"location":      m.Location,
		},
	})
}

func parseID(c *gin.Context, param string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid id parameter")
		return 0, false
	}
	return uint(id), true
}
