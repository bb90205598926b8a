package application

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/keita-f/scrimmage/config"
	"github.com/keita-f/scrimmage/internal/game"
	"github.com/keita-f/scrimmage/internal/middleware"
	"github.com/keita-f/scrimmage/pkg/apperrors"
	"github.com/keita-f/scrimmage/pkg/cache"
	"github.com/keita-f/scrimmage/pkg/responses"
	"github.com/keita-f/scrimmage/pkg/validator"
	"github.com/keita-f/scrimmage/utils"
)

// ApplicationController handles submitting, listing and withdrawing
// applications. Owner decisions on applications (approve/reject) live with
// the match state machine, not here.
type ApplicationController struct {
	repo     ApplicationRepository
	gameRepo game.GameRepository
	config   *config.Config
	tags     *cache.Registry
}

func NewApplicationController(repo ApplicationRepository, gameRepo game.GameRepository, cfg *config.Config, tags *cache.Registry) *ApplicationController {
	return &ApplicationController{repo: repo, gameRepo: gameRepo, config: cfg, tags: tags}
}

type CreateApplicationRequest struct {
	GameID            uint   `json:"game_id" binding:"required"`
	ApplicantTeamName string `json:"applicant_team_name" binding:"required,min=1,max=100"`
	ApplicantContact  string `json:"applicant_contact" binding:"required,min=1,max=200"`
	Message           string `json:"message" binding:"omitempty,max=2000"`
}

// @Summary      List applications
// @Description  type=sent lists the caller's submitted applications (default); type=received lists applications against the caller's games.
// @Tags         Applications
// @Produce      json
// @Param        type  query  string  false  "sent or received"
// @Success      200  {object}  responses.SuccessResponse{data=[]ApplicationWithGame}
// @Router       /applications [get]
// @Security     CookieAuth
func (a *ApplicationController) ListApplications(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	c.Header("ETag", a.tags.ETag(cache.TagApplications))

	listType := c.Query("type")
	var rows []ApplicationWithGame
	if listType == "received" {
		rows, err = a.repo.GetReceivedByOwner(userID)
	} else {
		listType = "sent"
		rows, err = a.repo.GetSentByUser(userID)
	}
	if err != nil {
		log.Printf("list %s applications failed: %v", listType, err)
		responses.InternalServerError(c, "Failed to fetch applications")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", gin.H{
		"type":         listType,
		"count":        len(rows),
		"applications": rows,
	})
}

// @Summary      Application detail
// @Description  Visible to the applicant and the owner of the targeted game.
// @Tags         Applications
// @Produce      json
// @Param        application_id  path  int  true  "Application ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      403  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /applications/{application_id} [get]
// @Security     CookieAuth
func (a *ApplicationController) GetApplication(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	id, ok := parseID(c, "application_id")
	if !ok {
		return
	}

	app, err := a.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			responses.NotFound(c, "Application")
			return
		}
		log.Printf("get application %d failed: %v", id, err)
		responses.InternalServerError(c, "Failed to fetch application")
		return
	}

	g, err := a.gameRepo.GetByID(app.GameID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		log.Printf("get application %d: game lookup failed: %v", id, err)
		responses.InternalServerError(c, "Failed to fetch application")
		return
	}

	isOwner := g != nil && g.OwnerID == userID
	if app.ApplicantID != userID && !isOwner {
		responses.Forbidden(c, "You are not a party to this application")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", gin.H{
		"application": app,
		"game":        g,
	})
}

// @Summary      Apply to a game
// @Description  Submit an application for an open, future-dated game posted by someone else. One application per game per user.
// @Tags         Applications
// @Accept       json
// @Produce      json
// @Param        application  body  CreateApplicationRequest  true  "Application details"
// @Success      201  {object}  responses.SuccessResponse{data=Application}
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      403  {object}  responses.ErrorResponse "Own game"
// @Failure      404  {object}  responses.ErrorResponse "Game not found"
// @Failure      409  {object}  responses.ErrorResponse "Duplicate or game not open"
// @Router       /applications [post]
// @Security     CookieAuth
func (a *ApplicationController) CreateApplication(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	g, err := a.gameRepo.GetByID(req.GameID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			responses.NotFound(c, "Game")
			return
		}
		log.Printf("apply: game %d lookup failed: %v", req.GameID, err)
		responses.InternalServerError(c, "Failed to submit application")
		return
	}

	if g.OwnerID == userID {
		responses.Forbidden(c, "You cannot apply to your own game")
		return
	}
	if g.Status != game.StatusOpen {
		responses.Conflict(c, "This game is no longer open")
		return
	}
	if utils.DateBeforeToday(g.Date) {
		responses.BadRequest(c, "This game's date has already passed")
		return
	}

	exists, err := a.repo.Exists(req.GameID, userID)
	if err != nil {
		log.Printf("apply: duplicate check failed: %v", err)
		responses.InternalServerError(c, "Failed to submit application")
		return
	}
	if exists {
		responses.Conflict(c, "You have already applied to this game")
		return
	}

	app := &Application{
		GameID:            req.GameID,
		ApplicantID:       userID,
		ApplicantTeamName: req.ApplicantTeamName,
		ApplicantContact:  req.ApplicantContact,
		Message:           req.Message,
		Status:            StatusPending,
		AppliedAt:         time.Now(),
	}
	if err := a.repo.Create(app); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			responses.Conflict(c, "You have already applied to this game")
			return
		}
		log.Printf("apply: create failed: %v", err)
		responses.InternalServerError(c, "Failed to submit application")
		return
	}

	a.tags.Invalidate(cache.TagApplications)
	responses.SendSuccess(c, http.StatusCreated, "Application submitted successfully", app)
}

// @Summary      Withdraw an application
// @Description  Applicant-only; permitted only while the application is pending.
// @Tags         Applications
// @Produce      json
// @Param        application_id  path  int  true  "Application ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      403  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      409  {object}  responses.ErrorResponse "Already processed"
// @Router       /applications/{application_id} [delete]
// @Security     CookieAuth
func (a *ApplicationController) DeleteApplication(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	id, ok := parseID(c, "application_id")
	if !ok {
		return
	}

	app, err := a.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			responses.NotFound(c, "Application")
			return
		}
		log.Printf("withdraw application %d: lookup failed: %v", id, err)
		responses.InternalServerError(c, "Failed to withdraw application")
		return
	}

	if app.ApplicantID != userID {
		responses.Forbidden(c, "Only the applicant can withdraw this application")
		return
	}
	if app.Status != StatusPending {
		responses.Conflict(c, "A processed application cannot be withdrawn")
		return
	}

	if err := a.repo.Delete(id, userID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			responses.Conflict(c, "A processed application cannot be withdrawn")
			return
		}
		log.Printf("withdraw application %d failed: %v", id, err)
		responses.InternalServerError(c, "Failed to withdraw application")
		return
	}

	a.tags.Invalidate(cache.TagApplications)
	responses.SendSuccess(c, http.StatusOK, "Application withdrawn successfully", gin.H{"deleted_application_id": id})
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
