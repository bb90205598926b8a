package game

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/keita-f/scrimmage/config"
	"github.com/keita-f/scrimmage/internal/middleware"
	"github.com/keita-f/scrimmage/pkg/apperrors"
	"github.com/keita-f/scrimmage/pkg/cache"
	"github.com/keita-f/scrimmage/pkg/responses"
	"github.com/keita-f/scrimmage/pkg/validator"
	"github.com/keita-f/scrimmage/utils"
)

// GameController handles API requests for game slots.
type GameController struct {
	repo   GameRepository
	config *config.Config
	tags   *cache.Registry
}

func NewGameController(repo GameRepository, cfg *config.Config, tags *cache.Registry) *GameController {
	return &GameController{repo: repo, config: cfg, tags: tags}
}

type CreateGameRequest struct {
	TeamName    string `json:"team_name" binding:"required,min=1,max=100"`
	Sport       string `json:"sport" binding:"required,min=1,max=50"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Time        string `json:"time" binding:"required,datetime=15:04"`
	Location    string `json:"location" binding:"required,min=1,max=200"`
	Contact     string `json:"contact" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
}

type UpdateGameRequest struct {
	Status string `json:"status" binding:"required,oneof=open matched"`
}

// @Summary      List games
// @Description  Open games ordered by date, optionally filtered by sport, or the caller's own games with ?mine=true.
// @Tags         Games
// @Produce      json
// @Param        sport  query  string  false  "Sport filter ('all' disables)"
// @Param        mine   query  bool    false  "List the acting user's games"
// @Success      200  {object}  responses.SuccessResponse{data=[]Game}
// @Router       /games [get]
func (gc *GameController) ListGames(c *gin.Context) {
	c.Header("ETag", gc.tags.ETag(cache.TagGames))

	if c.Query("mine") == "true" {
		userID, err := middleware.GetUserIDFromContext(c)
		if err != nil {
			responses.Unauthorized(c, "Sign in to list your games")
			return
		}
		games, err := gc.repo.GetByOwner(userID)
		if err != nil {
			log.Printf("list games by owner failed: %v", err)
			responses.InternalServerError(c, "Failed to fetch games")
			return
		}
		responses.SendSuccess(c, http.StatusOK, "", games)
		return
	}

	sport := c.Query("sport")
	var (
		games []Game
		err   error
	)
	if sport != "" && sport != "all" {
		games, err = gc.repo.GetBySport(sport)
	} else {
		games, err = gc.repo.GetAllOpen()
	}
	if err != nil {
		log.Printf("list games failed: %v", err)
		responses.InternalServerError(c, "Failed to fetch games")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", games)
}

// @Summary      Search games
// @Description  Case-insensitive substring search over team name, sport, location and description.
// @Tags         Games
// @Produce      json
// @Param        q  query  string  true  "Search keyword"
// @Success      200  {object}  responses.SuccessResponse{data=[]Game}
// @Router       /games/search [get]
func (gc *GameController) SearchGames(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("q"))
	if keyword == "" {
		responses.BadRequest(c, "Search keyword is required")
		return
	}

	c.Header("ETag", gc.tags.ETag(cache.TagGames))

	games, err := gc.repo.Search(keyword)
	if err != nil {
		log.Printf("search games failed: %v", err)
		responses.InternalServerError(c, "Failed to search games")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", games)
}

// @Summary      Game detail
// @Tags         Games
// @Produce      json
// @Param        game_id  path  int  true  "Game ID"
// @Success      200  {object}  responses.SuccessResponse{data=Game}
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /games/{game_id} [get]
func (gc *GameController) GetGame(c *gin.Context) {
	id, ok := parseID(c, "game_id")
	if !ok {
		return
	}

	g, err := gc.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			responses.NotFound(c, "Game")
			return
		}
		log.Printf("get game %d failed: %v", id, err)
		responses.InternalServerError(c, "Failed to fetch game")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", g)
}

// @Summary      Post a game
// @Description  Create an open game slot. The date must be today or later.
// @Tags         Games
// @Accept       json
// @Produce      json
// @Param        game  body  CreateGameRequest  true  "Game details"
// @Success      201  {object}  responses.SuccessResponse{data=Game}
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /games [post]
// @Security     CookieAuth
func (gc *GameController) CreateGame(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	if utils.DateBeforeToday(req.Date) {
		responses.BadRequest(c, "Game date must not be in the past")
		return
	}

	g := &Game{
		TeamName:    req.TeamName,
		Sport:       req.Sport,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Contact:     req.Contact,
		Description: req.Description,
		Status:      StatusOpen,
		OwnerID:     userID,
	}
	if err := gc.repo.Create(g); err != nil {
		log.Printf("create game failed: %v", err)
		responses.InternalServerError(c, "Failed to create game")
		return
	}

	gc.tags.Invalidate(cache.TagGames)
	responses.SendSuccess(c, http.StatusCreated, "Game created successfully", g)
}

// @Summary      Update a game
// @Description  Owner-only status update.
// @Tags         Games
// @Accept       json
// @Produce      json
// @Param        game_id  path  int                true  "Game ID"
// @Param        game     body  UpdateGameRequest  true  "New status"
// @Success      200  {object}  responses.SuccessResponse{data=Game}
// @Failure      403  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /games/{game_id} [put]
// @Security     CookieAuth
func (gc *GameController) UpdateGame(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	id, ok := parseID(c, "game_id")
	if !ok {
		return
	}

	var req UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	existing, err := gc.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			responses.NotFound(c, "Game")
			return
		}
		log.Printf("update game %d: lookup failed: %v", id, err)
		responses.InternalServerError(c, "Failed to update game")
		return
	}
	if existing.OwnerID != userID {
		responses.Forbidden(c, "Only the game owner can edit this game")
		return
	}

	if err := gc.repo.UpdateStatus(id, GameStatus(req.Status), userID); err != nil {
		log.Printf("update game %d failed: %v", id, err)
		responses.InternalServerError(c, "Failed to update game")
		return
	}

	updated, err := gc.repo.GetByID(id)
	if err != nil {
		log.Printf("update game %d: refetch failed: %v", id, err)
		responses.InternalServerError(c, "Failed to update game")
		return
	}

	gc.tags.Invalidate(cache.TagGames)
	responses.SendSuccess(c, http.StatusOK, "Game updated successfully", updated)
}

// @Summary      Delete a game
// @Description  Owner-only; permitted only while the game is open.
// @Tags         Games
// @Produce      json
// @Param        game_id  path  int  true  "Game ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      403  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      409  {object}  responses.ErrorResponse "Game already matched"
// @Router       /games/{game_id} [delete]
// @Security     CookieAuth
func (gc *GameController) DeleteGame(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	id, ok := parseID(c, "game_id")
	if !ok {
		return
	}

	existing, err := gc.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			responses.NotFound(c, "Game")
			return
		}
		log.Printf("delete game %d: lookup failed: %v", id, err)
		responses.InternalServerError(c, "Failed to delete game")
		return
	}
	if existing.OwnerID != userID {
		responses.Forbidden(c, "Only the game owner can delete this game")
		return
	}
	if existing.Status == StatusMatched {
		responses.Conflict(c, "A matched game cannot be deleted; cancel the match first")
		return
	}

	if err := gc.repo.Delete(id, userID); err != nil {
		log.Printf("delete game %d failed: %v", id, err)
		responses.InternalServerError(c, "Failed to delete game")
		return
	}

	gc.tags.Invalidate(cache.TagGames)
	responses.SendSuccess(c, http.StatusOK, "Game deleted successfully", gin.H{"deleted_game_id": id})
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
