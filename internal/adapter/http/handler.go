package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strconv"
	"strings"

	"pocketpet/internal/app/achievements"
	"pocketpet/internal/app/inventory"
	"pocketpet/internal/app/needs"
	"pocketpet/internal/app/ports"
	"pocketpet/internal/app/profile"
	"pocketpet/internal/domain/faults"
	items "pocketpet/internal/domain/inventory"
	"pocketpet/internal/domain/pet"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const defaultJournalLimit = 50

// PetService is the part of profile.Profile the API serves.
type PetService interface {
	Status(ctx context.Context) (profile.StatusView, error)
	Perform(ctx context.Context, action pet.ActionType) (needs.Result, error)
	Eat(ctx context.Context, itemID string) (pet.State, error)
	Rename(ctx context.Context, name string) (pet.State, error)
	Buy(ctx context.Context, itemID string) (items.Item, error)
	ToggleEquip(ctx context.Context, itemID string) (items.Item, error)
	Inventory() (inventory.Summary, error)
	ItemsByType(t items.ItemType) ([]items.Item, error)
	Achievements() (achievements.Summary, error)
	Events(ctx context.Context, limit int) ([]ports.Event, error)
}

var _ PetService = (*profile.Profile)(nil)

type Handler struct {
	Pet PetService
	KPI kpiSnapshotProvider

	// AllowOrigin is sent in CORS responses; empty allows any origin.
	AllowOrigin string
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware(h.AllowOrigin))

	p := s.Group("/api/pet")
	p.GET("/status", h.status)
	for _, a := range pet.Actions {
		p.POST("/"+string(a), h.perform(a))
	}
	p.POST("/eat", h.eat)
	p.POST("/rename", h.rename)

	shop := s.Group("/api/shop")
	shop.GET("/items", h.shopItems)
	shop.POST("/items/:id/buy", h.buy)
	shop.POST("/items/:id/equip", h.equip)

	s.GET("/api/achievements", h.achievements)
	s.GET("/api/journal", h.journal)
	s.GET("/ops/kpi", h.kpi)
}

type eatRequest struct {
	ItemID string `json:"item_id"`
}

type renameRequest struct {
	Name string `json:"name"`
}

type actionResponse struct {
	Applied bool               `json:"applied"`
	Status  profile.StatusView `json:"status"`
}

type shopResponse struct {
	Items []items.Item `json:"items"`
	Coins int          `json:"coins"`
}

type journalResponse struct {
	Events []ports.Event `json:"events"`
}

var errMissingItemID = faults.New(faults.ErrInvalidInput, "item_id is required")

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	resp, err := h.Pet.Status(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) perform(action pet.ActionType) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		res, err := h.Pet.Perform(c, action)
		if err != nil {
			writeError(ctx, err)
			return
		}
		view, err := h.Pet.Status(c)
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, actionResponse{Applied: res.Applied, Status: view})
	}
}

func (h Handler) eat(c context.Context, ctx *app.RequestContext) {
	var body eatRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if strings.TrimSpace(body.ItemID) == "" {
		writeError(ctx, errMissingItemID)
		return
	}
	if _, err := h.Pet.Eat(c, body.ItemID); err != nil {
		writeError(ctx, err)
		return
	}
	h.status(c, ctx)
}

func (h Handler) rename(c context.Context, ctx *app.RequestContext) {
	var body renameRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	s, err := h.Pet.Rename(c, body.Name)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, s)
}

func (h Handler) shopItems(_ context.Context, ctx *app.RequestContext) {
	inv, err := h.Pet.Inventory()
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp := shopResponse{Items: inv.Items, Coins: inv.Coins}
	if raw := strings.TrimSpace(string(ctx.Query("type"))); raw != "" {
		t := items.ItemType(raw)
		if !slices.Contains(items.Types, t) {
			writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "unknown item type "+strconv.Quote(raw))
			return
		}
		filtered, err := h.Pet.ItemsByType(t)
		if err != nil {
			writeError(ctx, err)
			return
		}
		resp.Items = filtered
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) buy(c context.Context, ctx *app.RequestContext) {
	if _, err := h.Pet.Buy(c, ctx.Param("id")); err != nil {
		writeError(ctx, err)
		return
	}
	h.inventory(ctx)
}

func (h Handler) equip(c context.Context, ctx *app.RequestContext) {
	if _, err := h.Pet.ToggleEquip(c, ctx.Param("id")); err != nil {
		writeError(ctx, err)
		return
	}
	h.inventory(ctx)
}

func (h Handler) inventory(ctx *app.RequestContext) {
	inv, err := h.Pet.Inventory()
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, inv)
}

func (h Handler) achievements(_ context.Context, ctx *app.RequestContext) {
	board, err := h.Pet.Achievements()
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, board)
}

func (h Handler) journal(c context.Context, ctx *app.RequestContext) {
	limit := defaultJournalLimit
	if raw := string(ctx.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	events, err := h.Pet.Events(c, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, journalResponse{Events: events})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	kind := faults.Kind(err)
	switch {
	case errors.Is(kind, faults.ErrNotInitialized):
		writeErrorBody(ctx, consts.StatusServiceUnavailable, "not_initialized", err.Error())
	case errors.Is(kind, faults.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(kind, faults.ErrInvalidInput):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(kind, faults.ErrStateConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	case errors.Is(kind, faults.ErrPersistence):
		writeErrorBody(ctx, consts.StatusInternalServerError, "persistence_failure", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
