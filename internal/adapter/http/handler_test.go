package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"pocketpet/internal/app/achievements"
	"pocketpet/internal/app/inventory"
	"pocketpet/internal/app/needs"
	"pocketpet/internal/app/ports"
	"pocketpet/internal/app/profile"
	"pocketpet/internal/domain/faults"
	items "pocketpet/internal/domain/inventory"
	"pocketpet/internal/domain/pet"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route/param"
)

type fakePet struct {
	view      profile.StatusView
	result    needs.Result
	inv       inventory.Summary
	board     achievements.Summary
	events    []ports.Event
	err       error
	performed []pet.ActionType
	ate       []string
	bought    []string
	toggled   []string
	byType    []items.ItemType
	limit     int
}

var _ PetService = (*fakePet)(nil)

func (f *fakePet) Status(context.Context) (profile.StatusView, error) { return f.view, nil }

func (f *fakePet) Perform(_ context.Context, a pet.ActionType) (needs.Result, error) {
	f.performed = append(f.performed, a)
	return f.result, f.err
}

func (f *fakePet) Eat(_ context.Context, id string) (pet.State, error) {
	f.ate = append(f.ate, id)
	return f.view.Pet, f.err
}

func (f *fakePet) Rename(_ context.Context, name string) (pet.State, error) {
	if name == "" {
		return pet.State{}, faults.New(faults.ErrInvalidInput, "pet name must not be empty")
	}
	s := f.view.Pet
	s.Name = name
	return s, nil
}

func (f *fakePet) Buy(_ context.Context, id string) (items.Item, error) {
	f.bought = append(f.bought, id)
	return items.Item{}, f.err
}

func (f *fakePet) ToggleEquip(_ context.Context, id string) (items.Item, error) {
	f.toggled = append(f.toggled, id)
	return items.Item{}, f.err
}

func (f *fakePet) Inventory() (inventory.Summary, error) { return f.inv, nil }

func (f *fakePet) ItemsByType(t items.ItemType) ([]items.Item, error) {
	f.byType = append(f.byType, t)
	return []items.Item{}, nil
}

func (f *fakePet) Achievements() (achievements.Summary, error) { return f.board, f.err }

func (f *fakePet) Events(_ context.Context, limit int) ([]ports.Event, error) {
	f.limit = limit
	return f.events, nil
}

func decodeBody(t *testing.T, ctx *app.RequestContext) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v (%s)", err, ctx.Response.Body())
	}
	return body
}

func errorCode(t *testing.T, ctx *app.RequestContext) string {
	t.Helper()
	errObj, _ := decodeBody(t, ctx)["error"].(map[string]any)
	code, _ := errObj["code"].(string)
	return code
}

func TestWriteError_MapsCategories(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{faults.New(faults.ErrNotInitialized, "pet engine not initialized"), consts.StatusServiceUnavailable, "not_initialized"},
		{items.ErrItemNotFound, consts.StatusNotFound, "not_found"},
		{items.ErrNonPositiveAmount, consts.StatusBadRequest, "bad_request"},
		{items.ErrInsufficientFunds, consts.StatusConflict, "conflict"},
		{faults.Persistence("set petState", errors.New("disk full")), consts.StatusInternalServerError, "persistence_failure"},
		{errors.New("boom"), consts.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			ctx := &app.RequestContext{}
			writeError(ctx, tt.err)
			if got := ctx.Response.StatusCode(); got != tt.status {
				t.Fatalf("status mismatch: got=%d want=%d", got, tt.status)
			}
			if got := errorCode(t, ctx); got != tt.code {
				t.Fatalf("error code mismatch: got=%q want=%q", got, tt.code)
			}
		})
	}
}

func TestWriteError_JoinedErrorUsesFirstCategory(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, errors.Join(errors.New("plain"), faults.Persistence("set itemsState", errors.New("io"))))
	if got, want := ctx.Response.StatusCode(), consts.StatusInternalServerError; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got := errorCode(t, ctx); got != "persistence_failure" {
		t.Fatalf("error code = %q", got)
	}
}

func TestPerform_ReturnsAppliedAndStatus(t *testing.T) {
	f := &fakePet{
		result: needs.Result{Applied: true},
		view:   profile.StatusView{},
	}
	f.view.Coins = 10
	h := Handler{Pet: f}
	ctx := &app.RequestContext{}

	h.perform(pet.ActionPlay)(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if len(f.performed) != 1 || f.performed[0] != pet.ActionPlay {
		t.Fatalf("performed = %v", f.performed)
	}
	body := decodeBody(t, ctx)
	if body["applied"] != true {
		t.Fatalf("applied = %v", body["applied"])
	}
	status, _ := body["status"].(map[string]any)
	if status["coins"] != float64(10) {
		t.Fatalf("status.coins = %v", status["coins"])
	}
}

func TestPerform_Error(t *testing.T) {
	h := Handler{Pet: &fakePet{err: faults.New(faults.ErrNotInitialized, "pet engine not initialized")}}
	ctx := &app.RequestContext{}
	h.perform(pet.ActionFeed)(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusServiceUnavailable; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}

func TestEat_RequiresItemID(t *testing.T) {
	f := &fakePet{}
	h := Handler{Pet: f}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{}`))

	h.eat(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if len(f.ate) != 0 {
		t.Fatalf("eat should not reach the service")
	}
}

func TestEat_InvalidJSON(t *testing.T) {
	h := Handler{Pet: &fakePet{}}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"item_id":`))
	h.eat(context.Background(), ctx)
	if got := errorCode(t, ctx); got != "invalid_json" {
		t.Fatalf("error code = %q", got)
	}
}

func TestEat_OK(t *testing.T) {
	f := &fakePet{}
	h := Handler{Pet: f}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"item_id":"premium-food"}`))

	h.eat(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if len(f.ate) != 1 || f.ate[0] != "premium-food" {
		t.Fatalf("ate = %v", f.ate)
	}
}

func TestRename(t *testing.T) {
	h := Handler{Pet: &fakePet{}}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"name":"Pixel"}`))
	h.rename(context.Background(), ctx)
	if got := decodeBody(t, ctx)["name"]; got != "Pixel" {
		t.Fatalf("name = %v", got)
	}

	ctx = &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"name":""}`))
	h.rename(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}

func TestBuy_UsesPathParam(t *testing.T) {
	f := &fakePet{inv: inventory.Summary{Coins: 3, Items: []items.Item{}, Equipped: []string{}}}
	h := Handler{Pet: f}
	ctx := &app.RequestContext{}
	ctx.Params = append(ctx.Params, param.Param{Key: "id", Value: "red-bow"})

	h.buy(context.Background(), ctx)

	if len(f.bought) != 1 || f.bought[0] != "red-bow" {
		t.Fatalf("bought = %v", f.bought)
	}
	if got := decodeBody(t, ctx)["coins"]; got != float64(3) {
		t.Fatalf("coins = %v", got)
	}
}

func TestBuy_InsufficientFunds(t *testing.T) {
	h := Handler{Pet: &fakePet{err: items.ErrInsufficientFunds}}
	ctx := &app.RequestContext{}
	ctx.Params = append(ctx.Params, param.Param{Key: "id", Value: "crown"})
	h.buy(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusConflict; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}

func TestEquip_UsesPathParam(t *testing.T) {
	f := &fakePet{}
	h := Handler{Pet: f}
	ctx := &app.RequestContext{}
	ctx.Params = append(ctx.Params, param.Param{Key: "id", Value: "red-bow"})
	h.equip(context.Background(), ctx)
	if len(f.toggled) != 1 || f.toggled[0] != "red-bow" {
		t.Fatalf("toggled = %v", f.toggled)
	}
}

func TestShopItems_FiltersByType(t *testing.T) {
	f := &fakePet{inv: inventory.Summary{Coins: 7}}
	h := Handler{Pet: f}
	ctx := &app.RequestContext{}
	ctx.Request.SetRequestURI("/api/shop/items?type=food")

	h.shopItems(context.Background(), ctx)

	if len(f.byType) != 1 || f.byType[0] != items.TypeFood {
		t.Fatalf("byType = %v", f.byType)
	}
	if got := decodeBody(t, ctx)["coins"]; got != float64(7) {
		t.Fatalf("coins = %v", got)
	}
}

func TestShopItems_UnknownType(t *testing.T) {
	h := Handler{Pet: &fakePet{}}
	ctx := &app.RequestContext{}
	ctx.Request.SetRequestURI("/api/shop/items?type=weapon")
	h.shopItems(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}

func TestJournal_Limit(t *testing.T) {
	f := &fakePet{events: []ports.Event{{ID: "e1", Type: ports.EventLevelUp, OccurredAt: time.Unix(1700000000, 0).UTC()}}}
	h := Handler{Pet: f}

	ctx := &app.RequestContext{}
	h.journal(context.Background(), ctx)
	if f.limit != defaultJournalLimit {
		t.Fatalf("default limit = %d", f.limit)
	}

	ctx = &app.RequestContext{}
	ctx.Request.SetRequestURI("/api/journal?limit=5")
	h.journal(context.Background(), ctx)
	if f.limit != 5 {
		t.Fatalf("limit = %d, want 5", f.limit)
	}
	events, _ := decodeBody(t, ctx)["events"].([]any)
	if len(events) != 1 {
		t.Fatalf("events = %v", events)
	}

	ctx = &app.RequestContext{}
	ctx.Request.SetRequestURI("/api/journal?limit=soon")
	h.journal(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}

type fakeKPI struct{}

func (fakeKPI) SnapshotAny() any { return map[string]int{"action_total": 2} }

func TestKPI(t *testing.T) {
	ctx := &app.RequestContext{}
	Handler{}.kpi(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}

	ctx = &app.RequestContext{}
	Handler{KPI: fakeKPI{}}.kpi(context.Background(), ctx)
	if got := decodeBody(t, ctx)["action_total"]; got != float64(2) {
		t.Fatalf("action_total = %v", got)
	}
}
