package hooks

import (
	"context"
	"log/slog"

	"github.com/flicky/ecom-admin-console/internal/dto"
	"github.com/flicky/ecom-admin-console/internal/model"
)

type UsersAPI interface {
	ListUsers(ctx context.Context, f dto.UserFilter) ([]model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
}

type UsersState struct {
	Users     []model.User `json:"users"`
	IsLoading bool         `json:"isLoading"`
	Error     string       `json:"error"`
}

// Users is read-only; the console does not edit customer accounts.
type Users struct {
	api UsersAPI
	l   *loader[[]model.User, dto.UserFilter]
	log *slog.Logger
}

func NewUsers(api UsersAPI, filters dto.UserFilter, opts ...Option) *Users {
	h := &Users{api: api}
	h.l = newLoader("users", filters, api.ListUsers, opts)
	h.log = h.l.log
	return h
}

func (h *Users) Mount(ctx context.Context)  { h.l.mount(ctx) }
func (h *Users) Unmount()                   { h.l.unmount() }
func (h *Users) Reload(ctx context.Context) { h.l.load(ctx) }

func (h *Users) SetFilters(ctx context.Context, f dto.UserFilter) { h.l.setFilters(ctx, f) }

func (h *Users) State() UsersState {
	items, loading, errMsg := h.l.snapshot()
	return UsersState{Users: append([]model.User{}, items...), IsLoading: loading, Error: errMsg}
}

func (h *Users) Get(ctx context.Context, id int64) (*model.User, error) {
	return fetchOne(ctx, h.log, "get user", func(ctx context.Context) (*model.User, error) {
		return h.api.GetUser(ctx, id)
	})
}
