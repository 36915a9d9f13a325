// Package services holds the typed resource clients for the portal backend.
// They are deliberately thin: every call goes through the shared httpx
// pipeline, which attaches CSRF and auth handling and normalizes errors.
package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Gescomph/gescomph-portal/internal/client/httpx"
)

// CRUD is the generic client for the backend's uniform resource endpoints.
// TModel is the read model, TCreate and TUpdate the write payloads. All
// operations require an authenticated session.
type CRUD[TModel, TCreate, TUpdate any] struct {
	api      *httpx.Client
	resource string
}

func NewCRUD[TModel, TCreate, TUpdate any](api *httpx.Client, resource string) *CRUD[TModel, TCreate, TUpdate] {
	return &CRUD[TModel, TCreate, TUpdate]{api: api, resource: resource}
}

func (c *CRUD[TModel, TCreate, TUpdate]) itemPath(id int, suffix string) string {
	p := c.resource + "/" + strconv.Itoa(id)
	if suffix != "" {
		p += "/" + suffix
	}
	return p
}

func (c *CRUD[TModel, TCreate, TUpdate]) GetAll(ctx context.Context) ([]TModel, error) {
	var out []TModel
	err := c.api.JSON(ctx, http.MethodGet, c.resource, nil, &out, httpx.WithRequireAuth())
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.resource, err)
	}
	return out, nil
}

func (c *CRUD[TModel, TCreate, TUpdate]) GetByID(ctx context.Context, id int) (*TModel, error) {
	var out TModel
	err := c.api.JSON(ctx, http.MethodGet, c.itemPath(id, ""), nil, &out, httpx.WithRequireAuth())
	if err != nil {
		return nil, fmt.Errorf("get %s %d: %w", c.resource, id, err)
	}
	return &out, nil
}

func (c *CRUD[TModel, TCreate, TUpdate]) Create(ctx context.Context, in TCreate) (*TModel, error) {
	var out TModel
	err := c.api.JSON(ctx, http.MethodPost, c.resource, in, &out, httpx.WithRequireAuth())
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", c.resource, err)
	}
	return &out, nil
}

func (c *CRUD[TModel, TCreate, TUpdate]) Update(ctx context.Context, id int, in TUpdate) (*TModel, error) {
	var out TModel
	err := c.api.JSON(ctx, http.MethodPut, c.itemPath(id, ""), in, &out, httpx.WithRequireAuth())
	if err != nil {
		return nil, fmt.Errorf("update %s %d: %w", c.resource, id, err)
	}
	return &out, nil
}

func (c *CRUD[TModel, TCreate, TUpdate]) Delete(ctx context.Context, id int) error {
	err := c.api.JSON(ctx, http.MethodDelete, c.itemPath(id, ""), nil, nil, httpx.WithRequireAuth())
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", c.resource, id, err)
	}
	return nil
}

// SoftDelete deactivates the record without removing it.
func (c *CRUD[TModel, TCreate, TUpdate]) SoftDelete(ctx context.Context, id int) error {
	err := c.api.JSON(ctx, http.MethodPatch, c.itemPath(id, "soft-delete"), struct{}{}, nil, httpx.WithRequireAuth())
	if err != nil {
		return fmt.Errorf("soft-delete %s %d: %w", c.resource, id, err)
	}
	return nil
}

// ChangeActiveStatus flips the record's active flag.
func (c *CRUD[TModel, TCreate, TUpdate]) ChangeActiveStatus(ctx context.Context, id int, active bool) error {
	in := map[string]bool{"active": active}
	err := c.api.JSON(ctx, http.MethodPatch, c.itemPath(id, "estado"), in, nil, httpx.WithRequireAuth())
	if err != nil {
		return fmt.Errorf("change %s %d status: %w", c.resource, id, err)
	}
	return nil
}
