package adminapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/flicky/ecom-admin-console/internal/dto"
	"github.com/flicky/ecom-admin-console/internal/model"
)

const productsPath = "/admin/products"

func productPath(id int64) string { return fmt.Sprintf("%s/%d", productsPath, id) }

// ListProducts returns one page of products. Only the filters that are set
// are sent; page and size are passed through unmodified.
func (c *Client) ListProducts(ctx context.Context, f dto.ProductFilter) (*model.Page[model.Product], error) {
	var page model.Page[model.Product]
	if err := c.get(ctx, productsPath, f.Query(), &page); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return &page, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var p model.Product
	if err := c.get(ctx, productPath(id), nil, &p); err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return &p, nil
}

func (c *Client) CreateProduct(ctx context.Context, req dto.ProductCreateRequest) (*model.Product, error) {
	var p model.Product
	if err := c.send(ctx, http.MethodPost, productsPath, nil, req, &p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &p, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, req dto.ProductUpdateRequest) (*model.Product, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var p model.Product
	if err := c.send(ctx, http.MethodPut, productPath(id), nil, req, &p); err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	return &p, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := c.send(ctx, http.MethodDelete, productPath(id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

func (c *Client) AdjustStock(ctx context.Context, id int64, req dto.StockAdjustRequest) (*model.Product, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var p model.Product
	if err := c.send(ctx, http.MethodPut, productPath(id)+"/stock", nil, req, &p); err != nil {
		return nil, fmt.Errorf("adjust stock of product %d: %w", id, err)
	}
	return &p, nil
}
