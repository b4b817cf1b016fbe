package remote

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"dietlog/config"
	"dietlog/internal/domain/entity"
	"dietlog/internal/domain/service"
)

type customFoodClient struct {
	ep *endpoint
}

// NewCustomFoodClient creates the custom-food service client.
func NewCustomFoodClient(transport *Transport, cfg *config.Config) (service.CustomFoodService, error) {
	ep, err := transport.endpoint("custom-food", cfg.Remote.FoodBaseURL)
	if err != nil {
		return nil, err
	}

	return &customFoodClient{ep: ep}, nil
}

func customFoodPath(id int64) string {
	return "/customer-foods/" + strconv.FormatInt(id, 10)
}

func (c *customFoodClient) ListCustomFoods(ctx context.Context, userID entity.UserID) ([]entity.CustomFood, error) {
	query := url.Values{}
	query.Set("user_id", string(userID))

	foods := []entity.CustomFood{}
	if _, _, err := c.ep.call(ctx, http.MethodGet, "/customer-foods", query, nil, &foods); err != nil {
		return nil, err
	}

	return foods, nil
}

func (c *customFoodClient) CreateCustomFood(ctx context.Context, input entity.CustomFoodInput) (*entity.CustomFood, error) {
	return c.save(ctx, http.MethodPost, "/customer-foods", input)
}

func (c *customFoodClient) UpdateCustomFood(ctx context.Context, id int64, input entity.CustomFoodInput) (*entity.CustomFood, error) {
	return c.save(ctx, http.MethodPut, customFoodPath(id), input)
}

func (c *customFoodClient) save(ctx context.Context, method, path string, input entity.CustomFoodInput) (*entity.CustomFood, error) {
	var food entity.CustomFood
	_, decoded, err := c.ep.call(ctx, method, path, nil, input, &food)
	if err != nil {
		return nil, err
	}
	if !decoded || food.ID == 0 {
		return nil, nil
	}

	return &food, nil
}

func (c *customFoodClient) DeleteCustomFood(ctx context.Context, id int64) error {
	_, _, err := c.ep.call(ctx, http.MethodDelete, customFoodPath(id), nil, nil, nil)

	return err
}
