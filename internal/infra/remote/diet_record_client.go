package remote

import (
	"context"
	"net/http"
	"strconv"

	"dietlog/config"
	"dietlog/internal/domain/entity"
	"dietlog/internal/domain/service"
)

type dietRecordClient struct {
	ep *endpoint
}

// NewDietRecordClient creates the diet-record service client.
func NewDietRecordClient(transport *Transport, cfg *config.Config) (service.DietRecordService, error) {
	ep, err := transport.endpoint("diet-record", cfg.Remote.RecordBaseURL)
	if err != nil {
		return nil, err
	}

	return &dietRecordClient{ep: ep}, nil
}

func dietRecordPath(id int64) string {
	return "/diet-records/" + strconv.FormatInt(id, 10)
}

func (c *dietRecordClient) ListOfficialFoods(ctx context.Context) ([]entity.OfficialFood, error) {
	foods := []entity.OfficialFood{}
	if _, _, err := c.ep.call(ctx, http.MethodGet, "/official-foods", nil, nil, &foods); err != nil {
		return nil, err
	}

	return foods, nil
}

func (c *dietRecordClient) ListDietRecords(ctx context.Context) ([]entity.DietRecord, error) {
	records := []entity.DietRecord{}
	if _, _, err := c.ep.call(ctx, http.MethodGet, "/diet-records", nil, nil, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func (c *dietRecordClient) CreateDietRecord(ctx context.Context, input entity.DietRecordInput) error {
	_, _, err := c.ep.call(ctx, http.MethodPost, "/diet-records", nil, input, nil)

	return err
}

func (c *dietRecordClient) UpdateDietRecord(ctx context.Context, id int64, input entity.DietRecordInput) error {
	_, _, err := c.ep.call(ctx, http.MethodPut, dietRecordPath(id), nil, input, nil)

	return err
}

func (c *dietRecordClient) DeleteDietRecord(ctx context.Context, id int64) error {
	_, _, err := c.ep.call(ctx, http.MethodDelete, dietRecordPath(id), nil, nil, nil)

	return err
}
