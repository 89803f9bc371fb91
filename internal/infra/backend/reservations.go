package backend

import (
	"context"
	"log/slog"
	"net/http"

	"rental-storefront/internal/domain/reservation"
	"rental-storefront/internal/usecase"
)

func (c *Client) CreateReservation(ctx context.Context, token string, req usecase.ReservationRequest) (reservation.Confirmation, error) {
	body := createReservationRequest{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		StartDate: reservation.FormatDate(req.StartDate),
		EndDate:   reservation.FormatDate(req.EndDate),
	}

	var resp createReservationResponse
	if err := c.do(ctx, http.MethodPost, "/api/customer/reservation/create", token, body, &resp); err != nil {
		return reservation.Confirmation{}, err
	}
	return resp.toConfirmation(), nil
}

func (c *Client) ReservationHistory(ctx context.Context, token, userID string) ([]reservation.Record, error) {
	var rows []reservationDTO
	if err := c.do(ctx, http.MethodGet, pathf("/api/customer/reservation/history/%s", userID), token, nil, &rows); err != nil {
		return nil, err
	}

	records := make([]reservation.Record, 0, len(rows))
	for _, row := range rows {
		rec, ok := row.toDomain()
		if !ok {
			c.logger.Warn("skipping reservation with unreadable dates",
				slog.String("reservation_id", row.ID.String()))
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
