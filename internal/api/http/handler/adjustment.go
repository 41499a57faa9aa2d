package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/GetwithitMan/gwi-pos-sub001/internal/service/adjustment"
)

type AdjustmentHandler struct {
	svc adjustment.Service
}

func NewAdjustmentHandler(svc adjustment.Service) *AdjustmentHandler {
	return &AdjustmentHandler{svc: svc}
}

func mapAdjustmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, adjustment.ErrReasonRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, adjustment.ErrMissingLocation):
		return badRequest(c, err.Error())
	case errors.Is(err, adjustment.ErrMissingEmployee):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /tips/adjustments
func (h *AdjustmentHandler) ApplyManual(c fiber.Ctx) error {
	var body struct {
		LocationID  string           `json:"location_id"`
		Reason      string           `json:"reason"`
		RequestedBy *string          `json:"requested_by"`
		Before      map[string]int64 `json:"before"`
		After       map[string]int64 `json:"after"`
		Deltas      []struct {
			EmployeeID string `json:"employee_id"`
			DeltaCents int64  `json:"delta_cents"`
		} `json:"deltas"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	locationID, err := uuid.Parse(body.LocationID)
	if err != nil {
		return badRequest(c, "invalid location_id")
	}

	in := adjustment.ManualInput{
		LocationID: locationID,
		Reason:     body.Reason,
		Before:     body.Before,
		After:      body.After,
	}
	if body.RequestedBy != nil {
		id, err := uuid.Parse(*body.RequestedBy)
		if err != nil {
			return badRequest(c, "invalid requested_by")
		}
		in.RequestedBy = &id
	}
	for _, d := range body.Deltas {
		empID, err := uuid.Parse(d.EmployeeID)
		if err != nil {
			return badRequest(c, "invalid employee_id in deltas")
		}
		in.Deltas = append(in.Deltas, adjustment.ManualDelta{
			EmployeeID: empID,
			DeltaCents: d.DeltaCents,
		})
	}

	result, err := h.svc.ApplyManual(c.Context(), in)
	if err != nil {
		return mapAdjustmentError(c, err)
	}
	return created(c, result)
}

// GET /tips/adjustments
func (h *AdjustmentHandler) List(c fiber.Ctx) error {
	var q struct {
		LocationID string `query:"location_id"`
		Type       string `query:"type"`
		From       string `query:"from"`
		To         string `query:"to"`
		Page       int    `query:"page"`
		PerPage    int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	var filter adjustment.Filter
	if q.LocationID != "" {
		id, err := uuid.Parse(q.LocationID)
		if err != nil {
			return badRequest(c, "invalid location_id")
		}
		filter.LocationID = &id
	}
	if q.Type != "" {
		filter.AdjustmentType = &q.Type
	}
	if q.From != "" {
		from, err := time.Parse(time.RFC3339, q.From)
		if err != nil {
			return badRequest(c, "invalid from timestamp")
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := time.Parse(time.RFC3339, q.To)
		if err != nil {
			return badRequest(c, "invalid to timestamp")
		}
		filter.To = &to
	}

	adjustments, total, err := h.svc.ListAdjustments(c.Context(), filter, q.Page, q.PerPage)
	if err != nil {
		return mapAdjustmentError(c, err)
	}
	return ok(c, fiber.Map{"adjustments": adjustments, "total": total})
}
