package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/GetwithitMan/gwi-pos-sub001/internal/service/allocation"
	"github.com/GetwithitMan/gwi-pos-sub001/pkg/lock"
)

type AllocationHandler struct {
	svc    allocation.Service
	locker *lock.Locker
}

func NewAllocationHandler(svc allocation.Service, locker *lock.Locker) *AllocationHandler {
	return &AllocationHandler{svc: svc, locker: locker}
}

func mapAllocationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, allocation.ErrGroupNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, allocation.ErrSegmentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, allocation.ErrNoActiveOwnership):
		return preconditionFailed(c, err.Error())
	case errors.Is(err, allocation.ErrNoOwners):
		return preconditionFailed(c, err.Error())
	case errors.Is(err, allocation.ErrNegativeFraction):
		return badRequest(c, err.Error())
	case errors.Is(err, allocation.ErrEmptySplit):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

type reconcileBody struct {
	SegmentID   *string `json:"segment_id"`
	Reason      string  `json:"reason"`
	RequestedBy *string `json:"requested_by"`
}

func (b reconcileBody) options() (allocation.Options, error) {
	opts := allocation.Options{Reason: b.Reason}
	if b.SegmentID != nil {
		id, err := uuid.Parse(*b.SegmentID)
		if err != nil {
			return opts, errors.New("invalid segment_id")
		}
		opts.SegmentID = &id
	}
	if b.RequestedBy != nil {
		id, err := uuid.Parse(*b.RequestedBy)
		if err != nil {
			return opts, errors.New("invalid requested_by")
		}
		opts.RequestedBy = &id
	}
	return opts, nil
}

// POST /tips/groups/:id/reconcile
func (h *AllocationHandler) ReconcileGroup(c fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid group id")
	}

	var body reconcileBody
	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(&body); err != nil {
			return badRequest(c, "invalid request body")
		}
	}
	opts, err := body.options()
	if err != nil {
		return badRequest(c, err.Error())
	}

	lease, err := h.locker.Acquire(c.Context(), lock.GroupKey(groupID))
	if errors.Is(err, lock.ErrHeld) {
		return conflict(c, "group reconciliation already in progress")
	}
	if err != nil {
		return internalError(c)
	}
	defer lease.Release(c.Context())

	result, err := h.svc.ReconcileGroup(c.Context(), groupID, opts)
	if err != nil {
		return mapAllocationError(c, err)
	}
	return ok(c, result)
}

// POST /tips/orders/:id/reconcile
func (h *AllocationHandler) ReconcileOrder(c fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	var body reconcileBody
	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(&body); err != nil {
			return badRequest(c, "invalid request body")
		}
	}
	opts, err := body.options()
	if err != nil {
		return badRequest(c, err.Error())
	}

	lease, err := h.locker.Acquire(c.Context(), lock.OrderKey(orderID))
	if errors.Is(err, lock.ErrHeld) {
		return conflict(c, "order reconciliation already in progress")
	}
	if err != nil {
		return internalError(c)
	}
	defer lease.Release(c.Context())

	result, err := h.svc.ReconcileOrder(c.Context(), orderID, opts)
	if err != nil {
		return mapAllocationError(c, err)
	}
	return ok(c, result)
}
