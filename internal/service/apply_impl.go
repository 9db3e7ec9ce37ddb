package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/workboard/internal/contract"
	"github.com/alexanderramin/workboard/internal/domain"
	"github.com/alexanderramin/workboard/internal/fixture"
)

// Apply runs scripted mutations in order. A failing op is reported in its
// result and does not stop the ones after it; the returned error is reserved
// for cancellation.
func (s *boardService) Apply(ctx context.Context, ops []fixture.Op) (_ []contract.OpResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"ops": len(ops)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "apply-ops",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	results := make([]contract.OpResult, 0, len(ops))
	failed := 0
	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := s.applyOne(ctx, op)
		res.Index = i
		if res.Code != contract.OpOK {
			failed++
		}
		results = append(results, res)
	}
	fields["failed"] = failed
	return results, nil
}

func (s *boardService) applyOne(ctx context.Context, op fixture.Op) contract.OpResult {
	res := contract.OpResult{Op: string(op.Op), ID: op.ID}
	var err error
	switch op.Op {
	case fixture.OpCreate:
		var form contract.WorkOrderForm
		if form, err = formFromOp(op, nil); err == nil {
			var created *domain.WorkOrder
			if created, err = s.CreateWorkOrder(ctx, op.WorkCenterID, form); err == nil {
				res.ID = created.ID
			}
		}
	case fixture.OpUpdate:
		var existing domain.WorkOrder
		if existing, err = s.store.Get(op.ID); err == nil {
			var form contract.WorkOrderForm
			if op.WorkCenterID != "" && op.WorkCenterID != existing.WorkCenterID {
				// Orders stay on their work center; move one with delete + create.
				err = ValidationErrors{{Field: "work_center_id", Message: "work_center_id cannot be changed by update"}}
			} else if form, err = formFromOp(op, &existing); err == nil {
				_, err = s.UpdateWorkOrder(ctx, op.ID, form)
			}
		}
	case fixture.OpDelete:
		err = s.DeleteWorkOrder(ctx, op.ID)
	default:
		err = ValidationErrors{{Field: "op", Message: fmt.Sprintf("unknown op %q", op.Op)}}
	}
	res.Code = resultCode(err)
	if err != nil {
		res.Message = err.Error()
	}
	return res
}

// formFromOp builds an edit form from an op, keeping the stored value of
// every field the op leaves empty.
func formFromOp(op fixture.Op, existing *domain.WorkOrder) (contract.WorkOrderForm, error) {
	var form contract.WorkOrderForm
	if existing != nil {
		form = contract.WorkOrderForm{
			Name:   existing.Name,
			Status: string(existing.Status),
			Start:  existing.Start,
			End:    existing.End,
		}
	} else {
		form.Status = string(domain.StatusOpen)
	}
	if op.Name != "" {
		form.Name = op.Name
	}
	if op.Status != "" {
		form.Status = op.Status
	}
	if op.StartDate != "" {
		t, err := domain.ParseDate(op.StartDate)
		if err != nil {
			return form, ValidationErrors{{Field: "start_date", Message: err.Error()}}
		}
		form.Start = t
	}
	if op.EndDate != "" {
		t, err := domain.ParseDate(op.EndDate)
		if err != nil {
			return form, ValidationErrors{{Field: "end_date", Message: err.Error()}}
		}
		form.End = t
	}
	return form, nil
}

func resultCode(err error) contract.OpResultCode {
	switch {
	case err == nil:
		return contract.OpOK
	case errors.Is(err, domain.ErrNotFound):
		return contract.OpNotFound
	case errors.Is(err, domain.ErrOverlap):
		return contract.OpOverlap
	default:
		return contract.OpInvalid
	}
}
