package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/workboard/internal/contract"
	"github.com/alexanderramin/workboard/internal/domain"
	"github.com/alexanderramin/workboard/internal/layout"
	"github.com/alexanderramin/workboard/internal/timescale"
	"github.com/google/uuid"
)

type boardService struct {
	store     WorkOrderStore
	layout    *layout.Cache
	validator *FormValidator
	observer  UseCaseObserver
	now       func() time.Time
}

// NewBoardService wires the board use cases over a store and its layout cache.
func NewBoardService(store WorkOrderStore, cache *layout.Cache, observers ...UseCaseObserver) BoardService {
	return &boardService{
		store:     store,
		layout:    cache,
		validator: NewFormValidator(),
		observer:  useCaseObserverOrNoop(observers),
		now:       time.Now,
	}
}

func (s *boardService) CreateWorkOrder(ctx context.Context, workCenterID string, form contract.WorkOrderForm) (_ *domain.WorkOrder, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"work_center_id": workCenterID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "create-work-order",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err := s.validator.Validate(form); err != nil {
		return nil, err
	}
	if _, err := s.store.WorkCenter(workCenterID); err != nil {
		return nil, err
	}

	o := domain.WorkOrder{
		ID:           uuid.New().String(),
		WorkCenterID: workCenterID,
		Name:         form.Name,
		Status:       domain.WorkOrderStatus(form.Status),
		Start:        domain.DateOf(form.Start),
		End:          domain.DateOf(form.End),
	}
	fields["work_order_id"] = o.ID

	if err := s.rejectOverlap(o.WorkCenterID, o.Start, o.End, ""); err != nil {
		return nil, err
	}
	if err := s.store.Insert(o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *boardService) UpdateWorkOrder(ctx context.Context, id string, form contract.WorkOrderForm) (_ *domain.WorkOrder, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"work_order_id": id}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "update-work-order",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err := s.validator.Validate(form); err != nil {
		return nil, err
	}
	existing, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	fields["work_center_id"] = existing.WorkCenterID

	start, end := domain.DateOf(form.Start), domain.DateOf(form.End)
	if err := s.rejectOverlap(existing.WorkCenterID, start, end, id); err != nil {
		return nil, err
	}

	status := domain.WorkOrderStatus(form.Status)
	patch := domain.Patch{Name: &form.Name, Status: &status, Start: &start, End: &end}
	if err := s.store.Update(id, patch); err != nil {
		return nil, err
	}
	updated, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *boardService) DeleteWorkOrder(ctx context.Context, id string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "delete-work-order",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"work_order_id": id},
		})
	}()
	return s.store.Delete(id)
}

func (s *boardService) CheckOverlap(ctx context.Context, req contract.OverlapRequest) (_ *contract.OverlapResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"work_center_id": req.WorkCenterID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "check-overlap",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if req.End.Before(req.Start) {
		return nil, ValidationErrors{{Field: "end_date", Message: "end_date must not be before start_date"}}
	}
	conflicts := s.store.Conflicts(req.WorkCenterID, domain.DateOf(req.Start), domain.DateOf(req.End), req.ExcludeID)
	resp := &contract.OverlapResponse{Overlap: len(conflicts) > 0}
	for _, c := range conflicts {
		resp.Conflicts = append(resp.Conflicts, c.ID)
	}
	fields["overlap"] = resp.Overlap
	return resp, nil
}

func (s *boardService) ListWorkOrders(ctx context.Context, workCenterID string) (_ []domain.WorkOrder, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"work_center_id": workCenterID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "list-work-orders",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var orders []domain.WorkOrder
	if workCenterID == "" {
		orders = s.store.All()
	} else {
		if _, err := s.store.WorkCenter(workCenterID); err != nil {
			return nil, err
		}
		orders = s.store.AllForResource(workCenterID)
	}
	fields["orders"] = len(orders)
	return orders, nil
}

func (s *boardService) ListWorkCenters(ctx context.Context) (_ []domain.WorkCenter, err error) {
	startedAt := time.Now().UTC()
	centers := s.store.WorkCenters()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "list-work-centers",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"work_centers": len(centers)},
		})
	}()
	return centers, nil
}

func (s *boardService) Board(ctx context.Context, req contract.BoardRequest) (_ *contract.BoardResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"timescale": req.Timescale}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "board",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	ts := timescale.Day
	if req.Timescale != "" {
		if ts, err = timescale.Parse(req.Timescale); err != nil {
			return nil, err
		}
	}
	today := s.now()
	if req.Today != nil {
		today = *req.Today
	}
	today = domain.DateOf(today)
	from, to := timescale.DefaultRange(today)
	if req.From != nil {
		from = domain.DateOf(*req.From)
	}
	if req.To != nil {
		to = domain.DateOf(*req.To)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("board range ends %s before it starts %s", domain.FormatDate(to), domain.FormatDate(from))
	}
	laneHeight := req.LaneHeight
	if laneHeight <= 0 {
		laneHeight = timescale.DefaultLaneHeight
	}

	centers, err := s.selectWorkCenters(req.WorkCenterIDs)
	if err != nil {
		return nil, err
	}

	px := timescale.ConfigFor(ts).PxPerUnit
	units := timescale.UnitSlice(ts, from, to)
	resp := &contract.BoardResponse{
		Timescale:  string(ts),
		From:       domain.FormatDate(from),
		To:         domain.FormatDate(to),
		PxPerUnit:  px,
		TotalWidth: len(units) * px,
		Units:      make([]contract.GridUnit, 0, len(units)),
		Rows:       make([]contract.BoardRow, 0, len(centers)),
	}
	for _, u := range units {
		resp.Units = append(resp.Units, contract.GridUnit{
			Date:   domain.FormatDate(u),
			Label:  timescale.Label(ts, u),
			Offset: timescale.Offset(ts, from, u),
		})
	}
	for _, h := range timescale.HeaderSpans(units) {
		resp.Headers = append(resp.Headers, contract.HeaderSpan{Label: h.Label, Span: h.Span, Width: h.Span * px})
	}
	if off, ok := timescale.TodayOffset(ts, from, to, today); ok {
		resp.TodayOffset = &off
	}

	for _, wc := range centers {
		resp.Rows = append(resp.Rows, s.buildRow(ts, from, wc, laneHeight))
	}
	fields["rows"] = len(resp.Rows)
	return resp, nil
}

func (s *boardService) buildRow(ts timescale.Timescale, from time.Time, wc domain.WorkCenter, laneHeight int) contract.BoardRow {
	placements := s.layout.Placements(wc.ID)
	row := contract.BoardRow{
		WorkCenterID:   wc.ID,
		WorkCenterName: wc.Name,
		Lanes:          max(layout.LaneCount(placements), 1),
		Height:         layout.RowHeight(placements, laneHeight, timescale.RowPadding),
		Bars:           make([]contract.BarView, 0, len(placements)),
	}
	for _, p := range placements {
		bar := timescale.BarFor(ts, from, p.Order.Start, p.Order.End, p.Lane, laneHeight)
		row.Bars = append(row.Bars, contract.BarView{
			WorkOrderID: p.Order.ID,
			Name:        p.Order.Name,
			Status:      string(p.Order.Status),
			StartDate:   domain.FormatDate(p.Order.Start),
			EndDate:     domain.FormatDate(p.Order.End),
			Lane:        p.Lane,
			Left:        bar.Left,
			Width:       bar.Width,
			Top:         bar.Top,
		})
	}
	return row
}

func (s *boardService) selectWorkCenters(ids []string) ([]domain.WorkCenter, error) {
	all := s.store.WorkCenters()
	if len(ids) == 0 {
		return all, nil
	}
	selected := make([]domain.WorkCenter, 0, len(ids))
	for _, id := range ids {
		i := slices.IndexFunc(all, func(wc domain.WorkCenter) bool { return wc.ID == id })
		if i < 0 {
			return nil, fmt.Errorf("work center %s: %w", id, domain.ErrNotFound)
		}
		selected = append(selected, all[i])
	}
	return selected, nil
}

// rejectOverlap enforces the save rule of the edit panel: a booking may not
// collide with another booking on the same work center.
func (s *boardService) rejectOverlap(workCenterID string, start, end time.Time, excludeID string) error {
	conflicts := s.store.Conflicts(workCenterID, start, end, excludeID)
	if len(conflicts) == 0 {
		return nil
	}
	ids := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		ids = append(ids, c.ID)
	}
	return &domain.OverlapError{WorkCenterID: workCenterID, ConflictIDs: ids}
}
