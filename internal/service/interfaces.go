package service

import (
	"context"
	"time"

	"github.com/alexanderramin/workboard/internal/contract"
	"github.com/alexanderramin/workboard/internal/domain"
	"github.com/alexanderramin/workboard/internal/fixture"
)

// WorkOrderStore is the subset of the interval store the board service needs.
type WorkOrderStore interface {
	Insert(o domain.WorkOrder) error
	Update(id string, p domain.Patch) error
	Delete(id string) error
	Get(id string) (domain.WorkOrder, error)
	All() []domain.WorkOrder
	AllForResource(workCenterID string) []domain.WorkOrder
	Conflicts(workCenterID string, start, end time.Time, excludeID string) []domain.WorkOrder
	WorkCenters() []domain.WorkCenter
	WorkCenter(id string) (domain.WorkCenter, error)
}

type BoardService interface {
	CreateWorkOrder(ctx context.Context, workCenterID string, form contract.WorkOrderForm) (*domain.WorkOrder, error)
	UpdateWorkOrder(ctx context.Context, id string, form contract.WorkOrderForm) (*domain.WorkOrder, error)
	DeleteWorkOrder(ctx context.Context, id string) error
	CheckOverlap(ctx context.Context, req contract.OverlapRequest) (*contract.OverlapResponse, error)
	ListWorkOrders(ctx context.Context, workCenterID string) ([]domain.WorkOrder, error)
	ListWorkCenters(ctx context.Context) ([]domain.WorkCenter, error)
	Board(ctx context.Context, req contract.BoardRequest) (*contract.BoardResponse, error)
	Apply(ctx context.Context, ops []fixture.Op) ([]contract.OpResult, error)
}
