package ordergroup

import (
	"context"
	"fmt"

	"tms/internal/entities"
)

// Mutations - операции записи, которые фабрика действий вызывает из диспетчера.
type Mutations struct {
	repository Repository
	txManager  TxManager
}

func NewMutations(repository Repository, txManager TxManager) *Mutations {
	return &Mutations{
		repository: repository,
		txManager:  txManager,
	}
}

func (m *Mutations) InboundOrderGroup(ctx context.Context, cmd entities.InboundCommand) error {
	if cmd.OrganizationID <= 0 || cmd.OrderGroupID <= 0 || cmd.VehicleID <= 0 {
		return ErrMissingRequiredFields
	}

	return m.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := m.repository.GetVehicleByID(ctx, cmd.OrganizationID, cmd.VehicleID); err != nil {
			return fmt.Errorf("get vehicle: %w", err)
		}

		err := m.updateStatus(ctx, entities.OrderGroupStatusUpdate{
			OrganizationID:    cmd.OrganizationID,
			OrderGroupID:      cmd.OrderGroupID,
			From:              entities.OrderGroupApproved,
			To:                entities.OrderGroupInbound,
			ExpectedUpdatedAt: cmd.ExpectedUpdatedAt,
		})
		if err != nil {
			return err
		}

		if _, err := m.repository.CreateInboundOrder(ctx, cmd); err != nil {
			return fmt.Errorf("create inbound order: %w", err)
		}
		return nil
	})
}

func (m *Mutations) SendOutboundOrdersToWarehouse(ctx context.Context, cmd entities.OutboundCommand) error {
	if cmd.OrganizationID <= 0 || cmd.OrderGroupID <= 0 || len(cmd.OrderIDs) == 0 {
		return ErrMissingRequiredFields
	}

	return m.updateStatus(ctx, entities.OrderGroupStatusUpdate{
		OrganizationID:    cmd.OrganizationID,
		OrderGroupID:      cmd.OrderGroupID,
		From:              entities.OrderGroupInStock,
		To:                entities.OrderGroupOutbound,
		ExpectedUpdatedAt: cmd.ExpectedUpdatedAt,
	})
}

// UpdateTripStatus добавляет статус в историю рейса и продвигает статус группы, если рейсы это позволяют.
func (m *Mutations) UpdateTripStatus(ctx context.Context, cmd entities.TripStatusCommand) error {
	if cmd.OrganizationID <= 0 || cmd.OrderGroupID <= 0 || cmd.TripID <= 0 {
		return ErrMissingRequiredFields
	}
	if !IsKnownTripStatus(cmd.DriverReport.Type) {
		return fmt.Errorf("%w: %s", ErrInvalidTripStatus, cmd.DriverReport.Type)
	}

	return m.txManager.Do(ctx, func(ctx context.Context) error {
		if err := m.repository.AppendTripStatus(ctx, cmd); err != nil {
			return fmt.Errorf("append trip status: %w", err)
		}

		group, err := m.repository.GetByID(ctx, cmd.OrganizationID, cmd.OrderGroupID)
		if err != nil {
			return fmt.Errorf("get order group: %w", err)
		}

		next, ok := DeriveGroupStatus(group)
		if !ok {
			return nil
		}

		return m.updateStatus(ctx, entities.OrderGroupStatusUpdate{
			OrganizationID:    group.OrganizationID,
			OrderGroupID:      group.ID,
			From:              group.LastStatusType,
			To:                next,
			ExpectedUpdatedAt: group.UpdatedAt,
		})
	})
}

func (m *Mutations) updateStatus(ctx context.Context, update entities.OrderGroupStatusUpdate) error {
	if !reachable(update.From, update.To) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, update.From, update.To)
	}

	if err := m.repository.UpdateStatus(ctx, update); err != nil {
		return fmt.Errorf("update order group status: %w", err)
	}
	return nil
}
