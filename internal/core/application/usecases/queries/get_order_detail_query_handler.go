package queries

import (
	"context"
	"database/sql"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderDetailQueryHandler loads the full order read model with direct SQL.
// Three statements, no aggregate reconstruction: the response carries the
// persisted state as-is with enums rendered in wire form.
type GetOrderDetailQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderDetailQueryHandler(db *gorm.DB) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{db: db}
}

// Handle executes the query for one order.
// Returns an object-not-found error when no row matches the ID.
func (h GetOrderDetailQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailQuery,
) (*GetOrderDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	detail, err := h.loadOrderRow(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	detail.Items, err = h.loadItems(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	detail.Transitions, err = h.loadTransitions(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	return detail, nil
}

func (h GetOrderDetailQueryHandler) loadOrderRow(
	ctx context.Context,
	orderID kernel.UUID,
) (*GetOrderDetailQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_ref,
			address,
			delivery_at,
			time_slot,
			total_cents,
			priority,
			stage,
			version,
			updated_at,
			packing_notes,
			storage_notes,
			storage_location,
			verification_started,
			verification_finalized,
			req_packages,
			req_weight_kg,
			req_volume_m3,
			vehicle_id,
			officer_id,
			driver_id,
			rejection_reason,
			proof_opened_at,
			proof_filled_slots,
			proof_complaint_flagged,
			proof_customer_confirmed,
			proof_satisfaction,
			proof_notes,
			proof_finalized
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("order", orderID.String())
	}

	var detail GetOrderDetailQueryResponse
	var id uuid.UUID
	var priority, stage int
	var vehicleID, officerID, driverID uuid.NullUUID
	var proofOpenedAt sql.NullTime
	var proofFilledSlots string
	var proofComplaintFlagged, proofCustomerConfirmed, proofFinalized bool
	var proofSatisfaction int
	var proofNotes string

	err = rows.Scan(
		&id,
		&detail.CustomerRef,
		&detail.Address,
		&detail.DeliveryAt,
		&detail.TimeSlot,
		&detail.TotalCents,
		&priority,
		&stage,
		&detail.Version,
		&detail.UpdatedAt,
		&detail.PackingNotes,
		&detail.StorageNotes,
		&detail.StorageLocation,
		&detail.VerificationStarted,
		&detail.VerificationFinalized,
		&detail.ReqPackages,
		&detail.ReqWeightKg,
		&detail.ReqVolumeM3,
		&vehicleID,
		&officerID,
		&driverID,
		&detail.RejectionReason,
		&proofOpenedAt,
		&proofFilledSlots,
		&proofComplaintFlagged,
		&proofCustomerConfirmed,
		&proofSatisfaction,
		&proofNotes,
		&proofFinalized,
	)
	if err != nil {
		return nil, err
	}

	detail.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	detail.Priority = order.Priority(priority).String()
	detail.Stage = order.Stage(stage).String()

	detail.VehicleID, err = optionalUUID(vehicleID)
	if err != nil {
		return nil, err
	}
	detail.OfficerID, err = optionalUUID(officerID)
	if err != nil {
		return nil, err
	}
	detail.DriverID, err = optionalUUID(driverID)
	if err != nil {
		return nil, err
	}

	if proofOpenedAt.Valid {
		detail.Proof = &OrderProofDetail{
			OpenedAt:          proofOpenedAt.Time,
			FilledSlots:       splitList(proofFilledSlots),
			ComplaintFlagged:  proofComplaintFlagged,
			CustomerConfirmed: proofCustomerConfirmed,
			Satisfaction:      proofSatisfaction,
			Notes:             proofNotes,
			Finalized:         proofFinalized,
		}
	}

	return &detail, rows.Err()
}

func (h GetOrderDetailQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderItemDetail, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_ref,
			quantity,
			unit_weight_kg,
			packing_status,
			storage_status,
			packing_complaints,
			storage_complaints
		FROM order_items
		WHERE order_id = ?
		ORDER BY idx
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemDetail, 0)
	for rows.Next() {
		var item OrderItemDetail
		var packingStatus, storageStatus int
		var packingComplaints, storageComplaints string

		err = rows.Scan(
			&item.ProductRef,
			&item.Quantity,
			&item.UnitWeightKg,
			&packingStatus,
			&storageStatus,
			&packingComplaints,
			&storageComplaints,
		)
		if err != nil {
			return nil, err
		}

		item.PackingStatus = order.PackingStatus(packingStatus).String()
		item.StorageStatus = order.StorageStatus(storageStatus).String()

		item.PackingComplaints, err = parseUUIDList(packingComplaints)
		if err != nil {
			return nil, err
		}
		item.StorageComplaints, err = parseUUIDList(storageComplaints)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderDetailQueryHandler) loadTransitions(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderTransitionDetail, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			from_stage,
			to_stage,
			actor_id,
			actor_name,
			occurred_at
		FROM order_transitions
		WHERE order_id = ?
		ORDER BY seq
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transitions := make([]OrderTransitionDetail, 0)
	for rows.Next() {
		var transition OrderTransitionDetail
		var fromStage, toStage int

		err = rows.Scan(
			&fromStage,
			&toStage,
			&transition.ActorID,
			&transition.ActorName,
			&transition.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		transition.From = order.Stage(fromStage).String()
		transition.To = order.Stage(toStage).String()
		transitions = append(transitions, transition)
	}

	return transitions, rows.Err()
}

// optionalUUID maps a nullable uuid column to an optional domain UUID.
func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

// splitList parses a comma-joined column into its parts.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// parseUUIDList parses a comma-joined UUID column.
func parseUUIDList(s string) ([]kernel.UUID, error) {
	parts := splitList(s)
	if len(parts) == 0 {
		return nil, nil
	}
	ids := make([]kernel.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := kernel.UUIDFromString(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
