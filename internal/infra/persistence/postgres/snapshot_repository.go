package postgres

import (
	"context"
	"encoding/json"

	"console/internal/domain/entity"
	"console/internal/domain/repository"
	"console/internal/errors"
	"console/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a snapshot repository backed by PostgreSQL.
func NewSnapshotRepository(db *gorm.DB) repository.SnapshotRepository {
	return &snapshotRepository{db: db}
}

// Load reads all four console collections in one pass.
func (r *snapshotRepository) Load(ctx context.Context) (*entity.Snapshot, error) {
	var orderModels []model.OrderModel
	if err := r.db.WithContext(ctx).Order("placed_at, id").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load orders")
	}

	var reservationModels []model.ReservationModel
	if err := r.db.WithContext(ctx).Order("id").Find(&reservationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load reservations")
	}

	var tableModels []model.TableModel
	if err := r.db.WithContext(ctx).Order("id").Find(&tableModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load tables")
	}

	var staffModels []model.StaffMemberModel
	if err := r.db.WithContext(ctx).Order("name").Find(&staffModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load staff roster")
	}

	snapshot := &entity.Snapshot{
		Orders:       make([]*entity.Order, 0, len(orderModels)),
		Reservations: make([]*entity.Reservation, 0, len(reservationModels)),
		Tables:       make([]*entity.Table, 0, len(tableModels)),
		Roster:       make([]*entity.StaffMember, 0, len(staffModels)),
	}

	for index := range orderModels {
		order, err := toOrderEntity(&orderModels[index])
		if err != nil {
			return nil, err
		}
		snapshot.Orders = append(snapshot.Orders, order)
	}
	for index := range reservationModels {
		snapshot.Reservations = append(snapshot.Reservations, toReservationEntity(&reservationModels[index]))
	}
	for index := range tableModels {
		snapshot.Tables = append(snapshot.Tables, toTableEntity(&tableModels[index]))
	}
	for index := range staffModels {
		snapshot.Roster = append(snapshot.Roster, toStaffEntity(&staffModels[index]))
	}

	return snapshot, nil
}

// Save upserts every record in the snapshot inside one transaction. Rows
// removed from the snapshot are not deleted; the console only replaces
// statuses, it never drops records.
func (r *snapshotRepository) Save(ctx context.Context, snapshot *entity.Snapshot) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, order := range snapshot.Orders {
			orderModel, err := toOrderModel(order)
			if err != nil {
				return err
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(orderModel).Error; err != nil {
				return errors.Wrapf(err, "failed to save order %s", order.ID)
			}
		}
		for _, reservation := range snapshot.Reservations {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(toReservationModel(reservation)).Error; err != nil {
				return errors.Wrapf(err, "failed to save reservation %s", reservation.ID)
			}
		}
		for _, table := range snapshot.Tables {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(toTableModel(table)).Error; err != nil {
				return errors.Wrapf(err, "failed to save table %d", table.ID)
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to save snapshot")
	}

	return nil
}

func toOrderEntity(orderModel *model.OrderModel) (*entity.Order, error) {
	var items []entity.LineItem
	if err := json.Unmarshal([]byte(orderModel.Items), &items); err != nil {
		return nil, errors.Wrapf(err, "failed to decode line items of order %s", orderModel.ID)
	}

	return &entity.Order{
		ID:           orderModel.ID,
		CustomerName: orderModel.CustomerName,
		Items:        items,
		Status:       entity.OrderStatus(orderModel.Status),
		PlacedAt:     orderModel.PlacedAt,
	}, nil
}

func toOrderModel(order *entity.Order) (*model.OrderModel, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode line items of order %s", order.ID)
	}

	return &model.OrderModel{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		Items:        string(items),
		Status:       order.Status.String(),
		PlacedAt:     order.PlacedAt,
	}, nil
}

func toReservationEntity(reservationModel *model.ReservationModel) *entity.Reservation {
	return &entity.Reservation{
		ID:              reservationModel.ID,
		CustomerName:    reservationModel.CustomerName,
		Date:            reservationModel.Date,
		Time:            reservationModel.Time,
		PartySize:       reservationModel.PartySize,
		Status:          entity.ReservationStatus(reservationModel.Status),
		SpecialRequests: reservationModel.SpecialRequests,
	}
}

func toReservationModel(reservation *entity.Reservation) *model.ReservationModel {
	return &model.ReservationModel{
		ID:              reservation.ID,
		CustomerName:    reservation.CustomerName,
		Date:            reservation.Date,
		Time:            reservation.Time,
		PartySize:       reservation.PartySize,
		Status:          reservation.Status.String(),
		SpecialRequests: reservation.SpecialRequests,
	}
}

func toTableEntity(tableModel *model.TableModel) *entity.Table {
	return &entity.Table{
		ID:        tableModel.ID,
		SeatCount: tableModel.SeatCount,
		Status:    entity.TableStatus(tableModel.Status),
	}
}

func toTableModel(table *entity.Table) *model.TableModel {
	return &model.TableModel{
		ID:        table.ID,
		SeatCount: table.SeatCount,
		Status:    table.Status.String(),
	}
}

func toStaffEntity(staffModel *model.StaffMemberModel) *entity.StaffMember {
	return &entity.StaffMember{
		ID:        staffModel.ID,
		Name:      staffModel.Name,
		Email:     staffModel.Email,
		RoleLabel: staffModel.RoleLabel,
		OnDuty:    entity.OnDutyStatus(staffModel.OnDuty),
		Shift:     staffModel.Shift,
	}
}
