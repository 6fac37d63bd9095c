package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/shared"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// AggregateModel extends BaseModel with a version for optimistic locking.
type AggregateModel struct {
	BaseModel
	Version int `gorm:"not null;default:1"`
}

// FromDomainAggregateRoot populates AggregateModel from domain BaseAggregateRoot
func (m *AggregateModel) FromDomainAggregateRoot(a shared.BaseAggregateRoot) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Version = a.Version
}

// HotelAggregateModel provides common persistence fields for
// hotel-scoped aggregate roots.
type HotelAggregateModel struct {
	AggregateModel
	HotelID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedBy *uuid.UUID `gorm:"type:uuid;index"`
}

// FromDomainHotelAggregateRoot populates HotelAggregateModel from the domain root
func (m *HotelAggregateModel) FromDomainHotelAggregateRoot(h shared.HotelAggregateRoot) {
	m.FromDomainAggregateRoot(h.BaseAggregateRoot)
	m.HotelID = h.HotelID
	m.CreatedBy = h.CreatedBy
}

// PopulateHotelAggregateRoot populates a domain HotelAggregateRoot from the model
func (m *HotelAggregateModel) PopulateHotelAggregateRoot(h *shared.HotelAggregateRoot) {
	h.BaseAggregateRoot.BaseEntity.ID = m.ID
	h.BaseAggregateRoot.BaseEntity.CreatedAt = m.CreatedAt
	h.BaseAggregateRoot.BaseEntity.UpdatedAt = m.UpdatedAt
	h.BaseAggregateRoot.Version = m.Version
	h.HotelID = m.HotelID
	h.CreatedBy = m.CreatedBy
}
