package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Supplier struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex;not null" json:"name"`

	ParentID *uuid.UUID `gorm:"type:uuid;index" json:"parentId"`
	Parent   *Supplier  `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children []Supplier `gorm:"foreignKey:ParentID" json:"children,omitempty"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsGroup reports whether this supplier is a parent group. Groups exist only
// for reporting rollups and cannot be assigned to supplies directly.
// Children must be preloaded for this to be meaningful.
func (s *Supplier) IsGroup() bool {
	return len(s.Children) > 0
}

func (s *Supplier) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
