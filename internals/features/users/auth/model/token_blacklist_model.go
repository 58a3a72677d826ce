package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklist: tokens révoqués (déconnexion volontaire ou forcée).
// Consulté par le middleware d'auth à chaque requête, purgé par le scheduler.
type TokenBlacklist struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Token         string         `gorm:"type:text;not null;unique" json:"token"`
	UtilisateurID *uuid.UUID     `gorm:"type:uuid;column:utilisateur_id" json:"utilisateur_id,omitempty"`
	// "deconnexion" | "compte_desactive"
	Motif     string         `gorm:"type:varchar(30);not null;default:'deconnexion';column:motif" json:"motif"`
	ExpiredAt time.Time      `json:"expired_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
