// file: internals/features/users/users/model/user_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserModel: compte applicatif. Jamais de hard delete (désactivation via
// utilisateur_est_actif uniquement).
type UserModel struct {
	UtilisateurID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:utilisateur_id" json:"utilisateur_id"`
	UtilisateurEmail        string    `gorm:"type:varchar(255);not null;uniqueIndex;column:utilisateur_email" json:"utilisateur_email"`
	UtilisateurMotDePasse   string    `gorm:"type:text;not null;column:utilisateur_mot_de_passe" json:"-"`
	UtilisateurNomAffichage string    `gorm:"type:varchar(120);not null;column:utilisateur_nom_affichage" json:"utilisateur_nom_affichage"`
	// admin | director | secretary | accountant | cashier
	UtilisateurRole     string `gorm:"type:varchar(20);not null;column:utilisateur_role" json:"utilisateur_role"`
	UtilisateurEstActif bool   `gorm:"not null;default:true;column:utilisateur_est_actif" json:"utilisateur_est_actif"`

	UtilisateurCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:utilisateur_created_at" json:"utilisateur_created_at"`
	UtilisateurUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:utilisateur_updated_at" json:"utilisateur_updated_at"`
}

func (UserModel) TableName() string { return "utilisateurs" }

func (m *UserModel) BeforeSave(tx *gorm.DB) error {
	m.UtilisateurEmail = strings.ToLower(strings.TrimSpace(m.UtilisateurEmail))
	m.UtilisateurNomAffichage = strings.TrimSpace(m.UtilisateurNomAffichage)
	m.UtilisateurRole = strings.TrimSpace(m.UtilisateurRole)
	return nil
}

func (m *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.UtilisateurMotDePasse = string(hash)
	return nil
}

func (m *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(m.UtilisateurMotDePasse), []byte(plain)) == nil
}
