// file: internals/features/school/staff/controller/staff_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	yearService "ecoleadmin_backend/internals/features/school/academic_years/service"
	classModel "ecoleadmin_backend/internals/features/school/classes/model"
	dto "ecoleadmin_backend/internals/features/school/staff/dto"
	model "ecoleadmin_backend/internals/features/school/staff/model"
	helper "ecoleadmin_backend/internals/helpers"
	helperAuth "ecoleadmin_backend/internals/helpers/auth"
)

type StaffController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Years     *yearService.ActiveYearCache
}

func NewStaffController(db *gorm.DB, v *validator.Validate, years *yearService.ActiveYearCache) *StaffController {
	if v == nil {
		v = validator.New()
	}
	return &StaffController{DB: db, Validator: v, Years: years}
}

func (ctl *StaffController) activeYearID() (uuid.UUID, error) {
	year, err := ctl.Years.Get(ctl.DB)
	if err != nil {
		return uuid.Nil, err
	}
	return year.AnneeID, nil
}

func activeYearError(c *fiber.Ctx, err error) error {
	if errors.Is(err, yearService.ErrNoActiveYear) {
		return helper.JsonError(c, fiber.StatusPreconditionFailed, err.Error())
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de résolution de l'année active")
}

/* ============================================
   LIST / DETAIL
   GET /api/personnel
   GET /api/personnel/:id
============================================ */

func (ctl *StaffController) List(c *fiber.Ctx) error {
	paging, err := helper.ResolvePaging(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	anneeID, err := ctl.activeYearID()
	if err != nil {
		return activeYearError(c, err)
	}

	q := ctl.DB.Model(&model.StaffModel{}).Where("personnel_annee_id = ?", anneeID)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(personnel_nom) LIKE ? OR LOWER(personnel_prenom) LIKE ?", like, like)
	}
	if fonction := strings.TrimSpace(c.Query("fonction")); fonction != "" {
		q = q.Where("personnel_fonction = ?", fonction)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de comptage du personnel")
	}

	var staff []model.StaffModel
	if err := q.Order("personnel_nom ASC, personnel_prenom ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&staff).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture du personnel")
	}

	return helper.JsonList(c, staff, helper.BuildPagination(total, paging))
}

func (ctl *StaffController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}

	var ent model.StaffModel
	err = ctl.DB.Where("personnel_id = ?", id).First(&ent).Error
	if err == nil {
		return helper.JsonOK(c, "OK", dto.StaffDetailDTO{StaffModel: ent, EstSupprime: false})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture")
	}

	var deleted model.DeletedStaffModel
	if err := ctl.DB.Where("personnel_id = ?", id).
		Order("supprime_le DESC").
		First(&deleted).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Membre du personnel introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture")
	}

	var snapshot model.StaffModel
	if err := json.Unmarshal(deleted.Donnees, &snapshot); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Snapshot illisible")
	}
	supprimeLe := deleted.SupprimeLe
	return helper.JsonOK(c, "OK", dto.StaffDetailDTO{
		StaffModel:  snapshot,
		EstSupprime: true,
		SupprimeLe:  &supprimeLe,
	})
}

/* ============================================
   CREATE / UPDATE
============================================ */

func (ctl *StaffController) Create(c *fiber.Ctx) error {
	var p dto.StaffCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := ctl.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}
	p.Normalize()

	anneeID, err := ctl.activeYearID()
	if err != nil {
		return activeYearError(c, err)
	}

	ent := p.ToModel(anneeID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de création")
	}
	return helper.JsonCreated(c, "Membre du personnel créé", ent)
}

func (ctl *StaffController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}

	var p dto.StaffUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := ctl.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var ent model.StaffModel
	if err := ctl.DB.Where("personnel_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Membre du personnel introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture")
	}

	p.Apply(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de mise à jour")
	}
	return helper.JsonOK(c, "Membre du personnel mis à jour", ent)
}

/* ============================================
   SOFT DELETE
   DELETE /api/personnel/:id?force=true

   Si la personne est titulaire de classes existantes, la suppression est
   refusée avec les classes en conflit (409) pour que le client propose une
   cascade. force=true détache le titulaire des classes DANS la même
   transaction que la copie miroir + suppression.
============================================ */

func (ctl *StaffController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}
	force := c.QueryBool("force", false)

	var conflicting []classModel.ClassModel
	if err := ctl.DB.Where("classe_titulaire_id = ?", id).Find(&conflicting).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec du contrôle des classes")
	}
	if len(conflicting) > 0 && !force {
		return helper.JsonErrorWithDetails(c, fiber.StatusConflict,
			"Cette personne est titulaire de classes existantes",
			fiber.Map{"classes": conflicting})
	}

	var deletedBy *uuid.UUID
	if uid, err := helperAuth.GetUserIDFromLocals(c); err == nil {
		deletedBy = &uid
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var ent model.StaffModel
		if err := tx.Where("personnel_id = ?", id).First(&ent).Error; err != nil {
			return err
		}

		if len(conflicting) > 0 {
			if err := tx.Model(&classModel.ClassModel{}).
				Where("classe_titulaire_id = ?", id).
				Update("classe_titulaire_id", nil).Error; err != nil {
				return err
			}
		}

		raw, err := json.Marshal(ent)
		if err != nil {
			return err
		}
		shadow := model.DeletedStaffModel{
			PersonnelID: ent.PersonnelID,
			Donnees:     raw,
			AnneeID:     ent.PersonnelAnneeID,
			SupprimePar: deletedBy,
		}
		if err := tx.Create(&shadow).Error; err != nil {
			return err
		}

		return tx.Delete(&ent).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Membre du personnel introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de suppression")
	}

	return helper.JsonOK(c, "Membre du personnel supprimé (copie conservée dans l'historique)", nil)
}
