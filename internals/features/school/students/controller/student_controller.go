// file: internals/features/school/students/controller/student_controller.go
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
	dto "ecoleadmin_backend/internals/features/school/students/dto"
	model "ecoleadmin_backend/internals/features/school/students/model"
	helper "ecoleadmin_backend/internals/helpers"
	helperAuth "ecoleadmin_backend/internals/helpers/auth"
)

/* ============================================
   Controller
============================================ */

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Years     *yearService.ActiveYearCache
}

func NewStudentController(db *gorm.DB, v *validator.Validate, years *yearService.ActiveYearCache) *StudentController {
	if v == nil {
		v = validator.New()
	}
	return &StudentController{DB: db, Validator: v, Years: years}
}

func (ctl *StudentController) activeYearID() (uuid.UUID, error) {
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
   LIST
   GET /api/eleves?page&limit&search&classe_id&niveau
============================================ */

func (ctl *StudentController) List(c *fiber.Ctx) error {
	paging, err := helper.ResolvePaging(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	anneeID, err := ctl.activeYearID()
	if err != nil {
		return activeYearError(c, err)
	}

	q := ctl.DB.Model(&model.StudentModel{}).Where("eleve_annee_id = ?", anneeID)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(eleve_nom) LIKE ? OR LOWER(eleve_prenom) LIKE ? OR LOWER(eleve_matricule) LIKE ?",
			like, like, like,
		)
	}
	if classeID := strings.TrimSpace(c.Query("classe_id")); classeID != "" {
		id, err := uuid.Parse(classeID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "classe_id invalide")
		}
		q = q.Where("eleve_classe_id = ?", id)
	}
	if niveau := strings.TrimSpace(c.Query("niveau")); niveau != "" {
		q = q.Where("eleve_niveau = ?", niveau)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de comptage des élèves")
	}

	var students []model.StudentModel
	if err := q.Order("eleve_nom ASC, eleve_prenom ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture des élèves")
	}

	return helper.JsonList(c, students, helper.BuildPagination(total, paging))
}

/* ============================================
   DETAIL (avec fallback sur la table miroir)
   GET /api/eleves/:id
============================================ */

func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}

	var ent model.StudentModel
	err = ctl.DB.Where("eleve_id = ?", id).First(&ent).Error
	if err == nil {
		return helper.JsonOK(c, "OK", dto.StudentDetailDTO{StudentModel: ent, EstSupprime: false})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture")
	}

	// Fallback: élève supprimé — on restitue le snapshot flagué est_supprime
	var deleted model.DeletedStudentModel
	if err := ctl.DB.Where("eleve_id = ?", id).
		Order("supprime_le DESC").
		First(&deleted).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Élève introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture")
	}

	var snapshot model.StudentModel
	if err := json.Unmarshal(deleted.Donnees, &snapshot); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Snapshot illisible")
	}
	supprimeLe := deleted.SupprimeLe
	return helper.JsonOK(c, "OK", dto.StudentDetailDTO{
		StudentModel: snapshot,
		EstSupprime:  true,
		SupprimeLe:   &supprimeLe,
	})
}

/* ============================================
   CREATE / UPDATE
============================================ */

func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var p dto.StudentCreateDTO
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
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Ce matricule existe déjà")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de création de l'élève")
	}
	return helper.JsonCreated(c, "Élève créé", ent)
}

func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}

	var p dto.StudentUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := ctl.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var ent model.StudentModel
	if err := ctl.DB.Where("eleve_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Élève introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture")
	}

	p.Apply(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de mise à jour")
	}
	return helper.JsonOK(c, "Élève mis à jour", ent)
}

/* ============================================
   SOFT DELETE
   DELETE /api/eleves/:id

   Copie JSONB dans eleves_supprimes PUIS suppression de la ligne vivante,
   les deux dans UNE transaction: un échec à mi-chemin ne laisse jamais
   l'élève dupliqué entre les deux tables.
============================================ */

func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}

	var deletedBy *uuid.UUID
	if uid, err := helperAuth.GetUserIDFromLocals(c); err == nil {
		deletedBy = &uid
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var ent model.StudentModel
		if err := tx.Where("eleve_id = ?", id).First(&ent).Error; err != nil {
			return err
		}

		raw, err := json.Marshal(ent)
		if err != nil {
			return err
		}

		shadow := model.DeletedStudentModel{
			EleveID:     ent.EleveID,
			Donnees:     raw,
			AnneeID:     ent.EleveAnneeID,
			SupprimePar: deletedBy,
		}
		if err := tx.Create(&shadow).Error; err != nil {
			return err
		}

		return tx.Delete(&ent).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Élève introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de suppression de l'élève")
	}

	return helper.JsonOK(c, "Élève supprimé (copie conservée dans l'historique)", nil)
}
