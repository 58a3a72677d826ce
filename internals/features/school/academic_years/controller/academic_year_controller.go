// file: internals/features/school/academic_years/controller/academic_year_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ecoleadmin_backend/internals/features/school/academic_years/dto"
	model "ecoleadmin_backend/internals/features/school/academic_years/model"
	service "ecoleadmin_backend/internals/features/school/academic_years/service"
	helper "ecoleadmin_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type AcademicYearController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Cache     *service.ActiveYearCache
}

func NewAcademicYearController(db *gorm.DB, v *validator.Validate, cache *service.ActiveYearCache) *AcademicYearController {
	if v == nil {
		v = validator.New()
	}
	return &AcademicYearController{DB: db, Validator: v, Cache: cache}
}

/* ============================================
   LIST / DETAIL
   GET /api/annees
   GET /api/annees/:id
============================================ */

func (ctl *AcademicYearController) List(c *fiber.Ctx) error {
	var years []model.AcademicYearModel
	if err := ctl.DB.Order("annee_date_debut DESC").Find(&years).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture des années académiques")
	}
	return helper.JsonOK(c, "OK", years)
}

func (ctl *AcademicYearController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}
	var year model.AcademicYearModel
	if err := ctl.DB.Where("annee_id = ?", id).First(&year).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Année académique introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture")
	}
	return helper.JsonOK(c, "OK", year)
}

/* ============================================
   CREATE / UPDATE (admin & directeur)
============================================ */

func (ctl *AcademicYearController) Create(c *fiber.Ctx) error {
	var p dto.AcademicYearCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := ctl.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}
	p.Normalize()

	if p.AnneeDateFin.Before(p.AnneeDateDebut) {
		return helper.JsonError(c, fiber.StatusBadRequest, "La date de fin doit être >= la date de début")
	}

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Ce libellé d'année existe déjà")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de création")
	}
	return helper.JsonCreated(c, "Année académique créée", ent)
}

func (ctl *AcademicYearController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}

	var p dto.AcademicYearUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := ctl.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var ent model.AcademicYearModel
	if err := ctl.DB.Where("annee_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Année académique introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture")
	}

	p.Apply(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de mise à jour")
	}

	ctl.Cache.Invalidate()
	return helper.JsonOK(c, "Année académique mise à jour", ent)
}

/* ============================================
   ACTIVATION (admin & directeur)
   POST /api/annees/:id/activer

   Transaction "clear puis set" qui préserve l'invariant: au plus une
   année active à la fois.
============================================ */

func (ctl *AcademicYearController) Activate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}

	var ent model.AcademicYearModel
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("annee_id = ?", id).First(&ent).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.AcademicYearModel{}).
			Where("annee_est_active = ?", true).
			Update("annee_est_active", false).Error; err != nil {
			return err
		}
		ent.AnneeEstActive = true
		return tx.Save(&ent).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Année académique introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec d'activation")
	}

	ctl.Cache.Invalidate()
	return helper.JsonOK(c, "Année académique activée", ent)
}

/* ============================================
   ANNÉE ACTIVE
   GET /api/annees/active
============================================ */

func (ctl *AcademicYearController) GetActive(c *fiber.Ctx) error {
	year, err := ctl.Cache.Get(ctl.DB)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveYear) {
			return helper.JsonError(c, fiber.StatusPreconditionFailed, service.ErrNoActiveYear.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture de l'année active")
	}
	return helper.JsonOK(c, "OK", year)
}
