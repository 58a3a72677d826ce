// file: internals/features/school/classes/controller/class_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	paymentModel "ecoleadmin_backend/internals/features/finance/payments/model"
	yearService "ecoleadmin_backend/internals/features/school/academic_years/service"
	dto "ecoleadmin_backend/internals/features/school/classes/dto"
	model "ecoleadmin_backend/internals/features/school/classes/model"
	studentModel "ecoleadmin_backend/internals/features/school/students/model"
	helper "ecoleadmin_backend/internals/helpers"
)

type ClassController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Years     *yearService.ActiveYearCache
}

func NewClassController(db *gorm.DB, v *validator.Validate, years *yearService.ActiveYearCache) *ClassController {
	if v == nil {
		v = validator.New()
	}
	return &ClassController{DB: db, Validator: v, Years: years}
}

func (ctl *ClassController) activeYearID() (uuid.UUID, error) {
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
   GET /api/classes?page&limit&search&niveau
============================================ */

func (ctl *ClassController) List(c *fiber.Ctx) error {
	paging, err := helper.ResolvePaging(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	anneeID, err := ctl.activeYearID()
	if err != nil {
		return activeYearError(c, err)
	}

	q := ctl.DB.Model(&model.ClassModel{}).Where("classe_annee_id = ?", anneeID)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(classe_nom) LIKE ?", like)
	}
	if niveau := strings.TrimSpace(c.Query("niveau")); niveau != "" {
		q = q.Where("classe_niveau = ?", niveau)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de comptage des classes")
	}

	var classes []model.ClassModel
	if err := q.Order("classe_niveau ASC, classe_nom ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture des classes")
	}

	items := make([]dto.ClassListItemDTO, 0, len(classes))
	for _, cl := range classes {
		var effectif int64
		if err := ctl.DB.Model(&studentModel.StudentModel{}).
			Where("eleve_classe_id = ?", cl.ClasseID).
			Count(&effectif).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de comptage des effectifs")
		}
		items = append(items, dto.ClassListItemDTO{ClassModel: cl, Effectif: int(effectif)})
	}

	return helper.JsonList(c, items, helper.BuildPagination(total, paging))
}

/* ============================================
   DETAIL (élèves inscrits + rollup scolarité)
   GET /api/classes/:id
============================================ */

func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}

	var ent model.ClassModel
	if err := ctl.DB.Where("classe_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Classe introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture")
	}

	var students []studentModel.StudentModel
	if err := ctl.DB.Where("eleve_classe_id = ?", id).
		Order("eleve_nom ASC, eleve_prenom ASC").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture des élèves")
	}

	// Rollup scolarité: payé = somme des versements "scolarite" des inscrits
	var paye float64
	if len(students) > 0 {
		ids := make([]uuid.UUID, 0, len(students))
		for _, s := range students {
			ids = append(ids, s.EleveID)
		}
		row := ctl.DB.Model(&paymentModel.PaymentModel{}).
			Where("paiement_eleve_id IN ? AND paiement_type = ?", ids, paymentModel.TypeScolarite).
			Select("COALESCE(SUM(paiement_montant), 0)")
		if err := row.Scan(&paye).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Échec du calcul de scolarité")
		}
	}

	attendu := ent.ClasseFraisScolarite * float64(len(students))
	detail := dto.ClassDetailDTO{
		ClassModel: ent,
		Effectif:   len(students),
		Eleves:     students,
		Scolarite: dto.TuitionRollup{
			MontantAttendu: attendu,
			MontantPaye:    paye,
			MontantRestant: attendu - paye,
		},
	}
	return helper.JsonOK(c, "OK", detail)
}

/* ============================================
   CREATE / UPDATE / DELETE
============================================ */

func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var p dto.ClassCreateDTO
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
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de création de la classe")
	}
	return helper.JsonCreated(c, "Classe créée", ent)
}

func (ctl *ClassController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}

	var p dto.ClassUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := ctl.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var ent model.ClassModel
	if err := ctl.DB.Where("classe_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Classe introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture")
	}

	p.Apply(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de mise à jour")
	}
	return helper.JsonOK(c, "Classe mise à jour", ent)
}

func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}

	// Refus si des élèves y sont encore inscrits
	var effectif int64
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("eleve_classe_id = ?", id).
		Count(&effectif).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec du contrôle des inscrits")
	}
	if effectif > 0 {
		return helper.JsonErrorWithDetails(c, fiber.StatusConflict,
			"Des élèves sont encore inscrits dans cette classe",
			fiber.Map{"effectif": effectif})
	}

	res := ctl.DB.Where("classe_id = ?", id).Delete(&model.ClassModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de suppression")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Classe introuvable")
	}
	return helper.JsonOK(c, "Classe supprimée", nil)
}
