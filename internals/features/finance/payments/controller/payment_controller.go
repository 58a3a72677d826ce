// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ecoleadmin_backend/internals/features/finance/payments/dto"
	model "ecoleadmin_backend/internals/features/finance/payments/model"
	yearModel "ecoleadmin_backend/internals/features/school/academic_years/model"
	yearService "ecoleadmin_backend/internals/features/school/academic_years/service"
	studentModel "ecoleadmin_backend/internals/features/school/students/model"
	helper "ecoleadmin_backend/internals/helpers"
	helperAuth "ecoleadmin_backend/internals/helpers/auth"
)

type PaymentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Years     *yearService.ActiveYearCache
}

func NewPaymentController(db *gorm.DB, v *validator.Validate, years *yearService.ActiveYearCache) *PaymentController {
	if v == nil {
		v = validator.New()
	}
	return &PaymentController{DB: db, Validator: v, Years: years}
}

func (ctl *PaymentController) activeYear() (yearModel.AcademicYearModel, error) {
	return ctl.Years.Get(ctl.DB)
}

func activeYearError(c *fiber.Ctx, err error) error {
	if errors.Is(err, yearService.ErrNoActiveYear) {
		return helper.JsonError(c, fiber.StatusPreconditionFailed, err.Error())
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de résolution de l'année active")
}

/* ============================================
   LIST / DETAIL
   GET /api/paiements?page&limit&type&search
   GET /api/paiements/:id
============================================ */

func (ctl *PaymentController) List(c *fiber.Ctx) error {
	paging, err := helper.ResolvePaging(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	year, err := ctl.activeYear()
	if err != nil {
		return activeYearError(c, err)
	}

	q := ctl.DB.Model(&model.PaymentModel{}).Where("paiement_annee_id = ?", year.AnneeID)

	if typ := strings.TrimSpace(c.Query("type")); typ != "" {
		if !model.IsKnownPaymentType(typ) {
			return helper.JsonError(c, fiber.StatusBadRequest, "type de paiement inconnu")
		}
		q = q.Where("paiement_type = ?", typ)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"paiement_eleve_id IN (?)",
			ctl.DB.Model(&studentModel.StudentModel{}).
				Select("eleve_id").
				Where("LOWER(eleve_nom) LIKE ? OR LOWER(eleve_prenom) LIKE ? OR LOWER(eleve_matricule) LIKE ?", like, like, like),
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de comptage des paiements")
	}

	var payments []model.PaymentModel
	if err := q.Order("paiement_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture des paiements")
	}

	return helper.JsonList(c, payments, helper.BuildPagination(total, paging))
}

func (ctl *PaymentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}

	var ent model.PaymentModel
	if err := ctl.DB.Where("paiement_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Paiement introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture")
	}

	detail := dto.PaymentDetailDTO{PaymentModel: ent}

	var eleve studentModel.StudentModel
	if err := ctl.DB.Where("eleve_id = ?", ent.PaiementEleveID).First(&eleve).Error; err == nil {
		detail.Eleve = &eleve
	}
	var annee yearModel.AcademicYearModel
	if err := ctl.DB.Where("annee_id = ?", ent.PaiementAnneeID).First(&annee).Error; err == nil {
		detail.Annee = &annee
	}

	return helper.JsonOK(c, "OK", detail)
}

/* ============================================
   BATCH PAR ÉLÈVES
   GET /api/paiements/eleves?ids=a,b,c
============================================ */

func (ctl *PaymentController) ByStudents(c *fiber.Ctx) error {
	rawIDs := strings.TrimSpace(c.Query("ids"))
	if rawIDs == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "paramètre ids requis")
	}

	var ids []uuid.UUID
	for _, part := range strings.Split(rawIDs, ",") {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "ids contient une valeur invalide")
		}
		ids = append(ids, id)
	}

	year, err := ctl.activeYear()
	if err != nil {
		return activeYearError(c, err)
	}

	var payments []model.PaymentModel
	if err := ctl.DB.
		Where("paiement_annee_id = ? AND paiement_eleve_id IN ?", year.AnneeID, ids).
		Order("paiement_date DESC").
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture des paiements")
	}

	// totaux par élève (tous les ids demandés figurent dans la réponse,
	// même sans paiement)
	byStudent := make(map[uuid.UUID]*dto.StudentTotalsDTO, len(ids))
	for _, id := range ids {
		byStudent[id] = &dto.StudentTotalsDTO{
			EleveID:   id,
			ParType:   map[string]float64{},
			Paiements: []model.PaymentModel{},
		}
	}
	for _, p := range payments {
		t := byStudent[p.PaiementEleveID]
		if t == nil {
			continue
		}
		t.Total += p.PaiementMontant
		t.ParType[p.PaiementType] += p.PaiementMontant
		t.Paiements = append(t.Paiements, p)
	}

	out := make([]dto.StudentTotalsDTO, 0, len(ids))
	for _, id := range ids {
		out = append(out, *byStudent[id])
	}
	return helper.JsonOK(c, "OK", out)
}

/* ============================================
   FENÊTRE DATÉE + STATS CATÉGORISÉES
   GET /api/paiements/periode?period_type&start_date&end_date
============================================ */

func (ctl *PaymentController) Periode(c *fiber.Ctx) error {
	paging, err := helper.ResolvePaging(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	start, err := helper.ParseDate(c.Query("start_date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	end, err := helper.ParseDate(c.Query("end_date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	year, err := ctl.activeYear()
	if err != nil {
		return activeYearError(c, err)
	}

	q := ctl.DB.Model(&model.PaymentModel{}).Where("paiement_annee_id = ?", year.AnneeID)
	if periodType := strings.TrimSpace(c.Query("period_type")); periodType != "" {
		if !model.IsKnownPaymentType(periodType) {
			return helper.JsonError(c, fiber.StatusBadRequest, "period_type inconnu")
		}
		q = q.Where("paiement_type = ?", periodType)
	}

	from, to := helper.DateWindow(start, end)
	var payments []model.PaymentModel
	if err := q.Where("paiement_date >= ? AND paiement_date < ?", from, to).
		Order("paiement_date DESC").
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture des paiements")
	}

	totals := dto.PeriodTotalsDTO{ParType: map[string]float64{}}
	for _, p := range payments {
		totals.Total += p.PaiementMontant
		totals.Nombre++
		totals.ParType[p.PaiementType] += p.PaiementMontant
	}

	page := helper.PageSlice(payments, paging)
	return helper.JsonOK(c, "OK", fiber.Map{
		"stats":      totals,
		"items":      page,
		"pagination": helper.BuildPagination(int64(len(payments)), paging),
	})
}

/* ============================================
   CREATE / UPDATE / DELETE (soft)
============================================ */

func (ctl *PaymentController) Create(c *fiber.Ctx) error {
	var p dto.PaymentCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := ctl.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}
	p.Normalize()

	year, err := ctl.activeYear()
	if err != nil {
		return activeYearError(c, err)
	}

	userID, err := helperAuth.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Utilisateur non identifié")
	}

	// l'élève doit exister dans l'année active
	var eleve studentModel.StudentModel
	if err := ctl.DB.Where("eleve_id = ?", p.PaiementEleveID).First(&eleve).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Élève introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture de l'élève")
	}

	ent := p.ToModel(year.AnneeID, userID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec d'enregistrement du paiement")
	}
	return helper.JsonCreated(c, "Paiement enregistré", ent)
}

func (ctl *PaymentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}

	var p dto.PaymentUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := ctl.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var ent model.PaymentModel
	if err := ctl.DB.Where("paiement_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Paiement introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture")
	}

	p.Apply(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de mise à jour")
	}
	return helper.JsonOK(c, "Paiement mis à jour", ent)
}

// Delete: même convention transactionnelle copie-puis-suppression que les
// élèves, vers paiements_supprimes.
func (ctl *PaymentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}

	var deletedBy *uuid.UUID
	if uid, err := helperAuth.GetUserIDFromLocals(c); err == nil {
		deletedBy = &uid
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var ent model.PaymentModel
		if err := tx.Where("paiement_id = ?", id).First(&ent).Error; err != nil {
			return err
		}

		raw, err := json.Marshal(ent)
		if err != nil {
			return err
		}
		shadow := model.DeletedPaymentModel{
			PaiementID:  ent.PaiementID,
			Donnees:     raw,
			AnneeID:     ent.PaiementAnneeID,
			SupprimePar: deletedBy,
		}
		if err := tx.Create(&shadow).Error; err != nil {
			return err
		}

		return tx.Delete(&ent).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Paiement introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de suppression du paiement")
	}

	return helper.JsonOK(c, "Paiement supprimé (copie conservée dans l'historique)", nil)
}

/* ============================================
   HISTORIQUE DES PAIEMENTS SUPPRIMÉS
   GET /api/paiements-supprimes
   DELETE /api/paiements-supprimes/:id   (purge définitive)
============================================ */

func (ctl *PaymentController) ListDeleted(c *fiber.Ctx) error {
	paging, err := helper.ResolvePaging(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctl.DB.Model(&model.DeletedPaymentModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de comptage de l'historique")
	}

	var deleted []model.DeletedPaymentModel
	if err := q.Order("supprime_le DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&deleted).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture de l'historique")
	}

	return helper.JsonList(c, deleted, helper.BuildPagination(total, paging))
}

func (ctl *PaymentController) PurgeDeleted(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}

	res := ctl.DB.Where("suppression_id = ?", id).Delete(&model.DeletedPaymentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de purge")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Entrée d'historique introuvable")
	}
	return helper.JsonOK(c, "Paiement purgé définitivement", nil)
}
