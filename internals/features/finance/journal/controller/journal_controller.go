// file: internals/features/finance/journal/controller/journal_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ecoleadmin_backend/internals/features/finance/journal/dto"
	model "ecoleadmin_backend/internals/features/finance/journal/model"
	service "ecoleadmin_backend/internals/features/finance/journal/service"
	yearService "ecoleadmin_backend/internals/features/school/academic_years/service"
	helper "ecoleadmin_backend/internals/helpers"
	helperAuth "ecoleadmin_backend/internals/helpers/auth"
)

type JournalController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Years     *yearService.ActiveYearCache
}

func NewJournalController(db *gorm.DB, v *validator.Validate, years *yearService.ActiveYearCache) *JournalController {
	if v == nil {
		v = validator.New()
	}
	return &JournalController{DB: db, Validator: v, Years: years}
}

// activeYearID: précondition de toutes les agrégations — sans année active,
// on échoue tout de suite, aucun solde partiel n'est calculé.
func (ctl *JournalController) activeYearID() (uuid.UUID, error) {
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
   GET /api/journal?page&limit&sens&start_date&end_date
============================================ */

func (ctl *JournalController) List(c *fiber.Ctx) error {
	paging, err := helper.ResolvePaging(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	anneeID, err := ctl.activeYearID()
	if err != nil {
		return activeYearError(c, err)
	}

	q := ctl.DB.Model(&model.JournalEntryModel{}).Where("ecriture_annee_id = ?", anneeID)

	if sens := strings.TrimSpace(c.Query("sens")); sens != "" {
		if sens != model.SensEntree && sens != model.SensSortie {
			return helper.JsonError(c, fiber.StatusBadRequest, "sens invalide (entree|sortie)")
		}
		q = q.Where("ecriture_sens = ?", sens)
	}
	if q2, err := applyDateWindow(c, q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	} else {
		q = q2
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de comptage du journal")
	}

	var entries []model.JournalEntryModel
	if err := q.Order("ecriture_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture du journal")
	}

	return helper.JsonList(c, entries, helper.BuildPagination(total, paging))
}

/* ============================================
   FENÊTRE DATÉE
   GET /api/journal/period?start_date&end_date&page&limit

   Renvoie le jeu complet (pour les totaux) ET la tranche paginée (pour
   l'affichage) — les totaux ne doivent jamais être recalculés côté client
   à partir de la seule tranche.
============================================ */

func (ctl *JournalController) Period(c *fiber.Ctx) error {
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

	anneeID, err := ctl.activeYearID()
	if err != nil {
		return activeYearError(c, err)
	}

	from, to := helper.DateWindow(start, end)
	var entries []model.JournalEntryModel
	if err := ctl.DB.
		Where("ecriture_annee_id = ? AND ecriture_date >= ? AND ecriture_date < ?", anneeID, from, to).
		Order("ecriture_date DESC").
		Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture du journal")
	}

	stats := service.ComputePeriodStats(entries)
	page := helper.PageSlice(entries, paging)

	return helper.JsonOK(c, "OK", fiber.Map{
		"stats":      stats,
		"items":      page,
		"pagination": helper.BuildPagination(int64(len(entries)), paging),
	})
}

/* ============================================
   STATS PAR PÉRIODE + COMPARAISON MENSUELLE
   GET /api/journal/stats?granularite=jour|mois|annee&date=YYYY-MM-DD
============================================ */

func (ctl *JournalController) Stats(c *fiber.Ctx) error {
	granularite := strings.TrimSpace(c.Query("granularite", service.GranulariteMois))

	ref := time.Now()
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		parsed, err := helper.ParseDate(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		ref = parsed
	}

	from, to, ok := service.PeriodBounds(granularite, ref)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "granularite invalide (jour|mois|annee)")
	}

	anneeID, err := ctl.activeYearID()
	if err != nil {
		return activeYearError(c, err)
	}

	entries, err := ctl.fetchWindow(anneeID, from, to)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture du journal")
	}
	stats := service.ComputePeriodStats(entries)

	payload := fiber.Map{
		"granularite": granularite,
		"stats":       stats,
	}

	// Comparaison mois par mois (janvier retombe sur décembre N-1)
	if granularite == service.GranulariteMois {
		prevYear, prevMonth := service.PreviousMonth(ref.Year(), ref.Month())
		prevFrom := time.Date(prevYear, prevMonth, 1, 0, 0, 0, 0, ref.Location())
		prevTo := prevFrom.AddDate(0, 1, 0)

		prevEntries, err := ctl.fetchWindow(anneeID, prevFrom, prevTo)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture du journal")
		}
		payload["comparaison"] = service.CompareMonths(stats, service.ComputePeriodStats(prevEntries))
	}

	return helper.JsonOK(c, "OK", payload)
}

/* ============================================
   SOLDES PAR COMPARTIMENT
   GET /api/journal/balances
============================================ */

func (ctl *JournalController) Balances(c *fiber.Ctx) error {
	anneeID, err := ctl.activeYearID()
	if err != nil {
		return activeYearError(c, err)
	}

	var entries []model.JournalEntryModel
	if err := ctl.DB.
		Where("ecriture_annee_id = ?", anneeID).
		Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture du journal")
	}

	buckets := service.ComputeBuckets(entries)
	return helper.JsonOK(c, "OK", fiber.Map{
		"compartiments": buckets,
		"total":         buckets.Total(),
	})
}

/* ============================================
   CREATE / UPDATE / DELETE
============================================ */

func (ctl *JournalController) Create(c *fiber.Ctx) error {
	var p dto.JournalEntryCreateDTO
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

	userID, err := helperAuth.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Utilisateur non identifié")
	}

	ent := p.ToModel(anneeID, userID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de création de l'écriture")
	}
	return helper.JsonCreated(c, "Écriture enregistrée", ent)
}

func (ctl *JournalController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}

	var p dto.JournalEntryUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := ctl.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var ent model.JournalEntryModel
	if err := ctl.DB.Where("ecriture_id = ?", id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Écriture introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture")
	}

	p.Apply(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de mise à jour")
	}
	return helper.JsonOK(c, "Écriture mise à jour", ent)
}

func (ctl *JournalController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}

	res := ctl.DB.Where("ecriture_id = ?", id).Delete(&model.JournalEntryModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de suppression")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Écriture introuvable")
	}
	return helper.JsonOK(c, "Écriture supprimée", nil)
}

/* ============================================
   Helpers
============================================ */

func (ctl *JournalController) fetchWindow(anneeID uuid.UUID, from, to time.Time) ([]model.JournalEntryModel, error) {
	var entries []model.JournalEntryModel
	err := ctl.DB.
		Where("ecriture_annee_id = ? AND ecriture_date >= ? AND ecriture_date < ?", anneeID, from, to).
		Find(&entries).Error
	return entries, err
}

// applyDateWindow: filtre optionnel start_date/end_date sur la liste.
func applyDateWindow(c *fiber.Ctx, q *gorm.DB) (*gorm.DB, error) {
	startRaw := strings.TrimSpace(c.Query("start_date"))
	endRaw := strings.TrimSpace(c.Query("end_date"))
	if startRaw == "" && endRaw == "" {
		return q, nil
	}
	if startRaw == "" || endRaw == "" {
		return nil, errors.New("start_date et end_date vont de pair")
	}
	start, err := helper.ParseDate(startRaw)
	if err != nil {
		return nil, err
	}
	end, err := helper.ParseDate(endRaw)
	if err != nil {
		return nil, err
	}
	from, to := helper.DateWindow(start, end)
	return q.Where("ecriture_date >= ? AND ecriture_date < ?", from, to), nil
}
