// file: internals/features/users/users/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ecoleadmin_backend/internals/features/users/users/dto"
	model "ecoleadmin_backend/internals/features/users/users/model"
	helper "ecoleadmin_backend/internals/helpers"
	helperAuth "ecoleadmin_backend/internals/helpers/auth"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB, v *validator.Validate) *UserController {
	if v == nil {
		v = validator.New()
	}
	return &UserController{DB: db, Validator: v}
}

/* ============================================
   LIST / DETAIL
   GET /api/utilisateurs?page&limit&search
   GET /api/utilisateurs/:id
============================================ */

func (ctl *UserController) List(c *fiber.Ctx) error {
	paging, err := helper.ResolvePaging(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctl.DB.Model(&model.UserModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(utilisateur_nom_affichage) LIKE ? OR LOWER(utilisateur_email) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de comptage des utilisateurs")
	}

	var users []model.UserModel
	if err := q.Order("utilisateur_nom_affichage ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture des utilisateurs")
	}

	return helper.JsonList(c, users, helper.BuildPagination(total, paging))
}

func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}

	var user model.UserModel
	if err := ctl.DB.Where("utilisateur_id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Utilisateur introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture")
	}
	return helper.JsonOK(c, "OK", user)
}

/* ============================================
   CREATE / UPDATE
   Pas de DELETE: un compte se désactive, il ne se supprime jamais.
============================================ */

func (ctl *UserController) Create(c *fiber.Ctx) error {
	var p dto.UserCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := ctl.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := p.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de hachage du mot de passe")
	}

	if err := ctl.DB.Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Un compte existe déjà avec cet email")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de création du compte")
	}
	return helper.JsonCreated(c, "Compte créé", user)
}

func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invalide")
	}

	var p dto.UserUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := ctl.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.UserModel
	if err := ctl.DB.Where("utilisateur_id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Utilisateur introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture")
	}

	// garde-fou: on ne se désactive pas soi-même
	if p.EstActif != nil && !*p.EstActif {
		if callerID, err := helperAuth.GetUserIDFromLocals(c); err == nil && callerID == user.UtilisateurID {
			return helper.JsonError(c, fiber.StatusConflict, "Impossible de désactiver son propre compte")
		}
	}

	if err := p.Apply(&user); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de hachage du mot de passe")
	}
	if err := ctl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de mise à jour")
	}
	return helper.JsonOK(c, "Compte mis à jour", user)
}
