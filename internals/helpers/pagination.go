package helper

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

type Paging struct {
	Page    int
	PerPage int
	Offset  int
	Limit   int
}

// ResolvePaging lit ?page= et ?limit= (alias ?per_page=) et normalise.
// page < 1 et limit hors [1,100] sont des erreurs 400, les valeurs absentes
// prennent les défauts.
func ResolvePaging(c *fiber.Ctx) (Paging, error) {
	pageStr := strings.TrimSpace(c.Query("page", strconv.Itoa(DefaultPage)))
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return Paging{}, fmt.Errorf("paramètre page invalide: %q", pageStr)
	}

	limitStr := strings.TrimSpace(c.Query("limit"))
	if limitStr == "" {
		limitStr = strings.TrimSpace(c.Query("per_page", strconv.Itoa(DefaultPerPage)))
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > MaxPerPage {
		return Paging{}, fmt.Errorf("paramètre limit invalide: %q (attendu 1..%d)", limitStr, MaxPerPage)
	}

	return Paging{
		Page:    page,
		PerPage: limit,
		Offset:  (page - 1) * limit,
		Limit:   limit,
	}, nil
}

// Meta de pagination pour la réponse
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

func BuildPagination(total int64, p Paging) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(p.PerPage)))
	}
	return Pagination{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    p.Page > 1,
		HasNext:    totalPages > 0 && p.Page < totalPages,
	}
}

// PageSlice retourne la tranche [offset, offset+limit) d'un résultat déjà
// chargé. Utilisé par les requêtes fenêtrées qui renvoient à la fois le total
// non paginé et la page affichée.
func PageSlice[T any](items []T, p Paging) []T {
	if p.Offset >= len(items) {
		return []T{}
	}
	end := p.Offset + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[p.Offset:end]
}
