package httpx

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/jm_orders/internal/domain"
)

// ParseQuerySpec — параметры представления из query-строки (status, q, sort).
// Отсутствующие значения берутся по умолчанию; неизвестный ключ сортировки — ошибка.
func ParseQuerySpec(c *gin.Context) (domain.QuerySpec, error) {
	spec := domain.DefaultQuerySpec()

	if v := strings.TrimSpace(c.Query("status")); v != "" {
		spec.StatusFilter = v
	}
	spec.SearchQuery = c.Query("q")

	key, err := domain.ParseSortKey(c.Query("sort"))
	if err != nil {
		return domain.QuerySpec{}, err
	}
	spec.SortKey = key
	return spec, nil
}

// ErrorBody — тело ответа с ошибкой.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// AbortError — прерывает обработку и отвечает JSON-ошибкой.
func AbortError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: code, Message: message})
}
