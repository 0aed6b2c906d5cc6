package admin

import (
	"strconv"
	"time"

	"github.com/trymyday-shop/internal/http/handlers/shared"
	"github.com/trymyday-shop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// currentOperator 从上下文取当前管理端操作者的邮箱（审计用）
func currentOperator(c *gin.Context) string {
	return shared.GetContextString(c, "email")
}

// currentRole 从上下文取当前操作者角色
func currentRole(c *gin.Context) string {
	return shared.GetContextString(c, "role")
}

// parseIDParam 解析路径中的数字 ID，失败时已写出响应
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "identifiant invalide")
		return 0, false
	}
	return uint(id), true
}

// parsePageQuery 解析分页查询参数
func parsePageQuery(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return shared.NormalizePagination(page, pageSize)
}

// parseTimeRangeQuery 解析 from/to 时间范围（RFC3339 或 2006-01-02）
func parseTimeRangeQuery(c *gin.Context) (*time.Time, *time.Time) {
	return parseQueryTime(c.Query("from")), parseQueryTime(c.Query("to"))
}

func parseQueryTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t
	}
	return nil
}
