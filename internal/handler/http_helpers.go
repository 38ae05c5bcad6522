package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// respondValidationError 按照字段分组返回 422
func respondValidationError(c *gin.Context, verr *service.ValidationError) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": verr.Message(),
		"errors":  verr.Fields,
	})
}

// respondUnexpected 返回 500，细节只在 debug 模式下暴露
func (a *API) respondUnexpected(c *gin.Context, err error, message string) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg(message)
	if a.debug {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondError(c, http.StatusInternalServerError, message)
}

// asValidationError unwraps a *service.ValidationError if present.
func asValidationError(err error) (*service.ValidationError, bool) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// requestBaseURL 从请求中取 scheme+host，供上传文件补全完整地址使用
func requestBaseURL(c *gin.Context) string {
	if c.Request == nil || c.Request.Host == "" {
		return ""
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}
