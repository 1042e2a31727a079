package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubstride/interntrack/internal/app/models"
	"github.com/clubstride/interntrack/internal/app/models/dto"
)

// MetaController serves the public form catalogs
type MetaController struct{}

// NewMetaController creates a new MetaController
func NewMetaController() *MetaController {
	return &MetaController{}
}

// GetMeta returns the school and deliverable type catalogs plus the roles a
// requester may ask for.
func (c *MetaController) GetMeta(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.MetaResponse{
		Schools:          models.Schools,
		DeliverableTypes: models.DeliverableTypes,
		Roles:            []string{string(models.RoleCoreIntern), string(models.RoleLeadIntern)},
	})
}
