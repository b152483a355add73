package handlers

import (
	"log"
	"net/http"
	"winnet_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes maintenance jobs.
type AdminHandler struct {
	cascade usecase.ICascadeUseCase
}

func NewAdminHandler(cascade usecase.ICascadeUseCase) *AdminHandler {
	return &AdminHandler{cascade: cascade}
}

// Reconcile repairs approved quotes missing their sale or inflow entry. Partial
// failures are listed in the report and do not fail the request.
//
// @Summary     Repair approved quotes missing sale or entry
// @Tags        admin
// @Produce     json
// @Success     200  {object}  usecase.ReconcileReport
// @Failure     500  {object}  pkg.HTTPError
// @Router      /admin/reconcile [post]
func (h *AdminHandler) Reconcile(c *gin.Context) {
	report, err := h.cascade.Reconcile(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	log.Printf("[admin][handler] reconcile scanned=%d repaired=%d failed=%d", report.Scanned, len(report.Repaired), len(report.Failed))
	c.JSON(http.StatusOK, report)
}
