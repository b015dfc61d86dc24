package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/purchase"
	"github.com/BruksfildServices01/salon-backoffice/internal/dto"
	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/httpresp"
	"github.com/BruksfildServices01/salon-backoffice/internal/middleware"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/policy"
	purchaseuc "github.com/BruksfildServices01/salon-backoffice/internal/usecase/purchase"
)

type PurchaseHandler struct {
	db           *gorm.DB
	repo         domain.Repository
	changeStatus *purchaseuc.ChangePurchaseStatus
}

func NewPurchaseHandler(
	db *gorm.DB,
	repo domain.Repository,
	changeStatus *purchaseuc.ChangePurchaseStatus,
) *PurchaseHandler {
	return &PurchaseHandler{db: db, repo: repo, changeStatus: changeStatus}
}

// ======================================================
// LIST (?status=, ?client_id=)
// ======================================================
func (h *PurchaseHandler) List(c *gin.Context) {
	p := paginate(c)

	q := h.db.WithContext(c.Request.Context()).Model(&models.Purchase{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if clientID := queryUint(c, "client_id"); clientID != 0 {
		q = q.Where("client_id = ?", clientID)
	}

	var purchases []models.Purchase
	total, err := findPage(q.Order("created_at DESC"), p, &purchases,
		"Client.User", "Discount", "Products")
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Page(c, dto.Map(purchases, dto.NewPurchaseView), total, p.page, p.limit)
}

func (h *PurchaseHandler) Retrieve(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	pu, err := h.repo.GetPurchase(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	actor := middleware.SubjectFrom(c)
	if actor.Is(policy.RoleClient) && (pu.Client == nil || pu.Client.UserID != actor.UserID) {
		fail(c, httperr.ErrNotOwner)
		return
	}

	httpresp.OK(c, dto.NewPurchaseView(*pu))
}

func (h *PurchaseHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.StatusUpdate
	if !bindJSON(c, &req) {
		return
	}

	pu, err := h.changeStatus.Execute(c.Request.Context(), middleware.SubjectFrom(c), id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, dto.NewPurchaseView(*pu))
}
