package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backoffice/internal/dto"
	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/httpresp"
	"github.com/BruksfildServices01/salon-backoffice/internal/middleware"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/policy"
	clientuc "github.com/BruksfildServices01/salon-backoffice/internal/usecase/client"
)

type ClientHandler struct {
	db       *gorm.DB
	register *clientuc.Register
}

func NewClientHandler(db *gorm.DB, register *clientuc.Register) *ClientHandler {
	return &ClientHandler{db: db, register: register}
}

// ======================================================
// LIST (?query=); clients only ever see themselves
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	p := paginate(c)
	actor := middleware.SubjectFrom(c)

	q := h.db.WithContext(c.Request.Context()).
		Model(&models.Client{}).
		Joins("JOIN users ON users.id = clients.user_id")

	if actor.Is(policy.RoleClient) {
		q = q.Where("clients.user_id = ?", actor.UserID)
	}
	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(users.name) LIKE ? OR LOWER(users.surname) LIKE ? OR clients.phone LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	total, err := findPage(q.Order("clients.id ASC"), p, &clients, "User")
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Page(c, dto.Map(clients, dto.NewClientList), total, p.page, p.limit)
}

func (h *ClientHandler) Retrieve(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	cl, err := h.load(c, id)
	if err != nil {
		fail(c, err)
		return
	}

	actor := middleware.SubjectFrom(c)
	if actor.Is(policy.RoleClient) && cl.UserID != actor.UserID {
		fail(c, httperr.ErrNotOwner)
		return
	}

	httpresp.OK(c, dto.NewClientDetail(*cl))
}

// Create registers a new client; same flow as /auth/register without the token.
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.ClientCreate
	if !bindJSON(c, &req) {
		return
	}

	cl, err := h.register.Execute(c.Request.Context(), registerInput(req))
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Created(c, dto.NewClientDetail(*cl))
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.ClientUpdate
	if !bindJSON(c, &req) {
		return
	}

	cl, err := h.load(c, id)
	if err != nil {
		fail(c, err)
		return
	}

	if req.Phone != nil {
		cl.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		cl.Address = strings.TrimSpace(*req.Address)
	}
	if req.Birthdate != nil {
		bd := req.Birthdate.Time
		cl.Birthdate = &bd
	}

	if err := h.db.WithContext(c.Request.Context()).
		Model(cl).
		Select("phone", "address", "birthdate", "updated_at").
		Updates(cl).Error; err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, dto.NewClientDetail(*cl))
}

func (h *ClientHandler) load(c *gin.Context, id uint) (*models.Client, error) {
	var cl models.Client
	if err := h.db.WithContext(c.Request.Context()).
		Preload("User").
		First(&cl, id).Error; err != nil {
		return nil, err
	}
	return &cl, nil
}

func registerInput(req dto.ClientCreate) clientuc.RegisterInput {
	var birthdate *time.Time
	if req.Birthdate != nil {
		bd := req.Birthdate.Time
		birthdate = &bd
	}
	return clientuc.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		Surname:   req.Surname,
		Phone:     req.Phone,
		Address:   req.Address,
		Birthdate: birthdate,
	}
}
