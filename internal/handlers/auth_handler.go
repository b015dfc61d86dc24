package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	"github.com/BruksfildServices01/salon-backoffice/internal/auth"
	"github.com/BruksfildServices01/salon-backoffice/internal/dto"
	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/httpresp"
	"github.com/BruksfildServices01/salon-backoffice/internal/middleware"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	clientuc "github.com/BruksfildServices01/salon-backoffice/internal/usecase/client"
)

type AuthHandler struct {
	db        *gorm.DB
	issuer    *auth.Issuer
	blacklist auth.Blacklist
	register  *clientuc.Register
	presenter *dto.Presenter
	audit     *audit.Dispatcher
}

func NewAuthHandler(
	db *gorm.DB,
	issuer *auth.Issuer,
	blacklist auth.Blacklist,
	register *clientuc.Register,
	presenter *dto.Presenter,
	audit *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		db:        db,
		issuer:    issuer,
		blacklist: blacklist,
		register:  register,
		presenter: presenter,
		audit:     audit,
	}
}

// --------- Responses ---------

type TokenResponse struct {
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expires_at"`
	User      dto.UserDetail      `json:"user"`
	Client    *dto.ClientDetail   `json:"client,omitempty"`
	Employee  *dto.EmployeeDetail `json:"employee,omitempty"`
}

type MeResponse struct {
	User     dto.UserDetail      `json:"user"`
	Client   *dto.ClientDetail   `json:"client,omitempty"`
	Employee *dto.EmployeeDetail `json:"employee,omitempty"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.ClientCreate
	if !bindJSON(c, &req) {
		return
	}

	cl, err := h.register.Execute(c.Request.Context(), registerInput(req))
	if err != nil {
		fail(c, err)
		return
	}

	token, claims, err := h.issuer.Issue(cl.User.ID, string(cl.User.Role))
	if err != nil {
		fail(c, err)
		return
	}

	detail := dto.NewClientDetail(*cl)
	httpresp.Created(c, TokenResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      dto.NewUserDetail(cl.User),
		Client:    &detail,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()

	var user models.User
	if err := h.db.WithContext(ctx).
		Where("email = ?", models.NormalizeEmail(req.Email)).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, httperr.ErrInvalidCredentials)
			return
		}
		fail(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		fail(c, httperr.ErrInvalidCredentials)
		return
	}
	if !user.IsActive {
		fail(c, httperr.ErrInactiveUser)
		return
	}

	now := time.Now()
	if err := h.db.WithContext(ctx).
		Model(&user).
		UpdateColumn("last_login_at", now).Error; err != nil {
		fail(c, err)
		return
	}
	user.LastLoginAt = &now

	token, claims, err := h.issuer.Issue(user.ID, string(user.Role))
	if err != nil {
		fail(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_logged_in",
		Entity:   "user",
		EntityID: &user.ID,
	})

	me, err := h.profile(c, user)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, TokenResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      me.User,
		Client:    me.Client,
		Employee:  me.Employee,
	})
}

// Logout revokes the presented token until it would have expired anyway.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		httperr.Unauthorized(c, "authentication_required", "authentication credentials were not provided")
		return
	}

	if err := h.blacklist.Revoke(c.Request.Context(), claims.ID, claims.Remaining()); err != nil {
		fail(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *AuthHandler) Me(c *gin.Context) {
	actor := middleware.SubjectFrom(c)

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).First(&user, actor.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_token", "user no longer exists")
			return
		}
		fail(c, err)
		return
	}

	me, err := h.profile(c, user)
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, me)
}

// profile attaches the role-specific profile row, if the user has one.
func (h *AuthHandler) profile(c *gin.Context, user models.User) (MeResponse, error) {
	ctx := c.Request.Context()
	out := MeResponse{User: dto.NewUserDetail(user)}

	switch user.Role {
	case models.RoleClient:
		var cl models.Client
		err := h.db.WithContext(ctx).Where("user_id = ?", user.ID).First(&cl).Error
		if err == nil {
			cl.User = user
			detail := dto.NewClientDetail(cl)
			out.Client = &detail
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return out, err
		}

	case models.RoleEmployee:
		var e models.Employee
		err := h.db.WithContext(ctx).
			Preload("WorkPosition").
			Where("user_id = ?", user.ID).
			First(&e).Error
		if err == nil {
			e.User = user
			detail := h.presenter.EmployeeDetail(ctx, e)
			out.Employee = &detail
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return out, err
		}
	}

	return out, nil
}
