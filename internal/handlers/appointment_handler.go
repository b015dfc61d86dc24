package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-backoffice/internal/dto"
	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/httpresp"
	"github.com/BruksfildServices01/salon-backoffice/internal/middleware"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/policy"
	"github.com/BruksfildServices01/salon-backoffice/internal/timezone"
	appointmentuc "github.com/BruksfildServices01/salon-backoffice/internal/usecase/appointment"
	"github.com/BruksfildServices01/salon-backoffice/internal/validation"
)

type AppointmentHandler struct {
	repo         domain.Repository
	create       *appointmentuc.CreateAppointment
	list         *appointmentuc.ListAppointments
	changeStatus *appointmentuc.ChangeAppointmentStatus
	tz           string
}

func NewAppointmentHandler(
	repo domain.Repository,
	create *appointmentuc.CreateAppointment,
	list *appointmentuc.ListAppointments,
	changeStatus *appointmentuc.ChangeAppointmentStatus,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:         repo,
		create:       create,
		list:         list,
		changeStatus: changeStatus,
		tz:           tz,
	}
}

// ======================================================
// LIST (?status=, ?employee_id=, ?client_id=, ?date=YYYY-MM-DD)
// ======================================================
func (h *AppointmentHandler) List(c *gin.Context) {
	in := appointmentuc.ListInput{
		Status:     c.Query("status"),
		EmployeeID: queryUint(c, "employee_id"),
		ClientID:   queryUint(c, "client_id"),
	}

	if raw := c.Query("date"); raw != "" {
		day, err := time.ParseInLocation(dto.DateLayout, raw, timezone.Location(h.tz))
		if err != nil {
			fail(c, validation.Errors{"date": validation.ReasonInvalidFormat})
			return
		}
		in.Date = &day
	}

	aps, err := h.list.Execute(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.List(c, dto.Map(aps, dto.NewAppointmentView))
}

// Retrieve returns one appointment; clients may only read their own.
func (h *AppointmentHandler) Retrieve(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	if !ownsAppointment(middleware.SubjectFrom(c), ap) {
		fail(c, httperr.ErrNotOwner)
		return
	}

	httpresp.OK(c, dto.NewAppointmentView(*ap))
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.AppointmentCreate
	if !bindJSON(c, &req) {
		return
	}

	in := appointmentuc.CreateInput{
		Actor:         middleware.SubjectFrom(c),
		ClientID:      req.ClientID,
		EmployeeID:    req.EmployeeID,
		PromoCode:     req.PromoCode,
		ServiceIDs:    req.ServiceIDs,
		ScheduledTime: req.ScheduledTime,
	}
	if req.WalkIn != nil {
		in.WalkIn = &appointmentuc.WalkIn{Name: req.WalkIn.Name, Phone: req.WalkIn.Phone}
	}

	ap, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Created(c, dto.NewAppointmentView(*ap))
}

// Update accepts only the status field; anything else in the body is ignored.
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.StatusUpdate
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.changeStatus.Execute(c.Request.Context(), middleware.SubjectFrom(c), id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentView(*ap))
}

func ownsAppointment(actor policy.Subject, ap *models.Appointment) bool {
	if !actor.Is(policy.RoleClient) {
		return true
	}
	return ap.Client != nil && ap.Client.UserID == actor.UserID
}
