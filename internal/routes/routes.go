package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	"github.com/BruksfildServices01/salon-backoffice/internal/auth"
	"github.com/BruksfildServices01/salon-backoffice/internal/config"
	"github.com/BruksfildServices01/salon-backoffice/internal/dto"
	"github.com/BruksfildServices01/salon-backoffice/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-backoffice/internal/infra/repository"
	"github.com/BruksfildServices01/salon-backoffice/internal/logger"
	"github.com/BruksfildServices01/salon-backoffice/internal/media"
	"github.com/BruksfildServices01/salon-backoffice/internal/metrics"
	"github.com/BruksfildServices01/salon-backoffice/internal/middleware"
	"github.com/BruksfildServices01/salon-backoffice/internal/policy"
	"github.com/BruksfildServices01/salon-backoffice/internal/projection"
	ucAppointment "github.com/BruksfildServices01/salon-backoffice/internal/usecase/appointment"
	ucClient "github.com/BruksfildServices01/salon-backoffice/internal/usecase/client"
	ucPurchase "github.com/BruksfildServices01/salon-backoffice/internal/usecase/purchase"
	"github.com/BruksfildServices01/salon-backoffice/internal/validation"
	"github.com/BruksfildServices01/salon-backoffice/internal/validators"
)

// Deps are the singletons built in main and shared by every route.
type Deps struct {
	DB        *gorm.DB
	Config    *config.Config
	Log       *zap.Logger
	Issuer    *auth.Issuer
	Blacklist auth.Blacklist
	Redis     *redis.Client // optional
	Media     media.Resolver
	Metrics   *metrics.Metrics
	Audit     *audit.Dispatcher

	// EmailDomain overrides the registration domain check; nil picks one from
	// Config.CheckEmailDomain.
	EmailDomain validators.EmailDomainChecker
}

// actions maps one resource's operations onto handlers. A nil handler, or an
// action the projection table does not offer, answers 405.
type actions struct {
	list, retrieve, create, update, destroy gin.HandlerFunc
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.Register(v)
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		logger.GinMiddleware(d.Log),
		logger.Recovery(d.Log),
		middleware.CORSMiddleware(d.Config.CORSOrigins),
		d.Metrics.Middleware(),
	)
	r.HandleMethodNotAllowed = true
	r.NoMethod(handlers.NotAllowed)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	purchaseRepo := infraRepo.NewPurchaseGormRepository(d.DB)
	presenter := dto.NewPresenter(d.Media)

	checkDomain := d.EmailDomain
	if checkDomain == nil {
		checkDomain = validators.AcceptAnyDomain
		if d.Config.CheckEmailDomain {
			checkDomain = validators.DNSDomainChecker(nil, 3*time.Second)
		}
	}

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucClient.NewRegister(d.DB, d.Audit, checkDomain)

	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, d.Audit)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo, d.Config.BusinessTimezone)
	changeAppointmentStatusUC := ucAppointment.NewChangeAppointmentStatus(appointmentRepo, d.Audit)

	changePurchaseStatusUC := ucPurchase.NewChangePurchaseStatus(purchaseRepo, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Issuer, d.Blacklist, registerUC, presenter, d.Audit)
	healthHandler := handlers.NewHealthHandler(d.DB, d.Redis)

	newsHandler := handlers.NewNewsHandler(d.DB, presenter)
	employeeHandler := handlers.NewEmployeeHandler(d.DB, presenter, d.Audit)
	clientHandler := handlers.NewClientHandler(d.DB, registerUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentRepo,
		createAppointmentUC,
		listAppointmentsUC,
		changeAppointmentStatusUC,
		d.Config.BusinessTimezone,
	)
	purchaseHandler := handlers.NewPurchaseHandler(d.DB, purchaseRepo, changePurchaseStatusUC)
	productHandler := handlers.NewProductHandler(d.DB, presenter)
	productTypeHandler := handlers.NewProductTypeHandler(d.DB, presenter)
	serviceGroupHandler := handlers.NewServiceGroupHandler(d.DB, presenter)
	serviceHandler := handlers.NewServiceHandler(d.DB, presenter)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", healthHandler.Live)
	r.GET("/health/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api/v1")
	api.Use(middleware.Authenticate(d.Issuer, d.Blacklist, infraRepo.NewUserGormRepository(d.DB)))
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", middleware.RequireAuth(), authHandler.Logout)
		api.GET("/auth/me", middleware.RequireAuth(), authHandler.Me)

		// ------------------------------
		// RESOURCES
		// ------------------------------
		mount(api, policy.News, actions{
			list:     newsHandler.List,
			retrieve: newsHandler.Retrieve,
		}, d.Metrics)

		mount(api, policy.Employees, actions{
			list:     employeeHandler.List,
			retrieve: employeeHandler.Retrieve,
			update:   employeeHandler.UpdateStatus,
		}, d.Metrics)

		mount(api, policy.Clients, actions{
			list:     clientHandler.List,
			retrieve: clientHandler.Retrieve,
			create:   clientHandler.Create,
			update:   clientHandler.Update,
		}, d.Metrics)

		mount(api, policy.Appointments, actions{
			list:     appointmentHandler.List,
			retrieve: appointmentHandler.Retrieve,
			create:   appointmentHandler.Create,
			update:   appointmentHandler.Update,
		}, d.Metrics)

		mount(api, policy.Purchases, actions{
			list:     purchaseHandler.List,
			retrieve: purchaseHandler.Retrieve,
			update:   purchaseHandler.Update,
		}, d.Metrics)

		mount(api, policy.Products, actions{
			list:     productHandler.List,
			retrieve: productHandler.Retrieve,
			update:   productHandler.Update,
		}, d.Metrics)

		mount(api, policy.ProductTypes, actions{
			list:     productTypeHandler.List,
			retrieve: productTypeHandler.Retrieve,
			update:   productTypeHandler.Update,
		}, d.Metrics)

		mount(api, policy.ServiceGroups, actions{
			list:     serviceGroupHandler.List,
			retrieve: serviceGroupHandler.Retrieve,
			update:   serviceGroupHandler.Update,
		}, d.Metrics)

		mount(api, policy.Services, actions{
			list:     serviceHandler.List,
			retrieve: serviceHandler.Retrieve,
			update:   serviceHandler.Update,
		}, d.Metrics)

		mount(api, policy.AuditLogs, actions{
			list:     auditLogsHandler.List,
			retrieve: auditLogsHandler.Retrieve,
		}, d.Metrics)
	}
}

// mount registers the five conventional routes of res. Offered actions run behind
// the policy table; the rest answer 405 to any logged-in caller, whatever the role.
func mount(g *gin.RouterGroup, res policy.Resource, a actions, rec middleware.DenialRecorder) {
	base := "/" + string(res)
	item := base + "/:id"

	chain := func(act policy.Action, h gin.HandlerFunc) []gin.HandlerFunc {
		if h == nil || !projection.Offered(res, act) {
			return []gin.HandlerFunc{middleware.RequireAuth(), handlers.NotAllowed}
		}
		return []gin.HandlerFunc{middleware.Authorize(policy.Default, res, act, rec), h}
	}

	g.GET(base, chain(policy.ActionList, a.list)...)
	g.POST(base, chain(policy.ActionCreate, a.create)...)
	g.GET(item, chain(policy.ActionRetrieve, a.retrieve)...)
	g.PUT(item, chain(policy.ActionUpdate, a.update)...)
	g.PATCH(item, chain(policy.ActionUpdate, a.update)...)
	g.DELETE(item, chain(policy.ActionDestroy, a.destroy)...)

	// collection-level writes the API never offers
	g.Handle(http.MethodPut, base, middleware.RequireAuth(), handlers.NotAllowed)
	g.Handle(http.MethodPatch, base, middleware.RequireAuth(), handlers.NotAllowed)
	g.Handle(http.MethodDelete, base, middleware.RequireAuth(), handlers.NotAllowed)
}
