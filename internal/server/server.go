package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/atriumhq/atrium/internal/audit"
	auditdomain "github.com/atriumhq/atrium/internal/audit/domain"
	"github.com/atriumhq/atrium/internal/auth"
	authdomain "github.com/atriumhq/atrium/internal/auth/domain"
	"github.com/atriumhq/atrium/internal/auth/session"
	"github.com/atriumhq/atrium/internal/client"
	clientdomain "github.com/atriumhq/atrium/internal/client/domain"
	"github.com/atriumhq/atrium/internal/config"
	"github.com/atriumhq/atrium/internal/department"
	departmentdomain "github.com/atriumhq/atrium/internal/department/domain"
	"github.com/atriumhq/atrium/internal/employee"
	employeedomain "github.com/atriumhq/atrium/internal/employee/domain"
	"github.com/atriumhq/atrium/internal/events"
	"github.com/atriumhq/atrium/internal/invoice"
	invoicedomain "github.com/atriumhq/atrium/internal/invoice/domain"
	"github.com/atriumhq/atrium/internal/payroll"
	"github.com/atriumhq/atrium/internal/project"
	projectdomain "github.com/atriumhq/atrium/internal/project/domain"
	"github.com/atriumhq/atrium/internal/scan"
	scandomain "github.com/atriumhq/atrium/internal/scan/domain"
)

var Module = fx.Module("http.server",
	MetricsModule,
	fx.Provide(registerGin),
	events.Module,
	audit.Module,
	auth.Module,
	session.Module,
	employee.Module,
	department.Module,
	project.Module,
	client.Module,
	invoice.Module,
	payroll.Module,
	scan.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, metrics *HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(MetricsMiddleware(metrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger, metrics *HTTPMetrics) *gin.Engine {
	return NewEngine(log, metrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine        *gin.Engine
	cfg           config.Config
	db            *gorm.DB
	genID         *snowflake.Node
	sessions      *session.Manager
	authSvc       authdomain.Service
	auditSvc      auditdomain.Service
	employeeSvc   employeedomain.Service
	departmentSvc departmentdomain.Service
	projectSvc    projectdomain.Service
	clientSvc     clientdomain.Service
	invoiceSvc    invoicedomain.Service
	payrollSvc    *payroll.Service
	scanSvc       scandomain.Service

	employeeRepo   employeedomain.Repository
	departmentRepo departmentdomain.Repository
	projectRepo    projectdomain.Repository
	clientRepo     clientdomain.Repository
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	DB            *gorm.DB
	GenID         *snowflake.Node
	Sessions      *session.Manager
	AuthSvc       authdomain.Service
	AuditSvc      auditdomain.Service
	EmployeeSvc   employeedomain.Service
	DepartmentSvc departmentdomain.Service
	ProjectSvc    projectdomain.Service
	ClientSvc     clientdomain.Service
	InvoiceSvc    invoicedomain.Service
	PayrollSvc    *payroll.Service
	ScanSvc       scandomain.Service

	EmployeeRepo   employeedomain.Repository
	DepartmentRepo departmentdomain.Repository
	ProjectRepo    projectdomain.Repository
	ClientRepo     clientdomain.Repository
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		db:            p.DB,
		genID:         p.GenID,
		sessions:      p.Sessions,
		authSvc:       p.AuthSvc,
		auditSvc:      p.AuditSvc,
		employeeSvc:   p.EmployeeSvc,
		departmentSvc: p.DepartmentSvc,
		projectSvc:    p.ProjectSvc,
		clientSvc:     p.ClientSvc,
		invoiceSvc:    p.InvoiceSvc,
		payrollSvc:    p.PayrollSvc,
		scanSvc:       p.ScanSvc,

		employeeRepo:   p.EmployeeRepo,
		departmentRepo: p.DepartmentRepo,
		projectRepo:    p.ProjectRepo,
		clientRepo:     p.ClientRepo,
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	authGroup := s.engine.Group("/auth")

	authGroup.POST("/signup", s.Signup)
	authGroup.POST("/login", s.Login)
	authGroup.POST("/logout", s.Logout)
	authGroup.GET("/me", s.AuthRequired(), s.Me)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api", s.AuthRequired())

	employees := api.Group("/employees")
	{
		employees.POST("", s.CreateEmployee)
		employees.GET("", s.ListEmployees)
		employees.GET("/:id", s.GetEmployee)
		employees.PATCH("/:id", s.UpdateEmployee)
		employees.DELETE("/:id", s.DeleteEmployee)
	}

	departments := api.Group("/departments")
	{
		departments.POST("", s.CreateDepartment)
		departments.GET("", s.ListDepartments)
		departments.GET("/:id", s.GetDepartment)
		departments.PATCH("/:id", s.UpdateDepartment)
		departments.DELETE("/:id", s.DeleteDepartment)
	}

	projects := api.Group("/projects")
	{
		projects.POST("", s.CreateProject)
		projects.GET("", s.ListProjects)
		projects.GET("/:id", s.GetProject)
		projects.PATCH("/:id", s.UpdateProject)
		projects.DELETE("/:id", s.DeleteProject)
	}

	clients := api.Group("/clients")
	{
		clients.POST("", s.CreateClient)
		clients.GET("", s.ListClients)
		clients.GET("/:id", s.GetClient)
		clients.PATCH("/:id", s.UpdateClient)
		clients.DELETE("/:id", s.DeleteClient)
	}

	invoices := api.Group("/invoices")
	{
		invoices.POST("", s.CreateInvoice)
		invoices.GET("", s.ListInvoices)
		invoices.GET("/summary", s.InvoiceSummary)
		invoices.GET("/:id", s.GetInvoice)
		invoices.DELETE("/:id", s.DeleteInvoice)
	}

	scans := api.Group("/scans")
	{
		scans.POST("", s.ProcessScan)
		scans.POST("/:scanId/confirm", s.ConfirmScan)
	}

	api.GET("/payroll", s.ListPayroll)
	api.GET("/payroll/summary", s.PayrollSummary)
	api.GET("/dashboard", s.Dashboard)
	api.GET("/audit-logs", s.ListAuditLogs)
}
