package routes

import (
	"contractor_escrow/internal/adapter/http/handlers"
	"contractor_escrow/internal/adapter/http/middleware"
	"contractor_escrow/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects = "/projects"
	PathDeposits = "/deposits"
	PathAdmin    = "/admin"
)

func addProjectRoutes(rg *gin.RouterGroup, projects *handlers.ProjectHandler, deposits *handlers.DepositHandler, bookings *handlers.BookingHandler) {
	p := rg.Group(PathProjects)
	{
		p.POST("", projects.CreateProject)
		p.GET("/:id", projects.GetProject)
		p.POST("/:id/publish", projects.Publish)
		p.POST("/:id/quotes", projects.SubmitQuote)
		p.GET("/:id/quotes", projects.ListQuotes)
		p.POST("/:id/quotes/:quote_id/select", projects.SelectQuote)
		p.POST("/:id/agreement", projects.AcceptAgreement)
		p.POST("/:id/fund", projects.Fund)
		p.POST("/:id/start", projects.StartWork)
		p.POST("/:id/completion", projects.RequestCompletion)
		p.POST("/:id/approve", projects.ApproveCompletion)
		p.POST("/:id/issues", projects.RaiseIssue)
		p.POST("/:id/cancel", projects.Cancel)
		p.POST("/:id/close", projects.Close)

		p.GET("/:id/deposits/preview", deposits.Preview)
		p.POST("/:id/deposits", deposits.Create)
		p.GET("/:id/deposits", deposits.ListByProject)

		p.GET("/:id/bookings/status", bookings.Status)
		p.POST("/:id/bookings", bookings.CreateBooking)
		p.GET("/:id/bookings", bookings.ListByProject)
	}
}

func addDepositRoutes(rg *gin.RouterGroup, deposits *handlers.DepositHandler) {
	d := rg.Group(PathDeposits)
	{
		d.GET("/:id", deposits.GetDeposit)
		d.POST("/:id/capture", deposits.Capture)
		d.POST("/:id/attendance", deposits.RecordAttendance)
		d.POST("/:id/disposition", deposits.Dispose)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, cases *handlers.CaseHandler) {
	admin := rg.Group(PathAdmin, middleware.RequireRole(entities.RoleAdmin))
	{
		admin.GET("/cases", cases.ListCases)
		admin.GET("/cases/summary", cases.Summary)
		admin.GET("/cases/:id", cases.GetCase)
		admin.POST("/cases/:id/document", cases.RequestDocumentUpload)
		admin.POST("/cases/:id/pending-external", cases.MarkPendingExternal)
		admin.POST("/cases/:id/resolve", cases.Resolve)
	}
}
