package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ivelichko/pennywise/internal/advisor"
	"github.com/ivelichko/pennywise/internal/charts"
	"github.com/ivelichko/pennywise/internal/service"
)

// Server is the HTTP surface over the ledger. It owns no state of its own:
// every handler reads from or writes through the ledger, so the response
// always reflects the optimistic in-memory collections.
type Server struct {
	ledger  *service.Ledger
	advisor *advisor.Advisor
	charts  *charts.Generator
	engine  *gin.Engine
}

func New(ledger *service.Ledger, adv *advisor.Advisor, gen *charts.Generator) *Server {
	s := &Server{
		ledger:  ledger,
		advisor: adv,
		charts:  gen,
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", s.health)

	api := r.Group("/api")
	api.GET("/transactions", s.listTransactions)
	api.POST("/transactions", s.addTransaction)
	api.POST("/transactions/page", s.loadMoreTransactions)
	api.PATCH("/transactions/:id", s.updateTransaction)
	api.DELETE("/transactions/:id", s.deleteTransaction)

	api.GET("/tags", s.listTags)
	api.POST("/tags", s.addTag)
	api.PATCH("/tags/:id", s.updateTag)
	api.DELETE("/tags/:id", s.deleteTag)
	api.POST("/tags/:id/position", s.reorderTags)

	api.GET("/incomes", s.listIncomes)
	api.POST("/incomes", s.addIncome)
	api.PATCH("/incomes/:id", s.updateIncome)
	api.DELETE("/incomes/:id", s.deleteIncome)

	api.GET("/recurring", s.listRecurring)
	api.POST("/recurring", s.addRecurring)
	api.PATCH("/recurring/:id", s.updateRecurring)
	api.DELETE("/recurring/:id", s.deleteRecurring)

	api.GET("/summary", s.summary)
	api.GET("/summary/chart", s.summaryChart)
	api.POST("/insights", s.insights)

	s.engine = r
	return s
}

func (s *Server) Run(port string) error {
	return s.engine.Run(":" + port)
}
