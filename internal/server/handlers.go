package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/ivelichko/pennywise/internal/model"
	"github.com/ivelichko/pennywise/internal/repository"
	"github.com/ivelichko/pennywise/internal/service"
)

// fail maps the error taxonomy onto HTTP: validation problems carry the
// offending fields back, everything store-side collapses into one generic
// message.
func fail(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, service.ErrUnknownTag), errors.Is(err, service.ErrDuplicateTag):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logrus.Errorf("request failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "couldn't save your changes, please try again"})
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pennywise",
	})
}

func (s *Server) listTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"transactions": s.ledger.Transactions(),
		"has_more":     s.ledger.HasMoreTransactions(),
	})
}

func (s *Server) addTransaction(c *gin.Context) {
	var draft model.Transaction
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.ledger.AddTransaction(c.Request.Context(), draft)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) loadMoreTransactions(c *gin.Context) {
	if err := s.ledger.LoadMoreTransactions(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	s.listTransactions(c)
}

func (s *Server) updateTransaction(c *gin.Context) {
	var tx model.Transaction
	if err := c.ShouldBindJSON(&tx); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tx.ID = c.Param("id")

	// inline edits arrive keystroke by keystroke; the debounced path commits
	// once the user goes quiet
	if c.Query("debounced") == "true" {
		s.ledger.QueueTransactionUpdate(tx)
		c.JSON(http.StatusAccepted, gin.H{"message": "update queued"})
		return
	}

	if err := s.ledger.UpdateTransaction(c.Request.Context(), tx); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

func (s *Server) deleteTransaction(c *gin.Context) {
	if err := s.ledger.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}

func (s *Server) listTags(c *gin.Context) {
	c.JSON(http.StatusOK, s.ledger.Tags())
}

func (s *Server) addTag(c *gin.Context) {
	var draft model.Tag
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.ledger.AddTag(c.Request.Context(), draft)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateTag(c *gin.Context) {
	var tag model.Tag
	if err := c.ShouldBindJSON(&tag); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tag.ID = c.Param("id")

	if err := s.ledger.UpdateTag(c.Request.Context(), tag); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (s *Server) deleteTag(c *gin.Context) {
	if err := s.ledger.DeleteTag(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tag deleted"})
}

func (s *Server) reorderTags(c *gin.Context) {
	var req struct {
		Position int `json:"position"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.ledger.ReorderTags(c.Request.Context(), c.Param("id"), req.Position); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.ledger.Tags())
}

func (s *Server) listIncomes(c *gin.Context) {
	c.JSON(http.StatusOK, s.ledger.Incomes())
}

func (s *Server) addIncome(c *gin.Context) {
	var draft model.Line
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.ledger.AddIncome(c.Request.Context(), draft)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateIncome(c *gin.Context) {
	var line model.Line
	if err := c.ShouldBindJSON(&line); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	line.ID = c.Param("id")

	if err := s.ledger.UpdateIncome(c.Request.Context(), line); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, line)
}

func (s *Server) deleteIncome(c *gin.Context) {
	if err := s.ledger.DeleteIncome(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "income deleted"})
}

func (s *Server) listRecurring(c *gin.Context) {
	c.JSON(http.StatusOK, s.ledger.RecurringExpenses())
}

func (s *Server) addRecurring(c *gin.Context) {
	var draft model.Line
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.ledger.AddRecurringExpense(c.Request.Context(), draft)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateRecurring(c *gin.Context) {
	var line model.Line
	if err := c.ShouldBindJSON(&line); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	line.ID = c.Param("id")

	if err := s.ledger.UpdateRecurringExpense(c.Request.Context(), line); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, line)
}

func (s *Server) deleteRecurring(c *gin.Context) {
	if err := s.ledger.DeleteRecurringExpense(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recurring expense deleted"})
}

func (s *Server) summary(c *gin.Context) {
	c.JSON(http.StatusOK, s.ledger.Summary(time.Now().UTC()))
}

func (s *Server) summaryChart(c *gin.Context) {
	png, err := s.charts.MonthlyBreakdown(s.ledger.Summary(time.Now().UTC()))
	if err != nil {
		logrus.Errorf("couldn't render summary chart: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "couldn't render chart"})
		return
	}
	if png == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (s *Server) insights(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"advice": s.advisor.Advise(c.Request.Context(), s.ledger.Summary(time.Now().UTC())),
	})
}
