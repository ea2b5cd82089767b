// Package cmsmock is a stand-in for the headless content API. It serves
// fixture content with the same routes, envelope and query parameters, and
// stores contact messages in SQLite.
package cmsmock

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/portfolio/internal/entities"
)

// ErrorBody mirrors the content API error object.
type ErrorBody struct {
	Status  int    `json:"status"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Data  any       `json:"data"`
	Error ErrorBody `json:"error"`
}

type pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

type meta struct {
	Pagination *pagination `json:"pagination,omitempty"`
}

type envelope struct {
	Data any  `json:"data"`
	Meta meta `json:"meta"`
}

type contactRequest struct {
	Data struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Subject string `json:"subject"`
		Message string `json:"message" binding:"required"`
		Read    bool   `json:"read"`
		Replied bool   `json:"replied"`
	} `json:"data" binding:"required"`
}

// Server serves fixtures and collects contact messages.
type Server struct {
	fixtures *Fixtures
	store    *Store
	limiter  *RateLimiter
}

type Option func(*Server)

// WithContactRateLimit limits contact submissions per client IP.
func WithContactRateLimit(limiter *RateLimiter) Option {
	return func(s *Server) {
		s.limiter = limiter
	}
}

func NewServer(fixtures *Fixtures, store *Store, opts ...Option) *Server {
	s := &Server{fixtures: fixtures, store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the gin engine with every content API route.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/health", s.health)

	api := router.Group("/api")
	api.GET("/site-setting", s.siteSetting)
	api.GET("/section-settings", s.collection(func(f *Fixtures) []Record { return f.SectionSettings }))
	api.GET("/portfolio-items", s.collection(func(f *Fixtures) []Record { return f.PortfolioItems }))
	api.GET("/portfolio-categories", s.collection(func(f *Fixtures) []Record { return f.PortfolioCategories }))
	api.GET("/blog-posts", s.collection(func(f *Fixtures) []Record { return f.BlogPosts }))
	api.GET("/social-links", s.collection(func(f *Fixtures) []Record { return f.SocialLinks }))
	if s.limiter != nil {
		api.POST("/contact-messages", s.limiter.Middleware(), s.createContactMessage)
	} else {
		api.POST("/contact-messages", s.createContactMessage)
	}
	api.GET("/contact-messages", s.listContactMessages)

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "NotFoundError", "Not Found")
	})
	return router
}

// corsMiddleware lets a page served from another origin call the mock.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func respondError(c *gin.Context, status int, name, message string) {
	c.JSON(status, errorEnvelope{
		Data:  nil,
		Error: ErrorBody{Status: status, Name: name, Message: message},
	})
}

func (s *Server) siteSetting(c *gin.Context) {
	if s.fixtures.SiteSetting == nil {
		respondError(c, http.StatusNotFound, "NotFoundError", "Not Found")
		return
	}
	c.JSON(http.StatusOK, envelope{Data: s.fixtures.SiteSetting})
}

func (s *Server) collection(records func(*Fixtures) []Record) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := ParseQuery(c.Request.URL.Query()).Apply(records(s.fixtures))
		c.JSON(http.StatusOK, envelope{
			Data: result,
			Meta: meta{Pagination: &pagination{
				Page:      1,
				PageSize:  max(len(result), 25),
				PageCount: 1,
				Total:     len(result),
			}},
		})
	}
}

// ParseQuery reads sort and equality filters from a query string. Other
// parameters, populate included, are accepted and ignored: fixtures always
// carry their relations.
func ParseQuery(values url.Values) Query {
	q := Query{Filters: make(map[string]string)}
	if sortParam := values.Get("sort"); sortParam != "" {
		field, direction, _ := strings.Cut(sortParam, ":")
		q.SortField = field
		q.SortDesc = strings.EqualFold(direction, "desc")
	}
	for key, vals := range values {
		field, ok := strings.CutPrefix(key, "filters[")
		if !ok || len(vals) == 0 {
			continue
		}
		field, ok = strings.CutSuffix(field, "][$eq]")
		if !ok {
			continue
		}
		q.Filters[field] = vals[0]
	}
	return q
}

func (s *Server) createContactMessage(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "ValidationError", err.Error())
		return
	}

	form := entities.ContactForm{
		Name:    req.Data.Name,
		Email:   req.Data.Email,
		Subject: req.Data.Subject,
		Message: req.Data.Message,
		Read:    req.Data.Read,
		Replied: req.Data.Replied,
	}
	message, err := s.store.CreateMessage(form)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "ApplicationError", "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, envelope{Data: message})
}

func (s *Server) listContactMessages(c *gin.Context) {
	messages, err := s.store.Messages()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "ApplicationError", "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, envelope{
		Data: messages,
		Meta: meta{Pagination: &pagination{Page: 1, PageSize: max(len(messages), 25), PageCount: 1, Total: len(messages)}},
	})
}

type healthResponse struct {
	Status string            `json:"status"`
	Time   string            `json:"time"`
	Checks map[string]string `json:"checks"`
}

func (s *Server) health(c *gin.Context) {
	checks := map[string]string{"database": "ok"}
	status := "healthy"
	if err := s.store.Ping(); err != nil {
		checks["database"] = "error: " + err.Error()
		status = "unhealthy"
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	c.IndentedJSON(code, healthResponse{
		Status: status,
		Time:   time.Now().Format(time.RFC3339),
		Checks: checks,
	})
}
