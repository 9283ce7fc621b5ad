package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agenthands/lexigraph/internal/core"
	"github.com/agenthands/lexigraph/internal/core/model"
)

// Server exposes the traversal service over HTTP.
type Server struct {
	service *core.Service
	log     *zap.Logger
}

func New(service *core.Service, logger *zap.Logger) *Server {
	return &Server{service: service, log: logger}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/nodes/:id/distant-synonyms", s.distantSynonyms)
	r.GET("/nodes/:id/distant-antonyms", s.distantAntonyms)
	r.GET("/nodes/:id/similar", s.similarNodes)
	r.GET("/nodes/:id/neighbors", s.neighbors)
	r.GET("/nodes/:id/successors", s.successors)
	r.GET("/nodes/:id/predecessors", s.predecessors)
	r.GET("/nodes/:id/grandchildren", s.grandchildren)
	r.GET("/nodes/:id/grandparents", s.grandparents)
	r.GET("/path", s.shortestPath)
	r.GET("/stats", s.stats)

	return r
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func (s *Server) distantSynonyms(c *gin.Context) {
	s.distant(c, true)
}

func (s *Server) distantAntonyms(c *gin.Context) {
	s.distant(c, false)
}

func (s *Server) distant(c *gin.Context, wantSynonyms bool) {
	distance, err := strconv.Atoi(c.DefaultQuery("distance", "1"))
	if err != nil || distance < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "distance must be a non-negative integer"})
		return
	}

	id := c.Param("id")
	var results any
	if wantSynonyms {
		results, err = s.service.DistantSynonyms(c.Request.Context(), id, distance)
	} else {
		results, err = s.service.DistantAntonyms(c.Request.Context(), id, distance)
	}
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (s *Server) shortestPath(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}

	path, err := s.service.ShortestPath(c.Request.Context(), from, to)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": path})
}

func (s *Server) similarNodes(c *gin.Context) {
	found, err := s.service.SimilarNodes(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"similar_nodes": found})
}

func (s *Server) neighbors(c *gin.Context)     { s.refList(c, s.service.Neighbors) }
func (s *Server) successors(c *gin.Context)    { s.refList(c, s.service.Successors) }
func (s *Server) predecessors(c *gin.Context)  { s.refList(c, s.service.Predecessors) }
func (s *Server) grandchildren(c *gin.Context) { s.refList(c, s.service.Grandchildren) }
func (s *Server) grandparents(c *gin.Context)  { s.refList(c, s.service.Grandparents) }

func (s *Server) refList(c *gin.Context, query func(ctx context.Context, id string) ([]model.NodeRef, error)) {
	results, err := query(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (s *Server) stats(c *gin.Context) {
	stats, err := s.service.Stats(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) renderError(c *gin.Context, err error) {
	if errors.Is(err, core.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	s.log.Error("request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
}
