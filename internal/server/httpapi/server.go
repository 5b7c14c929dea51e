package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/a6w/mapmo/internal/service"
)

// Server holds the services behind the HTTP API.
type Server struct {
	labels   service.LabelService
	notes    service.NoteService
	users    service.UserService
	sessions *service.SessionService
	log      *zap.Logger
}

// New constructs the API server.
func New(labels service.LabelService, notes service.NoteService, users service.UserService, sessions *service.SessionService, log *zap.Logger) *Server {
	return &Server{labels: labels, notes: notes, users: users, sessions: sessions, log: log}
}

// Router builds the gin engine with middleware and all routes.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(Recover(s.log), Logging(s.log))

	v1 := r.Group("/api/v1")
	v1.POST("/users", s.register)

	authed := v1.Group("", Auth(s.sessions))
	authed.GET("/users/me", s.getMe)
	authed.PUT("/users/me", s.updateNickname)
	authed.DELETE("/users/me", s.deleteMe)

	authed.GET("/labels", s.listLabels)
	authed.POST("/labels", s.addLabel)
	authed.GET("/labels/:id", s.getLabel)
	authed.PUT("/labels/:id", s.updateLabel)
	authed.DELETE("/labels/:id", s.deleteLabel)

	authed.GET("/notes", s.listNotes)
	authed.POST("/notes", s.addNote)
	authed.GET("/notes/:id", s.getNote)
	authed.PUT("/notes/:id", s.updateNote)
	authed.DELETE("/notes/:id", s.deleteNote)

	return r
}

// register creates an account and immediately issues a session token for it.
func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	id, err := s.users.Register(c.Request.Context(), req.Nickname)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	token, exp, err := s.sessions.IssueToken(id)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id, "token": token, "expiresAt": exp.Unix()})
}

func (s *Server) getMe(c *gin.Context) {
	ownerID, ok := OwnerIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false})
		return
	}
	u, err := s.users.Get(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, userDTO{ID: u.ID, Nickname: u.Nickname, CreatedAt: u.CreatedAt})
}

func (s *Server) updateNickname(c *gin.Context) {
	ownerID, ok := OwnerIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	var req nicknameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	if err := s.users.UpdateNickname(c.Request.Context(), ownerID, req.Nickname); err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) deleteMe(c *gin.Context) {
	ownerID, ok := OwnerIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	if err := s.users.Delete(c.Request.Context(), ownerID); err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) listLabels(c *gin.Context) {
	ownerID, ok := OwnerIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false})
		return
	}
	labels, err := s.labels.List(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false})
		return
	}
	out := make([]labelDTO, 0, len(labels))
	for _, l := range labels {
		out = append(out, toLabelDTO(l))
	}
	c.JSON(http.StatusOK, gin.H{"labels": out})
}

func (s *Server) addLabel(c *gin.Context) {
	ownerID, ok := OwnerIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	var req labelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	id, err := s.labels.Add(c.Request.Context(), ownerID, req.model())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}

func (s *Server) getLabel(c *gin.Context) {
	ownerID, ok := OwnerIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false})
		return
	}
	l, err := s.labels.Get(c.Request.Context(), c.Param("id"), ownerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, toLabelDTO(*l))
}

func (s *Server) updateLabel(c *gin.Context) {
	ownerID, ok := OwnerIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	var req labelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	if err := s.labels.Update(c.Request.Context(), c.Param("id"), req.model(), ownerID); err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) deleteLabel(c *gin.Context) {
	ownerID, ok := OwnerIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	if err := s.labels.Delete(c.Request.Context(), c.Param("id"), ownerID); err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// listNotes serves the grouped note list view.
func (s *Server) listNotes(c *gin.Context) {
	ownerID, ok := OwnerIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false})
		return
	}
	nl, err := s.notes.ListGrouped(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, toNoteListDTO(*nl))
}

func (s *Server) addNote(c *gin.Context) {
	ownerID, ok := OwnerIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	id, err := s.notes.Add(c.Request.Context(), ownerID, req.model())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}

func (s *Server) getNote(c *gin.Context) {
	ownerID, ok := OwnerIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false})
		return
	}
	n, err := s.notes.Get(c.Request.Context(), c.Param("id"), ownerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, toNoteDTO(*n))
}

func (s *Server) updateNote(c *gin.Context) {
	ownerID, ok := OwnerIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	if err := s.notes.Update(c.Request.Context(), c.Param("id"), req.model(), ownerID); err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) deleteNote(c *gin.Context) {
	ownerID, ok := OwnerIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	if err := s.notes.Delete(c.Request.Context(), c.Param("id"), ownerID); err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
