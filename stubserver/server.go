package stubserver

import (
	"errors"
	"net/http"

	"MilestoneTracker/models"
	"MilestoneTracker/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server is an in-memory stand-in for the production backend, implementing
// the contract the client engine depends on. Integration tests run against it
// through httptest, and `main.go` can serve it for local frontend work.
type Server struct {
	store  *memoryStore
	logger *zap.Logger
}

func NewServer(logger *zap.Logger) (*Server, error) {
	milestones, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	return &Server{store: newMemoryStore(milestones), logger: logger}, nil
}

// Router builds the gin engine with all backend routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	parents := r.Group("/api/parents")
	{
		parents.POST("/child/register", s.registerChild)
		parents.GET("/dashboard/:parentId", s.parentDashboard)
		parents.POST("/milestone/submit", s.submitMilestone)
		parents.POST("/milestone/submit-with-file", s.submitMilestoneWithFile)
		parents.GET("/tickets", s.listTickets)
		parents.POST("/ticket", s.createTicket)
		parents.POST("/tickets/:id/reply", s.replyTicket)
	}

	milestones := r.Group("/api/milestones")
	{
		milestones.GET("/milestones", s.listMilestones)
		milestones.GET("/children/:parentId", s.listChildren)
	}

	volunteers := r.Group("/api/volunteers")
	{
		volunteers.GET("/dashboard", s.volunteerDashboard)
		volunteers.GET("/submissions", s.listSubmissions)
		volunteers.POST("/submission/:id/review", s.reviewSubmission)
	}

	return r
}

func (s *Server) registerChild(c *gin.Context) {
	var input struct {
		Name              string `json:"name" binding:"required"`
		DOB               string `json:"dob" binding:"required"`
		Gender            string `json:"gender"`
		MedicalConditions string `json:"medicalConditions"`
		Allergies         string `json:"allergies"`
		ParentID          string `json:"parentId" binding:"required"`
		AgeGroup          string `json:"ageGroup" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ageGroup := models.AgeGroup(input.AgeGroup)
	if !ageGroup.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid age group"})
		return
	}

	child := s.store.addChild(models.Child{
		Name:              input.Name,
		DOB:               input.DOB,
		Gender:            input.Gender,
		MedicalConditions: input.MedicalConditions,
		Allergies:         input.Allergies,
		AgeGroup:          ageGroup,
		ParentID:          input.ParentID,
	})
	s.logger.Info("child registered", zap.String("childId", child.ID))
	c.JSON(http.StatusCreated, child)
}

func (s *Server) listChildren(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.childrenOf(c.Param("parentId")))
}

func (s *Server) listMilestones(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.milestones)
}

func (s *Server) parentDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.parentDashboard(c.Param("parentId")))
}

func (s *Server) submitMilestone(c *gin.Context) {
	var input struct {
		ChildID     string  `json:"childId" binding:"required"`
		MilestoneID string  `json:"milestoneId" binding:"required"`
		MediaURL    *string `json:"mediaUrl"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub := models.Submission{ChildID: input.ChildID, MilestoneID: input.MilestoneID}
	if input.MediaURL != nil {
		sub.MediaURL = *input.MediaURL
	}
	created, err := s.store.createSubmission(sub)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "submission": created})
}

func (s *Server) submitMilestoneWithFile(c *gin.Context) {
	file, err := c.FormFile("media")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "media file is required"})
		return
	}
	childID := c.PostForm("childId")
	milestoneID := c.PostForm("milestoneId")
	if childID == "" || milestoneID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "childId and milestoneId are required"})
		return
	}

	mimeType := file.Header.Get("Content-Type")
	if err := services.ValidateMedia(mimeType, file.Size); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.store.createSubmission(models.Submission{
		ChildID:     childID,
		MilestoneID: milestoneID,
		FileName:    file.Filename,
		FileType:    mimeType,
		FileSize:    file.Size,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	s.logger.Info("file submission stored",
		zap.String("submissionId", created.ID),
		zap.String("file", file.Filename),
		zap.String("size", models.FormatFileSize(file.Size)))
	c.JSON(http.StatusOK, gin.H{"ok": true, "submission": created})
}

func (s *Server) volunteerDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, models.VolunteerDashboard{
		PendingSubmissions: s.store.submissionsByStatus(string(models.StatusPending)),
		Stats:              s.store.stats(),
	})
}

func (s *Server) listSubmissions(c *gin.Context) {
	status := c.DefaultQuery("status", "all")
	c.JSON(http.StatusOK, s.store.submissionsByStatus(status))
}

func (s *Server) reviewSubmission(c *gin.Context) {
	var input struct {
		Status      string  `json:"status" binding:"required"`
		Feedback    *string `json:"feedback"`
		VolunteerID string  `json:"volunteerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := models.SubmissionStatus(input.Status)
	if status != models.StatusAccepted && status != models.StatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be accepted or rejected"})
		return
	}
	feedback := ""
	if input.Feedback != nil {
		feedback = *input.Feedback
	}
	if status == models.StatusRejected && feedback == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "feedback is required when rejecting a submission"})
		return
	}

	reviewed, err := s.store.review(c.Param("id"), status, feedback, input.VolunteerID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "submission": reviewed})
}

func (s *Server) listTickets(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ticketsOf(c.Query("parentId")))
}

func (s *Server) createTicket(c *gin.Context) {
	var input struct {
		ParentID string `json:"parentId" binding:"required"`
		Message  string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, s.store.addTicket(input.ParentID, input.Message))
}

func (s *Server) replyTicket(c *gin.Context) {
	var input struct {
		Reply       string `json:"reply" binding:"required"`
		VolunteerID string `json:"volunteerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := s.store.replyTicket(c.Param("id"), input.VolunteerID, input.Reply)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errChildNotFound),
		errors.Is(err, errMilestoneNotFound),
		errors.Is(err, errSubmissionNotFound),
		errors.Is(err, errTicketNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
