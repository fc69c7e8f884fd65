package main

import (
	"context"
	"log"
	"net/http/httptest"
	"os"

	"MilestoneTracker/config"
	"MilestoneTracker/models"
	"MilestoneTracker/repositories/impl"
	"MilestoneTracker/services"
	"MilestoneTracker/storage"
	"MilestoneTracker/stubserver"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal("failed to build logger:", err)
	}
	defer logger.Sync()

	cfg := config.Load()

	if os.Getenv("MODE") == "demo" {
		runDemo(cfg, logger)
		return
	}

	// Default mode: serve the in-memory stub backend for local frontend work.
	server, err := stubserver.NewServer(logger)
	if err != nil {
		logger.Fatal("failed to initialize stub backend", zap.Error(err))
	}
	logger.Info("stub backend listening", zap.String("port", cfg.Port))
	if err := server.Router().Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// runDemo drives one full submission/review/ticket cycle through the engine.
// With no BASE_URL configured it spins up the stub backend in-process.
func runDemo(cfg config.Config, logger *zap.Logger) {
	ctx := context.Background()

	baseURL := cfg.BaseURL
	if baseURL == "" {
		server, err := stubserver.NewServer(logger)
		if err != nil {
			logger.Fatal("failed to initialize stub backend", zap.Error(err))
		}
		ts := httptest.NewServer(server.Router())
		defer ts.Close()
		baseURL = ts.URL
	}

	var markers storage.KeyValueStore
	if cfg.RedisAddr != "" {
		markers = storage.NewRedisStore(cfg.RedisAddr, "milestone-tracker:")
	} else {
		markers = storage.NewFileStore(cfg.MarkerFile)
	}

	parent := models.Session{UserID: "parent-1", Name: "Priya Sharma", Role: models.RoleParent}
	volunteer := models.Session{UserID: "volunteer-1", Name: "Rohan Gupta", Role: models.RoleVolunteer}

	// Parent-side wiring
	parentClient := impl.NewAPIClient(baseURL, parent, cfg.HTTPTimeout, logger)
	childRepo := impl.NewChildRepository(parentClient)
	milestoneRepo := impl.NewMilestoneRepository(parentClient)
	submissionRepo := impl.NewSubmissionRepository(parentClient)
	dashboardRepo := impl.NewDashboardRepository(parentClient)
	ticketRepo := impl.NewTicketRepository(parentClient)

	childService := services.NewChildService(childRepo, logger)
	ticketService := services.NewTicketService(ticketRepo, markers, logger)

	child, err := childService.Register(ctx, parent, models.ChildRegistration{
		Name:   "Aarav Sharma",
		DOB:    "2023-04-12",
		Gender: "male",
	})
	if err != nil {
		logger.Fatal("registration failed", zap.Error(err))
	}

	milestones, err := milestoneRepo.FindAll(ctx)
	if err != nil {
		logger.Fatal("milestone fetch failed", zap.Error(err))
	}
	eligible := models.EligibleMilestones(milestones, child)
	if len(eligible) == 0 {
		logger.Fatal("no eligible milestones for child", zap.String("ageGroup", string(child.AgeGroup)))
	}

	submission := services.NewSubmissionService(submissionRepo, dashboardRepo, parent, logger)
	submission.OnRefresh = func(d models.ParentDashboard) {
		logger.Info("dashboard refreshed", zap.Int("children", len(d.Children)))
	}
	if err := submission.Open(child, models.MilestoneState{Milestone: eligible[0]}); err != nil {
		logger.Fatal("open failed", zap.Error(err))
	}
	if err := submission.SetMediaURL("https://example.com/aarav-crawling.mp4"); err != nil {
		logger.Fatal("staging failed", zap.Error(err))
	}
	if err := submission.Submit(ctx); err != nil {
		logger.Fatal("submit failed", zap.Error(err))
	}

	// Volunteer-side wiring
	volunteerClient := impl.NewAPIClient(baseURL, volunteer, cfg.HTTPTimeout, logger)
	volunteerSubmissionRepo := impl.NewSubmissionRepository(volunteerClient)
	volunteerDashboardRepo := impl.NewDashboardRepository(volunteerClient)

	dashboard, err := volunteerDashboardRepo.VolunteerDashboard(ctx)
	if err != nil {
		logger.Fatal("volunteer dashboard fetch failed", zap.Error(err))
	}
	if len(dashboard.PendingSubmissions) == 0 {
		logger.Fatal("no pending submissions to review")
	}

	review := services.NewReviewService(volunteerSubmissionRepo, volunteerDashboardRepo, volunteer, logger)
	if err := review.Select(dashboard.PendingSubmissions[0]); err != nil {
		logger.Fatal("select failed", zap.Error(err))
	}
	if err := review.Decide(models.StatusAccepted, "Great progress!"); err != nil {
		logger.Fatal("decide failed", zap.Error(err))
	}
	if err := review.Confirm(ctx); err != nil {
		logger.Fatal("review failed", zap.Error(err))
	}

	// Ticket cycle: parent asks, volunteer answers, badge derives and clears.
	ticket, err := ticketService.CreateTicket(ctx, parent, "How do I upload a longer video?")
	if err != nil {
		logger.Fatal("ticket creation failed", zap.Error(err))
	}
	if _, err := ticketService.ReplyToTicket(ctx, volunteer, ticket.ID, "Videos up to 50MB are supported."); err != nil {
		logger.Fatal("ticket reply failed", zap.Error(err))
	}

	state, err := ticketService.Notifications(ctx, parent.UserID)
	if err != nil {
		logger.Fatal("notification derivation failed", zap.Error(err))
	}
	logger.Info("notification state", zap.Bool("unread", state.Unread))
	if state.Latest != nil {
		if err := ticketService.MarkReplyViewed(ctx, *state.Latest); err != nil {
			logger.Fatal("marking reply viewed failed", zap.Error(err))
		}
	}

	logger.Info("demo complete", zap.String("child", child.Name))
}
