package stubserver

import (
	"errors"
	"sync"
	"time"

	"MilestoneTracker/models"

	"github.com/google/uuid"
)

var (
	errChildNotFound      = errors.New("child not found")
	errMilestoneNotFound  = errors.New("milestone not found")
	errSubmissionNotFound = errors.New("submission not found")
	errTicketNotFound     = errors.New("ticket not found")
	errAlreadyReviewed    = errors.New("milestone has already been reviewed")
	errNotPending         = errors.New("submission is not pending")
	errTicketClosed       = errors.New("ticket is already closed")
)

// memoryStore is the in-memory state behind the stub backend. It enforces the
// server-side rules the client depends on: pending-pair idempotency, one-way
// status transitions, reply-closes-ticket.
type memoryStore struct {
	mu          sync.Mutex
	milestones  []models.Milestone
	children    map[string]models.Child
	childOrder  []string
	submissions map[string]*models.Submission
	subOrder    []string
	byPair      map[string]string // childID+"|"+milestoneID -> submission id
	tickets     map[string]*models.Ticket
	ticketOrder []string
}

func newMemoryStore(milestones []models.Milestone) *memoryStore {
	return &memoryStore{
		milestones:  milestones,
		children:    make(map[string]models.Child),
		submissions: make(map[string]*models.Submission),
		byPair:      make(map[string]string),
		tickets:     make(map[string]*models.Ticket),
	}
}

func (s *memoryStore) addChild(child models.Child) models.Child {
	s.mu.Lock()
	defer s.mu.Unlock()
	child.ID = uuid.NewString()
	s.children[child.ID] = child
	s.childOrder = append(s.childOrder, child.ID)
	return child
}

func (s *memoryStore) childrenOf(parentID string) []models.Child {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Child{}
	for _, id := range s.childOrder {
		if c := s.children[id]; c.ParentID == parentID {
			out = append(out, c)
		}
	}
	return out
}

func (s *memoryStore) milestoneByID(id string) (models.Milestone, bool) {
	for _, m := range s.milestones {
		if m.ID == id {
			return m, true
		}
	}
	return models.Milestone{}, false
}

// createSubmission is idempotent per (childId, milestoneId) while pending:
// re-submitting the same pair returns the existing pending row instead of
// creating a duplicate. Terminal pairs are final.
func (s *memoryStore) createSubmission(sub models.Submission) (models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.children[sub.ChildID]; !ok {
		return models.Submission{}, errChildNotFound
	}
	if _, ok := s.milestoneByID(sub.MilestoneID); !ok {
		return models.Submission{}, errMilestoneNotFound
	}

	pair := sub.ChildID + "|" + sub.MilestoneID
	if existingID, ok := s.byPair[pair]; ok {
		existing := s.submissions[existingID]
		if existing.Status == models.StatusPending {
			return *existing, nil
		}
		return models.Submission{}, errAlreadyReviewed
	}

	sub.ID = uuid.NewString()
	sub.Status = models.StatusPending
	sub.SubmittedAt = time.Now().UTC()
	s.submissions[sub.ID] = &sub
	s.subOrder = append(s.subOrder, sub.ID)
	s.byPair[pair] = sub.ID
	return sub, nil
}

func (s *memoryStore) review(submissionID string, status models.SubmissionStatus, feedback, volunteerID string) (models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.submissions[submissionID]
	if !ok {
		return models.Submission{}, errSubmissionNotFound
	}
	if !sub.Status.CanTransition(status) {
		return models.Submission{}, errNotPending
	}
	sub.Status = status
	sub.Feedback = feedback
	_ = volunteerID // recorded nowhere yet; the review log is out of scope
	return *sub, nil
}

func (s *memoryStore) submissionsByStatus(status string) []models.SubmissionDetail {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.SubmissionDetail{}
	for _, id := range s.subOrder {
		sub := s.submissions[id]
		if status != "all" && string(sub.Status) != status {
			continue
		}
		out = append(out, s.detail(*sub))
	}
	return out
}

func (s *memoryStore) detail(sub models.Submission) models.SubmissionDetail {
	d := models.SubmissionDetail{Submission: sub}
	if c, ok := s.children[sub.ChildID]; ok {
		d.ChildName = c.Name
		d.AgeGroup = c.AgeGroup
	}
	if m, ok := s.milestoneByID(sub.MilestoneID); ok {
		d.MilestoneTitle = m.Title
	}
	return d
}

func (s *memoryStore) stats() models.VolunteerStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var st models.VolunteerStats
	for _, sub := range s.submissions {
		switch sub.Status {
		case models.StatusPending:
			st.TotalPending++
		case models.StatusAccepted:
			st.TotalAccepted++
		case models.StatusRejected:
			st.TotalRejected++
		}
		st.TotalSubmissions++
	}
	return st
}

func (s *memoryStore) parentDashboard(parentID string) models.ParentDashboard {
	s.mu.Lock()
	defer s.mu.Unlock()

	dashboard := models.ParentDashboard{Children: []models.ChildOverview{}}
	for _, id := range s.childOrder {
		child := s.children[id]
		if child.ParentID != parentID {
			continue
		}

		overview := models.ChildOverview{Child: child, Milestones: []models.MilestoneEntry{}}
		for _, m := range s.milestones {
			if !m.AppliesTo(child) {
				continue
			}
			entry := models.MilestoneEntry{Milestone: m, Status: models.StatusNotStarted}
			if subID, ok := s.byPair[child.ID+"|"+m.ID]; ok {
				sub := s.submissions[subID]
				entry.Status = sub.Status
				entry.Feedback = sub.Feedback
			}
			switch entry.Status {
			case models.StatusAccepted:
				overview.Progress.Completed++
			case models.StatusPending:
				overview.Progress.Pending++
			case models.StatusRejected:
				overview.Progress.Rejected++
			}
			overview.Progress.Total++
			overview.Milestones = append(overview.Milestones, entry)
		}
		dashboard.Children = append(dashboard.Children, overview)
	}
	return dashboard
}

func (s *memoryStore) addTicket(parentID, message string) models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket := models.Ticket{
		ID:        uuid.NewString(),
		ParentID:  parentID,
		Message:   message,
		Status:    models.TicketOpen,
		CreatedAt: time.Now().UTC(),
	}
	s.tickets[ticket.ID] = &ticket
	s.ticketOrder = append(s.ticketOrder, ticket.ID)
	return ticket
}

func (s *memoryStore) ticketsOf(parentID string) []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Ticket{}
	for _, id := range s.ticketOrder {
		t := s.tickets[id]
		if parentID != "" && t.ParentID != parentID {
			continue
		}
		out = append(out, *t)
	}
	return out
}

// replyTicket records the answer and closes the ticket in one step; the
// client relies on reply presence and closed status co-occurring.
func (s *memoryStore) replyTicket(ticketID, volunteerID, reply string) (models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, ok := s.tickets[ticketID]
	if !ok {
		return models.Ticket{}, errTicketNotFound
	}
	if ticket.Status == models.TicketClosed {
		return models.Ticket{}, errTicketClosed
	}
	ticket.Reply = reply
	ticket.VolunteerID = volunteerID
	ticket.Status = models.TicketClosed
	return *ticket, nil
}
