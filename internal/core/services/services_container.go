package services

import (
	"github.com/mnjscf/team_ops_app/internal/core/domain"
	portsrepo "github.com/mnjscf/team_ops_app/internal/core/ports/repositories"
	portssvc "github.com/mnjscf/team_ops_app/internal/core/ports/services"
)

// NewServiceContainer wires every application service over the repository
// provider and the external collaborators. The provider and submitter may be
// nil when the corresponding backend is not configured.
func NewServiceContainer(
	repos portsrepo.RepositoryProvider,
	roster []domain.User,
	provider portssvc.AnalysisProvider,
	submitter portssvc.WorkLogSubmitter,
) *portssvc.ServiceContainer {
	rosterSvc := NewRosterService(roster)
	workLogSvc := NewWorkLogService(repos.WorkLogRepo, rosterSvc, submitter)

	return &portssvc.ServiceContainer{
		Roster:    rosterSvc,
		Session:   NewSessionService(rosterSvc, repos.SessionRepo),
		WorkLog:   workLogSvc,
		Directive: NewDirectiveService(repos.DirectiveRepo, rosterSvc),
		Chat:      NewChatService(repos.ChatRepo),
		Reporting: NewReportingService(workLogSvc),
		Analysis:  NewAnalysisService(workLogSvc, provider),
	}
}
