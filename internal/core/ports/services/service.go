package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Roster    RosterSvcFacade
	Session   SessionSvcFacade
	WorkLog   WorkLogSvcFacade
	Directive DirectiveSvcFacade
	Chat      ChatSvcFacade
	Reporting ReportingSvcFacade
	Analysis  AnalysisSvcFacade
}
