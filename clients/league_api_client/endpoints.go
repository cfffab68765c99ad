package league_api_client

const (
	// Default base URL for local development.
	DefaultBaseURL = "http://localhost:8000"

	// Auth
	LoginEndpoint = "/login/"
	MeEndpoint    = "/users/me/"

	// Rounds
	RoundEndpoint             = "/round/%d/"
	RoundStatusEndpoint       = "/round/%d/status/"
	RoundParticipantsEndpoint = "/round/%d/participants/"
	RoundJoinEndpoint         = "/round/join/"
	RoundResultsEndpoint      = "/round/%d/results/"

	// Admin round control
	AdminAllocateEndpoint  = "/admin/rounds/%d/allocate/"
	AdminStartEndpoint     = "/admin/rounds/%d/start/"
	AdminTerminateEndpoint = "/admin/rounds/%d/terminate/"

	// Notifications
	NotificationsEndpoint       = "/notifications/"
	NotificationCountEndpoint   = "/notifications/count/"
	NotificationEndpoint        = "/notifications/%d/"
	NotificationActionsEndpoint = "/notifications/actions/"

	// Motions
	MotionsEndpoint         = "/motions/"
	MotionsGlossaryEndpoint = "/motions/glossary/"

	// Admin users and logs
	AdminUsersEndpoint          = "/admin/users/"
	AdminUserEndpoint           = "/admin/users/%d/"
	AdminAttendanceLogsEndpoint = "/admin/logs/attendance/"
	AdminSystemLogsEndpoint     = "/admin/logs/system/"
)
