package cmd

// Config carries the runtime settings for the marketplace service.
// AllowDelegatedPosting lets admins create jobs on behalf of employers.
// SummaryReconcileSchedule is a cron expression with a seconds field.
type Config struct {
	HTTPPort                 string
	DBHost                   string
	DBPort                   string
	DBUser                   string
	DBPassword               string
	DBName                   string
	DBSslMode                string
	AllowDelegatedPosting    bool
	SummaryReconcileSchedule string
}
