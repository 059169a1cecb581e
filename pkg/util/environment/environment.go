package environment

// Application environment names understood by config.ReadConfig.
const (
	Development = "development"
	Test        = "test"
	E2E         = "e2e"
	Staging     = "staging"
	Production  = "production"
)
