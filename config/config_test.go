package config_test

import (
	"testing"

	"todo-go-backend/config"
	"todo-go-backend/testutil"

	"github.com/stretchr/testify/assert"
)

func TestReadConfig(t *testing.T) {
	tests := []struct {
		name    string
		arrange func()
		assert  func(t *testing.T)
	}{
		{
			name:    "Should read the test config",
			arrange: testutil.ReadConfig,
			assert: func(t *testing.T) {
				assert.Equal(t, config.Test, config.C.AppEnv)
				assert.Equal(t, "sqlite3", config.C.Database.Driver)
				assert.Equal(t, "", config.C.Cron.HealthCheckSchedule)
				assert.True(t, config.C.CORS.AllowCredentials)
				assert.Equal(t, []string{"*"}, config.C.CORS.AllowOrigins)
			},
		},
		{
			name:    "Should read the e2e config",
			arrange: testutil.ReadConfigE2E,
			assert: func(t *testing.T) {
				assert.Equal(t, config.E2E, config.C.AppEnv)
				assert.Equal(t, "8082", config.C.Server.Address)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.arrange()
			tt.assert(t)
		})
	}
}
