package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:        "development defaults pass",
			config:      Config{Env: "development", Port: "8264", DBName: "inkwell", DBPassword: "password"},
			expectError: false,
		},
		{
			name:        "missing port",
			config:      Config{Env: "development", DBName: "inkwell"},
			expectError: true,
		},
		{
			name:        "missing db name",
			config:      Config{Env: "development", Port: "8264"},
			expectError: true,
		},
		{
			name:        "production rejects default db password",
			config:      Config{Env: "production", Port: "8264", DBName: "inkwell", DBPassword: "password"},
			expectError: true,
		},
		{
			name:        "production rejects empty db password",
			config:      Config{Env: "prod", Port: "8264", DBName: "inkwell"},
			expectError: true,
		},
		{
			name:        "production with strong password passes",
			config:      Config{Env: "production", Port: "8264", DBName: "inkwell", DBPassword: "s3cure-enough", DBSSLMode: "require"},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "8264", c.Port)
	assert.Equal(t, "inkwell", c.DBName)
	assert.Equal(t, "development", c.Env)
	assert.False(t, c.IsProduction())
	assert.Equal(t, "stdout", c.TracingExporter)
	assert.InDelta(t, 1.0, c.TracingSampler, 0.001)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("PORT")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")
	os.Setenv("PORT", "9000")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "9000", c.Port)
}

func TestIsProduction(t *testing.T) {
	assert.True(t, (&Config{Env: "production"}).IsProduction())
	assert.True(t, (&Config{Env: "prod"}).IsProduction())
	assert.False(t, (&Config{Env: "development"}).IsProduction())
	assert.False(t, (&Config{Env: "test"}).IsProduction())
}
