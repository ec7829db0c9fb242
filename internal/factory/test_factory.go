package factory

import (
	"time"

	"github.com/mcoot/mysquad-go/internal/dependencies/mocks"
	"github.com/mcoot/mysquad-go/internal/services/auth"
	"github.com/mcoot/mysquad-go/internal/storage/memory"
	"github.com/mcoot/mysquad-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	authCfg := auth.DefaultConfig()
	authCfg.TokenSecret = "test-secret"

	app := newWithDependencies(store, mockClock, authCfg, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
