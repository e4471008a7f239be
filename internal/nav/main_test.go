package nav

import (
	"os"
	"testing"

	"github.com/openrover/btnav/internal/config"
	"github.com/openrover/btnav/internal/observability"
)

func TestMain(m *testing.M) {
	// 1. Load default configuration.
	appConfig := config.NewDefaultConfig()
	logConfig := appConfig.Logger

	// 2. Override settings for the test environment.
	logConfig.Level = "debug"
	logConfig.ServiceName = "nav-test-suite"
	logConfig.Format = "console"

	// 3. Initialize the global logger.
	observability.InitializeLogger(logConfig)

	// 4. Run the tests.
	exitCode := m.Run()

	// 5. Teardown and Sync.
	observability.Sync()
	observability.ResetForTest()

	os.Exit(exitCode)
}
