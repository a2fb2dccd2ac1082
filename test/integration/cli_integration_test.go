//go:build integration

package integration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fivetwenty-io/asc/pkg/asc"
)

// CLIIntegrationTestSuite exercises the asc binary against a real App Store
// Connect account. Read-only tests always run; tests that register and delete
// resources need ASC_INTEGRATION_WRITES=true.
type CLIIntegrationTestSuite struct {
	suite.Suite

	config *TestConfig
	runner *CommandRunner
}

func (suite *CLIIntegrationTestSuite) SetupSuite() {
	suite.config = LoadTestConfig()
	suite.config.SkipIfMissingConfig(suite.T())
}

func (suite *CLIIntegrationTestSuite) SetupTest() {
	suite.runner = NewCommandRunner(suite.config, suite.T())
}

func (suite *CLIIntegrationTestSuite) TestTokenDecode() {
	var info map[string]interface{}

	suite.Require().NoError(suite.runner.RunJSON(&info, "token", "--decode"))
	suite.Equal(suite.config.KeyID, info["key_id"])
	suite.Equal(suite.config.Issuer, info["issuer"])
	suite.Equal("appstoreconnect-v1", info["audience"])
}

func (suite *CLIIntegrationTestSuite) TestListCommands() {
	commands := [][]string{
		{"apps", "list", "--limit", "5"},
		{"bundle-ids", "list", "--limit", "5"},
		{"certificates", "list", "--limit", "5"},
		{"profiles", "list", "--limit", "5"},
		{"devices", "list", "--limit", "5"},
		{"users", "list", "--limit", "5"},
	}

	for _, args := range commands {
		suite.Run(strings.Join(args[:1], " "), func() {
			var items []map[string]interface{}

			suite.Require().NoError(suite.runner.RunJSON(&items, args...))
			suite.LessOrEqual(len(items), 5)

			for _, item := range items {
				suite.NotEmpty(item["id"])
			}
		})
	}
}

func (suite *CLIIntegrationTestSuite) TestOutputFormats() {
	stdout, stderr, err := suite.runner.Run("devices", "list", "--limit", "1", "--output", "json")
	suite.Require().NoError(err, stderr)
	AssertJSONOutput(suite.T(), stdout)

	stdout, stderr, err = suite.runner.Run("devices", "list", "--limit", "1", "--output", "yaml")
	suite.Require().NoError(err, stderr)

	if strings.TrimSpace(stdout) != "[]" {
		AssertYAMLOutput(suite.T(), stdout)
	}

	_, stderr, err = suite.runner.Run("devices", "list", "--limit", "1", "--output", "table")
	suite.Require().NoError(err, stderr)
}

func (suite *CLIIntegrationTestSuite) TestAllPagesMatchesTotal() {
	var firstPage, allPages []asc.BundleID

	suite.Require().NoError(suite.runner.RunJSON(&firstPage, "bundle-ids", "list", "--limit", "1"))
	suite.Require().NoError(suite.runner.RunJSON(&allPages, "bundle-ids", "list", "--limit", "200", "--all"))
	suite.GreaterOrEqual(len(allPages), len(firstPage))
}

func (suite *CLIIntegrationTestSuite) TestErrorHandling() {
	_, stderr, err := suite.runner.Run("bundle-ids", "get", "does-not-exist")
	suite.Require().Error(err)
	suite.Contains(stderr, "failed to get bundle ID")

	_, _, err = suite.runner.Run("devices", "list", "--sort", "addedDate")
	suite.Require().Error(err)
}

func (suite *CLIIntegrationTestSuite) TestBundleIDLifecycle() {
	suite.config.SkipUnlessWritesAllowed(suite.T())

	name := GenerateTestName("asc-integration")
	identifier := "com.example." + strings.ReplaceAll(name, "-", "")

	var created asc.BundleID

	suite.Require().NoError(suite.runner.RunJSON(&created, "bundle-ids", "register", name, identifier, "--platform", "IOS"))
	defer func() { suite.runner.CleanupBundleID(created.ID) }()

	suite.Equal(identifier, created.Attributes.Identifier)

	var fetched asc.BundleID

	suite.Require().NoError(suite.runner.RunJSON(&fetched, "bundle-ids", "get", created.ID))
	suite.Equal(name, fetched.Attributes.Name)

	var found []asc.BundleID

	suite.Require().NoError(suite.runner.RunJSON(&found, "bundle-ids", "list", "--identifier", identifier))
	suite.Len(found, 1)

	stdout, stderr, err := suite.runner.Run("bundle-ids", "delete", created.ID)
	suite.Require().NoError(err, stderr)
	suite.Contains(stdout, "Deleted bundle ID")

	created.ID = ""
}

func TestCLIIntegrationSuite(t *testing.T) {
	suite.Run(t, new(CLIIntegrationTestSuite))
}
