package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// appSettingsJSON is a complete settings file covering every supported key.
const appSettingsJSON = `{
  "eureka": {
    "client": {
      "eurekaServer": {
        "proxyHost": "proxyHost",
        "proxyPort": 100,
        "proxyUserName": "proxyUserName",
        "proxyPassword": "proxyPassword",
        "shouldGZipContent": true,
        "connectTimeoutSeconds": 100
      },
      "allowRedirects": true,
      "shouldDisableDelta": true,
      "shouldFilterOnlyUpInstances": true,
      "shouldFetchRegistry": true,
      "registryRefreshSingleVipAddress": "registryRefreshSingleVipAddress",
      "shouldOnDemandUpdateStatusChange": true,
      "shouldRegisterWithEureka": true,
      "registryFetchIntervalSeconds": 100,
      "instanceInfoReplicationIntervalSeconds": 100,
      "serviceUrl": "http://localhost:8761/eureka/"
    },
    "instance": {
      "instanceId": "instanceId",
      "appName": "appName",
      "appGroup": "appGroup",
      "instanceEnabledOnInit": true,
      "port": 100,
      "securePort": 100,
      "nonSecurePortEnabled": true,
      "securePortEnabled": true,
      "leaseExpirationDurationInSeconds": 100,
      "leaseRenewalIntervalInSeconds": 100,
      "secureVipAddress": "secureVipAddress",
      "vipAddress": "vipAddress",
      "asgName": "asgName",
      "metadataMap": {
        "foo": "bar",
        "bar": "foo"
      },
      "statusPageUrlPath": "statusPageUrlPath",
      "statusPageUrl": "statusPageUrl",
      "homePageUrlPath": "homePageUrlPath",
      "homePageUrl": "homePageUrl",
      "healthCheckUrlPath": "healthCheckUrlPath",
      "healthCheckUrl": "healthCheckUrl",
      "secureHealthCheckUrl": "secureHealthCheckUrl"
    }
  }
}`

func writeSettingsFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}
