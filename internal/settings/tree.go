// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import "github.com/MKhiriev/go-discovery-config/models"

// Tree mirrors the settings file layout. Every field carries the key it is
// read from in files (json/yaml) and from the environment (env).
type Tree struct {
	Eureka EurekaSection `json:"eureka" yaml:"eureka" envPrefix:"EUREKA_"`
}

// EurekaSection is the "eureka" root key.
type EurekaSection struct {
	Client   ClientSection   `json:"client" yaml:"client" envPrefix:"CLIENT_"`
	Instance InstanceSection `json:"instance" yaml:"instance" envPrefix:"INSTANCE_"`
}

// ServerSection is "eureka.client.eurekaServer".
type ServerSection struct {
	ProxyHost             string `json:"proxyHost" yaml:"proxyHost" env:"PROXY_HOST"`
	ProxyPort             int    `json:"proxyPort" yaml:"proxyPort" env:"PROXY_PORT"`
	ProxyUserName         string `json:"proxyUserName" yaml:"proxyUserName" env:"PROXY_USER_NAME"`
	ProxyPassword         string `json:"proxyPassword" yaml:"proxyPassword" env:"PROXY_PASSWORD"`
	ShouldGZipContent     bool   `json:"shouldGZipContent" yaml:"shouldGZipContent" env:"SHOULD_GZIP_CONTENT"`
	ConnectTimeoutSeconds int    `json:"connectTimeoutSeconds" yaml:"connectTimeoutSeconds" env:"CONNECT_TIMEOUT_SECONDS"`
}

// ClientSection is "eureka.client".
type ClientSection struct {
	EurekaServer ServerSection `json:"eurekaServer" yaml:"eurekaServer" envPrefix:"SERVER_"`

	AllowRedirects                         bool   `json:"allowRedirects" yaml:"allowRedirects" env:"ALLOW_REDIRECTS"`
	ShouldDisableDelta                     bool   `json:"shouldDisableDelta" yaml:"shouldDisableDelta" env:"SHOULD_DISABLE_DELTA"`
	ShouldFilterOnlyUpInstances            bool   `json:"shouldFilterOnlyUpInstances" yaml:"shouldFilterOnlyUpInstances" env:"SHOULD_FILTER_ONLY_UP_INSTANCES"`
	ShouldFetchRegistry                    bool   `json:"shouldFetchRegistry" yaml:"shouldFetchRegistry" env:"SHOULD_FETCH_REGISTRY"`
	RegistryRefreshSingleVipAddress        string `json:"registryRefreshSingleVipAddress" yaml:"registryRefreshSingleVipAddress" env:"REGISTRY_REFRESH_SINGLE_VIP_ADDRESS"`
	ShouldOnDemandUpdateStatusChange       bool   `json:"shouldOnDemandUpdateStatusChange" yaml:"shouldOnDemandUpdateStatusChange" env:"SHOULD_ON_DEMAND_UPDATE_STATUS_CHANGE"`
	ShouldRegisterWithEureka               bool   `json:"shouldRegisterWithEureka" yaml:"shouldRegisterWithEureka" env:"SHOULD_REGISTER_WITH_EUREKA"`
	RegistryFetchIntervalSeconds           int    `json:"registryFetchIntervalSeconds" yaml:"registryFetchIntervalSeconds" env:"REGISTRY_FETCH_INTERVAL_SECONDS"`
	InstanceInfoReplicationIntervalSeconds int    `json:"instanceInfoReplicationIntervalSeconds" yaml:"instanceInfoReplicationIntervalSeconds" env:"INSTANCE_INFO_REPLICATION_INTERVAL_SECONDS"`
	ServiceURL                             string `json:"serviceUrl" yaml:"serviceUrl" env:"SERVICE_URL"`
	AccessTokenURI                         string `json:"accessTokenUri" yaml:"accessTokenUri" env:"ACCESS_TOKEN_URI"`
	ClientID                               string `json:"clientId" yaml:"clientId" env:"CLIENT_ID"`
	ClientSecret                           string `json:"clientSecret" yaml:"clientSecret" env:"CLIENT_SECRET"`
}

// InstanceSection is "eureka.instance".
type InstanceSection struct {
	InstanceID                       string            `json:"instanceId" yaml:"instanceId" env:"INSTANCE_ID"`
	AppName                          string            `json:"appName" yaml:"appName" env:"APP_NAME"`
	AppGroup                         string            `json:"appGroup" yaml:"appGroup" env:"APP_GROUP"`
	InstanceEnabledOnInit            bool              `json:"instanceEnabledOnInit" yaml:"instanceEnabledOnInit" env:"INSTANCE_ENABLED_ON_INIT"`
	HostName                         string            `json:"hostName" yaml:"hostName" env:"HOST_NAME"`
	Port                             int               `json:"port" yaml:"port" env:"PORT"`
	SecurePort                       int               `json:"securePort" yaml:"securePort" env:"SECURE_PORT"`
	NonSecurePortEnabled             bool              `json:"nonSecurePortEnabled" yaml:"nonSecurePortEnabled" env:"NON_SECURE_PORT_ENABLED"`
	SecurePortEnabled                bool              `json:"securePortEnabled" yaml:"securePortEnabled" env:"SECURE_PORT_ENABLED"`
	LeaseExpirationDurationInSeconds int               `json:"leaseExpirationDurationInSeconds" yaml:"leaseExpirationDurationInSeconds" env:"LEASE_EXPIRATION_DURATION_IN_SECONDS"`
	LeaseRenewalIntervalInSeconds    int               `json:"leaseRenewalIntervalInSeconds" yaml:"leaseRenewalIntervalInSeconds" env:"LEASE_RENEWAL_INTERVAL_IN_SECONDS"`
	SecureVipAddress                 string            `json:"secureVipAddress" yaml:"secureVipAddress" env:"SECURE_VIP_ADDRESS"`
	VipAddress                       string            `json:"vipAddress" yaml:"vipAddress" env:"VIP_ADDRESS"`
	ASGName                          string            `json:"asgName" yaml:"asgName" env:"ASG_NAME"`
	MetadataMap                      map[string]string `json:"metadataMap" yaml:"metadataMap" env:"METADATA_MAP"`
	StatusPageURLPath                string            `json:"statusPageUrlPath" yaml:"statusPageUrlPath" env:"STATUS_PAGE_URL_PATH"`
	StatusPageURL                    string            `json:"statusPageUrl" yaml:"statusPageUrl" env:"STATUS_PAGE_URL"`
	HomePageURLPath                  string            `json:"homePageUrlPath" yaml:"homePageUrlPath" env:"HOME_PAGE_URL_PATH"`
	HomePageURL                      string            `json:"homePageUrl" yaml:"homePageUrl" env:"HOME_PAGE_URL"`
	HealthCheckURLPath               string            `json:"healthCheckUrlPath" yaml:"healthCheckUrlPath" env:"HEALTH_CHECK_URL_PATH"`
	HealthCheckURL                   string            `json:"healthCheckUrl" yaml:"healthCheckUrl" env:"HEALTH_CHECK_URL"`
	SecureHealthCheckURL             string            `json:"secureHealthCheckUrl" yaml:"secureHealthCheckUrl" env:"SECURE_HEALTH_CHECK_URL"`
}

// Legacy defaults applied before any settings file is read.
const (
	DefaultServiceURL                      = "http://localhost:8761/eureka/"
	DefaultRegistryFetchIntervalSeconds    = 30
	DefaultReplicationIntervalSeconds      = 40
	DefaultConnectTimeoutSeconds           = 5
	DefaultSecurePort                      = 443
	DefaultLeaseRenewalIntervalInSeconds   = 30
	DefaultLeaseExpirationDurationInSecond = 90
	DefaultStatusPageURLPath               = "/Status"
	DefaultHealthCheckURLPath              = "/healthcheck"
	DefaultHomePageURLPath                 = "/"
)

// NewDefaultTree returns a tree holding the defaults. The non-secure port is
// left at zero so that "not configured" stays observable.
func NewDefaultTree() *Tree {
	return &Tree{
		Eureka: EurekaSection{
			Client: ClientSection{
				EurekaServer: ServerSection{
					ShouldGZipContent:     true,
					ConnectTimeoutSeconds: DefaultConnectTimeoutSeconds,
				},
				ShouldFilterOnlyUpInstances:            true,
				ShouldFetchRegistry:                    true,
				ShouldRegisterWithEureka:               true,
				RegistryFetchIntervalSeconds:           DefaultRegistryFetchIntervalSeconds,
				InstanceInfoReplicationIntervalSeconds: DefaultReplicationIntervalSeconds,
				ServiceURL:                             DefaultServiceURL,
			},
			Instance: InstanceSection{
				SecurePort:                       DefaultSecurePort,
				NonSecurePortEnabled:             true,
				LeaseExpirationDurationInSeconds: DefaultLeaseExpirationDurationInSecond,
				LeaseRenewalIntervalInSeconds:    DefaultLeaseRenewalIntervalInSeconds,
				StatusPageURLPath:                DefaultStatusPageURLPath,
				HealthCheckURLPath:               DefaultHealthCheckURLPath,
				HomePageURLPath:                  DefaultHomePageURLPath,
			},
		},
	}
}

// Options converts the tree into discovery options. The metadata map is
// copied so later changes to the options never leak back into the tree.
func (t *Tree) Options() *models.DiscoveryOptions {
	c := t.Eureka.Client
	i := t.Eureka.Instance

	metadata := make(map[string]string, len(i.MetadataMap))
	for k, v := range i.MetadataMap {
		metadata[k] = v
	}

	return &models.DiscoveryOptions{
		Client: models.ClientOptions{
			ProxyHost:                              c.EurekaServer.ProxyHost,
			ProxyPort:                              c.EurekaServer.ProxyPort,
			ProxyUserName:                          c.EurekaServer.ProxyUserName,
			ProxyPassword:                          c.EurekaServer.ProxyPassword,
			ShouldGZipContent:                      c.EurekaServer.ShouldGZipContent,
			EurekaServerConnectTimeoutSeconds:      c.EurekaServer.ConnectTimeoutSeconds,
			AllowRedirects:                         c.AllowRedirects,
			ShouldDisableDelta:                     c.ShouldDisableDelta,
			ShouldFilterOnlyUpInstances:            c.ShouldFilterOnlyUpInstances,
			ShouldFetchRegistry:                    c.ShouldFetchRegistry,
			RegistryRefreshSingleVipAddress:        c.RegistryRefreshSingleVipAddress,
			ShouldOnDemandUpdateStatusChange:       c.ShouldOnDemandUpdateStatusChange,
			ShouldRegisterWithEureka:               c.ShouldRegisterWithEureka,
			RegistryFetchIntervalSeconds:           c.RegistryFetchIntervalSeconds,
			InstanceInfoReplicationIntervalSeconds: c.InstanceInfoReplicationIntervalSeconds,
			EurekaServerServiceUrls:                c.ServiceURL,
			AccessTokenUri:                         c.AccessTokenURI,
			ClientId:                               c.ClientID,
			ClientSecret:                           c.ClientSecret,
		},
		Instance: models.InstanceOptions{
			InstanceId:                       i.InstanceID,
			AppName:                          i.AppName,
			AppGroupName:                     i.AppGroup,
			IsInstanceEnabledOnInit:          i.InstanceEnabledOnInit,
			HostName:                         i.HostName,
			NonSecurePort:                    i.Port,
			SecurePort:                       i.SecurePort,
			IsNonSecurePortEnabled:           i.NonSecurePortEnabled,
			SecurePortEnabled:                i.SecurePortEnabled,
			LeaseExpirationDurationInSeconds: i.LeaseExpirationDurationInSeconds,
			LeaseRenewalIntervalInSeconds:    i.LeaseRenewalIntervalInSeconds,
			SecureVirtualHostName:            i.SecureVipAddress,
			VirtualHostName:                  i.VipAddress,
			ASGName:                          i.ASGName,
			MetadataMap:                      metadata,
			StatusPageUrlPath:                i.StatusPageURLPath,
			StatusPageUrl:                    i.StatusPageURL,
			HomePageUrlPath:                  i.HomePageURLPath,
			HomePageUrl:                      i.HomePageURL,
			HealthCheckUrlPath:               i.HealthCheckURLPath,
			HealthCheckUrl:                   i.HealthCheckURL,
			SecureHealthCheckUrl:             i.SecureHealthCheckURL,
		},
	}
}
