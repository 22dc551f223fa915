// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ClientType identifies the discovery protocol a [DiscoveryOptions] value is
// meant for.
type ClientType string

// ClientTypeEureka is the only discovery protocol supported by the resolver.
const ClientTypeEureka ClientType = "EUREKA"

// MetadataInstanceIDKey is the metadata map key under which the platform
// instance identifier is published.
const MetadataInstanceIDKey = "instanceId"

// DiscoveryOptions is the aggregate produced by one resolution pass.
//
// It is created from the settings source, mutated in place by the configurer
// and treated as read-only configuration afterwards.
type DiscoveryOptions struct {
	ClientType ClientType      `json:"client_type"`
	Client     ClientOptions   `json:"client"`
	Instance   InstanceOptions `json:"instance"`
}

// ClientOptions holds the connection-level settings used to reach the
// discovery server.
type ClientOptions struct {
	// ProxyHost, ProxyPort, ProxyUserName and ProxyPassword describe an
	// optional HTTP proxy placed between the client and the server.
	ProxyHost     string `json:"proxy_host"`
	ProxyPort     int    `json:"proxy_port"`
	ProxyUserName string `json:"proxy_user_name"`
	ProxyPassword string `json:"proxy_password"`

	ShouldGZipContent                 bool `json:"should_gzip_content"`
	EurekaServerConnectTimeoutSeconds int  `json:"eureka_server_connect_timeout_seconds"`
	AllowRedirects                    bool `json:"allow_redirects"`

	// ShouldDisableDelta forces full registry fetches instead of delta
	// updates.
	ShouldDisableDelta               bool   `json:"should_disable_delta"`
	ShouldFilterOnlyUpInstances      bool   `json:"should_filter_only_up_instances"`
	ShouldFetchRegistry              bool   `json:"should_fetch_registry"`
	RegistryRefreshSingleVipAddress  string `json:"registry_refresh_single_vip_address"`
	ShouldOnDemandUpdateStatusChange bool   `json:"should_on_demand_update_status_change"`
	ShouldRegisterWithEureka         bool   `json:"should_register_with_eureka"`

	RegistryFetchIntervalSeconds           int `json:"registry_fetch_interval_seconds"`
	InstanceInfoReplicationIntervalSeconds int `json:"instance_info_replication_interval_seconds"`

	// EurekaServerServiceUrls is the resolved server URL. A bound service
	// registry always overrides the value read from settings.
	EurekaServerServiceUrls string `json:"eureka_server_service_urls"`

	// AccessTokenUri, ClientId and ClientSecret are the OAuth2 client
	// credentials used to authenticate against a secured registry.
	AccessTokenUri string `json:"access_token_uri"`
	ClientId       string `json:"client_id"`
	ClientSecret   string `json:"client_secret"`
}

// HasCredentials reports whether the options carry enough data to request an
// access token.
func (o ClientOptions) HasCredentials() bool {
	return o.AccessTokenUri != "" && o.ClientId != ""
}

// InstanceOptions holds the registration-time metadata of this application
// instance.
type InstanceOptions struct {
	InstanceId              string `json:"instance_id"`
	AppName                 string `json:"app_name"`
	AppGroupName            string `json:"app_group_name"`
	IsInstanceEnabledOnInit bool   `json:"is_instance_enabled_on_init"`
	HostName                string `json:"host_name"`

	// NonSecurePort is zero when it was not configured.
	NonSecurePort          int  `json:"non_secure_port"`
	SecurePort             int  `json:"secure_port"`
	IsNonSecurePortEnabled bool `json:"is_non_secure_port_enabled"`
	SecurePortEnabled      bool `json:"secure_port_enabled"`

	LeaseExpirationDurationInSeconds int `json:"lease_expiration_duration_in_seconds"`
	LeaseRenewalIntervalInSeconds    int `json:"lease_renewal_interval_in_seconds"`

	SecureVirtualHostName string `json:"secure_virtual_host_name"`
	VirtualHostName       string `json:"virtual_host_name"`
	ASGName               string `json:"asg_name"`

	MetadataMap map[string]string `json:"metadata_map"`

	StatusPageUrlPath    string `json:"status_page_url_path"`
	StatusPageUrl        string `json:"status_page_url"`
	HomePageUrlPath      string `json:"home_page_url_path"`
	HomePageUrl          string `json:"home_page_url"`
	HealthCheckUrlPath   string `json:"health_check_url_path"`
	HealthCheckUrl       string `json:"health_check_url"`
	SecureHealthCheckUrl string `json:"secure_health_check_url"`
}

// Clone returns a deep copy of the options. The metadata map of the copy is
// never shared with the receiver.
func (o *DiscoveryOptions) Clone() *DiscoveryOptions {
	if o == nil {
		return nil
	}

	clone := *o
	if o.Instance.MetadataMap != nil {
		clone.Instance.MetadataMap = make(map[string]string, len(o.Instance.MetadataMap))
		for k, v := range o.Instance.MetadataMap {
			clone.Instance.MetadataMap[k] = v
		}
	}

	return &clone
}

const redactedValue = "******"

// Redacted returns a deep copy with secrets masked. Empty secrets stay empty
// so that a missing value remains visible as missing.
func (o *DiscoveryOptions) Redacted() *DiscoveryOptions {
	clone := o.Clone()
	if clone == nil {
		return nil
	}

	if clone.Client.ProxyPassword != "" {
		clone.Client.ProxyPassword = redactedValue
	}
	if clone.Client.ClientSecret != "" {
		clone.Client.ClientSecret = redactedValue
	}

	return clone
}
