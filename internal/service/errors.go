package service

import "errors"

var (
	ErrLoadSettings       = errors.New("error loading discovery settings")
	ErrReadPlatform       = errors.New("error reading platform binding")
	ErrOptionsNotResolved = errors.New("discovery options are not resolved yet")

	ErrNoCredentials       = errors.New("options carry no token credentials")
	ErrInvalidCredentials  = errors.New("registry rejected client credentials")
	ErrTokenEndpoint       = errors.New("token endpoint failure")
	ErrTokenEndpointConfig = errors.New("token endpoint misconfigured")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
