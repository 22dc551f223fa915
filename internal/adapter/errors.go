package adapter

import "errors"

var (
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrBadRequest          = errors.New("bad token request")
	ErrForbidden           = errors.New("token request forbidden")
	ErrNotFound            = errors.New("token endpoint not found")
	ErrInternalServerError = errors.New("token endpoint internal error")
	ErrBadGateway          = errors.New("token endpoint bad gateway")

	ErrEmptyTokenURI        = errors.New("empty access token uri")
	ErrInvalidTokenResponse = errors.New("invalid token response")
)
