// Package settings reads discovery client options from settings files and
// environment variables.
//
// Values are layered in the following order, each layer overriding only the
// keys it actually sets:
//  1. Built-in defaults
//  2. Settings files, in the order given (JSON or YAML, chosen by extension)
//  3. EUREKA_* environment variables
//
// The result is a seeded [models.DiscoveryOptions] ready to be handed to the
// configurer.
package settings
