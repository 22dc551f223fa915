// Package platform reads application identity and bound service credentials
// injected by a Cloud Foundry style platform.
//
// Two environment variables are consulted:
//   - VCAP_APPLICATION: a JSON object describing the running application;
//   - VCAP_SERVICES: a JSON object mapping a service catalog label to the
//     list of service instances bound under that label.
//
// The [Provider] never reads the environment after construction, so it can be
// built from raw strings in tests with [NewProvider].
package platform
