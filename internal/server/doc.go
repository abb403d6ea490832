// Package server wires and runs the application's transport.
//
// Locally the router is served by a plain HTTP listener with signal
// handling and graceful shutdown. Deployed, the same router is driven by
// the AWS Lambda runtime through an API Gateway adapter.
package server
