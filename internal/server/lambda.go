// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/the-todo-way/internal/config"
	"github.com/MKhiriev/the-todo-way/internal/logger"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
)

const (
	payloadVersion1 = "1.0"
	payloadVersion2 = "2.0"
)

// LambdaHandler translates API Gateway events into requests against the
// router and the router's responses back into API Gateway responses.
type LambdaHandler struct {
	version string
	v1      *httpadapter.HandlerAdapter
	v2      *httpadapter.HandlerAdapterV2
}

// NewLambdaHandler returns the Lambda entry point for cfg, or nil when the
// process runs locally and serves HTTP itself.
func NewLambdaHandler(app config.App, cfg config.Server, h http.Handler) (*LambdaHandler, error) {
	if app.IsLocal() {
		return nil, nil
	}

	switch cfg.LambdaPayloadVersion {
	case payloadVersion1:
		return &LambdaHandler{version: payloadVersion1, v1: httpadapter.New(h)}, nil
	case payloadVersion2:
		return &LambdaHandler{version: payloadVersion2, v2: httpadapter.NewV2(h)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedPayloadVersion, cfg.LambdaPayloadVersion)
	}
}

// ProxyV1 handles a REST API (payload format 1.0) event.
func (l *LambdaHandler) ProxyV1(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return l.v1.ProxyWithContext(ctx, event)
}

// ProxyV2 handles an HTTP API or function URL (payload format 2.0) event.
func (l *LambdaHandler) ProxyV2(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return l.v2.ProxyWithContext(ctx, event)
}

// handler returns the typed function registered with the Lambda runtime.
func (l *LambdaHandler) handler() any {
	if l.version == payloadVersion1 {
		return l.ProxyV1
	}
	return l.ProxyV2
}

type lambdaServer struct {
	handler *LambdaHandler

	logger *logger.Logger
}

func newLambdaServer(handler *LambdaHandler, logger *logger.Logger) *lambdaServer {
	return &lambdaServer{handler: handler, logger: logger}
}

// RunServer hands control to the Lambda runtime and does not return while
// the execution environment is alive.
func (s *lambdaServer) RunServer() {
	s.logger.Info().Str("payload_version", s.handler.version).Msg("starting Lambda runtime")
	lambda.Start(s.handler.handler())
}

// Shutdown is a no-op: the Lambda runtime owns the process lifecycle.
func (s *lambdaServer) Shutdown() {
	s.logger.Info().Msg("Lambda runtime shutdown requested")
}
