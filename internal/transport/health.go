package transport

import (
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// PoolServiceName is the service name reported by the gRPC health server.
const PoolServiceName = "giftpool.v1.PoolService"

// NewHealthServer returns a health server reporting the pool service as serving.
func NewHealthServer() *health.Server {
	s := health.NewServer()
	s.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.SetServingStatus(PoolServiceName, healthpb.HealthCheckResponse_SERVING)
	return s
}
