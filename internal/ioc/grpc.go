package ioc

import (
	idpb "github.com/serendipityConfusion/id-platform/api/gen/v1"
	grpcapi "github.com/serendipityConfusion/id-platform/internal/api/grpc"
	"github.com/serendipityConfusion/id-platform/internal/api/grpc/interceptor/log"
	"github.com/serendipityConfusion/id-platform/internal/api/grpc/interceptor/metrics"
	"github.com/serendipityConfusion/id-platform/internal/api/grpc/interceptor/tracing"
	"google.golang.org/grpc"
)

func InitGrpc(idServer *grpcapi.IDServer) *grpc.Server {
	// 创建observability拦截器
	metricsInterceptor := metrics.New().Build()
	logInterceptor := log.New().Build()
	// 拦截器定义
	traceInterceptor := tracing.UnaryServerInterceptor()
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			metricsInterceptor,
			logInterceptor,
			traceInterceptor,
		),
	)
	idpb.RegisterIDServiceServer(server, idServer)
	return server
}
