//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	grpcapi "github.com/serendipityConfusion/id-platform/internal/api/grpc"
	"github.com/serendipityConfusion/id-platform/internal/ioc"
	"github.com/serendipityConfusion/id-platform/internal/pkg/config"
	"github.com/serendipityConfusion/id-platform/internal/pkg/registry"
	"github.com/serendipityConfusion/id-platform/internal/repository"
	"github.com/serendipityConfusion/id-platform/internal/repository/cache/redis"
	"github.com/serendipityConfusion/id-platform/internal/repository/dao"
	"github.com/serendipityConfusion/id-platform/internal/service"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitLogger,
		ioc.InitDB,
		ioc.InitRedis,
		ioc.InitSnowflake,
		ioc.InitSonyflake,
		ioc.InitSegmentConfig,
		ioc.InitDistributedLock,
		ioc.InitEtcdClient,
	)

	idSvcSet = wire.NewSet(
		service.NewIDService,
		repository.NewSegmentRepository,
		dao.NewSegmentDAO,
		dao.NewQuotaDAO,
		redis.NewQuotaCache,
	)
)

func InitGrpcServer() *ioc.App {
	wire.Build(
		BaseSet,
		idSvcSet,
		grpcapi.NewIDServer,
		ioc.InitGrpc,
		ioc.InitRegistry,
		wire.Bind(new(registry.Registry), new(*registry.EtcdRegistry)),
		ioc.InitConfigLoader,
		wire.Bind(new(config.ConfigLoader), new(*config.ViperConfigLoader)),
		ioc.InitServiceInfo,
		wire.Struct(new(ioc.App), "*"),
	)
	return &ioc.App{}
}
