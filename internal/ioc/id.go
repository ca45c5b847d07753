package ioc

import (
	"time"

	"github.com/serendipityConfusion/id-platform/internal/pkg/config"
	"github.com/serendipityConfusion/id-platform/internal/pkg/log"
	"github.com/serendipityConfusion/id-platform/internal/pkg/snowflake"
	"github.com/sony/sonyflake"
	"github.com/spf13/viper"
)

// InitSnowflake 雪花算法发号器初始化
// worker-id 和 datacenter-id 在部署时静态分配，每个实例各不相同
func InitSnowflake(logger log.LoggerInterface) *snowflake.Generator {
	conf := &config.SnowflakeConfig{}
	err := viper.UnmarshalKey("id.snowflake", conf, viper.DecodeHook(viper.DecoderConfigOption(config.TagName("yaml"))))
	if err != nil {
		panic(err)
	}

	c := snowflake.NewConfig().
		WithWorkerID(conf.WorkerID).
		WithDataCenterID(conf.DataCenterID).
		WithLogger(logger)
	if conf.Epoch > 0 {
		c = c.WithEpoch(conf.Epoch)
	}
	gen, err := c.Build()
	if err != nil {
		panic(err)
	}
	return gen
}

// InitSegmentConfig 号段模式配置初始化
func InitSegmentConfig() config.SegmentConfig {
	conf := config.SegmentConfig{}
	err := viper.UnmarshalKey("id.segment", &conf, viper.DecodeHook(viper.DecoderConfigOption(config.TagName("yaml"))))
	if err != nil {
		panic(err)
	}
	return conf
}

// InitSonyflake sonyflake 发号器初始化
/*
MachineID 这个函数用于生成机器ID，确保在分布式环境中每个实例有唯一的标识符，从而避免ID冲突。
方案：redis自增，etcd分布式锁等方式均可实现机器ID的唯一分配，环境变量
	39 bits for time in units of 10 msec
	 8 bits for a sequence number
	16 bits for a machine id
*/
func InitSonyflake() *sonyflake.Sonyflake {
	conf := &config.SonyflakeConfig{}
	err := viper.UnmarshalKey("id.sonyflake", conf, viper.DecodeHook(viper.DecoderConfigOption(config.TagName("yaml"))))
	if err != nil {
		panic(err)
	}
	return sonyflake.NewSonyflake(sonyflake.Settings{
		StartTime: time.Now(),
		MachineID: func() (uint16, error) {
			return conf.MachineID, nil
		},
	})
}
