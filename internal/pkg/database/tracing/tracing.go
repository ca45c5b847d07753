package tracing

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	// 用于数据库追踪的仪器名称
	instrumentationName = "internal/pkg/database/tracing"

	spanKey = "tracing:span"
)

// GormTracingPlugin 是一个实现了gorm.Plugin接口的追踪插件
// 它为所有数据库操作创建 OpenTelemetry span
type GormTracingPlugin struct {
	tracer trace.Tracer
}

var _ gorm.Plugin = &GormTracingPlugin{}

// NewGormTracingPlugin 创建一个新的GORM追踪插件
func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

// Name 返回插件名称
func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

// Initialize 初始化插件，注册GORM回调
func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	// 查询操作
	if err := db.Callback().Query().Before("gorm:query").Register("tracing:before_query", p.before("select")); err != nil {
		return err
	}
	if err := db.Callback().Query().After("gorm:query").Register("tracing:after_query", p.after); err != nil {
		return err
	}

	// 创建操作
	if err := db.Callback().Create().Before("gorm:create").Register("tracing:before_create", p.before("insert")); err != nil {
		return err
	}
	if err := db.Callback().Create().After("gorm:create").Register("tracing:after_create", p.after); err != nil {
		return err
	}

	// 更新操作
	if err := db.Callback().Update().Before("gorm:update").Register("tracing:before_update", p.before("update")); err != nil {
		return err
	}
	if err := db.Callback().Update().After("gorm:update").Register("tracing:after_update", p.after); err != nil {
		return err
	}

	// 删除操作
	if err := db.Callback().Delete().Before("gorm:delete").Register("tracing:before_delete", p.before("delete")); err != nil {
		return err
	}
	if err := db.Callback().Delete().After("gorm:delete").Register("tracing:after_delete", p.after); err != nil {
		return err
	}

	// 原始SQL操作
	if err := db.Callback().Raw().Before("gorm:raw").Register("tracing:before_raw", p.before("raw")); err != nil {
		return err
	}
	if err := db.Callback().Raw().After("gorm:raw").Register("tracing:after_raw", p.after); err != nil {
		return err
	}

	return nil
}

// before 在操作前创建span，并把span存到当前会话里
func (p *GormTracingPlugin) before(operation string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		tableName := db.Statement.Table
		if db.Statement.Schema != nil {
			tableName = db.Statement.Schema.Table
		}

		spanName := fmt.Sprintf("MySQL %s %s", operation, tableName)
		ctx, span := p.tracer.Start(
			db.Statement.Context,
			spanName,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("db.system", "mysql"),
				attribute.String("db.operation", operation),
				attribute.String("db.sql.table", tableName),
			),
		)

		db.Statement.Context = ctx
		db.Set(spanKey, span)
	}
}

// after 在操作后结束span，记录错误和影响行数
func (p *GormTracingPlugin) after(db *gorm.DB) {
	value, exists := db.Get(spanKey)
	if !exists {
		return
	}
	span, ok := value.(trace.Span)
	if !ok {
		return
	}
	defer span.End()

	span.SetAttributes(attribute.Int64("db.rows_affected", db.RowsAffected))

	// 没有命中记录不算错误
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
		return
	}
	span.SetStatus(codes.Ok, "")
}
