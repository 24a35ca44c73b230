package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"CollabHub/internal/config"
	"CollabHub/internal/limits"
	"CollabHub/internal/model"
	"CollabHub/internal/pkg"
	"CollabHub/internal/repository/mysql"
	"CollabHub/internal/repository/redis"
	"CollabHub/internal/router"
	"CollabHub/internal/service"
)

func main() {
	cfg := config.Load()
	lim := limits.FromEnv()

	pkg.InitJWT(cfg.AccessSecret, cfg.RefreshSecret, cfg.AccessTTL, cfg.RefreshTTL)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		panic(err)
	}

	// 连接redis
	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		panic(err)
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Skill{},
		&model.UserSkill{},
		&model.Project{},
		&model.ProjectMember{},
		&model.Conversation{},
		&model.ConversationParticipant{},
		&model.Message{},
		&model.Friendship{},
		&model.Invitation{},
		&model.ChatOutbox{},
	); err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// outbox 投递：配置了 Kafka 就走 Kafka，否则降级为日志
	sender := service.LogSender
	if len(cfg.KafkaBrokers) > 0 {
		producer := pkg.NewEventProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
		sender = func(ctx context.Context, ob *model.ChatOutbox) error {
			return producer.Publish(ctx, ob.EventType, ob.SubjectID, []byte(ob.Payload))
		}
	}
	go service.NewOutboxRelayer(sender).Run(ctx)

	r := router.InitRouter(cfg, lim)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
