//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	notificationGateway "dispatch/internal/gateway/kafka/notification"
	delivery_accept_post "dispatch/internal/handlers/rest/delivery_accept_post"
	delivery_arrive_post "dispatch/internal/handlers/rest/delivery_arrive_post"
	delivery_batch_accept_post "dispatch/internal/handlers/rest/delivery_batch_accept_post"
	delivery_deliver_post "dispatch/internal/handlers/rest/delivery_deliver_post"
	delivery_pickup_post "dispatch/internal/handlers/rest/delivery_pickup_post"
	delivery_rate_post "dispatch/internal/handlers/rest/delivery_rate_post"
	delivery_reject_post "dispatch/internal/handlers/rest/delivery_reject_post"
	delivery_transit_post "dispatch/internal/handlers/rest/delivery_transit_post"
	delivery_waiting_get "dispatch/internal/handlers/rest/delivery_waiting_get"
	wallet_balance_get "dispatch/internal/handlers/rest/wallet_balance_get"
	wallet_topup_post "dispatch/internal/handlers/rest/wallet_topup_post"
	wallet_transactions_get "dispatch/internal/handlers/rest/wallet_transactions_get"
	wallet_withdraw_post "dispatch/internal/handlers/rest/wallet_withdraw_post"
	"dispatch/internal/handlers/tasks/waiting_sweep"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/order_handle"
	"dispatch/internal/pkg/factory/waiting_info"

	"dispatch/internal/entities"
	deliveryRepo "dispatch/internal/repository/delivery"
	orderRepo "dispatch/internal/repository/order"
	walletRepo "dispatch/internal/repository/wallet"
	commissionService "dispatch/internal/service/commission"
	deliveryService "dispatch/internal/service/delivery"
	orderService "dispatch/internal/service/order"
	settlementService "dispatch/internal/service/settlement"
	walletService "dispatch/internal/service/wallet"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	SweepInterval time.Duration
)

type Application struct {
	ServiceDelivery   ServiceDelivery
	ServiceSettlement ServiceSettlement
	ServiceWallet     ServiceWallet
	BackgroundWorkers *background.Worker
}

type ServiceDelivery interface {
	delivery_accept_post.Service
	delivery_batch_accept_post.Service
	delivery_pickup_post.Service
	delivery_transit_post.Service
	delivery_arrive_post.Service
	delivery_waiting_get.Service
	delivery_reject_post.Service
	delivery_rate_post.Service
}

type ServiceSettlement interface {
	delivery_deliver_post.Service
}

type ServiceWallet interface {
	wallet_balance_get.Service
	wallet_transactions_get.Service
	wallet_topup_post.Service
	wallet_withdraw_post.Service
}

func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSweepInterval,

		provideDeliveryRepository,
		provideOrderRepository,
		provideWalletRepository,

		provideNotificationGateway,
		waiting_info.New,

		provideServiceWallet,
		provideServiceCommission,
		provideServiceDelivery,
		provideServiceSettlement,

		provideWaitingSweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceSettlement), new(*settlementService.Coordinator)),
		wire.Bind(new(ServiceWallet), new(*walletService.Ledger)),

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(deliveryService.WaitingInfoFactory), new(*waiting_info.Factory)),
		wire.Bind(new(deliveryService.Notifier), new(*notificationGateway.Gateway)),

		wire.Bind(new(walletService.Repository), new(*walletRepo.Repository)),

		wire.Bind(new(commissionService.Ledger), new(*walletService.Ledger)),
		wire.Bind(new(commissionService.DeliveryRepository), new(*deliveryRepo.Repository)),

		wire.Bind(new(settlementService.DeliveryRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(settlementService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(settlementService.Ledger), new(*walletService.Ledger)),
		wire.Bind(new(settlementService.CommissionService), new(*commissionService.Service)),
		wire.Bind(new(settlementService.Notifier), new(*notificationGateway.Gateway)),

		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(walletService.TxManager), new(*tx.Manager)),
		wire.Bind(new(commissionService.TxManager), new(*tx.Manager)),
		wire.Bind(new(settlementService.TxManager), new(*tx.Manager)),

		wire.Bind(new(waiting_sweep.Service), new(*deliveryService.Delivery)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideDeliveryRepository,
		provideOrderRepository,

		provideNotificationGateway,
		waiting_info.New,

		provideServiceDelivery,
		provideStatusHandlerFactory,
		provideServiceOrder,

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(deliveryService.WaitingInfoFactory), new(*waiting_info.Factory)),
		wire.Bind(new(deliveryService.Notifier), new(*notificationGateway.Gateway)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideWalletRepository(querier *querier.Querier) *walletRepo.Repository {
	return walletRepo.New(querier)
}

func provideNotificationGateway(producer sarama.SyncProducer, cfg *config.Config) *notificationGateway.Gateway {
	return notificationGateway.New(producer, cfg.Kafka.NotificationsTopic)
}

func provideServiceWallet(
	repository walletService.Repository,
	txManager walletService.TxManager,
	cfg *config.Config,
) *walletService.Ledger {
	return walletService.New(repository, txManager, cfg.Settings.MinimumWalletBalance)
}

func provideServiceCommission(
	ledger commissionService.Ledger,
	deliveries commissionService.DeliveryRepository,
	txManager commissionService.TxManager,
	cfg *config.Config,
) *commissionService.Service {
	return commissionService.New(
		ledger,
		deliveries,
		txManager,
		cfg.Settings.CommissionRatePercent,
		cfg.Settings.CourierCommission,
	)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	orders deliveryService.OrderRepository,
	waitingFactory deliveryService.WaitingInfoFactory,
	notifier deliveryService.Notifier,
	txManager deliveryService.TxManager,
	log logger.Logger,
	cfg *config.Config,
) *deliveryService.Delivery {
	return deliveryService.New(
		repository,
		orders,
		waitingFactory,
		notifier,
		txManager,
		log,
		entities.WaitingSettings{
			TimeoutMinutes: cfg.Settings.WaitingTimeoutMinutes,
			FreeMinutes:    cfg.Settings.WaitingFreeMinutes,
			FeePerMinute:   cfg.Settings.WaitingFeePerMinute,
		},
		cfg.Settings.MaxActiveDeliveries,
	)
}

func provideServiceSettlement(
	deliveries settlementService.DeliveryRepository,
	orders settlementService.OrderRepository,
	ledger settlementService.Ledger,
	commission settlementService.CommissionService,
	notifier settlementService.Notifier,
	txManager settlementService.TxManager,
	log logger.Logger,
	cfg *config.Config,
) *settlementService.Coordinator {
	return settlementService.New(
		deliveries,
		orders,
		ledger,
		commission,
		notifier,
		txManager,
		log,
		cfg.Settings.CourierCommission,
	)
}

func provideServiceOrder(
	repository orderService.Repository,
	handlerFactory orderService.HandlerFactory,
) *orderService.Service {
	return orderService.New(repository, handlerFactory)
}

func provideStatusHandlerFactory(deliveryService *deliveryService.Delivery) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(deliveryService)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.WaitingSweepInterval)
}

func provideWaitingSweepTask(
	log logger.Logger,
	deliveryService waiting_sweep.Service,
	interval SweepInterval,
) *waiting_sweep.WaitingSweep {
	return waiting_sweep.NewWaitingSweep(log, deliveryService, time.Duration(interval))
}

func provideTaskList(
	waitingSweepTask *waiting_sweep.WaitingSweep,
) []background.Task {
	return []background.Task{
		waitingSweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
