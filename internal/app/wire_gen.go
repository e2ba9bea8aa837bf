// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"ridermatch/internal/gateway/kafka/notifier"
	"ridermatch/internal/handlers/rest/assignment_accept_post"
	"ridermatch/internal/handlers/rest/assignment_confirm_post"
	"ridermatch/internal/handlers/rest/assignment_reject_post"
	"ridermatch/internal/handlers/rest/availability_get"
	"ridermatch/internal/handlers/rest/availability_post"
	"ridermatch/internal/handlers/rest/match_run_post"
	"ridermatch/internal/handlers/rest/rider_get"
	"ridermatch/internal/handlers/rest/rider_post"
	"ridermatch/internal/handlers/rest/rider_put"
	"ridermatch/internal/handlers/rest/riders_get"
	"ridermatch/internal/handlers/rest/shift_cancel_post"
	"ridermatch/internal/handlers/rest/shift_get"
	"ridermatch/internal/handlers/rest/shift_post"
	"ridermatch/internal/handlers/rest/shifts_open_get"
	"ridermatch/internal/handlers/tasks/match_tick"
	"ridermatch/internal/handlers/tasks/shift_completion"
	"ridermatch/internal/handlers/tasks/timeout_sweep"
	"ridermatch/internal/pkg/clock"
	"ridermatch/internal/pkg/config"
	"ridermatch/internal/pkg/factory/confirmation_deadline"
	"ridermatch/internal/repository/assignment"
	matching2 "ridermatch/internal/repository/matching"
	"ridermatch/internal/repository/rider"
	"ridermatch/internal/repository/shift"
	"ridermatch/internal/service/lifecycle"
	"ridermatch/internal/service/matching"
	rider2 "ridermatch/internal/service/rider"
	shift2 "ridermatch/internal/service/shift"
	"ridermatch/pkg/background"
	"ridermatch/pkg/logger"
	"ridermatch/pkg/querier"
	"ridermatch/pkg/tx"
	"time"
)

// Injectors from wire.go:

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, producer sarama.SyncProducer, cfg *config.Config) (*Application, error) {
	querier := provideQuerier(pool, getter)
	repository := provideRiderRepository(querier)
	manager := provideTxManager(pool)
	rider := provideServiceRider(repository, manager)
	shiftRepository := provideShiftRepository(querier)
	shift := provideServiceShift(shiftRepository, manager)
	assignmentRepository := provideAssignmentRepository(querier)
	deadlineFactory := provideDeadlineFactory(cfg)
	gateway := provideNotifierGateway(producer, cfg)
	system := provideSystemClock()
	lifecycle := provideServiceLifecycle(log, assignmentRepository, deadlineFactory, gateway, system, manager)
	matchingRepository := provideMatchingRepository(querier)
	availabilityIndex := provideAvailabilityIndex(matchingRepository, system, cfg)
	scorer := matching.NewScorer()
	conflictGuard := matching.NewConflictGuard(matchingRepository)
	engine := provideMatchingEngine(log, matchingRepository, availabilityIndex, scorer, conflictGuard, gateway, system, manager)
	matchTickInterval := provideMatchTickInterval(cfg)
	matchTick := provideMatchTickTask(log, engine, matchTickInterval)
	timeoutSweepInterval := provideTimeoutSweepInterval(cfg)
	timeoutSweep := provideTimeoutSweepTask(log, lifecycle, engine, timeoutSweepInterval)
	shiftCompletionInterval := provideShiftCompletionInterval(cfg)
	shiftCompletion := provideShiftCompletionTask(log, lifecycle, shiftCompletionInterval)
	v := provideTaskList(matchTick, timeoutSweep, shiftCompletion)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ServiceRider:      rider,
		ServiceShift:      shift,
		ServiceLifecycle:  lifecycle,
		Matcher:           engine,
		BackgroundWorkers: worker,
	}
	return application, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-shift-events)
func InitializeKafkaWorkerApp(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, producer sarama.SyncProducer, cfg *config.Config) (*KafkaWorkerApp, error) {
	querier := provideQuerier(pool, getter)
	repository := provideMatchingRepository(querier)
	system := provideSystemClock()
	availabilityIndex := provideAvailabilityIndex(repository, system, cfg)
	scorer := matching.NewScorer()
	conflictGuard := matching.NewConflictGuard(repository)
	gateway := provideNotifierGateway(producer, cfg)
	manager := provideTxManager(pool)
	engine := provideMatchingEngine(log, repository, availabilityIndex, scorer, conflictGuard, gateway, system, manager)
	kafkaWorkerApp := &KafkaWorkerApp{
		Matcher: engine,
	}
	return kafkaWorkerApp, nil
}

// wire.go:

type (
	MatchTickInterval       time.Duration
	TimeoutSweepInterval    time.Duration
	ShiftCompletionInterval time.Duration
)

type Application struct {
	ServiceRider      ServiceRider
	ServiceShift      ServiceShift
	ServiceLifecycle  ServiceLifecycle
	Matcher           Matcher
	BackgroundWorkers *background.Worker
}

type ServiceRider interface {
	rider_get.Service
	rider_post.Service
	rider_put.Service
	riders_get.Service
	availability_get.Service
	availability_post.Service
}

type ServiceShift interface {
	shift_get.Service
	shift_post.Service
	shifts_open_get.Service
}

type ServiceLifecycle interface {
	assignment_accept_post.Service
	assignment_confirm_post.Service
	assignment_reject_post.Service
	shift_cancel_post.Service
}

type Matcher interface {
	match_run_post.Service
}

type KafkaWorkerApp struct {
	Matcher Matcher
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideSystemClock() *clock.System {
	return clock.New()
}

func provideRiderRepository(querier2 *querier.Querier) *rider.Repository {
	return rider.New(querier2)
}

func provideShiftRepository(querier2 *querier.Querier) *shift.Repository {
	return shift.New(querier2)
}

func provideAssignmentRepository(querier2 *querier.Querier) *assignment.Repository {
	return assignment.New(querier2)
}

func provideMatchingRepository(querier2 *querier.Querier) *matching2.Repository {
	return matching2.New(querier2)
}

func provideNotifierGateway(producer sarama.SyncProducer, cfg *config.Config) *notifier.Gateway {
	return notifier.New(producer, cfg.Kafka.NotificationsTopic)
}

func provideDeadlineFactory(cfg *config.Config) *confirmation_deadline.DeadlineFactory {
	return confirmation_deadline.New(cfg.Matching.ConfirmationTTL)
}

func provideServiceRider(
	repository rider2.Repository,
	txManager rider2.TxManager,
) *rider2.Rider {
	return rider2.New(repository, txManager)
}

func provideServiceShift(
	repository shift2.Repository,
	txManager shift2.TxManager,
) *shift2.Shift {
	return shift2.New(repository, txManager)
}

func provideServiceLifecycle(
	log logger.Logger,
	repository lifecycle.Repository,
	deadlines lifecycle.DeadlineFactory, notifier2 lifecycle.Notifier,

	clk lifecycle.Clock,
	txManager lifecycle.TxManager,
) *lifecycle.Lifecycle {
	return lifecycle.New(log, repository, deadlines, notifier2, clk, txManager)
}

func provideAvailabilityIndex(
	repository matching.Repository,
	clk matching.Clock,
	cfg *config.Config,
) *matching.AvailabilityIndex {
	return matching.NewAvailabilityIndex(repository, clk, cfg.Matching.RejectionCooldown)
}

func provideMatchingEngine(
	log logger.Logger,
	repository matching.Repository,
	candidates matching.CandidateSource,
	ranker matching.Ranker,
	conflicts matching.ConflictChecker, notifier2 matching.Notifier,

	clk matching.Clock,
	txManager matching.TxManager,
) *matching.Engine {
	return matching.New(log, repository, candidates, ranker, conflicts, notifier2, clk, txManager)
}

func provideMatchTickInterval(cfg *config.Config) MatchTickInterval {
	return MatchTickInterval(cfg.Tasks.MatchTickInterval)
}

func provideTimeoutSweepInterval(cfg *config.Config) TimeoutSweepInterval {
	return TimeoutSweepInterval(cfg.Tasks.TimeoutSweepInterval)
}

func provideShiftCompletionInterval(cfg *config.Config) ShiftCompletionInterval {
	return ShiftCompletionInterval(cfg.Tasks.ShiftCompletionInterval)
}

func provideMatchTickTask(
	log logger.Logger,
	service match_tick.Service,
	interval MatchTickInterval,
) *match_tick.MatchTick {
	return match_tick.NewMatchTick(log, service, time.Duration(interval))
}

func provideTimeoutSweepTask(
	log logger.Logger,
	service timeout_sweep.Service,
	matcher timeout_sweep.Matcher,
	interval TimeoutSweepInterval,
) *timeout_sweep.TimeoutSweep {
	return timeout_sweep.NewTimeoutSweep(log, service, matcher, time.Duration(interval))
}

func provideShiftCompletionTask(
	log logger.Logger,
	service shift_completion.Service,
	interval ShiftCompletionInterval,
) *shift_completion.ShiftCompletion {
	return shift_completion.NewShiftCompletion(log, service, time.Duration(interval))
}

func provideTaskList(
	matchTickTask *match_tick.MatchTick,
	timeoutSweepTask *timeout_sweep.TimeoutSweep,
	shiftCompletionTask *shift_completion.ShiftCompletion,
) []background.Task {
	return []background.Task{
		matchTickTask,
		timeoutSweepTask,
		shiftCompletionTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
