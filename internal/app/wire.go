//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	notifierGateway "ridermatch/internal/gateway/kafka/notifier"
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

	assignmentRepo "ridermatch/internal/repository/assignment"
	matchingRepo "ridermatch/internal/repository/matching"
	riderRepo "ridermatch/internal/repository/rider"
	shiftRepo "ridermatch/internal/repository/shift"
	lifecycleService "ridermatch/internal/service/lifecycle"
	matchingService "ridermatch/internal/service/matching"
	riderService "ridermatch/internal/service/rider"
	shiftService "ridermatch/internal/service/shift"

	"ridermatch/pkg/background"
	"ridermatch/pkg/logger"
	"ridermatch/pkg/querier"
	"ridermatch/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

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

// InitializeApplication для HTTP сервиса (cmd/service)
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
		provideSystemClock,
		provideMatchTickInterval,
		provideTimeoutSweepInterval,
		provideShiftCompletionInterval,

		provideRiderRepository,
		provideShiftRepository,
		provideAssignmentRepository,
		provideMatchingRepository,

		provideNotifierGateway,
		provideDeadlineFactory,

		provideServiceRider,
		provideServiceShift,
		provideServiceLifecycle,
		provideMatchingEngine,
		provideAvailabilityIndex,
		matchingService.NewScorer,

		provideMatchTickTask,
		provideTimeoutSweepTask,
		provideShiftCompletionTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceRider), new(*riderService.Rider)),
		wire.Bind(new(ServiceShift), new(*shiftService.Shift)),
		wire.Bind(new(ServiceLifecycle), new(*lifecycleService.Lifecycle)),
		wire.Bind(new(Matcher), new(*matchingService.Engine)),

		wire.Bind(new(riderService.Repository), new(*riderRepo.Repository)),
		wire.Bind(new(shiftService.Repository), new(*shiftRepo.Repository)),
		wire.Bind(new(lifecycleService.Repository), new(*assignmentRepo.Repository)),
		wire.Bind(new(matchingService.Repository), new(*matchingRepo.Repository)),

		wire.Bind(new(matchingService.CandidateSource), new(*matchingService.AvailabilityIndex)),
		wire.Bind(new(matchingService.Ranker), new(*matchingService.Scorer)),
		wire.Bind(new(matchingService.ConflictChecker), new(*matchingService.ConflictGuard)),
		matchingService.NewConflictGuard,

		wire.Bind(new(matchingService.Notifier), new(*notifierGateway.Gateway)),
		wire.Bind(new(lifecycleService.Notifier), new(*notifierGateway.Gateway)),
		wire.Bind(new(lifecycleService.DeadlineFactory), new(*confirmation_deadline.DeadlineFactory)),

		wire.Bind(new(matchingService.Clock), new(*clock.System)),
		wire.Bind(new(lifecycleService.Clock), new(*clock.System)),

		wire.Bind(new(riderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(shiftService.TxManager), new(*tx.Manager)),
		wire.Bind(new(lifecycleService.TxManager), new(*tx.Manager)),
		wire.Bind(new(matchingService.TxManager), new(*tx.Manager)),

		wire.Bind(new(match_tick.Service), new(*matchingService.Engine)),
		wire.Bind(new(timeout_sweep.Service), new(*lifecycleService.Lifecycle)),
		wire.Bind(new(timeout_sweep.Matcher), new(*matchingService.Engine)),
		wire.Bind(new(shift_completion.Service), new(*lifecycleService.Lifecycle)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	Matcher Matcher
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-shift-events)
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
		provideSystemClock,

		provideMatchingRepository,

		provideNotifierGateway,

		provideMatchingEngine,
		provideAvailabilityIndex,
		matchingService.NewScorer,
		matchingService.NewConflictGuard,

		wire.Bind(new(Matcher), new(*matchingService.Engine)),

		wire.Bind(new(matchingService.Repository), new(*matchingRepo.Repository)),
		wire.Bind(new(matchingService.CandidateSource), new(*matchingService.AvailabilityIndex)),
		wire.Bind(new(matchingService.Ranker), new(*matchingService.Scorer)),
		wire.Bind(new(matchingService.ConflictChecker), new(*matchingService.ConflictGuard)),
		wire.Bind(new(matchingService.Notifier), new(*notifierGateway.Gateway)),
		wire.Bind(new(matchingService.Clock), new(*clock.System)),
		wire.Bind(new(matchingService.TxManager), new(*tx.Manager)),

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

func provideSystemClock() *clock.System {
	return clock.New()
}

func provideRiderRepository(querier *querier.Querier) *riderRepo.Repository {
	return riderRepo.New(querier)
}

func provideShiftRepository(querier *querier.Querier) *shiftRepo.Repository {
	return shiftRepo.New(querier)
}

func provideAssignmentRepository(querier *querier.Querier) *assignmentRepo.Repository {
	return assignmentRepo.New(querier)
}

func provideMatchingRepository(querier *querier.Querier) *matchingRepo.Repository {
	return matchingRepo.New(querier)
}

func provideNotifierGateway(producer sarama.SyncProducer, cfg *config.Config) *notifierGateway.Gateway {
	return notifierGateway.New(producer, cfg.Kafka.NotificationsTopic)
}

func provideDeadlineFactory(cfg *config.Config) *confirmation_deadline.DeadlineFactory {
	return confirmation_deadline.New(cfg.Matching.ConfirmationTTL)
}

func provideServiceRider(
	repository riderService.Repository,
	txManager riderService.TxManager,
) *riderService.Rider {
	return riderService.New(repository, txManager)
}

func provideServiceShift(
	repository shiftService.Repository,
	txManager shiftService.TxManager,
) *shiftService.Shift {
	return shiftService.New(repository, txManager)
}

func provideServiceLifecycle(
	log logger.Logger,
	repository lifecycleService.Repository,
	deadlines lifecycleService.DeadlineFactory,
	notifier lifecycleService.Notifier,
	clk lifecycleService.Clock,
	txManager lifecycleService.TxManager,
) *lifecycleService.Lifecycle {
	return lifecycleService.New(log, repository, deadlines, notifier, clk, txManager)
}

func provideAvailabilityIndex(
	repository matchingService.Repository,
	clk matchingService.Clock,
	cfg *config.Config,
) *matchingService.AvailabilityIndex {
	return matchingService.NewAvailabilityIndex(repository, clk, cfg.Matching.RejectionCooldown)
}

func provideMatchingEngine(
	log logger.Logger,
	repository matchingService.Repository,
	candidates matchingService.CandidateSource,
	ranker matchingService.Ranker,
	conflicts matchingService.ConflictChecker,
	notifier matchingService.Notifier,
	clk matchingService.Clock,
	txManager matchingService.TxManager,
) *matchingService.Engine {
	return matchingService.New(log, repository, candidates, ranker, conflicts, notifier, clk, txManager)
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
