package feed

import (
	"context"
	"errors"
	"fmt"
	"results_feed/internal/client"
	"results_feed/internal/model"
	"results_feed/internal/repository"
	"results_feed/internal/service"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

var ErrPollerAlreadyRunning = errors.New("poller already running")

const (
	defaultInterval     = 3 * time.Second
	defaultFetchTimeout = 5 * time.Second
)

type PollerConfig struct {
	// Interval Период между циклами обновления
	Interval time.Duration
	// FetchTimeout Ограничение на один запрос к источнику
	FetchTimeout time.Duration
}

type PollerDeps struct {
	Client   client.ResultsClient
	Fallback Generator
	Repo     repository.WindowRepository
	Logger   *zap.Logger
}

// Poller Периодически обновляет окно: внешний источник, а при любой ошибке - запасной генератор.
// Ошибки наружу не выходят.
type Poller struct {
	cfg      PollerConfig
	client   client.ResultsClient
	fallback Generator
	repo     repository.WindowRepository
	logger   *zap.Logger

	mtx     sync.Mutex
	running bool
	// epoch растёт на каждом Start/Stop, результат цикла применяется только в своей эпохе
	epoch  uint64
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	inFlight atomic.Bool
}

func NewPoller(cfg PollerConfig, deps PollerDeps) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaultFetchTimeout
	}
	l := deps.Logger
	if l == nil {
		l = zap.NewNop()
	}

	return &Poller{
		cfg:      cfg,
		client:   deps.Client,
		fallback: deps.Fallback,
		repo:     deps.Repo,
		logger:   l.Named("feed-poller"),
	}
}

var _ service.FeedService = (*Poller)(nil)

// Start Запускает цикл опроса: первое обновление сразу, далее раз в Interval
func (p *Poller) Start(ctx context.Context) error {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.running {
		return ErrPollerAlreadyRunning
	}

	p.ctx, p.cancel = context.WithCancel(ctx)
	p.running = true
	p.epoch++

	p.logger.Info("feed poller starting",
		zap.Duration("interval", p.cfg.Interval),
		zap.Duration("fetch_timeout", p.cfg.FetchTimeout),
	)

	p.wg.Add(1)
	go p.runLoop(p.ctx, p.epoch)

	return nil
}

// Stop Отменяет текущий запрос и ждёт завершения цикла.
// Повторный вызов ничего не делает. После возврата окно больше не меняется.
func (p *Poller) Stop() error {
	p.mtx.Lock()
	if !p.running {
		p.mtx.Unlock()
		return nil
	}

	p.logger.Info("feed poller stopping")
	p.cancel()
	p.running = false
	p.epoch++
	p.mtx.Unlock()

	p.wg.Wait()
	p.logger.Info("feed poller stopped")
	return nil
}

func (p *Poller) IsRunning() bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.running
}

// Window Текущий снимок для слоя отображения
func (p *Poller) Window() model.Window {
	return p.repo.Current()
}

// Refresh Внеочередной цикл. false - цикл пропущен: опрос остановлен или уже идёт другой цикл.
func (p *Poller) Refresh(ctx context.Context) (model.Window, bool) {
	p.mtx.Lock()
	if !p.running {
		p.mtx.Unlock()
		return p.repo.Current(), false
	}
	epoch := p.epoch
	loopCtx := p.ctx
	p.mtx.Unlock()

	// Запрос отменяется и остановкой опроса, и отменой вызывающего
	cycleCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(loopCtx, cancel)
	defer stop()

	applied := p.cycle(cycleCtx, epoch)
	return p.repo.Current(), applied
}

func (p *Poller) runLoop(ctx context.Context, epoch uint64) {
	defer p.wg.Done()
	defer p.release(epoch)

	p.cycle(ctx, epoch)

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.cycle(ctx, epoch)
		}
	}
}

// release Снимает признак работы, если цикл завершился из-за отмены родительского контекста без Stop
func (p *Poller) release(epoch uint64) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if !p.running || p.epoch != epoch {
		return
	}
	p.cancel()
	p.running = false
	p.epoch++
	p.logger.Info("feed poller stopped by parent context")
}

// cycle Один цикл обновления. Возвращает true, если окно было заменено.
func (p *Poller) cycle(ctx context.Context, epoch uint64) bool {
	if !p.inFlight.CompareAndSwap(false, true) {
		p.logger.Debug("refresh cycle skipped, previous cycle still in flight")
		return false
	}
	defer p.inFlight.Store(false)

	outcomes, err := p.fetch(ctx)
	if err == nil && len(outcomes) == 0 {
		err = errors.New("source returned no results")
	}

	source := model.ProvenanceRemote
	if err != nil {
		if ctx.Err() != nil {
			// Остановлены во время запроса, применять нечего
			return false
		}
		p.logger.Warn("results source unavailable, using fallback", zap.Error(err))
		outcomes = p.fallback.Generate()
		source = model.ProvenanceSynthetic
	}

	w, ok := p.apply(epoch, outcomes)
	if !ok {
		return false
	}

	p.logger.Info("feed window refreshed",
		zap.String("source", string(source)),
		zap.Uint64("generation", w.Generation),
		zap.Int("size", len(w.Outcomes)),
	)
	return true
}

// fetch Паника клиента считается такой же ошибкой получения, как и сетевая
func (p *Poller) fetch(ctx context.Context) (outcomes []model.Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			outcomes = nil
			err = fmt.Errorf("%w: client panic: %v", client.ErrFetch, r)
		}
	}()

	fetchCtx, cancel := context.WithTimeout(ctx, p.cfg.FetchTimeout)
	defer cancel()

	return p.client.Fetch(fetchCtx)
}

func (p *Poller) apply(epoch uint64, outcomes []model.Outcome) (model.Window, bool) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if !p.running || p.epoch != epoch {
		return model.Window{}, false
	}
	return p.repo.Replace(outcomes), true
}
