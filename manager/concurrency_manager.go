package manager

import (
	"context"
	"sync"
	"time"

	"pptxgen/config"
)

const defaultKey = "default"

// DeckMetrics holds the render metrics for a specific deck.
type DeckMetrics struct {
	Deck                   string
	QueueSize              int
	ProcessingCount        int
	LastLogTime            time.Time
	queueSizeChanged       bool
	processingCountChanged bool
	mu                     sync.Mutex
}

// ConcurrencyManager bounds how many renders of each deck run at once.
type ConcurrencyManager struct {
	semMap         map[string]chan struct{}
	metricsMap     map[string]*DeckMetrics
	mu             sync.Mutex
	defaultSize    int
	acquireTimeout time.Duration
	cancel         context.CancelFunc
	wg             sync.WaitGroup
}

// NewConcurrencyManager creates slots for every configured deck plus a default pool
// and starts one metrics monitor per pool.
func NewConcurrencyManager(decks map[string]config.DeckLimit, defaultSize int, acquireTimeout time.Duration) *ConcurrencyManager {
	if defaultSize <= 0 {
		log.Warnf("Invalid default render slots %d. Using 1.", defaultSize)
		defaultSize = 1
	}

	cm := &ConcurrencyManager{
		semMap:         make(map[string]chan struct{}),
		metricsMap:     make(map[string]*DeckMetrics),
		defaultSize:    defaultSize,
		acquireTimeout: acquireTimeout,
	}

	for name, limit := range decks {
		size := limit.Size
		if size <= 0 {
			log.Warnf("Deck '%s' has invalid size %d. Setting to default size %d.", name, limit.Size, defaultSize)
			size = defaultSize
		}
		cm.semMap[name] = make(chan struct{}, size)
		cm.metricsMap[name] = &DeckMetrics{Deck: name}
	}

	cm.semMap[defaultKey] = make(chan struct{}, cm.defaultSize)
	cm.metricsMap[defaultKey] = &DeckMetrics{Deck: defaultKey}

	ctx, cancel := context.WithCancel(context.Background())
	cm.cancel = cancel
	for _, metrics := range cm.metricsMap {
		cm.wg.Add(1)
		go cm.monitorMetrics(ctx, metrics)
	}

	return cm
}

// Acquire waits for a render slot for the given deck. Unknown decks share the default pool.
// It gives up when ctx is done or the acquire timeout passes; ok is false in that case.
func (cm *ConcurrencyManager) Acquire(ctx context.Context, deck string) (release func(), ok bool) {
	cm.mu.Lock()
	sem, exists := cm.semMap[deck]
	if !exists {
		sem = cm.semMap[defaultKey]
		deck = defaultKey
	}
	metrics := cm.metricsMap[deck]
	cm.mu.Unlock()

	metrics.incrementQueue()

	var timeout <-chan time.Time
	if cm.acquireTimeout > 0 {
		timer := time.NewTimer(cm.acquireTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case sem <- struct{}{}:
		metrics.incrementProcessing()
		metrics.decrementQueue()

		var once sync.Once
		return func() {
			once.Do(func() {
				metrics.decrementProcessing()
				<-sem
			})
		}, true
	case <-timeout:
		metrics.decrementQueue()
		return nil, false
	case <-ctx.Done():
		metrics.decrementQueue()
		return nil, false
	}
}

// Snapshot returns the queued and processing counts of a deck's pool.
func (cm *ConcurrencyManager) Snapshot(deck string) (queued, processing int) {
	cm.mu.Lock()
	metrics, ok := cm.metricsMap[deck]
	if !ok {
		metrics = cm.metricsMap[defaultKey]
	}
	cm.mu.Unlock()

	metrics.mu.Lock()
	defer metrics.mu.Unlock()
	return metrics.QueueSize, metrics.ProcessingCount
}

// monitorMetrics logs changes in the metrics at most once per second.
func (cm *ConcurrencyManager) monitorMetrics(ctx context.Context, metrics *DeckMetrics) {
	defer cm.wg.Done()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		metrics.mu.Lock()
		currentTime := time.Now()
		if (metrics.queueSizeChanged || metrics.processingCountChanged) &&
			currentTime.Sub(metrics.LastLogTime) >= time.Second {
			log.Infof("Deck: %s | Queued: %d | Processing: %d",
				metrics.Deck, metrics.QueueSize, metrics.ProcessingCount)
			metrics.LastLogTime = currentTime
			metrics.resetChangeFlags()
		}
		metrics.mu.Unlock()
	}
}

func (m *DeckMetrics) incrementQueue() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QueueSize++
	m.queueSizeChanged = true
}

func (m *DeckMetrics) decrementQueue() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.QueueSize > 0 {
		m.QueueSize--
		m.queueSizeChanged = true
	}
}

func (m *DeckMetrics) incrementProcessing() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProcessingCount++
	m.processingCountChanged = true
}

func (m *DeckMetrics) decrementProcessing() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ProcessingCount > 0 {
		m.ProcessingCount--
		m.processingCountChanged = true
	}
}

func (m *DeckMetrics) resetChangeFlags() {
	m.queueSizeChanged = false
	m.processingCountChanged = false
}

// Shutdown stops the metrics monitors and waits for them to exit.
func (cm *ConcurrencyManager) Shutdown() {
	cm.cancel()
	cm.wg.Wait()
}
