package progress

import (
	"sync"
	"time"
)

const (
	step     = 10
	ceiling  = 90
	complete = 100
)

type upload struct {
	value int
	stop  chan struct{}
	once  sync.Once
}

// Tracker 估算进行中的上传进度：传输期间按固定间隔递增到 90，
// 确认成功后才置为 100，成功与失败都会停止心跳。
type Tracker struct {
	mu       sync.Mutex
	uploads  map[string]*upload
	interval time.Duration
}

func NewTracker(interval time.Duration) *Tracker {
	return &Tracker{
		uploads:  make(map[string]*upload),
		interval: interval,
	}
}

// Start 为一次上传启动心跳，重复调用会重置进度
func (t *Tracker) Start(id string) {
	if id == "" {
		return
	}

	t.mu.Lock()
	if old, ok := t.uploads[id]; ok {
		old.once.Do(func() { close(old.stop) })
	}
	u := &upload{stop: make(chan struct{})}
	t.uploads[id] = u
	t.mu.Unlock()

	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-u.stop:
				return
			case <-ticker.C:
				t.mu.Lock()
				if u.value < ceiling {
					u.value += step
				}
				t.mu.Unlock()
			}
		}
	}()
}

// Finish 结束心跳；成功时进度跳到 100，失败时记录被移除
func (t *Tracker) Finish(id string, success bool) {
	if id == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	u, ok := t.uploads[id]
	if !ok {
		return
	}
	u.once.Do(func() { close(u.stop) })

	if success {
		u.value = complete
	} else {
		delete(t.uploads, id)
	}
}

// Progress 返回当前进度估计值
func (t *Tracker) Progress(id string) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	u, ok := t.uploads[id]
	if !ok {
		return 0, false
	}
	return u.value, true
}
