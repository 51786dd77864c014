package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/DaryllGomas/bigpic-technology/config"
	"github.com/DaryllGomas/bigpic-technology/models"
	"github.com/DaryllGomas/bigpic-technology/utils"
)

// 低于0.01小时（36秒）的会话不生成工时记录
const minBillableHours = 0.01

// JobSubmitter 工时记录提交接口，由 JobService 实现
type JobSubmitter interface {
	ClientRate(clientID uint) (float64, error)
	CreateFromTimer(clientID uint, description string, hours, rate float64, notes, jobDate string) (*models.Job, error)
}

// StopResult 停止计时的结果
// 提交失败时 ElapsedMs/Duration 仍然有效，会话数据不会在确认入库前丢弃
type StopResult struct {
	ElapsedMs   int64       `json:"elapsed_ms"`
	Duration    string      `json:"duration"` // HH:MM:SS
	ClientID    uint        `json:"client_id"`
	Description string      `json:"description"`
	Skipped     bool        `json:"skipped"` // 会话过短，未生成工时记录
	Job         *models.Job `json:"job,omitempty"`
}

// TimerEngine 计时器状态机，进程内只构造一个实例
// 同一时刻最多只有一个运行中的会话；经过时间始终由 now-startTime 推算，
// 每秒的 tick 只负责刷新显示用的缓存值
type TimerEngine struct {
	store        TimerStore
	jobs         JobSubmitter
	fallbackRate float64
	now          func() time.Time

	mu          sync.Mutex
	running     bool
	startTime   time.Time
	clientID    uint
	description string
	display     string
	stopCh      chan struct{}
}

// NewTimerEngine 创建计时器引擎，存储和工时提交能力通过接口注入
func NewTimerEngine(store TimerStore, jobs JobSubmitter, fallbackRate float64) *TimerEngine {
	return &TimerEngine{
		store:        store,
		jobs:         jobs,
		fallbackRate: fallbackRate,
		now:          time.Now,
		display:      "00:00:00",
	}
}

// SetClock 注入时钟，测试用
func (e *TimerEngine) SetClock(now func() time.Time) {
	e.now = now
}

// Start 启动计时器并立即持久化会话状态，保证进程重启后可恢复
func (e *TimerEngine) Start(ctx context.Context, clientID uint, description string) error {
	if clientID == 0 {
		return ErrClientRequired
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running {
		return ErrTimerRunning
	}

	startTime := e.now()
	state := models.TimerState{
		Running:     true,
		StartTime:   startTime.UnixMilli(),
		ClientID:    clientID,
		Description: description,
	}
	data, err := json.Marshal(&state)
	if err != nil {
		return fmt.Errorf("序列化计时器状态失败: %w", err)
	}
	// 先持久化再改内存状态，写入失败时不启动
	if err := e.store.Save(ctx, data); err != nil {
		return fmt.Errorf("保存计时器状态失败: %w", err)
	}

	e.running = true
	e.startTime = startTime
	e.clientID = clientID
	e.description = description
	e.display = "00:00:00"
	e.stopCh = make(chan struct{})
	go e.tickLoop(e.stopCh)

	return nil
}

// Stop 停止计时并把会话物化为工时记录
// 第一步必须先取消 tick，再计算经过时间，避免残留的 tick 覆盖停止后的状态
func (e *TimerEngine) Stop(ctx context.Context) (*StopResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running {
		return nil, ErrTimerNotRunning
	}

	close(e.stopCh)
	e.stopCh = nil

	elapsedMs := e.now().Sub(e.startTime).Milliseconds()
	result := &StopResult{
		ElapsedMs:   elapsedMs,
		Duration:    utils.FormatDuration(elapsedMs),
		ClientID:    e.clientID,
		Description: e.description,
	}

	e.running = false
	e.display = result.Duration

	// 清除持久化槽位；失败只记日志，会话结果已在内存中
	if err := e.store.Clear(ctx); err != nil && config.Logger != nil {
		config.Logger.Warnw("清除计时器状态失败", "error", err)
	}

	if err := e.materialize(result); err != nil {
		return result, err
	}
	return result, nil
}

// materialize 把停止的会话转换为工时记录并提交
func (e *TimerEngine) materialize(result *StopResult) error {
	hours := float64(result.ElapsedMs) / 3600000.0
	if hours < minBillableHours {
		// 过短会话直接丢弃，不算错误
		result.Skipped = true
		return nil
	}

	rate := e.fallbackRate
	if clientRate, err := e.jobs.ClientRate(result.ClientID); err == nil && clientRate > 0 {
		rate = clientRate
	}

	description := result.Description
	if description == "" {
		description = "计时工作"
	}
	// 备注保留真实用时，与取整后的计费工时区分，留下审计线索
	notes := fmt.Sprintf("计时器自动记录（实际用时 %s）", result.Duration)
	billed := utils.RoundToQuarterHour(hours)
	jobDate := utils.FormatDate(e.now())

	job, err := e.jobs.CreateFromTimer(result.ClientID, description, billed, rate, notes, jobDate)
	if err != nil {
		return fmt.Errorf("提交工时记录失败: %w", err)
	}
	result.Job = job
	return nil
}

// Restore 进程启动时调用一次，从持久化槽位恢复运行中的会话
// 损坏的记录直接丢弃并视为无会话，不向调用方报错
func (e *TimerEngine) Restore(ctx context.Context) error {
	data, err := e.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("读取计时器状态失败: %w", err)
	}
	if data == nil {
		return nil
	}

	var state models.TimerState
	if err := json.Unmarshal(data, &state); err != nil {
		if config.Logger != nil {
			config.Logger.Warnw("计时器状态损坏，已丢弃", "error", err)
		}
		if clearErr := e.store.Clear(ctx); clearErr != nil && config.Logger != nil {
			config.Logger.Warnw("清除损坏的计时器状态失败", "error", clearErr)
		}
		return nil
	}
	if !state.Running || state.StartTime <= 0 {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return nil
	}

	// 沿用保存的 startTime，经过时间跨重启连续
	e.running = true
	e.startTime = time.UnixMilli(state.StartTime)
	e.clientID = state.ClientID
	e.description = state.Description
	e.display = utils.FormatDuration(e.now().Sub(e.startTime).Milliseconds())
	e.stopCh = make(chan struct{})
	go e.tickLoop(e.stopCh)

	return nil
}

// Status 返回当前状态，经过时间实时计算
func (e *TimerEngine) Status() models.TimerStatusResponse {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running {
		return models.TimerStatusResponse{Running: false, Elapsed: "00:00:00"}
	}
	return models.TimerStatusResponse{
		Running:     true,
		Elapsed:     utils.FormatDuration(e.now().Sub(e.startTime).Milliseconds()),
		ClientID:    e.clientID,
		Description: e.description,
	}
}

// Display 返回最近一次 tick 缓存的显示值
func (e *TimerEngine) Display() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.display
}

// tickLoop 每秒刷新显示值，仅用于展示，不承担计时正确性
func (e *TimerEngine) tickLoop(stop chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			e.mu.Lock()
			// Stop 先关闭通道再改状态，这里重查 running 防止残留刷新
			if e.running {
				e.display = utils.FormatDuration(e.now().Sub(e.startTime).Milliseconds())
			}
			e.mu.Unlock()
		}
	}
}
