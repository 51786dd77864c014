package models

// TimerState 计时器持久化状态，整个进程只有一个槽位
// StartTime 为毫秒时间戳，经过时间始终由 now-StartTime 推算
type TimerState struct {
	Running     bool   `json:"running"`
	StartTime   int64  `json:"start_time"`
	ClientID    uint   `json:"client_id"`
	Description string `json:"description"`
}
