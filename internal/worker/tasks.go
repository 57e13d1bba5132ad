package worker

import (
	"encoding/json"

	"portal-service/internal/consumers"

	"github.com/hibiken/asynq"
)

// Task Types
const (
	TypeWithdrawalPayout = "withdrawal-payout"
)

// Task Creators

func NewWithdrawalPayoutTask(payload consumers.WithdrawalPayoutDTO) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeWithdrawalPayout, data), nil
}
