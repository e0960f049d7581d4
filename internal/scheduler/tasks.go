package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskMatchRefresh = "matching.refresh"

// MatchRefreshPayload identifies one creator to refresh. A nil
// ExcludeMatched leaves the orchestrator on its default of skipping
// already-matched brands.
type MatchRefreshPayload struct {
	CreatorID      string `json:"creatorId"`
	ExcludeMatched *bool  `json:"excludeMatched,omitempty"`
}

func NewMatchRefreshTask(payload MatchRefreshPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskMatchRefresh, data), nil
}

func ParseMatchRefreshPayload(task *asynq.Task) (MatchRefreshPayload, error) {
	var payload MatchRefreshPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return MatchRefreshPayload{}, err
	}
	return payload, nil
}
