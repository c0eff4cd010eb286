package redis

import (
	"context"
	"encoding/json"
	"slices"
	"strings"

	"github.com/gabapcia/chaintrack/internal/chainpoll"
)

// statusKey is the hash of the latest status per chain, field = chain name.
const statusKey = "chain:status"

func (c *client) SaveStatus(ctx context.Context, status chainpoll.ChainStatus) error {
	data, err := json.Marshal(status)
	if err != nil {
		return err
	}

	return c.conn.HSet(ctx, statusKey, status.Chain, data).Err()
}

// LoadStatuses returns the last published status of every chain, ordered by
// chain name.
func (c *client) LoadStatuses(ctx context.Context) ([]chainpoll.ChainStatus, error) {
	entries, err := c.conn.HGetAll(ctx, statusKey).Result()
	if err != nil {
		return nil, err
	}

	statuses := make([]chainpoll.ChainStatus, 0, len(entries))
	for _, data := range entries {
		var status chainpoll.ChainStatus
		if err := json.Unmarshal([]byte(data), &status); err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	slices.SortFunc(statuses, func(a, b chainpoll.ChainStatus) int {
		return strings.Compare(a.Chain, b.Chain)
	})

	return statuses, nil
}

var _ chainpoll.StatusStorage = new(client)
