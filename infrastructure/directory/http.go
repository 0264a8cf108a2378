// Package directory fetches the room list the current user may
// access. One request at bootstrap; every failure is surfaced to the
// caller as session-fatal.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"office-lab/domain"
	apperrors "office-lab/errors"
	"time"
)

type HTTPDirectory struct {
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

func NewHTTPDirectory(baseURL string, timeout time.Duration, log *slog.Logger) *HTTPDirectory {
	return &HTTPDirectory{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (d *HTTPDirectory) Rooms(ctx context.Context) ([]domain.Room, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"/rooms", nil)
	if err != nil {
		return nil, err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrDirectoryUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", apperrors.ErrDirectoryUnavailable, resp.StatusCode)
	}

	var rooms []domain.Room
	if err := json.NewDecoder(resp.Body).Decode(&rooms); err != nil {
		return nil, fmt.Errorf("%w: decoding rooms: %w", apperrors.ErrDirectoryUnavailable, err)
	}
	d.log.Debug("Room directory fetched", "rooms", len(rooms))
	return rooms, nil
}
