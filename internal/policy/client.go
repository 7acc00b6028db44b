package policy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/GayaStar/adaptiveChess/internal/logger"
)

// Client talks to the learned-policy move service, a separate process that
// picks moves for players the engine would crush.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        logger.Default().WithPrefix("policy"),
	}
}

// Move is a coordinate-form move as the policy service reports it.
type Move struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// UCI renders the move in the engine's coordinate notation.
func (m Move) UCI() string {
	return m.From + m.To + m.Promotion
}

type moveRequest struct {
	FEN    string `json:"fen"`
	UserID int64  `json:"user_id"`
	Elo    int    `json:"elo"`
}

type moveResponse struct {
	Move Move `json:"move"`
}

// BestMove asks the policy service for its move in the given position. The
// user's id and rating travel along so the service can condition on them.
func (c *Client) BestMove(ctx context.Context, fen string, userID int64, elo int) (Move, error) {
	log := logger.FromContext(ctx).WithPrefix("policy").WithField("user_id", fmt.Sprintf("%d", userID))
	url := c.baseURL + "/rl-move"

	body, err := json.Marshal(moveRequest{FEN: fen, UserID: userID, Elo: elo})
	if err != nil {
		return Move{}, err
	}

	log.Debug("requesting policy move from: %s", url)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Error("failed to create request: %v", err)
		return Move{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("failed to reach policy service: %v", err)
		return Move{}, err
	}
	defer resp.Body.Close()

	log.Debug("policy response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("policy request failed: status=%d, body=%s", resp.StatusCode, string(errBody))
		return Move{}, fmt.Errorf("policy status %d: %s", resp.StatusCode, string(errBody))
	}

	var out moveResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Error("failed to decode policy response: %v", err)
		return Move{}, err
	}
	if out.Move.From == "" || out.Move.To == "" {
		return Move{}, fmt.Errorf("policy returned an incomplete move: %+v", out.Move)
	}

	log.Info("policy chose %s", out.Move.UCI())
	return out.Move, nil
}
