// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// Client implements homework.StatusClient over the Practicum homework_statuses API.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *logrus.Entry
}

func NewClient(endpoint, token string, timeout time.Duration, logger *logrus.Entry) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// HomeworkStatuses requests records updated since fromDate (epoch seconds).
// A zero fromDate means "now". The decoded body is returned as is.
func (c *Client) HomeworkStatuses(ctx context.Context, fromDate int64) (any, error) {
	if fromDate == 0 {
		fromDate = time.Now().Unix()
	}
	logCtx := c.logger.WithField("from_date", fromDate)

	reqURL, err := url.Parse(c.endpoint)
	if err != nil {
		logCtx.WithError(err).Error("Invalid API endpoint")
		return nil, homework.Wrap(homework.KindTransport, "Некорректный адрес API", err)
	}
	query := reqURL.Query()
	query.Set("from_date", strconv.FormatInt(fromDate, 10))
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		logCtx.WithError(err).Error("Failed to build API request")
		return nil, homework.Wrap(homework.KindTransport, "Ошибка при запросе к основному API", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logCtx.WithError(err).Error("Request to the Practicum API failed")
		return nil, homework.Wrap(homework.KindTransport, "Ошибка при запросе к основному API", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logCtx.WithField("status_code", resp.StatusCode).Error("Practicum API returned a non-OK status")
		return nil, &homework.Error{
			Kind: homework.KindStatusCode,
			Msg:  fmt.Sprintf("Ошибка при запросе к основному API: код ответа %d", resp.StatusCode),
		}
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logCtx.WithError(err).Error("Failed to decode API response as JSON")
		return nil, homework.Wrap(homework.KindDecode, "Ошибка преобразования в json", err)
	}
	return payload, nil
}
