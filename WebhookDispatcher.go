package main

import (
	"bytes"
	"dependencySheet/contracts"
	"github.com/bytedance/sonic"
	"github.com/puzpuzpuz/xsync/v4"
	"net/http"
	"sync"
	"time"
)

const webhookQueueSize = 20

const webhookKeyDelimiter = "\x00"

type WebhookPayload struct {
	SheetId string         `json:"sheet_id"`
	Cell    contracts.Cell `json:"cell"`
}

type WebhookSendCommand struct {
	Webhook string
	Payload WebhookPayload
}

type WebhookDispatcher struct {
	queue    chan WebhookSendCommand
	webhooks *xsync.Map[string, string]
	workers  int
	client   *http.Client
	logger   contracts.Logger

	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

func NewWebhookDispatcher(workers int, logger contracts.Logger) *WebhookDispatcher {
	return &WebhookDispatcher{
		queue:    make(chan WebhookSendCommand, webhookQueueSize),
		webhooks: xsync.NewMap[string, string](),
		workers:  workers,
		client: &http.Client{
			Timeout: time.Second * 5,
		},
		logger: logger,
	}
}

// SetWebhookUrl an empty url removes the subscription
func (manager *WebhookDispatcher) SetWebhookUrl(canonicalSheetId string, reference string, webhookUrl string) {
	key := canonicalSheetId + webhookKeyDelimiter + reference

	if webhookUrl == "" {
		manager.webhooks.Delete(key)
	} else {
		manager.webhooks.Store(key, webhookUrl)
	}
}

func (manager *WebhookDispatcher) GetWebhookUrl(canonicalSheetId string, reference string) string {
	webhook, _ := manager.webhooks.Load(canonicalSheetId + webhookKeyDelimiter + reference)
	return webhook
}

func (manager *WebhookDispatcher) Notify(canonicalSheetId string, cells []contracts.Cell) {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	if manager.closed {
		return
	}

	for _, cell := range cells {
		webhook := manager.GetWebhookUrl(canonicalSheetId, cell.Reference)
		if webhook == "" {
			continue
		}

		// callers hold the sheet lock, so a full queue drops the webhook instead of waiting
		select {
		case manager.queue <- WebhookSendCommand{
			Webhook: webhook,
			Payload: WebhookPayload{SheetId: canonicalSheetId, Cell: cell},
		}:
		default:
			manager.logger.Warn("webhook queue full, dropped", "webhook", webhook, "sheet", canonicalSheetId, "cell", cell.Reference)
		}
	}
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < manager.workers; i++ {
		manager.wg.Add(1)
		go manager.runWebhookSenderWorker()
	}
}

// Close stops accepting notifications and waits until queued webhooks are sent
func (manager *WebhookDispatcher) Close() {
	manager.mu.Lock()
	if !manager.closed {
		manager.closed = true
		close(manager.queue)
	}
	manager.mu.Unlock()

	manager.wg.Wait()
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	defer manager.wg.Done()

	for command := range manager.queue {
		manager.send(command)
	}
}

func (manager *WebhookDispatcher) send(command WebhookSendCommand) {
	payload, err := sonic.Marshal(command.Payload)
	if err != nil {
		manager.logger.Error("webhook payload encode failed", "webhook", command.Webhook, "error", err)
		return
	}

	response, err := manager.client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		manager.logger.Warn("webhook send failed", "webhook", command.Webhook, "error", err)
		return
	}
	defer response.Body.Close()

	if response.StatusCode >= 300 {
		manager.logger.Warn("unexpected webhook response", "webhook", command.Webhook, "status", response.Status)
		return
	}

	manager.logger.Debug("webhook sent", "webhook", command.Webhook, "cell", command.Payload.Cell.Reference)
}
