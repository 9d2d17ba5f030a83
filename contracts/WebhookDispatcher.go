package contracts

type WebhookDispatcher interface {
	SetWebhookUrl(canonicalSheetId string, reference string, webhookUrl string)
	GetWebhookUrl(canonicalSheetId string, reference string) string
	Notify(canonicalSheetId string, cells []Cell)
	Start()
	Close()
}
