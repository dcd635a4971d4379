package usecase

// Export for testing
var MaskWebhookURL = maskWebhookURL
