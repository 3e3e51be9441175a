// Package webhook_mocks contains generated mocks for the automation client
package webhook_mocks

//go:generate mockgen -source=../client.go -destination=webhook_mocks.go -package=webhook_mocks
