package portal

import "context"

// SettingRepository persists portal settings.
type SettingRepository interface {
	Get(ctx context.Context, key string) (*Setting, error)
	Upsert(ctx context.Context, key, value string) error
}
