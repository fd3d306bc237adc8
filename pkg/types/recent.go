package types

// RecentTheme is one entry of the recent-installs ledger
type RecentTheme struct {
	Name        string `json:"name"`
	Author      string `json:"author"`
	Description string `json:"description"`
	InstalledAt int64  `json:"installedAt"` // Unix timestamp
}
